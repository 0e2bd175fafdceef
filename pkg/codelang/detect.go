// Package codelang resolves the language tag a code-block directive's
// staged body should be highlighted as. Spec.md's Code-Block Consumer
// stages a directive's outermost `{...}` body verbatim and hands it off
// to a nested highlighter (out of scope here); this package is the
// Language Hint Resolver SPEC_FULL.md adds in front of that handoff,
// deciding what language tag to attach. An author can say so explicitly
// with a `lang=` argument on the directive itself (`\codeblock[lang=go]{...}`)
// — that always wins — and otherwise the body is classified with go-enry,
// a shebang check first, then a handful of body-shape heuristics, then
// go-enry's statistical classifier as a last resort.
package codelang

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Language tags this package resolves to. These are the values recorded
// on CodeBlockResult.LanguageHint, not go-enry's own display names.
const (
	langGo         = "go"
	langPython     = "python"
	langJavaScript = "javascript"
	langJSON       = "json"
	langYAML       = "yaml"
	langHTML       = "html"
	langSQL        = "sql"
	langRust       = "rust"
	langDockerfile = "dockerfile"
	langText       = "text"
	langBash       = "bash"
)

// probe bundles the few derived views of a code-block body every pattern
// detector needs, computed once up front instead of recomputed by each.
type probe struct {
	content []byte
	trimmed []byte
	text    string
}

func newProbe(content []byte) probe {
	return probe{
		content: content,
		trimmed: bytes.TrimSpace(content),
		text:    string(content),
	}
}

// patternDetectors runs in order; the first non-empty result wins. Order
// matters where patterns could otherwise overlap (e.g. Go source starting
// with "package " is claimed by detectGo before detectPython sees any
// "def " or "import " text in it; detectPython itself skips Go's
// "import (" form).
var patternDetectors = []func(probe) string{
	detectGo,
	detectPython,
	detectHTML,
	detectJSON,
	detectDockerfile,
	detectSQL,
	detectRust,
	detectJavaScript,
	detectYAML,
}

// classifierCandidates bounds go-enry's statistical classifier to these
// languages. The classifier's pick goes through Normalize, so a candidate
// outside the tag constants above comes back lowercased (e.g.
// "TypeScript" becomes "typescript"), not as langText.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// Detect resolves a language tag for a code-block body. langHint is the
// directive's own explicit language argument, if the document author gave
// one (`\codeblock[lang=go]{...}`); when non-empty it is normalized and
// returned immediately, without inspecting content at all. Otherwise the
// body is classified: shebang, then pattern heuristics, then go-enry's
// classifier, falling back to "text" if nothing is confident enough.
func Detect(content []byte, langHint string) string {
	if langHint != "" {
		return Normalize(langHint)
	}

	if len(content) == 0 {
		return langText
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return Normalize(lang)
	}

	p := newProbe(content)
	for _, detect := range patternDetectors {
		if lang := detect(p); lang != "" {
			return lang
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return Normalize(lang)
	}

	return langText
}

func detectGo(p probe) string {
	if bytes.HasPrefix(p.trimmed, []byte("package ")) {
		return langGo
	}
	return ""
}

func detectPython(p probe) string {
	// def/class definitions with colon.
	if strings.Contains(p.text, "def ") && strings.Contains(p.text, "):") {
		return langPython
	}
	// Python import statements (not Go which uses "import (").
	if strings.Contains(p.text, "import ") && !strings.Contains(p.text, "import (") {
		if strings.Contains(p.text, "from ") || strings.HasPrefix(strings.TrimSpace(p.text), "import ") {
			return langPython
		}
	}
	// Python dunder variables.
	if strings.Contains(p.text, "__name__") || strings.Contains(p.text, "__main__") {
		return langPython
	}
	return ""
}

func detectHTML(p probe) string {
	lower := bytes.ToLower(p.trimmed)
	if bytes.Contains(lower, []byte("<!doctype html")) ||
		bytes.Contains(lower, []byte("<html")) ||
		bytes.Contains(lower, []byte("<head>")) ||
		bytes.Contains(lower, []byte("<body>")) {
		return langHTML
	}
	return ""
}

func detectJSON(p probe) string {
	if (bytes.HasPrefix(p.trimmed, []byte("{")) || bytes.HasPrefix(p.trimmed, []byte("["))) &&
		bytes.Contains(p.trimmed, []byte(`"`)) {
		return langJSON
	}
	return ""
}

func detectDockerfile(p probe) string {
	if bytes.HasPrefix(p.trimmed, []byte("FROM ")) ||
		(bytes.Contains(p.content, []byte("\nFROM ")) && bytes.Contains(p.content, []byte("\nRUN "))) ||
		(bytes.Contains(p.content, []byte("WORKDIR ")) && bytes.Contains(p.content, []byte("COPY "))) {
		return langDockerfile
	}
	return ""
}

func detectSQL(p probe) string {
	upper := strings.ToUpper(strings.TrimSpace(p.text))
	if strings.HasPrefix(upper, "SELECT ") ||
		strings.HasPrefix(upper, "INSERT ") ||
		strings.HasPrefix(upper, "UPDATE ") ||
		strings.HasPrefix(upper, "DELETE ") ||
		strings.HasPrefix(upper, "CREATE ") {
		return langSQL
	}
	return ""
}

func detectRust(p probe) string {
	if strings.Contains(p.text, "fn main()") ||
		strings.Contains(p.text, "println!") ||
		strings.Contains(p.text, "let mut ") {
		return langRust
	}
	return ""
}

func detectJavaScript(p probe) string {
	if strings.Contains(p.text, "=>") ||
		strings.Contains(p.text, "const ") ||
		strings.Contains(p.text, "let ") ||
		strings.Contains(p.text, "console.log") {
		return langJavaScript
	}
	return ""
}

// detectYAML checks for YAML patterns by counting key: value pairs.
func detectYAML(p probe) string {
	lines := bytes.Split(p.content, []byte("\n"))
	yamlKeyCount := 0

	for _, line := range lines {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || bytes.HasPrefix(line, []byte("#")) {
			continue
		}
		// Simple key: value (identifier followed by colon and space).
		// Exclude lines that look like code (contain parentheses, brackets).
		if bytes.Contains(line, []byte(": ")) {
			if !bytes.Contains(line, []byte("(")) &&
				!bytes.Contains(line, []byte("{")) &&
				!bytes.HasPrefix(line, []byte(`"`)) {
				yamlKeyCount++
			}
		}
		// YAML list item at root level.
		if bytes.HasPrefix(line, []byte("- ")) {
			yamlKeyCount++
		}
	}

	if yamlKeyCount >= 2 {
		return langYAML
	}
	return ""
}

// Normalize maps a go-enry display name, or an author-supplied `lang=`
// argument value, onto this package's lowercase tag set. "shell" and "sh"
// (in any case) collapse to "bash"; everything else is just lowercased.
func Normalize(lang string) string {
	lower := strings.ToLower(lang)
	switch lower {
	case "shell", "sh":
		return langBash
	default:
		return lower
	}
}
