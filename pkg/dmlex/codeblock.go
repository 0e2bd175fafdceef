package dmlex

import "bytes"

// codeBlockState is the three-state indicator spec.md §4.6 assigns a
// Code-Block Consumer: before its own block has been entered, inside it,
// or finished (closing brace seen, or an unexpected_eof forced it closed).
type codeBlockState uint8

const (
	codeBlockBeforeBlock codeBlockState = iota
	codeBlockInBlock
	codeBlockDone
)

// CodeBlockConsumer is the Consumer a Dispatch Consumer delegates to for
// the subtree rooted at a configured code-block directive. It highlights
// structural tokens exactly like NormalConsumer — opening and closing
// square brackets both tag sym_square, braces both tag sym_brace, with no
// cross-wiring between the two — while separately staging the literal
// text and escaped characters of the block's outermost body (nested_source)
// and a parallel per-byte remap table (nested_remap) back to source
// offsets, for language detection and nested highlighting.
//
// Per §4.6, only text at the outermost body level belongs in the staged
// buffer: text inside the directive's own `[...]` (argumentsLevel != 0) or
// inside a nested directive's own block (braceLevel > 1) is excluded, even
// though it is still highlighted normally via the embedded NormalConsumer.
// If langArgName is set and the directive's own argument list carries a
// matching named argument (e.g. `lang=go`), its plain-text value is
// captured separately as an explicit language hint.
type CodeBlockConsumer struct {
	*NormalConsumer
	src   []byte
	body  []byte
	remap []int

	argumentsLevel int
	braceLevel     int
	state          codeBlockState

	langArgName   string
	capturingLang bool
	langHint      []byte
}

// NewCodeBlockConsumer returns a CodeBlockConsumer starting at source
// offset base. src is the full document being tokenized. langArgName
// names the directive argument that carries an explicit language hint
// (e.g. "lang"); empty disables explicit-hint capture.
func NewCodeBlockConsumer(sink Sink, src []byte, base int, langArgName string) *CodeBlockConsumer {
	return &CodeBlockConsumer{
		NormalConsumer: NewNormalConsumer(sink, base),
		src:            src,
		langArgName:    langArgName,
	}
}

// Handle implements Consumer.
func (c *CodeBlockConsumer) Handle(ev Event) {
	pre := c.Cursor()

	switch ev.Kind {
	case EvPushArguments:
		c.argumentsLevel++
	case EvPopArguments:
		c.argumentsLevel--
		c.capturingLang = false
	case EvArgumentName:
		name := c.src[pre : pre+ev.Length]
		// Only the directive's own top-level argument list carries its
		// language hint: a nested directive's argument list inside it sits
		// at argumentsLevel > 1, and inside the body state has already left
		// codeBlockBeforeBlock, so an argument of the same name in either
		// place can't hijack it.
		c.capturingLang = c.state == codeBlockBeforeBlock && c.argumentsLevel == 1 &&
			c.langArgName != "" && string(name) == c.langArgName
		if c.capturingLang {
			c.langHint = c.langHint[:0]
		}
	case EvComma:
		c.capturingLang = false
	case EvPushDirective:
		c.capturingLang = false
	case EvOpeningBrace:
		if c.state == codeBlockBeforeBlock && c.argumentsLevel == 0 {
			c.state = codeBlockInBlock
		}
		c.braceLevel++
	case EvClosingBrace:
		c.braceLevel--
		if c.braceLevel == 0 && c.argumentsLevel == 0 && c.state == codeBlockInBlock {
			c.state = codeBlockDone
		}
	case EvUnexpectedEOF:
		c.state = codeBlockDone
	}

	c.NormalConsumer.Handle(ev)

	if ev.Kind != EvText && ev.Kind != EvEscape {
		return
	}

	run := c.src[pre : pre+ev.Length]

	if c.capturingLang {
		c.langHint = append(c.langHint, run...)
		return
	}

	if c.argumentsLevel != 0 || c.braceLevel > 1 {
		return
	}

	c.body = append(c.body, run...)
	for i := range run {
		c.remap = append(c.remap, pre+i)
	}
}

// Done reports whether the consumer's own block has been closed, whether
// by its closing brace or by an unexpected_eof in its place.
func (c *CodeBlockConsumer) Done() bool { return c.state == codeBlockDone }

// Body returns the accumulated literal body text (nested_source) seen so far.
func (c *CodeBlockConsumer) Body() []byte { return c.body }

// Remap returns the per-byte body-to-source offset table (nested_remap)
// accumulated so far; len(Remap) == len(Body).
func (c *CodeBlockConsumer) Remap() []int { return c.remap }

// LangHint returns the explicit language hint captured from the
// directive's own argument list, trimmed of surrounding whitespace, or an
// empty string if none was configured or present.
func (c *CodeBlockConsumer) LangHint() string {
	return string(bytes.TrimSpace(c.langHint))
}
