// Package dmoptions defines the tokenizer's configuration record. These
// types are pure data structures with no dependency on any config loader;
// callers decode them from YAML with gopkg.in/yaml.v3.
package dmoptions

// Options is the root configuration structure for the tokenizer.
type Options struct {
	// CommentDirectives lists the directive names the Dispatch Consumer
	// routes to the Comment Consumer. Matching is on the bare name, without
	// the leading backslash.
	CommentDirectives []string `mapstructure:"comment_directives" yaml:"comment_directives"`

	// CodeBlockDirectives lists the directive names routed to the Code-Block
	// Consumer.
	CodeBlockDirectives []string `mapstructure:"code_block_directives" yaml:"code_block_directives"`

	// DetectLanguage enables the Language Hint Resolver for code-block
	// bodies. When false, CodeBlockResult.LanguageHint is always empty.
	DetectLanguage bool `mapstructure:"detect_language" yaml:"detect_language"`

	// CodeBlockLangArgument is the named-argument name a code-block
	// directive's own argument list can use to state its language
	// explicitly (`\codeblock[lang=go]{...}`), bypassing detection
	// entirely. Empty disables explicit-hint capture.
	CodeBlockLangArgument string `mapstructure:"code_block_lang_argument" yaml:"code_block_lang_argument"`

	// MaxNestingDepth bounds directive recursion depth (§5's nesting-depth
	// guard). Zero selects the package default.
	MaxNestingDepth int `mapstructure:"max_nesting_depth" yaml:"max_nesting_depth"`
}

const (
	defaultMaxNestingDepth = 64
	defaultLangArgument    = "lang"
)

// DefaultOptions returns an Options with sensible defaults: the canonical
// comment and code-block directive spellings, language detection on, the
// "lang" explicit-hint argument name, and the package's default
// nesting-depth guard.
func DefaultOptions() *Options {
	return &Options{
		CommentDirectives:     []string{"comment", "-comment"},
		CodeBlockDirectives:   []string{"codeblock", "code"},
		DetectLanguage:        true,
		CodeBlockLangArgument: defaultLangArgument,
		MaxNestingDepth:       defaultMaxNestingDepth,
	}
}

// IsCommentDirective reports whether name (without its leading backslash)
// is configured as a comment directive.
func (o *Options) IsCommentDirective(name string) bool {
	return contains(o.CommentDirectives, name)
}

// IsCodeBlockDirective reports whether name is configured as a code-block
// directive.
func (o *Options) IsCodeBlockDirective(name string) bool {
	return contains(o.CodeBlockDirectives, name)
}

// NestingLimit returns MaxNestingDepth, or the package default if unset.
func (o *Options) NestingLimit() int {
	if o == nil || o.MaxNestingDepth <= 0 {
		return defaultMaxNestingDepth
	}
	return o.MaxNestingDepth
}

func contains(list []string, want string) bool {
	for _, item := range list {
		if item == want {
			return true
		}
	}
	return false
}
