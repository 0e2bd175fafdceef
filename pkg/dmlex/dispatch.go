package dmlex

import (
	"github.com/yaklabco/dmark/internal/dmlog"
	"github.com/yaklabco/dmark/pkg/dmoptions"
	"github.com/yaklabco/dmark/pkg/dmtok"
)

// CodeBlockResult is the record produced for each code-block directive
// the Dispatch Consumer recognizes, once its closing brace (or an
// unexpected_eof in its place) has been processed.
type CodeBlockResult struct {
	// Begin is the source offset of the directive's leading backslash.
	Begin int
	Body  []byte
	Remap []int
	// LanguageHint is the Language Hint Resolver's best guess, or empty
	// when Options.DetectLanguage is false or no detector was supplied.
	// codelang.Detect reports an inconclusive body as "text".
	LanguageHint string
}

// NestedHighlighter lets a caller re-tokenize a code-block body with a
// grammar of its own choosing, keyed on the resolved language hint.
// Dispatch Consumer does not call this itself; it is a hook for callers
// that want to highlight code-block bodies after tokenization finishes.
type NestedHighlighter interface {
	Highlight(body []byte, hint string) []dmtok.Token
}

// LanguageDetector resolves a best-guess language for a code-block body,
// preferring langHint (the directive's own explicit `lang=` argument, if
// any) when non-empty. pkg/codelang.Detect satisfies this.
type LanguageDetector func(body []byte, langHint string) string

// DispatchConsumer is the top-level Consumer: it routes the subtree of
// any directive matching Options.CommentDirectives or
// Options.CodeBlockDirectives to a CommentConsumer or CodeBlockConsumer,
// and forwards everything else to a plain NormalConsumer. Classification
// happens on the directive's own directive_name event, which is the
// earliest point a matcher reveals which directive is being entered.
type DispatchConsumer struct {
	src    []byte
	opts   *dmoptions.Options
	detect LanguageDetector

	fallback *NormalConsumer

	pendingClassify bool
	pendingBegin    int

	active      Consumer
	activeDepth int
	comment     *CommentConsumer
	codeBlock   *CodeBlockConsumer

	results []CodeBlockResult
}

// NewDispatchConsumer returns a DispatchConsumer over src, emitting to
// sink and classifying directives per opts. detect may be nil, which
// disables language detection regardless of opts.DetectLanguage.
func NewDispatchConsumer(sink Sink, src []byte, opts *dmoptions.Options, detect LanguageDetector) *DispatchConsumer {
	if opts == nil {
		opts = dmoptions.DefaultOptions()
	}
	return &DispatchConsumer{
		src:      src,
		opts:     opts,
		detect:   detect,
		fallback: NewNormalConsumer(sink, 0),
	}
}

// Results returns the CodeBlockResult recorded for every code-block
// directive seen so far.
func (d *DispatchConsumer) Results() []CodeBlockResult { return d.results }

// Handle implements Consumer.
func (d *DispatchConsumer) Handle(ev Event) {
	if d.active != nil {
		d.forwardToActive(ev)
		return
	}

	if ev.Kind == EvPushDirective {
		d.pendingClassify = true
		d.pendingBegin = d.fallback.Cursor()
		d.fallback.Handle(ev)
		return
	}

	if d.pendingClassify && ev.Kind == EvDirectiveName {
		d.pendingClassify = false
		d.classify(ev)
		return
	}

	d.fallback.Handle(ev)
}

// classify decides which consumer owns the directive whose directive_name
// event just arrived, having already forwarded its push_directive to the
// fallback consumer's cursor bookkeeping (but not its emission, since a
// delegated directive's own tokens belong to the sub-consumer).
func (d *DispatchConsumer) classify(ev Event) {
	name := string(d.src[d.pendingBegin+1 : d.pendingBegin+ev.Length])

	switch {
	case d.opts.IsCommentDirective(name):
		cc := NewCommentConsumer(d.pendingBegin)
		cc.Handle(Event{Kind: EvPushDirective})
		cc.Handle(ev)
		d.active = cc
		d.comment = cc
		d.activeDepth = 1
	case d.opts.IsCodeBlockDirective(name):
		cbc := NewCodeBlockConsumer(d.fallback.sink, d.src, d.pendingBegin, d.opts.CodeBlockLangArgument)
		cbc.Handle(Event{Kind: EvPushDirective})
		cbc.Handle(ev)
		d.active = cbc
		d.codeBlock = cbc
		d.activeDepth = 1
	default:
		d.fallback.Handle(ev)
	}
}

func (d *DispatchConsumer) forwardToActive(ev Event) {
	d.active.Handle(ev)

	switch ev.Kind {
	case EvPushDirective:
		d.activeDepth++
	case EvPopDirective:
		d.activeDepth--
		if d.activeDepth == 0 {
			d.finalizeActive()
		}
	}
}

// flushComment emits cc's three lumped spans — comment_delim(prefix), then
// comment(content) if non-zero, then comment_delim(suffix) if non-zero —
// per spec.md §4.5, rather than the one-span-per-event NormalConsumer does.
func (d *DispatchConsumer) flushComment(cc *CommentConsumer) {
	begin := cc.Base()

	d.fallback.sink.Emit(begin, cc.PrefixLen(), dmtok.CatCommentDelim)
	begin += cc.PrefixLen()

	if n := cc.ContentLen(); n > 0 {
		d.fallback.sink.Emit(begin, n, dmtok.CatComment)
		begin += n
	}

	if n := cc.SuffixLen(); n > 0 {
		d.fallback.sink.Emit(begin, n, dmtok.CatCommentDelim)
	}
}

func (d *DispatchConsumer) finalizeActive() {
	if d.codeBlock != nil {
		result := CodeBlockResult{
			Begin: d.pendingBegin,
			Body:  d.codeBlock.Body(),
			Remap: d.codeBlock.Remap(),
		}
		if d.opts.DetectLanguage && d.detect != nil {
			result.LanguageHint = d.detect(result.Body, d.codeBlock.LangHint())
		}
		d.results = append(d.results, result)
		dmlog.FromContext(nil).Debug("code block closed",
			dmlog.FieldOffset, d.pendingBegin, dmlog.FieldLanguageHint, result.LanguageHint)
		d.fallback.cursor = d.codeBlock.Cursor()
	} else if d.comment != nil {
		d.flushComment(d.comment)
		d.fallback.cursor = d.comment.Cursor()
	}

	d.active = nil
	d.comment = nil
	d.codeBlock = nil
	d.activeDepth = 0
}
