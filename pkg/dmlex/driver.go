// Package dmlex implements the directive-markup tokenizer: a set of
// mutually-recursive, non-backtracking matchers that scan a byte slice
// and emit semantic events to a Consumer. Tokenize is the entrypoint; the
// Consumer protocol and its Consumer and Sink implementations are
// exported, while the matcher type that drives them is unexported and is
// reached only through Tokenize.
package dmlex

import (
	"github.com/yaklabco/dmark/pkg/codelang"
	"github.com/yaklabco/dmark/pkg/dmoptions"
	"github.com/yaklabco/dmark/pkg/dmtok"
)

// Result is everything Tokenize produces for one document: the full
// highlight-span token stream plus a CodeBlockResult per recognized
// code-block directive.
type Result struct {
	Tokens     []dmtok.Token
	CodeBlocks []CodeBlockResult
}

// Tokenize scans src in document context and returns its highlight-span
// token stream and any code-block results. A nil opts selects
// dmoptions.DefaultOptions.
func Tokenize(src []byte, opts *dmoptions.Options) Result {
	if opts == nil {
		opts = dmoptions.DefaultOptions()
	}

	var detect LanguageDetector
	if opts.DetectLanguage {
		detect = codelang.Detect
	}

	sink := &SliceSink{}
	consumer := NewDispatchConsumer(sink, src, opts, detect)
	m := newMatcher(consumer, opts.NestingLimit())

	consumed := m.matchContentSequence(src, dmtok.CtxDocument)
	if consumed != len(src) {
		// document context never terminates early; matchContentSequence
		// only returns short of len(src) if a matcher above violated the
		// forward-progress invariant without panicking, which should be
		// unreachable.
		panic("dmlex: Tokenize did not consume the full document")
	}

	return Result{Tokens: sink.Tokens(), CodeBlocks: consumer.Results()}
}
