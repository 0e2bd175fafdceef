package dmlex

import "github.com/yaklabco/dmark/pkg/dmtok"

// SliceSink is a Sink that accumulates every emitted span into a slice of
// dmtok.Token, in emission order. It is the Sink the package's own
// Tokenize entrypoint uses; callers with their own storage needs can
// implement Sink directly instead.
type SliceSink struct {
	tokens []dmtok.Token
}

// Emit implements Sink.
func (s *SliceSink) Emit(begin, length int, cat dmtok.Category) {
	s.tokens = append(s.tokens, dmtok.Token{Begin: begin, Length: length, Category: cat})
}

// Tokens returns the accumulated tokens.
func (s *SliceSink) Tokens() []dmtok.Token { return s.tokens }
