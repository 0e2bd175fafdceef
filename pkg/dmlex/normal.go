package dmlex

import "github.com/yaklabco/dmark/pkg/dmtok"

// NormalConsumer is the default Consumer: it emits a highlight span for
// every structural event and advances its own cursor by each event's byte
// length. Plain text and in-argument whitespace are left as gaps — callers
// that want every byte covered can derive that from ValidateTokens' gap
// tolerance.
type NormalConsumer struct {
	sink   Sink
	cursor int
}

// NewNormalConsumer returns a NormalConsumer starting at source offset base.
func NewNormalConsumer(sink Sink, base int) *NormalConsumer {
	return &NormalConsumer{sink: sink, cursor: base}
}

// Cursor returns the consumer's current position in the source.
func (c *NormalConsumer) Cursor() int { return c.cursor }

// Handle implements Consumer.
func (c *NormalConsumer) Handle(ev Event) {
	if cat, ok := c.categoryFor(ev.Kind); ok {
		c.sink.Emit(c.cursor, ev.Length, cat)
	}
	if ev.Kind.hasBytePayload() {
		c.cursor += ev.Length
	}
}

func (c *NormalConsumer) categoryFor(kind EventKind) (dmtok.Category, bool) {
	switch kind {
	case EvOpeningSquare, EvClosingSquare:
		return dmtok.CatSymSquare, true
	case EvOpeningBrace, EvClosingBrace:
		return dmtok.CatSymBrace, true
	case EvComma, EvEquals:
		return dmtok.CatSymPunc, true
	case EvDirectiveName:
		return dmtok.CatMarkupTag, true
	case EvArgumentName:
		return dmtok.CatMarkupAttr, true
	case EvEscape:
		return dmtok.CatEscape, true
	default:
		return 0, false
	}
}
