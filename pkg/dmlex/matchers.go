package dmlex

import (
	"unicode/utf8"

	"github.com/yaklabco/dmark/internal/dmlog"
	"github.com/yaklabco/dmark/pkg/dmtok"
)

// defaultMaxNestingDepth bounds the recursion depth of matchDirective when
// no caller-supplied limit applies. It is generous relative to the "tens"
// of nesting levels spec.md §5 expects from well-formed input.
const defaultMaxNestingDepth = 64

// matcher drives the recursive-descent matchers over a single source
// buffer, emitting events to a Consumer. It tracks the directive-nesting
// depth so pathological input can't blow the Go stack (spec.md §5's
// suggested explicit-stack conversion, implemented here as a depth guard
// that degrades to "mark unexpected end-of-input and finish the current
// nesting" rather than recursing further).
type matcher struct {
	consumer Consumer
	depth    int
	maxDepth int
}

func newMatcher(consumer Consumer, maxDepth int) *matcher {
	if maxDepth <= 0 {
		maxDepth = defaultMaxNestingDepth
	}
	return &matcher{consumer: consumer, maxDepth: maxDepth}
}

// matchEscape matches a two-byte escape sequence `\x`.
func (m *matcher) matchEscape(str []byte) int {
	if len(str) >= 2 && str[0] == '\\' && dmtok.IsEscapable(str[1]) {
		m.consumer.Handle(Event{Kind: EvEscape, Length: 2})
		return 2
	}
	return 0
}

// matchDirective matches a whole directive: `\name args? block?`.
func (m *matcher) matchDirective(str []byte) int {
	if len(str) == 0 || str[0] != '\\' {
		return 0
	}

	rest := str[1:]
	nameLen := matchDirectiveName(rest)
	if nameLen == 0 {
		return 0
	}

	firstCP, size := utf8.DecodeRune(rest)
	if (firstCP == utf8.RuneError && size <= 1) || !dmtok.IsDirectiveNameStart(firstCP) {
		return 0
	}

	totalNameLen := 1 + nameLen

	if m.depth >= m.maxDepth {
		dmlog.FromContext(nil).Debug("nesting depth exceeded, finishing current nesting",
			dmlog.FieldDepth, m.depth, dmlog.FieldMaxDepth, m.maxDepth,
			dmlog.FieldDirective, string(rest[:nameLen]))
		m.consumer.Handle(Event{Kind: EvPushDirective})
		m.consumer.Handle(Event{Kind: EvDirectiveName, Length: totalNameLen})
		m.consumer.Handle(Event{Kind: EvUnexpectedEOF})
		m.consumer.Handle(Event{Kind: EvPopDirective})
		return totalNameLen
	}

	m.depth++
	defer func() { m.depth-- }()

	m.consumer.Handle(Event{Kind: EvPushDirective})
	m.consumer.Handle(Event{Kind: EvDirectiveName, Length: totalNameLen})

	consumed := totalNameLen
	remainder := str[consumed:]

	if len(remainder) > 0 && remainder[0] == '[' {
		n := m.matchArgumentList(remainder)
		consumed += n
		remainder = str[consumed:]
	}

	if len(remainder) > 0 && remainder[0] == '{' {
		consumed += m.matchBlock(remainder)
	}

	m.consumer.Handle(Event{Kind: EvPopDirective})
	return consumed
}

// matchArgumentList matches `[arg (, arg)*]`, tolerating a missing `]` when
// the caller's enclosing block brace appears instead, or end-of-input.
func (m *matcher) matchArgumentList(str []byte) int {
	if len(str) == 0 || str[0] != '[' {
		return 0
	}

	m.consumer.Handle(Event{Kind: EvPushArguments})
	m.consumer.Handle(Event{Kind: EvOpeningSquare, Length: 1})
	pos := 1

	for {
		pos += m.matchArgument(str[pos:])
		rest := str[pos:]

		if len(rest) == 0 {
			dmlog.FromContext(nil).Debug("unexpected eof in argument list", dmlog.FieldOffset, pos)
			m.consumer.Handle(Event{Kind: EvUnexpectedEOF})
			m.consumer.Handle(Event{Kind: EvPopArguments})
			return pos
		}

		switch rest[0] {
		case ',':
			m.consumer.Handle(Event{Kind: EvComma, Length: 1})
			pos++
		case ']':
			m.consumer.Handle(Event{Kind: EvClosingSquare, Length: 1})
			pos++
			m.consumer.Handle(Event{Kind: EvPopArguments})
			return pos
		case '}':
			// Do not consume the brace; the enclosing block handles it.
			m.consumer.Handle(Event{Kind: EvPopArguments})
			return pos
		default:
			// match_content_sequence(argument_value) only stops on ',', ']',
			// '}', or end-of-input, so this is unreachable for well-formed
			// matcher composition; treat defensively as unexpected EOF.
			m.consumer.Handle(Event{Kind: EvUnexpectedEOF})
			m.consumer.Handle(Event{Kind: EvPopArguments})
			return pos
		}
	}
}

// matchArgument matches an optional `name =` prefix followed by a content
// sequence in argument_value context.
func (m *matcher) matchArgument(str []byte) int {
	named := matchNamedArgumentPrefix(str)
	pos := 0

	if named.Present() {
		if named.LeadingWS > 0 {
			m.consumer.Handle(Event{Kind: EvWhitespaceInArguments, Length: named.LeadingWS})
		}
		pos += named.LeadingWS

		m.consumer.Handle(Event{Kind: EvArgumentName, Length: named.NameLength})
		pos += named.NameLength

		if named.TrailingWS > 0 {
			m.consumer.Handle(Event{Kind: EvWhitespaceInArguments, Length: named.TrailingWS})
		}
		pos += named.TrailingWS

		m.consumer.Handle(Event{Kind: EvEquals, Length: 1})
		pos++
	}

	pos += m.matchContentSequence(str[pos:], dmtok.CtxArgumentValue)
	return pos
}

// matchBlock matches `{ content_seq(block) '}'?}`, emitting unexpected_eof
// in place of the closing brace when the input ends first.
func (m *matcher) matchBlock(str []byte) int {
	if len(str) == 0 || str[0] != '{' {
		return 0
	}

	m.consumer.Handle(Event{Kind: EvOpeningBrace, Length: 1})
	contentLen := m.matchContentSequence(str[1:], dmtok.CtxBlock)
	pos := 1 + contentLen

	if pos < len(str) && str[pos] == '}' {
		m.consumer.Handle(Event{Kind: EvClosingBrace, Length: 1})
		return pos + 1
	}

	dmlog.FromContext(nil).Debug("unexpected eof in block", dmlog.FieldOffset, pos)
	m.consumer.Handle(Event{Kind: EvUnexpectedEOF})
	return pos
}

// matchContent matches one unit of content: an escape, a directive, or a
// run of plain text bounded by the active context's bracket-balancing
// rules. levels is scoped to the single enclosing matchContentSequence call.
func (m *matcher) matchContent(str []byte, ctx dmtok.ContentContext, levels *dmtok.BracketLevels) int {
	if n := m.matchEscape(str); n > 0 {
		return n
	}
	if n := m.matchDirective(str); n > 0 {
		return n
	}

	i := 0
scan:
	for i < len(str) {
		b := str[i]

		switch {
		case b == '\\':
			if startsWithEscapeOrDirective(str[i:]) {
				break scan
			}
			i++

		case ctx == dmtok.CtxDocument:
			i++

		case b == '{':
			levels.Brace++
			i++

		case b == '}':
			if levels.Brace == 0 {
				break scan
			}
			levels.Brace--
			i++

		case ctx == dmtok.CtxArgumentValue && levels.Brace == 0 && b == ',' && levels.Square == 0:
			break scan

		case ctx == dmtok.CtxArgumentValue && levels.Brace == 0 && b == '[':
			levels.Square++
			i++

		case ctx == dmtok.CtxArgumentValue && levels.Brace == 0 && b == ']':
			if levels.Square == 0 {
				break scan
			}
			levels.Square--
			i++

		default:
			i++
		}
	}

	if i > 0 {
		m.consumer.Handle(Event{Kind: EvText, Length: i})
	}
	return i
}

// matchContentSequence repeatedly matches content until the remainder is
// empty or its first byte terminates the given context.
func (m *matcher) matchContentSequence(str []byte, ctx dmtok.ContentContext) int {
	pos := 0
	var levels dmtok.BracketLevels

	for pos < len(str) && !ctx.IsTerminatedBy(str[pos]) {
		n := m.matchContent(str[pos:], ctx, &levels)
		if n == 0 {
			// Forward-progress invariant violated: a programmer error in a
			// matcher above, not a malformed-input condition. Mirrors the
			// source's own debug assertion around this loop.
			panic("dmlex: matchContent made no forward progress")
		}
		pos += n
	}

	return pos
}
