package dmlex

import "github.com/yaklabco/dmark/pkg/dmtok"

// EventKind identifies the kind of semantic event a matcher sends to a
// Consumer, per the Consumer Protocol. The variant set is closed and known
// ahead of time, so — per the design notes this package follows — Consumer
// dispatch is modeled as a tagged Event routed through a single handle
// method rather than one virtual call per event kind. This avoids heap
// indirection and keeps the state machine in each Consumer implementation
// explicit.
type EventKind uint8

const (
	EvText EventKind = iota
	EvWhitespaceInArguments
	EvOpeningSquare
	EvClosingSquare
	EvComma
	EvArgumentName
	EvEquals
	EvDirectiveName
	EvOpeningBrace
	EvClosingBrace
	EvEscape
	EvPushDirective
	EvPopDirective
	EvPushArguments
	EvPopArguments
	EvUnexpectedEOF
)

func (k EventKind) String() string {
	switch k {
	case EvText:
		return "text"
	case EvWhitespaceInArguments:
		return "whitespace_in_arguments"
	case EvOpeningSquare:
		return "opening_square"
	case EvClosingSquare:
		return "closing_square"
	case EvComma:
		return "comma"
	case EvArgumentName:
		return "argument_name"
	case EvEquals:
		return "equals"
	case EvDirectiveName:
		return "directive_name"
	case EvOpeningBrace:
		return "opening_brace"
	case EvClosingBrace:
		return "closing_brace"
	case EvEscape:
		return "escape"
	case EvPushDirective:
		return "push_directive"
	case EvPopDirective:
		return "pop_directive"
	case EvPushArguments:
		return "push_arguments"
	case EvPopArguments:
		return "pop_arguments"
	case EvUnexpectedEOF:
		return "unexpected_eof"
	default:
		return "unknown"
	}
}

// hasBytePayload reports whether this event kind carries a positive byte
// count that every Consumer must advance its cursor by. Structural bracket
// events always carry exactly one byte (by construction, below); push/pop
// and unexpected_eof carry zero, since they bracket other events rather than
// consuming source bytes themselves.
func (k EventKind) hasBytePayload() bool {
	switch k {
	case EvPushDirective, EvPopDirective, EvPushArguments, EvPopArguments, EvUnexpectedEOF:
		return false
	default:
		return true
	}
}

// Event is the single message type matchers send to a Consumer. Length is
// the byte count carried by the event (see §4.3); every byte-carrying event
// the matchers send has Length > 0. Consumers do not check this.
type Event struct {
	Kind   EventKind
	Length int
}

// Consumer is the polymorphic sink matchers drive with semantic events.
// Implementations own no source bytes; every payload is a length relative
// to the consumer's own running cursor.
type Consumer interface {
	Handle(ev Event)
}

// Sink is the caller-provided destination for emitted highlight spans. It
// must not fail under normal operation (per spec's external interface
// contract) — implementations that can fail should buffer and surface
// errors out of band.
type Sink interface {
	Emit(begin, length int, cat dmtok.Category)
}
