package dmlex

import "testing"

func TestEventKindString(t *testing.T) {
	tests := []struct {
		kind EventKind
		want string
	}{
		{EvText, "text"},
		{EvWhitespaceInArguments, "whitespace_in_arguments"},
		{EvOpeningSquare, "opening_square"},
		{EvClosingSquare, "closing_square"},
		{EvComma, "comma"},
		{EvArgumentName, "argument_name"},
		{EvEquals, "equals"},
		{EvDirectiveName, "directive_name"},
		{EvOpeningBrace, "opening_brace"},
		{EvClosingBrace, "closing_brace"},
		{EvEscape, "escape"},
		{EvPushDirective, "push_directive"},
		{EvPopDirective, "pop_directive"},
		{EvPushArguments, "push_arguments"},
		{EvPopArguments, "pop_arguments"},
		{EvUnexpectedEOF, "unexpected_eof"},
		{EventKind(255), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestEventKindHasBytePayload(t *testing.T) {
	noPayload := []EventKind{EvPushDirective, EvPopDirective, EvPushArguments, EvPopArguments, EvUnexpectedEOF}
	for _, kind := range noPayload {
		if kind.hasBytePayload() {
			t.Errorf("%s.hasBytePayload() = true, want false", kind)
		}
	}

	hasPayload := []EventKind{
		EvText, EvWhitespaceInArguments, EvOpeningSquare, EvClosingSquare, EvComma,
		EvArgumentName, EvEquals, EvDirectiveName, EvOpeningBrace, EvClosingBrace, EvEscape,
	}
	for _, kind := range hasPayload {
		if !kind.hasBytePayload() {
			t.Errorf("%s.hasBytePayload() = false, want true", kind)
		}
	}
}
