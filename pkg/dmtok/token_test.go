package dmtok_test

import (
	"testing"

	"github.com/yaklabco/dmark/pkg/dmtok"
)

func TestToken_Text(t *testing.T) {
	t.Parallel()

	content := []byte("hello world")

	tests := []struct {
		name     string
		token    dmtok.Token
		expected string
	}{
		{
			name:     "full content",
			token:    dmtok.Token{Begin: 0, Length: 11},
			expected: "hello world",
		},
		{
			name:     "first word",
			token:    dmtok.Token{Begin: 0, Length: 5},
			expected: "hello",
		},
		{
			name:     "second word",
			token:    dmtok.Token{Begin: 6, Length: 5},
			expected: "world",
		},
		{
			name:     "space",
			token:    dmtok.Token{Begin: 5, Length: 1},
			expected: " ",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := string(testCase.token.Text(content))
			if got != testCase.expected {
				t.Errorf("expected %q, got %q", testCase.expected, got)
			}
		})
	}
}

func TestToken_TextInvalidRange(t *testing.T) {
	t.Parallel()

	content := []byte("hello")

	tests := []struct {
		name  string
		token dmtok.Token
	}{
		{
			name:  "negative begin",
			token: dmtok.Token{Begin: -1, Length: 3},
		},
		{
			name:  "end past content",
			token: dmtok.Token{Begin: 0, Length: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.token.Text(content)
			if got != nil {
				t.Errorf("expected nil for invalid range, got %q", got)
			}
		})
	}
}

func TestToken_End(t *testing.T) {
	t.Parallel()

	tok := dmtok.Token{Begin: 3, Length: 4}
	if tok.End() != 7 {
		t.Errorf("expected End() = 7, got %d", tok.End())
	}
}

func TestCategory_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cat      dmtok.Category
		expected string
	}{
		{dmtok.CatSymSquare, "sym_square"},
		{dmtok.CatSymBrace, "sym_brace"},
		{dmtok.CatSymPunc, "sym_punc"},
		{dmtok.CatMarkupTag, "markup_tag"},
		{dmtok.CatMarkupAttr, "markup_attr"},
		{dmtok.CatEscape, "escape"},
		{dmtok.CatComment, "comment"},
		{dmtok.CatCommentDelim, "comment_delim"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()

			if tt.cat.String() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.cat.String())
			}
		})
	}
}

func TestValidateTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		tokens     []dmtok.Token
		contentLen int
		expected   bool
	}{
		{
			name:       "empty tokens empty content",
			tokens:     []dmtok.Token{},
			contentLen: 0,
			expected:   true,
		},
		{
			name:       "empty tokens non-empty content is fine (core may skip all bytes)",
			tokens:     []dmtok.Token{},
			contentLen: 5,
			expected:   true,
		},
		{
			name: "valid contiguous tokens",
			tokens: []dmtok.Token{
				{Begin: 0, Length: 3},
				{Begin: 3, Length: 2},
				{Begin: 5, Length: 5},
			},
			contentLen: 10,
			expected:   true,
		},
		{
			name: "gap between tokens is allowed (untokenized text)",
			tokens: []dmtok.Token{
				{Begin: 0, Length: 3},
				{Begin: 5, Length: 5},
			},
			contentLen: 10,
			expected:   true,
		},
		{
			name: "overlapping tokens are rejected",
			tokens: []dmtok.Token{
				{Begin: 0, Length: 5},
				{Begin: 3, Length: 2},
			},
			contentLen: 5,
			expected:   false,
		},
		{
			name: "out of decreasing order is rejected",
			tokens: []dmtok.Token{
				{Begin: 5, Length: 2},
				{Begin: 0, Length: 3},
			},
			contentLen: 7,
			expected:   false,
		},
		{
			name: "zero length token is rejected",
			tokens: []dmtok.Token{
				{Begin: 0, Length: 0},
			},
			contentLen: 5,
			expected:   false,
		},
		{
			name: "end past content is rejected",
			tokens: []dmtok.Token{
				{Begin: 0, Length: 10},
			},
			contentLen: 5,
			expected:   false,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := dmtok.ValidateTokens(testCase.tokens, testCase.contentLen)
			if got != testCase.expected {
				t.Errorf("expected %v, got %v", testCase.expected, got)
			}
		})
	}
}

func TestContentContext_IsTerminatedBy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ctx  dmtok.ContentContext
		b    byte
		want bool
	}{
		{dmtok.CtxDocument, ',', false},
		{dmtok.CtxDocument, '}', false},
		{dmtok.CtxDocument, ']', false},
		{dmtok.CtxArgumentValue, ',', true},
		{dmtok.CtxArgumentValue, ']', true},
		{dmtok.CtxArgumentValue, '}', true},
		{dmtok.CtxArgumentValue, 'x', false},
		{dmtok.CtxBlock, '}', true},
		{dmtok.CtxBlock, ',', false},
		{dmtok.CtxBlock, ']', false},
	}

	for _, tt := range tests {
		if got := tt.ctx.IsTerminatedBy(tt.b); got != tt.want {
			t.Errorf("ctx=%v b=%q: got %v, want %v", tt.ctx, tt.b, got, tt.want)
		}
	}
}

func TestNamedArgumentResult_Present(t *testing.T) {
	t.Parallel()

	if (dmtok.NamedArgumentResult{}).Present() {
		t.Error("zero-value result should not be present")
	}

	if !(dmtok.NamedArgumentResult{NameLength: 3}).Present() {
		t.Error("result with NameLength > 0 should be present")
	}
}
