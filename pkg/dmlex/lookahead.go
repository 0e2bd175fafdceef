package dmlex

import (
	"unicode/utf8"

	"github.com/yaklabco/dmark/pkg/dmtok"
)

// matchDirectiveName returns the longest prefix of str that forms a valid
// directive name body: zero if str is empty or starts with an ASCII digit,
// otherwise the longest run of code points satisfying IsDirectiveName. The
// first code point must additionally satisfy IsDirectiveNameStart — that
// stricter check is made by matchDirective itself, on the first code point
// after the backslash, not here.
func matchDirectiveName(str []byte) int {
	if len(str) == 0 || dmtok.IsASCIIDigit(str[0]) {
		return 0
	}
	return dmtok.LengthIfRune(str, dmtok.IsDirectiveName)
}

// matchArgumentName has the same shape as matchDirectiveName, scanning
// IsArgumentName instead.
func matchArgumentName(str []byte) int {
	if len(str) == 0 || dmtok.IsASCIIDigit(str[0]) {
		return 0
	}
	return dmtok.LengthIfRune(str, dmtok.IsArgumentName)
}

// matchWhitespace returns the longest prefix of code units satisfying
// IsHTMLWhitespace.
func matchWhitespace(str []byte) int {
	return dmtok.LengthIfByte(str, dmtok.IsHTMLWhitespace)
}

// startsWithEscapeOrDirective reports whether str begins with '\' followed
// by either an escapable byte or a code point that starts a directive name.
func startsWithEscapeOrDirective(str []byte) bool {
	if len(str) == 0 || str[0] != '\\' {
		return false
	}
	rest := str[1:]
	if len(rest) == 0 {
		return false
	}
	if dmtok.IsEscapable(rest[0]) {
		return true
	}
	cp, size := utf8.DecodeRune(rest)
	if cp == utf8.RuneError && size <= 1 {
		return false
	}
	return dmtok.IsDirectiveNameStart(cp)
}

// matchNamedArgumentPrefix is pure lookahead for `[ws?] name [ws?] =`: it
// never emits. The result is "absent" (all zero) if no name is present or
// the '=' is missing.
func matchNamedArgumentPrefix(str []byte) dmtok.NamedArgumentResult {
	pos := 0

	lead := matchWhitespace(str[pos:])
	pos += lead

	nameLen := matchArgumentName(str[pos:])
	if nameLen == 0 {
		return dmtok.NamedArgumentResult{}
	}
	pos += nameLen

	trail := matchWhitespace(str[pos:])
	afterTrail := pos + trail

	if afterTrail >= len(str) || str[afterTrail] != '=' {
		return dmtok.NamedArgumentResult{}
	}

	return dmtok.NamedArgumentResult{
		TotalLength: afterTrail + 1,
		LeadingWS:   lead,
		NameLength:  nameLen,
		TrailingWS:  trail,
	}
}
