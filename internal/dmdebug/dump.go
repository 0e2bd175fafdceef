package dmdebug

import (
	"fmt"
	"strings"

	"github.com/yaklabco/dmark/pkg/dmtok"
)

// Dump renders one block per token in tokens: its category, byte range,
// and a source-line-with-caret view of where it begins. Tokens are
// assumed to already satisfy dmtok.ValidateTokens against src.
func Dump(src []byte, tokens []dmtok.Token, styles *Styles) string {
	var b strings.Builder

	for _, tok := range tokens {
		line, col, lineText := locate(src, tok.Begin)

		style := styles.styleFor(tok.Category)
		b.WriteString(fmt.Sprintf("%s  %s:%d:%d  %s\n",
			style.Render(tok.Category.String()),
			styles.Dim.Render("offset"),
			line, col,
			styles.Offset.Render(fmt.Sprintf("[%d,%d)", tok.Begin, tok.End())),
		))
		b.WriteString(formatSourceContext(lineText, col, styles))
	}

	return b.String()
}

// locate returns the 1-based line and column of byte offset begin within
// src, along with the full text of that line.
func locate(src []byte, begin int) (line, col int, lineText string) {
	line = 1
	lineStart := 0

	for i := 0; i < begin && i < len(src); i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}

	lineEnd := lineStart
	for lineEnd < len(src) && src[lineEnd] != '\n' {
		lineEnd++
	}

	col = begin - lineStart + 1
	return line, col, string(src[lineStart:lineEnd])
}

// formatSourceContext renders the source line with a caret marker under
// the given 1-based column.
func formatSourceContext(line string, column int, styles *Styles) string {
	var b strings.Builder
	const indent = "    "

	b.WriteString(indent + styles.SourceLine.Render(line) + "\n")
	if column > 0 {
		b.WriteString(indent + strings.Repeat(" ", column-1) + styles.Caret.Render("^") + "\n")
	}
	return b.String()
}
