// Package dmdebug renders a tokenized document for human inspection: one
// styled line per highlight span, with a source-line-and-caret view of
// where each span sits. It exists for development and debugging, never
// for the tokenizer's own contract.
package dmdebug

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/yaklabco/dmark/pkg/dmtok"
)

// Styles holds the renderers used to dump a token stream.
type Styles struct {
	Category map[dmtok.Category]lipgloss.Style

	Offset     lipgloss.Style
	SourceLine lipgloss.Style
	Caret      lipgloss.Style
	Dim        lipgloss.Style
}

// NewStyles returns a Styles with color enabled or disabled as requested.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

func newColorStyles() *Styles {
	return &Styles{
		Category: map[dmtok.Category]lipgloss.Style{
			dmtok.CatSymSquare:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			dmtok.CatSymBrace:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			dmtok.CatSymPunc:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			dmtok.CatMarkupTag:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
			dmtok.CatMarkupAttr:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			dmtok.CatEscape:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			dmtok.CatComment:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Italic(true),
			dmtok.CatCommentDelim: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		},
		Offset:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		SourceLine: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Caret:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	cats := make(map[dmtok.Category]lipgloss.Style, 8)
	for _, cat := range []dmtok.Category{
		dmtok.CatSymSquare, dmtok.CatSymBrace, dmtok.CatSymPunc, dmtok.CatMarkupTag,
		dmtok.CatMarkupAttr, dmtok.CatEscape, dmtok.CatComment, dmtok.CatCommentDelim,
	} {
		cats[cat] = plain
	}
	return &Styles{
		Category:   cats,
		Offset:     plain,
		SourceLine: plain,
		Caret:      plain,
		Dim:        plain,
	}
}

// styleFor returns the style for cat, falling back to an unstyled render
// for any category not present in the map.
func (s *Styles) styleFor(cat dmtok.Category) lipgloss.Style {
	if style, ok := s.Category[cat]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// IsColorEnabled determines if color should be enabled based on mode and
// writer. Mode values: "auto" (default), "always", "never". In auto mode,
// color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
