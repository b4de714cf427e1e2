package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/rtyping/internal/session"
)

var (
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#239B56"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5E7E9"))
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	errorLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C"))
)

var palette = map[session.Token]lipgloss.Style{
	session.TokenPending:   pendingStyle,
	session.TokenCorrect:   correctStyle,
	session.TokenIncorrect: incorrectStyle,
}

func styleFor(token session.Token) lipgloss.Style {
	if style, ok := palette[token]; ok {
		return style
	}
	return pendingStyle
}

// renderText draws each character in its status color and underlines the
// character at cursor. With width > 0 lines break after a separator so that
// words stay whole; a single word wider than width keeps its own line.
func renderText(text []session.Character, cursor, width int) string {
	var (
		b         strings.Builder
		lineWidth int
	)
	for start := 0; start < len(text); {
		end := wordEnd(text, start)
		segWidth := 0
		for _, c := range text[start:end] {
			segWidth += runewidth.RuneWidth(session.DisplayRune(c.Char))
		}
		if width > 0 && lineWidth > 0 && lineWidth+segWidth > width {
			b.WriteByte('\n')
			lineWidth = 0
		}
		for i := start; i < end; i++ {
			style := styleFor(session.ColorFor(text[i].Status))
			if i == cursor {
				style = style.Underline(true)
			}
			b.WriteString(style.Render(string(session.DisplayRune(text[i].Char))))
		}
		lineWidth += segWidth
		start = end
	}
	return b.String()
}

// wordEnd returns the index just past the word starting at start, including
// its trailing separator.
func wordEnd(text []session.Character, start int) int {
	for i := start; i < len(text); i++ {
		if text[i].Char == ' ' {
			return i + 1
		}
	}
	return len(text)
}
