package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/termgames/mastermind/internal/game"
)

// pegPalette maps peg values to display names and terminal colors. It covers
// game.MaxColors entries; a given game only uses the first Colors of them.
var pegPalette = []struct {
	Name  string
	Color lipgloss.Color
}{
	{"red", lipgloss.Color("1")},
	{"green", lipgloss.Color("2")},
	{"yellow", lipgloss.Color("3")},
	{"blue", lipgloss.Color("4")},
	{"magenta", lipgloss.Color("5")},
	{"cyan", lipgloss.Color("6")},
	{"orange", lipgloss.Color("208")},
	{"white", lipgloss.Color("7")},
	{"lime", lipgloss.Color("10")},
	{"pink", lipgloss.Color("13")},
}

// PegName returns the palette name for a peg value.
// Values outside the palette render as "?".
func PegName(v int) string {
	if v < 0 || v >= len(pegPalette) {
		return "?"
	}
	return pegPalette[v].Name
}

// pegStyle returns the style for a peg value. Out-of-palette values render
// unstyled, which keeps the board readable even for nonsense guesses.
func pegStyle(v int) lipgloss.Style {
	if v < 0 || v >= len(pegPalette) {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(pegPalette[v].Color)
}

// RenderPeg renders one peg: a colored dot, or a colored digit when unicode
// is off. Out-of-palette values always render as plain digits.
func RenderPeg(v int, unicode bool) string {
	if unicode && v >= 0 && v < len(pegPalette) {
		return pegStyle(v).Render("●")
	}
	return pegStyle(v).Render(strconv.Itoa(v))
}

// RenderCode renders a full code with one space between pegs.
func RenderCode(c game.Code, unicode bool) string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = RenderPeg(v, unicode)
	}
	return strings.Join(parts, " ")
}

// RenderKeys renders the feedback for one guess: one filled dot per black
// key, one hollow dot per white key. The ASCII form spells the counts out.
func RenderKeys(black, white int, unicode bool) string {
	if !unicode {
		return fmt.Sprintf("B:%d W:%d", black, white)
	}
	var b strings.Builder
	for range black {
		b.WriteString("●")
	}
	for range white {
		b.WriteString("○")
	}
	return b.String()
}

// RenderPalette renders the value-to-color legend for the first colors
// entries: each value as a colored digit.
func RenderPalette(colors int) string {
	if colors > len(pegPalette) {
		colors = len(pegPalette)
	}
	parts := make([]string, 0, colors)
	for v := range colors {
		parts = append(parts, pegStyle(v).Render(strconv.Itoa(v)))
	}
	return strings.Join(parts, " ")
}

// centerText centers a single line within the given width.
// Uses lipgloss.Width so styled text measures correctly.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}
