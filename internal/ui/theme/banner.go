package theme

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
)

// Letterspace spreads text out in capitals: "Correct" becomes
// "C O R R E C T".
func Letterspace(text string) string {
	runes := []rune(strings.ToUpper(text))
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

// RenderBanner renders text as a large boxed banner. When colored is
// false no ANSI sequences are emitted.
func RenderBanner(text string, c color.Color, colored bool) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		Padding(0, 3)
	if colored {
		style = style.
			Bold(true).
			Foreground(c).
			BorderForeground(c)
	}
	return style.Render(Letterspace(text))
}
