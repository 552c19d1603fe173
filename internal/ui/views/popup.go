package views

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay centers the popup over a dimmed copy of the main content
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)
	if width <= 0 || height <= 0 {
		return styledPopup
	}

	// The background only shows through when the popup leaves room for it
	if lipgloss.Height(styledPopup) >= height-2 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, styledPopup)
	}

	base := desaturateANSI(mainContent)
	placed := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, styledPopup,
		lipgloss.WithWhitespaceChars(" "))
	return overlayLines(base, placed, height)
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	plain := ansiRE.ReplaceAllString(s, "")
	return lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(plain)
}

// overlayLines keeps base lines wherever the placed popup row is blank
func overlayLines(base, placed string, height int) string {
	baseLines := splitLines(base)
	placedLines := splitLines(placed)

	out := make([]string, 0, height)
	for i := 0; i < len(placedLines) && i < height; i++ {
		line := placedLines[i]
		if ansiRE.ReplaceAllString(line, "") == blank(lipgloss.Width(line)) && i < len(baseLines) {
			line = baseLines[i]
		}
		out = append(out, line)
	}
	return joinLines(out)
}
