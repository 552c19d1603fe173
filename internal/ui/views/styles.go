package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	InfoBox       lipgloss.Style
	FormBox       lipgloss.Style
	Label         lipgloss.Style
	FocusedLabel  lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Highlight     lipgloss.Style
	SelectionBg   lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	ButtonBusy    lipgloss.Style
	Badge         lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		FormBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("99")),
		Label:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(14),
		FocusedLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true).Width(14),
		Help:          lipgloss.NewStyle().Faint(true),
		Main:          lipgloss.NewStyle().Padding(1, 2),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Button:        lipgloss.NewStyle().Padding(0, 2).Background(lipgloss.Color("238")),
		ButtonFocused: lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("99")),
		ButtonBusy:    lipgloss.NewStyle().Padding(0, 2).Faint(true).Background(lipgloss.Color("236")),
		Badge:         lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}
