package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains the pre-configured lipgloss styles for the form.
type Styles struct {
	Title      lipgloss.Style
	Section    lipgloss.Style
	Label      lipgloss.Style
	Selected   lipgloss.Style
	Value      lipgloss.Style
	Muted      lipgloss.Style
	Success    lipgloss.Style
	Error      lipgloss.Style
	Annotation lipgloss.Style
	Box        lipgloss.Style
	Help       lipgloss.Style
}

// DefaultStyles returns the default form styling.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			MarginBottom(1),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#06B6D4")).
			MarginTop(1),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("#CDD6F4")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9E2AF")),
		Value:    lipgloss.NewStyle().Foreground(lipgloss.Color("#A6ADC8")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
		Annotation: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F9E2AF")).
			PaddingLeft(4),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1),
		Help: lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")).MarginTop(1),
	}
}
