package toolkit

import "github.com/charmbracelet/lipgloss"

// Theme holds the lipgloss styles used to draw widgets.
type Theme struct {
	Title         lipgloss.Style
	Label         lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	Entry         lipgloss.Style
	EntryFocused  lipgloss.Style
	Frame         lipgloss.Style
	Help          lipgloss.Style
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(0, 1),
		Label: lipgloss.NewStyle(),
		Button: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		ButtonFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Foreground(lipgloss.Color("39")).
			Bold(true).
			Padding(0, 1),
		Entry: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")),
		EntryFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("39")),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}

var theme = DefaultTheme()
