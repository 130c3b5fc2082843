package interactive

import "github.com/charmbracelet/lipgloss"

// Styles groups the viewer's lipgloss styling in one place.
type Styles struct {
	Title    lipgloss.Style
	Frame    lipgloss.Style
	Detail   lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Footer   lipgloss.Style
	Selected lipgloss.Style
	Header   lipgloss.Style
}

func defaultStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1),
		Frame: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Detail: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Width(14),
		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")),
	}
}
