package term

import "github.com/charmbracelet/lipgloss"

type styles struct {
	Base    lipgloss.Style
	Work    lipgloss.Style
	Break   lipgloss.Style
	Display lipgloss.Style
	Dim     lipgloss.Style
	Banner  lipgloss.Style
	Title   lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Base:    lipgloss.NewStyle().Margin(1, 2),
		Work:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Break:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		Display: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true).Padding(0, 1),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Banner:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
	}
}
