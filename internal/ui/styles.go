package ui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	Title    lipgloss.Style
	Button   lipgloss.Style
	Disabled lipgloss.Style
	Row      lipgloss.Style
	Success  lipgloss.Style
	Cursor   lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Modal    lipgloss.Style
	Empty    lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")).MarginBottom(1),
		Button:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4")).Padding(0, 1),
		Disabled: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}).Padding(0, 1),
		Row:      lipgloss.NewStyle(),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Strikethrough(true),
		Cursor:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#B0B7C3"}),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Modal:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("9")).Padding(0, 2),
		Empty:    lipgloss.NewStyle().Faint(true).Italic(true),
	}
}
