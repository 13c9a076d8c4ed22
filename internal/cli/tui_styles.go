package cli

import "github.com/charmbracelet/lipgloss"

var (
	tuiTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	tuiItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	tuiSelectedStyle = lipgloss.NewStyle().
				PaddingLeft(0).
				Bold(true).
				Foreground(lipgloss.Color("205"))

	tuiOKStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	tuiErrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	tuiHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)
