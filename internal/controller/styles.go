package controller

import "github.com/charmbracelet/lipgloss"

var (
	// resultStyle is the salmon tone the copied path is printed in.
	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FA8072"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")) // Orange

	promptTitleStyle = lipgloss.NewStyle().
				Bold(true)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(lipgloss.Color("205")) // Pinkish

	unselectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(4).
				Foreground(lipgloss.Color("240")) // Grey

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))
)
