package ui

import "github.com/charmbracelet/lipgloss"

// This file centralizes the lipgloss styles used by the CLI output.

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("#7D56F4")). // Brand Color
			Bold(true).
			Padding(0, 1)

	logInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Light Gray
	logWarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // Orange
	logErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)
	logSuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")). // Green
			Bold(true)

	tableBorderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("63")) // Purple-ish
	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212")).
				Padding(0, 1)
	tableCellStyle = lipgloss.NewStyle().Padding(0, 1)
	regressionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Padding(0, 1)
	improvementStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("46")).
				Padding(0, 1)
)
