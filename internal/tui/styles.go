package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	curveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	summaryStyle = lipgloss.NewStyle().MarginTop(1).Foreground(lipgloss.Color("240"))
)
