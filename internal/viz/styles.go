package viz

import "github.com/charmbracelet/lipgloss"

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	Label = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	Value = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
)
