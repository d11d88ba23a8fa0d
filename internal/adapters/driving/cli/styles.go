package cli

import "github.com/charmbracelet/lipgloss"

// Shared output styles for terminal feedback.
var (
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleHeader  = lipgloss.NewStyle().Bold(true).Underline(true)
	styleMuted   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
