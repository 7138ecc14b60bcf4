// Package ui renders phonebook records and messages for the terminal.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	idStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2196F3"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A"))
	footerStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A"))
)

// Error styles an error message.
func Error(msg string) string {
	return errorStyle.Render(msg)
}

// Success styles a success message.
func Success(msg string) string {
	return successStyle.Render(msg)
}
