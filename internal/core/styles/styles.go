// Package styles provides shared lipgloss styles for CLI output.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Success styles confirmation lines (config validate OK).
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)

	// Error styles fatal error lines printed before exit.
	Error = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	// Muted styles secondary detail lines.
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
