// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package styles holds the terminal styles used for CLI progress output.
package styles

import "github.com/charmbracelet/lipgloss"

// Monokai Pro accents.
const (
	Green   = "#A9DC76"
	Red     = "#FF6188"
	Orange  = "#FC9867"
	Comment = "#727072"
)

var (
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Green))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Red))
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Orange))
	DimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
)

// Summary renders the batch summary line, green when every file converted.
func Summary(converted, total int, text string) string {
	if total > 0 && converted == total {
		return SuccessStyle.Render(text)
	}
	if converted == 0 {
		return ErrorStyle.Render(text)
	}
	return WarningStyle.Render(text)
}
