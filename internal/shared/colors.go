// Package shared provides shared utilities for all push-hooks commands.
package shared

import (
	"github.com/charmbracelet/lipgloss"
)

// Standard color definitions.
var (
	Red   = lipgloss.Color("#f38ba8")
	Green = lipgloss.Color("#a6e3a1")
	Blue  = lipgloss.Color("#89dceb")
	Mauve = lipgloss.Color("#cba6f7")
	Text  = lipgloss.Color("#cdd6f4")
)

// Styles for common output.
var (
	ErrorStyle   = lipgloss.NewStyle().Foreground(Red)
	SuccessStyle = lipgloss.NewStyle().Foreground(Green)
	InfoStyle    = lipgloss.NewStyle().Foreground(Blue)
)

// Bold variants used for the final verdict of a check.
var (
	RawErrorStyle   = ErrorStyle.Bold(true)
	RawSuccessStyle = SuccessStyle.Bold(true)
)
