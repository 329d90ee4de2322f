// Package ui holds the terminal styling for the interactive console.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Color palette using terminal colors for consistency
	ColorSuccess = lipgloss.AdaptiveColor{Light: "2", Dark: "2"} // Green
	ColorError   = lipgloss.AdaptiveColor{Light: "1", Dark: "1"} // Red
	ColorWarning = lipgloss.AdaptiveColor{Light: "3", Dark: "3"} // Yellow
	ColorAccent  = lipgloss.AdaptiveColor{Light: "4", Dark: "4"} // Blue
	ColorPrimary = lipgloss.AdaptiveColor{Light: "5", Dark: "5"} // Magenta/Purple

	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleAccent  = lipgloss.NewStyle().Foreground(ColorAccent)
	StyleTitle   = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
)

// FormatSuccess returns a success message
func FormatSuccess(msg string) string {
	return StyleSuccess.Render(msg)
}

// FormatError returns an error message
func FormatError(msg string) string {
	return StyleError.Render(msg)
}

// FormatWarning returns a warning message
func FormatWarning(msg string) string {
	return StyleWarning.Render(msg)
}

// FormatTitle returns a formatted title
func FormatTitle(title string) string {
	return StyleTitle.Render(title)
}

// RenderKeyValue renders a key-value pair
func RenderKeyValue(key string, value any) string {
	return fmt.Sprintf("%s: %v",
		StyleAccent.Render(key),
		value,
	)
}
