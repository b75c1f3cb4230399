package cli

import "github.com/charmbracelet/lipgloss"

// Styles renders terminal output. A disabled Styles returns text unchanged.
type Styles struct {
	enabled bool
}

// NewStyles returns styles that color output only when enabled is set.
func NewStyles(enabled bool) Styles {
	return Styles{enabled: enabled}
}

// Enabled reports whether output is colored.
func (s Styles) Enabled() bool {
	return s.enabled
}

// Dir renders a directory path.
func (s Styles) Dir(text string) string {
	return s.render(lipgloss.NewStyle().Foreground(lipgloss.Color(accentColorCode)).Bold(true), text)
}

// Dim renders secondary text such as sizes and suggestions.
func (s Styles) Dim(text string) string {
	return s.render(lipgloss.NewStyle().Foreground(lipgloss.Color(dimColorCode)), text)
}

// Error renders an error message.
func (s Styles) Error(text string) string {
	return s.render(lipgloss.NewStyle().Foreground(lipgloss.Color(errorColorCode)).Bold(true), text)
}

// Label renders a label.
func (s Styles) Label(text string) string {
	return s.render(lipgloss.NewStyle().Foreground(lipgloss.Color(highlightColorCode)).Bold(true), text)
}

// Success renders a success message.
func (s Styles) Success(text string) string {
	return s.render(lipgloss.NewStyle().Foreground(lipgloss.Color(successColorCode)), text)
}

// Warning renders a warning message.
func (s Styles) Warning(text string) string {
	return s.render(lipgloss.NewStyle().Foreground(lipgloss.Color(warningColorCode)).Bold(true), text)
}

func (s Styles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}

	return style.Render(text)
}

// unexported constants.
const (
	accentColorCode    = "62"  // Blue
	dimColorCode       = "240" // Dark gray
	errorColorCode     = "196" // Red
	highlightColorCode = "86"  // Cyan
	successColorCode   = "42"  // Green
	warningColorCode   = "226"
)
