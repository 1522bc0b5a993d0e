package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used across commands. When colored is
// false every style is a plain passthrough, which keeps piped and captured
// output free of ANSI escape codes.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	// Status glyphs carry their character via SetString, so callers can use
	// them directly as strings.
	StatusOk   lipgloss.Style
	StatusWarn lipgloss.Style
	StatusFail lipgloss.Style
}

// NewStyles builds the style set. Colors follow the app's terminal palette;
// the glyphs match the report format regardless of coloring.
func NewStyles(colored bool) *Styles {
	s := &Styles{
		Header1:    lipgloss.NewStyle(),
		Header2:    lipgloss.NewStyle(),
		Bold:       lipgloss.NewStyle(),
		Muted:      lipgloss.NewStyle(),
		Success:    lipgloss.NewStyle(),
		Warning:    lipgloss.NewStyle(),
		Error:      lipgloss.NewStyle(),
		Info:       lipgloss.NewStyle(),
		StatusOk:   lipgloss.NewStyle().SetString("✓"),
		StatusWarn: lipgloss.NewStyle().SetString("⚠"),
		StatusFail: lipgloss.NewStyle().SetString("✗"),
	}
	if !colored {
		return s
	}

	s.Header1 = s.Header1.Bold(true).Foreground(lipgloss.Color("12"))
	s.Header2 = s.Header2.Bold(true).Foreground(lipgloss.Color("14"))
	s.Bold = s.Bold.Bold(true)
	s.Muted = s.Muted.Foreground(lipgloss.Color("8"))
	s.Success = s.Success.Foreground(lipgloss.Color("10"))
	s.Warning = s.Warning.Foreground(lipgloss.Color("11"))
	s.Error = s.Error.Foreground(lipgloss.Color("9"))
	s.Info = s.Info.Foreground(lipgloss.Color("12"))
	s.StatusOk = s.StatusOk.Foreground(lipgloss.Color("10"))
	s.StatusWarn = s.StatusWarn.Foreground(lipgloss.Color("11"))
	s.StatusFail = s.StatusFail.Foreground(lipgloss.Color("9"))
	return s
}
