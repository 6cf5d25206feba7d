package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("63")
	colorPass   = lipgloss.Color("42")
	colorFail   = lipgloss.Color("203")
)

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Status   lipgloss.Style
	Card     lipgloss.Style
	Pass     lipgloss.Style
	Fail     lipgloss.Style
}

func DefaultTheme() Theme {
	faint := lipgloss.NewStyle().Faint(true)
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Subtitle: faint,
		Help:     faint,
		Status:   lipgloss.NewStyle().Italic(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent),
		Pass: lipgloss.NewStyle().Foreground(colorPass),
		Fail: lipgloss.NewStyle().Foreground(colorFail).Bold(true),
	}
}

// Mark renders a PASS/FAIL badge.
func (t Theme) Mark(passed bool) string {
	if passed {
		return t.Pass.Render("PASS")
	}
	return t.Fail.Render("FAIL")
}
