package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/drills/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func checksSummary(rep domain.Report) string {
	if len(rep.Checks) == 0 {
		return "Done (no checks)"
	}
	fail := rep.FailedChecks()
	return fmt.Sprintf("Done: %d/%d checks passed", len(rep.Checks)-fail, len(rep.Checks))
}

func renderReport(rep domain.Report, th Theme) string {
	var b strings.Builder

	b.WriteString(th.Title.Render(rep.DrillSet))
	b.WriteString("\n")
	b.WriteString(th.Help.Render(rep.ID))
	b.WriteString("\n\n")

	if t := rep.Thermostat; t != nil {
		b.WriteString("Thermostat:\n")
		fmt.Fprintf(&b, "  %.2f°F = %.2f°C\n", t.FahrenheitInitial, t.CelsiusInitial)
		if t.SetCelsius != nil {
			fmt.Fprintf(&b, "  set %.2f°C -> %.2f°F\n", *t.SetCelsius, t.FahrenheitFinal)
		}
		b.WriteString("\n")
	}

	if len(rep.Records) > 0 {
		b.WriteString("Records:\n")
		for _, r := range rep.Records {
			b.WriteString("  - ")
			b.WriteString(r.Name)
			if len(r.Capabilities) > 0 {
				b.WriteString(" [")
				b.WriteString(strings.Join(r.Capabilities, ", "))
				b.WriteString("]")
			}
			b.WriteString("\n")
			for _, line := range r.Output {
				b.WriteString("      ")
				b.WriteString(line)
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	if len(rep.Sentences) > 0 {
		b.WriteString("Longest words:\n")
		for _, s := range rep.Sentences {
			fmt.Fprintf(&b, "  - %d %s  %s\n", s.Longest, s.Word, th.Help.Render(clampString(s.Sentence, 60)))
		}
		b.WriteString("\n")
	}

	if f := rep.Filter; f != nil {
		fmt.Fprintf(&b, "Filter (without %d):\n  %v\n\n", f.Elem, f.Result)
	}

	if r := rep.Roster; r != nil {
		b.WriteString("Roster:\n  ")
		if r.EveryoneHere {
			b.WriteString(th.Pass.Render("everyone here"))
		} else {
			b.WriteString(th.Fail.Render("missing " + strings.Join(r.Missing, ", ")))
		}
		b.WriteString("\n\n")
	}

	if len(rep.Checks) > 0 {
		b.WriteString("Checks:\n")
		for _, c := range rep.Checks {
			b.WriteString("  - ")
			b.WriteString(c.Name)
			b.WriteString(" [")
			b.WriteString(th.Mark(c.Passed))
			b.WriteString("] ")
			b.WriteString(c.Message)
			b.WriteString("\n")
		}
	}

	return b.String()
}
