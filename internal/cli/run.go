package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/drills/internal/domain"
	"github.com/aalvaropc/drills/internal/infra/logger"
	"github.com/aalvaropc/drills/internal/usecase"
)

func runCmd() *cobra.Command {
	var workspace string
	var drillSet string
	var format string

	c := &cobra.Command{
		Use:   "run",
		Short: "Run a drill set from a drills workspace",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			uc := usecase.NewRunDrills(ws.drills, usecase.WithLogger(logger.L()))

			rep, err := uc.Execute(cmd.Context(), resolveDrillSetArg(ws, drillSet))
			out := cmd.OutOrStdout()
			if err != nil {
				// Print whatever ran before the failure.
				if !rep.Started.IsZero() {
					_ = printReport(out, rep, resolveFormat(ws, format))
				}
				return err
			}

			if err := printReport(out, rep, resolveFormat(ws, format)); err != nil {
				return err
			}

			if fails := rep.FailedChecks(); fails > 0 {
				return fmt.Errorf("run failed (%d failed check(s))", fails)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&drillSet, "drill-set", "d", "", "Drill set name or path (optional; defaults to workspace default)")
	c.Flags().StringVar(&format, "format", "", "Output format: pretty|json (defaults to workspace setting)")
	return c
}

func printReport(w io.Writer, rep domain.Report, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "pretty", "":
		printPrettyReport(w, rep)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyReport(w io.Writer, rep domain.Report) {
	total := rep.Ended.Sub(rep.Started)
	if rep.Started.IsZero() || rep.Ended.IsZero() {
		total = 0
	}

	fmt.Fprintf(w, "Drill set: %s\n", rep.DrillSet)
	if rep.ID != "" {
		fmt.Fprintf(w, "Report ID: %s\n", rep.ID)
	}
	fmt.Fprintf(w, "Started:   %s\n", rep.Started.Format(time.RFC3339))
	fmt.Fprintf(w, "Duration:  %s\n", total)
	fmt.Fprintln(w)

	if t := rep.Thermostat; t != nil {
		fmt.Fprintln(w, "- thermostat")
		fmt.Fprintf(w, "  %s\n", formatReading(t.FahrenheitInitial, t.CelsiusInitial))
		if t.SetCelsius != nil {
			fmt.Fprintf(w, "  set %s°C -> %s\n", formatFloat(*t.SetCelsius), formatReading(t.FahrenheitFinal, t.CelsiusFinal))
		}
		fmt.Fprintln(w)
	}

	if len(rep.Records) > 0 {
		fmt.Fprintln(w, "- records")
		for _, r := range rep.Records {
			caps := "(none)"
			if len(r.Capabilities) > 0 {
				caps = strings.Join(r.Capabilities, ", ")
			}
			fmt.Fprintf(w, "  %s  capabilities: %s\n", r.Name, caps)
			for _, line := range r.Output {
				fmt.Fprintf(w, "    > %s\n", line)
			}
		}
		fmt.Fprintln(w)
	}

	if len(rep.Sentences) > 0 {
		fmt.Fprintln(w, "- longest word")
		for _, s := range rep.Sentences {
			fmt.Fprintf(w, "  %d %q  (%s)\n", s.Longest, s.Word, s.Sentence)
		}
		fmt.Fprintln(w)
	}

	if f := rep.Filter; f != nil {
		fmt.Fprintf(w, "- filter without %d\n", f.Elem)
		fmt.Fprintf(w, "  %v -> %v\n", f.Input, f.Result)
		fmt.Fprintln(w)
	}

	if r := rep.Roster; r != nil {
		status := "everyone here"
		if !r.EveryoneHere {
			status = "missing: " + strings.Join(r.Missing, ", ")
		}
		fmt.Fprintf(w, "- roster (%s)\n", strings.Join(r.Required, ", "))
		fmt.Fprintf(w, "  %s\n", status)
		fmt.Fprintln(w)
	}

	if len(rep.Checks) > 0 {
		pass, fail := countCheckPassFail(rep.Checks)
		fmt.Fprintf(w, "checks: %d pass / %d fail\n", pass, fail)
		for _, c := range rep.Checks {
			mark := "✓"
			if !c.Passed {
				mark = "✗"
			}
			fmt.Fprintf(w, "  %s %s — %s\n", mark, c.Name, c.Message)
		}
	}
}

func countCheckPassFail(in []domain.CheckResult) (pass int, fail int) {
	for _, c := range in {
		if c.Passed {
			pass++
		} else {
			fail++
		}
	}
	return pass, fail
}

func formatReading(f, c float64) string {
	return fmt.Sprintf("%s°F = %s°C", formatFloat(f), formatFloat(c))
}

func formatFloat(v float64) string {
	s := fmt.Sprintf("%.4f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
