package tui

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/drills/internal/domain"
)

var (
	reLine  = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)
	reField = regexp.MustCompile(`\bfield\s+(\S+?):`)
)

// userMessage maps an error to a one-line status for the footer.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindNotFound:
			switch {
			case strings.HasPrefix(oe.Op, "workspacefinder.findroot"):
				return "Workspace not found"
			case strings.HasPrefix(oe.Op, "yamldrills"), strings.HasPrefix(oe.Op, "config.load"):
				return "Drill set not found"
			case strings.HasPrefix(oe.Op, "record.invoke"):
				return "Capability not found"
			}
			return "Not found"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}
			if f := extractField(err.Error()); f != "" {
				return "Invalid " + f + " in " + base
			}
			if line := extractLine(err.Error()); line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid config"

		case domain.KindInvalidArgument:
			return "Invalid value (see logs)"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "Run timed out"
	}
	if looksLikeYAMLProblem(err.Error()) {
		if line := extractLine(err.Error()); line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}
	return "Unexpected error (see logs)"
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	if m := reLine.FindStringSubmatch(s); len(m) == 2 {
		return m[1]
	}
	return ""
}

func extractField(s string) string {
	if m := reField.FindStringSubmatch(s); len(m) == 2 {
		return m[1]
	}
	return ""
}
