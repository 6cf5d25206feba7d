package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/drills/internal/domain"
	"github.com/aalvaropc/drills/internal/infra/workspacefinder"
	"github.com/aalvaropc/drills/internal/infra/yamldrills"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	drills *yamldrills.Loader
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{
		root:   root,
		cfg:    cfg,
		drills: yamldrills.NewLoader(root, yamldrills.WithDrillsDir(cfg.Paths.DrillsDir)),
	}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `drills init`): %w", wd, err)
	}
	return root, nil
}

// resolveDrillSetArg turns the --drill-set flag into something the loader accepts.
// Empty means the workspace default; relative paths are taken from the workspace root.
func resolveDrillSetArg(ws *workspaceCtx, arg string) string {
	in := strings.TrimSpace(arg)
	if in == "" {
		return ws.cfg.Defaults.DrillSet
	}

	if looksLikePath(in) && !filepath.IsAbs(in) {
		return filepath.Join(ws.root, in)
	}
	return in
}

func resolveFormat(ws *workspaceCtx, flag string) string {
	f := strings.ToLower(strings.TrimSpace(flag))
	if f == "" && ws != nil {
		return ws.cfg.Output.Format
	}
	return f
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}
