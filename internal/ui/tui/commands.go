package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/drills/internal/domain"
	"github.com/aalvaropc/drills/internal/infra/workspacefinder"
	"github.com/aalvaropc/drills/internal/infra/yamldrills"
	"github.com/aalvaropc/drills/internal/usecase"
)

// defaultRunTimeout bounds a drill set run when Deps.RunTimeout is unset.
const defaultRunTimeout = time.Minute

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, err: errors.New("WorkspaceLocator is nil")}
		}

		root, err := deps.WorkspaceLocator.FindRoot(wd)
		if err != nil {
			return workspaceRefreshedMsg{cwd: wd, err: err}
		}
		return workspaceRefreshedMsg{cwd: wd, found: true, root: root}
	}
}

func cmdInitWorkspace(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}
		err := deps.WorkspaceInitializer.Init(domain.WorkspaceSpec{Root: root}, false)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

func newDrillsLoader(root string) (*yamldrills.Loader, error) {
	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}
	return yamldrills.NewLoader(root, yamldrills.WithDrillsDir(cfg.Paths.DrillsDir)), nil
}

func cmdLoadDrillSets(root string) tea.Cmd {
	return func() tea.Msg {
		loader, err := newDrillsLoader(root)
		if err != nil {
			return drillSetsLoadedMsg{root: root, err: err}
		}
		refs, err := loader.ListDrillSets(root)
		return drillSetsLoadedMsg{root: root, refs: refs, err: err}
	}
}

func listenRunner(ch <-chan runnerDoneMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return runnerDoneMsg{err: errors.New("runner channel closed")}
		}
		return msg
	}
}

// startRunAsync runs the drill set at path in the background and delivers
// the result as a runnerDoneMsg.
func startRunAsync(root, path string, deps Deps) tea.Cmd {
	ch := make(chan runnerDoneMsg, 1)
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	timeout := deps.RunTimeout
	if timeout <= 0 {
		timeout = defaultRunTimeout
	}

	go func() {
		defer close(ch)

		loader, err := newDrillsLoader(root)
		if err != nil {
			log.Error("tui.run.load_config.failed", "err", err)
			ch <- runnerDoneMsg{err: err}
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		rep, err := usecase.NewRunDrills(loader, usecase.WithLogger(log)).Execute(ctx, path)
		if err != nil {
			log.Error("tui.run.failed", "path", path, "err", err)
		}
		ch <- runnerDoneMsg{report: rep, err: err}
	}()

	return listenRunner(ch)
}
