package tui

import "github.com/aalvaropc/drills/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type drillSetsLoadedMsg struct {
	root string
	refs []domain.DrillSetRef
	err  error
}

type runnerDoneMsg struct {
	report domain.Report
	err    error
}
