package usecase

import (
	"path/filepath"
	"strings"

	"github.com/aalvaropc/drills/internal/domain"
	"github.com/aalvaropc/drills/internal/ports"
)

type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer) *InitWorkspace {
	return &InitWorkspace{initializer: initializer}
}

// Execute scaffolds a workspace at root (the current directory when empty)
// and returns the absolute root it used.
func (uc *InitWorkspace) Execute(root string, force bool) (string, error) {
	if strings.TrimSpace(root) == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", &domain.OpError{
			Op:   "usecase.init_workspace",
			Kind: domain.KindInvalidArgument,
			Path: root,
			Err:  err,
		}
	}
	if err := uc.initializer.Init(domain.WorkspaceSpec{Root: abs}, force); err != nil {
		return "", err
	}
	return abs, nil
}
