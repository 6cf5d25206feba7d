package tui

import (
	"log/slog"
	"time"

	"github.com/aalvaropc/drills/internal/ports"
)

// Deps are the collaborators the menu needs. Drill sets themselves are
// loaded per workspace, once the locator has found one.
type Deps struct {
	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer

	Logger *slog.Logger
	// LogPath is shown under the workspace banner when set.
	LogPath    string
	Debug      bool
	RunTimeout time.Duration
}
