package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/drills/internal/domain"
	"github.com/aalvaropc/drills/internal/ports"
)

// Finder locates a drills workspace root by searching upward for a config file.
type Finder struct {
	ConfigFiles []string // defaults to drills.yaml, drills.yml
}

func NewFinder() *Finder {
	return &Finder{ConfigFiles: ConfigFiles()}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidArgument,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// A file path starts the search from its directory.
	if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	names := f.ConfigFiles
	if len(names) == 0 {
		names = ConfigFiles()
	}

	for cur := filepath.Clean(abs); ; {
		if configPath(cur, names) != "" {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Path: abs,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

// ConfigFiles lists the accepted config file names in lookup order.
func ConfigFiles() []string {
	return []string{ConfigFile, "drills.yml"}
}

func configPath(dir string, names []string) string {
	for _, n := range names {
		p := filepath.Join(dir, n)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}
