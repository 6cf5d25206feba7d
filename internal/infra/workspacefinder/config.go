package workspacefinder

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/drills/internal/domain"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the workspace marker and configuration file name.
const ConfigFile = "drills.yaml"

// LoadConfig loads drills.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := configPath(root, ConfigFiles())
	if path == "" {
		path = filepath.Join(root, ConfigFile)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Drills.Defaults.DrillSet != "" {
		cfg.Defaults.DrillSet = y.Drills.Defaults.DrillSet
	}
	if y.Drills.Paths.DrillsDir != "" {
		cfg.Paths.DrillsDir = y.Drills.Paths.DrillsDir
	}
	if f := strings.ToLower(strings.TrimSpace(y.Drills.Output.Format)); f != "" {
		if f != "pretty" && f != "json" {
			return cfg, &domain.OpError{
				Op:   "workspacefinder.loadconfig",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  domain.ErrInvalidConfig,
			}
		}
		cfg.Output.Format = f
	}

	return cfg, nil
}

type yamlConfig struct {
	Drills struct {
		Defaults struct {
			DrillSet string `yaml:"drill_set"`
		} `yaml:"defaults"`

		Paths struct {
			DrillsDir string `yaml:"drills_dir"`
		} `yaml:"paths"`

		Output struct {
			Format string `yaml:"format"`
		} `yaml:"output"`
	} `yaml:"drills"`
}
