package domain

// Config represents the workspace configuration loaded from drills.yaml.
type Config struct {
	Defaults DefaultsConfig
	Paths    PathsConfig
	Output   OutputConfig
}

type DefaultsConfig struct {
	DrillSet string
}

type PathsConfig struct {
	DrillsDir string
}

type OutputConfig struct {
	Format string
}

// DefaultConfig provides sane defaults if drills.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			DrillSet: "basics",
		},
		Paths: PathsConfig{
			DrillsDir: "drills",
		},
		Output: OutputConfig{
			Format: "pretty",
		},
	}
}

// WorkspaceSpec describes where a workspace should be created.
type WorkspaceSpec struct {
	Root string
}
