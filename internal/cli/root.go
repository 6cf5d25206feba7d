package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/drills/internal/infra/fsworkspace"
	"github.com/aalvaropc/drills/internal/infra/logger"
	"github.com/aalvaropc/drills/internal/infra/workspacefinder"
	"github.com/aalvaropc/drills/internal/ui/tui"
)

func Execute() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run executes the command tree and closes the log file afterwards,
// including when a command fails: cobra skips post-run hooks on error.
func run(args []string, out, errOut io.Writer) error {
	cmd, closeLog := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	err := cmd.Execute()
	if cerr := closeLog(); err == nil {
		err = cerr
	}
	return err
}

func newRootCmd() (*cobra.Command, func() error) {
	var debug bool
	var logLevel string
	var cleanup func() error

	cmd := &cobra.Command{
		Use:          "drills",
		Short:        "drills — run small programming drills from YAML drill sets",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if _, err := logger.ParseLevel(logLevel); err != nil {
				return err
			}

			wd, err := os.Getwd()
			if err != nil {
				return nil
			}
			wd, _ = filepath.Abs(wd)

			// Only log into an existing workspace.
			root, ferr := workspacefinder.NewFinder().FindRoot(wd)
			if ferr != nil || root == "" {
				return nil
			}

			c, err := logger.Setup(logger.Config{Root: root, Level: logLevel, Debug: debug})
			if err == nil {
				cleanup = c
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			deps := tui.Deps{
				WorkspaceLocator:     workspacefinder.NewFinder(),
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Logger:               logger.L(),
				Debug:                debug,
			}
			if logger.IsReady() == nil {
				deps.LogPath = logger.Path()
			}
			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .drills/logs/drills.log")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", logger.LevelInfo, "log level: debug|info|warn|error")

	cmd.AddCommand(
		runCmd(),
		validateCmd(),
		listCmd(),
		initCmd(),
		versionCmd(),
		thermostatCmd(),
		glideCmd(),
		wordsCmd(),
		filterCmd(),
		rosterCmd(),
	)

	closeLog := func() error {
		if cleanup == nil {
			return nil
		}
		err := cleanup()
		cleanup = nil
		return err
	}
	return cmd, closeLog
}
