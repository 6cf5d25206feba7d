package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/drills/internal/usecase"
)

func validateCmd() *cobra.Command {
	var workspace string
	var drillSet string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate a drill set without running it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			uc := usecase.NewValidateDrills(ws.drills)
			if err := uc.Execute(cmd.Context(), resolveDrillSetArg(ws, drillSet)); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&drillSet, "drill-set", "d", "", "Drill set name or path (optional; defaults to workspace default)")
	return c
}
