package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/drills/internal/domain"
)

func glideCmd() *cobra.Command {
	var names []string

	c := &cobra.Command{
		Use:   "glide",
		Short: "Mix the glide capability into records and invoke it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(names) == 0 {
				return fmt.Errorf("at least one --record is required")
			}

			out := cmd.OutOrStdout()
			mixin := domain.GlideMixin(out)

			for _, n := range names {
				n = strings.TrimSpace(n)
				rec := domain.NewRecord(n, nil)
				if err := mixin(rec); err != nil {
					return err
				}

				g, ok := domain.AsGlider(rec)
				if !ok {
					return fmt.Errorf("record %q has no glide capability", n)
				}
				fmt.Fprintf(out, "%s: ", n)
				g.Glide()
			}
			return nil
		},
	}

	c.Flags().StringArrayVarP(&names, "record", "r", nil, "Record name (repeatable)")
	return c
}
