package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/drills/internal/domain"
)

func wordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "words <sentence...>",
		Short: "Print the length of the longest word in a sentence",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := strings.Join(args, " ")
			fmt.Fprintf(cmd.OutOrStdout(), "%d %q\n", domain.LongestWordLength(s), domain.LongestWord(s))
			return nil
		},
	}
}

func filterCmd() *cobra.Command {
	var elem int
	var arrays []string

	c := &cobra.Command{
		Use:   "filter",
		Short: "Drop every nested array that contains --elem",
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := make([][]int, 0, len(arrays))
			for i, a := range arrays {
				row, err := parseIntList(a)
				if err != nil {
					return fmt.Errorf("--array #%d: %w", i+1, err)
				}
				in = append(in, row)
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatNested(domain.FilterNested(in, elem)))
			return nil
		},
	}

	c.Flags().IntVar(&elem, "elem", 0, "Element to filter on")
	c.Flags().StringArrayVar(&arrays, "array", nil, "Comma separated integers (repeatable), e.g. 3,2,3")
	_ = c.MarkFlagRequired("elem")
	return c
}

func rosterCmd() *cobra.Command {
	var users []string
	var required []string

	c := &cobra.Command{
		Use:   "roster",
		Short: "Check that every required name is present in the roster",
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := domain.Roster{}
			for _, u := range users {
				if u = strings.TrimSpace(u); u != "" {
					r[u] = domain.User{Online: true}
				}
			}

			out := cmd.OutOrStdout()
			if domain.IsEveryoneHere(r, required...) {
				fmt.Fprintln(out, "everyone here")
				return nil
			}
			fmt.Fprintf(out, "missing: %s\n", strings.Join(domain.Missing(r, required...), ", "))
			return nil
		},
	}

	c.Flags().StringArrayVar(&users, "user", nil, "Name present in the roster (repeatable)")
	c.Flags().StringArrayVar(&required, "require", nil, "Required name (repeatable; defaults to Alan, Jeff, Ryan, Sarah)")
	return c
}

func parseIntList(s string) ([]int, error) {
	out := []int{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", part)
		}
		out = append(out, n)
	}
	return out, nil
}

func formatNested(arrs [][]int) string {
	rows := make([]string, 0, len(arrs))
	for _, a := range arrs {
		nums := make([]string, 0, len(a))
		for _, n := range a {
			nums = append(nums, strconv.Itoa(n))
		}
		rows = append(rows, "["+strings.Join(nums, ",")+"]")
	}
	return "[" + strings.Join(rows, ",") + "]"
}
