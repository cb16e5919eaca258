package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/arbortext/sexp/sexp"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats FILE...",
		Short: "Print node counts and depth for S-expression files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
	return cmd
}

func runStats(paths []string) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("file", "top-level forms", "nodes", "max depth")

	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		tree, err := sexp.Parse(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", relativeLabel(path), err)
		}

		table.Append(
			relativeLabel(path),
			fmt.Sprintf("%d", tree.Root().Len()),
			fmt.Sprintf("%d", tree.NodeCount()),
			fmt.Sprintf("%d", maxDepth(tree.Root())),
		)
	}

	return table.Render()
}

func maxDepth(n sexp.Node) int {
	if !n.IsList() || n.Len() == 0 {
		return 1
	}
	best := 0
	for c := range n.Children() {
		if d := maxDepth(c); d > best {
			best = d
		}
	}
	return best + 1
}
