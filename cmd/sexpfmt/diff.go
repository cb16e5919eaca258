package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/arbortext/sexp/sexp"
)

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff FILE_A FILE_B",
		Short: "Diff the canonicalized form of two S-expression files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args[0], args[1])
		},
	}
	return cmd
}

func runDiff(pathA, pathB string) error {
	a, err := canonicalize(pathA)
	if err != nil {
		return fmt.Errorf("%s: %w", relativeLabel(pathA), err)
	}
	b, err := canonicalize(pathB)
	if err != nil {
		return fmt.Errorf("%s: %w", relativeLabel(pathB), err)
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	add := color.New(color.FgGreen)
	del := color.New(color.FgRed).Add(color.Strikethrough)

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			add.Fprint(os.Stdout, d.Text)
		case diffmatchpatch.DiffDelete:
			del.Fprint(os.Stdout, d.Text)
		default:
			fmt.Fprint(os.Stdout, d.Text)
		}
	}
	fmt.Println()
	return nil
}

func canonicalize(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	tree, err := sexp.Parse(raw)
	if err != nil {
		return "", err
	}
	return string(sexp.Serialize(tree)), nil
}
