package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arbortext/sexp/sexp"
)

func newFmtCmd() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "fmt FILE...",
		Short: "Canonicalize S-expression files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if err := fmtOne(path, write); err != nil {
					return fmt.Errorf("%s: %w", relativeLabel(path), err)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the canonicalized form back to the file instead of stdout")
	return cmd
}

func fmtOne(path string, write bool) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	tree, err := sexp.Parse(raw)
	if err != nil {
		return err
	}
	out := sexp.Serialize(tree)
	out = append(out, '\n')

	if write {
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		return os.WriteFile(path, out, info.Mode().Perm())
	}
	_, err = os.Stdout.Write(out)
	return err
}
