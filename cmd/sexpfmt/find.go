package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	patricia "github.com/tchap/go-patricia/v2/patricia"

	"github.com/arbortext/sexp/sexp"
)

func newFindCmd() *cobra.Command {
	var prefix string
	cmd := &cobra.Command{
		Use:   "find FILE",
		Short: "List distinct atoms in a file matching a prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(args[0], prefix)
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "only list atoms starting with this prefix")
	return cmd
}

func runFind(path, prefix string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	tree, err := sexp.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", relativeLabel(path), err)
	}

	trie := patricia.NewTrie()
	collectAtoms(tree.Root(), trie)

	var matches []string
	trie.VisitSubtree(patricia.Prefix(prefix), func(key patricia.Prefix, _ patricia.Item) error {
		matches = append(matches, string(key))
		return nil
	})

	for _, m := range matches {
		fmt.Println(m)
	}
	return nil
}

func collectAtoms(n sexp.Node, trie *patricia.Trie) {
	if n.IsAtom() {
		trie.Set(patricia.Prefix(n.Value()), struct{}{})
		return
	}
	for c := range n.Children() {
		collectAtoms(c, trie)
	}
}
