package main

import (
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tedderlab/moddecomp/decompose"
	"github.com/tedderlab/moddecomp/mdtree"
)

func newDecomposeCmd() *cobra.Command {
	var input string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "decompose",
		Short: "Compute and print the modular decomposition tree of a DOT graph.",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveInputPath(input, interactive)
			if err != nil {
				return err
			}

			g, labels, err := readGraphFile(path)
			if err != nil {
				return err
			}
			log.Debugf("parsed graph: %d vertices", g.N())

			tree, err := decompose.Decompose(g)
			if err != nil {
				return fmt.Errorf("moddecomp: %w", err)
			}

			printTree(cmd.OutOrStdout(), tree, labels)
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "path to a .dot file")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "prompt for the input path if not given")
	return cmd
}

// printTree renders an MDTree as an indented text outline: each internal
// node's label on its own line, children indented two spaces further, leaves
// printed as their label (or numeric id, if labels is nil).
func printTree(w io.Writer, tree *mdtree.MDTree, labels []string) {
	vertexLabel := func(v int) string {
		if labels != nil {
			return labels[v]
		}
		return fmt.Sprintf("%d", v)
	}

	var walk func(n *mdtree.Node, depth int)
	walk = func(n *mdtree.Node, depth int) {
		indent := strings.Repeat("  ", depth)
		if n.IsLeaf() {
			fmt.Fprintf(w, "%s%s\n", indent, vertexLabel(n.Vertex()))
			return
		}
		fmt.Fprintf(w, "%s%s\n", indent, n.Label())
		for _, c := range n.Children() {
			walk(c, depth+1)
		}
	}

	root := tree.Root()
	if root == nil {
		fmt.Fprintln(w, "(empty graph)")
		return
	}
	walk(root, 0)
}
