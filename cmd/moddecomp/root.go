// Package main is the moddecomp CLI: decompose, convert, and generate
// subcommands wrapping the graph/decompose/mdtree/builder/dotio packages.
// There is no interactive tree-browser loop; survey's --interactive flag
// covers the one prompt this module commits to.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "moddecomp",
		Short:        "Compute the modular decomposition tree of a graph.",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose phase/timing logs")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	}

	root.AddCommand(newDecomposeCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newGenerateCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
