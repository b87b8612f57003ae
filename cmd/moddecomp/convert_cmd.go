package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tedderlab/moddecomp/dotio"
)

func newConvertCmd() *cobra.Command {
	var input, output string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Re-emit a DOT graph, normalizing it through the dotio subset grammar.",
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

			out, err := dotio.WriteString(g, labels)
			if err != nil {
				return fmt.Errorf("moddecomp: %w", err)
			}

			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}
			return os.WriteFile(output, []byte(out), 0o644)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "path to a .dot file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "path to write the result (default: stdout)")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "prompt for the input path if not given")
	return cmd
}
