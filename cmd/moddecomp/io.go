package main

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	log "github.com/sirupsen/logrus"

	"github.com/tedderlab/moddecomp/dotio"
	"github.com/tedderlab/moddecomp/graph"
)

// resolveInputPath returns path unchanged, or — when path is empty and
// interactive is set — prompts for one via survey. This is the one
// interactive touchpoint the CLI offers; there is no full menu-driven
// browser.
func resolveInputPath(path string, interactive bool) (string, error) {
	if path != "" {
		return path, nil
	}
	if !interactive {
		return "", fmt.Errorf("moddecomp: no input file given (use -i or --interactive)")
	}
	answer := ""
	prompt := &survey.Input{Message: "Path to a .dot file:"}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", fmt.Errorf("moddecomp: interactive prompt failed: %w", err)
	}
	return answer, nil
}

// readGraphFile loads and parses a DOT file into a graph plus its vertex
// labels in declaration order.
func readGraphFile(path string) (*graph.Graph, []string, error) {
	log.Debugf("reading %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("moddecomp: %w", err)
	}
	return dotio.ReadString(string(data))
}
