// Command hibou is the CLI front end for the interaction engine: it
// loads an analysis configuration and an in-process fixture (no
// concrete-syntax parser, per spec.md §1/§6), then drives
// pkg/analysis.Run / Explore and prints the resulting verdict.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath  string
	fixtureName string
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "hibou",
		Short: "hibou-passing interaction engine CLI",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML analysis options file (defaults to built-in defaults)")
	root.PersistentFlags().StringVar(&fixtureName, "fixture", "ping-pong", "in-process fixture to load: "+availableFixtureNames())

	root.AddCommand(newAnalyzeCommand())
	root.AddCommand(newExploreCommand())
	root.AddCommand(newSliceCommand())
	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
