package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goruler/version"
)

var rootCmd = &cobra.Command{
	Use:   "goruler",
	Short: "A command-line companion for the on-screen ruler",
	Long: `goruler inspects the geometry of the screen ruler without opening the
overlay. It resolves constrained drag positions, computes window
rectangles and renders snapshots of a ruler between two points.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
