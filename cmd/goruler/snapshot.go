package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goruler/internal/config"
	"github.com/philipparndt/goruler/pkg/export"
	"github.com/philipparndt/goruler/pkg/geometry"
	"github.com/philipparndt/goruler/pkg/render"
)

var (
	snapshotFromX, snapshotFromY float64
	snapshotToX, snapshotToY     float64
	snapshotConfigPath           string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <file>",
	Short: "Render a ruler between two points to a PNG or SVG file",
	Long: `Snapshot renders the ruler face exactly as the overlay draws it, into
an image file sized to the segment's window rectangle. The output
format follows the file extension (.png or .svg).`,
	Args: cobra.ExactArgs(1),
	Run:  runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)

	snapshotCmd.Flags().Float64Var(&snapshotFromX, "x1", 0, "X of the anchor endpoint")
	snapshotCmd.Flags().Float64Var(&snapshotFromY, "y1", 0, "Y of the anchor endpoint")
	snapshotCmd.Flags().Float64Var(&snapshotToX, "x2", 400, "X of the other endpoint")
	snapshotCmd.Flags().Float64Var(&snapshotToY, "y2", 0, "Y of the other endpoint")
	snapshotCmd.Flags().StringVar(&snapshotConfigPath, "config", "", "configuration file to style the ruler")

	snapshotCmd.MarkFlagsRequiredTogether("x1", "y1", "x2", "y2")
}

func runSnapshot(cmd *cobra.Command, args []string) {
	filename := args[0]

	style := render.DefaultStyle()
	if snapshotConfigPath != "" {
		cfg, err := config.Load(snapshotConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		style = render.Style{
			HalfWidth:     cfg.HalfWidth,
			ControlRadius: cfg.ControlRadius,
			Opacity:       cfg.Opacity,
			Background:    cfg.Background,
			Accent:        cfg.Accent,
		}
	}

	from := geometry.NewVec2(snapshotFromX, snapshotFromY)
	to := geometry.NewVec2(snapshotToX, snapshotToY)

	var err error
	switch {
	case strings.HasSuffix(filename, ".svg"):
		err = export.SnapshotSVG(filename, from, to, style)
	default:
		err = export.SnapshotPNG(filename, from, to, style)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering snapshot: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%.1f px segment)\n", filename, from.Distance(to))
}
