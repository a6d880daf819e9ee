package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goruler/pkg/geometry"
)

var (
	boundsFromX, boundsFromY float64
	boundsToX, boundsToY     float64
	boundsMargin             float64
)

var boundsCmd = &cobra.Command{
	Use:   "bounds",
	Short: "Compute the window rectangle for a ruler segment",
	Long: `Bounds prints the margin-expanded bounding rectangle the overlay would
use for a ruler between two endpoints.`,
	Run: runBounds,
}

func init() {
	rootCmd.AddCommand(boundsCmd)

	boundsCmd.Flags().Float64Var(&boundsFromX, "x1", 0, "X of the first endpoint")
	boundsCmd.Flags().Float64Var(&boundsFromY, "y1", 0, "Y of the first endpoint")
	boundsCmd.Flags().Float64Var(&boundsToX, "x2", 0, "X of the second endpoint")
	boundsCmd.Flags().Float64Var(&boundsToY, "y2", 0, "Y of the second endpoint")
	boundsCmd.Flags().Float64Var(&boundsMargin, "margin", geometry.RulerHalfWidth, "margin around the segment")

	boundsCmd.MarkFlagsRequiredTogether("x1", "y1", "x2", "y2")
}

func runBounds(cmd *cobra.Command, args []string) {
	from := geometry.NewVec2(boundsFromX, boundsFromY)
	to := geometry.NewVec2(boundsToX, boundsToY)

	rect := geometry.WindowBounds(from, to, boundsMargin)

	fmt.Printf("Window rectangle\n")
	fmt.Printf("================\n")
	fmt.Printf("Origin: (%d, %d)\n", rect.X, rect.Y)
	fmt.Printf("Size:   %d x %d\n", rect.W, rect.H)
}
