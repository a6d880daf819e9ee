package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goruler/pkg/geometry"
)

var (
	resolvePrevX, resolvePrevY     float64
	resolveAnchorX, resolveAnchorY float64
	resolveCursorX, resolveCursorY float64
	resolveScreenW, resolveScreenH float64
	resolveFixDistance             bool
	resolveFixAngle                bool
	resolveMinLength               float64
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a drag position under the ruler's constraints",
	Long: `Resolve feeds a raw cursor position through the drag constraint solver
and prints the endpoint position that the overlay would use: distance
and angle locks, minimum length and the screen clamp all apply in
their interactive order.`,
	Run: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().Float64Var(&resolvePrevX, "px", 0, "X of the endpoint before the drag step")
	resolveCmd.Flags().Float64Var(&resolvePrevY, "py", 0, "Y of the endpoint before the drag step")
	resolveCmd.Flags().Float64Var(&resolveAnchorX, "ax", 0, "X of the anchor endpoint")
	resolveCmd.Flags().Float64Var(&resolveAnchorY, "ay", 0, "Y of the anchor endpoint")
	resolveCmd.Flags().Float64Var(&resolveCursorX, "cx", 0, "X of the cursor")
	resolveCmd.Flags().Float64Var(&resolveCursorY, "cy", 0, "Y of the cursor")
	resolveCmd.Flags().Float64Var(&resolveScreenW, "width", 1920, "screen width")
	resolveCmd.Flags().Float64Var(&resolveScreenH, "height", 1080, "screen height")
	resolveCmd.Flags().BoolVar(&resolveFixDistance, "fix-distance", false, "lock the pre-drag distance")
	resolveCmd.Flags().BoolVar(&resolveFixAngle, "fix-angle", false, "lock the pre-drag angle")
	resolveCmd.Flags().Float64Var(&resolveMinLength, "min-length", geometry.MinLength, "minimum segment length")

	resolveCmd.MarkFlagsRequiredTogether("px", "py")
	resolveCmd.MarkFlagsRequiredTogether("ax", "ay")
	resolveCmd.MarkFlagsRequiredTogether("cx", "cy")
}

func runResolve(cmd *cobra.Command, args []string) {
	solver := geometry.Solver{MinLength: resolveMinLength}

	prev := geometry.NewVec2(resolvePrevX, resolvePrevY)
	anchor := geometry.NewVec2(resolveAnchorX, resolveAnchorY)
	cursor := geometry.NewVec2(resolveCursorX, resolveCursorY)
	screen := geometry.NewVec2(resolveScreenW, resolveScreenH)

	result := solver.Resolve(prev, anchor, cursor, screen, resolveFixDistance, resolveFixAngle)

	fmt.Printf("Resolved endpoint: (%.3f, %.3f)\n", result.X, result.Y)
	fmt.Printf("Distance to anchor: %.3f\n", result.Distance(anchor))
	fmt.Printf("Angle: %.2f°\n", result.Sub(anchor).Angle()*180/math.Pi)
}
