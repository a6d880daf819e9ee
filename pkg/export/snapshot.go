// Package export writes snapshots of the ruler to image files.
package export

import (
	"fmt"
	"math"
	"os"

	"git.sr.ht/~sbinet/gg"
	svg "github.com/ajstarks/svgo"

	"github.com/philipparndt/goruler/pkg/geometry"
	"github.com/philipparndt/goruler/pkg/render"
)

// SnapshotPNG renders the ruler between from and to into a PNG file.
// The image covers the segment's window rectangle; the endpoints keep
// their relative placement inside it.
func SnapshotPNG(path string, from, to geometry.Vec2, style render.Style) error {
	bounds := geometry.WindowBounds(from, to, style.HalfWidth)
	if bounds.W <= 0 || bounds.H <= 0 {
		return fmt.Errorf("degenerate snapshot bounds %+v", bounds)
	}

	img := render.Image(from, to, style, bounds)
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// SnapshotSVG writes a vector snapshot of the ruler. The drawing uses
// a group transform into ruler-local coordinates, so the body, ticks
// and labels stay axis-aligned in the markup.
func SnapshotSVG(path string, from, to geometry.Vec2, style render.Style) error {
	bounds := geometry.WindowBounds(from, to, style.HalfWidth)
	if bounds.W <= 0 || bounds.H <= 0 {
		return fmt.Errorf("degenerate snapshot bounds %+v", bounds)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	defer f.Close()

	local := from.Sub(bounds.Pos())
	angle := to.Sub(from).Angle() * 180 / math.Pi
	length := from.Distance(to)
	hw := style.HalfWidth

	fill := grayAttr("fill", style.Background, style.Opacity)
	stroke := grayAttr("stroke", style.Accent, style.Opacity) + ";stroke-width:2;fill:none"
	text := grayAttr("fill", style.Accent, style.Opacity) + ";font-size:14px;text-anchor:middle"

	canvas := svg.New(f)
	canvas.Start(bounds.W, bounds.H)
	canvas.Gtransform(fmt.Sprintf("translate(%.2f,%.2f) rotate(%.2f)", local.X, local.Y, angle))

	canvas.Rect(0, int(-hw), int(length), int(hw*2), fill)
	canvas.Rect(0, int(-hw), int(length), int(hw*2), stroke)

	canvas.Circle(0, 0, int(style.ControlRadius), fill)
	canvas.Circle(int(length), 0, int(style.ControlRadius), fill)

	for i := 0; i < int(length); i += 5 {
		depth := 7
		switch i % 50 {
		case 0:
			depth = 17
		case 25:
			depth = 12
		}
		canvas.Line(i, int(-hw), i, int(-hw)+depth, stroke)
	}

	for i := 50; i < int(length); i += 50 {
		canvas.Text(i, int(-hw)+26, fmt.Sprintf("%d", i), text)
	}

	canvas.Gend()
	canvas.End()
	return nil
}

// grayAttr formats a gray level 0..1 as an SVG style attribute.
func grayAttr(attr string, level, opacity float64) string {
	v := int(level * 255)
	return fmt.Sprintf("%s:rgb(%d,%d,%d);%s-opacity:%.2f", attr, v, v, v, attr, opacity)
}
