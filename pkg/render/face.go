// Package render draws the ruler face: the translucent body, the edge
// ticks and pixel labels, the endpoint grab handles and the angle
// readout near the anchor end.
package render

import (
	"fmt"
	"image"
	"math"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/philipparndt/goruler/pkg/geometry"
)

// Style holds the visual parameters of the ruler face
type Style struct {
	HalfWidth     float64 // half the body width, also the window margin
	ControlRadius float64 // radius of the endpoint grab handles
	Opacity       float64 // alpha of every painted element
	Background    float64 // gray level of the body fill, 0..1
	Accent        float64 // gray level of strokes and text, 0..1
}

// DefaultStyle returns the stock ruler appearance
func DefaultStyle() Style {
	return Style{
		HalfWidth:     geometry.RulerHalfWidth,
		ControlRadius: geometry.ControlRadius,
		Opacity:       0.6,
		Background:    1.0,
		Accent:        0.7,
	}
}

// Image renders the ruler between from and to into a new image sized
// to the given window rectangle. The endpoints are screen coordinates;
// the rectangle origin is subtracted so the face fills the image.
func Image(from, to geometry.Vec2, style Style, bounds geometry.Rect) image.Image {
	dc := gg.NewContext(bounds.W, bounds.H)
	pos := bounds.Pos()
	Draw(dc, from.Sub(pos), to.Sub(pos), style)
	return dc.Image()
}

// Draw paints the ruler face onto dc using window-local endpoint
// coordinates. It is a pure transformation of (from, to, style) onto
// the context; callers own clearing and flushing.
func Draw(dc *gg.Context, from, to geometry.Vec2, style Style) {
	dc.Push()
	defer dc.Pop()

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetLineWidth(2)

	// work in ruler-local coordinates: origin at from, X axis along the segment
	angle := to.Sub(from).Angle()
	dc.Translate(from.X, from.Y)
	dc.Rotate(angle)

	length := from.Distance(to)
	hw := style.HalfWidth

	// body
	dc.DrawRectangle(0, -hw, length, hw*2)
	dc.SetRGBA(style.Background, style.Background, style.Background, style.Opacity)
	dc.FillPreserve()
	dc.SetRGBA(style.Accent, style.Accent, style.Accent, style.Opacity)
	dc.Stroke()

	drawHandles(dc, length, style)
	drawTicks(dc, length, style)
	drawAngleReadout(dc, angle, hw, style)
	drawLabels(dc, length, style)
}

// drawHandles paints the circular grab areas at both endpoints, each
// with a half-circle accent stroke facing away from the body.
func drawHandles(dc *gg.Context, length float64, style Style) {
	r := style.ControlRadius

	dc.SetRGBA(style.Background, style.Background, style.Background, style.Opacity)
	dc.DrawCircle(0, 0, r)
	dc.Fill()
	dc.DrawCircle(length, 0, r)
	dc.Fill()

	dc.SetRGBA(style.Accent, style.Accent, style.Accent, style.Opacity)
	dc.DrawArc(0, 0, r, math.Pi*0.5, math.Pi*1.5)
	dc.Stroke()
	dc.DrawArc(length, 0, r, math.Pi*1.5, math.Pi*2.5)
	dc.Stroke()
}

// drawTicks paints a tick every 5 pixels along the top edge; every
// 50th pixel gets the deepest tick and every 25th a medium one.
func drawTicks(dc *gg.Context, length float64, style Style) {
	dc.SetRGBA(style.Accent, style.Accent, style.Accent, style.Opacity)

	for i := 0; i < int(length); i += 5 {
		var depth float64
		switch i % 50 {
		case 0:
			depth = 17
		case 25:
			depth = 12
		default:
			depth = 7
		}
		x := float64(i)
		dc.DrawLine(x, -style.HalfWidth, x, -(style.HalfWidth - depth))
		dc.Stroke()
	}
}

// drawLabels paints the pixel count every 50 pixels, fading toward the
// background color within the last 50 pixels of the ruler.
func drawLabels(dc *gg.Context, length float64, style Style) {
	for i := 50; i < int(length); i += 50 {
		visibility := math.Min((length-float64(i))/50.0, 1.0)
		c := style.Accent*visibility + style.Background*(1.0-visibility)
		dc.SetRGBA(c, c, c, style.Opacity)
		dc.DrawStringAnchored(fmt.Sprintf("%d", i), float64(i), -style.HalfWidth+22, 0.5, 0.5)
	}
}

// drawAngleReadout paints a small horizon line, the current direction
// line, an arc between them and the angle in degrees near the anchor
// handle. Screen Y grows downward, so a positive rotation angle reads
// as 360−angle degrees.
func drawAngleReadout(dc *gg.Context, angle, hw float64, style Style) {
	dc.Push()
	defer dc.Pop()

	dc.SetRGBA(style.Accent, style.Accent, style.Accent, style.Opacity)
	dc.Translate(30, hw-30)

	dc.DrawLine(0, 0, 30, 0)
	dc.Stroke()
	dc.DrawLine(0, 0, math.Cos(angle)*30, -math.Sin(angle)*30)
	dc.Stroke()
	dc.DrawArc(0, 0, 16, 0, -angle)
	dc.Stroke()

	display := math.Abs(angle) * 180 / math.Pi
	if angle > 0 {
		display = 360 - angle*180/math.Pi
	}
	dc.DrawString(fmt.Sprintf("%.2f°", display), 35, 4)
}
