package render

import (
	"image"
	"testing"

	"github.com/philipparndt/goruler/pkg/geometry"
)

func TestImageMatchesBounds(t *testing.T) {
	from := geometry.NewVec2(100, 100)
	to := geometry.NewVec2(300, 200)
	bounds := geometry.WindowBounds(from, to, DefaultStyle().HalfWidth)

	img := Image(from, to, DefaultStyle(), bounds)

	if img.Bounds().Dx() != bounds.W || img.Bounds().Dy() != bounds.H {
		t.Errorf("Image failed: expected %dx%d, got %dx%d",
			bounds.W, bounds.H, img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestImageIsDeterministic(t *testing.T) {
	from := geometry.NewVec2(50, 80)
	to := geometry.NewVec2(420, 80)
	bounds := geometry.WindowBounds(from, to, DefaultStyle().HalfWidth)

	first := Image(from, to, DefaultStyle(), bounds).(*image.RGBA)
	second := Image(from, to, DefaultStyle(), bounds).(*image.RGBA)

	if len(first.Pix) != len(second.Pix) {
		t.Fatal("Image failed: pixel buffers differ in size")
	}
	for i := range first.Pix {
		if first.Pix[i] != second.Pix[i] {
			t.Fatalf("Image failed: pixel %d differs between renders", i)
		}
	}
}

func TestImagePaintsBody(t *testing.T) {
	from := geometry.NewVec2(100, 100)
	to := geometry.NewVec2(300, 100)
	style := DefaultStyle()
	bounds := geometry.WindowBounds(from, to, style.HalfWidth)

	img := Image(from, to, style, bounds)

	// the segment midpoint lies inside the body and must not be
	// fully transparent
	_, _, _, a := img.At(bounds.W/2, bounds.H/2).RGBA()
	if a == 0 {
		t.Error("Image failed: body center is transparent")
	}
}
