package export

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/goruler/pkg/geometry"
	"github.com/philipparndt/goruler/pkg/render"
)

func TestSnapshotPNGWritesImageSizedToBounds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ruler.png")
	from := geometry.NewVec2(100, 100)
	to := geometry.NewVec2(300, 100)
	style := render.DefaultStyle()

	err := SnapshotPNG(path, from, to, style)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)

	bounds := geometry.WindowBounds(from, to, style.HalfWidth)
	assert.Equal(t, bounds.W, img.Bounds().Dx())
	assert.Equal(t, bounds.H, img.Bounds().Dy())
}

func TestSnapshotPNGDegenerateBounds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ruler.png")
	style := render.DefaultStyle()
	style.HalfWidth = 0

	p := geometry.NewVec2(100, 100)
	err := SnapshotPNG(path, p, p, style)
	assert.Error(t, err)
}

func TestSnapshotSVGStructure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ruler.svg")
	from := geometry.NewVec2(100, 100)
	to := geometry.NewVec2(300, 300)

	err := SnapshotSVG(path, from, to, render.DefaultStyle())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	markup := string(data)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(markup), "<?xml"))
	assert.Contains(t, markup, "<svg")
	assert.Contains(t, markup, "rotate(45.00)")
	assert.Contains(t, markup, "</svg>")
}
