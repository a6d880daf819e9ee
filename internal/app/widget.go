package app

import (
	"image"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/goruler/internal/config"
	"github.com/philipparndt/goruler/pkg/geometry"
	"github.com/philipparndt/goruler/pkg/render"
)

// redrawInterval throttles refreshes during a drag, matching a 60 Hz
// display without flooding the renderer on fast pointer devices.
const redrawInterval = 16 * time.Millisecond

// rulerWidget is the full-screen interactive surface. It tracks the
// pointer for endpoint drags and paints the ruler face at the
// segment's window rectangle.
type rulerWidget struct {
	widget.BaseWidget
	session *Session
	style   render.Style
	raster  *canvas.Raster

	lastUpdate time.Time
}

func newRulerWidget(session *Session, style render.Style) *rulerWidget {
	w := &rulerWidget{
		session: session,
		style:   style,
	}
	w.raster = canvas.NewRaster(w.generate)
	w.ExtendBaseWidget(w)
	return w
}

// generate renders the face into the backing store fyne allocates for
// the raster's current on-screen rectangle.
func (w *rulerWidget) generate(pw, ph int) image.Image {
	bounds := w.session.Bounds()
	bounds.W, bounds.H = pw, ph
	return render.Image(w.session.From, w.session.To, w.style, bounds)
}

// ApplyConfig adopts a live-reloaded configuration and repaints.
func (w *rulerWidget) ApplyConfig(cfg config.Config) {
	w.session.ApplyConfig(cfg)
	w.style.HalfWidth = cfg.HalfWidth
	w.style.ControlRadius = cfg.ControlRadius
	w.style.Opacity = cfg.Opacity
	w.style.Background = cfg.Background
	w.style.Accent = cfg.Accent
	w.Refresh()
}

// MouseDown starts a drag when the primary button lands on a handle
func (w *rulerWidget) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	w.session.BeginDrag(vec(ev.Position))
}

// MouseUp finishes the active drag and forces a final repaint
func (w *rulerWidget) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	w.session.EndDrag()
	w.Refresh()
}

// MouseIn implements desktop.Hoverable
func (w *rulerWidget) MouseIn(*desktop.MouseEvent) {}

// MouseOut implements desktop.Hoverable
func (w *rulerWidget) MouseOut() {}

// MouseMoved feeds pointer motion into the constraint solver while a
// drag is active. Control locks the distance, Shift locks the angle.
func (w *rulerWidget) MouseMoved(ev *desktop.MouseEvent) {
	fixDistance := ev.Modifier&fyne.KeyModifierControl != 0
	fixAngle := ev.Modifier&fyne.KeyModifierShift != 0

	if !w.session.Drag(vec(ev.Position), fixDistance, fixAngle) {
		return
	}

	if now := time.Now(); now.Sub(w.lastUpdate) > redrawInterval {
		w.lastUpdate = now
		w.Refresh()
	}
}

// CreateRenderer implements fyne.Widget
func (w *rulerWidget) CreateRenderer() fyne.WidgetRenderer {
	return &rulerWidgetRenderer{widget: w}
}

// rulerWidgetRenderer keeps the raster positioned over the segment's
// window rectangle, the way the original overlay moved its window.
type rulerWidgetRenderer struct {
	widget *rulerWidget
}

func (r *rulerWidgetRenderer) Layout(size fyne.Size) {
	r.widget.session.EnsurePlaced(geometry.NewVec2(float64(size.Width), float64(size.Height)))
	r.place()
}

func (r *rulerWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *rulerWidgetRenderer) Refresh() {
	r.place()
	canvas.Refresh(r.widget.raster)
}

// place moves and resizes the raster to the current window rectangle
func (r *rulerWidgetRenderer) place() {
	bounds := r.widget.session.Bounds()
	r.widget.raster.Move(fyne.NewPos(float32(bounds.X), float32(bounds.Y)))
	r.widget.raster.Resize(fyne.NewSize(float32(bounds.W), float32(bounds.H)))
}

func (r *rulerWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.widget.raster}
}

func (r *rulerWidgetRenderer) Destroy() {}

func vec(p fyne.Position) geometry.Vec2 {
	return geometry.NewVec2(float64(p.X), float64(p.Y))
}
