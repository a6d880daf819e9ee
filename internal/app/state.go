package app

import (
	"github.com/philipparndt/goruler/internal/config"
	"github.com/philipparndt/goruler/pkg/geometry"
)

// DragState identifies which endpoint, if any, is being dragged
type DragState int

const (
	DragNone DragState = iota
	DragFrom
	DragTo
)

// Session owns the segment and drag state for one interactive run.
// All access happens on the event-loop goroutine; pointer events
// arrive strictly ordered, and every accepted drag step feeds the
// resolved endpoint back into the next one.
type Session struct {
	From, To   geometry.Vec2
	ScreenSize geometry.Vec2
	Dragging   DragState

	solver     geometry.Solver
	grabRadius float64

	initialLength float64
	halfWidth     float64
	placed        bool
}

// NewSession creates a session configured from cfg. The segment is
// placed on the first EnsurePlaced call, once the screen size is known.
func NewSession(cfg config.Config) *Session {
	return &Session{
		solver: geometry.Solver{MinLength: cfg.MinLength},
		// the grab area is wider than the drawn handle
		grabRadius:    cfg.ControlRadius * 4,
		initialLength: cfg.InitialLength,
		halfWidth:     cfg.HalfWidth,
	}
}

// ApplyConfig updates the tunables that may change during a session.
func (s *Session) ApplyConfig(cfg config.Config) {
	s.solver.MinLength = cfg.MinLength
	s.grabRadius = cfg.ControlRadius * 4
	s.halfWidth = cfg.HalfWidth
}

// EnsurePlaced records the screen size and, on the first call, centers
// the segment horizontally on the screen.
func (s *Session) EnsurePlaced(screen geometry.Vec2) {
	s.ScreenSize = screen
	if s.placed || screen.X == 0 || screen.Y == 0 {
		return
	}

	fromX := (screen.X-s.initialLength)/2 + s.halfWidth
	fromY := screen.Y/2 + s.halfWidth
	s.From = geometry.NewVec2(fromX, fromY)
	s.To = geometry.NewVec2(fromX+s.initialLength, fromY)
	s.placed = true
}

// BeginDrag hit-tests the cursor against both endpoint handles and
// starts a drag on the matching one. The from endpoint wins when the
// handles overlap. Returns the resulting state.
func (s *Session) BeginDrag(cursor geometry.Vec2) DragState {
	r2 := s.grabRadius * s.grabRadius
	if cursor.DistanceSquared(s.From) < r2 {
		s.Dragging = DragFrom
	} else if cursor.DistanceSquared(s.To) < r2 {
		s.Dragging = DragTo
	}
	return s.Dragging
}

// Drag resolves the cursor into a new position for the dragged
// endpoint. The other endpoint acts as the anchor for the distance
// and angle locks. Returns false when no drag is active.
func (s *Session) Drag(cursor geometry.Vec2, fixDistance, fixAngle bool) bool {
	switch s.Dragging {
	case DragFrom:
		s.From = s.solver.Resolve(s.From, s.To, cursor, s.ScreenSize, fixDistance, fixAngle)
	case DragTo:
		s.To = s.solver.Resolve(s.To, s.From, cursor, s.ScreenSize, fixDistance, fixAngle)
	default:
		return false
	}
	return true
}

// EndDrag returns the session to the idle state.
func (s *Session) EndDrag() {
	s.Dragging = DragNone
}

// Bounds returns the margin-expanded window rectangle of the segment.
func (s *Session) Bounds() geometry.Rect {
	return geometry.WindowBounds(s.From, s.To, s.halfWidth)
}
