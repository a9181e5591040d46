// Package drag tracks the single draggable square and the gesture moving it.
//
// The session is a two-state machine:
//
//	Idle --Grant--> Dragging --Move--> Dragging --Release--> Idle
//
// Move displacements are cumulative since Grant, not per-event increments.
// Release flattens the live displacement into the base position so the next
// gesture starts where the previous one ended.
//
// Not safe for concurrent use; all calls come from the host's event loop.
package drag

import (
	"github.com/lixenwraith/drag-target/palette"
	"github.com/lixenwraith/drag-target/vmath"
)

// State is the gesture state
type State uint8

const (
	StateIdle State = iota
	StateDragging
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Square is the draggable square as seen by renderers
type Square struct {
	Position vmath.Point
	Color    palette.Color
	Size     float64
}

// Rect returns the square's bounds
func (s Square) Rect() vmath.Rect {
	return vmath.RectAt(s.Position, s.Size)
}

// Session owns the square and the active gesture
type Session struct {
	base  vmath.Point // offset captured at grant, or the resting position
	delta vmath.Point // displacement since grant
	state State

	color palette.Color
	size  float64
}

// NewSession creates an idle session with the square resting at pos
func NewSession(pos vmath.Point, color palette.Color, size float64) *Session {
	return &Session{
		base:  pos,
		color: color,
		size:  size,
	}
}

// Grant starts a gesture at the square's current position.
// A grant during an active gesture flattens it first.
func (s *Session) Grant() {
	s.flatten()
	s.state = StateDragging
}

// Move sets the displacement since Grant; ignored when idle
func (s *Session) Move(dx, dy float64) {
	if s.state != StateDragging {
		return
	}
	s.delta = vmath.Point{X: dx, Y: dy}
}

// Release ends the gesture and reports whether the square overlaps target.
// Releasing an idle session is a no-op and reports false.
func (s *Session) Release(target vmath.Rect) bool {
	if s.state != StateDragging {
		return false
	}
	s.flatten()
	s.state = StateIdle
	return s.Square().Rect().Overlaps(target)
}

// Respawn replaces the square and abandons any gesture
func (s *Session) Respawn(pos vmath.Point, color palette.Color) {
	s.base = pos
	s.delta = vmath.Point{}
	s.color = color
	s.state = StateIdle
}

func (s *Session) flatten() {
	s.base = s.base.Add(s.delta)
	s.delta = vmath.Point{}
}

// Position returns the rendered position, base plus live displacement
func (s *Session) Position() vmath.Point { return s.base.Add(s.delta) }

// Base returns the gesture baseline
func (s *Session) Base() vmath.Point { return s.base }

// Delta returns the live displacement since grant
func (s *Session) Delta() vmath.Point { return s.delta }

func (s *Session) State() State { return s.state }

func (s *Session) Dragging() bool { return s.state == StateDragging }

// Square returns a snapshot of the square at its rendered position
func (s *Session) Square() Square {
	return Square{
		Position: s.Position(),
		Color:    s.color,
		Size:     s.size,
	}
}
