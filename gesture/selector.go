package gesture

import "github.com/lixenwraith/drag-target/vmath"

// Touch is one active touch as seen on the current tick
type Touch struct {
	ID          int
	Pos         vmath.Point
	JustPressed bool
}

// Selector picks the single pointer that drives the gesture each tick.
// A touch pressed while the mouse is up takes over until it disappears;
// otherwise the mouse is used.
type Selector struct {
	touchID  int
	touching bool
	last     vmath.Point
}

// Select returns the level-triggered sample to feed a Button.
// touches lists the currently active touches; a followed touch missing from it
// is released at its last seen position.
func (s *Selector) Select(mouseDown bool, mouse vmath.Point, touches []Touch) (pressed bool, p vmath.Point) {
	if s.touching {
		for _, t := range touches {
			if t.ID == s.touchID {
				s.last = t.Pos
				return true, t.Pos
			}
		}
		s.touching = false
		return false, s.last
	}

	if !mouseDown {
		for _, t := range touches {
			if t.JustPressed {
				s.touchID = t.ID
				s.touching = true
				s.last = t.Pos
				return true, t.Pos
			}
		}
	}

	return mouseDown, mouse
}

// Touching reports whether a touch is being followed
func (s *Selector) Touching() bool { return s.touching }
