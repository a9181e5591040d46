// Package gesture converts absolute pointer samples into drag gestures.
// Hosts report where the pointer is; the tracker reports displacement since
// the press to the controller, one pointer at a time.
package gesture

import (
	"github.com/lixenwraith/drag-target/game"
	"github.com/lixenwraith/drag-target/vmath"
)

// Target is the controller surface the tracker drives
type Target interface {
	SquareContains(p vmath.Point) bool
	Grant()
	Move(dx, dy float64)
	Release() game.DropResult
}

// Tracker follows one pointer from press to release
type Tracker struct {
	target   Target
	tracking bool
	origin   vmath.Point
	last     vmath.Point
}

func NewTracker(target Target) *Tracker {
	return &Tracker{target: target}
}

// Press begins a gesture when p lands on the square.
// Returns true if a gesture started.
func (t *Tracker) Press(p vmath.Point) bool {
	if t.tracking || !t.target.SquareContains(p) {
		return false
	}
	t.tracking = true
	t.origin = p
	t.last = p
	t.target.Grant()
	return true
}

// Drag reports the pointer at p; ignored unless a gesture is active
func (t *Tracker) Drag(p vmath.Point) {
	if !t.tracking {
		return
	}
	t.last = p
	d := p.Sub(t.origin)
	t.target.Move(d.X, d.Y)
}

// Release ends the gesture at p.
// ok is false when no gesture was active.
func (t *Tracker) Release(p vmath.Point) (result game.DropResult, ok bool) {
	if !t.tracking {
		return game.DropResult{}, false
	}
	t.Drag(p)
	t.tracking = false
	return t.target.Release(), true
}

// Cancel ends the gesture at the last reported point
func (t *Tracker) Cancel() (game.DropResult, bool) {
	return t.Release(t.last)
}

func (t *Tracker) Tracking() bool { return t.tracking }
