package gesture

import (
	"github.com/lixenwraith/drag-target/game"
	"github.com/lixenwraith/drag-target/vmath"
)

// Button turns level-triggered pointer samples (held or not, plus position)
// into Press/Drag/Release edges on a Tracker
type Button struct {
	tracker *Tracker
	down    bool
}

func NewButton(tracker *Tracker) *Button {
	return &Button{tracker: tracker}
}

// Sample reports the pointer state; dropped is true when a gesture ended
func (b *Button) Sample(pressed bool, p vmath.Point) (result game.DropResult, dropped bool) {
	switch {
	case pressed && !b.down:
		b.down = true
		b.tracker.Press(p)
	case pressed && b.down:
		b.tracker.Drag(p)
	case !pressed && b.down:
		b.down = false
		return b.tracker.Release(p)
	}
	return game.DropResult{}, false
}

// Cancel ends a held gesture at the last reported point, for hosts that lose the pointer
func (b *Button) Cancel() (game.DropResult, bool) {
	if !b.down {
		return game.DropResult{}, false
	}
	b.down = false
	return b.tracker.Cancel()
}

func (b *Button) Down() bool { return b.down }
