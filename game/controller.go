package game

import (
	"github.com/lixenwraith/drag-target/config"
	"github.com/lixenwraith/drag-target/drag"
	"github.com/lixenwraith/drag-target/palette"
	"github.com/lixenwraith/drag-target/spawn"
	"github.com/lixenwraith/drag-target/vmath"
)

// DropResult describes the outcome of a released gesture
type DropResult struct {
	Hit      bool
	Score    int
	Position vmath.Point  // where the square was released
	Spawn    *spawn.Spawn // replacement square, set only on a hit
}

// Listener observes drops; called synchronously from Release
type Listener interface {
	OnDrop(DropResult)
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(DropResult)

func (f ListenerFunc) OnDrop(r DropResult) { f(r) }

// Frame is a read-only snapshot for renderers
type Frame struct {
	Viewport vmath.Size
	Square   drag.Square
	Target   vmath.Rect
	Score    int
	Dragging bool
}

// Controller owns all mutable game state: the square, the gesture, and the score.
// Not safe for concurrent use.
type Controller struct {
	viewport  vmath.Size
	target    vmath.Rect
	planner   *spawn.Planner
	session   *drag.Session
	score     int
	listeners []Listener
}

// New creates a controller and spawns the first square.
// The viewport must be at least max(SquareSize, TargetSize) on each axis; smaller
// viewports produce a degenerate layout rather than an error.
func New(viewport vmath.Size, cfg config.GameConfig, rng spawn.Rand) (*Controller, error) {
	colors, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	return NewWithPalette(viewport, cfg.SquareSize, cfg.TargetSize, colors, rng), nil
}

// NewWithPalette is New with explicit sizes and colors
func NewWithPalette(viewport vmath.Size, squareSize, targetSize float64, colors []palette.Color, rng spawn.Rand) *Controller {
	planner := spawn.NewPlanner(squareSize, colors, rng)
	first := planner.Plan(viewport)

	return &Controller{
		viewport: viewport,
		target:   vmath.CenteredSquare(viewport.Width, viewport.Height, targetSize),
		planner:  planner,
		session:  drag.NewSession(first.Position, first.Color, squareSize),
	}
}

// Subscribe registers l for drop notifications
func (c *Controller) Subscribe(l Listener) {
	c.listeners = append(c.listeners, l)
}

// SquareContains reports whether p lies on the square
func (c *Controller) SquareContains(p vmath.Point) bool {
	return c.session.Square().Rect().Contains(p)
}

func (c *Controller) Grant() { c.session.Grant() }

func (c *Controller) Move(dx, dy float64) { c.session.Move(dx, dy) }

// Release ends the gesture; a hit increments the score and respawns the square.
// Releasing without an active gesture returns a miss and notifies nobody.
func (c *Controller) Release() DropResult {
	if !c.session.Dragging() {
		return DropResult{Score: c.score, Position: c.session.Position()}
	}

	hit := c.session.Release(c.target)
	result := DropResult{
		Hit:      hit,
		Position: c.session.Position(),
	}

	if hit {
		c.score++
		next := c.planner.Plan(c.viewport)
		c.session.Respawn(next.Position, next.Color)
		result.Spawn = &next
	}
	result.Score = c.score

	for _, l := range c.listeners {
		l.OnDrop(result)
	}
	return result
}

// Frame returns the current render snapshot
func (c *Controller) Frame() Frame {
	return Frame{
		Viewport: c.viewport,
		Square:   c.session.Square(),
		Target:   c.target,
		Score:    c.score,
		Dragging: c.session.Dragging(),
	}
}

func (c *Controller) Score() int { return c.score }

func (c *Controller) Target() vmath.Rect { return c.target }

func (c *Controller) Viewport() vmath.Size { return c.viewport }

func (c *Controller) Square() drag.Square { return c.session.Square() }

func (c *Controller) Dragging() bool { return c.session.Dragging() }
