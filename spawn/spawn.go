package spawn

import (
	"github.com/lixenwraith/drag-target/palette"
	"github.com/lixenwraith/drag-target/vmath"
)

// Edge identifies a viewport boundary
type Edge uint8

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
	edgeCount
)

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Rand is the randomness source; *vmath.FastRand satisfies it
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Spawn is a planned square placement
type Spawn struct {
	Position vmath.Point
	Color    palette.Color
	Edge     Edge
}

// Planner places new squares along the viewport boundary
type Planner struct {
	squareSize float64
	colors     []palette.Color
	rng        Rand
}

// NewPlanner creates a planner; an empty color list selects palette.Squares
func NewPlanner(squareSize float64, colors []palette.Color, rng Rand) *Planner {
	if len(colors) == 0 {
		colors = palette.Squares
	}
	return &Planner{
		squareSize: squareSize,
		colors:     colors,
		rng:        rng,
	}
}

// SquareSize returns the edge length of planned squares
func (p *Planner) SquareSize() float64 { return p.squareSize }

// Plan picks an edge, a point along it, and a color, all uniformly.
// The square lies fully inside the viewport when the viewport is at least squareSize on each axis.
func (p *Planner) Plan(viewport vmath.Size) Spawn {
	edge := Edge(p.rng.Intn(int(edgeCount)))
	maxX := viewport.Width - p.squareSize
	maxY := viewport.Height - p.squareSize

	var pos vmath.Point
	switch edge {
	case EdgeTop:
		pos = vmath.Point{X: p.rng.Float64() * maxX, Y: 0}
	case EdgeRight:
		pos = vmath.Point{X: maxX, Y: p.rng.Float64() * maxY}
	case EdgeBottom:
		pos = vmath.Point{X: p.rng.Float64() * maxX, Y: maxY}
	case EdgeLeft:
		pos = vmath.Point{X: 0, Y: p.rng.Float64() * maxY}
	}

	return Spawn{
		Position: pos,
		Color:    p.colors[p.rng.Intn(len(p.colors))],
		Edge:     edge,
	}
}
