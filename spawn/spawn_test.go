package spawn

import (
	"testing"

	"github.com/lixenwraith/drag-target/palette"
	"github.com/lixenwraith/drag-target/vmath"
)

const squareSize = 60

// scriptedRand replays fixed values for exact placement checks
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) Intn(n int) int {
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRand) Float64() float64 {
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func onEdge(p vmath.Point, v vmath.Size) bool {
	return p.X == 0 || p.X == v.Width-squareSize || p.Y == 0 || p.Y == v.Height-squareSize
}

// TestPlanWithinViewport checks bounds and edge placement over many viewports and seeds
func TestPlanWithinViewport(t *testing.T) {
	viewports := []vmath.Size{
		{Width: 100, Height: 100},
		{Width: 400, Height: 800},
		{Width: 1920, Height: 1080},
		{Width: 123.5, Height: 4567.25},
	}

	for _, v := range viewports {
		rng := vmath.NewFastRand(uint64(v.Width*v.Height) + 1)
		planner := NewPlanner(squareSize, nil, rng)
		edges := make(map[Edge]int)

		for i := 0; i < 2000; i++ {
			s := planner.Plan(v)
			p := s.Position
			if p.X < 0 || p.X > v.Width-squareSize || p.Y < 0 || p.Y > v.Height-squareSize {
				t.Fatalf("viewport %v: position %v out of bounds", v, p)
			}
			if !onEdge(p, v) {
				t.Fatalf("viewport %v: position %v not on an edge", v, p)
			}
			if _, ok := palette.Lookup(s.Color.Name); !ok {
				t.Fatalf("color %q not in palette", s.Color.Name)
			}
			edges[s.Edge]++
		}

		if len(edges) != int(edgeCount) {
			t.Errorf("viewport %v: expected all 4 edges used, got %v", v, edges)
		}
	}
}

func TestPlanEdges(t *testing.T) {
	v := vmath.Size{Width: 400, Height: 800}

	tests := []struct {
		edge Edge
		want vmath.Point
	}{
		{EdgeTop, vmath.Point{X: 170, Y: 0}},
		{EdgeRight, vmath.Point{X: 340, Y: 370}},
		{EdgeBottom, vmath.Point{X: 170, Y: 740}},
		{EdgeLeft, vmath.Point{X: 0, Y: 370}},
	}

	for _, tt := range tests {
		t.Run(tt.edge.String(), func(t *testing.T) {
			rng := &scriptedRand{ints: []int{int(tt.edge), 3}, floats: []float64{0.5}}
			s := NewPlanner(squareSize, nil, rng).Plan(v)
			if s.Edge != tt.edge {
				t.Errorf("Edge = %v, want %v", s.Edge, tt.edge)
			}
			if s.Position != tt.want {
				t.Errorf("Position = %v, want %v", s.Position, tt.want)
			}
			if s.Color.Name != "purple" {
				t.Errorf("Color = %v, want purple", s.Color)
			}
		})
	}
}

func TestPlanCustomColors(t *testing.T) {
	only := []palette.Color{palette.Squares[1]}
	planner := NewPlanner(squareSize, only, vmath.NewFastRand(3))
	for i := 0; i < 50; i++ {
		if c := planner.Plan(vmath.Size{Width: 400, Height: 800}).Color; c.Name != "blue" {
			t.Fatalf("Expected blue, got %v", c)
		}
	}
}

func TestPlanDeterministic(t *testing.T) {
	v := vmath.Size{Width: 400, Height: 800}
	a := NewPlanner(squareSize, nil, vmath.NewFastRand(99))
	b := NewPlanner(squareSize, nil, vmath.NewFastRand(99))
	for i := 0; i < 20; i++ {
		if sa, sb := a.Plan(v), b.Plan(v); sa.Position != sb.Position || sa.Color.Name != sb.Color.Name {
			t.Fatalf("Plans diverged at %d: %+v vs %+v", i, sa, sb)
		}
	}
}
