package vmath

import "testing"

func TestOverlapsStrictBoundary(t *testing.T) {
	target := Rect{X: 100, Y: 100, Width: 100, Height: 100}

	tests := []struct {
		name string
		at   Point
		want bool
	}{
		{"touching left edge", Point{X: 40, Y: 100}, false},
		{"one unit past left edge", Point{X: 41, Y: 100}, true},
		{"touching right edge", Point{X: 200, Y: 100}, false},
		{"touching top edge", Point{X: 100, Y: 40}, false},
		{"one unit past top edge", Point{X: 100, Y: 41}, true},
		{"touching bottom edge", Point{X: 100, Y: 200}, false},
		{"corner touch", Point{X: 40, Y: 40}, false},
		{"fully inside", Point{X: 120, Y: 120}, true},
		{"far outside", Point{X: -500, Y: 900}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sq := RectAt(tt.at, 60)
			if got := sq.Overlaps(target); got != tt.want {
				t.Errorf("Overlaps(%v) = %v, want %v", tt.at, got, tt.want)
			}
			// Intersection is symmetric
			if got := target.Overlaps(sq); got != tt.want {
				t.Errorf("reverse Overlaps(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestCenteredSquare(t *testing.T) {
	r := CenteredSquare(400, 800, 100)
	want := Rect{X: 150, Y: 350, Width: 100, Height: 100}
	if r != want {
		t.Errorf("CenteredSquare = %+v, want %+v", r, want)
	}
	if c := r.Center(); c != (Point{X: 200, Y: 400}) {
		t.Errorf("Center = %+v, want (200,400)", c)
	}
}

func TestContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 60, Height: 60}
	if !r.Contains(Point{X: 10, Y: 10}) {
		t.Error("Expected top-left corner to be contained")
	}
	if r.Contains(Point{X: 70, Y: 30}) {
		t.Error("Expected right edge to be excluded")
	}
	if r.Contains(Point{X: 30, Y: 70}) {
		t.Error("Expected bottom edge to be excluded")
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Point{X: 10, Y: 10}
	q := p.Add(Point{X: 20, Y: 20})
	if q != (Point{X: 30, Y: 30}) {
		t.Errorf("Add = %+v", q)
	}
	if d := q.Sub(p); d != (Point{X: 20, Y: 20}) {
		t.Errorf("Sub = %+v", d)
	}
}
