package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/drag-target/config"
	"github.com/lixenwraith/drag-target/drag"
	"github.com/lixenwraith/drag-target/game"
	"github.com/lixenwraith/drag-target/palette"
	"github.com/lixenwraith/drag-target/vmath"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func bgAt(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func rowText(screen tcell.Screen, y, w int) string {
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

// testFrame is the 400×800 scenario: 40×40 cells at 10×20 units per cell
func testFrame(pos vmath.Point, dragging bool) game.Frame {
	return game.Frame{
		Viewport: vmath.Size{Width: 400, Height: 800},
		Square:   drag.Square{Position: pos, Color: palette.Squares[1], Size: 60},
		Target:   vmath.Rect{X: 150, Y: 350, Width: 100, Height: 100},
		Score:    7,
		Dragging: dragging,
	}
}

func TestRenderFrameDrawsSceneColors(t *testing.T) {
	screen := newTestScreen(t, 40, 40)
	r := NewTerminalRenderer(screen, config.Default().Terminal)

	r.RenderFrame(testFrame(vmath.Point{X: 0, Y: 200}, false))

	if bg := bgAt(screen, 20, 20); bg != ToTcell(palette.Target) {
		t.Errorf("Target cell bg = %v, want gray", bg)
	}
	// Square spans cells x 0..5, y 10..12
	if bg := bgAt(screen, 0, 10); bg != ToTcell(palette.Squares[1]) {
		t.Errorf("Square cell bg = %v, want blue", bg)
	}
	if bg := bgAt(screen, 5, 12); bg != ToTcell(palette.Squares[1]) {
		t.Errorf("Square corner cell bg = %v, want blue", bg)
	}
	if bg := bgAt(screen, 6, 10); bg != ToTcell(palette.Background) {
		t.Errorf("Cell past square bg = %v, want background", bg)
	}

	if row := rowText(screen, 1, 40); !strings.Contains(row, "Score: 7") {
		t.Errorf("Score row = %q", row)
	}
}

func TestRenderFrameHighlightsWhileDragging(t *testing.T) {
	screen := newTestScreen(t, 40, 40)
	r := NewTerminalRenderer(screen, config.Default().Terminal)

	r.RenderFrame(testFrame(vmath.Point{X: 0, Y: 200}, true))

	want := ToTcell(palette.Squares[1].Highlight(dragHighlight))
	if bg := bgAt(screen, 0, 10); bg != want {
		t.Errorf("Dragged square bg = %v, want highlight %v", bg, want)
	}
}

func TestRenderFrameClipsOffscreenSquare(t *testing.T) {
	screen := newTestScreen(t, 40, 40)
	r := NewTerminalRenderer(screen, config.Default().Terminal)

	// Must not panic with the square partly or fully outside
	r.RenderFrame(testFrame(vmath.Point{X: -30, Y: -10}, false))
	r.RenderFrame(testFrame(vmath.Point{X: 5000, Y: 9000}, false))

	if bg := bgAt(screen, 39, 39); bg != ToTcell(palette.Background) {
		t.Errorf("Corner bg = %v, want background", bg)
	}
}

func TestInstructionsCentered(t *testing.T) {
	screen := newTestScreen(t, 60, 30)
	r := NewTerminalRenderer(screen, config.Default().Terminal)

	r.RenderFrame(testFrame(vmath.Point{X: 0, Y: 0}, false))

	row := rowText(screen, 28, 60)
	idx := strings.Index(row, game.Instructions)
	if idx < 0 {
		t.Fatalf("Instructions missing from row %q", row)
	}
	if want := (60 - len(game.Instructions)) / 2; idx != want {
		t.Errorf("Instructions at column %d, want %d", idx, want)
	}
}

func TestCellMapping(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	r := NewTerminalRenderer(screen, config.Default().Terminal)

	if v := r.Viewport(); v.Width != 800 || v.Height != 480 {
		t.Errorf("Viewport = %+v, want 800x480", v)
	}
	if p := r.CellCenter(3, 2); p != (vmath.Point{X: 35, Y: 50}) {
		t.Errorf("CellCenter = %v, want (35,50)", p)
	}

	x0, y0, x1, y1 := r.CellSpan(vmath.Rect{X: 150, Y: 350, Width: 100, Height: 100})
	// Row 22 starts at 440, its center 450 is on the excluded bottom edge
	if x0 != 15 || x1 != 25 || y0 != 17 || y1 != 22 {
		t.Errorf("CellSpan = (%d,%d)-(%d,%d)", x0, y0, x1, y1)
	}
}

func TestCellSpanMatchesContains(t *testing.T) {
	screen := newTestScreen(t, 80, 40)
	r := NewTerminalRenderer(screen, config.Default().Terminal)

	rects := []vmath.Rect{
		{X: 12.3, Y: 0, Width: 60, Height: 60},
		{X: 0, Y: 200, Width: 60, Height: 60},
		{X: 337.75, Y: 741.2, Width: 60, Height: 60},
		{X: 5, Y: 10, Width: 60, Height: 60},
	}

	for _, rect := range rects {
		x0, y0, x1, y1 := r.CellSpan(rect)
		for y := y0 - 1; y <= y1; y++ {
			for x := x0 - 1; x <= x1; x++ {
				drawn := x >= x0 && x < x1 && y >= y0 && y < y1
				if grabbable := rect.Contains(r.CellCenter(x, y)); drawn != grabbable {
					t.Errorf("rect %+v cell (%d,%d): drawn=%v grabbable=%v", rect, x, y, drawn, grabbable)
				}
			}
		}
	}

	// Fractional X: cell 7 is touched but its center 75 is past the right edge 72.3
	if x0, _, x1, _ := r.CellSpan(rects[0]); x0 != 1 || x1 != 7 {
		t.Errorf("CellSpan x = [%d,%d), want [1,7)", x0, x1)
	}
}
