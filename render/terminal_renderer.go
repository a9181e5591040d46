package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/drag-target/config"
	"github.com/lixenwraith/drag-target/game"
	"github.com/lixenwraith/drag-target/palette"
	"github.com/lixenwraith/drag-target/vmath"
)

// dragHighlight lightens the square while it is held
const dragHighlight = 0.25

// TerminalRenderer draws game frames onto a tcell screen.
// One cell covers CellWidth×CellHeight viewport units.
type TerminalRenderer struct {
	screen tcell.Screen
	scale  config.TerminalConfig
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen, scale config.TerminalConfig) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		scale:  scale,
	}
}

// Viewport returns the viewport covered by the current screen size
func (r *TerminalRenderer) Viewport() vmath.Size {
	w, h := r.screen.Size()
	return r.scale.Viewport(w, h)
}

// CellCenter maps a terminal cell to the viewport point at its center
func (r *TerminalRenderer) CellCenter(x, y int) vmath.Point {
	return vmath.Point{
		X: (float64(x) + 0.5) * r.scale.CellWidth,
		Y: (float64(y) + 0.5) * r.scale.CellHeight,
	}
}

// CellSpan returns the cells whose centers lie in rect, as [x0,x1)×[y0,y1).
// Matches vmath.Rect.Contains on CellCenter, so every drawn cell is grabbable.
func (r *TerminalRenderer) CellSpan(rect vmath.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Ceil(rect.X/r.scale.CellWidth - 0.5))
	y0 = int(math.Ceil(rect.Y/r.scale.CellHeight - 0.5))
	x1 = int(math.Ceil((rect.X+rect.Width)/r.scale.CellWidth - 0.5))
	y1 = int(math.Ceil((rect.Y+rect.Height)/r.scale.CellHeight - 0.5))
	return
}

// RenderFrame draws f and shows the screen
func (r *TerminalRenderer) RenderFrame(f game.Frame) {
	base := tcell.StyleDefault.Background(ToTcell(palette.Background)).Foreground(ToTcell(palette.Text))

	r.screen.Fill(' ', base)

	r.fillRect(f.Target, base.Background(ToTcell(palette.Target)))

	color := f.Square.Color
	if f.Dragging {
		color = color.Highlight(dragHighlight)
	}
	r.fillRect(f.Square.Rect(), base.Background(ToTcell(color)))

	// Text draws last; the square may pass underneath
	w, h := r.screen.Size()
	r.drawText(2, 1, fmt.Sprintf("Score: %d", f.Score), base.Bold(true))
	if h > 2 {
		x := (w - runewidth.StringWidth(game.Instructions)) / 2
		r.drawText(max(x, 0), h-2, game.Instructions, base)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) fillRect(rect vmath.Rect, style tcell.Style) {
	w, h := r.screen.Size()
	x0, y0, x1, y1 := r.CellSpan(rect)
	for y := max(y0, 0); y < min(y1, h); y++ {
		for x := max(x0, 0); x < min(x1, w); x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	col := x
	for _, ch := range text {
		width := runewidth.RuneWidth(ch)
		if width <= 0 {
			continue
		}
		if col+width > w {
			break
		}
		r.screen.SetContent(col, y, ch, nil, style)
		col += width
	}
}

// ToTcell converts a palette color to a 24-bit tcell color
func ToTcell(c palette.Color) tcell.Color {
	red, green, blue := c.RGB255()
	return tcell.NewRGBColor(int32(red), int32(green), int32(blue))
}
