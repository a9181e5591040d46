// Package gui hosts the game in an Ebitengine window or mobile view.
// Mouse and the first active touch drive the same single-pointer gesture.
package gui

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/drag-target/audio"
	"github.com/lixenwraith/drag-target/config"
	"github.com/lixenwraith/drag-target/game"
	"github.com/lixenwraith/drag-target/gesture"
	"github.com/lixenwraith/drag-target/palette"
	"github.com/lixenwraith/drag-target/spawn"
	"github.com/lixenwraith/drag-target/vmath"
)

const (
	dragHighlight = 0.25
	debugCharW    = 6 // ebitenutil debug font glyph width
)

// Game implements ebiten.Game over a fixed logical viewport
type Game struct {
	width, height int
	ctrl          *game.Controller
	pointer       *gesture.Button
	selector      gesture.Selector
	touches       []gesture.Touch
	ids           []ebiten.TouchID

	instructionsX int
}

// New creates the game. The player receives drop feedback; pass audio.NopPlayer{} for silence.
func New(cfg *config.Config, rng spawn.Rand, player audio.Player) (*Game, error) {
	ctrl, err := game.New(cfg.Window.Viewport(), cfg.Game, rng)
	if err != nil {
		return nil, fmt.Errorf("gui: %w", err)
	}
	ctrl.Subscribe(game.ListenerFunc(func(r game.DropResult) {
		player.PlayDrop(r.Hit)
		log.Printf("drop hit=%v score=%d", r.Hit, r.Score)
	}))

	return &Game{
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
		ctrl:    ctrl,
		pointer: gesture.NewButton(gesture.NewTracker(ctrl)),

		instructionsX: (cfg.Window.Width - runewidth.StringWidth(game.Instructions)*debugCharW) / 2,
	}, nil
}

// Controller exposes game state to hosts
func (g *Game) Controller() *game.Controller { return g.ctrl }

func (g *Game) Update() error {
	// Losing focus drops mouse and touch events; end the drag where it was last seen
	if !ebiten.IsFocused() {
		if _, ok := g.pointer.Cancel(); ok {
			log.Printf("drag cancelled on focus loss")
		}
		return nil
	}

	mx, my := ebiten.CursorPosition()
	pressed, p := g.selector.Select(
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		vmath.Point{X: float64(mx), Y: float64(my)},
		g.readTouches(),
	)
	g.pointer.Sample(pressed, p)
	return nil
}

// readTouches snapshots active touches; a touch on its first tick is just pressed
func (g *Game) readTouches() []gesture.Touch {
	g.ids = ebiten.AppendTouchIDs(g.ids[:0])
	g.touches = g.touches[:0]
	for _, id := range g.ids {
		x, y := ebiten.TouchPosition(id)
		g.touches = append(g.touches, gesture.Touch{
			ID:          int(id),
			Pos:         vmath.Point{X: float64(x), Y: float64(y)},
			JustPressed: inpututil.TouchPressDuration(id) == 1,
		})
	}
	return g.touches
}

func (g *Game) Draw(screen *ebiten.Image) {
	f := g.ctrl.Frame()

	screen.Fill(palette.Background.Value)
	fillRect(screen, f.Target, palette.Target)

	color := f.Square.Color
	if f.Dragging {
		color = color.Highlight(dragHighlight)
	}
	fillRect(screen, f.Square.Rect(), color)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", f.Score), 20, 40)
	ebitenutil.DebugPrintAt(screen, game.Instructions, max(g.instructionsX, 0), g.height-40)
}

func fillRect(dst *ebiten.Image, r vmath.Rect, c palette.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c.Value, false)
}

// Layout pins the logical screen to the configured viewport; Ebitengine scales it to the window
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
