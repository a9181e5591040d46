package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/drag-target/audio"
	"github.com/lixenwraith/drag-target/config"
	"github.com/lixenwraith/drag-target/game"
	"github.com/lixenwraith/drag-target/gesture"
	"github.com/lixenwraith/drag-target/render"
	"github.com/lixenwraith/drag-target/spawn"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// app is the terminal host. All fields are touched only by the run loop goroutine.
type app struct {
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	ctrl     *game.Controller
	pointer  *gesture.Button

	dirty bool
}

// newApp sizes the game from the screen once; later resizes only clip the view
func newApp(screen tcell.Screen, cfg *config.Config, rng spawn.Rand, player audio.Player) (*app, error) {
	renderer := render.NewTerminalRenderer(screen, cfg.Terminal)
	viewport := renderer.Viewport()

	ctrl, err := game.New(viewport, cfg.Game, rng)
	if err != nil {
		return nil, err
	}

	log.Printf("viewport %.0fx%.0f target %+v", viewport.Width, viewport.Height, ctrl.Target())
	sq := ctrl.Square()
	log.Printf("spawn %s at (%.1f,%.1f)", sq.Color, sq.Position.X, sq.Position.Y)

	ctrl.Subscribe(game.ListenerFunc(func(r game.DropResult) {
		player.PlayDrop(r.Hit)
	}))
	ctrl.Subscribe(game.ListenerFunc(logDrop))

	return &app{
		screen:   screen,
		renderer: renderer,
		ctrl:     ctrl,
		pointer:  gesture.NewButton(gesture.NewTracker(ctrl)),
		dirty:    true,
	}, nil
}

func logDrop(r game.DropResult) {
	log.Printf("drop hit=%v score=%d at (%.1f,%.1f)", r.Hit, r.Score, r.Position.X, r.Position.Y)
	if r.Spawn != nil {
		log.Printf("spawn %s on %s edge at (%.1f,%.1f)", r.Spawn.Color, r.Spawn.Edge, r.Spawn.Position.X, r.Spawn.Position.Y)
	}
}

// handleEvent applies one event; returns false to quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

	case *tcell.EventMouse:
		a.handleMouse(ev)

	case *tcell.EventFocus:
		// Button-up is never delivered once focus is gone
		if !ev.Focused {
			if r, ok := a.pointer.Cancel(); ok {
				log.Printf("drag cancelled on focus loss at (%.1f,%.1f)", r.Position.X, r.Position.Y)
			}
			a.dirty = true
		}

	case *tcell.EventResize:
		a.screen.Sync()
		a.dirty = true
	}
	return true
}

// handleMouse feeds the left button state to the gesture
func (a *app) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	a.pointer.Sample(ev.Buttons()&tcell.Button1 != 0, a.renderer.CellCenter(x, y))
	a.dirty = true
}

func (a *app) draw() {
	if !a.dirty {
		return
	}
	a.renderer.RenderFrame(a.ctrl.Frame())
	a.dirty = false
}

// run polls screen events on a separate goroutine and handles them on this one
func (a *app) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)

	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	a.draw()
	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.draw()
		}
	}
}
