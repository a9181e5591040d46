package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/drag-target/audio"
	"github.com/lixenwraith/drag-target/config"
	"github.com/lixenwraith/drag-target/vmath"
)

var (
	configPath = flag.String("config", "", "Path to TOML config file")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 for time-based")
	muteFlag   = flag.Bool("mute", false, "Disable sound")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/dragdrop.log")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dragdrop: %v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("starting seed=%d", seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}

	// Restore the terminal before the stack trace so it stays readable
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mDRAGDROP CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()

	player, err := audio.New(cfg.Audio)
	if err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer player.Close()

	a, err := newApp(screen, cfg, vmath.NewFastRand(seed), player)
	if err != nil {
		return err
	}
	a.run()

	log.Printf("exit score=%d", a.ctrl.Score())
	return nil
}
