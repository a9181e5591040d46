package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/drag-target/audio"
	"github.com/lixenwraith/drag-target/config"
	"github.com/lixenwraith/drag-target/gui"
	"github.com/lixenwraith/drag-target/vmath"
)

var (
	configPath = flag.String("config", "", "Path to TOML config file")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 for time-based")
	muteFlag   = flag.Bool("mute", false, "Disable sound")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dragdrop-gui: %v\n", err)
		os.Exit(1)
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	player, err := audio.New(cfg.Audio)
	if err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer player.Close()

	g, err := gui.New(cfg, vmath.NewFastRand(seed), player)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dragdrop-gui: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if err := ebiten.RunGame(g); err != nil {
		log.Printf("game exited: %v", err)
	}
	log.Printf("final score %d", g.Controller().Score())
}
