// Package config holds game, host and audio settings.
//
// Settings resolve in order: built-in defaults, optional TOML file,
// environment variables, then command-line flags applied by the host.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/drag-target/palette"
	"github.com/lixenwraith/drag-target/vmath"
)

// Environment overrides
const (
	EnvAudioEnabled = "DRAG_TARGET_AUDIO_ENABLED"
	EnvMasterVolume = "DRAG_TARGET_MASTER_VOLUME" // 0-100
)

// Config is the full application configuration
type Config struct {
	Game     GameConfig     `toml:"game"`
	Terminal TerminalConfig `toml:"terminal"`
	Window   WindowConfig   `toml:"window"`
	Audio    AudioConfig    `toml:"audio"`
}

// GameConfig sizes the square and target in viewport units
type GameConfig struct {
	SquareSize float64  `toml:"square_size"`
	TargetSize float64  `toml:"target_size"`
	Colors     []string `toml:"colors"` // subset of palette.Squares names, empty for all
}

// TerminalConfig maps terminal cells to viewport units
type TerminalConfig struct {
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
}

// Viewport returns the viewport for a cols×rows terminal
func (t TerminalConfig) Viewport(cols, rows int) vmath.Size {
	return vmath.Size{
		Width:  float64(cols) * t.CellWidth,
		Height: float64(rows) * t.CellHeight,
	}
}

// WindowConfig is the logical screen of the graphical host
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// Viewport returns the logical window size
func (w WindowConfig) Viewport() vmath.Size {
	return vmath.Size{Width: float64(w.Width), Height: float64(w.Height)}
}

// AudioConfig controls drop feedback sounds
type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	Volume     float64 `toml:"volume"` // 0.0-1.0
	SampleRate int     `toml:"sample_rate"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Game: GameConfig{
			SquareSize: 60,
			TargetSize: 100,
		},
		Terminal: TerminalConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
		Window: WindowConfig{
			Width:  400,
			Height: 800,
			Title:  "Drag Target",
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.8,
			SampleRate: 44100,
		},
	}
}

// Load reads defaults, then path if non-empty, then environment overrides
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Audio.Enabled = val
		}
	}

	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Audio.Volume = min(max(float64(val)/100.0, 0), 1)
		}
	}
}

// Validate rejects settings the game cannot run with
func (c *Config) Validate() error {
	var errs []error

	if c.Game.SquareSize <= 0 {
		errs = append(errs, fmt.Errorf("game.square_size must be positive, got %v", c.Game.SquareSize))
	}
	if c.Game.TargetSize <= 0 {
		errs = append(errs, fmt.Errorf("game.target_size must be positive, got %v", c.Game.TargetSize))
	}
	if _, err := c.Game.Palette(); err != nil {
		errs = append(errs, err)
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("terminal cell size must be positive, got %vx%v", c.Terminal.CellWidth, c.Terminal.CellHeight))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within [0,1], got %v", c.Audio.Volume))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate))
	}

	return errors.Join(errs...)
}

// Palette resolves Colors against palette.Squares
func (g GameConfig) Palette() ([]palette.Color, error) {
	if len(g.Colors) == 0 {
		return palette.Squares, nil
	}
	colors := make([]palette.Color, 0, len(g.Colors))
	for _, name := range g.Colors {
		c, ok := palette.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("game.colors: unknown color %q", name)
		}
		colors = append(colors, c)
	}
	return colors, nil
}
