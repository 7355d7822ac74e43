// Package config loads game settings from defaults, an optional JSON file,
// the environment (including a .env file) and command line flags, in that
// order of precedence.
package config

import (
	"encoding/json"
	"flag"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/mikenye/skysnake/internal/decor"
	"github.com/mikenye/skysnake/internal/grid"
	"github.com/mikenye/skysnake/internal/snake"
)

// Config holds everything a front end needs to start a game
type Config struct {
	Backdrop    string  `json:"backdrop"`
	TileEdge    int     `json:"tileEdge"`
	TickMillis  int     `json:"tickMillis"`
	SpawnMillis int     `json:"spawnMillis"`
	SpawnChance float64 `json:"spawnChance"`
	ScoreStep   int     `json:"scoreStep"`
	Title       string  `json:"title"`
	Seed        uint64  `json:"seed"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
}

// Default returns the stock settings
func Default() Config {
	return Config{
		Backdrop:    decor.NameFireworks,
		TileEdge:    grid.TileEdge,
		TickMillis:  100,
		SpawnMillis: 500,
		SpawnChance: 0.3,
		ScoreStep:   snake.DefaultScoreStep,
		Title:       "Voronezh",
		Width:       800,
		Height:      600,
	}
}

// TickPeriod is the time between game ticks
func (c Config) TickPeriod() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}

// SpawnPeriod is the time between firework launch rolls
func (c Config) SpawnPeriod() time.Duration {
	return time.Duration(c.SpawnMillis) * time.Millisecond
}

// SeedOrNow returns the configured seed, or one taken from the clock
func (c Config) SeedOrNow() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}

// Validate checks the settings make a playable game
func (c Config) Validate() error {
	switch c.Backdrop {
	case decor.NameFireworks, decor.NameSkyline:
	default:
		return errors.Errorf("backdrop must be %q or %q, got %q", decor.NameFireworks, decor.NameSkyline, c.Backdrop)
	}
	if c.TileEdge <= 0 {
		return errors.Errorf("tile edge must be positive, got %d", c.TileEdge)
	}
	if c.TickMillis <= 0 || c.SpawnMillis <= 0 {
		return errors.Errorf("tick and spawn periods must be positive, got %dms and %dms", c.TickMillis, c.SpawnMillis)
	}
	if c.SpawnChance < 0 || c.SpawnChance > 1 {
		return errors.Errorf("spawn chance must be within [0,1], got %v", c.SpawnChance)
	}
	if c.ScoreStep <= 0 {
		return errors.Errorf("score step must be positive, got %d", c.ScoreStep)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	return nil
}

// LoadFile overlays the JSON file at path onto c. Keys missing from the
// file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config")
	}
	if err := json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}
	return nil
}

// environment variables understood by ApplyEnv
const (
	EnvBackdrop = "SNAKE_BACKDROP"
	EnvSeed     = "SNAKE_SEED"
	EnvTile     = "SNAKE_TILE"
	EnvTickMS   = "SNAKE_TICK_MS"
	EnvTitle    = "SNAKE_TITLE"
)

// ApplyEnv overlays SNAKE_* variables found through lookup
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvBackdrop); ok && v != "" {
		c.Backdrop = v
	}
	if v, ok := lookup(EnvTitle); ok {
		c.Title = v
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.Wrap(err, EnvSeed)
		}
		c.Seed = seed
	}
	for name, dst := range map[string]*int{EnvTile: &c.TileEdge, EnvTickMS: &c.TickMillis} {
		v, ok := lookup(name)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, name)
		}
		*dst = n
	}
	return nil
}

// Flags holds the shared command line flags. Call Config after the flag
// set has been parsed.
type Flags struct {
	fs *flag.FlagSet

	path     string
	envFile  string
	override Config
}

// RegisterFlags adds the config flags to set
func RegisterFlags(set *flag.FlagSet) *Flags {
	f := &Flags{fs: set}
	set.StringVar(&f.path, "config", "", "path to a JSON config file")
	set.StringVar(&f.envFile, "env", ".env", "dotenv file to load if present")
	set.StringVar(&f.override.Backdrop, "backdrop", "", "backdrop: fireworks or skyline")
	set.Uint64Var(&f.override.Seed, "seed", 0, "random seed (0 = time based)")
	set.IntVar(&f.override.TileEdge, "tile", 0, "tile edge in pixels")
	set.IntVar(&f.override.TickMillis, "tick", 0, "game tick in milliseconds")
	set.StringVar(&f.override.Title, "title", "", "watermark drawn behind the board")
	set.IntVar(&f.override.Width, "width", 0, "initial window width")
	set.IntVar(&f.override.Height, "height", 0, "initial window height")
	return f
}

// Config builds the final settings: defaults, then the JSON file, then
// the environment, then any flags that were set explicitly
func (f *Flags) Config() (Config, error) {
	cfg := Default()

	if f.path != "" {
		if err := cfg.LoadFile(f.path); err != nil {
			return cfg, err
		}
	}

	if f.envFile != "" {
		if err := godotenv.Load(f.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, errors.Wrapf(err, "load %s", f.envFile)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "backdrop":
			cfg.Backdrop = f.override.Backdrop
		case "seed":
			cfg.Seed = f.override.Seed
		case "tile":
			cfg.TileEdge = f.override.TileEdge
		case "tick":
			cfg.TickMillis = f.override.TickMillis
		case "title":
			cfg.Title = f.override.Title
		case "width":
			cfg.Width = f.override.Width
		case "height":
			cfg.Height = f.override.Height
		}
	})

	return cfg, cfg.Validate()
}
