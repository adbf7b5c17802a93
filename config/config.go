package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"snake-duel/game"

	"github.com/joho/godotenv"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	MinGridSide = 8
	MaxGridSide = 256
)

// Config is everything the driver needs to start a session.
type Config struct {
	CellSize      int
	GridWidth     int
	GridHeight    int
	FPS           int
	TicksPerMove  int
	StartLength   int
	HighScoreFile string
	Wrap          bool
	AIEnabled     bool
	// Terminal selects the tcell front end instead of the raylib window.
	Terminal bool
	// Seed 0 means seed from the clock.
	Seed uint64
}

func Default() Config {
	return Config{
		CellSize:      20,
		GridWidth:     32,
		GridHeight:    24,
		FPS:           60,
		TicksPerMove:  8,
		StartLength:   4,
		HighScoreFile: "snake_highscores.json",
		AIEnabled:     true,
	}
}

// Load builds the config from defaults, then envFile (skipped when empty
// or missing), then SNAKE_* environment variables, then args. Later
// sources win.
func Load(args []string, envFile string) (Config, error) {
	cfg := Default()

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.applyFlags(args); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	ints := []struct {
		name string
		dst  *int
	}{
		{"SNAKE_GRID_W", &c.GridWidth},
		{"SNAKE_GRID_H", &c.GridHeight},
		{"SNAKE_FPS", &c.FPS},
		{"SNAKE_TICKS_PER_MOVE", &c.TicksPerMove},
		{"SNAKE_START_LENGTH", &c.StartLength},
	}
	for _, v := range ints {
		if err := envInt(v.name, v.dst); err != nil {
			return err
		}
	}
	if err := envBool("SNAKE_WRAP", &c.Wrap); err != nil {
		return err
	}
	if err := envBool("SNAKE_AI", &c.AIEnabled); err != nil {
		return err
	}
	if s, ok := getEnv("SNAKE_SEED"); ok {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: SNAKE_SEED=%q: %v", ErrInvalidConfig, s, err)
		}
		c.Seed = seed
	}
	if s, ok := getEnv("SNAKE_HIGHSCORE_FILE"); ok {
		c.HighScoreFile = s
	}
	return nil
}

func (c *Config) applyFlags(args []string) error {
	flags := flag.NewFlagSet("snake", flag.ContinueOnError)
	flags.IntVar(&c.GridWidth, "width", c.GridWidth, "Grid width in cells")
	flags.IntVar(&c.GridHeight, "height", c.GridHeight, "Grid height in cells")
	flags.IntVar(&c.CellSize, "cell", c.CellSize, "Cell size in pixels")
	flags.IntVar(&c.FPS, "fps", c.FPS, "Ticks per second")
	flags.IntVar(&c.TicksPerMove, "ticks-per-move", c.TicksPerMove, "Base ticks between moves (lower = faster)")
	flags.IntVar(&c.StartLength, "start-length", c.StartLength, "Starting snake length")
	flags.StringVar(&c.HighScoreFile, "highscores", c.HighScoreFile, "High score file")
	flags.BoolVar(&c.Wrap, "wrap", c.Wrap, "Wrap around grid edges")
	flags.BoolVar(&c.Terminal, "terminal", c.Terminal, "Play in the terminal")
	flags.BoolVar(&c.AIEnabled, "ai", c.AIEnabled, "Add the computer opponent")
	flags.Uint64Var(&c.Seed, "seed", c.Seed, "Random seed (0 = time based)")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	switch {
	case c.GridWidth < MinGridSide || c.GridWidth > MaxGridSide:
		return fmt.Errorf("%w: width %d not in [%d, %d]", ErrInvalidConfig, c.GridWidth, MinGridSide, MaxGridSide)
	case c.GridHeight < MinGridSide || c.GridHeight > MaxGridSide:
		return fmt.Errorf("%w: height %d not in [%d, %d]", ErrInvalidConfig, c.GridHeight, MinGridSide, MaxGridSide)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	case c.TicksPerMove <= 0:
		return fmt.Errorf("%w: ticks per move must be positive, got %d", ErrInvalidConfig, c.TicksPerMove)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size must be positive, got %d", ErrInvalidConfig, c.CellSize)
	case c.StartLength < 1 || c.StartLength > c.GridWidth/4:
		return fmt.Errorf("%w: start length %d not in [1, %d]", ErrInvalidConfig, c.StartLength, c.GridWidth/4)
	case c.HighScoreFile == "":
		return fmt.Errorf("%w: high score file is empty", ErrInvalidConfig)
	}
	return nil
}

func (c Config) GameSettings() game.Settings {
	return game.Settings{
		Width:        c.GridWidth,
		Height:       c.GridHeight,
		Wrap:         c.Wrap,
		TicksPerMove: c.TicksPerMove,
		StartLength:  c.StartLength,
		AIEnabled:    c.AIEnabled,
	}
}

// getEnv treats an empty value as unset.
func getEnv(name string) (string, bool) {
	v := os.Getenv(name)
	return v, v != ""
}

func envInt(name string, dst *int) error {
	s, ok := getEnv(name)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, name, s, err)
	}
	*dst = n
	return nil
}

func envBool(name string, dst *bool) error {
	s, ok := getEnv(name)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, name, s, err)
	}
	*dst = b
	return nil
}
