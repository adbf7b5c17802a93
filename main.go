package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"snake-duel/config"
	"snake-duel/game"
	"snake-duel/game/manager"
	"snake-duel/ui"
	"snake-duel/ui/term"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"
)

// logFile receives log output in terminal mode, where stderr would
// scribble over the board.
const logFile = "snake.log"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args, ".env")
	if err != nil {
		return err
	}

	var logOut io.Writer = os.Stderr
	if cfg.Terminal {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			logOut = io.Discard
		} else {
			defer f.Close()
			logOut = f
		}
	}
	newLogger := func(prefix string) *log.Logger {
		return log.New(logOut, prefix, log.LstdFlags)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	newLogger("[config] ").Printf("grid %dx%d wrap=%v ai=%v fps=%d seed=%d",
		cfg.GridWidth, cfg.GridHeight, cfg.Wrap, cfg.AIEnabled, cfg.FPS, seed)

	storeLogger := newLogger("[store] ")
	store := manager.NewHighScoreStore(cfg.HighScoreFile, storeLogger)
	storeLogger.Printf("High scores in %s", store.Path())
	stats := manager.NewSessionStats()
	g := game.NewGame(cfg.GameSettings(), rand.New(rand.NewSource(seed)), store,
		game.WithLogger(newLogger("[game] ")),
		game.WithSessionStats(stats))

	if cfg.Terminal {
		screen, err := term.Open()
		if err != nil {
			return fmt.Errorf("opening terminal: %w", err)
		}
		defer screen.Close()
		term.Run(screen, g, stats, cfg.FPS)
		return nil
	}

	runWindow(cfg, g, stats)
	return nil
}

func runWindow(cfg config.Config, g *game.Game, stats *manager.SessionStats) {
	width, height := ui.WindowSize(g.Snapshot().Grid, cfg.CellSize)
	rl.InitWindow(width, height, "Snake Duel")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.FPS))

	renderer := ui.NewRenderer()
	for {
		if g.Apply(ui.ReadInput()) {
			break
		}
		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}
		g.Tick()
		renderer.Draw(g.Snapshot(), stats.Summary())
	}
}
