package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"snake-game/game"
	"snake-game/game/manager"
	"snake-game/ui"
)

func main() {
	_ = godotenv.Load()

	cfg := game.DefaultConfig()
	width := flag.Int("width", envInt("SNAKE_GRID_WIDTH", cfg.GridWidth), "grid width in cells")
	height := flag.Int("height", envInt("SNAKE_GRID_HEIGHT", cfg.GridHeight), "grid height in cells")
	length := flag.Int("length", envInt("SNAKE_INITIAL_LENGTH", cfg.InitialSnakeLength), "initial snake length")
	baseMs := flag.Int("speed", envInt("SNAKE_BASE_TICK_MS", int(cfg.BaseTick/time.Millisecond)), "base tick interval in milliseconds (lower = faster)")
	minMs := flag.Int("min-speed", envInt("SNAKE_MIN_TICK_MS", int(cfg.MinTick/time.Millisecond)), "fastest tick interval in milliseconds")
	stepMs := flag.Int("speed-step", envInt("SNAKE_SPEED_STEP_MS", int(cfg.SpeedIncreasePerFood/time.Millisecond)), "tick interval reduction per food in milliseconds")
	flag.Parse()

	cfg.GridWidth = *width
	cfg.GridHeight = *height
	cfg.InitialSnakeLength = *length
	cfg.BaseTick = time.Duration(*baseMs) * time.Millisecond
	cfg.MinTick = time.Duration(*minMs) * time.Millisecond
	cfg.SpeedIncreasePerFood = time.Duration(*stepMs) * time.Millisecond

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg game.Config) error {
	// Configuration problems are fatal before the terminal is touched,
	// so the message lands on a usable stderr.
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger()

	g, err := game.New(cfg)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorDefault).Foreground(tcell.ColorDefault))
	screen.HideCursor()

	logger.Info().
		Int("grid_width", cfg.GridWidth).
		Int("grid_height", cfg.GridHeight).
		Int("initial_length", cfg.InitialSnakeLength).
		Dur("base_tick", cfg.BaseTick).
		Msg("session started")

	stats := manager.NewStateManager()
	NewLoop(g, screen, ui.NewRenderer(screen), stats, logger).Run()

	logSessionSummary(logger, stats)
	return nil
}

// newLogger builds the session logger. The terminal itself belongs to
// the game screen, so logs go to SNAKE_LOG_FILE when set and nowhere
// otherwise.
func newLogger() zerolog.Logger {
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	path := os.Getenv("SNAKE_LOG_FILE")
	if path == "" {
		return zerolog.Nop()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(f).With().
		Timestamp().
		Str("session", uuid.New().String()).
		Logger()
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
