package game

import (
	"fmt"
	"time"
)

// Default values match the original playfield: a 20x20 grid with a
// 3-segment snake, ticking at 200ms and speeding up 5ms per food down
// to a 50ms floor.
const (
	DefaultGridWidth          = 20
	DefaultGridHeight         = 20
	DefaultInitialSnakeLength = 3
	DefaultBaseTick           = 200 * time.Millisecond
	DefaultMinTick            = 50 * time.Millisecond
	DefaultSpeedIncrease      = 5 * time.Millisecond
	DefaultScorePerFood       = 1
)

// Config carries the immutable parameters of one game session.
type Config struct {
	GridWidth          int
	GridHeight         int
	InitialSnakeLength int

	// BaseTick is the starting interval between simulation steps.
	// Every food eaten shortens it by SpeedIncreasePerFood, never
	// below MinTick.
	BaseTick             time.Duration
	MinTick              time.Duration
	SpeedIncreasePerFood time.Duration

	ScorePerFood int

	// Seed for food placement. Zero means the caller wants a
	// time-based seed; tests pass a fixed value for determinism.
	Seed int64
}

// DefaultConfig returns the standard session parameters.
func DefaultConfig() Config {
	return Config{
		GridWidth:            DefaultGridWidth,
		GridHeight:           DefaultGridHeight,
		InitialSnakeLength:   DefaultInitialSnakeLength,
		BaseTick:             DefaultBaseTick,
		MinTick:              DefaultMinTick,
		SpeedIncreasePerFood: DefaultSpeedIncrease,
		ScorePerFood:         DefaultScorePerFood,
	}
}

// Validate reports the first configuration error found. A failure here
// is fatal at startup; the game never starts with an invalid config.
func (c Config) Validate() error {
	if c.GridWidth <= 0 || c.GridHeight <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", c.GridWidth, c.GridHeight)
	}
	if c.InitialSnakeLength <= 0 {
		return fmt.Errorf("initial snake length must be positive, got %d", c.InitialSnakeLength)
	}
	if c.InitialSnakeLength >= c.GridWidth*c.GridHeight {
		return fmt.Errorf("initial snake length %d does not fit a %dx%d grid",
			c.InitialSnakeLength, c.GridWidth, c.GridHeight)
	}
	if c.InitialSnakeLength > c.GridWidth {
		return fmt.Errorf("initial snake length %d exceeds grid width %d, cannot place starting row",
			c.InitialSnakeLength, c.GridWidth)
	}
	if c.BaseTick <= 0 || c.MinTick <= 0 {
		return fmt.Errorf("tick intervals must be positive, got base=%v min=%v", c.BaseTick, c.MinTick)
	}
	if c.MinTick > c.BaseTick {
		return fmt.Errorf("min tick %v exceeds base tick %v", c.MinTick, c.BaseTick)
	}
	if c.SpeedIncreasePerFood < 0 {
		return fmt.Errorf("speed increase per food must not be negative, got %v", c.SpeedIncreasePerFood)
	}
	if c.ScorePerFood <= 0 {
		return fmt.Errorf("score per food must be positive, got %d", c.ScorePerFood)
	}
	return nil
}
