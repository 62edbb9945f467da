package game

import (
	"math/rand"
	"time"

	"snake-game/game/manager"
	"snake-game/game/types"
)

// Game owns all mutable state of one session: the snake, the food, the
// score and the lifecycle phase. It is driven from a single goroutine;
// input arrives through QueueDirection and the simulation advances only
// inside AdvanceTick.
type Game struct {
	cfg  Config
	grid types.Grid

	snake     []types.Point // index 0 is the head
	direction types.Direction

	// pending is a one-slot buffer for the next direction change.
	// Later keystrokes in the same tick window overwrite it.
	pending    types.Direction
	hasPending bool

	food      types.Point
	score     int
	foodEaten int

	phase types.Phase
	won   bool

	collisions *manager.CollisionManager
	foods      *manager.FoodManager
}

// Snapshot is a read-only view of the game handed to the renderer.
type Snapshot struct {
	Grid      types.Grid
	Body      []types.Point
	Direction types.Direction
	Food      types.Point
	Score     int
	FoodEaten int
	Interval  time.Duration
	Phase     types.Phase
	Won       bool
}

// New builds a session from cfg: a snake of the configured length
// centered on the grid facing right, one food on a random free cell,
// score zero, phase Playing. The only failure mode is a config that
// cannot produce a legal board.
func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	grid := types.Grid{Width: cfg.GridWidth, Height: cfg.GridHeight}
	g := &Game{
		cfg:        cfg,
		grid:       grid,
		collisions: manager.NewCollisionManager(grid),
		foods:      manager.NewFoodManager(grid, rng),
	}
	g.reset()
	return g, nil
}

// reset rebuilds the board for a fresh run. The RNG carries over so
// consecutive runs of a seeded session stay deterministic.
func (g *Game) reset() {
	headX := g.grid.Width / 2
	if headX < g.cfg.InitialSnakeLength-1 {
		headX = g.cfg.InitialSnakeLength - 1
	}
	headY := g.grid.Height / 2

	g.snake = make([]types.Point, g.cfg.InitialSnakeLength)
	for i := range g.snake {
		g.snake[i] = types.Point{X: headX - i, Y: headY}
	}

	g.direction = types.Right
	g.hasPending = false
	g.score = 0
	g.foodEaten = 0
	g.phase = types.Playing
	g.won = false

	food, _ := g.foods.Spawn(g.snake)
	g.food = food
}

// Restart begins a new run in the same session. Only meaningful once
// the previous run ended.
func (g *Game) Restart() {
	g.reset()
}

// QueueDirection records d as the direction to commit at the next tick.
// A reversal of the committed direction is dropped outright, so the
// snake can never fold back onto its own neck even if the reverse key
// is pressed twice within one tick window.
func (g *Game) QueueDirection(d types.Direction) {
	if g.phase != types.Playing {
		return
	}
	if d == g.direction.Opposite() {
		return
	}
	g.pending = d
	g.hasPending = true
}

// AdvanceTick runs one simulation step. It is a no-op once the run has
// ended; collisions end the run rather than erroring.
func (g *Game) AdvanceTick() {
	if g.phase != types.Playing {
		return
	}

	if g.hasPending {
		g.direction = g.pending
		g.hasPending = false
	}

	newHead := g.snake[0].Add(g.direction)

	// Edges are walls, not portals.
	if g.collisions.HitsWall(newHead) {
		g.phase = types.GameOver
		return
	}

	if newHead == g.food {
		g.grow(newHead)
		g.score += g.cfg.ScorePerFood
		g.foodEaten++

		food, ok := g.foods.Spawn(g.snake)
		if !ok {
			// No free cell left: the snake fills the grid.
			g.won = true
			g.phase = types.GameOver
			return
		}
		g.food = food
		return
	}

	// The tail vacates its cell this same tick, so the self-collision
	// check runs against the body minus the tail segment.
	if g.collisions.HitsBody(newHead, g.snake[:len(g.snake)-1]) {
		g.phase = types.GameOver
		return
	}

	g.shift(newHead)
}

// grow pushes newHead to the front without popping the tail.
func (g *Game) grow(newHead types.Point) {
	g.snake = append(g.snake, types.Point{})
	copy(g.snake[1:], g.snake)
	g.snake[0] = newHead
}

// shift moves the body one cell forward, dropping the tail.
func (g *Game) shift(newHead types.Point) {
	copy(g.snake[1:], g.snake)
	g.snake[0] = newHead
}

// TickInterval derives the current step interval from how much food has
// been eaten. It is recomputed from the count, never accumulated, so it
// is monotonically non-increasing and floored at MinTick.
func (g *Game) TickInterval() time.Duration {
	interval := g.cfg.BaseTick - time.Duration(g.foodEaten)*g.cfg.SpeedIncreasePerFood
	if interval < g.cfg.MinTick {
		interval = g.cfg.MinTick
	}
	return interval
}

// Phase returns the lifecycle phase of the current run.
func (g *Game) Phase() types.Phase {
	return g.phase
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Won reports whether the run ended by filling the grid.
func (g *Game) Won() bool {
	return g.won
}

// Snapshot copies the state the renderer needs. The body slice is a
// copy; mutating it does not touch the game.
func (g *Game) Snapshot() Snapshot {
	body := make([]types.Point, len(g.snake))
	copy(body, g.snake)
	return Snapshot{
		Grid:      g.grid,
		Body:      body,
		Direction: g.direction,
		Food:      g.food,
		Score:     g.score,
		FoodEaten: g.foodEaten,
		Interval:  g.TickInterval(),
		Phase:     g.phase,
		Won:       g.won,
	}
}
