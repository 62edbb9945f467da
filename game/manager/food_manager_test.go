package manager

import (
	"math/rand"
	"testing"

	"snake-game/game/types"
)

func TestSpawnStaysOffTheSnake(t *testing.T) {
	grid := types.Grid{Width: 3, Height: 3}
	fm := NewFoodManager(grid, rand.New(rand.NewSource(1)))

	// Snake covers everything except (2,2).
	snake := []types.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1},
		{X: 0, Y: 2}, {X: 1, Y: 2},
	}

	for i := 0; i < 100; i++ {
		food, ok := fm.Spawn(snake)
		if !ok {
			t.Fatal("Expected a free cell")
		}
		if food != (types.Point{X: 2, Y: 2}) {
			t.Fatalf("Expected food at (2,2), got %v", food)
		}
	}
}

func TestSpawnStaysInBounds(t *testing.T) {
	grid := types.Grid{Width: 4, Height: 6}
	fm := NewFoodManager(grid, rand.New(rand.NewSource(7)))

	snake := []types.Point{{X: 0, Y: 0}}
	for i := 0; i < 200; i++ {
		food, ok := fm.Spawn(snake)
		if !ok {
			t.Fatal("Expected a free cell")
		}
		if !grid.Contains(food) {
			t.Fatalf("Food %v outside %dx%d grid", food, grid.Width, grid.Height)
		}
		if food == snake[0] {
			t.Fatalf("Food spawned on the snake head")
		}
	}
}

func TestSpawnReportsFullGrid(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 2}
	fm := NewFoodManager(grid, rand.New(rand.NewSource(1)))

	snake := []types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	if _, ok := fm.Spawn(snake); ok {
		t.Error("Expected no free cell on a fully occupied grid")
	}
}

func TestSpawnReachesEveryFreeCell(t *testing.T) {
	grid := types.Grid{Width: 3, Height: 3}
	fm := NewFoodManager(grid, rand.New(rand.NewSource(42)))

	snake := []types.Point{{X: 1, Y: 1}}
	seen := make(map[types.Point]bool)
	for i := 0; i < 500; i++ {
		food, ok := fm.Spawn(snake)
		if !ok {
			t.Fatal("Expected a free cell")
		}
		seen[food] = true
	}

	if len(seen) != grid.Cells()-len(snake) {
		t.Errorf("Expected all %d free cells hit over 500 draws, got %d", grid.Cells()-len(snake), len(seen))
	}
}
