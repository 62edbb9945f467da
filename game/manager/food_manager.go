package manager

import (
	"math/rand"

	"snake-game/game/types"
)

// FoodManager places food on the grid. Placement is uniform over the
// free cells: instead of rejection-sampling random cells (which stalls
// as the snake fills the board) it enumerates the free cells and draws
// one index.
type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
}

func NewFoodManager(grid types.Grid, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rng,
	}
}

// Spawn picks a uniformly random cell not occupied by any snake
// segment, head included. ok is false when the snake covers the whole
// grid and no cell is left.
func (fm *FoodManager) Spawn(snake []types.Point) (food types.Point, ok bool) {
	occupied := make(map[types.Point]struct{}, len(snake))
	for _, segment := range snake {
		occupied[segment] = struct{}{}
	}

	free := make([]types.Point, 0, fm.grid.Cells()-len(occupied))
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, taken := occupied[p]; !taken {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}
