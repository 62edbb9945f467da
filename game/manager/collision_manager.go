package manager

import (
	"snake-game/game/types"
)

// CollisionManager answers collision queries against the grid walls and
// the snake body. It holds no mutable state of its own.
type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// HitsWall reports whether pos lies outside the grid bounds.
func (cm *CollisionManager) HitsWall(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// HitsBody reports whether pos coincides with any of the given body
// segments. Callers decide which segments count; during a normal move
// the vacating tail is excluded.
func (cm *CollisionManager) HitsBody(pos types.Point, body []types.Point) bool {
	for _, segment := range body {
		if pos == segment {
			return true
		}
	}
	return false
}
