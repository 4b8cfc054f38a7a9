package manager

import (
	"snake-infinity/game/entity"
	"snake-infinity/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// WrapEdge moves a head that left the grid to the opposite edge.
// Only one axis can be out of bounds after a single move.
func (cm *CollisionManager) WrapEdge(snake *entity.Snake) bool {
	head := snake.GetHead()
	span := cm.grid.Span()
	last := span - cm.grid.CellSize

	switch {
	case head.X >= span:
		head.X = 0
	case head.X < 0:
		head.X = last
	case head.Y >= span:
		head.Y = 0
	case head.Y < 0:
		head.Y = last
	default:
		return false
	}
	snake.SetHead(head)
	return true
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food *entity.Food) bool {
	return food.Visible && pos == food.Position
}

// IsSelfCollision reports whether the head overlaps any other segment.
func (cm *CollisionManager) IsSelfCollision(snake *entity.Snake) bool {
	head := snake.GetHead()
	for _, part := range snake.Body[1:] {
		if part == head {
			return true
		}
	}
	return false
}

// ValidateSpawnPosition checks if a position is valid for spawning food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if !cm.grid.OnLattice(pos) {
		return false
	}
	return !snake.Occupies(pos)
}
