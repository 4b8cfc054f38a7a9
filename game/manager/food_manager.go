package manager

import (
	"snake-infinity/game/entity"
	"snake-infinity/game/types"

	"golang.org/x/exp/rand"
)

// MaxSpawnTries bounds rejection sampling before falling back to a scan of free cells.
const MaxSpawnTries = 64

type FoodManager struct {
	grid         types.Grid
	score        int
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, score int, seed uint64, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		score:        score,
		rng:          rand.New(rand.NewSource(seed)),
		collisionMgr: collisionMgr,
	}
}

// GenerateFood picks a random cell not covered by the snake.
// ok is false when the snake fills the whole grid.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (pos types.Point, ok bool) {
	for i := 0; i < MaxSpawnTries; i++ {
		food := fm.grid.Cell(fm.rng.Intn(fm.grid.Cells), fm.rng.Intn(fm.grid.Cells))
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food, true
		}
	}

	var free []types.Point
	for cy := 0; cy < fm.grid.Cells; cy++ {
		for cx := 0; cx < fm.grid.Cells; cx++ {
			p := fm.grid.Cell(cx, cy)
			if !snake.Occupies(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}

// NewFood returns a freshly spawned pellet for the given snake.
func (fm *FoodManager) NewFood(snake *entity.Snake) *entity.Food {
	food := &entity.Food{Score: fm.score}
	fm.Respawn(food, snake)
	return food
}

// Respawn moves food to a new free cell, hiding it when none is left.
func (fm *FoodManager) Respawn(food *entity.Food, snake *entity.Snake) {
	pos, ok := fm.GenerateFood(snake)
	food.Position = pos
	food.Visible = ok
}

// TryEat grows the snake and respawns the food when the head is on it.
func (fm *FoodManager) TryEat(snake *entity.Snake, food *entity.Food) bool {
	if !fm.collisionMgr.IsFoodCollision(snake.GetHead(), food) {
		return false
	}
	snake.Grow()
	snake.Score += food.Score
	fm.Respawn(food, snake)
	return true
}
