package manager

import (
	"snake-duel/game/entity"
	"snake-duel/game/types"

	"golang.org/x/exp/rand"
)

const (
	FoodValue          = 1
	InitialObstacles   = 5
	MaxObstacleBatch   = 50
	PowerUpSpawnChance = 0.5
)

// SpawnManager places food, power-ups and obstacles on free cells.
// Every placement reports false when the grid has no free cell left;
// callers skip the spawn and try again later.
type SpawnManager struct {
	grid types.Grid
	rng  *rand.Rand
}

func NewSpawnManager(grid types.Grid, rng *rand.Rand) *SpawnManager {
	return &SpawnManager{
		grid: grid,
		rng:  rng,
	}
}

// EmptyCell picks a random cell outside occupied.
func (sm *SpawnManager) EmptyCell(occupied types.PointSet) (types.Point, bool) {
	free := sm.grid.EmptyCells(occupied)
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[sm.rng.Intn(len(free))], true
}

func (sm *SpawnManager) GenerateFood(occupied types.PointSet) (*entity.Food, bool) {
	pos, ok := sm.EmptyCell(occupied)
	if !ok {
		return nil, false
	}
	return &entity.Food{Pos: pos, Value: FoodValue}, true
}

// GeneratePowerUp picks a kind uniformly and places it with that kind's
// board lifetime.
func (sm *SpawnManager) GeneratePowerUp(occupied types.PointSet) (*entity.PowerUp, bool) {
	pos, ok := sm.EmptyCell(occupied)
	if !ok {
		return nil, false
	}
	kind := entity.PowerKinds[sm.rng.Intn(len(entity.PowerKinds))]
	return entity.NewPowerUp(pos, kind), true
}

// RollPowerUp decides whether a level-up also drops a power-up.
func (sm *SpawnManager) RollPowerUp() bool {
	return sm.rng.Float64() < PowerUpSpawnChance
}

// ObstacleBatch is how many obstacles to add for level: level-1 on a
// level-up, plus InitialObstacles at the start of a round.
func ObstacleBatch(level int, initial bool) int {
	count := level - 1
	if initial {
		count += InitialObstacles
	}
	return types.Clamp(count, 0, MaxObstacleBatch)
}
