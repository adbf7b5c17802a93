package manager

import (
	"snake-duel/game/entity"
	"snake-duel/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	ObstacleCollision
	SelfCollision
	SnakeCollision
)

func (c CollisionType) String() string {
	switch c {
	case NoCollision:
		return "none"
	case WallCollision:
		return "wall"
	case ObstacleCollision:
		return "obstacle"
	case SelfCollision:
		return "self"
	case SnakeCollision:
		return "snake"
	default:
		return "unknown"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Resolve computes where mover's head lands this move and whether the move
// is fatal. Checks run in order: wall, obstacle, own body, other snake.
// An invincible mover survives all of them and is pushed back onto the
// grid if it ran off an edge. other may be nil when no rival is active.
//
// The own-body check uses the body before the move, so the tail cell
// that is about to be vacated still counts.
func (cm *CollisionManager) Resolve(mover, other *entity.Snake, obstacles types.PointSet) (types.Point, CollisionType) {
	next := cm.grid.Step(mover.Head(), mover.Direction)
	shielded := mover.Invincible()

	if !cm.grid.Wrap && cm.isWallCollision(next) {
		if !shielded {
			return next, WallCollision
		}
		// The clamped cell is usually the head itself, so the body will
		// hold that cell twice until the tail moves off it.
		next = cm.grid.ClampPoint(next)
	}

	if shielded {
		return next, NoCollision
	}
	if obstacles.Has(next) {
		return next, ObstacleCollision
	}
	if mover.Occupies(next) {
		return next, SelfCollision
	}
	if other != nil && other.Occupies(next) {
		return next, SnakeCollision
	}
	return next, NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.InBounds(pos)
}
