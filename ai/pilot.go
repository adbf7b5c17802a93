package ai

import (
	"snake-duel/game/types"

	"golang.org/x/exp/rand"
)

// Situation is what the opponent can see when it is due to move.
type Situation struct {
	Grid    types.Grid
	Head    types.Point
	Heading types.Point
	// Food is nil when no food is on the board.
	Food      *types.Point
	Obstacles types.PointSet
	// Own is the mover's whole body, head included.
	Own types.PointSet
	// Blocked is obstacles, the other snake and the mover's body minus its head.
	Blocked types.PointSet
}

// Pilot chooses the opponent's heading: chase the food along an A* path
// and, when there is none, try a random safe-looking neighbour.
type Pilot struct {
	rng *rand.Rand
}

func NewPilot(rng *rand.Rand) *Pilot {
	return &Pilot{rng: rng}
}

// Choose returns the heading to request. It returns s.Heading when no
// better option exists, which usually means the snake is trapped.
func (p *Pilot) Choose(s Situation) types.Point {
	if s.Food != nil {
		if path, ok := FindPath(s.Head, *s.Food, s.Grid, s.Blocked); ok && len(path) > 1 {
			return headingTowards(s.Grid, s.Head, path[1], s.Heading)
		}
	}
	return p.wander(s)
}

func headingTowards(grid types.Grid, head, next, fallback types.Point) types.Point {
	d := next.Sub(head)
	if grid.Wrap {
		if d.X > 1 {
			d.X -= grid.Width
		}
		if d.X < -1 {
			d.X += grid.Width
		}
		if d.Y > 1 {
			d.Y -= grid.Height
		}
		if d.Y < -1 {
			d.Y += grid.Height
		}
	}
	d = types.Point{X: types.Clamp(d.X, -1, 1), Y: types.Clamp(d.Y, -1, 1)}
	if d.IsZero() {
		return fallback
	}
	return d
}

func (p *Pilot) wander(s Situation) types.Point {
	candidates := types.Directions
	p.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for _, dir := range candidates {
		next := s.Head.Add(dir)
		if !s.Grid.Wrap && !s.Grid.InBounds(next) {
			continue
		}
		next = s.Grid.Normalize(next)
		if s.Obstacles.Has(next) || s.Own.Has(next) {
			continue
		}
		return dir
	}
	return s.Heading
}
