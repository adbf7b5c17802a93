package ai

import (
	"testing"

	"snake-duel/game/types"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func newTestPilot() *Pilot {
	return NewPilot(rand.New(rand.NewSource(1)))
}

func TestPilotFollowsPathToFood(t *testing.T) {
	food := types.Point{X: 2, Y: 5}
	s := Situation{
		Grid:    types.Grid{Width: 10, Height: 10},
		Head:    types.Point{X: 6, Y: 5},
		Heading: types.Left,
		Food:    &food,
		Own:     types.NewPointSet(types.Point{X: 6, Y: 5}, types.Point{X: 7, Y: 5}),
		Blocked: types.NewPointSet(types.Point{X: 7, Y: 5}),
	}

	assert.Equal(t, types.Left, newTestPilot().Choose(s))
}

func TestPilotTurnsTowardsFood(t *testing.T) {
	food := types.Point{X: 6, Y: 9}
	s := Situation{
		Grid:    types.Grid{Width: 10, Height: 10},
		Head:    types.Point{X: 6, Y: 5},
		Heading: types.Left,
		Food:    &food,
		Own:     types.NewPointSet(types.Point{X: 6, Y: 5}),
	}

	assert.Equal(t, types.Down, newTestPilot().Choose(s))
}

func TestPilotNormalizesWrappedStep(t *testing.T) {
	food := types.Point{X: 9, Y: 5}
	s := Situation{
		Grid:    types.Grid{Width: 10, Height: 10, Wrap: true},
		Head:    types.Point{X: 0, Y: 5},
		Heading: types.Up,
		Food:    &food,
		Own:     types.NewPointSet(types.Point{X: 0, Y: 5}),
	}

	assert.Equal(t, types.Left, newTestPilot().Choose(s))
}

func TestPilotWandersWithoutFood(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}
	head := types.Point{X: 0, Y: 0}
	s := Situation{
		Grid:      grid,
		Head:      head,
		Heading:   types.Up,
		Obstacles: types.NewPointSet(types.Point{X: 1, Y: 0}),
		Own:       types.NewPointSet(head),
	}

	for i := 0; i < 20; i++ {
		assert.Equal(t, types.Down, newTestPilot().Choose(s))
	}
}

func TestPilotWandersWhenFoodUnreachable(t *testing.T) {
	food := types.Point{X: 8, Y: 8}
	head := types.Point{X: 2, Y: 2}
	blocked := types.NewPointSet(
		types.Point{X: 3, Y: 2}, types.Point{X: 1, Y: 2},
		types.Point{X: 2, Y: 3}, types.Point{X: 2, Y: 1},
	)
	s := Situation{
		Grid:      types.Grid{Width: 10, Height: 10},
		Head:      head,
		Heading:   types.Right,
		Food:      &food,
		Obstacles: types.NewPointSet(types.Point{X: 3, Y: 2}, types.Point{X: 1, Y: 2}, types.Point{X: 2, Y: 3}),
		Own:       types.NewPointSet(head),
		Blocked:   blocked,
	}

	// (2,1) is only blocked by the other snake, which the fallback does not check.
	assert.Equal(t, types.Up, newTestPilot().Choose(s))
}

func TestPilotKeepsHeadingWhenTrapped(t *testing.T) {
	head := types.Point{X: 0, Y: 0}
	s := Situation{
		Grid:      types.Grid{Width: 10, Height: 10},
		Head:      head,
		Heading:   types.Left,
		Obstacles: types.NewPointSet(types.Point{X: 1, Y: 0}),
		Own:       types.NewPointSet(head, types.Point{X: 0, Y: 1}),
	}

	assert.Equal(t, types.Left, newTestPilot().Choose(s))
}
