package entity

import (
	"fmt"
	"math"

	"snake-duel/game/types"
)

type Color struct {
	R, G, B uint8
}

// Snake is an ordered body, head first, plus the per-agent movement and
// power-up state the engine advances each tick.
type Snake struct {
	Body      []types.Point
	Direction types.Point
	Color     Color
	Dead      bool

	// GrowPending counts segments still to be added, one per move.
	GrowPending     int
	InvincibleTicks int
	MoveTickCounter int
	// SpeedModifier scales the base move delay; below 1 moves more often.
	SpeedModifier float64
}

// NewSnake copies body so the caller keeps ownership of its slice.
func NewSnake(body []types.Point, direction types.Point, color Color) *Snake {
	b := make([]types.Point, len(body))
	copy(b, body)
	return &Snake{
		Body:          b,
		Direction:     direction,
		Color:         color,
		SpeedModifier: 1.0,
	}
}

// Head returns the first body cell. An empty body is a programming error.
func (s *Snake) Head() types.Point {
	if len(s.Body) == 0 {
		panic(fmt.Sprintf("entity: snake %v has an empty body", s.Color))
	}
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Advance moves the head onto next. The tail is dropped unless grow is
// set or a growth credit is pending; a pending credit is spent instead.
func (s *Snake) Advance(next types.Point, grow bool) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = next

	if !grow && s.GrowPending <= 0 {
		s.Body = s.Body[:len(s.Body)-1]
	} else if s.GrowPending > 0 {
		s.GrowPending--
	}
}

// SetDirection ignores an exact reversal while the snake is longer than
// one cell.
func (s *Snake) SetDirection(dir types.Point) {
	if dir == s.Direction.Reverse() && len(s.Body) > 1 {
		return
	}
	s.Direction = dir
}

func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Shrink cuts a quarter of the body (at least one segment) off the tail.
// Snakes of three cells or fewer are left alone.
func (s *Snake) Shrink() {
	if len(s.Body) <= 3 {
		return
	}
	cut := max(1, len(s.Body)/4)
	s.Body = s.Body[:len(s.Body)-cut]
}

func (s *Snake) Invincible() bool {
	return s.InvincibleTicks > 0
}

// MoveDelay is the number of ticks between moves for the given base delay.
func (s *Snake) MoveDelay(base int) int {
	return max(1, int(math.Round(float64(base)*s.SpeedModifier)))
}

// Cells returns the body as a set.
func (s *Snake) Cells() types.PointSet {
	return types.NewPointSet(s.Body...)
}
