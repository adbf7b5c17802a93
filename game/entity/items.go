package entity

import "snake-duel/game/types"

// Food is the single active food item.
type Food struct {
	Pos   types.Point
	Value int
}

// PowerUp sits on the board until taken or until TicksLeft runs out.
type PowerUp struct {
	Pos       types.Point
	Kind      PowerKind
	TicksLeft int
}

// NewPowerUp places a power-up of kind at pos with its full board lifetime.
func NewPowerUp(pos types.Point, kind PowerKind) *PowerUp {
	return &PowerUp{Pos: pos, Kind: kind, TicksLeft: kind.Effect().Lifetime}
}

// Obstacle is a static wall cell for the rest of the round.
type Obstacle struct {
	Pos types.Point
}
