package game

import (
	"snake-duel/game/entity"
	"snake-duel/game/types"
)

// Layout is the starting placement of every piece in a round.
type Layout struct {
	Player    []types.Point
	PlayerDir types.Point
	// Rival is left empty for a round without an opponent.
	Rival     []types.Point
	RivalDir  types.Point
	Food      *entity.Food
	Obstacles []types.Point
	PowerUps  []entity.PowerUp
}

// DefaultLayout puts the player a quarter of the way across heading
// right and the rival three quarters across heading left, both on the
// middle row.
func DefaultLayout(s Settings) Layout {
	row := s.Height / 2
	playerX := s.Width / 4
	rivalX := 3 * s.Width / 4

	layout := Layout{PlayerDir: types.Right, RivalDir: types.Left}
	for i := 0; i < s.StartLength; i++ {
		layout.Player = append(layout.Player, types.Point{X: playerX - i, Y: row})
	}
	if s.AIEnabled {
		for i := 0; i < s.StartLength; i++ {
			layout.Rival = append(layout.Rival, types.Point{X: rivalX + i, Y: row})
		}
	}
	return layout
}

func (g *Game) place(layout Layout) {
	g.player = entity.NewSnake(layout.Player, layout.PlayerDir, PlayerColor)
	if len(layout.Rival) > 0 {
		g.rival = entity.NewSnake(layout.Rival, layout.RivalDir, RivalColor)
	}
	if layout.Food != nil {
		food := *layout.Food
		g.food = &food
	}
	for _, pos := range layout.Obstacles {
		g.obstacles = append(g.obstacles, entity.Obstacle{Pos: pos})
	}
	for _, p := range layout.PowerUps {
		pu := p
		g.powerUps = append(g.powerUps, &pu)
	}
}
