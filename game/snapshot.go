package game

import (
	"snake-duel/game/entity"
	"snake-duel/game/manager"
	"snake-duel/game/types"

	"github.com/google/uuid"
)

// SnakeView is a read-only copy of a snake for drawing.
type SnakeView struct {
	Body       []types.Point
	Direction  types.Point
	Color      entity.Color
	Invincible bool
	Dead       bool
}

// Snapshot is a deep copy of everything a renderer draws. Holding one
// never affects the game.
type Snapshot struct {
	RoundID  uuid.UUID
	Grid     types.Grid
	NextWrap bool

	Player SnakeView
	// Rival is nil when there is no live opponent.
	Rival *SnakeView

	Food      *entity.Food
	PowerUps  []entity.PowerUp
	Obstacles []types.Point
	Effects   []manager.ActiveEffect

	Score      int
	Level      int
	HighScore  int
	Ticks      int
	State      RoundState
	DeathCause manager.CollisionType
}

func viewOf(s *entity.Snake) SnakeView {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return SnakeView{
		Body:       body,
		Direction:  s.Direction,
		Color:      s.Color,
		Invincible: s.Invincible(),
		Dead:       s.Dead,
	}
}

func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		RoundID:    g.RoundID,
		Grid:       g.grid,
		NextWrap:   g.settings.Wrap,
		Player:     viewOf(g.player),
		Effects:    g.effects.Snapshot(),
		Score:      g.score,
		Level:      g.level,
		HighScore:  g.highScores.HighScore,
		Ticks:      g.ticks,
		State:      g.State(),
		DeathCause: g.deathCause,
	}
	if g.rivalActive() {
		rival := viewOf(g.rival)
		snap.Rival = &rival
	}
	if g.food != nil {
		food := *g.food
		snap.Food = &food
	}
	for _, p := range g.powerUps {
		snap.PowerUps = append(snap.PowerUps, *p)
	}
	for _, o := range g.obstacles {
		snap.Obstacles = append(snap.Obstacles, o.Pos)
	}
	return snap
}
