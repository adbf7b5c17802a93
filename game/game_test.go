package game

import (
	"testing"

	"snake-duel/game/entity"
	"snake-duel/game/manager"
	"snake-duel/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

type memoryStore struct {
	scores manager.HighScores
	saves  int
}

func (m *memoryStore) Load() manager.HighScores { return m.scores }

func (m *memoryStore) Save(h manager.HighScores) {
	m.scores = h
	m.saves++
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func testSettings(w, h int) Settings {
	return Settings{Width: w, Height: h, TicksPerMove: 1, StartLength: 3}
}

func row(y int, xs ...int) []types.Point {
	pts := make([]types.Point, len(xs))
	for i, x := range xs {
		pts[i] = types.Point{X: x, Y: y}
	}
	return pts
}

func foodAt(x, y int) *entity.Food {
	return &entity.Food{Pos: types.Point{X: x, Y: y}, Value: manager.FoodValue}
}

func TestDefaultLayout(t *testing.T) {
	s := DefaultSettings()
	layout := DefaultLayout(s)

	assert.Equal(t, row(12, 8, 7, 6, 5), layout.Player)
	assert.Equal(t, types.Right, layout.PlayerDir)
	assert.Equal(t, row(12, 24, 25, 26, 27), layout.Rival)
	assert.Equal(t, types.Left, layout.RivalDir)

	s.AIEnabled = false
	assert.Empty(t, DefaultLayout(s).Rival)
}

func TestNewGame(t *testing.T) {
	store := &memoryStore{scores: manager.HighScores{HighScore: 42}}
	g := NewGame(DefaultSettings(), testRNG(), store)

	snap := g.Snapshot()
	assert.Equal(t, Running, snap.State)
	assert.Equal(t, 42, snap.HighScore)
	assert.Equal(t, 1, snap.Level)
	assert.Zero(t, snap.Score)
	require.NotNil(t, snap.Food)
	require.NotNil(t, snap.Rival)
	assert.Len(t, snap.Obstacles, manager.InitialObstacles)

	taken := types.NewPointSet(snap.Player.Body...)
	taken.Add(snap.Rival.Body...)
	assert.False(t, taken.Has(snap.Food.Pos))
	for _, o := range snap.Obstacles {
		assert.False(t, taken.Has(o), "obstacle on a snake at %v", o)
		assert.NotEqual(t, snap.Food.Pos, o)
	}
}

func TestSameSeedSameBoard(t *testing.T) {
	a := NewGame(DefaultSettings(), rand.New(rand.NewSource(7)), nil).Snapshot()
	b := NewGame(DefaultSettings(), rand.New(rand.NewSource(7)), nil).Snapshot()

	assert.Equal(t, a.Food, b.Food)
	assert.Equal(t, a.Obstacles, b.Obstacles)
	assert.NotEqual(t, a.RoundID, b.RoundID)
}

func TestFoodScoresAndLevelsUp(t *testing.T) {
	g := NewGameWithLayout(testSettings(10, 10), testRNG(), nil, Layout{
		Player:    row(5, 3, 2, 1),
		PlayerDir: types.Right,
		Food:      foodAt(4, 5),
	})
	g.score = 4

	g.Tick()

	snap := g.Snapshot()
	assert.Equal(t, 5, snap.Score)
	assert.Equal(t, 2, snap.Level)
	assert.Len(t, snap.Obstacles, manager.ObstacleBatch(2, false))
	assert.Equal(t, row(5, 4, 3, 2, 1), snap.Player.Body)
	require.NotNil(t, snap.Food)
	assert.NotEqual(t, types.Point{X: 4, Y: 5}, snap.Food.Pos)
}

func TestMultiplierDoublesFood(t *testing.T) {
	g := NewGameWithLayout(testSettings(10, 10), testRNG(), nil, Layout{
		Player:    row(5, 3, 2, 1),
		PlayerDir: types.Right,
		Food:      foodAt(5, 5),
		PowerUps:  []entity.PowerUp{*entity.NewPowerUp(types.Point{X: 4, Y: 5}, entity.PowerMultiplier)},
	})

	g.Tick()
	assert.True(t, g.effects.Active(entity.PowerMultiplier))
	g.Tick()

	assert.Equal(t, 2, g.Score())
}

func TestShrinkPowerUp(t *testing.T) {
	g := NewGameWithLayout(testSettings(20, 20), testRNG(), nil, Layout{
		Player:    row(5, 8, 7, 6, 5, 4, 3, 2, 1),
		PlayerDir: types.Right,
		Food:      foodAt(0, 0),
		PowerUps:  []entity.PowerUp{*entity.NewPowerUp(types.Point{X: 9, Y: 5}, entity.PowerShrink)},
	})

	g.Tick()

	snap := g.Snapshot()
	assert.Len(t, snap.Player.Body, 6)
	assert.Equal(t, types.Point{X: 9, Y: 5}, snap.Player.Body[0])
	assert.Empty(t, snap.PowerUps)
	assert.Empty(t, snap.Effects)
}

// Both snakes head for (5,5) on the same tick. The player moves first and
// takes the cell; the rival then runs into the player's new head.
func TestPlayerWinsContestedCell(t *testing.T) {
	s := testSettings(10, 10)
	s.TicksPerMove = 8
	s.AIEnabled = true
	g := NewGameWithLayout(s, testRNG(), nil, Layout{
		Player:    row(5, 4, 3, 2, 1),
		PlayerDir: types.Right,
		Rival:     row(5, 6, 7, 8, 9),
		RivalDir:  types.Left,
		Food:      foodAt(0, 0),
		Obstacles: []types.Point{{X: 6, Y: 4}, {X: 6, Y: 6}},
	})

	for i := 0; i < 7; i++ {
		g.Tick()
	}
	assert.Equal(t, types.Point{X: 4, Y: 5}, g.player.Head(), "no move before the cadence elapses")
	require.NotNil(t, g.Snapshot().Rival)

	g.Tick()

	snap := g.Snapshot()
	assert.Equal(t, Running, snap.State)
	assert.Equal(t, types.Point{X: 5, Y: 5}, snap.Player.Body[0])
	assert.False(t, snap.Player.Dead)
	assert.Nil(t, snap.Rival)
	assert.True(t, g.rival.Dead)
	assert.Equal(t, types.Point{X: 6, Y: 5}, g.rival.Head())

	// The dead rival no longer blocks anything.
	g.SetPlayerDirection(types.Right)
	for i := 0; i < 8; i++ {
		g.Tick()
	}
	assert.Equal(t, Running, g.State())
	assert.Equal(t, types.Point{X: 6, Y: 5}, g.player.Head())
}

func TestDeathEndsRound(t *testing.T) {
	cases := []struct {
		name   string
		layout Layout
		cause  manager.CollisionType
	}{
		{
			name:   "wall",
			layout: Layout{Player: row(5, 9, 8, 7), PlayerDir: types.Right},
			cause:  manager.WallCollision,
		},
		{
			name: "obstacle",
			layout: Layout{
				Player: row(5, 3, 2, 1), PlayerDir: types.Right,
				Obstacles: []types.Point{{X: 4, Y: 5}},
			},
			cause: manager.ObstacleCollision,
		},
		{
			name: "self",
			layout: Layout{
				Player:    []types.Point{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 3, Y: 3}, {X: 2, Y: 3}, {X: 1, Y: 3}},
				PlayerDir: types.Down,
			},
			cause: manager.SelfCollision,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &memoryStore{}
			stats := manager.NewSessionStats()
			tc.layout.Food = foodAt(0, 0)
			g := NewGameWithLayout(testSettings(10, 10), testRNG(), store, tc.layout, WithSessionStats(stats))
			g.score = 3

			g.Tick()

			snap := g.Snapshot()
			assert.Equal(t, Ended, snap.State)
			assert.Equal(t, tc.cause, snap.DeathCause)
			assert.True(t, snap.Player.Dead)
			assert.Equal(t, 3, snap.HighScore)
			assert.Equal(t, 1, store.saves)
			assert.Equal(t, 3, store.scores.HighScore)
			assert.Equal(t, 1, stats.GamesPlayed())

			ticks := snap.Ticks
			g.Tick()
			assert.Equal(t, ticks, g.Snapshot().Ticks)
		})
	}
}

func TestPlayerDeathStopsTick(t *testing.T) {
	s := testSettings(10, 10)
	s.AIEnabled = true
	g := NewGameWithLayout(s, testRNG(), nil, Layout{
		Player:    row(5, 9, 8, 7),
		PlayerDir: types.Right,
		Rival:     row(2, 5, 6, 7),
		RivalDir:  types.Left,
		Food:      foodAt(4, 2),
		PowerUps:  []entity.PowerUp{{Pos: types.Point{X: 0, Y: 9}, Kind: entity.PowerSlow, TicksLeft: 5}},
	})
	g.rival.InvincibleTicks = 3

	g.Tick()

	snap := g.Snapshot()
	assert.Equal(t, Ended, snap.State)
	assert.Equal(t, manager.WallCollision, snap.DeathCause)
	require.NotNil(t, snap.Rival)
	assert.Equal(t, row(2, 5, 6, 7), snap.Rival.Body, "rival must not move after the player died")
	require.NotNil(t, snap.Food)
	assert.Equal(t, types.Point{X: 4, Y: 2}, snap.Food.Pos)
	require.Len(t, snap.PowerUps, 1)
	assert.Equal(t, 5, snap.PowerUps[0].TicksLeft)
	assert.Equal(t, 3, g.rival.InvincibleTicks)
}

func TestRivalEatsFood(t *testing.T) {
	s := testSettings(10, 10)
	s.AIEnabled = true
	g := NewGameWithLayout(s, testRNG(), nil, Layout{
		Player:    row(8, 2, 1, 0),
		PlayerDir: types.Right,
		Rival:     row(2, 5, 6, 7),
		RivalDir:  types.Left,
		Food:      foodAt(4, 2),
	})
	require.Equal(t, 3, g.rival.Len())

	g.Tick()

	assert.Equal(t, Running, g.State())
	assert.Equal(t, types.Point{X: 4, Y: 2}, g.rival.Head())
	assert.Equal(t, 4, g.rival.Len(), "growth credit spent on the eating move")
	assert.Zero(t, g.rival.GrowPending)
	assert.Zero(t, g.Score(), "rival food never scores")
	assert.Equal(t, 1, g.Level())

	require.NotNil(t, g.food)
	assert.NotEqual(t, types.Point{X: 4, Y: 2}, g.food.Pos)
	assert.False(t, g.rival.Occupies(g.food.Pos))
	assert.False(t, g.player.Occupies(g.food.Pos))
}

func TestLowScoreIsNotSaved(t *testing.T) {
	store := &memoryStore{scores: manager.HighScores{HighScore: 10}}
	g := NewGameWithLayout(testSettings(10, 10), testRNG(), store, Layout{
		Player: row(5, 9, 8, 7), PlayerDir: types.Right, Food: foodAt(0, 0),
	})
	g.score = 4

	g.Tick()

	assert.Equal(t, Ended, g.State())
	assert.Zero(t, store.saves)
	assert.Equal(t, 10, g.HighScore())
}

func TestWrapCrossesEdge(t *testing.T) {
	s := testSettings(10, 10)
	s.Wrap = true
	g := NewGameWithLayout(s, testRNG(), nil, Layout{
		Player: row(5, 9, 8, 7), PlayerDir: types.Right, Food: foodAt(0, 0),
	})

	g.Tick()

	assert.Equal(t, Running, g.State())
	assert.Equal(t, types.Point{X: 0, Y: 5}, g.player.Head())
}

func TestInvincibleSurvivesWall(t *testing.T) {
	g := NewGameWithLayout(testSettings(10, 10), testRNG(), nil, Layout{
		Player: row(5, 9, 8, 7), PlayerDir: types.Right, Food: foodAt(0, 0),
	})
	g.player.InvincibleTicks = 5

	g.Tick()

	assert.Equal(t, Running, g.State())
	assert.Equal(t, types.Point{X: 9, Y: 5}, g.player.Head())
	assert.Equal(t, row(5, 9, 9, 8), g.player.Body, "head cell is held twice until the tail leaves it")
	assert.Equal(t, 4, g.player.InvincibleTicks)
}

func TestSpeedPowerUpWearsOff(t *testing.T) {
	s := testSettings(20, 20)
	s.Wrap = true
	s.TicksPerMove = 8
	g := NewGameWithLayout(s, testRNG(), nil, Layout{
		Player:    row(5, 3, 2, 1),
		PlayerDir: types.Right,
		Food:      foodAt(0, 0),
		PowerUps:  []entity.PowerUp{*entity.NewPowerUp(types.Point{X: 4, Y: 5}, entity.PowerSpeed)},
	})

	for i := 0; i < 8; i++ {
		g.Tick()
	}
	require.Equal(t, types.Point{X: 4, Y: 5}, g.player.Head())
	assert.InDelta(t, 0.6, g.player.SpeedModifier, 1e-9)
	assert.Equal(t, 5, g.player.MoveDelay(s.TicksPerMove))

	for i := 0; i < entity.PowerSpeed.Effect().Duration; i++ {
		g.Tick()
	}
	assert.Equal(t, Running, g.State())
	assert.InDelta(t, 1.0, g.player.SpeedModifier, 1e-9)
	assert.False(t, g.effects.Active(entity.PowerSpeed))
}

func TestPowerUpsExpireOnBoard(t *testing.T) {
	pu := entity.PowerUp{Pos: types.Point{X: 8, Y: 8}, Kind: entity.PowerMultiplier, TicksLeft: 2}
	s := testSettings(10, 10)
	s.TicksPerMove = 100
	g := NewGameWithLayout(s, testRNG(), nil, Layout{
		Player: row(5, 3, 2, 1), PlayerDir: types.Right, Food: foodAt(0, 0),
		PowerUps: []entity.PowerUp{pu},
	})

	g.Tick()
	require.Len(t, g.Snapshot().PowerUps, 1)
	assert.Equal(t, 1, g.Snapshot().PowerUps[0].TicksLeft)

	g.Tick()
	assert.Empty(t, g.Snapshot().PowerUps)
}

func TestPause(t *testing.T) {
	g := NewGameWithLayout(testSettings(10, 10), testRNG(), nil, Layout{
		Player: row(5, 3, 2, 1), PlayerDir: types.Right, Food: foodAt(0, 0),
	})

	g.TogglePause()
	assert.Equal(t, Paused, g.State())

	g.SetPlayerDirection(types.Up)
	g.Tick()
	assert.Zero(t, g.Snapshot().Ticks)
	assert.Equal(t, types.Right, g.player.Direction)

	g.TogglePause()
	g.SetPlayerDirection(types.Up)
	g.Tick()
	assert.Equal(t, types.Point{X: 3, Y: 4}, g.player.Head())
}

func TestPauseAfterEndIsIgnored(t *testing.T) {
	g := NewGameWithLayout(testSettings(10, 10), testRNG(), nil, Layout{
		Player: row(5, 9, 8, 7), PlayerDir: types.Right, Food: foodAt(0, 0),
	})
	g.Tick()
	require.Equal(t, Ended, g.State())

	g.TogglePause()
	assert.Equal(t, Ended, g.State())
}

func TestMissingFoodIsRespawned(t *testing.T) {
	s := testSettings(10, 10)
	s.TicksPerMove = 100
	g := NewGameWithLayout(s, testRNG(), nil, Layout{Player: row(5, 3, 2, 1), PlayerDir: types.Right})
	require.Nil(t, g.Snapshot().Food)

	g.Tick()

	food := g.Snapshot().Food
	require.NotNil(t, food)
	assert.False(t, g.player.Occupies(food.Pos))
}

func TestResetAndToggleWrap(t *testing.T) {
	store := &memoryStore{scores: manager.HighScores{HighScore: 9}}
	s := DefaultSettings()
	g := NewGame(s, testRNG(), store)
	first := g.RoundID
	g.score = 3

	assert.True(t, g.ToggleWrap())
	snap := g.Snapshot()
	assert.False(t, snap.Grid.Wrap)
	assert.True(t, snap.NextWrap)

	g.Reset()
	snap = g.Snapshot()
	assert.NotEqual(t, first, snap.RoundID)
	assert.True(t, snap.Grid.Wrap)
	assert.Zero(t, snap.Score)
	assert.Equal(t, 9, snap.HighScore)
	assert.Equal(t, Running, snap.State)
}

func TestApplyCommand(t *testing.T) {
	g := NewGameWithLayout(testSettings(10, 10), testRNG(), nil, Layout{
		Player: row(5, 3, 2, 1), PlayerDir: types.Right, Food: foodAt(0, 0),
	})

	assert.False(t, g.Apply(Command{Direction: types.Down}))
	assert.Equal(t, types.Down, g.player.Direction)

	assert.False(t, g.Apply(Command{Direction: types.Up}))
	assert.Equal(t, types.Down, g.player.Direction, "reversal is ignored")

	g.Apply(Command{TogglePause: true})
	assert.Equal(t, Paused, g.State())

	first := g.RoundID
	g.Apply(Command{Reset: true, ToggleWrap: true})
	assert.NotEqual(t, first, g.RoundID)
	assert.True(t, g.Snapshot().Grid.Wrap)
	assert.Equal(t, Running, g.State())

	assert.True(t, g.Apply(Command{Quit: true}))
}

func TestCommandMerge(t *testing.T) {
	c := Command{Direction: types.Up}.Merge(Command{Reset: true})
	assert.Equal(t, Command{Direction: types.Up, Reset: true}, c)

	c = Command{Direction: types.Up, TogglePause: true}.Merge(Command{Direction: types.Left, TogglePause: true})
	assert.Equal(t, types.Left, c.Direction)
	assert.False(t, c.TogglePause)
}
