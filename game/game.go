package game

import (
	"io"
	"log"
	"time"

	"snake-duel/ai"
	"snake-duel/game/entity"
	"snake-duel/game/manager"
	"snake-duel/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// LevelEvery is the score interval at which the level goes up.
const LevelEvery = 5

// RoundState is the round's position in its running/paused/ended cycle.
type RoundState int

const (
	Running RoundState = iota
	Paused
	Ended
)

func (s RoundState) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Ended:
		return "ended"
	default:
		return "unknown"
	}
}

var (
	PlayerColor = entity.Color{R: 40, G: 200, B: 40}
	RivalColor  = entity.Color{R: 40, G: 120, B: 220}
)

// HighScorer is the persistence handle owned by the driver.
type HighScorer interface {
	Load() manager.HighScores
	Save(manager.HighScores)
}

// Settings are the per-round rules.
type Settings struct {
	Width        int
	Height       int
	Wrap         bool
	TicksPerMove int
	StartLength  int
	AIEnabled    bool
}

func DefaultSettings() Settings {
	return Settings{
		Width:        32,
		Height:       24,
		TicksPerMove: 8,
		StartLength:  4,
		AIEnabled:    true,
	}
}

type Option func(*Game)

func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithSessionStats records every finished round into stats.
func WithSessionStats(stats *manager.SessionStats) Option {
	return func(g *Game) {
		g.stats = stats
	}
}

// Game owns one round at a time: both snakes, the board items and the
// score. It is driven by calling Tick at a fixed rate and is not safe
// for concurrent use.
type Game struct {
	RoundID  uuid.UUID
	settings Settings
	grid     types.Grid

	player *entity.Snake
	rival  *entity.Snake

	food      *entity.Food
	powerUps  []*entity.PowerUp
	obstacles []entity.Obstacle
	effects   *manager.EffectRegistry

	score      int
	level      int
	ticks      int
	paused     bool
	gameOver   bool
	deathCause manager.CollisionType
	startTime  time.Time

	highScores manager.HighScores
	store      HighScorer
	stats      *manager.SessionStats

	rng        *rand.Rand
	logger     *log.Logger
	collisions *manager.CollisionManager
	spawner    *manager.SpawnManager
	pilot      *ai.Pilot
}

// NewGame loads the high score from store (which may be nil) and starts
// the first round with the standard layout.
func NewGame(settings Settings, rng *rand.Rand, store HighScorer, opts ...Option) *Game {
	g := newGame(settings, rng, store, opts)
	g.Reset()
	return g
}

// NewGameWithLayout starts a round with every piece placed by the
// caller. Nothing is spawned randomly until the round needs it.
func NewGameWithLayout(settings Settings, rng *rand.Rand, store HighScorer, layout Layout, opts ...Option) *Game {
	g := newGame(settings, rng, store, opts)
	g.startRound()
	g.place(layout)
	return g
}

func newGame(settings Settings, rng *rand.Rand, store HighScorer, opts []Option) *Game {
	g := &Game{
		settings: settings,
		store:    store,
		rng:      rng,
		logger:   log.New(io.Discard, "", 0),
		pilot:    ai.NewPilot(rng),
	}
	for _, opt := range opts {
		opt(g)
	}
	if store != nil {
		g.highScores = store.Load()
	}
	return g
}

// Reset throws the current round away and starts a new one.
func (g *Game) Reset() {
	g.startRound()
	g.place(DefaultLayout(g.settings))
	if !g.spawnFood() {
		g.logger.Printf("No free cell for food")
	}
	g.spawnObstacles(true)
	g.logger.Printf("Round %s started: %dx%d wrap=%v ai=%v",
		g.RoundID, g.grid.Width, g.grid.Height, g.grid.Wrap, g.rivalActive())
}

func (g *Game) startRound() {
	g.RoundID = uuid.New()
	g.grid = types.Grid{Width: g.settings.Width, Height: g.settings.Height, Wrap: g.settings.Wrap}
	g.collisions = manager.NewCollisionManager(g.grid)
	g.spawner = manager.NewSpawnManager(g.grid, g.rng)
	g.effects = manager.NewEffectRegistry()

	g.player = nil
	g.rival = nil
	g.food = nil
	g.powerUps = nil
	g.obstacles = nil

	g.score = 0
	g.level = 1
	g.ticks = 0
	g.paused = false
	g.gameOver = false
	g.deathCause = manager.NoCollision
	g.startTime = time.Now()
}

// Tick advances the round by one step. It does nothing while paused or
// after the round has ended.
func (g *Game) Tick() {
	if g.paused || g.gameOver {
		return
	}
	g.ticks++

	if g.food == nil {
		g.spawnFood()
	}

	base := g.settings.TicksPerMove
	g.player.MoveTickCounter++
	if g.player.MoveTickCounter >= g.player.MoveDelay(base) {
		g.player.MoveTickCounter = 0
		g.movePlayer()
		if g.gameOver {
			return
		}
	}

	if g.rivalActive() {
		g.rival.MoveTickCounter++
		if g.rival.MoveTickCounter >= g.rival.MoveDelay(base) {
			g.rival.MoveTickCounter = 0
			g.moveRival()
		}
	}

	for _, s := range []*entity.Snake{g.player, g.rival} {
		if s != nil && s.InvincibleTicks > 0 {
			s.InvincibleTicks--
		}
	}
	g.effects.Tick()
	g.decayPowerUps()
}

func (g *Game) movePlayer() {
	var other *entity.Snake
	if g.rivalActive() {
		other = g.rival
	}

	next, hit := g.collisions.Resolve(g.player, other, g.obstacleSet())
	if hit != manager.NoCollision {
		g.player.Dead = true
		g.endRound(hit)
		return
	}

	if g.food != nil && next == g.food.Pos {
		g.player.GrowPending++
		g.score += g.food.Value * g.effects.ScoreMultiplier()
		if g.score%LevelEvery == 0 {
			g.levelUp()
		}
		g.consumeFood()
	}

	if i := g.powerUpAt(next); i >= 0 {
		p := g.powerUps[i]
		g.effects.Apply(p.Kind, g.player)
		g.powerUps = append(g.powerUps[:i], g.powerUps[i+1:]...)
	}

	g.player.Advance(next, false)
}

func (g *Game) moveRival() {
	g.steerRival()

	next, hit := g.collisions.Resolve(g.rival, g.player, g.obstacleSet())
	if hit != manager.NoCollision {
		g.rival.Dead = true
		g.logger.Printf("Rival died: %s collision", hit)
		return
	}

	if g.food != nil && next == g.food.Pos {
		g.rival.GrowPending++
		g.consumeFood()
	}

	g.rival.Advance(next, false)
}

func (g *Game) steerRival() {
	obstacles := g.obstacleSet()
	blocked := g.obstacleSet()
	blocked.Add(g.player.Body...)
	blocked.Add(g.rival.Body[1:]...)

	var food *types.Point
	if g.food != nil {
		pos := g.food.Pos
		food = &pos
	}

	dir := g.pilot.Choose(ai.Situation{
		Grid:      g.grid,
		Head:      g.rival.Head(),
		Heading:   g.rival.Direction,
		Food:      food,
		Obstacles: obstacles,
		Own:       g.rival.Cells(),
		Blocked:   blocked,
	})
	g.rival.SetDirection(dir)
}

func (g *Game) levelUp() {
	g.level++
	g.logger.Printf("Level %d reached (score %d)", g.level, g.score)
	g.spawnObstacles(false)
	if g.spawner.RollPowerUp() {
		g.spawnPowerUp()
	}
}

func (g *Game) endRound(cause manager.CollisionType) {
	g.gameOver = true
	g.deathCause = cause
	g.logger.Printf("Round %s over: %s collision, score %d, level %d, length %d",
		g.RoundID, cause, g.score, g.level, g.player.Len())

	if g.stats != nil {
		g.stats.AddRound(manager.RoundRecord{
			RoundID:   g.RoundID,
			StartTime: g.startTime,
			EndTime:   time.Now(),
			Score:     g.score,
			Level:     g.level,
			Ticks:     g.ticks,
			Cause:     cause,
		})
	}

	if g.score > g.highScores.HighScore {
		g.highScores.HighScore = g.score
		g.logger.Printf("New high score: %d", g.score)
		if g.store != nil {
			g.store.Save(g.highScores)
		}
	}
}

func (g *Game) rivalActive() bool {
	return g.rival != nil && !g.rival.Dead
}

// occupied is every cell a new item must not be placed on. It is rebuilt
// on each call.
func (g *Game) occupied() types.PointSet {
	cells := g.player.Cells()
	if g.rivalActive() {
		cells.Add(g.rival.Body...)
	}
	for _, o := range g.obstacles {
		cells.Add(o.Pos)
	}
	if g.food != nil {
		cells.Add(g.food.Pos)
	}
	for _, p := range g.powerUps {
		cells.Add(p.Pos)
	}
	return cells
}

func (g *Game) obstacleSet() types.PointSet {
	set := make(types.PointSet, len(g.obstacles))
	for _, o := range g.obstacles {
		set.Add(o.Pos)
	}
	return set
}

// consumeFood respawns the food after a snake ate it. The eaten cell is
// still counted as occupied, so the new food never lands under the head.
func (g *Game) consumeFood() {
	if !g.spawnFood() {
		g.food = nil
		g.logger.Printf("No free cell for food; will retry")
	}
}

// spawnFood replaces the current food. On a full grid the old food is
// kept (or stays absent) and false is returned.
func (g *Game) spawnFood() bool {
	food, ok := g.spawner.GenerateFood(g.occupied())
	if !ok {
		return false
	}
	g.food = food
	return true
}

func (g *Game) spawnPowerUp() {
	if p, ok := g.spawner.GeneratePowerUp(g.occupied()); ok {
		g.powerUps = append(g.powerUps, p)
	}
}

func (g *Game) spawnObstacles(initial bool) {
	for i := 0; i < manager.ObstacleBatch(g.level, initial); i++ {
		pos, ok := g.spawner.EmptyCell(g.occupied())
		if !ok {
			g.logger.Printf("Grid full; placed %d obstacles", i)
			return
		}
		g.obstacles = append(g.obstacles, entity.Obstacle{Pos: pos})
	}
}

func (g *Game) powerUpAt(p types.Point) int {
	for i, pu := range g.powerUps {
		if pu.Pos == p {
			return i
		}
	}
	return -1
}

func (g *Game) decayPowerUps() {
	kept := g.powerUps[:0]
	for _, p := range g.powerUps {
		p.TicksLeft--
		if p.TicksLeft > 0 {
			kept = append(kept, p)
		}
	}
	g.powerUps = kept
}

// TogglePause switches between running and paused. It has no effect
// once the round has ended.
func (g *Game) TogglePause() {
	if g.gameOver {
		return
	}
	g.paused = !g.paused
}

// ToggleWrap flips edge wrapping for the next round and returns the new
// setting. The current round keeps its topology.
func (g *Game) ToggleWrap() bool {
	g.settings.Wrap = !g.settings.Wrap
	return g.settings.Wrap
}

// SetPlayerDirection forwards a turn request to the player's snake.
// Requests are dropped while the round is not running.
func (g *Game) SetPlayerDirection(dir types.Point) {
	if g.State() != Running {
		return
	}
	g.player.SetDirection(dir)
}

func (g *Game) State() RoundState {
	switch {
	case g.gameOver:
		return Ended
	case g.paused:
		return Paused
	default:
		return Running
	}
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Level() int {
	return g.level
}

func (g *Game) HighScore() int {
	return g.highScores.HighScore
}

func (g *Game) Settings() Settings {
	return g.settings
}
