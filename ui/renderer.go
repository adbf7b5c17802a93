package ui

import (
	"fmt"
	"time"

	"snake-duel/game"
	"snake-duel/game/entity"
	"snake-duel/game/manager"
	"snake-duel/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10
	statsPanel    = 220
	hudHeight     = 30
)

var (
	foodColor     = rl.Red
	obstacleColor = rl.Color{R: 120, G: 120, B: 120, A: 255}
	powerColors   = [entity.PowerKindCount]rl.Color{
		entity.PowerSpeed:      rl.Yellow,
		entity.PowerSlow:       rl.SkyBlue,
		entity.PowerInvincible: rl.Gold,
		entity.PowerShrink:     rl.Purple,
		entity.PowerMultiplier: rl.Orange,
	}
)

// WindowSize is the window needed to show a grid at the given cell size.
func WindowSize(grid types.Grid, cellSize int) (int32, int32) {
	w := int32(grid.Width*cellSize) + borderPadding*2 + statsPanel
	h := int32(grid.Height*cellSize) + borderPadding*2 + hudHeight
	return w, h
}

type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	gameWidth    int32
	graphWidth   int32
	graphHeight  int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
	r.gameWidth = r.screenWidth - statsPanel

	r.graphWidth = statsPanel - 20
	r.graphHeight = r.screenHeight / 4
}

// Draw renders one frame. It only reads snap and summary.
func (r *Renderer) Draw(snap game.Snapshot, summary manager.StatsSummary) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := min(r.screenHeight/40, int32(18))
	lineHeight := fontSize + 6

	// Fit the grid into the space left of the stats panel.
	availableWidth := r.gameWidth - borderPadding*2
	availableHeight := r.screenHeight - borderPadding*2 - hudHeight
	r.cellSize = max(1, min(availableWidth/int32(snap.Grid.Width), availableHeight/int32(snap.Grid.Height)))

	totalWidth := r.cellSize * int32(snap.Grid.Width)
	totalHeight := r.cellSize * int32(snap.Grid.Height)
	r.offsetX = borderPadding
	r.offsetY = hudHeight + (r.screenHeight-hudHeight-totalHeight)/2

	border := rl.DarkGray
	if snap.Grid.Wrap {
		border = rl.DarkBlue
	}
	rl.DrawRectangle(r.offsetX-2, r.offsetY-2, totalWidth+4, totalHeight+4, border)
	rl.DrawRectangle(r.offsetX, r.offsetY, totalWidth, totalHeight, rl.Black)

	for _, o := range snap.Obstacles {
		r.fillCell(o, obstacleColor)
	}
	if snap.Food != nil {
		r.fillCell(snap.Food.Pos, foodColor)
	}
	for _, p := range snap.PowerUps {
		r.drawPowerUp(p)
	}

	r.drawSnake(snap.Player)
	if snap.Rival != nil {
		r.drawSnake(*snap.Rival)
	}

	rl.DrawText(snap.StatusLine(), r.offsetX, 6, fontSize, rl.White)
	if line := snap.EffectsLine(); line != "" {
		w := int32(rl.MeasureText(snap.StatusLine(), fontSize))
		rl.DrawText(line, r.offsetX+w+20, 6, fontSize, rl.Yellow)
	}

	if banner := snap.Banner(); banner != "" {
		textWidth := int32(rl.MeasureText(banner, fontSize*2))
		rl.DrawText(banner,
			r.offsetX+(totalWidth-textWidth)/2,
			r.offsetY+totalHeight/2-fontSize,
			fontSize*2, rl.White)
	}

	r.drawStatsPanel(snap, summary, fontSize, lineHeight)
	rl.EndDrawing()
}

func (r *Renderer) cellOrigin(p types.Point) (int32, int32) {
	return r.offsetX + int32(p.X)*r.cellSize, r.offsetY + int32(p.Y)*r.cellSize
}

func (r *Renderer) fillCell(p types.Point, color rl.Color) {
	x, y := r.cellOrigin(p)
	rl.DrawRectangle(x, y, r.cellSize, r.cellSize, color)
}

func (r *Renderer) drawPowerUp(p entity.PowerUp) {
	x, y := r.cellOrigin(p.Pos)
	half := float32(r.cellSize) / 2
	rl.DrawCircle(int32(float32(x)+half), int32(float32(y)+half), half*0.8, powerColors[p.Kind])
}

func (r *Renderer) drawSnake(s game.SnakeView) {
	base := rl.Color{R: s.Color.R, G: s.Color.G, B: s.Color.B, A: 255}
	if s.Invincible {
		base = rl.Gold
	}

	for i := len(s.Body) - 1; i >= 0; i-- {
		p := s.Body[i]
		color := base
		if i == 0 {
			color = rl.Color{
				R: uint8(min(255, float32(base.R)*1.3)),
				G: uint8(min(255, float32(base.G)*1.3)),
				B: uint8(min(255, float32(base.B)*1.3)),
				A: 255,
			}
		}
		r.fillCell(p, color)
	}
	if len(s.Body) > 0 {
		r.drawHeading(s.Body[0], s.Direction)
	}
}

// drawHeading puts a small triangle on the head pointing where it moves.
func (r *Renderer) drawHeading(head, dir types.Point) {
	x, y := r.cellOrigin(head)
	fx, fy := float32(x), float32(y)
	cell := float32(r.cellSize)
	half := cell / 2

	switch dir {
	case types.Right:
		rl.DrawTriangle(
			rl.Vector2{X: fx + cell, Y: fy + half},
			rl.Vector2{X: fx + half, Y: fy},
			rl.Vector2{X: fx + half, Y: fy + cell},
			rl.Yellow)
	case types.Left:
		rl.DrawTriangle(
			rl.Vector2{X: fx, Y: fy + half},
			rl.Vector2{X: fx + half, Y: fy + cell},
			rl.Vector2{X: fx + half, Y: fy},
			rl.Yellow)
	case types.Down:
		rl.DrawTriangle(
			rl.Vector2{X: fx + half, Y: fy + cell},
			rl.Vector2{X: fx + cell, Y: fy + half},
			rl.Vector2{X: fx, Y: fy + half},
			rl.Yellow)
	case types.Up:
		rl.DrawTriangle(
			rl.Vector2{X: fx + half, Y: fy},
			rl.Vector2{X: fx, Y: fy + half},
			rl.Vector2{X: fx + cell, Y: fy + half},
			rl.Yellow)
	}
}

func (r *Renderer) drawStatsPanel(snap game.Snapshot, summary manager.StatsSummary, fontSize, lineHeight int32) {
	statsX := r.gameWidth + 5
	statsY := int32(10)

	rl.DrawRectangle(statsX-5, 0, statsPanel+5, r.screenHeight, rl.DarkGray)

	lines := []string{
		"Session",
		fmt.Sprintf("Games: %d", summary.GamesPlayed),
		fmt.Sprintf("Best: %d", summary.MaxScore),
		fmt.Sprintf("Avg: %.2f", summary.AverageScore),
		fmt.Sprintf("Median: %.1f", summary.MedianScore),
		fmt.Sprintf("Avg time: %s", summary.AverageDuration.Round(time.Second)),
		"",
		"Round",
		fmt.Sprintf("Ticks: %d", snap.Ticks),
		fmt.Sprintf("Length: %d", len(snap.Player.Body)),
		"Edges: " + snap.WrapLabel(),
	}
	if snap.Rival != nil {
		lines = append(lines, fmt.Sprintf("Rival: %d", len(snap.Rival.Body)))
	} else {
		lines = append(lines, "Rival: out")
	}
	for _, line := range lines {
		rl.DrawText(line, statsX, statsY, fontSize, rl.White)
		statsY += lineHeight
	}

	r.drawScoreGraph(summary, statsX, fontSize)
}

// drawScoreGraph plots recent round scores with a dashed average line.
func (r *Renderer) drawScoreGraph(summary manager.StatsSummary, graphX, fontSize int32) {
	graphY := r.screenHeight - r.graphHeight - fontSize*2
	rl.DrawRectangleLines(graphX, graphY, r.graphWidth, r.graphHeight, rl.White)
	rl.DrawText("Scores", graphX, graphY-fontSize-5, fontSize, rl.White)

	scores := summary.RecentScores
	if len(scores) < 2 {
		return
	}

	maxScore := max(1, summary.MaxScore)
	step := float32(r.graphWidth) / float32(len(scores)-1)
	yFor := func(score float64) int32 {
		return graphY + r.graphHeight - int32(float64(r.graphHeight)*score/float64(maxScore))
	}

	for j := 1; j < len(scores); j++ {
		x1 := graphX + int32(step*float32(j-1))
		x2 := graphX + int32(step*float32(j))
		rl.DrawLine(x1, yFor(float64(scores[j-1])), x2, yFor(float64(scores[j])), rl.Green)
	}

	avgY := yFor(summary.AverageScore)
	for x := graphX; x < graphX+r.graphWidth; x += 5 {
		rl.DrawLine(x, avgY, x+2, avgY, rl.Yellow)
	}
}
