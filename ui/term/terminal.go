package term

import (
	"fmt"
	"time"

	"snake-duel/game"
	"snake-duel/game/entity"
	"snake-duel/game/manager"
	"snake-duel/game/types"

	"github.com/gdamore/tcell/v2"
)

// Each grid cell is two terminal columns wide so the board looks square.
const cellWidth = 2

// HUD rows above the board.
const hudRows = 2

var (
	borderStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	foodStyle     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	obstacleStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	textStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	effectStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	powerStyles   = [entity.PowerKindCount]tcell.Style{
		entity.PowerSpeed:      tcell.StyleDefault.Foreground(tcell.ColorYellow),
		entity.PowerSlow:       tcell.StyleDefault.Foreground(tcell.ColorAqua),
		entity.PowerInvincible: tcell.StyleDefault.Foreground(tcell.ColorGold),
		entity.PowerShrink:     tcell.StyleDefault.Foreground(tcell.ColorPurple),
		entity.PowerMultiplier: tcell.StyleDefault.Foreground(tcell.ColorOrange),
	}
	powerGlyphs = [entity.PowerKindCount]rune{
		entity.PowerSpeed:      '»',
		entity.PowerSlow:       '«',
		entity.PowerInvincible: '*',
		entity.PowerShrink:     '-',
		entity.PowerMultiplier: 'x',
	}
)

// Screen draws snapshots onto a tcell screen.
type Screen struct {
	screen tcell.Screen
}

func NewScreen(screen tcell.Screen) *Screen {
	return &Screen{screen: screen}
}

// Open initializes the real terminal. The caller must call Close.
func Open() (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	return NewScreen(screen), nil
}

func (s *Screen) Close() {
	s.screen.Fini()
}

// Events forwards terminal events on a channel until the screen is closed.
func (s *Screen) Events() <-chan tcell.Event {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()
	return events
}

// Draw renders one frame.
func (s *Screen) Draw(snap game.Snapshot, summary manager.StatsSummary) {
	s.screen.Clear()

	s.drawText(0, 0, snap.StatusLine(), textStyle)
	if line := snap.EffectsLine(); line != "" {
		s.drawText(len(snap.StatusLine())+2, 0, line, effectStyle)
	}
	s.drawText(0, 1, sessionLine(snap, summary), textStyle)

	s.drawBorder(snap.Grid)
	for _, o := range snap.Obstacles {
		s.setCell(o, '█', obstacleStyle)
	}
	if snap.Food != nil {
		s.setCell(snap.Food.Pos, '●', foodStyle)
	}
	for _, p := range snap.PowerUps {
		s.setCell(p.Pos, powerGlyphs[p.Kind], powerStyles[p.Kind])
	}
	s.drawSnake(snap.Player)
	if snap.Rival != nil {
		s.drawSnake(*snap.Rival)
	}

	if banner := snap.Banner(); banner != "" {
		x := max(0, (snap.Grid.Width*cellWidth+2-len(banner))/2)
		y := hudRows + 1 + snap.Grid.Height/2
		s.drawText(x, y, banner, textStyle.Reverse(true))
	}

	s.screen.Show()
}

func sessionLine(snap game.Snapshot, summary manager.StatsSummary) string {
	return fmt.Sprintf("Games: %d  Best: %d  Edges: %s", summary.GamesPlayed, summary.MaxScore, snap.WrapLabel())
}

func (s *Screen) drawSnake(v game.SnakeView) {
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(v.Color.R), int32(v.Color.G), int32(v.Color.B)))
	if v.Invincible {
		style = style.Bold(true).Foreground(tcell.ColorGold)
	}
	for i := len(v.Body) - 1; i > 0; i-- {
		s.setCell(v.Body[i], '█', style)
	}
	if len(v.Body) > 0 {
		s.setCell(v.Body[0], headGlyph(v.Direction), style.Bold(true))
	}
}

func headGlyph(dir types.Point) rune {
	switch dir {
	case types.Up:
		return '▲'
	case types.Down:
		return '▼'
	case types.Left:
		return '◀'
	default:
		return '▶'
	}
}

func (s *Screen) drawBorder(grid types.Grid) {
	glyph := '#'
	if grid.Wrap {
		glyph = '.'
	}
	right := grid.Width*cellWidth + 1
	bottom := hudRows + grid.Height + 1
	for x := 0; x <= right; x++ {
		s.screen.SetContent(x, hudRows, glyph, nil, borderStyle)
		s.screen.SetContent(x, bottom, glyph, nil, borderStyle)
	}
	for y := hudRows; y <= bottom; y++ {
		s.screen.SetContent(0, y, glyph, nil, borderStyle)
		s.screen.SetContent(right, y, glyph, nil, borderStyle)
	}
}

// setCell fills both columns of grid cell p.
func (s *Screen) setCell(p types.Point, glyph rune, style tcell.Style) {
	x, y := ScreenPos(p)
	s.screen.SetContent(x, y, glyph, nil, style)
	fill := glyph
	if glyph != '█' {
		fill = ' '
	}
	s.screen.SetContent(x+1, y, fill, nil, style)
}

// ScreenPos maps a grid cell to the terminal column and row of its left half.
func ScreenPos(p types.Point) (int, int) {
	return 1 + p.X*cellWidth, hudRows + 1 + p.Y
}

func (s *Screen) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// KeyCommand decodes a key event. Unmapped keys give the zero Command.
func KeyCommand(ev *tcell.EventKey) game.Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.Command{Direction: types.Up}
	case tcell.KeyDown:
		return game.Command{Direction: types.Down}
	case tcell.KeyLeft:
		return game.Command{Direction: types.Left}
	case tcell.KeyRight:
		return game.Command{Direction: types.Right}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Command{Quit: true}
	case tcell.KeyRune:
	default:
		return game.Command{}
	}

	switch ev.Rune() {
	case 'w', 'W':
		return game.Command{Direction: types.Up}
	case 's', 'S':
		return game.Command{Direction: types.Down}
	case 'a', 'A':
		return game.Command{Direction: types.Left}
	case 'd', 'D':
		return game.Command{Direction: types.Right}
	case 'p', 'P', ' ':
		return game.Command{TogglePause: true}
	case 'r', 'R':
		return game.Command{Reset: true}
	case 't', 'T':
		return game.Command{ToggleWrap: true}
	case 'q', 'Q':
		return game.Command{Quit: true}
	}
	return game.Command{}
}

// Run ticks g at fps and redraws after every tick or input until the
// player quits. stats may be nil.
func Run(s *Screen, g *game.Game, stats *manager.SessionStats, fps int) {
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	events := s.Events()
	summary := func() manager.StatsSummary {
		if stats == nil {
			return manager.StatsSummary{}
		}
		return stats.Summary()
	}

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if g.Apply(KeyCommand(ev)) {
					return
				}
			case *tcell.EventResize:
				s.screen.Sync()
			}
			s.Draw(g.Snapshot(), summary())

		case <-ticker.C:
			g.Tick()
			s.Draw(g.Snapshot(), summary())
		}
	}
}
