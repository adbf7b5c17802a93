package game

import "snake-duel/game/types"

// Command is one frame's worth of player input, already decoded from
// whatever front end produced it.
type Command struct {
	// Direction is the requested heading; zero means no turn.
	Direction   types.Point
	TogglePause bool
	Reset       bool
	ToggleWrap  bool
	Quit        bool
}

// Merge combines two commands read in the same frame. The later turn wins.
func (c Command) Merge(o Command) Command {
	if !o.Direction.IsZero() {
		c.Direction = o.Direction
	}
	c.TogglePause = c.TogglePause != o.TogglePause
	c.Reset = c.Reset || o.Reset
	c.ToggleWrap = c.ToggleWrap != o.ToggleWrap
	c.Quit = c.Quit || o.Quit
	return c
}

// Apply hands cmd to the game and reports whether the driver should stop.
func (g *Game) Apply(cmd Command) bool {
	if cmd.Quit {
		return true
	}
	if cmd.ToggleWrap {
		wrap := g.ToggleWrap()
		g.logger.Printf("Wrap set to %v for the next round", wrap)
	}
	if cmd.Reset {
		g.Reset()
		return false
	}
	if cmd.TogglePause {
		g.TogglePause()
	}
	if !cmd.Direction.IsZero() {
		g.SetPlayerDirection(cmd.Direction)
	}
	return false
}
