package game

import (
	"fmt"
	"strings"
)

// StatusLine is the one-line score readout shown by every front end.
func (s Snapshot) StatusLine() string {
	return fmt.Sprintf("Score: %d  High: %d  Level: %d", s.Score, s.HighScore, s.Level)
}

// EffectsLine lists the running power effects, or "" when there are none.
func (s Snapshot) EffectsLine() string {
	if len(s.Effects) == 0 {
		return ""
	}
	parts := make([]string, len(s.Effects))
	for i, e := range s.Effects {
		parts[i] = fmt.Sprintf("%s %d", e.Kind, e.TicksLeft)
	}
	return strings.Join(parts, "  ")
}

// Banner is the centred message for a paused or finished round.
func (s Snapshot) Banner() string {
	switch s.State {
	case Paused:
		return "PAUSED - P to resume"
	case Ended:
		return fmt.Sprintf("GAME OVER (%s) - R to restart", s.DeathCause)
	default:
		return ""
	}
}

// WrapLabel describes the current topology and, if toggled, the next one.
func (s Snapshot) WrapLabel() string {
	label := "walls"
	if s.Grid.Wrap {
		label = "wrap"
	}
	if s.NextWrap != s.Grid.Wrap {
		next := "walls"
		if s.NextWrap {
			next = "wrap"
		}
		label += " (next: " + next + ")"
	}
	return label
}
