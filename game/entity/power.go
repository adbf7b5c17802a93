package entity

// PowerKind enumerates the power-ups that can appear on the board.
type PowerKind int

const (
	PowerSpeed PowerKind = iota
	PowerSlow
	PowerInvincible
	PowerShrink
	PowerMultiplier

	PowerKindCount
)

// PowerKinds lists every kind, in declaration order.
var PowerKinds = [PowerKindCount]PowerKind{PowerSpeed, PowerSlow, PowerInvincible, PowerShrink, PowerMultiplier}

const (
	fastModifier = 0.6
	slowModifier = 1.8
)

func (k PowerKind) String() string {
	switch k {
	case PowerSpeed:
		return "speed"
	case PowerSlow:
		return "slow"
	case PowerInvincible:
		return "invincible"
	case PowerShrink:
		return "shrink"
	case PowerMultiplier:
		return "multiplier"
	default:
		return "unknown"
	}
}

// Effect describes what taking a power-up does.
type Effect struct {
	// Lifetime is how long an untouched power-up stays on the board.
	Lifetime int
	// Duration is how long the effect stays registered once taken; 0 for
	// one-shot effects.
	Duration int
	// Apply mutates the snake that took the power-up.
	Apply func(s *Snake)
	// Expire undoes Apply when Duration runs out. Nil when nothing needs undoing.
	Expire func(s *Snake)
}

// Effect returns the effect table entry for k.
func (k PowerKind) Effect() Effect {
	switch k {
	case PowerSpeed:
		return Effect{
			Lifetime: 200,
			Duration: 300,
			Apply: func(s *Snake) {
				s.SpeedModifier = fastModifier
				s.InvincibleTicks = 0
			},
			Expire: resetModifier(fastModifier),
		}
	case PowerSlow:
		return Effect{
			Lifetime: 300,
			Duration: 300,
			Apply: func(s *Snake) {
				s.SpeedModifier = slowModifier
			},
			Expire: resetModifier(slowModifier),
		}
	case PowerInvincible:
		return Effect{
			Lifetime: 180,
			Duration: 300,
			Apply: func(s *Snake) {
				s.InvincibleTicks = 300
			},
		}
	case PowerShrink:
		return Effect{
			Lifetime: 1,
			Apply:    (*Snake).Shrink,
		}
	case PowerMultiplier:
		return Effect{
			Lifetime: 400,
			Duration: 400,
			Apply:    func(*Snake) {},
		}
	default:
		panic("entity: unknown power kind")
	}
}

// resetModifier restores normal speed unless another power has since
// replaced the modifier.
func resetModifier(applied float64) func(s *Snake) {
	return func(s *Snake) {
		if s.SpeedModifier == applied {
			s.SpeedModifier = 1.0
		}
	}
}
