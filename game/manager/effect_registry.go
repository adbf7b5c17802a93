package manager

import "snake-duel/game/entity"

// ActiveEffect is a registered power effect and the ticks it has left.
type ActiveEffect struct {
	Kind      entity.PowerKind
	TicksLeft int
}

type effectEntry struct {
	ticksLeft int
	holder    *entity.Snake
}

// EffectRegistry tracks timed power effects for the round. There is one
// slot per kind regardless of which snake took it; taking a kind again
// restarts its timer.
type EffectRegistry struct {
	entries [entity.PowerKindCount]effectEntry
}

func NewEffectRegistry() *EffectRegistry {
	return &EffectRegistry{}
}

// Apply runs kind's effect on s and, for timed kinds, (re)starts its slot.
func (r *EffectRegistry) Apply(kind entity.PowerKind, s *entity.Snake) {
	effect := kind.Effect()
	effect.Apply(s)
	if effect.Duration > 0 {
		r.entries[kind] = effectEntry{ticksLeft: effect.Duration, holder: s}
	}
}

func (r *EffectRegistry) Active(kind entity.PowerKind) bool {
	return r.entries[kind].ticksLeft > 0
}

func (r *EffectRegistry) Remaining(kind entity.PowerKind) int {
	return r.entries[kind].ticksLeft
}

// ScoreMultiplier is 2 while a multiplier effect is running, else 1.
func (r *EffectRegistry) ScoreMultiplier() int {
	if r.Active(entity.PowerMultiplier) {
		return 2
	}
	return 1
}

// Tick counts every running effect down by one and expires those that
// reach zero, undoing their effect on the snake that took them.
func (r *EffectRegistry) Tick() {
	for kind := range r.entries {
		e := &r.entries[kind]
		if e.ticksLeft <= 0 {
			continue
		}
		e.ticksLeft--
		if e.ticksLeft > 0 {
			continue
		}
		if expire := entity.PowerKind(kind).Effect().Expire; expire != nil && e.holder != nil {
			expire(e.holder)
		}
		e.holder = nil
	}
}

// Snapshot lists running effects in kind order.
func (r *EffectRegistry) Snapshot() []ActiveEffect {
	var active []ActiveEffect
	for kind, e := range r.entries {
		if e.ticksLeft > 0 {
			active = append(active, ActiveEffect{Kind: entity.PowerKind(kind), TicksLeft: e.ticksLeft})
		}
	}
	return active
}
