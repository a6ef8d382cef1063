// Package effects implements the status effects attached to duelists:
// damage and heal over time, mana disruption, weaken and shields.
package effects

import "fmt"

// Kind identifies a status effect. An actor carries at most one effect per kind.
type Kind string

const (
	KindBurn         Kind = "burn"
	KindFreeze       Kind = "freeze"
	KindPoison       Kind = "poison"
	KindRegeneration Kind = "regeneration"
	KindStun         Kind = "stun"
	KindWeaken       Kind = "weaken"
	KindShield       Kind = "shield"
)

// Per-tick potencies.
const (
	BurnDamage     = 3
	PoisonDamage   = 4
	RegenHeal      = 5
	FreezeManaLoss = 1
	StunManaLoss   = 1
)

// Default durations in turns for effects whose spells do not name one.
const (
	DefaultFreezeTurns = 2
	DefaultStunTurns   = 1
	DefaultRegenTurns  = 4
	DefaultWeakenTurns = 3
)

// Target is the afflicted actor as seen by a tick.
type Target interface {
	// TakeTickDamage applies damage through shields but never through Weaken.
	TakeTickDamage(amount int) (absorbed, dealt int)
	Heal(amount int) int
	DrainMana(amount int) int
}

// Effect is a single status effect instance. Duration based kinds use
// TurnsLeft; Shield uses ShieldPoints and never ticks.
type Effect struct {
	Kind            Kind
	TurnsLeft       int
	ShieldPoints    int
	MaxShieldPoints int
}

// TickResult describes what one turn-start tick did.
type TickResult struct {
	Kind     Kind
	Absorbed int // held off by the bearer's shield
	Damage   int
	Healed   int
	ManaLost int
}

// Burn creates a Burn effect dealing BurnDamage per turn.
func Burn(turns int) Effect { return Effect{Kind: KindBurn, TurnsLeft: turns} }

// Poison creates a Poison effect dealing PoisonDamage per turn.
func Poison(turns int) Effect { return Effect{Kind: KindPoison, TurnsLeft: turns} }

// Freeze creates a Freeze effect draining FreezeManaLoss per turn.
func Freeze(turns int) Effect { return Effect{Kind: KindFreeze, TurnsLeft: turns} }

// Stun creates a Stun effect draining StunManaLoss on the next turn start.
func Stun(turns int) Effect { return Effect{Kind: KindStun, TurnsLeft: turns} }

// Regeneration creates a heal over time effect.
func Regeneration(turns int) Effect { return Effect{Kind: KindRegeneration, TurnsLeft: turns} }

// Weaken creates a Weaken effect. It only marks the actor; the spell damage
// computation reads it.
func Weaken(turns int) Effect { return Effect{Kind: KindWeaken, TurnsLeft: turns} }

// Shield creates an absorb pool of the given size.
func Shield(points int) Effect {
	return Effect{Kind: KindShield, ShieldPoints: points, MaxShieldPoints: points}
}

// New builds an effect of kind k with the given magnitude: turns for
// duration kinds, points for Shield. A non-positive magnitude selects the
// kind's default duration.
func New(k Kind, magnitude int) (Effect, error) {
	switch k {
	case KindBurn:
		return Burn(orDefault(magnitude, 3)), nil
	case KindPoison:
		return Poison(orDefault(magnitude, 4)), nil
	case KindFreeze:
		return Freeze(orDefault(magnitude, DefaultFreezeTurns)), nil
	case KindStun:
		return Stun(orDefault(magnitude, DefaultStunTurns)), nil
	case KindRegeneration:
		return Regeneration(orDefault(magnitude, DefaultRegenTurns)), nil
	case KindWeaken:
		return Weaken(orDefault(magnitude, DefaultWeakenTurns)), nil
	case KindShield:
		if magnitude <= 0 {
			return Effect{}, fmt.Errorf("shield needs positive points, got %d", magnitude)
		}
		return Shield(magnitude), nil
	default:
		return Effect{}, fmt.Errorf("unknown status effect %q", k)
	}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

type tickFunc func(e *Effect, t Target) TickResult

var ticks = map[Kind]tickFunc{
	KindBurn: func(e *Effect, t Target) TickResult {
		absorbed, dealt := t.TakeTickDamage(BurnDamage)
		return TickResult{Absorbed: absorbed, Damage: dealt}
	},
	KindPoison: func(e *Effect, t Target) TickResult {
		absorbed, dealt := t.TakeTickDamage(PoisonDamage)
		return TickResult{Absorbed: absorbed, Damage: dealt}
	},
	KindFreeze: func(e *Effect, t Target) TickResult {
		return TickResult{ManaLost: t.DrainMana(FreezeManaLoss)}
	},
	KindStun: func(e *Effect, t Target) TickResult {
		return TickResult{ManaLost: t.DrainMana(StunManaLoss)}
	},
	KindRegeneration: func(e *Effect, t Target) TickResult {
		return TickResult{Healed: t.Heal(RegenHeal)}
	},
	KindWeaken: func(e *Effect, t Target) TickResult {
		return TickResult{}
	},
}

// OnTurnStart ticks the effect against its bearer and counts down its
// duration. Shields do not tick.
func (e *Effect) OnTurnStart(t Target) TickResult {
	fn, ok := ticks[e.Kind]
	if !ok {
		return TickResult{Kind: e.Kind}
	}
	res := fn(e, t)
	res.Kind = e.Kind
	e.TurnsLeft--
	return res
}

// IsExpired reports whether the effect should be pruned.
func (e *Effect) IsExpired() bool {
	if e.Kind == KindShield {
		return e.ShieldPoints <= 0
	}
	return e.TurnsLeft <= 0
}

// Refresh re-applies the same kind: the duration (or, for Shield, the pool)
// is reset to the new application's value rather than stacked.
func (e *Effect) Refresh(other Effect) {
	if other.Kind != e.Kind {
		return
	}
	if e.Kind == KindShield {
		e.MaxShieldPoints = other.MaxShieldPoints
		e.ShieldPoints = other.MaxShieldPoints
		return
	}
	e.TurnsLeft = other.TurnsLeft
}

// Absorb soaks up to amount damage into a shield and returns how much it took.
func (e *Effect) Absorb(amount int) int {
	if e.Kind != KindShield || e.ShieldPoints <= 0 || amount <= 0 {
		return 0
	}
	absorbed := min(amount, e.ShieldPoints)
	e.ShieldPoints -= absorbed
	return absorbed
}

// Title returns the display name of a kind, e.g. "Burn".
func (k Kind) Title() string {
	switch k {
	case KindBurn:
		return "Burn"
	case KindFreeze:
		return "Freeze"
	case KindPoison:
		return "Poison"
	case KindRegeneration:
		return "Regeneration"
	case KindStun:
		return "Stun"
	case KindWeaken:
		return "Weaken"
	case KindShield:
		return "Shield"
	default:
		return string(k)
	}
}

func (e Effect) String() string {
	if e.Kind == KindShield {
		return fmt.Sprintf("Shield(%d/%d)", e.ShieldPoints, e.MaxShieldPoints)
	}
	return fmt.Sprintf("%s(%d)", e.Kind.Title(), e.TurnsLeft)
}
