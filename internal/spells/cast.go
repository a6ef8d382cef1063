package spells

import (
	"errors"
	"fmt"

	"github.com/wizbiz/wizardduel/internal/effects"
)

// DefaultWeakenPercent is how much Weaken cuts the afflicted caster's
// outgoing spell damage.
const DefaultWeakenPercent = 25

var (
	ErrNilActor     = errors.New("spell applied to a nil actor")
	ErrUnknownSpell = errors.New("unknown spell")
)

// Combatant is the actor surface a spell resolves against.
type Combatant interface {
	Name() string
	// TakeDamage runs the damage pipeline: shield absorption first, then HP.
	TakeDamage(amount int) (absorbed, dealt int)
	Heal(amount int) int
	ApplyEffect(e effects.Effect) bool
	HasEffect(k effects.Kind) bool
}

// Context carries battle-wide rules into a resolution.
type Context struct {
	WeakenPercent int
}

func (c *Context) weakenPercent() int {
	if c == nil || c.WeakenPercent <= 0 {
		return DefaultWeakenPercent
	}
	return c.WeakenPercent
}

// Outcome summarises what a resolution did.
type Outcome struct {
	Nominal  int // damage listed on the spell
	Reduced  int // damage removed by Weaken on the caster
	Absorbed int // damage soaked by the target's shield
	Dealt    int // damage that reached the target's HP
	Healed   int
	Applied  []effects.Effect // statuses put on the target
	Granted  []effects.Effect // statuses the caster gave itself
}

// EffectFunc resolves a spell from caster onto target.
type EffectFunc func(caster, target Combatant, ctx *Context) Outcome

// Cast resolves the spell. It does not touch mana or hands; the battle
// controller handles those.
func (s *Spell) Cast(caster, target Combatant, ctx *Context) (Outcome, error) {
	if caster == nil || target == nil {
		return Outcome{}, fmt.Errorf("cast %s: %w", s.Name, ErrNilActor)
	}
	fn := s.cast
	if fn == nil {
		fn = compile(s.Effects)
	}
	return fn(caster, target, ctx), nil
}

// OutgoingDamage applies the caster's Weaken reduction to nominal damage.
// Reduced damage is rounded down but never below 1.
func OutgoingDamage(caster Combatant, nominal int, ctx *Context) int {
	if nominal <= 0 || !caster.HasEffect(effects.KindWeaken) {
		return nominal
	}
	reduced := nominal * (100 - ctx.weakenPercent()) / 100
	return max(reduced, 1)
}

func compile(effs []SpellEffect) EffectFunc {
	steps := append([]SpellEffect(nil), effs...)
	return func(caster, target Combatant, ctx *Context) Outcome {
		var out Outcome
		for _, step := range steps {
			recipient := target
			if step.Target == TargetSelf {
				recipient = caster
			}
			switch step.Type {
			case EffectDamage:
				dmg := OutgoingDamage(caster, step.Amount, ctx)
				absorbed, dealt := recipient.TakeDamage(dmg)
				out.Nominal += step.Amount
				out.Reduced += step.Amount - dmg
				out.Absorbed += absorbed
				out.Dealt += dealt
			case EffectHeal:
				out.Healed += recipient.Heal(step.Amount)
			case EffectStatus:
				e, err := effects.New(step.Status, step.Amount)
				if err != nil {
					continue
				}
				recipient.ApplyEffect(e)
				if step.Target == TargetSelf {
					out.Granted = append(out.Granted, e)
				} else {
					out.Applied = append(out.Applied, e)
				}
			}
		}
		return out
	}
}
