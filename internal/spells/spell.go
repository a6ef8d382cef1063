// Package spells provides the duel's spell catalogue and the rules that
// resolve a spell from caster to target.
package spells

import "github.com/wizbiz/wizardduel/internal/effects"

// EffectType represents the type of effect a spell has.
type EffectType string

const (
	EffectDamage EffectType = "damage"
	EffectHeal   EffectType = "heal"
	EffectStatus EffectType = "status" // Applies a status effect (Amount = turns, or points for shield)
)

// TargetType represents who a spell effect lands on.
type TargetType string

const (
	TargetSelf  TargetType = "self"
	TargetEnemy TargetType = "enemy"
)

// SpellEffect represents a single effect that a spell applies.
type SpellEffect struct {
	Type   EffectType
	Target TargetType
	Amount int
	Status effects.Kind // Only for EffectStatus
}

// Spell is an immutable spell descriptor. Its effects resolve in order, so
// damage listed before a heal lands first.
type Spell struct {
	ID          string
	Name        string
	Description string
	ManaCost    int
	Effects     []SpellEffect

	cast EffectFunc
}

// NewSpell builds a spell whose resolution is the given effect list.
func NewSpell(id, name, description string, manaCost int, effs ...SpellEffect) *Spell {
	return &Spell{
		ID:          id,
		Name:        name,
		Description: description,
		ManaCost:    manaCost,
		Effects:     effs,
		cast:        compile(effs),
	}
}

// WithEffectFunc returns a copy of s resolved by fn instead of its effect list.
// The descriptive Effects stay as they are for the enemy policy.
func (s *Spell) WithEffectFunc(fn EffectFunc) *Spell {
	cp := *s
	cp.Effects = append([]SpellEffect(nil), s.Effects...)
	cp.cast = fn
	return &cp
}

// HasDamageEffect returns true if the spell deals damage.
func (s *Spell) HasDamageEffect() bool {
	for _, effect := range s.Effects {
		if effect.Type == EffectDamage {
			return true
		}
	}
	return false
}

// GetDamageAmount returns the total nominal damage the spell deals.
func (s *Spell) GetDamageAmount() int {
	total := 0
	for _, effect := range s.Effects {
		if effect.Type == EffectDamage {
			total += effect.Amount
		}
	}
	return total
}

// HealsCaster returns true if the spell restores the caster's HP, either
// instantly or over time.
func (s *Spell) HealsCaster() bool {
	for _, effect := range s.Effects {
		if effect.Target != TargetSelf {
			continue
		}
		if effect.Type == EffectHeal {
			return true
		}
		if effect.Type == EffectStatus && effect.Status == effects.KindRegeneration {
			return true
		}
	}
	return false
}

// GetHealAmount returns the instant self heal of the spell.
func (s *Spell) GetHealAmount() int {
	total := 0
	for _, effect := range s.Effects {
		if effect.Type == EffectHeal && effect.Target == TargetSelf {
			total += effect.Amount
		}
	}
	return total
}

// EnemyStatuses returns the status kinds the spell puts on its target.
func (s *Spell) EnemyStatuses() []effects.Kind {
	var kinds []effects.Kind
	for _, effect := range s.Effects {
		if effect.Type == EffectStatus && effect.Target == TargetEnemy {
			kinds = append(kinds, effect.Status)
		}
	}
	return kinds
}

// AppliesStatus returns true if the spell applies kind k to anyone.
func (s *Spell) AppliesStatus(k effects.Kind) bool {
	for _, effect := range s.Effects {
		if effect.Type == EffectStatus && effect.Status == k {
			return true
		}
	}
	return false
}

// IsSelfOnly returns true if the spell only affects the caster.
func (s *Spell) IsSelfOnly() bool {
	for _, effect := range s.Effects {
		if effect.Target != TargetSelf {
			return false
		}
	}
	return true
}
