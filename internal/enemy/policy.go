// Package enemy implements the opponent's spell selection.
package enemy

import (
	"github.com/wizbiz/wizardduel/internal/actor"
	"github.com/wizbiz/wizardduel/internal/deck"
	"github.com/wizbiz/wizardduel/internal/dice"
	"github.com/wizbiz/wizardduel/internal/effects"
	"github.com/wizbiz/wizardduel/internal/spells"
)

// LowHealthThreshold is the HP at or below which the policy heals first.
const LowHealthThreshold = 30

// Policy picks at most one spell per turn. Given the same seed and the same
// actor states it always picks the same spell; it never mutates the actors.
type Policy struct {
	src *dice.Source
	ctx *spells.Context
}

// NewPolicy creates a policy. src breaks ties between equally ranked spells.
func NewPolicy(src *dice.Source, ctx *spells.Context) *Policy {
	return &Policy{src: src, ctx: ctx}
}

type candidate struct {
	card      deck.Card
	damage    int // outgoing damage after the caster's weaken
	lethal    int // expected HP loss after the opponent's shield
	heal      int
	newStatus bool
	useful    bool // breaks ties only; a wasted card is still castable
}

// ChooseSpell returns the name of the card self should cast against
// opponent, or false to pass.
func (p *Policy) ChooseSpell(self, opponent *actor.Actor) (string, bool) {
	cands := p.candidates(self, opponent)
	if len(cands) == 0 {
		return "", false
	}

	if self.HP() <= LowHealthThreshold {
		var healers []candidate
		for _, c := range cands {
			if c.card.Spell.HealsCaster() {
				healers = append(healers, c)
			}
		}
		if len(healers) > 0 {
			return p.best(healers, func(a, b candidate) int {
				return compare(a.heal, b.heal, b.card.ManaCost(), a.card.ManaCost())
			}), true
		}
	}

	var lethal []candidate
	for _, c := range cands {
		if c.lethal > 0 && c.lethal >= opponent.HP() {
			lethal = append(lethal, c)
		}
	}
	if len(lethal) > 0 {
		return p.best(lethal, func(a, b candidate) int {
			return compare(a.lethal, b.lethal, b.card.ManaCost(), a.card.ManaCost())
		}), true
	}

	return p.best(cands, func(a, b candidate) int {
		return compare(boolInt(a.newStatus), boolInt(b.newStatus),
			a.damage, b.damage, b.card.ManaCost(), a.card.ManaCost(),
			boolInt(a.useful), boolInt(b.useful))
	}), true
}

func (p *Policy) candidates(self, opponent *actor.Actor) []candidate {
	seen := make(map[string]bool)
	var out []candidate
	for _, c := range self.Hand() {
		if c.ManaCost() > self.Mana() || seen[c.Name] {
			continue
		}
		seen[c.Name] = true

		s := c.Spell
		dmg := spells.OutgoingDamage(self, s.GetDamageAmount(), p.ctx)
		fresh := false
		for _, k := range s.EnemyStatuses() {
			if !opponent.HasEffect(k) {
				fresh = true
				break
			}
		}
		out = append(out, candidate{
			card:      c,
			damage:    dmg,
			lethal:    max(dmg-opponent.ShieldPoints(), 0),
			heal:      min(s.GetHealAmount(), self.MaxHP()-self.HP()),
			newStatus: fresh,
			useful:    !wasted(s, self),
		})
	}
	return out
}

// wasted reports whether a spell would do nothing useful right now.
func wasted(s *spells.Spell, self *actor.Actor) bool {
	if s.HasDamageEffect() || len(s.EnemyStatuses()) > 0 {
		return false
	}
	if s.GetHealAmount() > 0 && self.HP() < self.MaxHP() {
		return false
	}
	if s.AppliesStatus(effects.KindShield) && !self.HasEffect(effects.KindShield) {
		return false
	}
	if s.AppliesStatus(effects.KindRegeneration) && !self.HasEffect(effects.KindRegeneration) && self.HP() < self.MaxHP() {
		return false
	}
	return true
}

// best returns the highest ranked candidate; cmp > 0 means a ranks above b.
// Exact ties are broken with the policy's random source.
func (p *Policy) best(cs []candidate, cmp func(a, b candidate) int) string {
	top := []candidate{cs[0]}
	for _, c := range cs[1:] {
		switch r := cmp(c, top[0]); {
		case r > 0:
			top = []candidate{c}
		case r == 0:
			top = append(top, c)
		}
	}
	if len(top) == 1 {
		return top[0].card.Name
	}
	return top[p.src.Intn(len(top))].card.Name
}

// compare walks (a, b) pairs and returns the sign of the first difference.
func compare(pairs ...int) int {
	for i := 0; i+1 < len(pairs); i += 2 {
		switch {
		case pairs[i] > pairs[i+1]:
			return 1
		case pairs[i] < pairs[i+1]:
			return -1
		}
	}
	return 0
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
