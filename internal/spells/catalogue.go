package spells

import "github.com/wizbiz/wizardduel/internal/effects"

func damage(n int) SpellEffect {
	return SpellEffect{Type: EffectDamage, Target: TargetEnemy, Amount: n}
}

func healSelf(n int) SpellEffect {
	return SpellEffect{Type: EffectHeal, Target: TargetSelf, Amount: n}
}

func inflict(k effects.Kind, n int) SpellEffect {
	return SpellEffect{Type: EffectStatus, Target: TargetEnemy, Status: k, Amount: n}
}

func grant(k effects.Kind, n int) SpellEffect {
	return SpellEffect{Type: EffectStatus, Target: TargetSelf, Status: k, Amount: n}
}

// DefaultSpells returns the built-in catalogue in display order.
func DefaultSpells() []*Spell {
	return []*Spell{
		NewSpell("fireball", "Fireball", "Deal 10 damage and inflict Burn. Burn: 3 damage per turn for 3 turns.", 3,
			damage(10), inflict(effects.KindBurn, 3)),
		NewSpell("ice_blast", "Ice Blast", "Deal 15 damage and inflict Freeze. Freeze: reduces enemy mana by 1 per turn for 2 turns.", 4,
			damage(15), inflict(effects.KindFreeze, 2)),
		NewSpell("lightning", "Lightning", "Deal 25 pure damage. No status effects.", 5,
			damage(25)),
		NewSpell("heal", "Heal", "Restore 20 HP instantly.", 3,
			healSelf(20)),
		NewSpell("poison_cloud", "Poison Cloud", "Deal 5 damage and inflict Poison. Poison: 4 damage per turn for 4 turns.", 3,
			damage(5), inflict(effects.KindPoison, 4)),
		NewSpell("drain", "Drain", "Deal 12 damage and heal yourself for 12 HP.", 4,
			damage(12), healSelf(12)),
		NewSpell("shield", "Shield", "Absorb up to 15 damage. Lasts until depleted.", 3,
			grant(effects.KindShield, 15)),
		NewSpell("meteor", "Meteor", "Deal 35 massive damage and inflict Burn. Burn: 3 damage per turn for 2 turns.", 7,
			damage(35), inflict(effects.KindBurn, 2)),
		NewSpell("regeneration", "Regeneration", "Heal 5 HP per turn for 4 turns.", 4,
			grant(effects.KindRegeneration, 4)),
		NewSpell("thunderbolt", "Thunderbolt", "Deal 18 damage and inflict Stun. Stun: disrupts enemy mana for 1 turn.", 5,
			damage(18), inflict(effects.KindStun, 1)),
		NewSpell("curse", "Curse", "Deal 8 damage and inflict Weaken. Weaken: cuts the target's spell damage for 3 turns.", 3,
			damage(8), inflict(effects.KindWeaken, 3)),
	}
}

// DefaultRegistry returns a registry holding the built-in catalogue.
func DefaultRegistry() *SpellRegistry {
	r := NewSpellRegistry()
	for _, s := range DefaultSpells() {
		r.Register(s)
	}
	return r
}
