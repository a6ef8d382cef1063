package actor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wizbiz/wizardduel/internal/deck"
	"github.com/wizbiz/wizardduel/internal/effects"
	"github.com/wizbiz/wizardduel/internal/spells"
)

func card(t *testing.T, id string) deck.Card {
	t.Helper()
	s, ok := spells.DefaultRegistry().GetSpell(id)
	require.True(t, ok, "spell %s", id)
	return deck.NewCard(s)
}

func TestNewDefaults(t *testing.T) {
	a := New("Wizard", true, 0, -3, 0)
	assert.Equal(t, DefaultMaxHP, a.MaxHP())
	assert.Equal(t, DefaultMaxHP, a.HP())
	assert.Equal(t, 0, a.Mana())
	assert.Equal(t, DefaultHandLimit, a.HandLimit())
	assert.Equal(t, "Player", a.Role())
	assert.Equal(t, "Enemy", New("Vexor", false, 100, 0, 5).Role())
}

func TestTakeDamageClampsAtZero(t *testing.T) {
	a := New("Vexor", false, 100, 0, 5)
	a.SetHP(10)
	absorbed, dealt := a.TakeDamage(25)
	assert.Equal(t, 0, absorbed)
	assert.Equal(t, 25, dealt)
	assert.Equal(t, 0, a.HP())
	assert.False(t, a.IsAlive())
}

func TestTakeDamageThroughShield(t *testing.T) {
	a := New("Vexor", false, 100, 0, 5)
	a.ApplyEffect(effects.Shield(15))

	absorbed, dealt := a.TakeDamage(10)
	assert.Equal(t, 10, absorbed)
	assert.Equal(t, 0, dealt)
	assert.Equal(t, 100, a.HP())
	assert.Equal(t, 5, a.ShieldPoints())

	absorbed, dealt = a.TakeDamage(10)
	assert.Equal(t, 5, absorbed)
	assert.Equal(t, 5, dealt)
	assert.Equal(t, 95, a.HP())
	assert.False(t, a.HasEffect(effects.KindShield))

	assert.Equal(t, []effects.Kind{effects.KindShield}, a.PruneEffects())
}

func TestHealClampsAtMax(t *testing.T) {
	a := New("Wizard", true, 100, 0, 5)
	a.SetHP(90)
	assert.Equal(t, 10, a.Heal(20))
	assert.Equal(t, 100, a.HP())
	assert.Equal(t, 0, a.Heal(-5))
}

func TestMana(t *testing.T) {
	a := New("Wizard", true, 100, 3, 5)
	assert.False(t, a.SpendMana(4))
	assert.True(t, a.SpendMana(3))
	assert.Equal(t, 0, a.Mana())
	assert.Equal(t, 0, a.DrainMana(1))
	a.GainMana(2)
	assert.Equal(t, 1, a.DrainMana(1))
	assert.Equal(t, 1, a.Mana())
	a.SetMana(-4)
	assert.Equal(t, 0, a.Mana())
}

func TestScaleMaxHP(t *testing.T) {
	a := New("Vexor", false, 100, 0, 5)
	a.SetHP(40)
	a.ScaleMaxHP(40)
	assert.Equal(t, 140, a.MaxHP())
	assert.Equal(t, 140, a.HP())
}

func TestHandLimitAndLookup(t *testing.T) {
	a := New("Wizard", true, 100, 0, 2)
	assert.True(t, a.AddCard(card(t, "fireball")))
	assert.True(t, a.AddCard(card(t, "heal")))
	assert.False(t, a.AddCard(card(t, "curse")))
	assert.Equal(t, 2, a.HandSize())

	c, idx, ok := a.FindCard("heal")
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, "Heal", c.Name)

	removed := a.RemoveCardAt(idx)
	assert.Equal(t, "Heal", removed.Name)
	assert.Equal(t, 1, a.HandSize())

	_, _, ok = a.FindCard("Meteor")
	assert.False(t, ok)
}

func TestDrawFromStopsAtLimitAndEmptyDeck(t *testing.T) {
	d := deck.FromCards(card(t, "fireball"), card(t, "heal"), card(t, "curse"))

	a := New("Wizard", true, 100, 0, 2)
	assert.Equal(t, 2, a.DrawFrom(d, 5))
	assert.Equal(t, 1, d.Remaining(), "full hand must not consume a card")

	b := New("Vexor", false, 100, 0, 5)
	assert.Equal(t, 1, b.DrawFrom(d, 5))
	assert.Equal(t, 0, b.DrawFrom(d, 1))
}

func TestTickEffectsThroughActor(t *testing.T) {
	a := New("Vexor", false, 100, 2, 5)
	a.ApplyEffect(effects.Burn(3))
	a.ApplyEffect(effects.Freeze(2))

	results := a.TickEffects()
	require.Len(t, results, 2)
	assert.Equal(t, 97, a.HP())
	assert.Equal(t, 1, a.Mana())

	burn, ok := a.Effect(effects.KindBurn)
	require.True(t, ok)
	assert.Equal(t, 2, burn.TurnsLeft)
}

func TestTickDamageHitsShieldFirst(t *testing.T) {
	a := New("Vexor", false, 100, 0, 5)
	a.ApplyEffect(effects.Shield(15))
	a.ApplyEffect(effects.Poison(2))

	results := a.TickEffects()
	require.Len(t, results, 2)
	assert.Equal(t, effects.KindPoison, results[1].Kind)
	assert.Equal(t, 4, results[1].Absorbed)
	assert.Equal(t, 0, results[1].Damage)
	assert.Equal(t, 100, a.HP())
	assert.Equal(t, 11, a.ShieldPoints())
}

func TestSnapshot(t *testing.T) {
	a := New("Wizard", true, 100, 4, 5)
	a.AddCard(card(t, "meteor"))
	a.ApplyEffect(effects.Shield(15))

	snap := a.Snapshot()
	assert.Equal(t, "Wizard", snap.Name)
	assert.True(t, snap.IsPlayer)
	assert.Equal(t, 15, snap.Shield)
	require.Len(t, snap.Hand, 1)
	assert.Equal(t, CardView{Name: "Meteor", ManaCost: 7}, snap.Hand[0])
	require.Len(t, snap.Effects, 1)
}
