package enemy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wizbiz/wizardduel/internal/actor"
	"github.com/wizbiz/wizardduel/internal/deck"
	"github.com/wizbiz/wizardduel/internal/dice"
	"github.com/wizbiz/wizardduel/internal/effects"
	"github.com/wizbiz/wizardduel/internal/spells"
)

func withHand(t *testing.T, a *actor.Actor, ids ...string) *actor.Actor {
	t.Helper()
	reg := spells.DefaultRegistry()
	for _, id := range ids {
		s, ok := reg.GetSpell(id)
		require.True(t, ok, "spell %s", id)
		require.True(t, a.AddCard(deck.NewCard(s)))
	}
	return a
}

func newPolicy() *Policy {
	return NewPolicy(dice.New(1), &spells.Context{})
}

func TestChooseSpellNothingAffordable(t *testing.T) {
	self := withHand(t, actor.New("Vexor", false, 100, 2, 5), "meteor", "lightning")
	opp := actor.New("Wizard", true, 100, 0, 5)

	_, ok := newPolicy().ChooseSpell(self, opp)
	assert.False(t, ok)
}

func TestChooseSpellHealsWhenLow(t *testing.T) {
	self := withHand(t, actor.New("Vexor", false, 100, 10, 5), "lightning", "regeneration", "heal")
	self.SetHP(25)
	opp := actor.New("Wizard", true, 100, 0, 5)

	name, ok := newPolicy().ChooseSpell(self, opp)
	require.True(t, ok)
	assert.Equal(t, "Heal", name)
}

func TestChooseSpellRegenerationWhenOnlyHealer(t *testing.T) {
	self := withHand(t, actor.New("Vexor", false, 100, 10, 5), "lightning", "regeneration")
	self.SetHP(30)
	opp := actor.New("Wizard", true, 100, 0, 5)

	name, ok := newPolicy().ChooseSpell(self, opp)
	require.True(t, ok)
	assert.Equal(t, "Regeneration", name)
}

func TestChooseSpellLethal(t *testing.T) {
	self := withHand(t, actor.New("Vexor", false, 100, 10, 5), "curse", "lightning", "fireball", "ice_blast")
	opp := actor.New("Wizard", true, 100, 0, 5)
	opp.SetHP(12)

	name, ok := newPolicy().ChooseSpell(self, opp)
	require.True(t, ok)
	assert.Equal(t, "Lightning", name, "highest damage lethal candidate wins")
}

func TestChooseSpellLethalAccountsForShield(t *testing.T) {
	self := withHand(t, actor.New("Vexor", false, 100, 10, 5), "fireball", "poison_cloud")
	opp := actor.New("Wizard", true, 100, 0, 5)
	opp.SetHP(10)
	opp.ApplyEffect(effects.Shield(15))

	name, ok := newPolicy().ChooseSpell(self, opp)
	require.True(t, ok)
	// Neither is lethal through the shield, so the fresh-status rule applies
	// and Fireball's higher damage breaks the tie.
	assert.Equal(t, "Fireball", name)
}

func TestChooseSpellLethalAccountsForWeaken(t *testing.T) {
	self := withHand(t, actor.New("Vexor", false, 100, 10, 5), "drain")
	self.ApplyEffect(effects.Weaken(3))
	opp := actor.New("Wizard", true, 100, 0, 5)
	opp.SetHP(10)
	opp.ApplyEffect(effects.Burn(3))

	// Weakened Drain deals 9, short of lethal; still cast as the only option.
	name, ok := newPolicy().ChooseSpell(self, opp)
	require.True(t, ok)
	assert.Equal(t, "Drain", name)
}

func TestChooseSpellPrefersFreshStatus(t *testing.T) {
	self := withHand(t, actor.New("Vexor", false, 100, 10, 5), "lightning", "fireball", "poison_cloud")
	opp := actor.New("Wizard", true, 100, 0, 5)
	opp.ApplyEffect(effects.Burn(3))

	name, ok := newPolicy().ChooseSpell(self, opp)
	require.True(t, ok)
	assert.Equal(t, "Poison Cloud", name, "Burn is already on the player")
}

func TestChooseSpellHighestDamageThenCheapest(t *testing.T) {
	self := withHand(t, actor.New("Vexor", false, 100, 10, 5), "lightning", "drain")
	opp := actor.New("Wizard", true, 100, 0, 5)

	name, ok := newPolicy().ChooseSpell(self, opp)
	require.True(t, ok)
	assert.Equal(t, "Lightning", name)
}

func TestChooseSpellCastsWhenOnlyUtilityAffordable(t *testing.T) {
	self := withHand(t, actor.New("Vexor", false, 100, 10, 5), "heal", "shield")
	self.ApplyEffect(effects.Shield(15))
	opp := actor.New("Wizard", true, 100, 0, 5)

	name, ok := newPolicy().ChooseSpell(self, opp)
	require.True(t, ok, "affordable cards in hand must produce a spell")
	assert.Contains(t, []string{"Heal", "Shield"}, name)
}

func TestChooseSpellUsefulnessBreaksTies(t *testing.T) {
	self := withHand(t, actor.New("Vexor", false, 100, 10, 5), "heal", "shield")
	opp := actor.New("Wizard", true, 100, 0, 5)

	for seed := int64(1); seed < 10; seed++ {
		name, ok := NewPolicy(dice.New(seed), nil).ChooseSpell(self, opp)
		require.True(t, ok)
		assert.Equal(t, "Shield", name, "healing at full HP is wasted")
	}
}

func TestChooseSpellDoesNotMutate(t *testing.T) {
	self := withHand(t, actor.New("Vexor", false, 100, 10, 5), "meteor", "heal")
	opp := actor.New("Wizard", true, 100, 3, 5)
	before := []actor.Snapshot{self.Snapshot(), opp.Snapshot()}

	newPolicy().ChooseSpell(self, opp)
	assert.Equal(t, before, []actor.Snapshot{self.Snapshot(), opp.Snapshot()})
}

func TestChooseSpellDeterministicForSeed(t *testing.T) {
	build := func() (*actor.Actor, *actor.Actor) {
		self := withHand(t, actor.New("Vexor", false, 100, 10, 5), "poison_cloud", "curse")
		opp := actor.New("Wizard", true, 100, 0, 5)
		opp.ApplyEffect(effects.Poison(4))
		opp.ApplyEffect(effects.Weaken(3))
		return self, opp
	}
	for seed := int64(1); seed < 10; seed++ {
		s1, o1 := build()
		s2, o2 := build()
		a, _ := NewPolicy(dice.New(seed), nil).ChooseSpell(s1, o1)
		b, _ := NewPolicy(dice.New(seed), nil).ChooseSpell(s2, o2)
		assert.Equal(t, a, b)
	}
}
