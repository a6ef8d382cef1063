package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTarget struct {
	hp, maxHp, mana int
}

func (f *fakeTarget) TakeTickDamage(amount int) (int, int) {
	f.hp -= amount
	if f.hp < 0 {
		f.hp = 0
	}
	return 0, amount
}

func (f *fakeTarget) Heal(amount int) int {
	before := f.hp
	f.hp = min(f.hp+amount, f.maxHp)
	return f.hp - before
}

func (f *fakeTarget) DrainMana(amount int) int {
	lost := min(amount, f.mana)
	f.mana -= lost
	return lost
}

func TestTicks(t *testing.T) {
	tests := []struct {
		name     string
		effect   Effect
		start    fakeTarget
		wantHP   int
		wantMana int
		wantLeft int
	}{
		{"burn deals 3", Burn(3), fakeTarget{hp: 100, maxHp: 100, mana: 5}, 97, 5, 2},
		{"poison deals 4", Poison(4), fakeTarget{hp: 50, maxHp: 100}, 46, 0, 3},
		{"freeze drains 1 mana", Freeze(2), fakeTarget{hp: 80, maxHp: 100, mana: 3}, 80, 2, 1},
		{"freeze clamps mana at 0", Freeze(2), fakeTarget{hp: 80, maxHp: 100, mana: 0}, 80, 0, 1},
		{"stun drains 1 mana", Stun(1), fakeTarget{hp: 80, maxHp: 100, mana: 2}, 80, 1, 0},
		{"regeneration heals 5", Regeneration(4), fakeTarget{hp: 80, maxHp: 100}, 85, 0, 3},
		{"regeneration clamps at max", Regeneration(4), fakeTarget{hp: 98, maxHp: 100}, 100, 0, 3},
		{"weaken only counts down", Weaken(3), fakeTarget{hp: 70, maxHp: 100, mana: 4}, 70, 4, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := tt.start
			e := tt.effect
			res := e.OnTurnStart(&target)
			assert.Equal(t, tt.effect.Kind, res.Kind)
			assert.Equal(t, tt.wantHP, target.hp)
			assert.Equal(t, tt.wantMana, target.mana)
			assert.Equal(t, tt.wantLeft, e.TurnsLeft)
		})
	}
}

func TestShieldDoesNotTick(t *testing.T) {
	target := fakeTarget{hp: 100, maxHp: 100}
	s := Shield(15)
	s.OnTurnStart(&target)
	assert.Equal(t, 15, s.ShieldPoints)
	assert.False(t, s.IsExpired())
}

func TestShieldAbsorb(t *testing.T) {
	s := Shield(15)
	assert.Equal(t, 10, s.Absorb(10))
	assert.Equal(t, 5, s.ShieldPoints)
	assert.Equal(t, 5, s.Absorb(10))
	assert.True(t, s.IsExpired())
	assert.Equal(t, 0, s.Absorb(3))
}

func TestRefresh(t *testing.T) {
	b := Burn(3)
	b.TurnsLeft = 1
	b.Refresh(Burn(3))
	assert.Equal(t, 3, b.TurnsLeft)

	w := Weaken(3)
	w.Refresh(Weaken(1))
	assert.Equal(t, 1, w.TurnsLeft, "duration follows the second application")

	s := Shield(15)
	s.Absorb(12)
	s.Refresh(Shield(15))
	assert.Equal(t, 15, s.ShieldPoints)

	other := Burn(3)
	other.TurnsLeft = 1
	other.Refresh(Poison(4))
	assert.Equal(t, 1, other.TurnsLeft, "different kinds are ignored")
}

func TestNew(t *testing.T) {
	e, err := New(KindFreeze, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultFreezeTurns, e.TurnsLeft)

	e, err = New(KindBurn, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, e.TurnsLeft)

	_, err = New(KindShield, 0)
	assert.Error(t, err)

	_, err = New(Kind("haste"), 2)
	assert.Error(t, err)
}

func TestString(t *testing.T) {
	assert.Equal(t, "Burn(3)", Burn(3).String())
	assert.Equal(t, "Shield(15/15)", Shield(15).String())
}
