package battle

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wizbiz/wizardduel/internal/actor"
	"github.com/wizbiz/wizardduel/internal/deck"
	"github.com/wizbiz/wizardduel/internal/effects"
)

func wizard(name string) ActorConfig {
	return ActorConfig{Name: name}
}

// newDuel starts a seeded battle and empties the deck so tests control
// every card in play.
func newDuel(t *testing.T) *Controller {
	t.Helper()
	c := New(Options{Seed: 7})
	require.NoError(t, c.NewBattle(wizard("Merlin"), wizard("Vexor"), 1, 0))
	c.deck = deck.FromCards()
	return c
}

// stage replaces a's hand with the named spells and sets its mana.
func stage(t *testing.T, c *Controller, a *actor.Actor, mana int, names ...string) {
	t.Helper()
	for a.HandSize() > 0 {
		a.RemoveCardAt(0)
	}
	for _, n := range names {
		s, ok := c.registry.GetSpellByName(n)
		require.True(t, ok, "spell %q", n)
		require.True(t, a.AddCard(deck.NewCard(s)))
	}
	a.SetMana(mana)
}

func effectOf(t *testing.T, a *actor.Actor, k effects.Kind) effects.Effect {
	t.Helper()
	e, ok := a.Effect(k)
	require.True(t, ok, "%s has no %s", a.Name(), k)
	return e
}

// recorder counts notifications.
type recorder struct {
	updates  int
	lines    []string
	onUpdate func()
}

func (r *recorder) Update() {
	r.updates++
	if r.onUpdate != nil {
		r.onUpdate()
	}
}

func (r *recorder) Log(line string) {
	r.lines = append(r.lines, line)
}

// winBattle makes the player finish the current battle with one Lightning.
func winBattle(t *testing.T, c *Controller) {
	t.Helper()
	c.deck = deck.FromCards()
	c.enemy.SetHP(1)
	stage(t, c, c.player, 5, "Lightning")
	require.NoError(t, c.CastSpell("Lightning"))
	require.Equal(t, StateGameOver, c.State())
	require.Equal(t, WinnerPlayer, c.Winner())
}
