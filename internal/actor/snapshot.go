package actor

import "github.com/wizbiz/wizardduel/internal/effects"

// CardView is a read-only view of a card in hand.
type CardView struct {
	Name     string
	ManaCost int
}

// Snapshot is a point-in-time copy of an actor for observers.
type Snapshot struct {
	Name     string
	IsPlayer bool
	HP       int
	MaxHP    int
	Mana     int
	Shield   int
	Hand     []CardView
	Effects  []effects.Effect
}

// Snapshot copies the actor's observable state.
func (a *Actor) Snapshot() Snapshot {
	hand := make([]CardView, 0, len(a.hand))
	for _, c := range a.hand {
		hand = append(hand, CardView{Name: c.Name, ManaCost: c.ManaCost()})
	}
	return Snapshot{
		Name:     a.name,
		IsPlayer: a.isPlayer,
		HP:       a.hp,
		MaxHP:    a.maxHp,
		Mana:     a.mana,
		Shield:   a.ShieldPoints(),
		Hand:     hand,
		Effects:  a.Effects(),
	}
}
