// Package actor holds the state shared by both duelists: health, mana, the
// hand of spell cards and active status effects.
package actor

import (
	"strings"

	"github.com/wizbiz/wizardduel/internal/deck"
	"github.com/wizbiz/wizardduel/internal/effects"
)

const (
	DefaultMaxHP     = 100
	DefaultHandLimit = 5
)

// Actor is a duel participant. All mutation goes through its methods so the
// HP, mana and hand bounds always hold.
type Actor struct {
	name      string
	isPlayer  bool
	hp        int
	maxHp     int
	mana      int
	handLimit int
	hand      []deck.Card
	effects   *effects.Set
}

// New creates an actor at full health. maxHp <= 0 selects DefaultMaxHP and
// handLimit <= 0 selects DefaultHandLimit.
func New(name string, isPlayer bool, maxHp, mana, handLimit int) *Actor {
	if maxHp <= 0 {
		maxHp = DefaultMaxHP
	}
	if handLimit <= 0 {
		handLimit = DefaultHandLimit
	}
	return &Actor{
		name:      name,
		isPlayer:  isPlayer,
		hp:        maxHp,
		maxHp:     maxHp,
		mana:      max(mana, 0),
		handLimit: handLimit,
		hand:      make([]deck.Card, 0, handLimit),
		effects:   effects.NewSet(),
	}
}

// Name returns the actor's display name.
func (a *Actor) Name() string {
	return a.name
}

// Role returns "Player" or "Enemy", the prefix used in battle log lines.
func (a *Actor) Role() string {
	if a.isPlayer {
		return "Player"
	}
	return "Enemy"
}

func (a *Actor) IsPlayer() bool { return a.isPlayer }
func (a *Actor) HP() int        { return a.hp }
func (a *Actor) MaxHP() int     { return a.maxHp }
func (a *Actor) Mana() int      { return a.mana }
func (a *Actor) HandLimit() int { return a.handLimit }

// IsAlive returns true while HP is above zero.
func (a *Actor) IsAlive() bool {
	return a.hp > 0
}

// ScaleMaxHP raises max HP by bonus and restores HP to the new maximum.
func (a *Actor) ScaleMaxHP(bonus int) {
	a.maxHp = max(a.maxHp+bonus, 1)
	a.hp = a.maxHp
}

// SetHP sets HP, clamped to [0, maxHp].
func (a *Actor) SetHP(hp int) {
	a.hp = min(max(hp, 0), a.maxHp)
}

// TakeDamage runs incoming spell damage through the shield and then HP.
// dealt is the part that reached HP before the zero clamp.
func (a *Actor) TakeDamage(amount int) (absorbed, dealt int) {
	if amount <= 0 {
		return 0, 0
	}
	if shield, ok := a.effects.Get(effects.KindShield); ok {
		absorbed = shield.Absorb(amount)
	}
	dealt = amount - absorbed
	a.hp = max(a.hp-dealt, 0)
	return absorbed, dealt
}

// TakeTickDamage applies status effect damage. Shields still absorb it.
func (a *Actor) TakeTickDamage(amount int) (absorbed, dealt int) {
	return a.TakeDamage(amount)
}

// Heal restores HP capped at max and returns the amount actually healed.
func (a *Actor) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	old := a.hp
	a.hp = min(a.hp+amount, a.maxHp)
	return a.hp - old
}

// GainMana adds mana. There is no upper bound.
func (a *Actor) GainMana(amount int) {
	if amount > 0 {
		a.mana += amount
	}
}

// DrainMana removes up to amount mana and returns how much was lost.
func (a *Actor) DrainMana(amount int) int {
	lost := min(max(amount, 0), a.mana)
	a.mana -= lost
	return lost
}

// SpendMana deducts amount if affordable.
func (a *Actor) SpendMana(amount int) bool {
	if amount < 0 || a.mana < amount {
		return false
	}
	a.mana -= amount
	return true
}

// SetMana sets mana, clamped at zero.
func (a *Actor) SetMana(mana int) {
	a.mana = max(mana, 0)
}

// ApplyEffect adds e or refreshes the existing effect of the same kind.
func (a *Actor) ApplyEffect(e effects.Effect) bool {
	return a.effects.Apply(e)
}

// HasEffect reports whether an unexpired effect of kind k is active.
func (a *Actor) HasEffect(k effects.Kind) bool {
	return a.effects.Has(k)
}

// Effect returns a copy of the active effect of kind k.
func (a *Actor) Effect(k effects.Kind) (effects.Effect, bool) {
	e, ok := a.effects.Get(k)
	if !ok {
		return effects.Effect{}, false
	}
	return *e, true
}

// Effects returns copies of the active effects in application order.
func (a *Actor) Effects() []effects.Effect {
	return a.effects.List()
}

// ShieldPoints returns the remaining absorb pool, 0 if unshielded.
func (a *Actor) ShieldPoints() int {
	if e, ok := a.effects.Get(effects.KindShield); ok {
		return max(e.ShieldPoints, 0)
	}
	return 0
}

// TickEffects runs every effect's turn-start tick in application order.
// Expired effects are left for PruneEffects.
func (a *Actor) TickEffects() []effects.TickResult {
	return a.effects.Tick(a)
}

// PruneEffects removes expired effects and returns their kinds.
func (a *Actor) PruneEffects() []effects.Kind {
	return a.effects.Prune()
}

// Hand returns a copy of the hand.
func (a *Actor) Hand() []deck.Card {
	return append([]deck.Card(nil), a.hand...)
}

// HandSize returns the number of cards held.
func (a *Actor) HandSize() int {
	return len(a.hand)
}

// HandFull reports whether another card would exceed the hand limit.
func (a *Actor) HandFull() bool {
	return len(a.hand) >= a.handLimit
}

// AddCard puts c in the hand unless it is full.
func (a *Actor) AddCard(c deck.Card) bool {
	if a.HandFull() {
		return false
	}
	a.hand = append(a.hand, c)
	return true
}

// FindCard returns the index of the first card named name (case-insensitive).
func (a *Actor) FindCard(name string) (deck.Card, int, bool) {
	for i, c := range a.hand {
		if strings.EqualFold(c.Name, name) {
			return c, i, true
		}
	}
	return deck.Card{}, -1, false
}

// RemoveCardAt removes and returns the card at index i.
func (a *Actor) RemoveCardAt(i int) deck.Card {
	c := a.hand[i]
	a.hand = append(a.hand[:i], a.hand[i+1:]...)
	return c
}

// DrawFrom draws up to n cards from d, stopping when the hand is full or the
// deck runs dry. Returns the number of cards drawn.
func (a *Actor) DrawFrom(d *deck.Deck, n int) int {
	drawn := 0
	for drawn < n && !a.HandFull() {
		c, ok := d.Draw()
		if !ok {
			break
		}
		a.hand = append(a.hand, c)
		drawn++
	}
	return drawn
}
