// Package deck builds the shuffled draw source both duelists share.
package deck

import (
	"errors"
	"fmt"

	"github.com/wizbiz/wizardduel/internal/dice"
	"github.com/wizbiz/wizardduel/internal/spells"
)

// DefaultCopies is how many copies of each spell the default profile holds.
const DefaultCopies = 3

var ErrEmptyProfile = errors.New("deck profile has no cards")

// Card binds a spell to its name; two cards with the same name are the same spell.
type Card struct {
	Name  string
	Spell *spells.Spell
}

// NewCard wraps a spell.
func NewCard(s *spells.Spell) Card {
	return Card{Name: s.Name, Spell: s}
}

// ManaCost returns the cost of the card's spell.
func (c Card) ManaCost() int {
	return c.Spell.ManaCost
}

// Profile is the deck multiset: spell ID to number of copies.
type Profile map[string]int

// DefaultProfile holds DefaultCopies of every spell in the registry.
func DefaultProfile(reg *spells.SpellRegistry) Profile {
	p := make(Profile, reg.Len())
	for _, s := range reg.GetAllSpells() {
		p[s.ID] = DefaultCopies
	}
	return p
}

// Size returns the total number of cards the profile yields.
func (p Profile) Size() int {
	total := 0
	for _, n := range p {
		if n > 0 {
			total += n
		}
	}
	return total
}

// Deck is a forward-only cursor over a sequence shuffled once at creation.
// Drawn cards never come back.
type Deck struct {
	cards  []Card
	cursor int
}

// New expands profile against the registry and shuffles it with src.
func New(reg *spells.SpellRegistry, profile Profile, src *dice.Source) (*Deck, error) {
	for id := range profile {
		if _, ok := reg.GetSpell(id); !ok {
			return nil, fmt.Errorf("deck profile entry %s: %w", id, spells.ErrUnknownSpell)
		}
	}
	if profile.Size() == 0 {
		return nil, ErrEmptyProfile
	}

	cards := make([]Card, 0, profile.Size())
	// Registry order keeps the pre-shuffle sequence stable for a given seed.
	for _, s := range reg.GetAllSpells() {
		for i := 0; i < profile[s.ID]; i++ {
			cards = append(cards, NewCard(s))
		}
	}

	src.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &Deck{cards: cards}, nil
}

// FromCards builds an unshuffled deck that yields cards in the given order.
func FromCards(cards ...Card) *Deck {
	return &Deck{cards: append([]Card(nil), cards...)}
}

// Draw yields the next card, or false once the deck is exhausted.
func (d *Deck) Draw() (Card, bool) {
	if d.cursor >= len(d.cards) {
		return Card{}, false
	}
	c := d.cards[d.cursor]
	d.cursor++
	return c, true
}

// Remaining returns how many cards are left to draw.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.cursor
}

// Size returns the deck's total size.
func (d *Deck) Size() int {
	return len(d.cards)
}
