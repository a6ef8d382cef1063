package battle

import (
	"fmt"

	"github.com/wizbiz/wizardduel/internal/actor"
	"github.com/wizbiz/wizardduel/internal/deck"
	"github.com/wizbiz/wizardduel/internal/spells"
)

// ActorConfig describes one duelist. Appearance is carried for the
// presentation layer and never read by the battle.
type ActorConfig struct {
	Name         string
	MaxHP        int
	StartingMana int
	DeckProfile  deck.Profile
	Appearance   map[string]string
}

func (ac ActorConfig) validate(role string) error {
	if ac.Name == "" {
		return fmt.Errorf("%w: %s name is required", ErrInvalidConfig, role)
	}
	if ac.MaxHP < 0 {
		return fmt.Errorf("%w: %s max HP %d is negative", ErrInvalidConfig, role, ac.MaxHP)
	}
	if ac.StartingMana < 0 {
		return fmt.Errorf("%w: %s starting mana %d is negative", ErrInvalidConfig, role, ac.StartingMana)
	}
	return nil
}

// Rules are the fixed numbers of a duel.
type Rules struct {
	HandLimit     int
	ManaPerTurn   int
	InitialDraw   int
	WeakenPercent int
}

// DefaultRules returns the standard duel rules.
func DefaultRules() Rules {
	return Rules{
		HandLimit:     actor.DefaultHandLimit,
		ManaPerTurn:   2,
		InitialDraw:   5,
		WeakenPercent: spells.DefaultWeakenPercent,
	}
}

// Scaling controls how difficulty and win streak modify a new battle.
type Scaling struct {
	HPPerDifficulty   int
	ManaPerDifficulty int
	ManaPerStreakWin  int
}

// DefaultScaling returns +20 HP and +2 mana per difficulty level above the
// first, and +1 player mana per consecutive win.
func DefaultScaling() Scaling {
	return Scaling{
		HPPerDifficulty:   20,
		ManaPerDifficulty: 2,
		ManaPerStreakWin:  1,
	}
}

// Options configure a Controller. Zero values select the defaults.
type Options struct {
	Rules    Rules
	Scaling  Scaling
	Registry *spells.SpellRegistry
	// Seed drives deck shuffles and enemy tiebreaks. Zero means time-based.
	Seed int64
}

func (o Options) withDefaults() Options {
	if o.Rules == (Rules{}) {
		o.Rules = DefaultRules()
	}
	if o.Scaling == (Scaling{}) {
		o.Scaling = DefaultScaling()
	}
	if o.Registry == nil {
		o.Registry = spells.DefaultRegistry()
	}
	return o
}

// scale applies difficulty and streak bonuses to freshly built actors.
func (s Scaling) scale(player, enemy *actor.Actor, difficulty, winStreak int) {
	levels := max(difficulty-1, 0)
	enemy.ScaleMaxHP(s.HPPerDifficulty * levels)
	enemy.GainMana(s.ManaPerDifficulty * levels)
	player.GainMana(s.ManaPerStreakWin * winStreak)
}

// mergeProfiles sums the decks both duelists bring to the shared draw pile.
// With neither supplying one the registry default is used.
func mergeProfiles(reg *spells.SpellRegistry, profiles ...deck.Profile) deck.Profile {
	merged := deck.Profile{}
	for _, p := range profiles {
		for id, n := range p {
			merged[id] += n
		}
	}
	if merged.Size() == 0 {
		return deck.DefaultProfile(reg)
	}
	return merged
}
