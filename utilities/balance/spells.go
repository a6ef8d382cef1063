package balance

import (
	"cmp"
	"slices"

	"github.com/wizbiz/wizardduel/internal/battle"
	"github.com/wizbiz/wizardduel/internal/spells"
)

// SpellUsage reports how often a spell was cast across a batch and how
// the caster fared in duels where it was cast.
type SpellUsage struct {
	Name        string
	ManaCost    int
	PlayerCasts int
	EnemyCasts  int
	// PlayerWinRate is the player's win rate over duels in which the player
	// cast this spell at least once.
	PlayerWinRate float64
}

// spellUsage tallies casts per catalogue spell, most cast first.
func spellUsage(duels []DuelResult, opts battle.Options) []SpellUsage {
	reg := opts.Registry
	if reg == nil {
		reg = spells.DefaultRegistry()
	}

	usage := make([]SpellUsage, 0, reg.Len())
	for _, s := range reg.GetAllSpells() {
		u := SpellUsage{Name: s.Name, ManaCost: s.ManaCost}
		withSpell, wins := 0, 0
		for _, d := range duels {
			u.PlayerCasts += d.PlayerCasts[s.Name]
			u.EnemyCasts += d.EnemyCasts[s.Name]
			if d.PlayerCasts[s.Name] > 0 {
				withSpell++
				if d.PlayerWon {
					wins++
				}
			}
		}
		if withSpell > 0 {
			u.PlayerWinRate = float64(wins) / float64(withSpell) * 100
		}
		usage = append(usage, u)
	}

	slices.SortStableFunc(usage, func(a, b SpellUsage) int {
		return cmp.Compare(b.PlayerCasts+b.EnemyCasts, a.PlayerCasts+a.EnemyCasts)
	})
	return usage
}
