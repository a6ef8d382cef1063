package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wizbiz/wizardduel/internal/battle"
	"github.com/wizbiz/wizardduel/internal/deck"
	"github.com/wizbiz/wizardduel/internal/spells"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid duel config")

// DuelConfig holds the duel rules and where the other data files live.
type DuelConfig struct {
	Rules   RulesConfig   `yaml:"rules"`
	Scaling ScalingConfig `yaml:"scaling"`
	Deck    DeckConfig    `yaml:"deck"`
	Files   FilesConfig   `yaml:"files"`

	// Seed fixes deck shuffles and enemy tiebreaks. 0 picks one from the clock.
	Seed int64 `yaml:"seed"`
}

// RulesConfig holds the fixed numbers of a duel.
type RulesConfig struct {
	HandLimit   int `yaml:"hand_limit"`
	ManaPerTurn int `yaml:"mana_per_turn"`
	InitialDraw int `yaml:"initial_draw"`

	// WeakenPercent is how much Weaken cuts the afflicted wizard's spell damage.
	WeakenPercent int `yaml:"weaken_percent"`
}

// ScalingConfig holds the per-difficulty and per-win bonuses.
type ScalingConfig struct {
	HPPerDifficulty   int `yaml:"hp_per_difficulty"`
	ManaPerDifficulty int `yaml:"mana_per_difficulty"`
	ManaPerStreakWin  int `yaml:"mana_per_streak_win"`
}

// DeckConfig describes the shared draw pile.
type DeckConfig struct {
	// Copies of every catalogue spell, unless Profile is set.
	Copies int `yaml:"copies"`

	// Profile maps spell IDs to copy counts and replaces Copies entirely.
	Profile map[string]int `yaml:"profile"`
}

// FilesConfig points at the other YAML data files. Empty paths fall back
// to built-in defaults.
type FilesConfig struct {
	Spells     string `yaml:"spells"`
	Logging    string `yaml:"logging"`
	NameFilter string `yaml:"name_filter"`
	Help       string `yaml:"help"`
}

// DefaultConfig returns the standard duel.
func DefaultConfig() *DuelConfig {
	rules := battle.DefaultRules()
	scaling := battle.DefaultScaling()
	return &DuelConfig{
		Rules: RulesConfig{
			HandLimit:     rules.HandLimit,
			ManaPerTurn:   rules.ManaPerTurn,
			InitialDraw:   rules.InitialDraw,
			WeakenPercent: rules.WeakenPercent,
		},
		Scaling: ScalingConfig{
			HPPerDifficulty:   scaling.HPPerDifficulty,
			ManaPerDifficulty: scaling.ManaPerDifficulty,
			ManaPerStreakWin:  scaling.ManaPerStreakWin,
		},
		Deck: DeckConfig{
			Copies: deck.DefaultCopies,
		},
	}
}

// LoadConfig loads the duel configuration from a YAML file over the
// defaults. A missing file yields the defaults.
func LoadConfig(path string) (*DuelConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("parse %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return DefaultConfig(), err
	}
	return config, nil
}

// Validate rejects settings the battle cannot run with.
func (c *DuelConfig) Validate() error {
	switch {
	case c.Rules.HandLimit != battle.DefaultRules().HandLimit:
		return fmt.Errorf("%w: hand_limit is fixed at %d, got %d", ErrInvalid, battle.DefaultRules().HandLimit, c.Rules.HandLimit)
	case c.Rules.ManaPerTurn < 0:
		return fmt.Errorf("%w: mana_per_turn must not be negative, got %d", ErrInvalid, c.Rules.ManaPerTurn)
	case c.Rules.InitialDraw < 0:
		return fmt.Errorf("%w: initial_draw must not be negative, got %d", ErrInvalid, c.Rules.InitialDraw)
	case c.Rules.WeakenPercent < 1 || c.Rules.WeakenPercent > 100:
		return fmt.Errorf("%w: weaken_percent must be within 1..100, got %d", ErrInvalid, c.Rules.WeakenPercent)
	case c.Scaling.HPPerDifficulty < 0 || c.Scaling.ManaPerDifficulty < 0 || c.Scaling.ManaPerStreakWin < 0:
		return fmt.Errorf("%w: scaling bonuses must not be negative", ErrInvalid)
	case c.Deck.Copies < 0:
		return fmt.Errorf("%w: deck copies must not be negative, got %d", ErrInvalid, c.Deck.Copies)
	}
	for id, n := range c.Deck.Profile {
		if n < 0 {
			return fmt.Errorf("%w: deck profile %q has %d copies", ErrInvalid, id, n)
		}
	}
	return nil
}

// DeckProfile resolves the deck settings against reg.
func (c *DuelConfig) DeckProfile(reg *spells.SpellRegistry) deck.Profile {
	if len(c.Deck.Profile) > 0 {
		return deck.Profile(c.Deck.Profile)
	}
	p := make(deck.Profile, reg.Len())
	for _, s := range reg.GetAllSpells() {
		p[s.ID] = c.Deck.Copies
	}
	return p
}

// BattleOptions converts the config into controller options.
func (c *DuelConfig) BattleOptions(reg *spells.SpellRegistry) battle.Options {
	return battle.Options{
		Rules: battle.Rules{
			HandLimit:     c.Rules.HandLimit,
			ManaPerTurn:   c.Rules.ManaPerTurn,
			InitialDraw:   c.Rules.InitialDraw,
			WeakenPercent: c.Rules.WeakenPercent,
		},
		Scaling: battle.Scaling{
			HPPerDifficulty:   c.Scaling.HPPerDifficulty,
			ManaPerDifficulty: c.Scaling.ManaPerDifficulty,
			ManaPerStreakWin:  c.Scaling.ManaPerStreakWin,
		},
		Registry: reg,
		Seed:     c.Seed,
	}
}

// LoadRegistry returns the built-in spell catalogue with Files.Spells
// layered over it. A missing spells file leaves the catalogue unchanged.
func (c *DuelConfig) LoadRegistry() (*spells.SpellRegistry, error) {
	reg := spells.DefaultRegistry()
	if c.Files.Spells == "" {
		return reg, nil
	}
	if _, err := os.Stat(c.Files.Spells); os.IsNotExist(err) {
		return reg, nil
	}
	if err := reg.LoadFromYAML(c.Files.Spells); err != nil {
		return nil, fmt.Errorf("load spells %s: %w", c.Files.Spells, err)
	}
	return reg, nil
}
