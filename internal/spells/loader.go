package spells

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wizbiz/wizardduel/internal/effects"
)

// SpellEffectDefinition represents a spell effect in the YAML file.
type SpellEffectDefinition struct {
	Type   string `yaml:"type"`
	Target string `yaml:"target"`
	Amount int    `yaml:"amount"`
	Status string `yaml:"status,omitempty"`
}

// SpellDefinition represents a spell definition from the YAML file.
type SpellDefinition struct {
	Name        string                  `yaml:"name"`
	Description string                  `yaml:"description"`
	ManaCost    int                     `yaml:"mana_cost"`
	Effects     []SpellEffectDefinition `yaml:"effects"`
}

// SpellsConfig represents the structure of the spells.yaml file.
type SpellsConfig struct {
	Order  []string                   `yaml:"order"`
	Spells map[string]SpellDefinition `yaml:"spells"`
}

// SpellRegistry holds all loaded spells and provides lookup by ID or name.
type SpellRegistry struct {
	spells map[string]*Spell
	order  []string
}

// NewSpellRegistry creates a new empty spell registry.
func NewSpellRegistry() *SpellRegistry {
	return &SpellRegistry{
		spells: make(map[string]*Spell),
	}
}

// LoadSpellsFromYAML loads spell definitions from a YAML file.
func LoadSpellsFromYAML(filename string) (*SpellsConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read spells file: %w", err)
	}

	var config SpellsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse spells YAML: %w", err)
	}

	return &config, nil
}

// StringToEffectType converts a string to an EffectType.
func StringToEffectType(s string) (EffectType, error) {
	switch s {
	case "damage":
		return EffectDamage, nil
	case "heal":
		return EffectHeal, nil
	case "status":
		return EffectStatus, nil
	default:
		return "", fmt.Errorf("unknown effect type %q", s)
	}
}

// StringToTargetType converts a string to a TargetType.
func StringToTargetType(s string) TargetType {
	switch s {
	case "enemy":
		return TargetEnemy
	default:
		return TargetSelf
	}
}

// CreateSpellFromDefinition creates a Spell from a SpellDefinition.
func CreateSpellFromDefinition(id string, def SpellDefinition) (*Spell, error) {
	if def.Name == "" {
		return nil, fmt.Errorf("spell %s: missing name", id)
	}
	if def.ManaCost < 0 {
		return nil, fmt.Errorf("spell %s: negative mana cost %d", id, def.ManaCost)
	}

	effs := make([]SpellEffect, 0, len(def.Effects))
	for i, e := range def.Effects {
		typ, err := StringToEffectType(e.Type)
		if err != nil {
			return nil, fmt.Errorf("spell %s effect %d: %w", id, i, err)
		}
		eff := SpellEffect{
			Type:   typ,
			Target: StringToTargetType(e.Target),
			Amount: e.Amount,
		}
		if typ == EffectStatus {
			eff.Status = effects.Kind(strings.ToLower(e.Status))
			if _, err := effects.New(eff.Status, e.Amount); err != nil {
				return nil, fmt.Errorf("spell %s effect %d: %w", id, i, err)
			}
		}
		effs = append(effs, eff)
	}

	return NewSpell(id, def.Name, def.Description, def.ManaCost, effs...), nil
}

// LoadFromYAML loads spells from a YAML file into the registry. Spells with
// an existing ID replace the built-in definition.
func (r *SpellRegistry) LoadFromYAML(filename string) error {
	config, err := LoadSpellsFromYAML(filename)
	if err != nil {
		return err
	}

	ids := config.Order
	if len(ids) == 0 {
		for id := range config.Spells {
			ids = append(ids, id)
		}
		slices.Sort(ids)
	}

	for _, id := range ids {
		def, ok := config.Spells[id]
		if !ok {
			return fmt.Errorf("order lists %s: %w", id, ErrUnknownSpell)
		}
		spell, err := CreateSpellFromDefinition(id, def)
		if err != nil {
			return err
		}
		r.Register(spell)
	}

	return nil
}

// Register adds or replaces a spell.
func (r *SpellRegistry) Register(s *Spell) {
	if _, exists := r.spells[s.ID]; !exists {
		r.order = append(r.order, s.ID)
	}
	r.spells[s.ID] = s
}

// GetSpell returns a spell by its ID.
func (r *SpellRegistry) GetSpell(id string) (*Spell, bool) {
	spell, exists := r.spells[id]
	return spell, exists
}

// GetSpellByName returns a spell by its display name, case-insensitively.
func (r *SpellRegistry) GetSpellByName(name string) (*Spell, bool) {
	for _, id := range r.order {
		if s := r.spells[id]; strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return nil, false
}

// GetAllSpells returns all spells in registration order.
func (r *SpellRegistry) GetAllSpells() []*Spell {
	out := make([]*Spell, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.spells[id])
	}
	return out
}

// Len returns the number of registered spells.
func (r *SpellRegistry) Len() int {
	return len(r.order)
}
