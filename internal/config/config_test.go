package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/wizbiz/wizardduel/internal/spells"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "duel.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Rules.HandLimit != 5 {
		t.Errorf("HandLimit = %d, want 5", cfg.Rules.HandLimit)
	}
	if cfg.Rules.ManaPerTurn != 2 {
		t.Errorf("ManaPerTurn = %d, want 2", cfg.Rules.ManaPerTurn)
	}
	if cfg.Rules.InitialDraw != 5 {
		t.Errorf("InitialDraw = %d, want 5", cfg.Rules.InitialDraw)
	}
	if cfg.Rules.WeakenPercent != 25 {
		t.Errorf("WeakenPercent = %d, want 25", cfg.Rules.WeakenPercent)
	}
	if cfg.Scaling.HPPerDifficulty != 20 || cfg.Scaling.ManaPerDifficulty != 2 || cfg.Scaling.ManaPerStreakWin != 1 {
		t.Errorf("Scaling = %+v, want {20 2 1}", cfg.Scaling)
	}
	if cfg.Deck.Copies != 3 {
		t.Errorf("Deck.Copies = %d, want 3", cfg.Deck.Copies)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestLoadConfig_FileNotExists(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/duel.yaml")
	if err != nil {
		t.Errorf("expected no error for missing file, got %v", err)
	}
	if cfg == nil {
		t.Fatal("expected default config for missing file, got nil")
	}
	if cfg.Rules.HandLimit != 5 {
		t.Errorf("expected default hand limit, got %d", cfg.Rules.HandLimit)
	}
}

func TestLoadConfig_ValidFile(t *testing.T) {
	path := writeConfig(t, `
rules:
  weaken_percent: 50
scaling:
  hp_per_difficulty: 30
deck:
  profile:
    fireball: 4
    heal: 2
files:
  spells: data/spells.yaml
  help: data/help.yaml
seed: 99
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Rules.WeakenPercent != 50 {
		t.Errorf("WeakenPercent = %d, want 50", cfg.Rules.WeakenPercent)
	}
	if cfg.Rules.HandLimit != 5 {
		t.Errorf("HandLimit = %d, want default 5 kept", cfg.Rules.HandLimit)
	}
	if cfg.Scaling.HPPerDifficulty != 30 {
		t.Errorf("HPPerDifficulty = %d, want 30", cfg.Scaling.HPPerDifficulty)
	}
	if cfg.Scaling.ManaPerDifficulty != 2 {
		t.Errorf("ManaPerDifficulty = %d, want default 2 kept", cfg.Scaling.ManaPerDifficulty)
	}
	if cfg.Seed != 99 {
		t.Errorf("Seed = %d, want 99", cfg.Seed)
	}
	if cfg.Deck.Profile["fireball"] != 4 {
		t.Errorf("Deck.Profile[fireball] = %d, want 4", cfg.Deck.Profile["fireball"])
	}
	if cfg.Files.Spells != "data/spells.yaml" || cfg.Files.Help != "data/help.yaml" {
		t.Errorf("Files = %+v, want spells and help paths", cfg.Files)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "rules: [not a map")

	cfg, err := LoadConfig(path)
	if err == nil {
		t.Error("expected error for invalid YAML")
	}
	if cfg == nil || cfg.Rules.HandLimit != 5 {
		t.Error("expected default config on parse error")
	}
}

func TestLoadConfig_FailsValidation(t *testing.T) {
	path := writeConfig(t, "rules:\n  hand_limit: 0\n")

	_, err := LoadConfig(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("LoadConfig() error = %v, want ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DuelConfig)
	}{
		{"hand limit", func(c *DuelConfig) { c.Rules.HandLimit = 0 }},
		{"hand limit above five", func(c *DuelConfig) { c.Rules.HandLimit = 7 }},
		{"mana per turn", func(c *DuelConfig) { c.Rules.ManaPerTurn = -1 }},
		{"initial draw", func(c *DuelConfig) { c.Rules.InitialDraw = -2 }},
		{"weaken above 100", func(c *DuelConfig) { c.Rules.WeakenPercent = 101 }},
		{"negative scaling", func(c *DuelConfig) { c.Scaling.ManaPerStreakWin = -1 }},
		{"negative copies", func(c *DuelConfig) { c.Deck.Copies = -1 }},
		{"negative profile entry", func(c *DuelConfig) { c.Deck.Profile = map[string]int{"heal": -1} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestDeckProfile(t *testing.T) {
	reg := spells.DefaultRegistry()

	cfg := DefaultConfig()
	if got := cfg.DeckProfile(reg).Size(); got != 33 {
		t.Errorf("default DeckProfile size = %d, want 33", got)
	}

	cfg.Deck.Copies = 1
	if got := cfg.DeckProfile(reg).Size(); got != 11 {
		t.Errorf("one copy DeckProfile size = %d, want 11", got)
	}

	cfg.Deck.Profile = map[string]int{"fireball": 2, "heal": 1}
	p := cfg.DeckProfile(reg)
	if p.Size() != 3 || p["fireball"] != 2 {
		t.Errorf("explicit DeckProfile = %v, want fireball:2 heal:1", p)
	}
}

func TestBattleOptions(t *testing.T) {
	reg := spells.DefaultRegistry()
	cfg := DefaultConfig()
	cfg.Rules.WeakenPercent = 40
	cfg.Seed = 12

	opts := cfg.BattleOptions(reg)
	if opts.Rules.WeakenPercent != 40 {
		t.Errorf("Rules.WeakenPercent = %d, want 40", opts.Rules.WeakenPercent)
	}
	if opts.Scaling.HPPerDifficulty != 20 {
		t.Errorf("Scaling.HPPerDifficulty = %d, want 20", opts.Scaling.HPPerDifficulty)
	}
	if opts.Registry != reg {
		t.Error("Registry not carried through")
	}
	if opts.Seed != 12 {
		t.Errorf("Seed = %d, want 12", opts.Seed)
	}
}

func TestLoadRegistry(t *testing.T) {
	cfg := DefaultConfig()
	reg, err := cfg.LoadRegistry()
	if err != nil {
		t.Fatalf("LoadRegistry() error = %v", err)
	}
	if reg.Len() != 11 {
		t.Errorf("built-in registry has %d spells, want 11", reg.Len())
	}

	cfg.Files.Spells = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := cfg.LoadRegistry(); err != nil {
		t.Errorf("LoadRegistry() with missing file error = %v, want nil", err)
	}

	path := filepath.Join(t.TempDir(), "spells.yaml")
	content := `
spells:
  fireball:
    name: Fireball
    description: Hotter than usual.
    mana_cost: 2
    effects:
      - type: damage
        target: enemy
        amount: 12
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	cfg.Files.Spells = path
	reg, err = cfg.LoadRegistry()
	if err != nil {
		t.Fatalf("LoadRegistry() error = %v", err)
	}
	fireball, _ := reg.GetSpell("fireball")
	if fireball.ManaCost != 2 || fireball.GetDamageAmount() != 12 {
		t.Errorf("fireball = cost %d damage %d, want cost 2 damage 12", fireball.ManaCost, fireball.GetDamageAmount())
	}
	if reg.Len() != 11 {
		t.Errorf("override changed spell count to %d", reg.Len())
	}
}

func TestLoadConfig_ShippedFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "..", "data", "duel.yaml"))
	if err != nil {
		t.Fatalf("shipped config failed to load: %v", err)
	}
	if cfg.Deck.Copies != 3 {
		t.Errorf("Deck.Copies = %d, want 3", cfg.Deck.Copies)
	}
	if cfg.Files.Spells == "" || cfg.Files.Help == "" {
		t.Errorf("Files = %+v, want data file paths", cfg.Files)
	}
}
