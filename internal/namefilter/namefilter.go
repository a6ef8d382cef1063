// Package namefilter decides which wizard names a player may take.
package namefilter

import (
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMinLength = 2
	DefaultMaxLength = 20
)

// Config holds the name filter configuration
type Config struct {
	Enabled     bool     `yaml:"enabled"`
	MinLength   int      `yaml:"min_length"`
	MaxLength   int      `yaml:"max_length"`
	BannedWords []string `yaml:"banned_words"`
	BannedNames []string `yaml:"banned_names"`
}

// Result contains the outcome of checking a name
type Result struct {
	Allowed bool   // Whether the name is allowed
	Reason  string // Reason for rejection (if not allowed)
}

// NameFilter validates wizard names. Shape rules (length and characters)
// always apply; the banned lists only when the filter is enabled.
type NameFilter struct {
	enabled     bool
	minLength   int
	maxLength   int
	bannedWords []string // lowercase, partial match
	bannedNames []string // lowercase, exact match
}

// New creates a new NameFilter from a Config. A nil config checks shape only.
func New(cfg *Config) *NameFilter {
	if cfg == nil {
		return &NameFilter{minLength: DefaultMinLength, maxLength: DefaultMaxLength}
	}

	nf := &NameFilter{
		enabled:     cfg.Enabled,
		minLength:   cfg.MinLength,
		maxLength:   cfg.MaxLength,
		bannedWords: lowerAll(cfg.BannedWords),
		bannedNames: lowerAll(cfg.BannedNames),
	}
	if nf.minLength <= 0 {
		nf.minLength = DefaultMinLength
	}
	if nf.maxLength < nf.minLength {
		nf.maxLength = max(DefaultMaxLength, nf.minLength)
	}
	return nf
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, strings.ToLower(s))
		}
	}
	return out
}

// LoadConfig loads name filter configuration from a YAML file
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Check validates a name. Leading and trailing spaces are ignored.
func (nf *NameFilter) Check(name string) Result {
	name = strings.TrimSpace(name)
	if name == "" {
		return Result{Reason: "A wizard needs a name."}
	}

	n := utf8.RuneCountInString(name)
	if n < nf.minLength || n > nf.maxLength {
		return Result{Reason: fmt.Sprintf("Names must be between %d and %d characters.", nf.minLength, nf.maxLength)}
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && r != ' ' && r != '\'' && r != '-' {
			return Result{Reason: "Names may only contain letters, spaces, apostrophes and hyphens."}
		}
	}
	if !unicode.IsLetter([]rune(name)[0]) {
		return Result{Reason: "Names must start with a letter."}
	}

	if !nf.enabled {
		return Result{Allowed: true}
	}

	nameLower := strings.ToLower(name)
	for _, banned := range nf.bannedNames {
		if nameLower == banned {
			return Result{Reason: "That name is not allowed."}
		}
	}
	for _, word := range nf.bannedWords {
		if strings.Contains(nameLower, word) {
			return Result{Reason: "That name contains a word that is not allowed."}
		}
	}

	return Result{Allowed: true}
}

// IsEnabled returns whether the banned lists are checked.
func (nf *NameFilter) IsEnabled() bool {
	return nf.enabled
}
