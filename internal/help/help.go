// Package help provides help text loading and lookup from YAML files.
package help

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Topic represents a single help topic with aliases and text.
type Topic struct {
	Aliases []string `yaml:"aliases"`
	Text    string   `yaml:"text"`
}

// HelpData represents the structure of the help.yaml file.
type HelpData struct {
	Topics      map[string]Topic `yaml:"topics"`
	GeneralHelp string           `yaml:"general_help"`
}

// Help provides help text lookup.
type Help struct {
	data        *HelpData
	aliasLookup map[string]string // maps alias -> topic name
}

const builtin = `
topics:
  cast:
    aliases: [cast, c, play]
    text: |
      CAST <spell>
      Play a card from your hand. The spell name is not case sensitive.
      You may cast as many spells as your mana allows before ending the turn.

      Usage:
        cast fireball
        cast lightning bolt
  end:
    aliases: [end, pass, done]
    text: |
      END
      End your turn. The enemy acts, then your next turn begins: status
      effects tick, you draw a card and gain mana.
  status:
    aliases: [status, st, look, l]
    text: |
      STATUS
      Show both wizards' health, mana, shields and status effects.
  hand:
    aliases: [hand, h]
    text: |
      HAND
      List the cards in your hand with their mana costs.
  spells:
    aliases: [spells, book]
    text: |
      SPELLS
      List every spell in the deck with its cost and description.
  hint:
    aliases: [hint]
    text: |
      HINT
      Suggest the spell a cunning enemy would cast in your place.
  continue:
    aliases: [continue, next]
    text: |
      CONTINUE
      After a duel ends, face a new enemy. Each victory raises the
      difficulty; a defeat resets your win streak.
  new:
    aliases: [new, reset]
    text: |
      NEW
      After a duel ends, start over at difficulty 1 with no win streak.
general_help: |
  Commands:
    cast <spell>   Play a card from your hand
    end            End your turn
    status         Show both wizards
    hand           Show your hand
    spells         List all spells
    hint           Ask for advice
    log            Show the battle log so far
    continue       Face the next enemy after a duel
    new            Start over after a duel
    quit           Leave the arena
  Type 'help <command>' for details.
`

// Load loads help data from a YAML file.
func Load(path string) (*Help, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read help file: %w", err)
	}
	h, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse help file: %w", err)
	}
	return h, nil
}

// Parse builds help from YAML bytes.
func Parse(data []byte) (*Help, error) {
	var helpData HelpData
	if err := yaml.Unmarshal(data, &helpData); err != nil {
		return nil, err
	}

	h := &Help{
		data:        &helpData,
		aliasLookup: make(map[string]string),
	}

	// Build alias lookup map
	for topicName, topic := range helpData.Topics {
		h.aliasLookup[strings.ToLower(topicName)] = topicName
		for _, alias := range topic.Aliases {
			h.aliasLookup[strings.ToLower(alias)] = topicName
		}
	}

	return h, nil
}

// Default returns the built-in duel help.
func Default() *Help {
	h, err := Parse([]byte(builtin))
	if err != nil {
		panic(fmt.Sprintf("help: built-in text is invalid: %v", err))
	}
	return h
}

// GetTopic returns help text for a given topic/alias.
// Returns empty string if topic not found.
func (h *Help) GetTopic(topic string) string {
	topicName, ok := h.aliasLookup[strings.ToLower(topic)]
	if !ok {
		return ""
	}

	t, ok := h.data.Topics[topicName]
	if !ok {
		return ""
	}

	return strings.TrimSpace(t.Text)
}

// GetGeneralHelp returns the general help text.
func (h *Help) GetGeneralHelp() string {
	return strings.TrimSpace(h.data.GeneralHelp)
}

// GetHelpText returns help for a topic, or general help if topic is empty.
func (h *Help) GetHelpText(topic string) string {
	if topic == "" {
		return h.GetGeneralHelp()
	}

	text := h.GetTopic(topic)
	if text == "" {
		return fmt.Sprintf("No help available for '%s'.\nType 'help' for a list of commands.", topic)
	}
	return text
}
