package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wizbiz/wizardduel/internal/battle"
)

type Command struct {
	Name string
	Args []string
}

// RequireArgs checks if the command has at least the minimum number of arguments
// Returns an error with the usage message if not enough arguments are provided
func (c *Command) RequireArgs(min int, usage string) error {
	if len(c.Args) < min {
		return errors.New(usage)
	}
	return nil
}

// GetSpellName joins all arguments into a single spell name (for multi-word spells)
func (c *Command) GetSpellName() string {
	return strings.Join(c.Args, " ")
}

func ParseCommand(input string) *Command {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return &Command{Name: "", Args: []string{}}
	}

	return &Command{
		Name: strings.ToLower(parts[0]),
		Args: parts[1:],
	}
}

// Execute runs the command against the session and returns the reply for
// the player. Battle events are not part of the reply; they reach the
// terminal through the session's observers.
func (c *Command) Execute(s *Session) string {
	if s == nil {
		return "Internal error: no session"
	}

	switch c.Name {
	case "":
		return ""
	case "help", "?":
		return c.executeHelp(s)
	case "cast", "c", "play":
		return c.executeCast(s)
	case "end", "pass", "done":
		return c.executeEnd(s)
	case "status", "st", "look", "l":
		return c.executeStatus(s)
	case "hand", "h":
		return c.executeHand(s)
	case "spells", "book":
		return c.executeSpells(s)
	case "hint":
		return c.executeHint(s)
	case "log":
		return c.executeLog(s)
	case "continue", "next":
		return c.executeContinue(s)
	case "new", "reset":
		return c.executeNew(s)
	case "quit", "exit", "q":
		return c.executeQuit(s)
	default:
		return fmt.Sprintf("Unknown command: %s. Type 'help' for available commands.", c.Name)
	}
}

func (c *Command) executeCast(s *Session) string {
	if err := c.RequireArgs(1, "Usage: cast <spell>"); err != nil {
		return err.Error()
	}
	if err := s.ctrl.CastSpell(c.GetSpellName()); err != nil {
		return fmt.Sprintf("Cannot cast: %v", err)
	}
	return ""
}

func (c *Command) executeEnd(s *Session) string {
	if err := s.ctrl.EndTurn(); err != nil {
		return fmt.Sprintf("Cannot end turn: %v", err)
	}
	return ""
}

func (c *Command) executeStatus(s *Session) string {
	if !s.InBattle() {
		return "No duel in progress."
	}
	return RenderStatus(s.ctrl)
}

func (c *Command) executeHand(s *Session) string {
	if !s.InBattle() {
		return "No duel in progress."
	}
	return RenderHand(s.ctrl.Player())
}

func (c *Command) executeSpells(s *Session) string {
	var sb strings.Builder
	sb.WriteString("Spellbook:\n")
	for _, spell := range s.reg.GetAllSpells() {
		sb.WriteString(fmt.Sprintf("  %-14s %2d mana  %s\n", spell.Name, spell.ManaCost, spell.Description))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (c *Command) executeHint(s *Session) string {
	if !s.InBattle() || s.ctrl.State() != battle.StatePlayerTurn {
		return "There is nothing to advise right now."
	}
	name, ok := s.ctrl.Suggest(s.src)
	if !ok {
		return "You cannot afford any card in your hand. Type 'end' to pass the turn."
	}
	return fmt.Sprintf("Your staff hums: try %s.", name)
}

func (c *Command) executeLog(s *Session) string {
	if !s.InBattle() {
		return "No duel in progress."
	}
	return strings.TrimRight(s.ctrl.Log().String(), "\n")
}

func (c *Command) executeContinue(s *Session) string {
	if s.ctrl.State() != battle.StateGameOver {
		return "The duel is not over yet."
	}
	if err := s.Next(); err != nil {
		return fmt.Sprintf("Cannot start the next duel: %v", err)
	}
	return ""
}

func (c *Command) executeNew(s *Session) string {
	if s.InBattle() && s.ctrl.State() != battle.StateGameOver {
		return "Finish the current duel first."
	}
	s.ctrl.ResetProgress()
	if err := s.Next(); err != nil {
		return fmt.Sprintf("Cannot start a new duel: %v", err)
	}
	return ""
}

func (c *Command) executeQuit(s *Session) string {
	s.quit = true
	return "You lower your staff and leave the arena."
}

func (c *Command) executeHelp(s *Session) string {
	topic := ""
	if len(c.Args) > 0 {
		topic = strings.ToLower(c.Args[0])
	}
	return s.help.GetHelpText(topic)
}
