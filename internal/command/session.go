package command

import (
	"fmt"

	"github.com/wizbiz/wizardduel/internal/battle"
	"github.com/wizbiz/wizardduel/internal/customization"
	"github.com/wizbiz/wizardduel/internal/deck"
	"github.com/wizbiz/wizardduel/internal/dice"
	"github.com/wizbiz/wizardduel/internal/help"
	"github.com/wizbiz/wizardduel/internal/logger"
	"github.com/wizbiz/wizardduel/internal/spells"
)

// Session is one player's run of duels against a series of enemies.
type Session struct {
	ctrl    *battle.Controller
	reg     *spells.SpellRegistry
	profile deck.Profile
	player  customization.Wizard
	enemy   customization.Wizard
	src     *dice.Source
	help    *help.Help
	quit    bool
}

// NewSession wraps ctrl for the given player. The player's deck
// contribution is profile; enemies bring no cards of their own. src drives
// enemy looks and hints.
func NewSession(ctrl *battle.Controller, reg *spells.SpellRegistry, profile deck.Profile, player customization.Wizard, src *dice.Source) *Session {
	if reg == nil {
		reg = spells.DefaultRegistry()
	}
	return &Session{
		ctrl:    ctrl,
		reg:     reg,
		profile: profile,
		player:  player,
		src:     src,
		help:    help.Default(),
	}
}

// SetHelp replaces the built-in help text.
func (s *Session) SetHelp(h *help.Help) {
	if h != nil {
		s.help = h
	}
}

// Next starts a duel against a freshly rolled enemy at the controller's
// current difficulty and win streak.
func (s *Session) Next() error {
	s.enemy = customization.NewEnemy(s.player, s.src)
	logger.Debug("Enemy summoned", "enemy", s.enemy.Name, "difficulty", s.ctrl.Difficulty())
	if err := s.ctrl.NextBattle(s.player.ActorConfig(s.profile), s.enemy.ActorConfig(nil)); err != nil {
		return fmt.Errorf("start duel against %s: %w", s.enemy.Name, err)
	}
	return nil
}

// Controller returns the battle controller driven by the session.
func (s *Session) Controller() *battle.Controller { return s.ctrl }

func (s *Session) Player() customization.Wizard { return s.player }
func (s *Session) Enemy() customization.Wizard  { return s.enemy }

// InBattle reports whether a duel has been started.
func (s *Session) InBattle() bool {
	return s.ctrl.Player().Name != ""
}

// Done reports whether the player asked to quit.
func (s *Session) Done() bool { return s.quit }

// Handle parses and executes one line of input.
func (s *Session) Handle(input string) string {
	return ParseCommand(input).Execute(s)
}
