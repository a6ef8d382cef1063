package battle

import (
	"github.com/wizbiz/wizardduel/internal/actor"
	"github.com/wizbiz/wizardduel/internal/dice"
	"github.com/wizbiz/wizardduel/internal/enemy"
)

// Player returns a snapshot of the player. It is zero before NewBattle.
func (c *Controller) Player() actor.Snapshot {
	if c.player == nil {
		return actor.Snapshot{}
	}
	return c.player.Snapshot()
}

// Enemy returns a snapshot of the enemy. It is zero before NewBattle.
func (c *Controller) Enemy() actor.Snapshot {
	if c.enemy == nil {
		return actor.Snapshot{}
	}
	return c.enemy.Snapshot()
}

func (c *Controller) State() StateTag { return c.state }

// Winner is WinnerNone until the battle is over.
func (c *Controller) Winner() Winner { return c.winner }

func (c *Controller) WinStreak() int  { return c.winStreak }
func (c *Controller) Difficulty() int { return c.difficulty }

// Turn counts turn starts in the current battle, both sides included.
func (c *Controller) Turn() int { return c.turn }

// Seed returns the seed that shuffled the current battle's deck.
func (c *Controller) Seed() int64 { return c.seed }

// DeckRemaining returns how many cards are left to draw.
func (c *Controller) DeckRemaining() int {
	if c.deck == nil {
		return 0
	}
	return c.deck.Remaining()
}

// Log returns the current battle's transcript.
func (c *Controller) Log() *Log { return c.log }

// Rules returns the rules the controller plays by.
func (c *Controller) Rules() Rules { return c.rules }

// Suggest returns the spell the enemy's policy would play in the player's
// position right now. It does not change the battle.
func (c *Controller) Suggest(src *dice.Source) (string, bool) {
	if c.player == nil || c.state != StatePlayerTurn {
		return "", false
	}
	return enemy.NewPolicy(src, c.ctx).ChooseSpell(c.player, c.enemy)
}
