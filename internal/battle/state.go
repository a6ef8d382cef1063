package battle

// StateTag identifies the phase a battle is in.
type StateTag int

const (
	StatePlayerTurn StateTag = iota
	StateEnemyTurn
	StateGameOver
)

func (s StateTag) String() string {
	switch s {
	case StatePlayerTurn:
		return "PlayerTurn"
	case StateEnemyTurn:
		return "EnemyTurn"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Winner names the side that won a finished battle.
type Winner string

const (
	WinnerNone   Winner = ""
	WinnerPlayer Winner = "player"
	WinnerEnemy  Winner = "enemy"
)

// stateHandler is one row of the phase dispatch table.
type stateHandler struct {
	enter     func(c *Controller)
	castSpell func(c *Controller, name string)
	endTurn   func(c *Controller)
}

// handlers is filled in init because its entries transition through it.
var handlers map[StateTag]stateHandler

func init() {
	handlers = map[StateTag]stateHandler{
		StatePlayerTurn: {
			enter:     enterPlayerTurn,
			castSpell: func(c *Controller, name string) { c.cast(c.player, c.enemy, name) },
			endTurn:   func(c *Controller) { c.transition(StateEnemyTurn) },
		},
		StateEnemyTurn: {
			enter: enterEnemyTurn,
			// The enemy turn resolves inside enter; player intents cannot
			// observe it.
			castSpell: func(c *Controller, name string) {},
			endTurn:   func(c *Controller) {},
		},
		StateGameOver: {
			enter:     enterGameOver,
			castSpell: func(c *Controller, name string) { c.logf("The duel is over.") },
			endTurn:   func(c *Controller) { c.logf("The duel is over.") },
		},
	}
}

func enterPlayerTurn(c *Controller) {
	if c.startTurn(c.player, c.enemy) {
		c.logf("Player's turn.")
	}
}

func enterEnemyTurn(c *Controller) {
	c.logf("Enemy's turn.")
	if !c.startTurn(c.enemy, c.player) {
		return
	}

	if name, ok := c.policy.ChooseSpell(c.enemy, c.player); ok {
		c.cast(c.enemy, c.player, name)
	} else {
		c.logf("%s passes.", c.enemy.Name())
	}
	if c.state == StateGameOver {
		return
	}
	c.transition(StatePlayerTurn)
}

func enterGameOver(c *Controller) {
	switch c.winner {
	case WinnerPlayer:
		c.winStreak++
		c.difficulty++
		c.logf("Victory! Win streak: %d.", c.winStreak)
	case WinnerEnemy:
		c.winStreak = 0
		c.logf("Defeat. Win streak reset.")
	}
}
