// Package battle runs a duel: it owns both actors and the shared deck,
// moves the turn state machine forward on player intents and tells
// observers what happened.
package battle

import (
	"fmt"
	"log/slog"

	"github.com/wizbiz/wizardduel/internal/actor"
	"github.com/wizbiz/wizardduel/internal/deck"
	"github.com/wizbiz/wizardduel/internal/dice"
	"github.com/wizbiz/wizardduel/internal/effects"
	"github.com/wizbiz/wizardduel/internal/enemy"
	"github.com/wizbiz/wizardduel/internal/logger"
	"github.com/wizbiz/wizardduel/internal/spells"
)

var _ spells.Combatant = (*actor.Actor)(nil)

// Controller is a single-threaded duel engine. Every method must be called
// from the same goroutine.
type Controller struct {
	rules    Rules
	scaling  Scaling
	registry *spells.SpellRegistry
	seeds    *dice.Source

	ctx    *spells.Context
	policy *enemy.Policy
	deck   *deck.Deck
	player *actor.Actor
	enemy  *actor.Actor
	state  StateTag
	winner Winner
	turn   int
	seed   int64

	difficulty int
	winStreak  int

	log       *Log
	pending   []string
	changed   bool
	observers []Observer
	busy      bool
	diag      *slog.Logger
}

// New returns a controller at difficulty 1 with no battle in progress.
func New(opts Options) *Controller {
	opts = opts.withDefaults()
	return &Controller{
		rules:      opts.Rules,
		scaling:    opts.Scaling,
		registry:   opts.Registry,
		seeds:      dice.New(opts.Seed),
		difficulty: 1,
		log:        &Log{},
		diag:       logger.With(),
	}
}

// begin guards an intent against re-entry from an observer callback.
func (c *Controller) begin(intent string) error {
	if c.busy {
		logger.Error("re-entrant intent rejected", "intent", intent, "state", c.state.String())
		return fmt.Errorf("%s: %w", intent, ErrReentrant)
	}
	c.busy = true
	return nil
}

// end notifies observers for the intent that just ran and releases the guard.
func (c *Controller) end() {
	defer func() { c.busy = false }()
	c.notify()
}

// NewBattle discards any battle in progress and starts a fresh one. The
// player moves first.
func (c *Controller) NewBattle(playerCfg, enemyCfg ActorConfig, difficulty, winStreak int) error {
	if err := c.begin("new battle"); err != nil {
		return err
	}
	defer c.end()

	if err := playerCfg.validate("player"); err != nil {
		return err
	}
	if err := enemyCfg.validate("enemy"); err != nil {
		return err
	}
	if difficulty < 0 || winStreak < 0 {
		return fmt.Errorf("%w: difficulty %d and win streak %d must not be negative", ErrInvalidConfig, difficulty, winStreak)
	}

	src := c.seeds.Derive()
	d, err := deck.New(c.registry, mergeProfiles(c.registry, playerCfg.DeckProfile, enemyCfg.DeckProfile), src)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	c.seed = src.Seed()
	c.diag = logger.With("seed", c.seed)
	c.ctx = &spells.Context{WeakenPercent: c.rules.WeakenPercent}
	c.policy = enemy.NewPolicy(src.Derive(), c.ctx)
	c.deck = d
	c.player = actor.New(playerCfg.Name, true, playerCfg.MaxHP, playerCfg.StartingMana, c.rules.HandLimit)
	c.enemy = actor.New(enemyCfg.Name, false, enemyCfg.MaxHP, enemyCfg.StartingMana, c.rules.HandLimit)
	c.scaling.scale(c.player, c.enemy, difficulty, winStreak)
	c.difficulty = difficulty
	c.winStreak = winStreak
	c.winner = WinnerNone
	c.turn = 0
	c.log = &Log{}
	c.changed = true

	c.player.DrawFrom(c.deck, c.rules.InitialDraw)
	c.enemy.DrawFrom(c.deck, c.rules.InitialDraw)

	c.logf("Game started.")
	c.logf("%s vs %s!", c.player.Name(), c.enemy.Name())
	c.logf("Both wizards drew initial hands.")
	c.diag.Info("battle started",
		"player", c.player.Name(),
		"enemy", c.enemy.Name(),
		"difficulty", difficulty,
		"win_streak", winStreak,
		"deck", c.deck.Size(),
	)

	c.state = StatePlayerTurn
	handlers[StatePlayerTurn].enter(c)
	return nil
}

// NextBattle starts a new battle at the controller's current difficulty and
// win streak.
func (c *Controller) NextBattle(playerCfg, enemyCfg ActorConfig) error {
	return c.NewBattle(playerCfg, enemyCfg, c.difficulty, c.winStreak)
}

// ResetProgress returns to difficulty 1 with no streak. The battle in
// progress, if any, is left alone.
func (c *Controller) ResetProgress() {
	c.difficulty = 1
	c.winStreak = 0
}

// CastSpell plays the named card from the player's hand. Unknown cards,
// insufficient mana and casts after the duel ended are logged and ignored.
func (c *Controller) CastSpell(name string) error {
	if c.player == nil {
		return fmt.Errorf("cast %s: %w", name, ErrNoBattle)
	}
	if err := c.begin("cast"); err != nil {
		return err
	}
	defer c.end()

	handlers[c.state].castSpell(c, name)
	return nil
}

// EndTurn passes to the enemy, which acts immediately; control returns to
// the player unless the duel ends.
func (c *Controller) EndTurn() error {
	if c.player == nil {
		return ErrNoBattle
	}
	if err := c.begin("end turn"); err != nil {
		return err
	}
	defer c.end()

	handlers[c.state].endTurn(c)
	return nil
}

func (c *Controller) transition(next StateTag) {
	c.diag.Debug("state transition", "from", c.state.String(), "to", next.String(), "turn", c.turn)
	c.state = next
	c.changed = true
	handlers[next].enter(c)
}

func (c *Controller) logf(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	c.log.append(line)
	c.pending = append(c.pending, line)
}

// startTurn ticks a's effects, checks for death, draws and grants mana.
// It reports whether a survived.
func (c *Controller) startTurn(a, opponent *actor.Actor) bool {
	c.turn++

	for _, r := range a.TickEffects() {
		c.logTick(a, r)
	}
	for _, k := range a.PruneEffects() {
		c.logf("%s's %s wore off.", a.Name(), k.Title())
	}
	if !a.IsAlive() {
		c.finish(opponent, a)
		return false
	}

	switch {
	case a.HandFull():
		c.logf("%s's hand is full.", a.Role())
	case c.deck.Remaining() == 0:
		c.logf("The deck is empty.")
	default:
		n := a.DrawFrom(c.deck, 1)
		c.logf("%s drew %d card(s).", a.Role(), n)
	}

	a.GainMana(c.rules.ManaPerTurn)
	return true
}

func (c *Controller) logTick(a *actor.Actor, r effects.TickResult) {
	c.diag.Debug("status tick",
		"actor", a.Name(),
		"effect", string(r.Kind),
		"absorbed", r.Absorbed,
		"damage", r.Damage,
		"healed", r.Healed,
		"mana_lost", r.ManaLost,
	)
	if r.Absorbed > 0 {
		c.logf("%s's shield absorbs %d damage from %s.", a.Name(), r.Absorbed, r.Kind.Title())
	}
	switch {
	case r.Damage > 0:
		c.logf("%s takes %d damage from %s.", a.Name(), r.Damage, r.Kind.Title())
	case r.Healed > 0:
		c.logf("%s regenerates %d HP.", a.Name(), r.Healed)
	case r.ManaLost > 0:
		c.logf("%s loses %d mana to %s.", a.Name(), r.ManaLost, r.Kind.Title())
	}
}

// cast plays a card for caster against target. Ignored intents only log.
func (c *Controller) cast(caster, target *actor.Actor, name string) {
	card, idx, ok := caster.FindCard(name)
	if !ok {
		c.logf("%s attempted to play: %s (no matching card in hand)", caster.Role(), name)
		return
	}
	if caster.Mana() < card.ManaCost() {
		c.logf("Not enough mana.")
		return
	}

	caster.SpendMana(card.ManaCost())
	caster.RemoveCardAt(idx)
	c.changed = true
	c.logf("%s played: %s", caster.Role(), card.Name)

	out, err := card.Spell.Cast(caster, target, c.ctx)
	if err != nil {
		logger.Error("spell resolution failed", "spell", card.Name, "error", err)
		return
	}
	c.logOutcome(caster, target, out)
	c.diag.Info("spell cast",
		"caster", caster.Name(),
		"spell", card.Name,
		"cost", card.ManaCost(),
		"damage", out.Dealt,
		"absorbed", out.Absorbed,
		"healed", out.Healed,
	)

	for _, a := range []*actor.Actor{target, caster} {
		for _, k := range a.PruneEffects() {
			if k == effects.KindShield {
				c.logf("%s's shield shatters.", a.Name())
			} else {
				c.logf("%s's %s wore off.", a.Name(), k.Title())
			}
		}
	}

	// The target falls first, so a caster taken down by the same spell
	// still wins.
	switch {
	case !target.IsAlive():
		c.finish(caster, target)
	case !caster.IsAlive():
		c.finish(target, caster)
	}
}

func (c *Controller) logOutcome(caster, target *actor.Actor, out spells.Outcome) {
	if out.Reduced > 0 {
		c.logf("%s is weakened; the spell loses %d damage.", caster.Name(), out.Reduced)
	}
	if out.Absorbed > 0 {
		c.logf("%s's shield absorbs %d damage.", target.Name(), out.Absorbed)
	}
	if out.Dealt > 0 {
		c.logf("%s takes %d damage.", target.Name(), out.Dealt)
	}
	if out.Healed > 0 {
		c.logf("%s recovers %d HP.", caster.Name(), out.Healed)
	}
	for _, e := range out.Applied {
		c.logf("%s is afflicted with %s.", target.Name(), e)
	}
	for _, e := range out.Granted {
		c.logf("%s gains %s.", caster.Name(), e)
	}
}

func (c *Controller) finish(winner, loser *actor.Actor) {
	c.logf("%s has been defeated!", loser.Name())
	c.logf("%s wins!", winner.Name())
	if winner.IsPlayer() {
		c.winner = WinnerPlayer
	} else {
		c.winner = WinnerEnemy
	}
	logger.Always("battle over",
		"seed", c.seed,
		"winner", string(c.winner),
		"player", c.player.Name(),
		"enemy", c.enemy.Name(),
		"turns", c.turn,
		"difficulty", c.difficulty,
	)
	c.transition(StateGameOver)
}
