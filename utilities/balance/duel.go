// Package balance provides Monte Carlo simulation tools for duel balance testing.
package balance

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/wizbiz/wizardduel/internal/battle"
	"github.com/wizbiz/wizardduel/internal/customization"
	"github.com/wizbiz/wizardduel/internal/dice"
)

// DefaultMaxTurns stops a duel that neither side can finish, e.g. when the
// deck runs dry with both wizards out of damage.
const DefaultMaxTurns = 200

// SimConfig describes a batch of simulated duels.
type SimConfig struct {
	Options    battle.Options
	Difficulty int
	WinStreak  int
	Iterations int
	Workers    int // 0 uses GOMAXPROCS
	MaxTurns   int // 0 uses DefaultMaxTurns
	Seed       int64
}

func (c SimConfig) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (c SimConfig) maxTurns() int {
	if c.MaxTurns > 0 {
		return c.MaxTurns
	}
	return DefaultMaxTurns
}

// DuelResult holds the outcome of a single simulated duel.
type DuelResult struct {
	PlayerWon    bool
	Stalemate    bool
	Turns        int
	PlayerHPLeft int
	EnemyHPLeft  int
	PlayerCasts  map[string]int
	EnemyCasts   map[string]int
}

// SimulationResult holds aggregated results from many duels.
type SimulationResult struct {
	Difficulty      int
	WinStreak       int
	Simulations     int
	PlayerWins      int
	EnemyWins       int
	Stalemates      int
	WinRate         float64
	AvgTurns        float64
	AvgPlayerHPLeft float64 // over player wins
	AvgEnemyHPLeft  float64 // over enemy wins
	MinTurns        int
	MaxTurns        int
	Spells          []SpellUsage
}

// castTally counts "<Role> played: <spell>" transcript lines.
type castTally struct {
	player map[string]int
	enemy  map[string]int
}

func newCastTally() *castTally {
	return &castTally{player: map[string]int{}, enemy: map[string]int{}}
}

func (t *castTally) observe(line string) {
	if name, ok := strings.CutPrefix(line, "Player played: "); ok {
		t.player[name]++
	} else if name, ok := strings.CutPrefix(line, "Enemy played: "); ok {
		t.enemy[name]++
	}
}

// SimulateDuel plays one battle with the player driven by the same policy
// as the enemy: each turn the player keeps casting the suggested spell
// until there is none, then ends the turn.
func SimulateDuel(opts battle.Options, difficulty, winStreak, maxTurns int) (DuelResult, error) {
	src := dice.New(opts.Seed)
	opts.Seed = src.Int63()
	c := battle.New(opts)
	tally := newCastTally()
	c.AddObserver(&battle.Funcs{OnLog: tally.observe})

	player := customization.DefaultPlayer()
	foe := customization.NewEnemy(player, src)
	if err := c.NewBattle(player.ActorConfig(nil), foe.ActorConfig(nil), difficulty, winStreak); err != nil {
		return DuelResult{}, err
	}

	if err := playOut(c, src, maxTurns); err != nil {
		return DuelResult{}, err
	}

	return DuelResult{
		PlayerWon:    c.Winner() == battle.WinnerPlayer,
		Stalemate:    c.State() != battle.StateGameOver,
		Turns:        c.Turn(),
		PlayerHPLeft: c.Player().HP,
		EnemyHPLeft:  c.Enemy().HP,
		PlayerCasts:  tally.player,
		EnemyCasts:   tally.enemy,
	}, nil
}

// playOut drives the player side until the battle ends or maxTurns pass.
func playOut(c *battle.Controller, src *dice.Source, maxTurns int) error {
	for c.State() != battle.StateGameOver && c.Turn() < maxTurns {
		for c.State() == battle.StatePlayerTurn {
			name, ok := c.Suggest(src)
			if !ok {
				break
			}
			if err := c.CastSpell(name); err != nil {
				return err
			}
		}
		if c.State() == battle.StateGameOver {
			break
		}
		if err := c.EndTurn(); err != nil {
			return err
		}
	}
	return nil
}

// RunSimulation runs cfg.Iterations duels across cfg.Workers goroutines.
// Each duel gets its own controller and a seed drawn up front, so results
// do not depend on scheduling.
func RunSimulation(ctx context.Context, cfg SimConfig) (SimulationResult, error) {
	if cfg.Iterations <= 0 {
		return SimulationResult{}, fmt.Errorf("iterations must be positive, got %d", cfg.Iterations)
	}

	seeds := dice.New(cfg.Seed)
	duels := make([]DuelResult, cfg.Iterations)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers())

	for i := range duels {
		opts := cfg.Options
		opts.Seed = seeds.Int63() | 1
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := SimulateDuel(opts, cfg.Difficulty, cfg.WinStreak, cfg.maxTurns())
			if err != nil {
				return fmt.Errorf("duel %d: %w", i, err)
			}
			duels[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SimulationResult{}, err
	}

	return aggregate(cfg, duels), nil
}

func aggregate(cfg SimConfig, duels []DuelResult) SimulationResult {
	result := SimulationResult{
		Difficulty:  cfg.Difficulty,
		WinStreak:   cfg.WinStreak,
		Simulations: len(duels),
		MinTurns:    duels[0].Turns,
	}

	totalTurns, playerHP, enemyHP := 0, 0, 0
	for _, d := range duels {
		switch {
		case d.Stalemate:
			result.Stalemates++
		case d.PlayerWon:
			result.PlayerWins++
			playerHP += d.PlayerHPLeft
		default:
			result.EnemyWins++
			enemyHP += d.EnemyHPLeft
		}
		totalTurns += d.Turns
		result.MinTurns = min(result.MinTurns, d.Turns)
		result.MaxTurns = max(result.MaxTurns, d.Turns)
	}

	n := float64(len(duels))
	result.WinRate = float64(result.PlayerWins) / n * 100
	result.AvgTurns = float64(totalTurns) / n
	if result.PlayerWins > 0 {
		result.AvgPlayerHPLeft = float64(playerHP) / float64(result.PlayerWins)
	}
	if result.EnemyWins > 0 {
		result.AvgEnemyHPLeft = float64(enemyHP) / float64(result.EnemyWins)
	}
	result.Spells = spellUsage(duels, cfg.Options)
	return result
}

// RunSweep runs one simulation per difficulty level.
func RunSweep(ctx context.Context, cfg SimConfig, difficulties []int) ([]SimulationResult, error) {
	results := make([]SimulationResult, 0, len(difficulties))
	for _, d := range difficulties {
		cfg.Difficulty = d
		r, err := RunSimulation(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("difficulty %d: %w", d, err)
		}
		results = append(results, r)
	}
	return results, nil
}
