// balance is a Monte Carlo simulator for testing wizard duel balance.
//
// Usage:
//
//	balance [command] [options]
//
// Commands:
//
//	duel      - Simulate duels at one difficulty
//	sweep     - Simulate duels across a range of difficulties
//	campaign  - Simulate win streaks from difficulty 1 until the first defeat
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/wizbiz/wizardduel/internal/battle"
	"github.com/wizbiz/wizardduel/internal/config"
	"github.com/wizbiz/wizardduel/internal/logger"
	"github.com/wizbiz/wizardduel/utilities/balance"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch os.Args[1] {
	case "duel":
		err = runDuelSim(ctx)
	case "sweep":
		err = runSweep(ctx)
	case "campaign":
		err = runCampaignSim(ctx)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "balance: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Wizard Duel Balance Simulator

A Monte Carlo simulator for testing duel balance. Both wizards are played
by the enemy AI.

Usage: balance <command> [options]

Commands:
  duel      Simulate duels at one difficulty
  sweep     Simulate duels across a range of difficulties
  campaign  Simulate win streaks from difficulty 1 until the first defeat

Examples:
  balance duel -difficulty=3 -iterations=10000 -workers=8
  balance sweep -start=1 -end=10
  balance campaign -iterations=2000 -max-battles=15

Use "balance <command> -h" for more information about a command.`)
}

// common holds the flags every command shares.
type common struct {
	configPath string
	iterations int
	workers    int
	maxTurns   int
	seed       int64
}

func (c *common) register(fs *flag.FlagSet, iterations int) {
	fs.StringVar(&c.configPath, "config", "data/duel.yaml", "Path to duel configuration")
	fs.IntVar(&c.iterations, "iterations", iterations, "Number of simulations to run")
	fs.IntVar(&c.workers, "workers", 0, "Concurrent workers (0 = one per CPU)")
	fs.IntVar(&c.maxTurns, "max-turns", balance.DefaultMaxTurns, "Turns before a duel counts as a stalemate")
	fs.Int64Var(&c.seed, "seed", 0, "Random seed (0 = from clock)")
}

func (c *common) simConfig() (balance.SimConfig, error) {
	cfg, err := config.LoadConfig(c.configPath)
	if err != nil {
		return balance.SimConfig{}, err
	}
	reg, err := cfg.LoadRegistry()
	if err != nil {
		return balance.SimConfig{}, err
	}
	logCfg := logger.DefaultConfig()
	logCfg.Level = "ERROR"
	if err := logger.Initialize(logCfg); err != nil {
		return balance.SimConfig{}, err
	}

	opts := cfg.BattleOptions(reg)
	seed := c.seed
	if seed == 0 {
		seed = cfg.Seed
	}
	return balance.SimConfig{
		Options:    opts,
		Iterations: c.iterations,
		Workers:    c.workers,
		MaxTurns:   c.maxTurns,
		Seed:       seed,
	}, nil
}

func runDuelSim(ctx context.Context) error {
	fs := flag.NewFlagSet("duel", flag.ExitOnError)
	var flags common
	flags.register(fs, 10000)
	difficulty := fs.Int("difficulty", 1, "Difficulty level")
	streak := fs.Int("streak", 0, "Player win streak going into the duel")
	fs.Parse(os.Args[2:])

	cfg, err := flags.simConfig()
	if err != nil {
		return err
	}
	cfg.Difficulty = *difficulty
	cfg.WinStreak = *streak

	printOptions(cfg.Options)
	fmt.Printf("Difficulty %d, win streak %d, %d iterations\n\n", cfg.Difficulty, cfg.WinStreak, cfg.Iterations)

	result, err := balance.RunSimulation(ctx, cfg)
	if err != nil {
		return err
	}
	printSimulationResult(result)
	return nil
}

func runSweep(ctx context.Context) error {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	var flags common
	flags.register(fs, 2000)
	start := fs.Int("start", 1, "First difficulty")
	end := fs.Int("end", 10, "Last difficulty")
	step := fs.Int("step", 1, "Difficulty step")
	fs.Parse(os.Args[2:])

	if *step <= 0 {
		return fmt.Errorf("step must be positive")
	}
	cfg, err := flags.simConfig()
	if err != nil {
		return err
	}

	var levels []int
	for d := *start; d <= *end; d += *step {
		levels = append(levels, d)
	}

	printOptions(cfg.Options)
	fmt.Printf("Difficulties %d-%d (step %d), %d iterations each\n\n", *start, *end, *step, cfg.Iterations)

	results, err := balance.RunSweep(ctx, cfg, levels)
	if err != nil {
		return err
	}

	fmt.Println("Diff | Win Rate | Avg Turns | Player HP Left | Enemy HP Left | Stalemates")
	fmt.Println("-----+----------+-----------+----------------+---------------+-----------")
	for _, r := range results {
		fmt.Printf("%4d | %7.1f%% | %9.1f | %14.1f | %13.1f | %10d\n",
			r.Difficulty, r.WinRate, r.AvgTurns, r.AvgPlayerHPLeft, r.AvgEnemyHPLeft, r.Stalemates)
	}
	return nil
}

func runCampaignSim(ctx context.Context) error {
	fs := flag.NewFlagSet("campaign", flag.ExitOnError)
	var flags common
	flags.register(fs, 2000)
	maxBattles := fs.Int("max-battles", 15, "Stop a campaign after this many wins")
	fs.Parse(os.Args[2:])

	cfg, err := flags.simConfig()
	if err != nil {
		return err
	}

	printOptions(cfg.Options)
	fmt.Printf("%d campaigns, up to %d battles each\n\n", cfg.Iterations, *maxBattles)

	result, err := balance.RunCampaigns(ctx, cfg, *maxBattles)
	if err != nil {
		return err
	}

	fmt.Printf("Average streak: %.2f\n", result.AvgStreak)
	fmt.Printf("Longest streak: %d\n", result.MaxStreak)
	fmt.Printf("Undefeated:     %d\n\n", result.CappedCampaign)
	fmt.Println("Streak | Campaigns")
	fmt.Println("-------+----------")
	for n, count := range result.StreakCounts {
		bar := strings.Repeat("#", count*40/max(result.Campaigns, 1))
		fmt.Printf("%6d | %8d %s\n", n, count, bar)
	}
	return nil
}

func printOptions(opts battle.Options) {
	r, s := opts.Rules, opts.Scaling
	fmt.Println("=== Duel Simulation ===")
	fmt.Println()
	fmt.Printf("Rules:   hand %d, +%d mana/turn, draw %d, weaken %d%%\n",
		r.HandLimit, r.ManaPerTurn, r.InitialDraw, r.WeakenPercent)
	fmt.Printf("Scaling: +%d HP and +%d mana per difficulty, +%d mana per streak win\n",
		s.HPPerDifficulty, s.ManaPerDifficulty, s.ManaPerStreakWin)
}

func printSimulationResult(r balance.SimulationResult) {
	fmt.Println("=== Results ===")
	fmt.Printf("Player wins:  %d (%.1f%%)\n", r.PlayerWins, r.WinRate)
	fmt.Printf("Enemy wins:   %d\n", r.EnemyWins)
	fmt.Printf("Stalemates:   %d\n", r.Stalemates)
	fmt.Printf("Turns:        avg %.1f, min %d, max %d\n", r.AvgTurns, r.MinTurns, r.MaxTurns)
	fmt.Printf("HP left:      player %.1f on wins, enemy %.1f on losses\n", r.AvgPlayerHPLeft, r.AvgEnemyHPLeft)
	fmt.Println()
	fmt.Println("Spell          | Cost | Player | Enemy | Win% when cast")
	fmt.Println("---------------+------+--------+-------+---------------")
	for _, s := range r.Spells {
		fmt.Printf("%-14s | %4d | %6d | %5d | %13.1f%%\n", s.Name, s.ManaCost, s.PlayerCasts, s.EnemyCasts, s.PlayerWinRate)
	}
}
