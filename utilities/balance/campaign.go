package balance

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/wizbiz/wizardduel/internal/battle"
	"github.com/wizbiz/wizardduel/internal/customization"
	"github.com/wizbiz/wizardduel/internal/dice"
)

// CampaignResult summarises how far simulated players get on a win streak
// before their first defeat.
type CampaignResult struct {
	Campaigns      int
	AvgStreak      float64
	MaxStreak      int
	CappedCampaign int // campaigns that reached maxBattles without losing
	// StreakCounts[n] is how many campaigns ended with a streak of n.
	StreakCounts []int
}

// SimulateCampaign plays consecutive battles on one controller, so
// difficulty and streak scaling apply, until the player loses, a duel
// stalls or maxBattles are won. It returns the final win streak.
func SimulateCampaign(opts battle.Options, maxBattles, maxTurns int) (int, error) {
	src := dice.New(opts.Seed)
	opts.Seed = src.Int63()
	c := battle.New(opts)
	player := customization.DefaultPlayer()

	for won := 0; won < maxBattles; won++ {
		foe := customization.NewEnemy(player, src)
		if err := c.NextBattle(player.ActorConfig(nil), foe.ActorConfig(nil)); err != nil {
			return won, err
		}
		if err := playOut(c, src, maxTurns); err != nil {
			return won, err
		}
		if c.Winner() != battle.WinnerPlayer {
			return won, nil
		}
	}
	return c.WinStreak(), nil
}

// RunCampaigns runs campaigns concurrently, each starting at difficulty 1.
func RunCampaigns(ctx context.Context, cfg SimConfig, maxBattles int) (CampaignResult, error) {
	if cfg.Iterations <= 0 || maxBattles <= 0 {
		return CampaignResult{}, fmt.Errorf("iterations and max battles must be positive")
	}

	seeds := dice.New(cfg.Seed)
	streaks := make([]int, cfg.Iterations)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers())

	for i := range streaks {
		opts := cfg.Options
		opts.Seed = seeds.Int63() | 1
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			n, err := SimulateCampaign(opts, maxBattles, cfg.maxTurns())
			if err != nil {
				return fmt.Errorf("campaign %d: %w", i, err)
			}
			streaks[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return CampaignResult{}, err
	}

	result := CampaignResult{
		Campaigns:    len(streaks),
		StreakCounts: make([]int, maxBattles+1),
	}
	total := 0
	for _, n := range streaks {
		total += n
		result.MaxStreak = max(result.MaxStreak, n)
		result.StreakCounts[n]++
		if n == maxBattles {
			result.CappedCampaign++
		}
	}
	result.AvgStreak = float64(total) / float64(len(streaks))
	return result, nil
}
