// Package simulator plays unattended blackjack sessions for strategy and
// payout analysis.
package simulator

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack-cli/internal/game"
	"github.com/lox/blackjack-cli/internal/randutil"
	"github.com/lox/blackjack-cli/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// Config holds configuration for running simulations
type Config struct {
	Rounds   int
	Sessions int
	Decks    int
	Bet      int
	SideBets []game.SideBet
	Seed     int64
	Logger   *log.Logger
}

// Simulator runs automated blackjack sessions
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Sessions <= 0 {
		config.Sessions = 1
	}
	if config.Bet <= 0 {
		config.Bet = 10
	}
	return &Simulator{config: config}
}

// Run plays the configured number of rounds split across parallel
// sessions and returns the merged statistics. Each session gets its own
// engine and a seed derived from the base seed, so results reproduce for
// a given configuration.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	perSession := s.config.Rounds / s.config.Sessions
	if perSession == 0 {
		perSession = 1
	}

	sessionStats := make([]*statistics.Statistics, s.config.Sessions)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < s.config.Sessions; i++ {
		g.Go(func() error {
			stats, err := s.playSession(ctx, s.config.Seed+int64(i), perSession)
			if err != nil {
				return fmt.Errorf("session %d: %w", i, err)
			}
			sessionStats[i] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := &statistics.Statistics{}
	for _, stats := range sessionStats {
		merged.Merge(stats)
	}
	return merged, nil
}

// playSession plays rounds on a single engine, betting flat and following
// the hint policy.
func (s *Simulator) playSession(ctx context.Context, seed int64, rounds int) (*statistics.Statistics, error) {
	stats := &statistics.Statistics{}
	engine := game.NewEngine(randutil.New(seed), game.Config{Decks: s.config.Decks},
		game.WithRecorder(stats),
		game.WithLogger(s.config.Logger))

	for round := 0; round < rounds; round++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.playRound(engine); err != nil {
			return nil, fmt.Errorf("round %d (seed %d): %w", round+1, seed, err)
		}
	}
	return stats, nil
}

func (s *Simulator) playRound(engine *game.Engine) error {
	// A short stack bets what it has left; the bankroll replenishes on
	// the next bust.
	bet := s.config.Bet
	if chips := engine.Chips(); bet > chips {
		bet = chips
	}
	if _, err := engine.PlaceBet(bet); err != nil {
		return err
	}
	for _, sideBet := range s.config.SideBets {
		if _, err := engine.ToggleSideBet(sideBet); err != nil {
			var invalid *game.InvalidActionError
			if errors.As(err, &invalid) && invalid.Code == game.ReasonInsufficientChips {
				continue
			}
			return err
		}
	}
	if _, err := engine.Deal(); err != nil {
		return err
	}

	// The policy never buys insurance; it is always negative expectation.
	if engine.Phase() == game.PhaseInsurance {
		if _, err := engine.DeclineInsurance(); err != nil {
			return err
		}
	}

	for engine.Phase() == game.PhasePlayerTurn {
		snap := engine.Snapshot()
		upcard := snap.DealerHand[len(snap.DealerHand)-1]

		var err error
		if game.Hint(snap.PlayerTotal, upcard) == game.ActionHit {
			_, err = engine.Hit()
		} else {
			_, err = engine.Stand()
		}
		if err != nil {
			return err
		}
	}

	if engine.Phase() != game.PhaseSettled {
		return fmt.Errorf("round ended in unexpected phase %s", engine.Phase())
	}
	_, err := engine.NewRound()
	return err
}

// PrintSummary prints a summary of simulation results
func PrintSummary(stats *statistics.Statistics, cfg Config) {
	fmt.Printf("\n=== SIMULATION RESULTS ===\n")
	fmt.Printf("Rounds played: %d (%d sessions, seed %d)\n", stats.HandsPlayed, cfg.Sessions, cfg.Seed)
	fmt.Printf("Flat bet: %d chips\n", cfg.Bet)

	fmt.Printf("\n=== OUTCOMES ===\n")
	fmt.Printf("Wins: %d (%d blackjacks)\n", stats.Wins, stats.Blackjacks)
	fmt.Printf("Losses: %d\n", stats.Losses)
	fmt.Printf("Pushes: %d\n", stats.Pushes)
	fmt.Printf("Surrenders: %d\n", stats.Surrenders)
	fmt.Printf("Win rate: %d%% of decisive hands\n", stats.WinRate())

	fmt.Printf("\n=== CHIPS ===\n")
	fmt.Printf("Total wagered: %d\n", stats.TotalWagered)
	fmt.Printf("Net result: %+d chips\n", stats.NetChips)
	if stats.TotalWagered > 0 {
		edge := float64(stats.NetChips) / float64(stats.TotalWagered) * 100
		fmt.Printf("Return: %+.2f%% of wagered\n", edge)
	}
	fmt.Printf("Biggest win: %d\n", stats.BiggestWin)

	if len(cfg.SideBets) > 0 {
		fmt.Printf("\n=== SIDE BETS ===\n")
		fmt.Printf("Lucky Pair wins: %d\n", stats.LuckyPairWins)
		fmt.Printf("21+3 wins: %d\n", stats.TwentyOnePlusWins)
		fmt.Printf("Top 3 wins: %d\n", stats.Top3Wins)
		fmt.Printf("Bonus winnings: %d chips\n", stats.BonusWinnings)
	}
}
