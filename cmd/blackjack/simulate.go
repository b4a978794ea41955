package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack-cli/internal/game"
	"github.com/lox/blackjack-cli/internal/simulator"
)

// SimulateCmd runs unattended sessions
type SimulateCmd struct {
	Rounds   int      `kong:"default='10000',help='Total rounds to play'"`
	Sessions int      `kong:"default='4',help='Parallel sessions to split the rounds across'"`
	Decks    int      `kong:"default='0',help='Decks in the shoe, 0 uses the config value'"`
	Bet      int      `kong:"default='10',help='Flat bet per round'"`
	SideBets []string `kong:"help='Side bets to play every round (luckyPair, twentyOnePlus, top3)'"`
	Seed     *int64   `kong:"help='Deterministic RNG seed (optional)'"`
	Debug    bool     `kong:"help='Enable debug logging'"`
}

func (c *SimulateCmd) Run(cli *CLI) error {
	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}

	decks := c.Decks
	if decks == 0 {
		decks = cfg.Game.Decks
	}

	sideBets := make([]game.SideBet, 0, len(c.SideBets))
	for _, name := range c.SideBets {
		switch bet := game.SideBet(name); bet {
		case game.SideBetLuckyPair, game.SideBetTwentyOnePlus, game.SideBetTop3:
			sideBets = append(sideBets, bet)
		default:
			return fmt.Errorf("unknown side bet %q", name)
		}
	}

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}

	level := log.WarnLevel
	if c.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	simCfg := simulator.Config{
		Rounds:   c.Rounds,
		Sessions: c.Sessions,
		Decks:    decks,
		Bet:      c.Bet,
		SideBets: sideBets,
		Seed:     seed,
		Logger:   logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting simulation", "rounds", c.Rounds, "sessions", c.Sessions, "seed", seed)
	start := time.Now()

	stats, err := simulator.New(simCfg).Run(ctx)
	if err != nil {
		return err
	}

	simulator.PrintSummary(stats, simCfg)
	fmt.Printf("\nCompleted in %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}
