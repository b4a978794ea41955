package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lox/blackjack-cli/internal/game"
	"github.com/lox/blackjack-cli/internal/randutil"
	"github.com/lox/blackjack-cli/internal/statistics"
	"github.com/lox/blackjack-cli/internal/tui"
)

// PlayCmd starts an interactive session
type PlayCmd struct {
	Decks *int   `kong:"help='Number of decks in the shoe (1-8), overrides config'"`
	Chips *int   `kong:"help='Starting bankroll, overrides config'"`
	Seed  *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	Debug bool   `kong:"help='Enable debug logging'"`
}

func (c *PlayCmd) Run(cli *CLI) error {
	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}

	engineCfg := cfg.EngineConfig()
	if c.Decks != nil {
		engineCfg.Decks = *c.Decks
	}
	if c.Chips != nil {
		engineCfg.StartingChips = *c.Chips
	}

	logger, closeLog, err := setupFileLogger(cfg.UI.LogFile, cfg.UI.LogLevel, c.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	stats, err := statistics.Load(cfg.UI.StatsFile)
	if err != nil {
		return err
	}

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}
	logger.Info("Starting session", "seed", seed, "decks", engineCfg.Decks)

	settings := cfg.GameSettings()
	engine := game.NewEngine(randutil.New(seed), engineCfg,
		game.WithSettings(settings),
		game.WithRecorder(stats),
		game.WithLogger(logger))

	model := tui.NewModel(engine,
		tui.WithTheme(tui.ThemeByName(cfg.UI.Theme)),
		tui.WithModelLogger(logger))

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	if err := stats.Save(cfg.UI.StatsFile); err != nil {
		return err
	}

	fmt.Printf("Session over. %d hands, %d%% win rate, %+d chips net.\n",
		stats.HandsPlayed, stats.WinRate(), stats.NetChips)
	return nil
}
