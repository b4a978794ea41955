package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lox/blackjack-cli/internal/statistics"
)

// StatsCmd prints or resets the saved statistics file
type StatsCmd struct {
	JSON  bool `kong:"help='Print statistics as JSON'"`
	Reset bool `kong:"help='Reset saved statistics to zero'"`
}

func (c *StatsCmd) Run(cli *CLI) error {
	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}

	stats, err := statistics.Load(cfg.UI.StatsFile)
	if err != nil {
		return err
	}

	if c.Reset {
		stats.Reset()
		if err := stats.Save(cfg.UI.StatsFile); err != nil {
			return err
		}
		fmt.Println("Statistics reset.")
		return nil
	}

	if c.JSON {
		return json.NewEncoder(os.Stdout).Encode(stats)
	}

	fmt.Printf("=== SESSION STATISTICS ===\n")
	fmt.Printf("Hands played: %d\n", stats.HandsPlayed)
	fmt.Printf("Wins: %d (%d blackjacks)\n", stats.Wins, stats.Blackjacks)
	fmt.Printf("Losses: %d\n", stats.Losses)
	fmt.Printf("Pushes: %d\n", stats.Pushes)
	fmt.Printf("Surrenders: %d\n", stats.Surrenders)
	fmt.Printf("Win rate: %d%%\n", stats.WinRate())
	fmt.Printf("\nTotal wagered: %d chips\n", stats.TotalWagered)
	fmt.Printf("Net result: %+d chips\n", stats.NetChips)
	fmt.Printf("Biggest win: %d chips\n", stats.BiggestWin)
	fmt.Printf("\nLucky Pair wins: %d\n", stats.LuckyPairWins)
	fmt.Printf("21+3 wins: %d\n", stats.TwentyOnePlusWins)
	fmt.Printf("Top 3 wins: %d\n", stats.Top3Wins)
	fmt.Printf("Bonus winnings: %d chips\n", stats.BonusWinnings)
	return nil
}
