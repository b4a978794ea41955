// Package statistics tracks session results across rounds and persists
// them between runs.
package statistics

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/lox/blackjack-cli/internal/fileutil"
	"github.com/lox/blackjack-cli/internal/game"
)

// Statistics accumulates round outcomes and side bet winnings. It
// implements game.Recorder so an engine can feed it directly. Surrenders
// are tracked on their own and never count as wins or losses.
type Statistics struct {
	HandsPlayed int `json:"handsPlayed"`
	Wins        int `json:"wins"`
	Losses      int `json:"losses"`
	Pushes      int `json:"pushes"`
	Blackjacks  int `json:"blackjacks"`
	Surrenders  int `json:"surrenders"`

	TotalWagered int `json:"totalWagered"`
	NetChips     int `json:"netChips"`
	BiggestWin   int `json:"biggestWin"`

	LuckyPairWins     int `json:"luckyPairWins"`
	TwentyOnePlusWins int `json:"twentyOnePlusWins"`
	Top3Wins          int `json:"top3Wins"`
	BonusWinnings     int `json:"bonusWinnings"`
}

// RecordHand incorporates one settled round.
func (s *Statistics) RecordHand(outcome game.Outcome, bet int) {
	s.HandsPlayed++
	s.TotalWagered += bet

	switch outcome {
	case game.OutcomeWin:
		s.Wins++
		s.NetChips += bet
		s.trackWin(bet)
	case game.OutcomeBlackjack:
		s.Wins++
		s.Blackjacks++
		payout := bet * 3 / 2
		s.NetChips += payout
		s.trackWin(payout)
	case game.OutcomeLose:
		s.Losses++
		s.NetChips -= bet
	case game.OutcomeSurrender:
		s.Surrenders++
		s.NetChips -= bet / 2
	case game.OutcomePush:
		s.Pushes++
	}
}

// RecordBonus incorporates one winning side bet.
func (s *Statistics) RecordBonus(bet game.SideBet, amount int) {
	switch bet {
	case game.SideBetLuckyPair:
		s.LuckyPairWins++
	case game.SideBetTwentyOnePlus:
		s.TwentyOnePlusWins++
	case game.SideBetTop3:
		s.Top3Wins++
	}
	s.BonusWinnings += amount
	s.NetChips += amount
}

func (s *Statistics) trackWin(amount int) {
	if amount > s.BiggestWin {
		s.BiggestWin = amount
	}
}

// WinRate returns the percentage of decisive hands won, rounded to the
// nearest whole percent. Pushes and surrenders are not decisive.
func (s *Statistics) WinRate() int {
	decisive := s.Wins + s.Losses
	if decisive == 0 {
		return 0
	}
	return int(math.Round(float64(s.Wins) / float64(decisive) * 100))
}

// Merge folds another set of statistics into this one.
func (s *Statistics) Merge(other *Statistics) {
	s.HandsPlayed += other.HandsPlayed
	s.Wins += other.Wins
	s.Losses += other.Losses
	s.Pushes += other.Pushes
	s.Blackjacks += other.Blackjacks
	s.Surrenders += other.Surrenders
	s.TotalWagered += other.TotalWagered
	s.NetChips += other.NetChips
	if other.BiggestWin > s.BiggestWin {
		s.BiggestWin = other.BiggestWin
	}
	s.LuckyPairWins += other.LuckyPairWins
	s.TwentyOnePlusWins += other.TwentyOnePlusWins
	s.Top3Wins += other.Top3Wins
	s.BonusWinnings += other.BonusWinnings
}

// Reset zeroes every counter.
func (s *Statistics) Reset() {
	*s = Statistics{}
}

// Load reads statistics from a JSON file. Bad data never aborts a
// session: a missing file, undecodable content, or a malformed field
// all fall back to zero so play continues with a fresh slate.
func Load(path string) (*Statistics, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Statistics{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read statistics: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return &Statistics{}, nil
	}

	return &Statistics{
		HandsPlayed:       counter(raw, "handsPlayed"),
		Wins:              counter(raw, "wins"),
		Losses:            counter(raw, "losses"),
		Pushes:            counter(raw, "pushes"),
		Blackjacks:        counter(raw, "blackjacks"),
		Surrenders:        counter(raw, "surrenders"),
		TotalWagered:      counter(raw, "totalWagered"),
		NetChips:          intField(raw, "netChips"),
		BiggestWin:        counter(raw, "biggestWin"),
		LuckyPairWins:     counter(raw, "luckyPairWins"),
		TwentyOnePlusWins: counter(raw, "twentyOnePlusWins"),
		Top3Wins:          counter(raw, "top3Wins"),
		BonusWinnings:     counter(raw, "bonusWinnings"),
	}, nil
}

// intField decodes one numeric field, zeroing anything malformed.
func intField(raw map[string]json.RawMessage, name string) int {
	msg, ok := raw[name]
	if !ok {
		return 0
	}
	var n int
	if err := json.Unmarshal(msg, &n); err != nil {
		return 0
	}
	return n
}

// counter is an intField that can never go negative. NetChips is the
// only field allowed below zero.
func counter(raw map[string]json.RawMessage, name string) int {
	return max(intField(raw, name), 0)
}

// Save writes statistics to a JSON file atomically so a crash mid-write
// never corrupts the previous session's numbers.
func (s *Statistics) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode statistics: %w", err)
	}
	if err := fileutil.WriteFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write statistics: %w", err)
	}
	return nil
}
