package statistics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lox/blackjack-cli/internal/game"
)

func TestRecordHand(t *testing.T) {
	stats := &Statistics{}

	stats.RecordHand(game.OutcomeWin, 100)
	stats.RecordHand(game.OutcomeLose, 50)
	stats.RecordHand(game.OutcomeBlackjack, 100)
	stats.RecordHand(game.OutcomePush, 25)
	stats.RecordHand(game.OutcomeSurrender, 80)

	if stats.HandsPlayed != 5 {
		t.Errorf("Expected 5 hands, got %d", stats.HandsPlayed)
	}
	if stats.Wins != 2 {
		t.Errorf("Expected 2 wins (blackjack counts), got %d", stats.Wins)
	}
	if stats.Losses != 1 {
		t.Errorf("Expected 1 loss, got %d", stats.Losses)
	}
	if stats.Pushes != 1 {
		t.Errorf("Expected 1 push, got %d", stats.Pushes)
	}
	if stats.Blackjacks != 1 {
		t.Errorf("Expected 1 blackjack, got %d", stats.Blackjacks)
	}
	if stats.Surrenders != 1 {
		t.Errorf("Expected 1 surrender, got %d", stats.Surrenders)
	}
	if stats.TotalWagered != 355 {
		t.Errorf("Expected 355 wagered, got %d", stats.TotalWagered)
	}

	// +100 - 50 + 150 + 0 - 40
	if stats.NetChips != 160 {
		t.Errorf("Expected net of 160, got %d", stats.NetChips)
	}
	if stats.BiggestWin != 150 {
		t.Errorf("Expected biggest win of 150 (blackjack payout), got %d", stats.BiggestWin)
	}
}

func TestWinRateExcludesPushesAndSurrenders(t *testing.T) {
	stats := &Statistics{}

	if stats.WinRate() != 0 {
		t.Errorf("Expected 0%% win rate for empty stats, got %d", stats.WinRate())
	}

	stats.RecordHand(game.OutcomeWin, 10)
	stats.RecordHand(game.OutcomeWin, 10)
	stats.RecordHand(game.OutcomeLose, 10)
	stats.RecordHand(game.OutcomePush, 10)
	stats.RecordHand(game.OutcomeSurrender, 10)

	// 2 wins of 3 decisive hands.
	if stats.WinRate() != 67 {
		t.Errorf("Expected 67%% win rate, got %d", stats.WinRate())
	}
}

func TestRecordBonus(t *testing.T) {
	stats := &Statistics{}

	stats.RecordBonus(game.SideBetLuckyPair, 125)
	stats.RecordBonus(game.SideBetTwentyOnePlus, 150)
	stats.RecordBonus(game.SideBetTop3, 450)
	stats.RecordBonus(game.SideBetLuckyPair, 30)

	if stats.LuckyPairWins != 2 {
		t.Errorf("Expected 2 lucky pair wins, got %d", stats.LuckyPairWins)
	}
	if stats.TwentyOnePlusWins != 1 {
		t.Errorf("Expected 1 21+3 win, got %d", stats.TwentyOnePlusWins)
	}
	if stats.Top3Wins != 1 {
		t.Errorf("Expected 1 top 3 win, got %d", stats.Top3Wins)
	}
	if stats.BonusWinnings != 755 {
		t.Errorf("Expected 755 bonus winnings, got %d", stats.BonusWinnings)
	}
	if stats.NetChips != 755 {
		t.Errorf("Expected bonuses in net chips, got %d", stats.NetChips)
	}
}

func TestMerge(t *testing.T) {
	a := &Statistics{HandsPlayed: 10, Wins: 6, Losses: 4, BiggestWin: 200, NetChips: 150}
	b := &Statistics{HandsPlayed: 5, Wins: 2, Losses: 3, BiggestWin: 500, NetChips: -80}

	a.Merge(b)

	if a.HandsPlayed != 15 {
		t.Errorf("Expected 15 hands after merge, got %d", a.HandsPlayed)
	}
	if a.Wins != 8 || a.Losses != 7 {
		t.Errorf("Expected 8/7 wins/losses, got %d/%d", a.Wins, a.Losses)
	}
	if a.BiggestWin != 500 {
		t.Errorf("Expected biggest win of 500, got %d", a.BiggestWin)
	}
	if a.NetChips != 70 {
		t.Errorf("Expected net of 70, got %d", a.NetChips)
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "stats.json")

	stats := &Statistics{}
	stats.RecordHand(game.OutcomeWin, 100)
	stats.RecordBonus(game.SideBetLuckyPair, 125)

	if err := stats.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *loaded != *stats {
		t.Errorf("Loaded stats mismatch: got %+v, want %+v", loaded, stats)
	}
}

func TestLoadMissingFileIsFresh(t *testing.T) {
	t.Parallel()

	stats, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load of missing file failed: %v", err)
	}
	if stats.HandsPlayed != 0 {
		t.Errorf("Expected fresh stats, got %+v", stats)
	}
}

func TestLoadCorruptFileIsFresh(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "stats.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	stats, err := Load(path)
	if err != nil {
		t.Fatalf("Load of corrupt file failed: %v", err)
	}
	if *stats != (Statistics{}) {
		t.Errorf("Expected fresh stats from corrupt file, got %+v", stats)
	}
}

func TestLoadZeroesMalformedFields(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "stats.json")
	content := `{"handsPlayed": 12, "wins": "abc", "losses": -3, "pushes": 1.5, "netChips": -40}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	stats, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if stats.HandsPlayed != 12 {
		t.Errorf("Expected valid field kept, got %d", stats.HandsPlayed)
	}
	if stats.Wins != 0 {
		t.Errorf("Expected non-numeric wins zeroed, got %d", stats.Wins)
	}
	if stats.Losses != 0 {
		t.Errorf("Expected negative losses zeroed, got %d", stats.Losses)
	}
	if stats.Pushes != 0 {
		t.Errorf("Expected fractional pushes zeroed, got %d", stats.Pushes)
	}
	// A losing session legitimately has negative net chips.
	if stats.NetChips != -40 {
		t.Errorf("Expected negative net chips kept, got %d", stats.NetChips)
	}
}

func TestReset(t *testing.T) {
	stats := &Statistics{}
	stats.RecordHand(game.OutcomeWin, 100)
	stats.Reset()

	if *stats != (Statistics{}) {
		t.Errorf("Expected zeroed stats after reset, got %+v", stats)
	}
}
