package simulator

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack-cli/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Rounds:   200,
		Sessions: 4,
		Decks:    2,
		Bet:      10,
		Seed:     42,
		Logger:   log.New(io.Discard),
	}
}

func TestRunPlaysEveryRound(t *testing.T) {
	stats, err := New(testConfig()).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 200, stats.HandsPlayed)
	assert.Equal(t, stats.HandsPlayed,
		stats.Wins+stats.Losses+stats.Pushes+stats.Surrenders,
		"every round has exactly one outcome")
	assert.Greater(t, stats.TotalWagered, 0)

	// The policy never surrenders or doubles.
	assert.Zero(t, stats.Surrenders)
}

func TestRunIsReproducible(t *testing.T) {
	cfg := testConfig()

	first, err := New(cfg).Run(context.Background())
	require.NoError(t, err)
	second, err := New(cfg).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second, "same seed must produce identical results")
}

func TestRunWithSideBets(t *testing.T) {
	cfg := testConfig()
	cfg.SideBets = []game.SideBet{game.SideBetLuckyPair, game.SideBetTwentyOnePlus}

	stats, err := New(cfg).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 200, stats.HandsPlayed)
	assert.Zero(t, stats.Top3Wins, "top 3 was not enabled")
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := testConfig()
	cfg.Rounds = 100000

	_, err := New(cfg).Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewAppliesDefaults(t *testing.T) {
	s := New(Config{Rounds: 10})
	assert.Equal(t, 1, s.config.Sessions)
	assert.Equal(t, 10, s.config.Bet)
}
