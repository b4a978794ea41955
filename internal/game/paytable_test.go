package game

import (
	"testing"

	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateLuckyPair(t *testing.T) {
	tests := []struct {
		name    string
		cards   string
		hand    string
		payout  int
		winning bool
	}{
		{"perfect pair", "8s8s", "Perfect Pair", 25, true},
		{"colored pair black", "8s8c", "Colored Pair", 12, true},
		{"colored pair red", "8h8d", "Colored Pair", 12, true},
		{"mixed pair", "8s8h", "Mixed Pair", 6, true},
		{"no pair", "8s9s", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards := deck.MustParseCards(tt.cards)
			name, payout, ok := evaluateLuckyPair(cards[0], cards[1])
			assert.Equal(t, tt.winning, ok)
			assert.Equal(t, tt.hand, name)
			assert.Equal(t, tt.payout, payout)
		})
	}
}

func TestEvaluateTwentyOnePlusThree(t *testing.T) {
	tests := []struct {
		name    string
		cards   string
		hand    string
		payout  int
		winning bool
	}{
		{"suited trips", "8s8s8s", "Suited Three of a Kind", 100, true},
		{"straight flush", "5s6s7s", "Straight Flush", 40, true},
		{"trips", "8s8h8d", "Three of a Kind", 30, true},
		{"straight", "5s6h7d", "Straight", 10, true},
		{"ace high straight", "QsKhAd", "Straight", 10, true},
		{"flush", "2s9sKs", "Flush", 5, true},
		{"nothing", "2s9hKd", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, payout, ok := evaluateThreeCard(twentyOnePlusThreeTable, deck.MustParseCards(tt.cards))
			assert.Equal(t, tt.winning, ok)
			assert.Equal(t, tt.hand, name)
			assert.Equal(t, tt.payout, payout)
		})
	}
}

func TestEvaluateTop3(t *testing.T) {
	tests := []struct {
		cards  string
		hand   string
		payout int
	}{
		{"8s8s8s", "Suited Three of a Kind", 270},
		{"5s6s7s", "Straight Flush", 180},
		{"8s8h8d", "Three of a Kind", 90},
		{"5s6h7d", "Straight", 9},
		{"2s9sKs", "Flush", 9},
	}

	for _, tt := range tests {
		t.Run(tt.hand, func(t *testing.T) {
			name, payout, ok := evaluateThreeCard(top3Table, deck.MustParseCards(tt.cards))
			require.True(t, ok)
			assert.Equal(t, tt.hand, name)
			assert.Equal(t, tt.payout, payout)
		})
	}
}

func TestHighestMatchWinsNoStacking(t *testing.T) {
	// A straight flush is also a straight and a flush; only the straight
	// flush row may pay.
	name, payout, ok := evaluateThreeCard(twentyOnePlusThreeTable, deck.MustParseCards("5s6s7s"))
	require.True(t, ok)
	assert.Equal(t, "Straight Flush", name)
	assert.Equal(t, 40, payout)
}
