package game

import "github.com/lox/blackjack-cli/internal/deck"

// BonusResult records a winning side bet: which wager hit, the hand shape
// it matched, the payout multiplier and the amount credited.
type BonusResult struct {
	Bet    SideBet
	Name   string
	Payout int
	Amount int
}

// threeCardRow is one entry of a 3-card bonus paytable, checked in order;
// the first matching shape wins and nothing stacks.
type threeCardRow struct {
	name   string
	match  func(cards []deck.Card) bool
	payout int
}

func suitedTrips(cards []deck.Card) bool { return isThreeOfAKind(cards) && isFlush(cards) }
func straightFlush(cards []deck.Card) bool {
	return isStraight(cards) && isFlush(cards)
}

// twentyOnePlusThreeTable is the 21+3 paytable.
var twentyOnePlusThreeTable = []threeCardRow{
	{"Suited Three of a Kind", suitedTrips, 100},
	{"Straight Flush", straightFlush, 40},
	{"Three of a Kind", isThreeOfAKind, 30},
	{"Straight", isStraight, 10},
	{"Flush", isFlush, 5},
}

// top3Table uses the same hand shapes with steeper top-end payouts.
var top3Table = []threeCardRow{
	{"Suited Three of a Kind", suitedTrips, 270},
	{"Straight Flush", straightFlush, 180},
	{"Three of a Kind", isThreeOfAKind, 90},
	{"Straight", isStraight, 9},
	{"Flush", isFlush, 9},
}

// evaluateLuckyPair classifies the player's first two cards as a perfect,
// colored or mixed pair. Returns false when the ranks differ.
func evaluateLuckyPair(c1, c2 deck.Card) (string, int, bool) {
	if c1.Rank != c2.Rank {
		return "", 0, false
	}

	// Same rank and suit only occurs in multi-deck shoes.
	if c1.Suit == c2.Suit {
		return "Perfect Pair", 25, true
	}
	if c1.IsRed() == c2.IsRed() {
		return "Colored Pair", 12, true
	}
	return "Mixed Pair", 6, true
}

// evaluateThreeCard runs a 3-card set through a paytable and returns the
// highest-priority match.
func evaluateThreeCard(table []threeCardRow, cards []deck.Card) (string, int, bool) {
	for _, row := range table {
		if row.match(cards) {
			return row.name, row.payout, true
		}
	}
	return "", 0, false
}
