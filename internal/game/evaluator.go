package game

import (
	"sort"

	"github.com/lox/blackjack-cli/internal/deck"
)

// HandTotal computes a hand's blackjack total with standard soft/hard ace
// resolution: aces start at 11 and are downgraded to 1 one at a time while
// the total exceeds 21. The result is the highest total not above 21 when
// one exists, otherwise the minimum possible total. An empty hand is 0.
func HandTotal(hand []deck.Card) int {
	total := 0
	aces := 0
	for _, c := range hand {
		total += c.BlackjackValue()
		if c.IsAce() {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

// IsSoft reports whether at least one ace is still counted as 11.
func IsSoft(hand []deck.Card) bool {
	total := 0
	aces := 0
	for _, c := range hand {
		total += c.BlackjackValue()
		if c.IsAce() {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return aces > 0
}

// IsBlackjack reports whether a hand is a natural: exactly two cards
// totalling 21. A three-card 21 is not a blackjack.
func IsBlackjack(hand []deck.Card) bool {
	return len(hand) == 2 && HandTotal(hand) == 21
}

// IsBust reports whether a hand's total exceeds 21.
func IsBust(hand []deck.Card) bool {
	return HandTotal(hand) > 21
}

// isFlush reports whether all cards share a suit.
func isFlush(cards []deck.Card) bool {
	for i := 1; i < len(cards); i++ {
		if cards[i].Suit != cards[0].Suit {
			return false
		}
	}
	return true
}

// isThreeOfAKind reports whether all three cards share a rank.
func isThreeOfAKind(cards []deck.Card) bool {
	return len(cards) == 3 &&
		cards[0].Rank == cards[1].Rank &&
		cards[1].Rank == cards[2].Rank
}

// isStraight reports whether three cards form consecutive ranks. The ace
// plays low (A-2-3) or high (Q-K-A); both readings are checked.
func isStraight(cards []deck.Card) bool {
	if len(cards) != 3 {
		return false
	}

	ranks := []int{cards[0].RankOrder(), cards[1].RankOrder(), cards[2].RankOrder()}
	sort.Ints(ranks)

	if ranks[1] == ranks[0]+1 && ranks[2] == ranks[1]+1 {
		return true
	}

	// Re-read the ace as 14 and try again.
	if ranks[0] == 1 {
		high := []int{ranks[1], ranks[2], 14}
		sort.Ints(high)
		return high[1] == high[0]+1 && high[2] == high[1]+1
	}

	return false
}
