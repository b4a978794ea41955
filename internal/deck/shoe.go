package deck

import rand "math/rand/v2"

const (
	// MinDecks and MaxDecks bound how many decks a shoe may hold.
	MinDecks = 1
	MaxDecks = 8

	// penetrationCut is the fraction of the shoe that must remain before
	// a reshuffle is flagged. 25% remaining matches the 75% penetration
	// casinos typically deal to.
	penetrationCut = 0.25
)

// Shoe holds one or more shuffled decks that cards are drawn from during
// play. Once the remaining cards fall to the shuffle threshold the shoe is
// flagged for a reshuffle; the flag is sticky and only clears on Reset, so
// the reshuffle itself can be deferred to a round boundary.
type Shoe struct {
	cards            []Card
	decks            int
	totalCards       int
	shuffleThreshold int
	needsShuffle     bool
	rng              *rand.Rand
}

// NewShoe creates a shoe with the given number of decks, clamped to
// [MinDecks, MaxDecks], filled and shuffled with the provided RNG.
func NewShoe(rng *rand.Rand, decks int) *Shoe {
	s := &Shoe{rng: rng}
	s.Reset(decks)
	return s
}

// NewStacked creates a shoe preloaded with exactly the given cards, drawn
// in the order given. Used for deterministic tests; the threshold is
// disabled so no reshuffle is ever flagged.
func NewStacked(cards ...Card) *Shoe {
	// Draw pops from the end, so reverse to preserve caller order.
	stacked := make([]Card, len(cards))
	for i, c := range cards {
		stacked[len(cards)-1-i] = c
	}
	return &Shoe{
		cards:            stacked,
		decks:            1,
		totalCards:       len(cards),
		shuffleThreshold: -1,
	}
}

// Reset rebuilds the shoe with the given deck count (clamped), recomputes
// the shuffle threshold, clears the reshuffle flag and shuffles.
func (s *Shoe) Reset(decks int) {
	if decks < MinDecks {
		decks = MinDecks
	}
	if decks > MaxDecks {
		decks = MaxDecks
	}
	s.decks = decks

	s.cards = s.cards[:0]
	for d := 0; d < decks; d++ {
		for suit := Spades; suit <= Clubs; suit++ {
			for rank := Ace; rank <= King; rank++ {
				s.cards = append(s.cards, NewCard(suit, rank))
			}
		}
	}

	s.totalCards = len(s.cards)
	s.shuffleThreshold = int(float64(s.totalCards) * penetrationCut)
	s.needsShuffle = false
	s.Shuffle()
}

// Shuffle randomizes the order of the remaining cards with a Fisher-Yates
// shuffle. Every permutation is equally likely.
func (s *Shoe) Shuffle() {
	if s.rng == nil {
		return
	}
	for i := len(s.cards) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}

// Draw removes and returns the top card. Crossing the shuffle threshold
// sets the sticky reshuffle flag. An empty shoe triggers an emergency
// Reset so Draw always yields a card.
func (s *Shoe) Draw() Card {
	if len(s.cards) == 0 {
		s.Reset(s.decks)
	}

	card := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]

	if len(s.cards) <= s.shuffleThreshold {
		s.needsShuffle = true
	}
	return card
}

// ShouldShuffle reports whether the shoe has been flagged for a reshuffle.
func (s *Shoe) ShouldShuffle() bool {
	return s.needsShuffle
}

// CardsRemaining returns the number of undrawn cards.
func (s *Shoe) CardsRemaining() int {
	return len(s.cards)
}

// Decks returns the number of decks the shoe was built from.
func (s *Shoe) Decks() int {
	return s.decks
}

// Penetration returns the percentage of the shoe drawn since the last
// reset, floor-rounded.
func (s *Shoe) Penetration() int {
	if s.totalCards == 0 {
		return 0
	}
	return (s.totalCards - len(s.cards)) * 100 / s.totalCards
}
