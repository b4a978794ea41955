package game

import "github.com/lox/blackjack-cli/internal/deck"

// EventType represents a game event type with type safety
type EventType string

const (
	EventTypeBetPlaced        EventType = "bet_placed"
	EventTypeSideBetToggled   EventType = "side_bet_toggled"
	EventTypeCardDealt        EventType = "card_dealt"
	EventTypePhaseChanged     EventType = "phase_changed"
	EventTypeBonusPaid        EventType = "bonus_paid"
	EventTypeInsuranceOffered EventType = "insurance_offered"
	EventTypeInsuranceSettled EventType = "insurance_settled"
	EventTypeHoleCardRevealed EventType = "hole_card_revealed"
	EventTypeRoundSettled     EventType = "round_settled"
	EventTypeShoeShuffled     EventType = "shoe_shuffled"
	EventTypeBankrollReset    EventType = "bankroll_reset"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// Event is a discrete, already-computed state transition produced by an
// engine operation. Each operation returns its events in order; callers
// that want staggered card reveals or other pacing schedule the display of
// these events themselves. The engine has no notion of wall-clock delay.
type Event interface {
	EventType() EventType
}

// Seat identifies whose hand a card event belongs to.
type Seat int

const (
	SeatPlayer Seat = iota
	SeatDealer
)

// String returns the string representation of a seat
func (s Seat) String() string {
	if s == SeatDealer {
		return "dealer"
	}
	return "player"
}

// BetPlacedEvent is produced when the main bet is set or doubled.
type BetPlacedEvent struct {
	Amount int
}

func (e BetPlacedEvent) EventType() EventType { return EventTypeBetPlaced }

// SideBetToggledEvent is produced when a side bet is switched on or off.
type SideBetToggledEvent struct {
	Bet    SideBet
	Amount int
}

func (e SideBetToggledEvent) EventType() EventType { return EventTypeSideBetToggled }

// CardDealtEvent is produced for every card drawn from the shoe. The
// dealer's hole card is dealt with Hidden set.
type CardDealtEvent struct {
	Seat   Seat
	Card   deck.Card
	Hidden bool
}

func (e CardDealtEvent) EventType() EventType { return EventTypeCardDealt }

// PhaseChangedEvent is produced when the round state machine moves on.
type PhaseChangedEvent struct {
	From Phase
	To   Phase
}

func (e PhaseChangedEvent) EventType() EventType { return EventTypePhaseChanged }

// BonusPaidEvent is produced for each winning side bet, credited before
// any player action.
type BonusPaidEvent struct {
	Result BonusResult
}

func (e BonusPaidEvent) EventType() EventType { return EventTypeBonusPaid }

// InsuranceOfferedEvent is produced when the dealer shows an ace and the
// player can afford the premium.
type InsuranceOfferedEvent struct {
	Cost int
}

func (e InsuranceOfferedEvent) EventType() EventType { return EventTypeInsuranceOffered }

// InsuranceSettledEvent is produced once an insurance decision resolves.
// Payout is zero unless insurance was taken and the dealer had blackjack.
type InsuranceSettledEvent struct {
	Taken  bool
	Payout int
}

func (e InsuranceSettledEvent) EventType() EventType { return EventTypeInsuranceSettled }

// HoleCardRevealedEvent is produced when the dealer's hole card turns over.
type HoleCardRevealedEvent struct {
	Card deck.Card
}

func (e HoleCardRevealedEvent) EventType() EventType { return EventTypeHoleCardRevealed }

// RoundSettledEvent carries the final settlement for the round.
type RoundSettledEvent struct {
	Result SettlementResult
}

func (e RoundSettledEvent) EventType() EventType { return EventTypeRoundSettled }

// ShoeShuffledEvent is produced when the shoe is rebuilt, either at a
// round boundary after the penetration threshold was crossed or on an
// explicit deck-count change.
type ShoeShuffledEvent struct {
	CardsRemaining int
}

func (e ShoeShuffledEvent) EventType() EventType { return EventTypeShoeShuffled }

// BankrollResetEvent is produced when a bankrupt bankroll is replenished
// to the starting stake.
type BankrollResetEvent struct {
	Chips int
}

func (e BankrollResetEvent) EventType() EventType { return EventTypeBankrollReset }
