package game

import "fmt"

// ReasonCode classifies why an operation was rejected.
type ReasonCode string

const (
	ReasonWrongPhase         ReasonCode = "wrong_phase"
	ReasonInvalidBet         ReasonCode = "invalid_bet"
	ReasonInsufficientChips  ReasonCode = "insufficient_chips"
	ReasonRoundActive        ReasonCode = "round_active"
	ReasonNotTwoCards        ReasonCode = "not_two_cards"
	ReasonSurrenderForfeited ReasonCode = "surrender_forfeited"
	ReasonUnknownSideBet     ReasonCode = "unknown_side_bet"
)

// InvalidActionError is returned when an operation is attempted in the
// wrong phase or violates a precondition. The engine never mutates state
// when returning one; the message is suitable for showing to the player.
type InvalidActionError struct {
	Code    ReasonCode
	Message string
}

func (e *InvalidActionError) Error() string {
	return e.Message
}

func rejected(code ReasonCode, format string, args ...any) *InvalidActionError {
	return &InvalidActionError{Code: code, Message: fmt.Sprintf(format, args...)}
}
