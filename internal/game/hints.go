package game

import "github.com/lox/blackjack-cli/internal/deck"

// Hint returns simplified basic-strategy advice for the player's total
// against the dealer's upcard. It only ever suggests hit or stand.
func Hint(playerTotal int, upcard deck.Card) Action {
	dealerValue := upcard.BlackjackValue()

	switch {
	case playerTotal <= 11:
		return ActionHit
	case playerTotal == 12:
		if dealerValue >= 4 && dealerValue <= 6 {
			return ActionStand
		}
		return ActionHit
	case playerTotal <= 16:
		if dealerValue >= 2 && dealerValue <= 6 {
			return ActionStand
		}
		return ActionHit
	default:
		return ActionStand
	}
}
