package game

import "github.com/lox/blackjack-cli/internal/deck"

// Snapshot is a point-in-time view of the table, pulled by presentation
// collaborators after each operation. The dealer hand always carries every
// dealt card; while DealerHoleHidden is set the caller must mask the first
// card and DealerTotal covers only the visible ones.
type Snapshot struct {
	Phase Phase

	PlayerHand  []deck.Card
	PlayerTotal int

	DealerHand       []deck.Card
	DealerHoleHidden bool
	DealerTotal      int

	Chips        int
	CurrentBet   int
	InsuranceBet int
	SideBets     map[SideBet]int

	Decks          int
	CardsRemaining int
	Penetration    int
	ShufflePending bool

	Actions []Action
}

// Snapshot returns the current table view.
func (e *Engine) Snapshot() Snapshot {
	playerHand := make([]deck.Card, len(e.playerHand))
	copy(playerHand, e.playerHand)
	dealerHand := make([]deck.Card, len(e.dealerHand))
	copy(dealerHand, e.dealerHand)

	dealerTotal := HandTotal(dealerHand)
	if e.dealerHidden && len(dealerHand) > 1 {
		dealerTotal = HandTotal(dealerHand[1:])
	}

	sideBets := make(map[SideBet]int, len(e.sideBets))
	for bet, amount := range e.sideBets {
		sideBets[bet] = amount
	}

	return Snapshot{
		Phase:            e.phase,
		PlayerHand:       playerHand,
		PlayerTotal:      HandTotal(playerHand),
		DealerHand:       dealerHand,
		DealerHoleHidden: e.dealerHidden,
		DealerTotal:      dealerTotal,
		Chips:            e.chips,
		CurrentBet:       e.currentBet,
		InsuranceBet:     e.insuranceBet,
		SideBets:         sideBets,
		Decks:            e.shoe.Decks(),
		CardsRemaining:   e.shoe.CardsRemaining(),
		Penetration:      e.shoe.Penetration(),
		ShufflePending:   e.shoe.ShouldShuffle(),
		Actions:          e.availableActions(),
	}
}

// availableActions returns the operations valid in the current phase,
// filtered by their chip and hand-size preconditions.
func (e *Engine) availableActions() []Action {
	switch e.phase {
	case PhaseIdle:
		return []Action{ActionPlaceBet, ActionToggleSideBet}
	case PhaseBetting:
		return []Action{ActionPlaceBet, ActionToggleSideBet, ActionDeal}
	case PhaseInsurance:
		return []Action{ActionTakeInsurance, ActionDeclineInsurance}
	case PhasePlayerTurn:
		actions := []Action{ActionHit, ActionStand}
		if len(e.playerHand) == 2 && e.currentBet*2 <= e.chips {
			actions = append(actions, ActionDouble)
		}
		if e.canSurrender {
			actions = append(actions, ActionSurrender)
		}
		return actions
	case PhaseSettled:
		return []Action{ActionNewRound}
	default:
		return nil
	}
}
