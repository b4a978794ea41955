package game

// Phase represents where the round state machine currently is. Operations
// are only legal in specific phases; anything else is rejected as a no-op.
type Phase int

const (
	// PhaseIdle means no bet has been placed yet.
	PhaseIdle Phase = iota
	// PhaseBetting means a main bet is down and the deal is awaited.
	PhaseBetting
	// PhaseInsurance means the dealer shows an ace and the player must
	// take or decline insurance before play continues.
	PhaseInsurance
	// PhasePlayerTurn means the player is acting on their hand.
	PhasePlayerTurn
	// PhaseDealerTurn means the dealer is drawing to 17.
	PhaseDealerTurn
	// PhaseSettled means the round is over and awaiting NewRound.
	PhaseSettled
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseBetting:
		return "betting"
	case PhaseInsurance:
		return "insurance"
	case PhasePlayerTurn:
		return "player_turn"
	case PhaseDealerTurn:
		return "dealer_turn"
	case PhaseSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Action identifies a player-facing engine operation. Snapshots carry the
// set of actions valid in the current phase so callers can enable and
// disable controls without re-deriving engine rules.
type Action string

const (
	ActionPlaceBet         Action = "bet"
	ActionToggleSideBet    Action = "side_bet"
	ActionDeal             Action = "deal"
	ActionHit              Action = "hit"
	ActionStand            Action = "stand"
	ActionDouble           Action = "double"
	ActionSurrender        Action = "surrender"
	ActionTakeInsurance    Action = "insurance_yes"
	ActionDeclineInsurance Action = "insurance_no"
	ActionNewRound         Action = "new_round"
)

// Outcome classifies how the main hand settled.
type Outcome string

const (
	OutcomeWin       Outcome = "win"
	OutcomeLose      Outcome = "lose"
	OutcomePush      Outcome = "push"
	OutcomeBlackjack Outcome = "blackjack"
	OutcomeSurrender Outcome = "surrender"
)

// SideBet identifies one of the three optional bonus wagers.
type SideBet string

const (
	SideBetLuckyPair     SideBet = "luckyPair"
	SideBetTwentyOnePlus SideBet = "twentyOnePlus"
	SideBetTop3          SideBet = "top3"
)
