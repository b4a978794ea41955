package game

import (
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack-cli/internal/deck"
)

// Recorder receives settlement results once per round and bonus payouts as
// they happen. The engine persists nothing itself.
type Recorder interface {
	RecordHand(outcome Outcome, bet int)
	RecordBonus(bet SideBet, amount int)
}

// SettlementResult is produced once per round and handed to the recorder
// and the caller. ChipDelta covers the main hand only; bonus payouts are
// itemized separately because they were credited at deal time.
type SettlementResult struct {
	Outcome      Outcome
	ChipDelta    int
	BonusResults []BonusResult
}

// Config holds the table parameters for an engine instance.
type Config struct {
	Decks         int
	StartingChips int
	SideBetAmount int
}

// DefaultConfig returns a single-deck table with the standard bankroll.
func DefaultConfig() Config {
	return Config{
		Decks:         1,
		StartingChips: 1000,
		SideBetAmount: 5,
	}
}

// Engine is the blackjack round state machine. It owns the shoe, both
// hands and all chip accounting for one session. Every operation is a
// synchronous state transition that either mutates and returns its events
// in order, or rejects as a no-op with an InvalidActionError. There is no
// internal concurrency; one engine serves one session.
type Engine struct {
	shoe     *deck.Shoe
	logger   *log.Logger
	settings *Settings
	recorder Recorder
	cfg      Config

	phase        Phase
	chips        int
	currentBet   int
	insuranceBet int
	sideBets     map[SideBet]int
	canSurrender bool
	hasInsurance bool
	dealerHidden bool

	playerHand []deck.Card
	dealerHand []deck.Card

	roundBonuses []BonusResult
	lastResult   *SettlementResult

	pending []Event
}

// Option configures an Engine.
type Option func(*Engine)

// WithShoe replaces the engine's shoe, usually with a stacked one for
// deterministic tests.
func WithShoe(s *deck.Shoe) Option {
	return func(e *Engine) { e.shoe = s }
}

// WithRecorder attaches a statistics recorder.
func WithRecorder(r Recorder) Option {
	return func(e *Engine) { e.recorder = r }
}

// WithSettings attaches a shared settings struct.
func WithSettings(s *Settings) Option {
	return func(e *Engine) { e.settings = s }
}

// WithLogger attaches a logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine creates an engine with a freshly shuffled shoe.
func NewEngine(rng *rand.Rand, cfg Config, opts ...Option) *Engine {
	if cfg.Decks == 0 {
		cfg.Decks = DefaultConfig().Decks
	}
	if cfg.StartingChips == 0 {
		cfg.StartingChips = DefaultConfig().StartingChips
	}
	if cfg.SideBetAmount == 0 {
		cfg.SideBetAmount = DefaultConfig().SideBetAmount
	}

	e := &Engine{
		cfg:          cfg,
		phase:        PhaseIdle,
		chips:        cfg.StartingChips,
		sideBets:     map[SideBet]int{},
		canSurrender: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.shoe == nil {
		e.shoe = deck.NewShoe(rng, cfg.Decks)
	}
	if e.settings == nil {
		e.settings = DefaultSettings()
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	return e
}

// Chips returns the current bankroll.
func (e *Engine) Chips() int { return e.chips }

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// LastResult returns the most recent settlement, or nil before the first
// settled round.
func (e *Engine) LastResult() *SettlementResult { return e.lastResult }

// Settings returns the settings struct the engine consults.
func (e *Engine) Settings() *Settings { return e.settings }

// roundActive reports whether cards are in play and chips are at stake.
func (e *Engine) roundActive() bool {
	switch e.phase {
	case PhaseInsurance, PhasePlayerTurn, PhaseDealerTurn:
		return true
	default:
		return false
	}
}

func (e *Engine) begin() {
	e.pending = e.pending[:0]
}

func (e *Engine) emit(ev Event) {
	e.pending = append(e.pending, ev)
}

func (e *Engine) collect() []Event {
	events := make([]Event, len(e.pending))
	copy(events, e.pending)
	return events
}

func (e *Engine) setPhase(p Phase) {
	if p == e.phase {
		return
	}
	e.emit(PhaseChangedEvent{From: e.phase, To: p})
	e.phase = p
}

func (e *Engine) sideBetTotal() int {
	total := 0
	for _, amount := range e.sideBets {
		total += amount
	}
	return total
}

// PlaceBet sets the main bet for the next round. Valid in Idle or Betting
// with a positive amount the bankroll can cover.
func (e *Engine) PlaceBet(amount int) ([]Event, error) {
	if e.phase != PhaseIdle && e.phase != PhaseBetting {
		return nil, rejected(ReasonWrongPhase, "cannot bet during a round")
	}
	if amount <= 0 {
		return nil, rejected(ReasonInvalidBet, "invalid bet amount")
	}
	if amount > e.chips {
		return nil, rejected(ReasonInsufficientChips, "not enough chips")
	}

	e.begin()
	e.currentBet = amount
	e.emit(BetPlacedEvent{Amount: amount})
	e.setPhase(PhaseBetting)
	e.logger.Debug("Bet placed", "amount", amount, "chips", e.chips)
	return e.collect(), nil
}

// ToggleSideBet switches one of the fixed-size side bets on or off.
// Enabling a bet is rejected when the combined main and side bets would
// exceed the bankroll.
func (e *Engine) ToggleSideBet(bet SideBet) ([]Event, error) {
	if e.phase != PhaseIdle && e.phase != PhaseBetting {
		return nil, rejected(ReasonWrongPhase, "cannot change side bets during a round")
	}
	switch bet {
	case SideBetLuckyPair, SideBetTwentyOnePlus, SideBetTop3:
	default:
		return nil, rejected(ReasonUnknownSideBet, "unknown side bet %q", bet)
	}

	e.begin()
	if e.sideBets[bet] > 0 {
		e.sideBets[bet] = 0
		e.emit(SideBetToggledEvent{Bet: bet, Amount: 0})
		return e.collect(), nil
	}

	if e.currentBet+e.sideBetTotal()+e.cfg.SideBetAmount > e.chips {
		return nil, rejected(ReasonInsufficientChips, "not enough chips for all bets")
	}
	e.sideBets[bet] = e.cfg.SideBetAmount
	e.emit(SideBetToggledEvent{Bet: bet, Amount: e.cfg.SideBetAmount})
	return e.collect(), nil
}

// Deal starts the round: debits side bets, deals player, hole, player,
// upcard, pays any bonuses, then routes to the insurance offer, an
// immediate blackjack settlement, or the player's turn.
func (e *Engine) Deal() ([]Event, error) {
	if e.phase != PhaseBetting {
		return nil, rejected(ReasonWrongPhase, "no bet placed")
	}
	if e.currentBet == 0 {
		return nil, rejected(ReasonInvalidBet, "no bet placed")
	}
	if e.currentBet+e.sideBetTotal() > e.chips {
		return nil, rejected(ReasonInsufficientChips, "not enough chips for all bets")
	}

	e.begin()
	e.chips -= e.sideBetTotal()

	e.playerHand = e.playerHand[:0]
	e.dealerHand = e.dealerHand[:0]
	e.dealerHidden = true
	e.canSurrender = true
	e.hasInsurance = false
	e.insuranceBet = 0
	e.roundBonuses = nil
	e.lastResult = nil

	// Hole card first, face down; the upcard is the dealer's second.
	e.dealCard(SeatPlayer, false)
	e.dealCard(SeatDealer, true)
	e.dealCard(SeatPlayer, false)
	e.dealCard(SeatDealer, false)

	e.logger.Debug("Dealt",
		"player", e.playerHand,
		"upcard", e.dealerHand[1],
		"playerTotal", HandTotal(e.playerHand))

	e.payBonuses()

	upcard := e.dealerHand[1]
	insuranceCost := e.currentBet / 2
	if upcard.IsAce() && insuranceCost <= e.chips-e.currentBet {
		e.setPhase(PhaseInsurance)
		e.emit(InsuranceOfferedEvent{Cost: insuranceCost})
		return e.collect(), nil
	}

	if HandTotal(e.playerHand) == 21 {
		e.revealHole()
		if HandTotal(e.dealerHand) == 21 {
			e.settle(OutcomePush)
		} else {
			e.settle(OutcomeBlackjack)
		}
		return e.collect(), nil
	}

	e.setPhase(PhasePlayerTurn)
	return e.collect(), nil
}

func (e *Engine) dealCard(seat Seat, hidden bool) deck.Card {
	card := e.shoe.Draw()
	if seat == SeatPlayer {
		e.playerHand = append(e.playerHand, card)
	} else {
		e.dealerHand = append(e.dealerHand, card)
	}
	e.emit(CardDealtEvent{Seat: seat, Card: card, Hidden: hidden})
	return card
}

// payBonuses evaluates each active side bet against the initial cards and
// credits winnings immediately, independent of the main hand.
func (e *Engine) payBonuses() {
	if amount := e.sideBets[SideBetLuckyPair]; amount > 0 {
		if name, payout, ok := evaluateLuckyPair(e.playerHand[0], e.playerHand[1]); ok {
			e.creditBonus(SideBetLuckyPair, name, payout, amount)
		}
	}

	threeCards := []deck.Card{e.playerHand[0], e.playerHand[1], e.dealerHand[1]}
	if amount := e.sideBets[SideBetTwentyOnePlus]; amount > 0 {
		if name, payout, ok := evaluateThreeCard(twentyOnePlusThreeTable, threeCards); ok {
			e.creditBonus(SideBetTwentyOnePlus, name, payout, amount)
		}
	}
	if amount := e.sideBets[SideBetTop3]; amount > 0 {
		if name, payout, ok := evaluateThreeCard(top3Table, threeCards); ok {
			e.creditBonus(SideBetTop3, name, payout, amount)
		}
	}
}

func (e *Engine) creditBonus(bet SideBet, name string, payout, amount int) {
	win := amount * payout
	e.chips += win
	result := BonusResult{Bet: bet, Name: name, Payout: payout, Amount: win}
	e.roundBonuses = append(e.roundBonuses, result)
	e.emit(BonusPaidEvent{Result: result})
	if e.recorder != nil {
		e.recorder.RecordBonus(bet, win)
	}
	e.logger.Debug("Bonus paid", "bet", bet, "hand", name, "amount", win)
}

// TakeInsurance debits half the main bet. On a dealer blackjack the stake
// pays 2:1 and the main hand settles as a loss; otherwise play continues
// with the premium forfeited. Either way surrender is no longer available.
func (e *Engine) TakeInsurance() ([]Event, error) {
	if e.phase != PhaseInsurance {
		return nil, rejected(ReasonWrongPhase, "insurance not offered")
	}

	e.begin()
	e.insuranceBet = e.currentBet / 2
	e.chips -= e.insuranceBet
	e.hasInsurance = true
	e.canSurrender = false

	if HandTotal(e.dealerHand) == 21 {
		e.revealHole()
		payout := e.insuranceBet * 2
		e.chips += payout
		e.emit(InsuranceSettledEvent{Taken: true, Payout: payout})
		e.logger.Debug("Dealer blackjack, insurance paid", "payout", payout)
		e.settle(OutcomeLose)
		return e.collect(), nil
	}

	e.emit(InsuranceSettledEvent{Taken: true})
	e.setPhase(PhasePlayerTurn)
	return e.collect(), nil
}

// DeclineInsurance refuses the offer. A dealer blackjack settles the hand
// as a loss with no payout; otherwise play continues. Surrender is no
// longer available once the decision is made.
func (e *Engine) DeclineInsurance() ([]Event, error) {
	if e.phase != PhaseInsurance {
		return nil, rejected(ReasonWrongPhase, "insurance not offered")
	}

	e.begin()
	e.canSurrender = false
	e.emit(InsuranceSettledEvent{Taken: false})

	if HandTotal(e.dealerHand) == 21 {
		e.revealHole()
		e.settle(OutcomeLose)
		return e.collect(), nil
	}

	e.setPhase(PhasePlayerTurn)
	return e.collect(), nil
}

// Hit draws one card for the player. Busting settles the round; reaching
// 21 stands automatically when the auto-stand setting is on.
func (e *Engine) Hit() ([]Event, error) {
	if e.phase != PhasePlayerTurn {
		return nil, rejected(ReasonWrongPhase, "cannot hit now")
	}

	e.begin()
	e.hit()
	return e.collect(), nil
}

func (e *Engine) hit() {
	e.canSurrender = false
	card := e.dealCard(SeatPlayer, false)
	total := HandTotal(e.playerHand)
	e.logger.Debug("Player hits", "card", card, "total", total)

	if total > 21 {
		e.revealHole()
		e.settle(OutcomeLose)
		return
	}
	if total == 21 && e.settings.AutoStandOn21 {
		e.stand()
	}
}

// Stand ends the player's turn. The dealer reveals the hole card and draws
// to 17, then the totals are compared.
func (e *Engine) Stand() ([]Event, error) {
	if e.phase != PhasePlayerTurn {
		return nil, rejected(ReasonWrongPhase, "cannot stand now")
	}

	e.begin()
	e.stand()
	return e.collect(), nil
}

func (e *Engine) stand() {
	e.setPhase(PhaseDealerTurn)
	e.revealHole()

	for HandTotal(e.dealerHand) < 17 {
		card := e.dealCard(SeatDealer, false)
		e.logger.Debug("Dealer draws", "card", card, "total", HandTotal(e.dealerHand))
	}

	playerTotal := HandTotal(e.playerHand)
	dealerTotal := HandTotal(e.dealerHand)

	switch {
	case dealerTotal > 21:
		e.settle(OutcomeWin)
	case playerTotal > dealerTotal:
		e.settle(OutcomeWin)
	case playerTotal < dealerTotal:
		e.settle(OutcomeLose)
	default:
		e.settle(OutcomePush)
	}
}

// DoubleDown doubles the bet on a two-card hand, draws exactly one card
// and stands unless the draw busted the hand.
func (e *Engine) DoubleDown() ([]Event, error) {
	if e.phase != PhasePlayerTurn {
		return nil, rejected(ReasonWrongPhase, "cannot double now")
	}
	if len(e.playerHand) != 2 {
		return nil, rejected(ReasonNotTwoCards, "can only double on two cards")
	}
	if e.currentBet*2 > e.chips {
		return nil, rejected(ReasonInsufficientChips, "not enough chips to double")
	}

	e.begin()
	e.currentBet *= 2
	e.canSurrender = false
	e.emit(BetPlacedEvent{Amount: e.currentBet})
	e.logger.Debug("Double down", "bet", e.currentBet)

	e.hit()
	if e.phase == PhasePlayerTurn {
		e.stand()
	}
	return e.collect(), nil
}

// Surrender forfeits half the bet and ends the round without playing out
// the dealer hand. Only available before any hit, double or insurance
// decision this round.
func (e *Engine) Surrender() ([]Event, error) {
	if e.phase != PhasePlayerTurn {
		return nil, rejected(ReasonWrongPhase, "cannot surrender now")
	}
	if !e.canSurrender {
		return nil, rejected(ReasonSurrenderForfeited, "surrender no longer available")
	}

	e.begin()
	e.settle(OutcomeSurrender)
	return e.collect(), nil
}

// NewRound clears the table for the next bet.
func (e *Engine) NewRound() ([]Event, error) {
	if e.phase != PhaseSettled {
		return nil, rejected(ReasonWrongPhase, "round not settled")
	}

	e.begin()
	e.currentBet = 0
	e.insuranceBet = 0
	e.hasInsurance = false
	e.canSurrender = true
	e.dealerHidden = false
	for bet := range e.sideBets {
		e.sideBets[bet] = 0
	}
	e.playerHand = e.playerHand[:0]
	e.dealerHand = e.dealerHand[:0]
	e.setPhase(PhaseIdle)
	return e.collect(), nil
}

// SetDecks changes the shoe's deck count, rebuilding and reshuffling it.
// Rejected while a round is in progress.
func (e *Engine) SetDecks(decks int) ([]Event, error) {
	if e.roundActive() {
		return nil, rejected(ReasonRoundActive, "cannot change decks mid-round")
	}

	e.begin()
	e.shoe.Reset(decks)
	e.emit(ShoeShuffledEvent{CardsRemaining: e.shoe.CardsRemaining()})
	e.logger.Debug("Shoe rebuilt", "decks", e.shoe.Decks())
	return e.collect(), nil
}

func (e *Engine) revealHole() {
	if !e.dealerHidden {
		return
	}
	e.dealerHidden = false
	e.emit(HoleCardRevealedEvent{Card: e.dealerHand[0]})
}

// settle closes the round: applies the main-hand chip delta, records the
// hand, reshuffles a flagged shoe and replenishes a bankrupt bankroll.
func (e *Engine) settle(outcome Outcome) {
	var delta int
	switch outcome {
	case OutcomeWin:
		delta = e.currentBet
	case OutcomeLose:
		delta = -e.currentBet
	case OutcomeBlackjack:
		delta = e.currentBet * 3 / 2
	case OutcomeSurrender:
		delta = -(e.currentBet / 2)
	case OutcomePush:
		delta = 0
	}
	e.chips += delta

	result := SettlementResult{
		Outcome:      outcome,
		ChipDelta:    delta,
		BonusResults: e.roundBonuses,
	}
	e.lastResult = &result
	e.emit(RoundSettledEvent{Result: result})
	e.logger.Debug("Round settled", "outcome", outcome, "delta", delta, "chips", e.chips)

	if e.recorder != nil {
		e.recorder.RecordHand(outcome, e.currentBet)
	}

	e.setPhase(PhaseSettled)

	// Reshuffle only at the round boundary, never mid-round.
	if e.shoe.ShouldShuffle() {
		e.shoe.Reset(e.shoe.Decks())
		e.emit(ShoeShuffledEvent{CardsRemaining: e.shoe.CardsRemaining()})
		e.logger.Debug("Shoe reshuffled", "cards", e.shoe.CardsRemaining())
	}

	// House rule: a busted bankroll is topped back up.
	if e.chips <= 0 {
		e.chips = e.cfg.StartingChips
		e.emit(BankrollResetEvent{Chips: e.chips})
		e.logger.Info("Bankroll reset", "chips", e.chips)
	}
}
