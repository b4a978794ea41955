// Package game implements the core blackjack rules engine.
//
// The main type is Engine, the round state machine. It owns the shoe, the
// player and dealer hands and all chip accounting for one session, moving
// through Idle -> Betting -> Insurance -> PlayerTurn -> DealerTurn ->
// Settled and back. Operations outside their phase are rejected as no-ops
// with an InvalidActionError rather than panicking.
//
// # Basic Usage
//
// Create an engine and play a round:
//
//	e := game.NewEngine(randutil.New(seed), game.DefaultConfig())
//	e.PlaceBet(25)
//	events, _ := e.Deal()
//	// Inspect events, then act:
//	e.Hit()
//	e.Stand()
//	e.NewRound()
//
// # Deterministic Testing
//
// For exact card sequences inject a stacked shoe:
//
//	shoe := deck.NewStacked(deck.MustParseCards("AsTd5hKc")...)
//	e := game.NewEngine(nil, game.DefaultConfig(), game.WithShoe(shoe))
//
// # Architecture
//
// Every operation is a synchronous state transition returning the ordered
// events it produced; callers that want staggered card reveals schedule
// those events themselves. Rendering pulls a Snapshot on demand instead of
// reaching into engine fields. Statistics flow out through the narrow
// Recorder interface once per round.
package game
