package tui

import (
	"time"

	"github.com/coder/quartz"
	"github.com/lox/blackjack-cli/internal/game"
)

// Scheduler paces engine events for display. The engine settles a whole
// operation synchronously; the scheduler replays its events onto a
// channel, sleeping between card reveals so deals read like a dealer
// pitching cards. With a zero delay everything is forwarded immediately.
type Scheduler struct {
	clock quartz.Clock
	delay time.Duration
	out   chan game.Event
}

// NewScheduler creates a scheduler using the given clock. Tests pass a
// quartz mock to step through reveals without real sleeps.
func NewScheduler(clock quartz.Clock, delay time.Duration) *Scheduler {
	return &Scheduler{
		clock: clock,
		delay: delay,
		out:   make(chan game.Event, 64),
	}
}

// Events returns the channel the scheduler delivers on.
func (s *Scheduler) Events() <-chan game.Event {
	return s.out
}

// Schedule queues a batch of events for delivery in order. Card reveals
// after the first are delayed; everything else follows its predecessor
// immediately.
func (s *Scheduler) Schedule(events []game.Event) {
	batch := make([]game.Event, len(events))
	copy(batch, events)

	go func() {
		delivered := 0
		for _, ev := range batch {
			if s.delay > 0 && delivered > 0 && paced(ev) {
				timer := s.clock.NewTimer(s.delay)
				<-timer.C
			}
			if paced(ev) {
				delivered++
			}
			s.out <- ev
		}
	}()
}

// paced reports whether an event gets a delay in front of it.
func paced(ev game.Event) bool {
	switch ev.EventType() {
	case game.EventTypeCardDealt, game.EventTypeHoleCardRevealed:
		return true
	default:
		return false
	}
}
