package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/coder/quartz"
	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testModel builds a model over a stacked engine with an unpaced
// scheduler so tests can drain events synchronously.
func testModel(t *testing.T, cards string) *Model {
	t.Helper()
	engine := game.NewEngine(nil, game.DefaultConfig(),
		game.WithShoe(deck.NewStacked(deck.MustParseCards(cards)...)))
	m := NewModel(engine, WithScheduler(NewScheduler(quartz.NewMock(t), 0)))
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

func press(m *Model, key string) {
	var msg tea.Msg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	m.Update(msg)
}

func typeString(m *Model, s string) {
	for _, r := range s {
		press(m, string(r))
	}
}

// drain applies scheduled events until the scheduler goes quiet. The
// scheduler delivers from its own goroutine, so an empty channel does
// not mean the batch is done; waiting out a grace period does.
func drain(t *testing.T, m *Model) {
	t.Helper()
	for {
		select {
		case ev := <-m.scheduler.Events():
			m.Update(engineEventMsg{event: ev})
		case <-time.After(100 * time.Millisecond):
			return
		}
	}
}

func logText(m *Model) string {
	return strings.Join(m.history, "\n")
}

func TestModelPlaysBlackjackRound(t *testing.T) {
	m := testModel(t, "As9dKh9c")

	typeString(m, "100")
	press(m, "enter") // place bet
	require.Equal(t, game.PhaseBetting, m.snap.Phase)

	press(m, "enter") // deal
	drain(t, m)

	assert.Equal(t, game.PhaseSettled, m.snap.Phase)
	assert.Equal(t, 1150, m.snap.Chips)
	assert.Len(t, m.player, 2)
	assert.Len(t, m.dealer, 2)
	assert.False(t, m.dealer[0].hidden, "hole card revealed on settlement")
	assert.Contains(t, logText(m), "Blackjack!")

	press(m, "enter") // next round
	drain(t, m)
	assert.Equal(t, game.PhaseIdle, m.snap.Phase)
	assert.Empty(t, m.player)
}

func TestModelHitAndBust(t *testing.T) {
	m := testModel(t, "Ts2d6h9c7d")

	typeString(m, "50")
	press(m, "enter")
	press(m, "enter")
	drain(t, m)
	require.Equal(t, game.PhasePlayerTurn, m.snap.Phase)

	press(m, "h")
	drain(t, m)

	assert.Equal(t, game.PhaseSettled, m.snap.Phase)
	assert.Equal(t, 950, m.snap.Chips)
	assert.Contains(t, logText(m), "Dealer wins")
}

func TestModelRejectionShowsStatus(t *testing.T) {
	m := testModel(t, "Ts2d6h9c")

	typeString(m, "5000")
	press(m, "enter")

	assert.Equal(t, game.PhaseIdle, m.snap.Phase)
	assert.Contains(t, m.status, "not enough chips")
}

func TestModelInvalidBetInput(t *testing.T) {
	m := testModel(t, "Ts2d6h9c")

	typeString(m, "abc")
	press(m, "enter")
	assert.Contains(t, m.status, "bet must be a number")
}

func TestModelSideBetToggleKeys(t *testing.T) {
	m := testModel(t, "8s2d8s9c")

	press(m, "p")
	assert.Equal(t, 5, m.snap.SideBets[game.SideBetLuckyPair])

	press(m, "p")
	assert.Equal(t, 0, m.snap.SideBets[game.SideBetLuckyPair])
}

func TestModelDeckKeys(t *testing.T) {
	engine := game.NewEngine(nil, game.DefaultConfig())
	m := NewModel(engine, WithScheduler(NewScheduler(quartz.NewMock(t), 0)))
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	press(m, "]")
	drain(t, m)
	assert.Equal(t, 2, m.snap.Decks)

	press(m, "[")
	drain(t, m)
	assert.Equal(t, 1, m.snap.Decks)
}

func TestModelHintLine(t *testing.T) {
	m := testModel(t, "Ts2d6h9c")
	m.settings.SetHintsEnabled(true)

	typeString(m, "50")
	press(m, "enter")
	press(m, "enter")
	drain(t, m)
	require.Equal(t, game.PhasePlayerTurn, m.snap.Phase)

	// 16 against a 9 is a hit.
	view := m.View()
	assert.Contains(t, view, "Hint")
	assert.Contains(t, view, string(game.ActionHit))
}

func TestModelViewRendersTable(t *testing.T) {
	m := testModel(t, "Ts2d6h9c")

	typeString(m, "50")
	press(m, "enter")
	press(m, "enter")
	drain(t, m)

	view := m.View()
	assert.Contains(t, view, "Dealer:")
	assert.Contains(t, view, "You:")
	assert.Contains(t, view, "Chips: 1000")
	assert.Contains(t, view, hiddenCard)
}
