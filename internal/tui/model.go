// Package tui renders the blackjack table as a Bubble Tea program.
package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/game"
)

const (
	hiddenCard         = "🂠"
	defaultRevealDelay = 350 * time.Millisecond
)

// dealerCard is a dealt dealer card plus its face-down state. The display
// hand trails the engine while the scheduler paces reveals.
type dealerCard struct {
	card   deck.Card
	hidden bool
}

// Model is the Bubble Tea model for an interactive blackjack session.
type Model struct {
	engine    *game.Engine
	settings  *game.Settings
	scheduler *Scheduler
	logger    *log.Logger
	theme     Theme

	snap game.Snapshot

	// Display hands, fed by scheduled events rather than the snapshot.
	player []deck.Card
	dealer []dealerCard

	betInput    textinput.Model
	logViewport viewport.Model
	history     []string
	status      string

	width       int
	height      int
	initialized bool
	quitting    bool
}

// engineEventMsg wraps a scheduled engine event for the update loop.
type engineEventMsg struct {
	event game.Event
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithScheduler replaces the default real-clock scheduler.
func WithScheduler(s *Scheduler) ModelOption {
	return func(m *Model) { m.scheduler = s }
}

// WithTheme sets the color theme.
func WithTheme(t Theme) ModelOption {
	return func(m *Model) { m.theme = t }
}

// WithModelLogger attaches a logger.
func WithModelLogger(l *log.Logger) ModelOption {
	return func(m *Model) { m.logger = l }
}

// NewModel creates a table model around an engine.
func NewModel(engine *game.Engine, opts ...ModelOption) *Model {
	ti := textinput.New()
	ti.Placeholder = "bet amount"
	ti.CharLimit = 6
	ti.Width = 12
	ti.Prompt = "> "
	ti.Focus()

	vp := viewport.New(10, 5)
	vp.SetContent("")

	m := &Model{
		engine:      engine,
		settings:    engine.Settings(),
		theme:       ThemeByName("default"),
		snap:        engine.Snapshot(),
		betInput:    ti,
		logViewport: vp,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.scheduler == nil {
		m.scheduler = NewScheduler(quartz.NewReal(), revealDelay(m.settings))
	}
	if m.logger == nil {
		m.logger = log.Default().WithPrefix("tui")
	}
	return m
}

func revealDelay(s *game.Settings) time.Duration {
	if s.AnimationsEnabled {
		return defaultRevealDelay
	}
	return 0
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForEvent())
}

// waitForEvent delivers the next scheduled engine event as a message.
func (m *Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return engineEventMsg{event: <-m.scheduler.Events()}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sizeViewport()

	case engineEventMsg:
		m.applyEvent(msg.event)
		return m, m.waitForEvent()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		}
		if cmd := m.handleKey(msg); cmd != nil {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	if m.acceptingBetInput() {
		m.betInput, cmd = m.betInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) acceptingBetInput() bool {
	return m.snap.Phase == game.PhaseIdle || m.snap.Phase == game.PhaseBetting
}

// handleKey routes phase-specific keys. Returns nil when the key should
// fall through to the bet input.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	switch m.snap.Phase {
	case game.PhaseIdle, game.PhaseBetting:
		switch key {
		case "enter":
			return m.submitBet()
		case "p":
			m.run(func() ([]game.Event, error) { return m.engine.ToggleSideBet(game.SideBetLuckyPair) })
		case "t":
			m.run(func() ([]game.Event, error) { return m.engine.ToggleSideBet(game.SideBetTwentyOnePlus) })
		case "g":
			m.run(func() ([]game.Event, error) { return m.engine.ToggleSideBet(game.SideBetTop3) })
		case "[":
			m.run(func() ([]game.Event, error) { return m.engine.SetDecks(m.snap.Decks - 1) })
		case "]":
			m.run(func() ([]game.Event, error) { return m.engine.SetDecks(m.snap.Decks + 1) })
		case "?":
			m.settings.SetHintsEnabled(!m.settings.HintsEnabled)
		default:
			return nil
		}
		return noopCmd

	case game.PhaseInsurance:
		switch key {
		case "y":
			m.run(m.engine.TakeInsurance)
		case "n":
			m.run(m.engine.DeclineInsurance)
		}
		return noopCmd

	case game.PhasePlayerTurn:
		switch key {
		case "h":
			m.run(m.engine.Hit)
		case "s":
			m.run(m.engine.Stand)
		case "d":
			m.run(m.engine.DoubleDown)
		case "r":
			m.run(m.engine.Surrender)
		case "?":
			m.settings.SetHintsEnabled(!m.settings.HintsEnabled)
		}
		return noopCmd

	case game.PhaseSettled:
		switch key {
		case "enter", "n":
			m.player = nil
			m.dealer = nil
			m.run(m.engine.NewRound)
		}
		return noopCmd
	}

	return noopCmd
}

// noopCmd marks a key as consumed without emitting a message.
var noopCmd tea.Cmd = func() tea.Msg { return nil }

// submitBet places the typed bet, or deals when the bet is already down.
func (m *Model) submitBet() tea.Cmd {
	value := strings.TrimSpace(m.betInput.Value())
	if value != "" {
		amount, err := strconv.Atoi(value)
		if err != nil {
			m.status = m.theme.Error.Render("bet must be a number")
			return noopCmd
		}
		if !m.runOp(func() ([]game.Event, error) { return m.engine.PlaceBet(amount) }) {
			return noopCmd
		}
		m.betInput.SetValue("")
		return noopCmd
	}

	m.run(m.engine.Deal)
	return noopCmd
}

// run executes an engine operation, schedules its events and refreshes
// the snapshot. Rejections land in the status line.
func (m *Model) run(op func() ([]game.Event, error)) {
	m.runOp(op)
}

func (m *Model) runOp(op func() ([]game.Event, error)) bool {
	events, err := op()
	if err != nil {
		var invalid *game.InvalidActionError
		if errors.As(err, &invalid) {
			m.status = m.theme.Error.Render(invalid.Message)
		} else {
			m.status = m.theme.Error.Render(err.Error())
		}
		return false
	}
	m.status = ""
	m.scheduler.Schedule(events)
	m.snap = m.engine.Snapshot()
	return true
}

// applyEvent folds a scheduled event into the display state.
func (m *Model) applyEvent(ev game.Event) {
	switch ev := ev.(type) {
	case game.CardDealtEvent:
		if ev.Seat == game.SeatPlayer {
			m.player = append(m.player, ev.Card)
			m.addLog(fmt.Sprintf("You draw %s", m.formatCard(ev.Card)))
		} else if ev.Hidden {
			m.dealer = append(m.dealer, dealerCard{card: ev.Card, hidden: true})
			m.addLog("Dealer takes the hole card")
		} else {
			m.dealer = append(m.dealer, dealerCard{card: ev.Card})
			m.addLog(fmt.Sprintf("Dealer shows %s", m.formatCard(ev.Card)))
		}

	case game.HoleCardRevealedEvent:
		if len(m.dealer) > 0 {
			m.dealer[0].hidden = false
		}
		m.addLog(fmt.Sprintf("Dealer reveals %s", m.formatCard(ev.Card)))

	case game.BetPlacedEvent:
		m.addLog(fmt.Sprintf("Bet %d", ev.Amount))

	case game.SideBetToggledEvent:
		if ev.Amount > 0 {
			m.addLog(fmt.Sprintf("%s on for %d", sideBetLabel(ev.Bet), ev.Amount))
		} else {
			m.addLog(fmt.Sprintf("%s off", sideBetLabel(ev.Bet)))
		}

	case game.BonusPaidEvent:
		m.addLog(m.theme.Warning.Render(
			fmt.Sprintf("%s! %s pays %d", ev.Result.Name, sideBetLabel(ev.Result.Bet), ev.Result.Amount)))

	case game.InsuranceOfferedEvent:
		m.addLog(fmt.Sprintf("Insurance? Costs %d (y/n)", ev.Cost))

	case game.InsuranceSettledEvent:
		switch {
		case ev.Taken && ev.Payout > 0:
			m.addLog(m.theme.Success.Render(fmt.Sprintf("Insurance pays %d", ev.Payout)))
		case ev.Taken:
			m.addLog("No dealer blackjack, insurance lost")
		default:
			m.addLog("Insurance declined")
		}

	case game.RoundSettledEvent:
		m.addLog(m.formatOutcome(ev.Result))

	case game.ShoeShuffledEvent:
		m.addLog(fmt.Sprintf("Shoe shuffled, %d cards", ev.CardsRemaining))

	case game.BankrollResetEvent:
		m.addLog(m.theme.Warning.Render(fmt.Sprintf("Bankroll busted, back to %d chips", ev.Chips)))
	}
}

func (m *Model) formatOutcome(result game.SettlementResult) string {
	switch result.Outcome {
	case game.OutcomeBlackjack:
		return m.theme.Success.Render(fmt.Sprintf("Blackjack! +%d", result.ChipDelta))
	case game.OutcomeWin:
		return m.theme.Success.Render(fmt.Sprintf("You win +%d", result.ChipDelta))
	case game.OutcomeLose:
		return m.theme.Error.Render(fmt.Sprintf("Dealer wins %d", result.ChipDelta))
	case game.OutcomeSurrender:
		return m.theme.Info.Render(fmt.Sprintf("Surrendered %d", result.ChipDelta))
	default:
		return m.theme.Info.Render("Push, bet returned")
	}
}

func (m *Model) addLog(entry string) {
	m.history = append(m.history, entry)
	m.logViewport.SetContent(strings.Join(m.history, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

func (m *Model) sizeViewport() {
	height := m.height - lipgloss.Height(m.renderTable()) - 4
	if height < 1 {
		height = 1
	}
	width := m.width - 4
	if width < 1 {
		width = 1
	}
	m.logViewport.Width = width
	m.logViewport.Height = height
	if !m.initialized && width > 1 && height > 1 {
		m.logViewport.GotoBottom()
		m.initialized = true
	}
}

// View renders the table
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	table := m.renderTable()

	logStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(m.logViewport.Width).
		Height(m.logViewport.Height)

	return lipgloss.JoinVertical(lipgloss.Top,
		table,
		logStyle.Render(m.logViewport.View()))
}

func (m *Model) renderTable() string {
	var b strings.Builder

	b.WriteString(m.theme.Header.Render(" Blackjack "))
	b.WriteString("\n\n")

	b.WriteString(m.renderDealerLine())
	b.WriteString("\n")
	b.WriteString(m.renderPlayerLine())
	b.WriteString("\n\n")
	b.WriteString(m.renderChipsLine())
	b.WriteString("\n")
	b.WriteString(m.renderShoeLine())
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if hint := m.renderHint(); hint != "" {
		b.WriteString(hint)
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Info.Render(m.helpLine()))

	return m.theme.Felt.Render(b.String())
}

func (m *Model) renderDealerLine() string {
	if len(m.dealer) == 0 {
		return m.theme.HandInfo.Render("Dealer:") + " -"
	}

	var cards []string
	visible := make([]deck.Card, 0, len(m.dealer))
	hidden := false
	for _, dc := range m.dealer {
		if dc.hidden {
			cards = append(cards, m.theme.CardBack.Render(hiddenCard))
			hidden = true
			continue
		}
		cards = append(cards, m.formatCard(dc.card))
		visible = append(visible, dc.card)
	}

	total := strconv.Itoa(game.HandTotal(visible))
	if hidden {
		total += "+?"
	}
	return fmt.Sprintf("%s %s  (%s)",
		m.theme.HandInfo.Render("Dealer:"), strings.Join(cards, " "), total)
}

func (m *Model) renderPlayerLine() string {
	if len(m.player) == 0 {
		return m.theme.HandInfo.Render("You:   ") + " -"
	}

	var cards []string
	for _, c := range m.player {
		cards = append(cards, m.formatCard(c))
	}
	total := game.HandTotal(m.player)

	line := fmt.Sprintf("%s %s  (%d)",
		m.theme.HandInfo.Render("You:   "), strings.Join(cards, " "), total)
	if game.IsSoft(m.player) {
		line += m.theme.Info.Render(" soft")
	}
	return line
}

func (m *Model) renderChipsLine() string {
	parts := []string{
		m.theme.Warning.Render(fmt.Sprintf("Chips: %d", m.snap.Chips)),
	}
	if m.snap.CurrentBet > 0 {
		parts = append(parts, fmt.Sprintf("Bet: %d", m.snap.CurrentBet))
	}
	for _, bet := range []game.SideBet{game.SideBetLuckyPair, game.SideBetTwentyOnePlus, game.SideBetTop3} {
		if amount := m.snap.SideBets[bet]; amount > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", sideBetLabel(bet), amount))
		}
	}
	return strings.Join(parts, "  ")
}

func (m *Model) renderShoeLine() string {
	line := fmt.Sprintf("Shoe: %d decks, %d cards (%d%% dealt)",
		m.snap.Decks, m.snap.CardsRemaining, m.snap.Penetration)
	if m.snap.ShufflePending {
		line += " " + m.theme.Warning.Render("shuffle pending")
	}
	return m.theme.Info.Render(line)
}

func (m *Model) renderHint() string {
	if !m.settings.HintsEnabled || m.snap.Phase != game.PhasePlayerTurn {
		return ""
	}
	if len(m.dealer) < 2 || len(m.player) == 0 {
		return ""
	}
	upcard := m.dealer[len(m.dealer)-1].card
	hint := game.Hint(game.HandTotal(m.player), upcard)
	return m.theme.Actions.Render(fmt.Sprintf("Hint: %s", hint))
}

func (m *Model) helpLine() string {
	switch m.snap.Phase {
	case game.PhaseIdle, game.PhaseBetting:
		help := "type a bet, enter to place"
		if m.snap.Phase == game.PhaseBetting {
			help = "enter to deal"
		}
		return m.betInput.View() + "\n" +
			help + " • p/t/g side bets • [/] decks • ? hints • q quit"
	case game.PhaseInsurance:
		return "y take insurance • n decline"
	case game.PhasePlayerTurn:
		help := "h hit • s stand"
		for _, action := range m.snap.Actions {
			switch action {
			case game.ActionDouble:
				help += " • d double"
			case game.ActionSurrender:
				help += " • r surrender"
			}
		}
		return help + " • ? hints"
	case game.PhaseSettled:
		return "enter for next round • q quit"
	default:
		return ""
	}
}

func (m *Model) formatCard(card deck.Card) string {
	if card.IsRed() {
		return m.theme.RedCard.Render(card.String())
	}
	return m.theme.BlackCard.Render(card.String())
}

func sideBetLabel(bet game.SideBet) string {
	switch bet {
	case game.SideBetLuckyPair:
		return "Lucky Pair"
	case game.SideBetTwentyOnePlus:
		return "21+3"
	case game.SideBetTop3:
		return "Top 3"
	default:
		return string(bet)
	}
}
