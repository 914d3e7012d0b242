// Package converter is the interactive single-screen conversion form.
package converter

import (
	"context"
	"strings"

	"github.com/SscSPs/currency_converter_app/internal/client"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/SscSPs/currency_converter_app/internal/tui"
	"github.com/SscSPs/currency_converter_app/internal/utils"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Submitter is the part of client.Converter the form needs.
type Submitter interface {
	Submit(ctx context.Context, amountInput, currencyInput string) (client.Outcome, error)
	LoadHistory(ctx context.Context) ([]domain.Conversion, string, error)
}

type historyLoadedMsg struct {
	entries []domain.Conversion
	message string
}

type submittedMsg struct {
	outcome client.Outcome
}

// Model is the BubbleTea model for the conversion form.
type Model struct {
	ctx       context.Context
	submitter Submitter

	input       textinput.Model
	currencies  []string
	currencyIdx int

	submitting bool
	result     string
	failed     bool

	history    []domain.Conversion
	historyMsg string
}

// New creates the form with the amount field focused and the first catalog currency selected.
func New(ctx context.Context, submitter Submitter) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter amount in USD"
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 24
	ti.Prompt = "$ "
	ti.PromptStyle = tui.LabelStyle

	return Model{
		ctx:        ctx,
		submitter:  submitter,
		input:      ti,
		currencies: domain.SupportedCurrencyCodes(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadHistory())
}

func (m Model) loadHistory() tea.Cmd {
	return func() tea.Msg {
		entries, message, _ := m.submitter.LoadHistory(m.ctx)
		return historyLoadedMsg{entries: entries, message: message}
	}
}

func (m Model) submit(amount, currency string) tea.Cmd {
	return func() tea.Msg {
		outcome, _ := m.submitter.Submit(m.ctx, amount, currency)
		return submittedMsg{outcome: outcome}
	}
}

// SelectedCurrency is the currently highlighted target currency.
func (m Model) SelectedCurrency() string {
	return m.currencies[m.currencyIdx]
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyLeft, tea.KeyShiftTab:
			m.currencyIdx = (m.currencyIdx + len(m.currencies) - 1) % len(m.currencies)
			return m, nil

		case tea.KeyRight, tea.KeyTab:
			m.currencyIdx = (m.currencyIdx + 1) % len(m.currencies)
			return m, nil

		case tea.KeyEnter:
			if m.submitting {
				return m, nil
			}
			// Invalid input is reported without issuing any request.
			if _, _, err := client.ParseInput(m.input.Value(), m.SelectedCurrency()); err != nil {
				m.result = client.MsgInvalidAmount
				m.failed = true
				return m, nil
			}
			m.submitting = true
			m.result = ""
			m.failed = false
			return m, m.submit(m.input.Value(), m.SelectedCurrency())
		}

	case historyLoadedMsg:
		m.history = msg.entries
		m.historyMsg = msg.message
		return m, nil

	case submittedMsg:
		m.submitting = false
		m.result = msg.outcome.Message
		m.failed = msg.outcome.State != client.StateSuccess
		if msg.outcome.State == client.StateSuccess {
			m.history = msg.outcome.History
			m.historyMsg = msg.outcome.HistoryMessage
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(tui.TitleStyle.Render("Currency Converter") + "\n")

	sb.WriteString(tui.LabelStyle.Render("Amount (USD)") + "\n")
	sb.WriteString(m.input.View() + "\n\n")

	sb.WriteString(tui.LabelStyle.Render("Target currency") + "\n")
	items := make([]string, len(m.currencies))
	for i, code := range m.currencies {
		if i == m.currencyIdx {
			items[i] = tui.SelectedStyle.Render(code)
		} else {
			items[i] = tui.MutedStyle.Render(" " + code + " ")
		}
	}
	sb.WriteString(strings.Join(items, " ") + "\n\n")

	switch {
	case m.submitting:
		sb.WriteString(tui.MutedStyle.Render("Converting...") + "\n\n")
	case m.result != "" && m.failed:
		sb.WriteString(tui.ErrorStyle.Render(m.result) + "\n\n")
	case m.result != "":
		sb.WriteString(tui.SuccessStyle.Render(m.result) + "\n\n")
	}

	sb.WriteString(tui.LabelStyle.Render("History") + "\n")
	if m.historyMsg != "" {
		sb.WriteString(tui.ErrorStyle.Render(m.historyMsg) + "\n")
	}
	if len(m.history) == 0 && m.historyMsg == "" {
		sb.WriteString(tui.MutedStyle.Render("No conversions yet") + "\n")
	}
	for _, c := range m.history {
		sb.WriteString("  " + utils.FormatHistoryLine(c) + "\n")
	}

	sb.WriteString("\n" + tui.MutedStyle.Render("←→: currency • Enter: convert • Esc: quit"))
	return sb.String()
}
