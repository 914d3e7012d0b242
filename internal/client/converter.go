package client

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/SscSPs/currency_converter_app/internal/utils"
	"github.com/shopspring/decimal"
)

// Messages shown to the user.
const (
	MsgInvalidAmount    = "Please enter a valid amount"
	MsgConversionFailed = "Conversion failed"
	MsgHistoryFailed    = "Failed to fetch history"
)

// State is the position of the submit flow.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSuccess
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// RateSource looks up the rate from the base currency to a target currency.
type RateSource interface {
	GetRate(ctx context.Context, currencyCode string) (decimal.Decimal, error)
}

// HistoryStore persists conversions and lists them newest first.
type HistoryStore interface {
	SaveConversion(ctx context.Context, conversion domain.Conversion) (*domain.Conversion, error)
	ListConversions(ctx context.Context) ([]domain.Conversion, error)
}

// Outcome is what the user sees after a submit.
type Outcome struct {
	State      State
	Message    string // result line on success, error line otherwise
	Conversion *domain.Conversion

	History        []domain.Conversion
	HistoryMessage string
}

// Converter runs the submit flow: validate, fetch rate, compute, save, refresh history.
// It is safe for use from a background goroutine while the UI polls State.
type Converter struct {
	rates   RateSource
	history HistoryStore
	logger  *slog.Logger
	now     func() time.Time

	mu    sync.Mutex
	state State
}

// NewConverter creates a Converter in the idle state.
func NewConverter(rates RateSource, history HistoryStore, logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{
		rates:   rates,
		history: history,
		logger:  logger,
		now:     time.Now,
		state:   StateIdle,
	}
}

// State returns the current flow state.
func (c *Converter) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Converter) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// ParseInput validates user input without touching the network.
// The amount must be a positive number and the currency must be in the catalog.
func ParseInput(amountInput, currencyInput string) (decimal.Decimal, string, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(amountInput))
	if err != nil {
		return decimal.Zero, "", fmt.Errorf("%w: amount %q is not a number", apperrors.ErrValidation, amountInput)
	}
	if err := domain.AmountBounds.Check(amount); err != nil {
		return decimal.Zero, "", fmt.Errorf("%w: amount is %v", apperrors.ErrValidation, err)
	}
	if !amount.IsPositive() {
		return decimal.Zero, "", fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	code := domain.NormalizeCurrencyCode(currencyInput)
	if !domain.IsSupportedCurrency(code) {
		return decimal.Zero, "", fmt.Errorf("%w: currency %q is not supported", apperrors.ErrValidation, currencyInput)
	}
	return amount, code, nil
}

// Submit converts amountInput USD into currencyInput and records the conversion.
// Invalid input leaves the flow idle and makes no network call. Any failure after
// validation moves the flow to failed; the returned error keeps the underlying cause.
func (c *Converter) Submit(ctx context.Context, amountInput, currencyInput string) (Outcome, error) {
	amount, code, err := ParseInput(amountInput, currencyInput)
	if err != nil {
		c.setState(StateIdle)
		return Outcome{State: StateIdle, Message: MsgInvalidAmount}, err
	}

	c.setState(StateSubmitting)
	logger := c.logger.With(slog.String("amount", amount.String()), slog.String("target_currency", code))

	rate, err := c.rates.GetRate(ctx, code)
	if err != nil {
		logger.Error("Failed to fetch exchange rate", slog.String("error", err.Error()))
		return c.fail(fmt.Errorf("fetch rate: %w", err))
	}

	record := domain.Conversion{
		Amount:         amount,
		TargetCurrency: code,
		Result:         domain.Convert(amount, rate),
		Timestamp:      c.now().UTC(),
	}
	if err := domain.ResultBounds.Check(record.Result); err != nil {
		logger.Error("Computed result out of range", slog.String("error", err.Error()))
		return c.fail(apperrors.NewUpstreamDataError("result is " + err.Error()))
	}
	logger.Debug("Computed conversion", slog.String("rate", rate.String()), slog.String("result", record.Result.String()))

	saved, err := c.history.SaveConversion(ctx, record)
	if err != nil {
		logger.Error("Failed to save conversion", slog.String("error", err.Error()))
		return c.fail(fmt.Errorf("save conversion: %w", err))
	}

	c.setState(StateSuccess)
	out := Outcome{
		State:      StateSuccess,
		Message:    utils.FormatResult(saved.Result, saved.TargetCurrency),
		Conversion: saved,
	}
	out.History, out.HistoryMessage, _ = c.LoadHistory(ctx)
	return out, nil
}

func (c *Converter) fail(err error) (Outcome, error) {
	c.setState(StateFailed)
	return Outcome{State: StateFailed, Message: MsgConversionFailed}, err
}

// LoadHistory fetches the full history. On failure it returns an empty list and
// the message to display.
func (c *Converter) LoadHistory(ctx context.Context) ([]domain.Conversion, string, error) {
	entries, err := c.history.ListConversions(ctx)
	if err != nil {
		c.logger.Error("Failed to fetch history", slog.String("error", err.Error()))
		return []domain.Conversion{}, MsgHistoryFailed, err
	}
	return entries, "", nil
}
