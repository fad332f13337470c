package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/amqp"
	"fintrack/internal/core"
	"fintrack/internal/ledger"
	"fintrack/internal/report"
)

// Tracker orchestrates ledger mutations and event publishing
type Tracker struct {
	store      *ledger.Store
	amqpClient *amqp.Client
}

func NewTracker(store *ledger.Store, amqpClient *amqp.Client) *Tracker {
	return &Tracker{
		store:      store,
		amqpClient: amqpClient,
	}
}

// RecordTransaction appends a transaction to the ledger and publishes
// an event carrying the current month's spend versus the budget
func (t *Tracker) RecordTransaction(ctx context.Context, tx core.Transaction) (string, error) {
	// Append to the in-memory ledger first (fast, reliable)
	ref, err := t.store.Append(ctx, tx)
	if err != nil {
		return "", fmt.Errorf("record transaction: %w", err)
	}

	// Publish async event (non-blocking)
	if err := t.publishTransactionEvent(ctx, ref, tx); err != nil {
		slog.ErrorContext(ctx, "Failed to publish transaction event",
			"ref", ref, "error", err)
		// Don't fail the request - transaction is recorded locally
	}

	return ref, nil
}

// AddCategory adds a category to the ledger's working set
func (t *Tracker) AddCategory(ctx context.Context, name string) bool {
	return t.store.AddCategory(ctx, name)
}

// RemoveCategory removes a category from the working set. Existing
// transactions keep their category string
func (t *Tracker) RemoveCategory(ctx context.Context, name string) bool {
	return t.store.RemoveCategory(ctx, name)
}

// SetBudget replaces the monthly budget
func (t *Tracker) SetBudget(ctx context.Context, cents int64) error {
	return t.store.SetBudget(ctx, cents)
}

func (t *Tracker) publishTransactionEvent(ctx context.Context, ref string, tx core.Transaction) error {
	if t.amqpClient == nil {
		slog.WarnContext(ctx, "AMQP client not available, skipping transaction event")
		return nil
	}

	txs := t.store.Transactions(ctx)
	budget := t.store.Budget(ctx)
	status := report.MonthlySpendVsBudget(txs, budget, core.Date{Time: time.Now().UTC()})

	event := amqp.NewTransactionEvent(ref, tx.Date.Format("2006-01-02"), tx.Category, string(tx.Type), tx.Amount.Cents)
	event.MonthExpenseCents = status.MonthExpenseCents
	event.BudgetCents = status.BudgetCents
	event.OverBudget = status.OverBudget

	return t.amqpClient.PublishTransactionEvent(ctx, event)
}

// Close closes the AMQP connection if present
func (t *Tracker) Close() error {
	if t.amqpClient != nil {
		if err := t.amqpClient.Close(); err != nil {
			return fmt.Errorf("close tracker: %w", err)
		}
	}
	return nil
}
