package worker

import (
	"context"
	"log/slog"
	"sync/atomic"

	"fintrack/internal/amqp"
)

// BudgetNotifier watches recorded-transaction events and raises a
// warning whenever the month's expenses exceed the configured budget
type BudgetNotifier struct {
	processed int64
	warnings  int64
}

func NewBudgetNotifier() *BudgetNotifier {
	return &BudgetNotifier{}
}

// HandleTransactionEvent processes a single transaction event
func (w *BudgetNotifier) HandleTransactionEvent(ctx context.Context, event *amqp.TransactionEvent) error {
	atomic.AddInt64(&w.processed, 1)

	slog.InfoContext(ctx, "Processing transaction event",
		"ref", event.Ref,
		"date", event.Date,
		"category", event.Category,
		"type", event.Type,
		"amount_cents", event.AmountCents)

	if event.BudgetCents <= 0 {
		// No budget configured, nothing to check
		return nil
	}

	if event.OverBudget {
		atomic.AddInt64(&w.warnings, 1)
		slog.WarnContext(ctx, "Monthly budget exceeded",
			"month_expense_cents", event.MonthExpenseCents,
			"budget_cents", event.BudgetCents,
			"over_by_cents", event.MonthExpenseCents-event.BudgetCents)
		return nil
	}

	slog.InfoContext(ctx, "Budget check passed",
		"month_expense_cents", event.MonthExpenseCents,
		"budget_cents", event.BudgetCents,
		"remaining_cents", event.BudgetCents-event.MonthExpenseCents)

	return nil
}

// Stats returns how many events were processed and how many budget
// warnings were raised
func (w *BudgetNotifier) Stats() (processed, warnings int64) {
	return atomic.LoadInt64(&w.processed), atomic.LoadInt64(&w.warnings)
}
