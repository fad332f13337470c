package worker

import (
	"context"
	"testing"

	"fintrack/internal/amqp"
)

func TestBudgetNotifier_HandleTransactionEvent(t *testing.T) {
	tests := []struct {
		name          string
		event         *amqp.TransactionEvent
		wantWarnings  int64
		wantProcessed int64
	}{
		{
			name: "under budget",
			event: &amqp.TransactionEvent{
				Ref:               "mem:1",
				Type:              "expense",
				AmountCents:       1000,
				MonthExpenseCents: 3000,
				BudgetCents:       10000,
				OverBudget:        false,
			},
			wantWarnings:  0,
			wantProcessed: 1,
		},
		{
			name: "over budget",
			event: &amqp.TransactionEvent{
				Ref:               "mem:2",
				Type:              "expense",
				AmountCents:       9000,
				MonthExpenseCents: 12000,
				BudgetCents:       10000,
				OverBudget:        true,
			},
			wantWarnings:  1,
			wantProcessed: 1,
		},
		{
			name: "no budget configured",
			event: &amqp.TransactionEvent{
				Ref:         "mem:3",
				Type:        "expense",
				AmountCents: 9000,
				BudgetCents: 0,
			},
			wantWarnings:  0,
			wantProcessed: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := NewBudgetNotifier()
			if err := notifier.HandleTransactionEvent(context.Background(), tt.event); err != nil {
				t.Fatalf("HandleTransactionEvent() error = %v", err)
			}
			processed, warnings := notifier.Stats()
			if processed != tt.wantProcessed {
				t.Errorf("processed = %d, want %d", processed, tt.wantProcessed)
			}
			if warnings != tt.wantWarnings {
				t.Errorf("warnings = %d, want %d", warnings, tt.wantWarnings)
			}
		})
	}
}
