package amqp

import (
	"encoding/json"
	"time"
)

// TransactionEvent is published whenever a transaction is recorded. It
// carries enough context for downstream consumers (e.g. the budget
// notifier) without a callback into the in-memory ledger.
type TransactionEvent struct {
	Ref               string    `json:"ref"`
	Date              string    `json:"date"` // YYYY-MM-DD
	Category          string    `json:"category"`
	Type              string    `json:"type"` // income | expense
	AmountCents       int64     `json:"amount_cents"`
	MonthExpenseCents int64     `json:"month_expense_cents"`
	BudgetCents       int64     `json:"budget_cents"`
	OverBudget        bool      `json:"over_budget"`
	Timestamp         time.Time `json:"timestamp"`
}

// NewTransactionEvent creates an event stamped with the current time.
func NewTransactionEvent(ref, date, category, typ string, amountCents int64) *TransactionEvent {
	return &TransactionEvent{
		Ref:         ref,
		Date:        date,
		Category:    category,
		Type:        typ,
		AmountCents: amountCents,
		Timestamp:   time.Now(),
	}
}

// ToJSON converts the event to JSON bytes
func (e *TransactionEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// TransactionEventFromJSON creates an event from JSON bytes
func TransactionEventFromJSON(data []byte) (*TransactionEvent, error) {
	var e TransactionEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
