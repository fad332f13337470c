package amqp

import (
	"testing"
	"time"
)

func TestNewTransactionEvent(t *testing.T) {
	event := NewTransactionEvent("mem:1", "2024-01-15", "Food", "expense", 1250)

	if event.Ref != "mem:1" {
		t.Errorf("NewTransactionEvent() Ref = %v, want mem:1", event.Ref)
	}
	if event.Date != "2024-01-15" {
		t.Errorf("NewTransactionEvent() Date = %v, want 2024-01-15", event.Date)
	}
	if event.Category != "Food" {
		t.Errorf("NewTransactionEvent() Category = %v, want Food", event.Category)
	}
	if event.Type != "expense" {
		t.Errorf("NewTransactionEvent() Type = %v, want expense", event.Type)
	}
	if event.AmountCents != 1250 {
		t.Errorf("NewTransactionEvent() AmountCents = %v, want 1250", event.AmountCents)
	}
	if event.Timestamp.IsZero() {
		t.Error("NewTransactionEvent() Timestamp should not be zero")
	}
	if time.Since(event.Timestamp) > time.Second {
		t.Error("NewTransactionEvent() Timestamp should be recent")
	}
}

func TestTransactionEvent_JSON(t *testing.T) {
	timestamp := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	event := &TransactionEvent{
		Ref:               "mem:42",
		Date:              "2024-01-01",
		Category:          "Transport",
		Type:              "expense",
		AmountCents:       999,
		MonthExpenseCents: 12000,
		BudgetCents:       10000,
		OverBudget:        true,
		Timestamp:         timestamp,
	}

	jsonBytes, err := event.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	parsed, err := TransactionEventFromJSON(jsonBytes)
	if err != nil {
		t.Fatalf("TransactionEventFromJSON() error = %v", err)
	}

	if parsed.Ref != event.Ref {
		t.Errorf("Parsed Ref = %v, want %v", parsed.Ref, event.Ref)
	}
	if parsed.AmountCents != event.AmountCents {
		t.Errorf("Parsed AmountCents = %v, want %v", parsed.AmountCents, event.AmountCents)
	}
	if parsed.MonthExpenseCents != event.MonthExpenseCents {
		t.Errorf("Parsed MonthExpenseCents = %v, want %v", parsed.MonthExpenseCents, event.MonthExpenseCents)
	}
	if parsed.BudgetCents != event.BudgetCents {
		t.Errorf("Parsed BudgetCents = %v, want %v", parsed.BudgetCents, event.BudgetCents)
	}
	if !parsed.OverBudget {
		t.Error("Parsed OverBudget = false, want true")
	}
	if !parsed.Timestamp.Equal(event.Timestamp) {
		t.Errorf("Parsed Timestamp = %v, want %v", parsed.Timestamp, event.Timestamp)
	}
}

func TestTransactionEvent_InvalidJSON(t *testing.T) {
	invalidJSON := []byte(`{"amount_cents": "not_a_number"}`)

	_, err := TransactionEventFromJSON(invalidJSON)
	if err == nil {
		t.Error("TransactionEventFromJSON() should fail with invalid JSON")
	}
}
