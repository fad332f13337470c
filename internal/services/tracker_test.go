package services

import (
	"context"
	"testing"

	"fintrack/internal/core"
	"fintrack/internal/ledger"
)

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	store := ledger.New(nil)
	return NewTracker(store, nil)
}

func TestTracker_RecordTransaction(t *testing.T) {
	tracker := newTestTracker(t)
	ctx := context.Background()

	tx := core.Transaction{
		Date:     core.NewDate(2024, 3, 10),
		Category: "Food",
		Amount:   core.Money{Cents: 1500},
		Type:     core.Expense,
		Note:     "groceries",
	}

	ref, err := tracker.RecordTransaction(ctx, tx)
	if err != nil {
		t.Fatalf("RecordTransaction() error = %v", err)
	}
	if ref != "mem:1" {
		t.Errorf("RecordTransaction() ref = %v, want mem:1", ref)
	}
}

func TestTracker_RecordTransaction_Invalid(t *testing.T) {
	tracker := newTestTracker(t)
	ctx := context.Background()

	tx := core.Transaction{
		Date:     core.NewDate(2024, 3, 10),
		Category: "Food",
		Amount:   core.Money{Cents: 0},
		Type:     core.Expense,
	}

	if _, err := tracker.RecordTransaction(ctx, tx); err == nil {
		t.Error("RecordTransaction() should reject a zero amount")
	}
}

func TestTracker_Categories(t *testing.T) {
	tracker := newTestTracker(t)
	ctx := context.Background()

	if !tracker.AddCategory(ctx, "Gifts") {
		t.Error("AddCategory() should add a new category")
	}
	if tracker.AddCategory(ctx, "Gifts") {
		t.Error("AddCategory() should be a no-op for an existing category")
	}
	if !tracker.RemoveCategory(ctx, "Gifts") {
		t.Error("RemoveCategory() should remove an existing category")
	}
	if tracker.RemoveCategory(ctx, "Gifts") {
		t.Error("RemoveCategory() should be a no-op for a missing category")
	}
}

func TestTracker_SetBudget(t *testing.T) {
	tracker := newTestTracker(t)
	ctx := context.Background()

	if err := tracker.SetBudget(ctx, 50000); err != nil {
		t.Fatalf("SetBudget() error = %v", err)
	}
	if err := tracker.SetBudget(ctx, -1); err == nil {
		t.Error("SetBudget() should reject a negative amount")
	}
}

func TestTracker_Close_NilClient(t *testing.T) {
	tracker := newTestTracker(t)
	if err := tracker.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}
