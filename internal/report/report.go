// Package report implements the derived views over the transaction ledger:
// filtering, sorting, aggregation, budget comparison, and date-range queries.
// Every function is a pure read over its inputs; results depend only on the
// arguments, so views can be recomputed on each request without caching.
package report

import (
	"sort"
	"time"

	"fintrack/internal/core"
)

const (
	DateDesc   SortKey = "date_desc"
	DateAsc    SortKey = "date_asc"
	AmountDesc SortKey = "amount_desc"
	AmountAsc  SortKey = "amount_asc"
)

type (
	// SortKey selects the ordering of a filtered transaction list.
	SortKey string

	// Filter restricts a transaction list by type and category membership.
	// A nil set means "no restriction" for that dimension.
	Filter struct {
		Types      map[core.TxType]bool
		Categories map[string]bool
	}

	// Totals are ledger-wide sums partitioned by transaction type.
	Totals struct {
		IncomeCents  int64
		ExpenseCents int64
		NetCents     int64 // income - expense
	}

	// CategoryAmount is an amount aggregated under one category name.
	CategoryAmount struct {
		Name  string
		Cents int64
	}

	// DayAmount is an amount aggregated on one calendar date.
	DayAmount struct {
		Date  core.Date
		Cents int64
	}

	// BudgetReport compares current-month expenses against the budget.
	BudgetReport struct {
		MonthExpenseCents int64
		BudgetCents       int64
		ProgressPercent   float64 // capped at 100; 0 when no budget is set
		OverBudget        bool
	}
)

// FilterSort returns the transactions whose type and category both pass the
// filter, ordered by key. The sort is stable: ties keep insertion order.
func FilterSort(txs []core.Transaction, f Filter, key SortKey) []core.Transaction {
	out := make([]core.Transaction, 0, len(txs))
	for _, tx := range txs {
		if f.Types != nil && !f.Types[tx.Type] {
			continue
		}
		if f.Categories != nil && !f.Categories[tx.Category] {
			continue
		}
		out = append(out, tx)
	}

	switch key {
	case DateAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date.Time) })
	case AmountDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Amount.Cents > out[j].Amount.Cents })
	case AmountAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Amount.Cents < out[j].Amount.Cents })
	default: // DateDesc
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date.Time) })
	}
	return out
}

// AggregateTotals sums amounts partitioned by type. An empty input yields
// all-zero totals.
func AggregateTotals(txs []core.Transaction) Totals {
	var t Totals
	for _, tx := range txs {
		switch tx.Type {
		case core.Income:
			t.IncomeCents += tx.Amount.Cents
		case core.Expense:
			t.ExpenseCents += tx.Amount.Cents
		}
	}
	t.NetCents = t.IncomeCents - t.ExpenseCents
	return t
}

// SumByCategory aggregates amounts of the given type per category, largest
// first (name ascending on equal amounts). Categories with no matching
// transactions are omitted.
func SumByCategory(txs []core.Transaction, typ core.TxType) []CategoryAmount {
	sums := map[string]int64{}
	for _, tx := range txs {
		if tx.Type != typ {
			continue
		}
		sums[tx.Category] += tx.Amount.Cents
	}
	out := make([]CategoryAmount, 0, len(sums))
	for name, cents := range sums {
		out = append(out, CategoryAmount{Name: name, Cents: cents})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Cents != out[j].Cents {
			return out[i].Cents > out[j].Cents
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// SumByDay aggregates amounts of the given type per calendar date, ordered
// by date ascending, one entry per distinct date present.
func SumByDay(txs []core.Transaction, typ core.TxType) []DayAmount {
	sums := map[time.Time]int64{}
	for _, tx := range txs {
		if tx.Type != typ {
			continue
		}
		day := tx.Date.Truncate(24 * time.Hour)
		sums[day] += tx.Amount.Cents
	}
	out := make([]DayAmount, 0, len(sums))
	for day, cents := range sums {
		out = append(out, DayAmount{Date: core.Date{Time: day}, Cents: cents})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date.Time) })
	return out
}

// MonthlySpendVsBudget sums all expenses dated on or after the first day of
// refDate's month and compares the total against the budget. There is no
// upper date bound: expenses dated after the reference month still count.
func MonthlySpendVsBudget(txs []core.Transaction, budgetCents int64, refDate core.Date) BudgetReport {
	monthStart := time.Date(refDate.Year(), refDate.Time.Month(), 1, 0, 0, 0, 0, refDate.Location())

	r := BudgetReport{BudgetCents: budgetCents}
	for _, tx := range txs {
		if tx.Type != core.Expense {
			continue
		}
		if tx.Date.Before(monthStart) {
			continue
		}
		r.MonthExpenseCents += tx.Amount.Cents
	}
	if budgetCents > 0 {
		r.ProgressPercent = float64(r.MonthExpenseCents) / float64(budgetCents) * 100
		if r.ProgressPercent > 100 {
			r.ProgressPercent = 100
		}
	}
	r.OverBudget = r.MonthExpenseCents > budgetCents
	return r
}

// Range returns the transactions dated within [start, end] inclusive, in
// insertion order, together with their totals. A start after end yields
// core.ErrInvalidRange and no computation.
func Range(txs []core.Transaction, start, end core.Date) ([]core.Transaction, Totals, error) {
	if start.After(end.Time) {
		return nil, Totals{}, core.ErrInvalidRange
	}
	out := make([]core.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Date.Before(start.Time) || tx.Date.After(end.Time) {
			continue
		}
		out = append(out, tx)
	}
	return out, AggregateTotals(out), nil
}
