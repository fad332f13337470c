package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"fintrack/internal/core"
	"fintrack/internal/report"
)

// handleReportPartial renders the totals, category breakdown, and daily
// trend partial.
func (s *Server) handleReportPartial(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	txs := s.store.Transactions(r.Context())
	totals := report.AggregateTotals(txs)
	byCategory := report.SumByCategory(txs, core.Expense)
	byDay := report.SumByDay(txs, core.Expense)

	// Compute max category for progress scaling and legend
	var maxCents int64
	var maxName string
	for _, c := range byCategory {
		if c.Cents > maxCents {
			maxCents = c.Cents
			maxName = c.Name
		}
	}

	type row struct {
		Name, Amount string
		Width        int
	}
	type day struct {
		Date, Amount string
	}
	data := struct {
		Income  string
		Expense string
		Net     string
		MaxName string
		Max     string
		Rows    []row
		Days    []day
	}{
		Income:  formatDollars(totals.IncomeCents),
		Expense: formatDollars(totals.ExpenseCents),
		Net:     formatDollars(totals.NetCents),
		MaxName: maxName,
		Max:     formatDollars(maxCents),
	}
	for _, c := range byCategory {
		width := 0
		if maxCents > 0 && c.Cents > 0 {
			width = int((c.Cents*100 + maxCents/2) / maxCents) // rounded percent
			if width > 0 && width < 2 {                        // ensure visibility for very small values
				width = 2
			}
			if width > 100 {
				width = 100
			}
		}
		data.Rows = append(data.Rows, row{Name: c.Name, Amount: formatDollars(c.Cents), Width: width})
	}
	for _, d := range byDay {
		data.Days = append(data.Days, day{Date: d.Date.Format("2006-01-02"), Amount: formatDollars(d.Cents)})
	}

	if s.templates == nil {
		_, _ = w.Write([]byte(`<section id="report"><div class="placeholder">Net: ` + data.Net + `</div></section>`))
		return
	}
	if err := s.templates.ExecuteTemplate(w, "report.html", data); err != nil {
		s.logger.ErrorContext(r.Context(), "Template execution error", "error", err, "template", "report.html")
		_, _ = w.Write([]byte(`<section id="report"><div class="placeholder">Error rendering report</div></section>`))
	}
}

// handleBudgetPartial renders the current-month spend against the budget.
func (s *Server) handleBudgetPartial(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	now := time.Now().UTC()
	txs := s.store.Transactions(r.Context())
	budget := s.store.Budget(r.Context())
	status := report.MonthlySpendVsBudget(txs, budget, core.Date{Time: now})

	data := struct {
		HasBudget bool
		Spent     string
		Budget    string
		Percent   int
		Over      bool
		Delta     string
	}{
		HasBudget: budget > 0,
		Spent:     formatDollars(status.MonthExpenseCents),
		Budget:    formatDollars(status.BudgetCents),
		Percent:   int(status.ProgressPercent),
		Over:      status.OverBudget,
	}
	if status.OverBudget {
		data.Delta = formatDollars(status.MonthExpenseCents - status.BudgetCents)
	} else {
		data.Delta = formatDollars(status.BudgetCents - status.MonthExpenseCents)
	}

	if s.templates == nil {
		_, _ = w.Write([]byte(`<section id="budget"><div class="placeholder">Spent: ` + data.Spent + `</div></section>`))
		return
	}
	if err := s.templates.ExecuteTemplate(w, "budget.html", data); err != nil {
		s.logger.ErrorContext(r.Context(), "Template execution error", "error", err, "template", "budget.html")
		_, _ = w.Write([]byte(`<section id="budget"><div class="placeholder">Error rendering budget</div></section>`))
	}
}

// handleRangePartial renders the transactions and totals for an inclusive
// date range.
func (s *Server) handleRangePartial(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	startStr := strings.TrimSpace(r.URL.Query().Get("start"))
	endStr := strings.TrimSpace(r.URL.Query().Get("end"))

	start, err := parseDate(startStr)
	if err != nil {
		UnprocessableEntityError("Invalid start date, expected YYYY-MM-DD").Write(w)
		return
	}
	end, err := parseDate(endStr)
	if err != nil {
		UnprocessableEntityError("Invalid end date, expected YYYY-MM-DD").Write(w)
		return
	}

	txs := s.store.Transactions(r.Context())
	rows, totals, err := report.Range(txs, start, end)
	if err != nil {
		if errors.Is(err, core.ErrInvalidRange) {
			UnprocessableEntityError("Start date must not be after end date").Write(w)
			return
		}
		s.logger.ErrorContext(r.Context(), "Range query error", "error", err)
		InternalServerError("Error computing range").Write(w)
		return
	}

	type row struct {
		Date     string
		Type     string
		Category string
		Amount   string
		Note     string
	}
	data := struct {
		Start   string
		End     string
		Income  string
		Expense string
		Net     string
		Rows    []row
	}{
		Start:   startStr,
		End:     endStr,
		Income:  formatDollars(totals.IncomeCents),
		Expense: formatDollars(totals.ExpenseCents),
		Net:     formatDollars(totals.NetCents),
	}
	for _, tx := range rows {
		data.Rows = append(data.Rows, row{
			Date:     tx.Date.Format("2006-01-02"),
			Type:     string(tx.Type),
			Category: tx.Category,
			Amount:   formatDollars(tx.Amount.Cents),
			Note:     tx.Note,
		})
	}

	if s.templates == nil {
		_, _ = w.Write([]byte(`<section id="range"><div class="placeholder">Net: ` + data.Net + `</div></section>`))
		return
	}
	if err := s.templates.ExecuteTemplate(w, "range.html", data); err != nil {
		s.logger.ErrorContext(r.Context(), "Template execution error", "error", err, "template", "range.html")
		_, _ = w.Write([]byte(`<section id="range"><div class="placeholder">Error rendering range</div></section>`))
	}
}
