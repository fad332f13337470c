package http

import (
	"html/template"
	"net/http"
	"strings"
	"sync/atomic"

	"fintrack/internal/core"
	"fintrack/internal/log"
	"fintrack/internal/report"
)

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	if resp := RequirePOST(r); resp != nil {
		resp.Write(w)
		return
	}
	if resp := ParseFormOrFail(r); resp != nil {
		s.logger.ErrorContext(r.Context(), "Parse form error", "method", r.Method, "url", r.URL.Path)
		resp.Write(w)
		return
	}

	date, err := ParseDateOrToday(r.Form.Get("date"))
	if err != nil {
		UnprocessableEntityError("Invalid date, expected YYYY-MM-DD").Write(w)
		return
	}

	category := sanitizeInput(r.Form.Get("category"))
	note := sanitizeInput(r.Form.Get("note"))
	typ := core.TxType(strings.TrimSpace(r.Form.Get("type")))
	amountStr := strings.TrimSpace(r.Form.Get("amount"))

	cents, err := core.ParseDecimalToCents(amountStr)
	if err != nil {
		UnprocessableEntityError("Invalid amount, expected a positive decimal").Write(w)
		return
	}

	tx := core.Transaction{
		Date:     date,
		Category: category,
		Amount:   core.Money{Cents: cents},
		Type:     typ,
		Note:     note,
	}
	if err := tx.Validate(); err != nil {
		UnprocessableEntityError("Invalid data: " + err.Error()).Write(w)
		return
	}

	ref, err := s.tracker.RecordTransaction(r.Context(), tx)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to record transaction",
			"error", err,
			log.FieldCategory, tx.Category,
			log.FieldTxType, string(tx.Type),
			log.FieldAmountCents, tx.Amount.Cents,
			log.FieldOperation, log.OpAppend)
		InternalServerError("Error recording transaction").Write(w)
		return
	}

	atomic.AddInt64(&s.appMetrics.totalTransactions, 1)

	s.logger.InfoContext(r.Context(), "Transaction recorded",
		log.FieldLedgerRef, ref,
		log.FieldCategory, tx.Category,
		log.FieldTxType, string(tx.Type),
		log.FieldAmountCents, tx.Amount.Cents,
		log.FieldOperation, log.OpCreate)

	NewHTMXResponse().
		TriggerTransactionCreated(ref).
		TriggerFormReset().
		TriggerSuccessNotification("Transaction recorded").
		BodyHTML(`<div class="success">Recorded (#` + template.HTMLEscapeString(ref) + `): ` +
			template.HTMLEscapeString(tx.Category) +
			` ` + template.HTMLEscapeString(formatDollars(tx.Amount.Cents)) +
			` (` + template.HTMLEscapeString(string(tx.Type)) + `)</div>`).
		Write(w)
}

// handleTransactionsPartial renders the filtered, sorted transaction list.
func (s *Server) handleTransactionsPartial(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	params := ParseFilterParams(r.URL.Query())
	txs := s.store.Transactions(r.Context())
	rows := report.FilterSort(txs, params.Filter, params.Sort)

	type row struct {
		Date     string
		Type     string
		Category string
		Amount   string
		Note     string
	}
	data := struct {
		Rows  []row
		Count int
	}{}
	for _, tx := range rows {
		data.Rows = append(data.Rows, row{
			Date:     tx.Date.Format("2006-01-02"),
			Type:     string(tx.Type),
			Category: tx.Category,
			Amount:   formatDollars(tx.Amount.Cents),
			Note:     tx.Note,
		})
	}
	data.Count = len(data.Rows)

	if s.templates == nil {
		_, _ = w.Write([]byte(`<section id="transactions"><div class="placeholder">No records match the current filters</div></section>`))
		return
	}
	if err := s.templates.ExecuteTemplate(w, "transactions.html", data); err != nil {
		s.logger.ErrorContext(r.Context(), "Template execution error", "error", err, "template", "transactions.html")
		_, _ = w.Write([]byte(`<section id="transactions"><div class="placeholder">Error rendering transactions</div></section>`))
	}
}
