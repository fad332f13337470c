package http

import (
	"html/template"
	"net/http"
	"strings"

	"fintrack/internal/core"
	"fintrack/internal/log"
)

func (s *Server) handleAddCategory(w http.ResponseWriter, r *http.Request) {
	if resp := RequirePOST(r); resp != nil {
		resp.Write(w)
		return
	}
	if resp := ParseFormOrFail(r); resp != nil {
		resp.Write(w)
		return
	}

	name := sanitizeInput(r.Form.Get("name"))
	if name == "" {
		UnprocessableEntityError("Category name must not be empty").Write(w)
		return
	}

	added := s.tracker.AddCategory(r.Context(), name)
	if !added {
		NewHTMXResponse().
			TriggerNotification(NotificationInfo, "Category already exists", 3000).
			BodyHTML(`<div class="notice">Category already exists: ` + template.HTMLEscapeString(name) + `</div>`).
			Write(w)
		return
	}

	s.logger.InfoContext(r.Context(), "Category added",
		log.FieldCategory, name,
		log.FieldOperation, log.OpCreate)

	NewHTMXResponse().
		TriggerCategoryChanged(name).
		TriggerSuccessNotification("Category added").
		BodyHTML(`<div class="success">Category added: ` + template.HTMLEscapeString(name) + `</div>`).
		Write(w)
}

// handleRemoveCategory removes a category from the working set. Recorded
// transactions keep their category labels.
func (s *Server) handleRemoveCategory(w http.ResponseWriter, r *http.Request) {
	if resp := RequireMethod(r, http.MethodPost, http.MethodDelete); resp != nil {
		resp.Write(w)
		return
	}
	if resp := ParseFormOrFail(r); resp != nil {
		resp.Write(w)
		return
	}

	name := sanitizeInput(r.Form.Get("name"))
	if name == "" {
		UnprocessableEntityError("Category name must not be empty").Write(w)
		return
	}

	removed := s.tracker.RemoveCategory(r.Context(), name)
	if !removed {
		NewHTMXResponse().
			TriggerNotification(NotificationInfo, "Category not found", 3000).
			BodyHTML(`<div class="notice">Category not found: ` + template.HTMLEscapeString(name) + `</div>`).
			Write(w)
		return
	}

	s.logger.InfoContext(r.Context(), "Category removed",
		log.FieldCategory, name)

	NewHTMXResponse().
		TriggerCategoryChanged(name).
		TriggerSuccessNotification("Category removed").
		BodyHTML(`<div class="success">Category removed: ` + template.HTMLEscapeString(name) + `</div>`).
		Write(w)
}

func (s *Server) handleSetBudget(w http.ResponseWriter, r *http.Request) {
	if resp := RequirePOST(r); resp != nil {
		resp.Write(w)
		return
	}
	if resp := ParseFormOrFail(r); resp != nil {
		resp.Write(w)
		return
	}

	amountStr := strings.TrimSpace(r.Form.Get("amount"))
	cents, err := core.ParseBudgetToCents(amountStr)
	if err != nil {
		UnprocessableEntityError("Invalid budget, expected a non-negative decimal").Write(w)
		return
	}

	if err := s.tracker.SetBudget(r.Context(), cents); err != nil {
		UnprocessableEntityError("Invalid budget, expected a non-negative decimal").Write(w)
		return
	}

	s.logger.InfoContext(r.Context(), "Budget updated",
		log.FieldBudgetCents, cents)

	NewHTMXResponse().
		TriggerBudgetChanged(cents).
		TriggerSuccessNotification("Budget updated").
		BodyHTML(`<div class="success">Monthly budget set to ` + template.HTMLEscapeString(formatDollars(cents)) + `</div>`).
		Write(w)
}
