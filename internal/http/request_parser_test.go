package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"fintrack/internal/core"
	"fintrack/internal/report"
)

func TestParseFilterParams(t *testing.T) {
	tests := []struct {
		name     string
		query    url.Values
		wantSort report.SortKey
		hasTypes bool
		hasCats  bool
	}{
		{
			name:     "empty query means no restriction",
			query:    url.Values{},
			wantSort: report.DateDesc,
		},
		{
			name:     "type filter",
			query:    url.Values{"type": {"expense"}},
			wantSort: report.DateDesc,
			hasTypes: true,
		},
		{
			name:     "category filter",
			query:    url.Values{"category": {"Food", "Transport"}},
			wantSort: report.DateDesc,
			hasCats:  true,
		},
		{
			name:     "explicit sort",
			query:    url.Values{"sort": {"amount_asc"}},
			wantSort: report.AmountAsc,
		},
		{
			name:     "unknown sort falls back to date desc",
			query:    url.Values{"sort": {"shuffled"}},
			wantSort: report.DateDesc,
		},
		{
			name:     "blank values are ignored",
			query:    url.Values{"type": {"  "}, "category": {""}},
			wantSort: report.DateDesc,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := ParseFilterParams(tt.query)
			if params.Sort != tt.wantSort {
				t.Errorf("Sort = %v, want %v", params.Sort, tt.wantSort)
			}
			if (params.Filter.Types != nil) != tt.hasTypes {
				t.Errorf("Types set = %v, want present=%v", params.Filter.Types, tt.hasTypes)
			}
			if (params.Filter.Categories != nil) != tt.hasCats {
				t.Errorf("Categories set = %v, want present=%v", params.Filter.Categories, tt.hasCats)
			}
		})
	}
}

func TestParseFilterParams_TypeValues(t *testing.T) {
	params := ParseFilterParams(url.Values{"type": {"income", "expense"}})
	if !params.Filter.Types[core.Income] || !params.Filter.Types[core.Expense] {
		t.Errorf("expected both types present, got %v", params.Filter.Types)
	}
}

func TestParseDateOrToday(t *testing.T) {
	d, err := ParseDateOrToday("2024-02-29")
	if err != nil {
		t.Fatalf("ParseDateOrToday() error = %v", err)
	}
	if d.Year() != 2024 || d.Month() != 2 || d.Day() != 29 {
		t.Errorf("parsed date = %v-%v-%v", d.Year(), d.Month(), d.Day())
	}

	if _, err := ParseDateOrToday("29/02/2024"); err == nil {
		t.Error("expected error for non ISO date")
	}

	today, err := ParseDateOrToday("")
	if err != nil {
		t.Fatalf("ParseDateOrToday(\"\") error = %v", err)
	}
	if today.IsZero() {
		t.Error("empty value should default to today")
	}
}

func TestRequirePOST(t *testing.T) {
	if resp := RequirePOST(httptest.NewRequest(http.MethodPost, "/x", nil)); resp != nil {
		t.Error("POST should pass")
	}
	resp := RequirePOST(httptest.NewRequest(http.MethodGet, "/x", nil))
	if resp == nil {
		t.Fatal("GET should fail")
	}
	rr := httptest.NewRecorder()
	resp.Write(rr)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rr.Code)
	}
	if rr.Header().Get("Allow") != http.MethodPost {
		t.Errorf("Allow = %q, want POST", rr.Header().Get("Allow"))
	}
}

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  hello  ", "hello"},
		{"with\x00null", "withnull"},
		{"keep\ttabs", "keep\ttabs"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := sanitizeInput(tt.input); got != tt.want {
			t.Errorf("sanitizeInput(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatDollars(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{1234, "$12.34"},
		{100000, "$1000.00"},
		{-250, "-$2.50"},
	}
	for _, tt := range tests {
		if got := formatDollars(tt.cents); got != tt.want {
			t.Errorf("formatDollars(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}
