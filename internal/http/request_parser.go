// Package http provides the HTTP server and handler implementations.
//
// This file implements utilities for parsing and validating HTTP request
// data. It consolidates the repeated patterns of form parsing, date
// extraction, and filter parameter handling.

package http

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"fintrack/internal/core"
	"fintrack/internal/report"
)

// FilterParams holds parsed filter and sort values from query parameters.
type FilterParams struct {
	Filter report.Filter
	Sort   report.SortKey
}

// ParseFilterParams extracts type and category filters plus the sort key
// from query parameters. Absent dimensions leave the corresponding set
// nil, which means "no restriction".
func ParseFilterParams(query url.Values) FilterParams {
	params := FilterParams{Sort: report.DateDesc}

	if values, ok := query["type"]; ok {
		types := make(map[core.TxType]bool)
		for _, v := range values {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			types[core.TxType(v)] = true
		}
		if len(types) > 0 {
			params.Filter.Types = types
		}
	}

	if values, ok := query["category"]; ok {
		cats := make(map[string]bool)
		for _, v := range values {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			cats[v] = true
		}
		if len(cats) > 0 {
			params.Filter.Categories = cats
		}
	}

	switch report.SortKey(strings.TrimSpace(query.Get("sort"))) {
	case report.DateAsc:
		params.Sort = report.DateAsc
	case report.AmountDesc:
		params.Sort = report.AmountDesc
	case report.AmountAsc:
		params.Sort = report.AmountAsc
	default:
		params.Sort = report.DateDesc
	}

	return params
}

// ParseDateOrToday parses a YYYY-MM-DD form value, falling back to the
// current date when the value is empty.
func ParseDateOrToday(value string) (core.Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		now := time.Now().UTC()
		return core.NewDate(now.Year(), int(now.Month()), now.Day()), nil
	}
	return parseDate(value)
}

// RequireMethod checks if the request method matches the expected method(s).
// Returns an error response builder if the method doesn't match.
func RequireMethod(r *http.Request, methods ...string) *HTMXResponseBuilder {
	for _, m := range methods {
		if r.Method == m {
			return nil
		}
	}
	return MethodNotAllowedError(strings.Join(methods, ", "))
}

// RequirePOST is a convenience function for POST-only handlers.
func RequirePOST(r *http.Request) *HTMXResponseBuilder {
	return RequireMethod(r, http.MethodPost)
}

// ParseFormOrFail parses the request form and returns an error response on
// failure. Returns nil on success.
func ParseFormOrFail(r *http.Request) *HTMXResponseBuilder {
	if err := r.ParseForm(); err != nil {
		return BadRequestError("Invalid request format")
	}
	return nil
}
