package core

import (
	"errors"
	"time"
)

const (
	Income  TxType = "income"
	Expense TxType = "expense"
)

type (
	// TxType is the economic direction of a transaction.
	TxType string

	// Date is a calendar date with no time-of-day component.
	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Transaction is a single dated financial event. It is immutable once
	// appended to the ledger; there is no edit or delete operation.
	Transaction struct {
		Date     Date
		Category string
		Amount   Money
		Type     TxType
		Note     string // free text, may be empty
	}
)

var (
	ErrInvalidDate    = errors.New("invalid date")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrInvalidType    = errors.New("invalid transaction type")
	ErrEmptyCategory  = errors.New("empty category")
	ErrInvalidRange   = errors.New("start date after end date")
	ErrNegativeBudget = errors.New("negative budget")
)

// NewDate creates a Date from year, month, day in UTC.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Day returns the day of the month.
func (d Date) Day() int {
	return d.Time.Day()
}

// Month returns the month.
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Year returns the year.
func (d Date) Year() int {
	return d.Time.Year()
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (t TxType) Validate() error {
	switch t {
	case Income, Expense:
		return nil
	}
	return ErrInvalidType
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (tx Transaction) Validate() error {
	if err := tx.Date.Validate(); err != nil {
		return err
	}
	if tx.Category == "" {
		return ErrEmptyCategory
	}
	if err := tx.Amount.Validate(); err != nil {
		return err
	}
	if err := tx.Type.Validate(); err != nil {
		return err
	}
	if len(tx.Note) > 500 {
		return errors.New("note too long (max 500 characters)")
	}
	return nil
}

// DefaultCategories seeds a new ledger's category set.
func DefaultCategories() []string {
	return []string{
		"Food", "Transport", "Entertainment", "Medical", "Education",
		"Shopping", "Rent", "Utilities", "Travel", "Other",
	}
}
