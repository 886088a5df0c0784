package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the calendar date layout used by datasets and the detail table.
const DateFormat = "2006-01-02"

// Transaction is one recorded income or expense movement.
type Transaction struct {
	Date     *time.Time      // nil = date unknown
	Price    decimal.Decimal // whole yen, negative amounts net against positive ones
	Category string
	Purpose  string
	Note     string
}

// HasDate reports whether the transaction carries a date.
func (t Transaction) HasDate() bool {
	return t.Date != nil
}

// DateString returns the date as YYYY-MM-DD, or "" when absent.
func (t Transaction) DateString() string {
	if t.Date == nil {
		return ""
	}
	return t.Date.Format(DateFormat)
}

// ParseDate parses a YYYY-MM-DD string. An empty string yields nil.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(DateFormat, s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
