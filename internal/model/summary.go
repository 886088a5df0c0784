package model

import "github.com/shopspring/decimal"

// Kind classifies a category as money coming in or going out.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// CategorySummary is the aggregate of all transactions sharing a category.
type CategorySummary struct {
	Category string
	Total    decimal.Decimal
	Count    int
	Kind     Kind
}

// ChartSlice is one segment of the expense breakdown chart.
type ChartSlice struct {
	ID    string
	Label string
	Value decimal.Decimal
}
