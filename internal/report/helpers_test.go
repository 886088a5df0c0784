package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/efreport/efreport/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func day(y, m, d int) *time.Time {
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return &t
}

func txn(date *time.Time, price, category string) model.Transaction {
	return model.Transaction{Date: date, Price: dec(price), Category: category}
}
