package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/efreport/efreport/internal/model"
	"github.com/efreport/efreport/internal/report"
)

type amountJSON struct {
	Value   json.Number `json:"value"`
	Display string      `json:"display"`
}

type summaryJSON struct {
	Category string     `json:"category"`
	Total    amountJSON `json:"total"`
	Count    int        `json:"count"`
	Type     model.Kind `json:"type"`
}

type chartJSON struct {
	ID    string     `json:"id"`
	Label string     `json:"label"`
	Value amountJSON `json:"value"`
}

type transactionJSON struct {
	Date     *string    `json:"date"`
	Price    amountJSON `json:"price"`
	Category string     `json:"category"`
	Purpose  string     `json:"purpose,omitempty"`
	Note     string     `json:"note,omitempty"`
}

type viewJSON struct {
	Title              string            `json:"title"`
	TotalIncome        amountJSON        `json:"total_income"`
	TotalExpense       amountJSON        `json:"total_expense"`
	Balance            amountJSON        `json:"balance"`
	BalanceNonNegative bool              `json:"balance_non_negative"`
	Income             []summaryJSON     `json:"income"`
	Expense            []summaryJSON     `json:"expense"`
	Chart              []chartJSON       `json:"chart"`
	Transactions       []transactionJSON `json:"transactions"`
}

// JSON writes the view model as indented JSON. Every amount carries both its
// exact value and the formatted yen string.
func JSON(w io.Writer, view report.View) error {
	out := viewJSON{
		Title:              view.Title,
		TotalIncome:        amount(view.TotalIncome),
		TotalExpense:       amount(view.TotalExpense),
		Balance:            amount(view.Balance),
		BalanceNonNegative: view.BalanceNonNegative(),
		Income:             summaries(view.Income),
		Expense:            summaries(view.Expense),
		Chart:              make([]chartJSON, 0, len(view.Chart)),
		Transactions:       make([]transactionJSON, 0, len(view.Transactions)),
	}
	for _, s := range view.Chart {
		out.Chart = append(out.Chart, chartJSON{ID: s.ID, Label: s.Label, Value: amount(s.Value)})
	}
	for _, t := range view.Transactions {
		tj := transactionJSON{
			Price:    amount(t.Price),
			Category: t.Category,
			Purpose:  t.Purpose,
			Note:     t.Note,
		}
		if t.HasDate() {
			d := t.DateString()
			tj.Date = &d
		}
		out.Transactions = append(out.Transactions, tj)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding report JSON: %w", err)
	}
	return nil
}

func amount(d decimal.Decimal) amountJSON {
	return amountJSON{Value: json.Number(d.String()), Display: report.FormatCurrency(d)}
}

func summaries(in []model.CategorySummary) []summaryJSON {
	out := make([]summaryJSON, 0, len(in))
	for _, s := range in {
		out = append(out, summaryJSON{
			Category: s.Category,
			Total:    amount(s.Total),
			Count:    s.Count,
			Type:     s.Kind,
		})
	}
	return out
}
