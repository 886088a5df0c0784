package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/efreport/efreport/internal/model"
	"github.com/efreport/efreport/internal/report"
)

const placeholder = "-"

var hundred = decimal.NewFromInt(100)

// Text writes a plain-text report: headline totals, per-category lists,
// the expense breakdown and the detail table.
func Text(w io.Writer, view report.View) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", view.Title)
	totals := NewTable("")
	totals.Row("総収入", report.FormatCurrency(view.TotalIncome))
	totals.Row("総支出", report.FormatCurrency(view.TotalExpense))
	totals.Row("収支", report.FormatCurrency(view.Balance))
	totals.WriteTo(&b)

	b.WriteString("\n収入\n")
	summaryList(view.Income).WriteTo(&b)

	b.WriteString("\n支出（カテゴリー別）\n")
	summaryList(view.Expense).WriteTo(&b)

	b.WriteString("\n支出内訳\n")
	chart := NewTable("  ")
	for _, s := range view.Chart {
		chart.Row(s.Label, report.FormatCurrency(s.Value), share(s.Value, view.TotalExpense))
	}
	chart.WriteTo(&b)

	b.WriteString("\n支出詳細一覧\n")
	detail := NewTable("")
	detail.Row("日付", "カテゴリー", "目的", "金額", "備考")
	for _, t := range view.Transactions {
		detail.Row(
			orPlaceholder(t.DateString()),
			t.Category,
			orPlaceholder(t.Purpose),
			report.FormatCurrency(t.Price),
			orPlaceholder(t.Note),
		)
	}
	detail.WriteTo(&b)

	_, err := io.WriteString(w, b.String())
	return err
}

// Summaries writes category summaries one per line with their count.
func Summaries(w io.Writer, summaries []model.CategorySummary) error {
	t := NewTable("")
	t.Row("カテゴリー", "種別", "件数", "合計")
	for _, s := range summaries {
		t.Row(s.Category, string(s.Kind), strconv.Itoa(s.Count), report.FormatCurrency(s.Total))
	}
	_, err := t.WriteTo(w)
	return err
}

func summaryList(summaries []model.CategorySummary) *Table {
	t := NewTable("  ")
	if len(summaries) == 0 {
		t.Row(placeholder)
	}
	for _, s := range summaries {
		t.Row(s.Category, report.FormatCurrency(s.Total))
	}
	return t
}

// share formats part as a percentage of whole with one decimal place.
func share(part, whole decimal.Decimal) string {
	if whole.IsZero() {
		return placeholder
	}
	return part.Mul(hundred).Div(whole).StringFixed(1) + "%"
}

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}
