package report

import (
	"github.com/shopspring/decimal"

	"github.com/efreport/efreport/internal/model"
)

// DefaultTitle is the heading used when no title is configured.
const DefaultTitle = "選挙運動費用収支報告"

// Options tune Build. The zero value uses the default title and classifier.
type Options struct {
	Title      string
	Classifier *Classifier
}

// View is everything a renderer needs to draw the report page.
type View struct {
	Title        string
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal // TotalIncome - TotalExpense
	Summaries    []model.CategorySummary
	Income       []model.CategorySummary // first-seen order
	Expense      []model.CategorySummary // largest total first
	Chart        []model.ChartSlice
	Transactions []model.Transaction // newest first, undated last
}

// BalanceNonNegative reports whether income covers expense.
func (v View) BalanceNonNegative() bool {
	return !v.Balance.IsNegative()
}

// Build computes the full report view from txns.
func Build(txns []model.Transaction, opts Options) View {
	classifier := defaultClassifier
	if opts.Classifier != nil {
		classifier = *opts.Classifier
	}
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}

	summaries := classifier.Summarize(txns)
	income := Totals(summaries, model.KindIncome)
	expense := Totals(summaries, model.KindExpense)

	return View{
		Title:        title,
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
		Summaries:    summaries,
		Income:       FilterKind(summaries, model.KindIncome),
		Expense:      SortByTotalDescending(FilterKind(summaries, model.KindExpense)),
		Chart:        ChartData(summaries),
		Transactions: SortByDateDescending(txns),
	}
}
