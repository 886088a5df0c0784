package report

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/efreport/efreport/internal/model"
)

// Summarize groups txns by category using the default classifier.
func Summarize(txns []model.Transaction) []model.CategorySummary {
	return defaultClassifier.Summarize(txns)
}

// Summarize groups txns by exact category name. Summaries come back in the
// order each category first appears; callers apply any display ordering.
func (c Classifier) Summarize(txns []model.Transaction) []model.CategorySummary {
	summaries := make([]model.CategorySummary, 0)
	index := make(map[string]int)

	for _, txn := range txns {
		i, seen := index[txn.Category]
		if !seen {
			i = len(summaries)
			index[txn.Category] = i
			summaries = append(summaries, model.CategorySummary{
				Category: txn.Category,
				Total:    decimal.Zero,
				Kind:     c.Classify(txn.Category),
			})
		}
		summaries[i].Total = summaries[i].Total.Add(txn.Price)
		summaries[i].Count++
	}
	return summaries
}

// Totals sums Total over the summaries of the given kind. Zero if none match.
func Totals(summaries []model.CategorySummary, kind model.Kind) decimal.Decimal {
	total := decimal.Zero
	for _, s := range summaries {
		if s.Kind == kind {
			total = total.Add(s.Total)
		}
	}
	return total
}

// FilterKind returns the summaries of the given kind, keeping their order.
func FilterKind(summaries []model.CategorySummary, kind model.Kind) []model.CategorySummary {
	result := make([]model.CategorySummary, 0)
	for _, s := range summaries {
		if s.Kind == kind {
			result = append(result, s)
		}
	}
	return result
}

// SortByTotalDescending returns a copy of summaries ordered largest total first.
// Equal totals keep their relative order.
func SortByTotalDescending(summaries []model.CategorySummary) []model.CategorySummary {
	sorted := slices.Clone(summaries)
	slices.SortStableFunc(sorted, func(a, b model.CategorySummary) int {
		return b.Total.Cmp(a.Total)
	})
	return sorted
}

// ChartData maps the expense summaries onto chart slices in first-seen order.
func ChartData(summaries []model.CategorySummary) []model.ChartSlice {
	chart := make([]model.ChartSlice, 0)
	for _, s := range FilterKind(summaries, model.KindExpense) {
		chart = append(chart, model.ChartSlice{
			ID:    s.Category,
			Label: s.Category,
			Value: s.Total,
		})
	}
	return chart
}
