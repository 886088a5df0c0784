// Package report turns a transaction dataset into the figures shown on a
// campaign-finance disclosure page. Every function is pure: inputs are
// never modified and results are rebuilt on each call.
package report

import (
	"slices"

	"github.com/efreport/efreport/internal/model"
)

// Income category names recognised by the default classifier.
const (
	CategoryOtherIncome = "その他の収入"
	CategoryDonation    = "寄附"
)

// Classifier maps category names onto income or expense. Names in the
// income set are income; every other string, including "", is expense.
type Classifier struct {
	income map[string]struct{}
}

var defaultClassifier = NewClassifier(CategoryOtherIncome, CategoryDonation)

// NewClassifier returns a Classifier treating exactly the given names as income.
func NewClassifier(incomeCategories ...string) Classifier {
	set := make(map[string]struct{}, len(incomeCategories))
	for _, name := range incomeCategories {
		set[name] = struct{}{}
	}
	return Classifier{income: set}
}

// DefaultClassifier returns the classifier for the statutory income categories.
func DefaultClassifier() Classifier {
	return defaultClassifier
}

// Classify classifies category with the default income categories.
func Classify(category string) model.Kind {
	return defaultClassifier.Classify(category)
}

// Classify reports whether category is income or expense.
func (c Classifier) Classify(category string) model.Kind {
	if _, ok := c.income[category]; ok {
		return model.KindIncome
	}
	return model.KindExpense
}

// IncomeCategories returns the income names in sorted order.
func (c Classifier) IncomeCategories() []string {
	names := make([]string, 0, len(c.income))
	for name := range c.income {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
