package report

import (
	"slices"

	"github.com/efreport/efreport/internal/model"
)

// SortByDateDescending returns a copy of txns ordered newest first.
// Undated transactions go after every dated one and keep their input order.
func SortByDateDescending(txns []model.Transaction) []model.Transaction {
	sorted := slices.Clone(txns)
	slices.SortStableFunc(sorted, compareDateDescending)
	return sorted
}

func compareDateDescending(a, b model.Transaction) int {
	switch {
	case a.Date == nil && b.Date == nil:
		return 0
	case a.Date == nil:
		return 1
	case b.Date == nil:
		return -1
	}
	return b.Date.Compare(*a.Date)
}
