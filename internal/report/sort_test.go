package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efreport/efreport/internal/model"
)

func categories(txns []model.Transaction) []string {
	names := make([]string, len(txns))
	for i, t := range txns {
		names[i] = t.Category
	}
	return names
}

func TestSortByDateDescending_NullDateLast(t *testing.T) {
	txns := []model.Transaction{
		txn(nil, "100", "A"),
		txn(day(2024, 1, 1), "200", "B"),
	}
	got := SortByDateDescending(txns)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"B", "A"}, categories(got))
	assert.Equal(t, []string{"A", "B"}, categories(txns), "input must be untouched")
}

func TestSortByDateDescending_Order(t *testing.T) {
	txns := []model.Transaction{
		txn(day(2024, 1, 15), "1", "jan15"),
		txn(nil, "1", "null1"),
		txn(day(2024, 3, 1), "1", "mar1"),
		txn(day(2023, 12, 31), "1", "dec31"),
		txn(nil, "1", "null2"),
		txn(day(2024, 1, 15), "1", "jan15b"),
	}
	got := SortByDateDescending(txns)
	assert.Equal(t, []string{"mar1", "jan15", "jan15b", "dec31", "null1", "null2"}, categories(got))
}

func TestSortByDateDescending_Idempotent(t *testing.T) {
	txns := []model.Transaction{
		txn(day(2024, 5, 1), "1", "a"),
		txn(nil, "1", "b"),
		txn(day(2024, 6, 1), "1", "c"),
		txn(day(2024, 5, 1), "1", "d"),
		txn(nil, "1", "e"),
	}
	once := SortByDateDescending(txns)
	twice := SortByDateDescending(once)
	assert.Equal(t, categories(once), categories(twice))
}

func TestSortByDateDescending_Empty(t *testing.T) {
	assert.Empty(t, SortByDateDescending(nil))
	assert.Empty(t, SortByDateDescending([]model.Transaction{}))
}
