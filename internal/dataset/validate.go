package dataset

import (
	"fmt"

	"github.com/efreport/efreport/internal/model"
)

// ValidationError describes one record that falls outside the dataset contract.
type ValidationError struct {
	Record      int // 1-based position in the input
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("record %d: %s", e.Record, e.Description)
}

// Validate checks transactions built in memory by library callers. Readers
// already reject these records at load time.
func Validate(txns []model.Transaction) []ValidationError {
	var errs []ValidationError
	for i, txn := range txns {
		if txn.Category == "" {
			errs = append(errs, ValidationError{Record: i + 1, Description: "missing category"})
		}
		if txn.Date != nil && txn.Date.IsZero() {
			errs = append(errs, ValidationError{Record: i + 1, Description: "zero date, use nil for unknown"})
		}
	}
	return errs
}
