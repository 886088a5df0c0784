// Package render writes a report.View in one of the supported output formats.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/efreport/efreport/internal/dataset"
	"github.com/efreport/efreport/internal/report"
)

// Func writes view to w.
type Func func(w io.Writer, view report.View) error

// ForFormat returns the renderer for a format name (text, json, csv).
func ForFormat(format string) (Func, error) {
	switch strings.ToLower(format) {
	case "text", "":
		return Text, nil
	case "json":
		return JSON, nil
	case "csv":
		return CSV, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// CSV writes the date-sorted detail table in the dataset CSV layout.
func CSV(w io.Writer, view report.View) error {
	return dataset.WriteCSV(w, view.Transactions)
}
