// Package log builds the diagnostic logger. Report output goes to stdout;
// diagnostics go to the writer given here, normally stderr.
package log

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Field names shared by commands.
const (
	FieldComponent    = "component"
	FieldDataset      = "dataset"
	FieldFormat       = "format"
	FieldTransactions = "transactions"
	FieldCategory     = "category"
	FieldCategories   = "categories"
)

// New returns a console logger writing to w at the named level
// (debug, info, warn, error).
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parsing log level: %w", err)
	}
	if level == "" {
		lvl = zerolog.InfoLevel
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// Component returns a child logger tagged with the component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str(FieldComponent, name).Logger()
}
