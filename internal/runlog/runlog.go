// Package runlog keeps an append-only CSV history of generated reports.
package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one row in the report log.
type Entry struct {
	Timestamp    time.Time
	Command      string
	Dataset      string
	Transactions int
	Income       decimal.Decimal
	Expense      decimal.Decimal
}

// Header is the CSV header for report-log.csv.
const Header = "timestamp,command,dataset,transactions,income,expense"

const (
	numFields       = 6
	logDir          = "logs"
	logFile         = "logs/report-log.csv"
	colTimestamp    = 0
	colCommand      = 1
	colDataset      = 2
	colTransactions = 3
	colIncome       = 4
	colExpense      = 5
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colCommand] = e.Command
	row[colDataset] = e.Dataset
	row[colTransactions] = strconv.Itoa(e.Transactions)
	row[colIncome] = e.Income.String()
	row[colExpense] = e.Expense.String()
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}
	n, err := strconv.Atoi(record[colTransactions])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing transactions %q: %w", record[colTransactions], err)
	}
	income, err := decimal.NewFromString(record[colIncome])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing income %q: %w", record[colIncome], err)
	}
	expense, err := decimal.NewFromString(record[colExpense])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing expense %q: %w", record[colExpense], err)
	}

	return Entry{
		Timestamp:    ts,
		Command:      record[colCommand],
		Dataset:      record[colDataset],
		Transactions: n,
		Income:       income,
		Expense:      expense,
	}, nil
}

// Append writes entries to <projectDir>/logs/report-log.csv, creating the file and header if needed.
func Append(projectDir string, entries []Entry) error {
	dir := filepath.Join(projectDir, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(projectDir, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening report log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Read returns all entries from <projectDir>/logs/report-log.csv.
// Returns nil if the file does not exist.
func Read(projectDir string) ([]Entry, error) {
	path := filepath.Join(projectDir, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening report log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading report log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
