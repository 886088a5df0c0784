package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/efreport/efreport/internal/model"
)

// Header is the CSV header for a transaction dataset.
const Header = "date,price,category,purpose,note"

const utf8BOM = "\ufeff"

const (
	numFields  = 5
	colDate    = 0
	colPrice   = 1
	colCat     = 2
	colPurpose = 3
	colNote    = 4
)

// CSVReader reads datasets exported as CSV with Header as the first row.
type CSVReader struct{}

// Format returns the reader name.
func (p *CSVReader) Format() string { return "csv" }

// Read reads all transactions from a CSV dataset.
func (p *CSVReader) Read(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading dataset CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	header := slices.Clone(records[0])
	header[0] = strings.TrimPrefix(header[0], utf8BOM)
	if !slices.Equal(header, strings.Split(Header, ",")) {
		return nil, fmt.Errorf("row 1: unexpected header %q, want %q", strings.Join(header, ","), Header)
	}

	txns := make([]model.Transaction, 0, len(records)-1)
	for i, rec := range records[1:] {
		txn, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// WriteCSV writes txns to w including the header.
func WriteCSV(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(txn model.Transaction) []string {
	row := make([]string, numFields)
	row[colDate] = txn.DateString()
	row[colPrice] = txn.Price.String()
	row[colCat] = txn.Category
	row[colPurpose] = txn.Purpose
	row[colNote] = txn.Note
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := model.ParseDate(record[colDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	if record[colPrice] == "" {
		return model.Transaction{}, errors.New("missing price")
	}
	price, err := decimal.NewFromString(record[colPrice])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing price %q: %w", record[colPrice], err)
	}

	if record[colCat] == "" {
		return model.Transaction{}, errors.New("missing category")
	}

	return model.Transaction{
		Date:     date,
		Price:    price,
		Category: record[colCat],
		Purpose:  record[colPurpose],
		Note:     record[colNote],
	}, nil
}
