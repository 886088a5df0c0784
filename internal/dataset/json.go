package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/efreport/efreport/internal/model"
)

// JSONReader reads the published dataset shape: an array of
// {"date": "YYYY-MM-DD"|null, "price": number, "category": string,
// "purpose"?: string, "note"?: string}.
type JSONReader struct{}

type jsonRecord struct {
	Date     *string          `json:"date"`
	Price    *decimal.Decimal `json:"price"`
	Category *string          `json:"category"`
	Purpose  string           `json:"purpose,omitempty"`
	Note     string           `json:"note,omitempty"`
}

// Format returns the reader name.
func (p *JSONReader) Format() string { return "json" }

// Read decodes a JSON array of records.
func (p *JSONReader) Read(r io.Reader) ([]model.Transaction, error) {
	dec := json.NewDecoder(r)
	var raw []json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding JSON dataset: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("decoding JSON dataset: unexpected data after array")
	}

	txns := make([]model.Transaction, 0, len(raw))
	for i, msg := range raw {
		var rec jsonRecord
		if err := json.Unmarshal(msg, &rec); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		txn, err := rec.transaction()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func (rec jsonRecord) transaction() (model.Transaction, error) {
	if rec.Price == nil {
		return model.Transaction{}, errors.New("missing price")
	}
	if rec.Category == nil || *rec.Category == "" {
		return model.Transaction{}, errors.New("missing category")
	}

	var dateStr string
	if rec.Date != nil {
		dateStr = *rec.Date
	}
	date, err := model.ParseDate(dateStr)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", dateStr, err)
	}

	return model.Transaction{
		Date:     date,
		Price:    *rec.Price,
		Category: *rec.Category,
		Purpose:  rec.Purpose,
		Note:     rec.Note,
	}, nil
}

type jsonOutRecord struct {
	Date     *string     `json:"date"`
	Price    json.Number `json:"price"`
	Category string      `json:"category"`
	Purpose  string      `json:"purpose,omitempty"`
	Note     string      `json:"note,omitempty"`
}

// WriteJSON writes txns in the shape JSONReader reads. Prices are bare JSON
// numbers and absent dates are null.
func WriteJSON(w io.Writer, txns []model.Transaction) error {
	records := make([]jsonOutRecord, len(txns))
	for i, t := range txns {
		records[i] = jsonOutRecord{
			Price:    json.Number(t.Price.String()),
			Category: t.Category,
			Purpose:  t.Purpose,
			Note:     t.Note,
		}
		if t.HasDate() {
			d := t.DateString()
			records[i].Date = &d
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding JSON dataset: %w", err)
	}
	return nil
}
