// Package dataset loads the static transaction dataset a report is built from.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/efreport/efreport/internal/model"
)

// ErrUnknownFormat is returned when no reader is registered for a dataset file.
var ErrUnknownFormat = errors.New("unknown dataset format")

// Reader decodes a dataset into transactions. Readers reject records that
// are missing a price or category instead of guessing a value.
type Reader interface {
	Read(r io.Reader) ([]model.Transaction, error)
	Format() string
}

// Registry holds readers by format name.
type Registry struct {
	readers map[string]Reader
}

// NewRegistry creates an empty reader registry.
func NewRegistry() *Registry {
	return &Registry{readers: make(map[string]Reader)}
}

// Register adds a reader. Panics on duplicate format.
func (r *Registry) Register(rd Reader) {
	key := strings.ToLower(rd.Format())
	if _, ok := r.readers[key]; ok {
		panic("duplicate dataset format: " + key)
	}
	r.readers[key] = rd
}

// Get returns the reader for format, or nil.
func (r *Registry) Get(format string) Reader {
	return r.readers[strings.ToLower(format)]
}

// ReaderFor picks a reader from the file extension of path.
func (r *Registry) ReaderFor(path string) (Reader, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	rd := r.Get(ext)
	if rd == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Base(path))
	}
	return rd, nil
}

// Load reads the dataset file at path.
func (r *Registry) Load(path string) ([]model.Transaction, error) {
	rd, err := r.ReaderFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	txns, err := rd.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}
	return txns, nil
}

// DefaultRegistry returns a registry with the JSON and CSV readers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&JSONReader{})
	r.Register(&CSVReader{})
	return r
}

// Load reads path with the default registry.
func Load(path string) ([]model.Transaction, error) {
	return DefaultRegistry().Load(path)
}
