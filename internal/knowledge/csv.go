package knowledge

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// header matches the historical on-disk form: two columns, header row,
// UTF-8, created lazily on first append.
var header = []string{"Question", "Answer"}

// CSVRepository is the default flat-file store. An RWMutex serializes
// appends and lets lookups read a consistent snapshot; without it two
// concurrent turns could interleave writes mid-row.
type CSVRepository struct {
	path string
	mu   sync.RWMutex
}

func NewCSV(path string) *CSVRepository {
	return &CSVRepository{path: path}
}

func (r *CSVRepository) Exists(ctx context.Context) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, err := os.Stat(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat store: %w", err)
	}
	return true, nil
}

func (r *CSVRepository) Lookup(ctx context.Context, normalized string) (Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records, err := r.read()
	if err != nil {
		return Match{}, err
	}
	return BestMatch(normalized, records), nil
}

func (r *CSVRepository) Append(ctx context.Context, q, answer string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	info, err := os.Stat(r.path)
	needHeader := errors.Is(err, fs.ErrNotExist) || (err == nil && info.Size() == 0)

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if needHeader {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	if err := w.Write([]string{q, answer}); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush store: %w", err)
	}
	return nil
}

// read loads all records, skipping the header row. A missing file reads as
// empty; a malformed file is an error the caller degrades on.
func (r *CSVRepository) read() ([]Record, error) {
	f, err := os.Open(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 2
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse store: %w", err)
	}

	var records []Record
	for i, row := range rows {
		if i == 0 && row[0] == header[0] && row[1] == header[1] {
			continue
		}
		records = append(records, Record{Question: row[0], Answer: row[1]})
	}
	return records, nil
}
