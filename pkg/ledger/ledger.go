package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yurifrl/fintrack/pkg/models"
)

// ErrIndexOutOfRange is returned by Edit and Delete when the index does not
// address an existing record. The operation is a no-op in that case.
var ErrIndexOutOfRange = errors.New("record index out of range")

// Tracker owns the ordered record list and is the sole writer of the backing
// file. In-memory order is insertion order and doubles as the display index.
// Every mutation rewrites the whole file.
type Tracker struct {
	path    string
	records []models.Record
}

// Open loads the ledger at path. A missing file is not an error; the ledger
// starts empty.
func Open(path string) (*Tracker, error) {
	t := &Tracker{path: path}
	if err := t.load(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tracker) load() error {
	f, err := os.Open(t.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to open ledger file: %w", err)
	}
	defer f.Close()

	records, err := decodeRecords(f)
	if err != nil {
		return fmt.Errorf("failed to load ledger file %s: %w", t.path, err)
	}
	t.records = records
	return nil
}

// Save rewrites the backing file from the in-memory list. This is a
// destructive overwrite; external modifications made since load are lost.
func (t *Tracker) Save() error {
	f, err := os.Create(t.path)
	if err != nil {
		return fmt.Errorf("failed to create ledger file: %w", err)
	}
	defer f.Close()

	if err := encodeRecords(f, t.records); err != nil {
		return fmt.Errorf("failed to write ledger file %s: %w", t.path, err)
	}
	return nil
}

// Add appends rec to the end of the list and persists. The record is taken
// as given; validation belongs to the input boundary.
func (t *Tracker) Add(rec models.Record) error {
	t.records = append(t.records, rec)
	return t.Save()
}

// Edit replaces the record at index wholesale and persists.
func (t *Tracker) Edit(index int, rec models.Record) error {
	if index < 0 || index >= len(t.records) {
		return ErrIndexOutOfRange
	}
	t.records[index] = rec
	return t.Save()
}

// Delete removes the record at index, shifting later records down by one,
// and persists.
func (t *Tracker) Delete(index int) error {
	if index < 0 || index >= len(t.records) {
		return ErrIndexOutOfRange
	}
	t.records = append(t.records[:index], t.records[index+1:]...)
	return t.Save()
}

// Len returns the number of records.
func (t *Tracker) Len() int {
	return len(t.records)
}

// Path returns the backing file path.
func (t *Tracker) Path() string {
	return t.path
}

// Record returns the record at index.
func (t *Tracker) Record(index int) (models.Record, bool) {
	if index < 0 || index >= len(t.records) {
		return models.Record{}, false
	}
	return t.records[index], true
}

// Records iterates over all records in insertion order together with their
// index.
func (t *Tracker) Records() iter.Seq2[int, models.Record] {
	return func(yield func(int, models.Record) bool) {
		for i, r := range t.records {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Search lazily yields the records matching query with their original index.
// A record matches when query is a non-empty substring of its date or its
// category, or is exactly the decimal string form of its amount.
// Descriptions are not searched.
func (t *Tracker) Search(query string) iter.Seq2[int, models.Record] {
	return func(yield func(int, models.Record) bool) {
		if query == "" {
			return
		}
		for i, r := range t.records {
			if !matches(r, query) {
				continue
			}
			if !yield(i, r) {
				return
			}
		}
	}
}

func matches(r models.Record, query string) bool {
	return strings.Contains(r.Date, query) ||
		strings.Contains(string(r.Category), query) ||
		r.AmountString() == query
}

// Balance sums amounts over the income and expense categories.
func (t *Tracker) Balance() models.Balance {
	income := decimal.Zero
	expense := decimal.Zero
	for _, r := range t.records {
		switch r.Category {
		case models.CategoryIncome:
			income = income.Add(r.Amount)
		case models.CategoryExpense:
			expense = expense.Add(r.Amount)
		}
	}
	return models.Balance{
		Income:  income,
		Expense: expense,
		Net:     income.Sub(expense),
	}
}
