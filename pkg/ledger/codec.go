package ledger

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yurifrl/fintrack/pkg/models"
)

// Labels of the persisted block format. The literal Russian text is the
// compatibility contract with existing data files.
const (
	labelDate        = "Дата"
	labelCategory    = "Категория"
	labelAmount      = "Сумма"
	labelDescription = "Описание"
)

// DecodeError reports a malformed value in the persisted file.
type DecodeError struct {
	Line int
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// decodeRecords parses the line-oriented block format. A block starts at a
// date label and runs until the next one or end of input; field order inside
// a block does not matter. Unrecognized lines, blank separators included,
// are skipped. A malformed amount fails the whole decode.
func decodeRecords(r io.Reader) ([]models.Record, error) {
	var records []models.Record
	var current *models.Record

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		label, value, ok := splitLabel(strings.TrimSpace(scanner.Text()))
		if !ok {
			continue
		}

		if label == labelDate {
			if current != nil {
				records = append(records, *current)
			}
			current = &models.Record{Date: value}
			continue
		}
		if current == nil {
			// Field line before any block has started.
			continue
		}

		switch label {
		case labelCategory:
			current.Category = models.Category(value)
		case labelAmount:
			amount, err := decimal.NewFromString(value)
			if err != nil {
				return nil, &DecodeError{Line: line, Err: err}
			}
			current.Amount = amount
		case labelDescription:
			current.Description = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// The trailing block has no following date line to flush it.
	if current != nil {
		records = append(records, *current)
	}
	return records, nil
}

// splitLabel splits "<Label>: <value>" on the first ": "; the value is
// everything after it.
func splitLabel(line string) (label, value string, ok bool) {
	label, value, ok = strings.Cut(line, ": ")
	if !ok {
		return "", "", false
	}
	return label, value, true
}

// encodeRecords writes records in the block format: four labeled lines plus
// a blank separator line after every record, the last one included.
func encodeRecords(w io.Writer, records []models.Record) error {
	for _, r := range records {
		_, err := fmt.Fprintf(w, "%s: %s\n%s: %s\n%s: %s\n%s: %s\n\n",
			labelDate, r.Date,
			labelCategory, r.Category,
			labelAmount, r.AmountString(),
			labelDescription, r.Description,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
