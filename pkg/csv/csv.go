package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/yurifrl/fintrack/pkg/models"
)

// FilterFunc selects which records make it into the export.
type FilterFunc func(models.Record) bool

// Create renders records as YNAB import CSV. The description maps to Payee,
// the record identity travels in Memo, and the category picks the Outflow or
// Inflow column.
func Create(records []models.Record, filter FilterFunc) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write([]string{"Date", "Payee", "Memo", "Outflow", "Inflow"})
	for _, r := range records {
		if filter != nil && !filter(r) {
			continue
		}

		outflow, inflow := "", ""
		amount := r.Amount.StringFixed(2)
		if r.Category == models.CategoryExpense {
			outflow = amount
		} else {
			inflow = amount
		}

		_ = w.Write([]string{
			r.Date,
			r.Description,
			fmt.Sprintf("%s,fintrack,-", r.ID()),
			outflow,
			inflow,
		})
	}

	w.Flush()
	return buf.Bytes()
}
