package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yurifrl/fintrack/pkg/csv"
	"github.com/yurifrl/fintrack/pkg/models"
)

type filters struct {
	startDate string
	endDate   string
	minAmount string
	maxAmount string
	payee     string
	category  string
}

// toFilterFunc validates the flag values and builds the export predicate.
// Dates are normalized YYYY-MM-DD, so plain string comparison orders them.
func (f *filters) toFilterFunc() (csv.FilterFunc, error) {
	for _, date := range []string{f.startDate, f.endDate} {
		if date != "" && !models.IsValidDate(date) {
			return nil, fmt.Errorf("date %q must be in YYYY-MM-DD form", date)
		}
	}

	var minAmount, maxAmount decimal.Decimal
	var hasMin, hasMax bool
	var err error
	if f.minAmount != "" {
		if minAmount, err = decimal.NewFromString(f.minAmount); err != nil {
			return nil, fmt.Errorf("minimum amount %q must be a decimal number", f.minAmount)
		}
		hasMin = true
	}
	if f.maxAmount != "" {
		if maxAmount, err = decimal.NewFromString(f.maxAmount); err != nil {
			return nil, fmt.Errorf("maximum amount %q must be a decimal number", f.maxAmount)
		}
		hasMax = true
	}

	var category models.Category
	if f.category != "" {
		if category, err = models.ParseCategory(f.category); err != nil {
			return nil, err
		}
	}

	return func(r models.Record) bool {
		if f.startDate != "" && r.Date < f.startDate {
			return false
		}
		if f.endDate != "" && r.Date > f.endDate {
			return false
		}
		if hasMin && r.Amount.LessThan(minAmount) {
			return false
		}
		if hasMax && r.Amount.GreaterThan(maxAmount) {
			return false
		}
		if f.payee != "" && !strings.Contains(strings.ToLower(r.Description), strings.ToLower(f.payee)) {
			return false
		}
		if category != "" && r.Category != category {
			return false
		}
		return true
	}, nil
}
