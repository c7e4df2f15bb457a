package models

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Category labels a record as income or expense. The two literal values are
// part of the persisted file format and must not be translated.
type Category string

const (
	CategoryIncome  Category = "Доход"
	CategoryExpense Category = "Расход"
)

// Valid reports whether the category is one of the two known sentinels.
func (c Category) Valid() bool {
	return c == CategoryIncome || c == CategoryExpense
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory converts user input into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// Record is one ledger entry. Fields are plain values; validation happens at
// the input boundary, never on construction.
type Record struct {
	Date        string
	Category    Category
	Amount      decimal.Decimal
	Description string
}

// ID derives a stable identity from the record content: the first 8
// characters of the SHA-256 over all four fields. Used for import
// deduplication and as the memo custom ID on synced transactions.
func (r Record) ID() string {
	input := fmt.Sprintf("%s|%s|%s|%s", r.Date, r.Category, r.Amount.String(), r.Description)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash)[:8]
}

// AmountString renders the amount with its stored scale, so "50.0" stays
// "50.0". Decimal's String trims trailing zeros, which would rewrite the
// persisted form and change what exact amount search has to match.
func (r Record) AmountString() string {
	if exp := r.Amount.Exponent(); exp < 0 {
		return r.Amount.StringFixed(-exp)
	}
	return r.Amount.String()
}

// IsValidDate reports whether s is a real calendar date in zero-padded
// YYYY-MM-DD form. time.Parse alone accepts "2024-1-1", so the formatted
// result is compared back against the input.
func IsValidDate(s string) bool {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return false
	}
	return t.Format("2006-01-02") == s
}

// Balance aggregates record amounts by category.
type Balance struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}
