package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIsValidDate(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"2024-01-01", true},
		{"2024-02-29", true},
		{"2023-02-29", false},
		{"2024-13-01", false},
		{"2024-1-1", false},
		{"2024-01-1", false},
		{"24-01-01", false},
		{"2024/01/01", false},
		{"2024-01-32", false},
		{"", false},
		{"сегодня", false},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := IsValidDate(tc.in); got != tc.want {
				t.Errorf("IsValidDate(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	if c, err := ParseCategory("Доход"); err != nil || c != CategoryIncome {
		t.Errorf("ParseCategory(Доход) = %v, %v", c, err)
	}
	if c, err := ParseCategory("Расход"); err != nil || c != CategoryExpense {
		t.Errorf("ParseCategory(Расход) = %v, %v", c, err)
	}
	if _, err := ParseCategory("доход"); err == nil {
		t.Error("ParseCategory should reject lowercase variant")
	}
	if _, err := ParseCategory(""); err == nil {
		t.Error("ParseCategory should reject empty string")
	}
}

func TestAmountString(t *testing.T) {
	cases := []struct{ in, want string }{
		{"50", "50"},
		{"50.0", "50.0"},
		{"50.00", "50.00"},
		{"0.5", "0.5"},
		{"1234.56", "1234.56"},
		{"0", "0"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			r := Record{Amount: decimal.RequireFromString(tc.in)}
			if got := r.AmountString(); got != tc.want {
				t.Errorf("AmountString() = %q, want %q", got, tc.want)
			}
		})
	}

	var zero Record
	if got := zero.AmountString(); got != "0" {
		t.Errorf("zero record AmountString() = %q, want %q", got, "0")
	}
}

func TestRecordID(t *testing.T) {
	r := Record{
		Date:        "2024-01-01",
		Category:    CategoryIncome,
		Amount:      decimal.RequireFromString("50.0"),
		Description: "зарплата",
	}

	id := r.ID()
	if len(id) != 8 {
		t.Fatalf("ID length = %d, want 8", len(id))
	}
	if id != r.ID() {
		t.Error("ID must be stable across calls")
	}

	other := r
	other.Description = "аванс"
	if other.ID() == id {
		t.Error("records with different content must have different IDs")
	}

	rescaled := r
	rescaled.Amount = decimal.RequireFromString("50")
	if rescaled.ID() != id {
		t.Error("amounts that differ only in scale must share an ID")
	}
}

func TestNewMoney(t *testing.T) {
	m := NewMoney(decimal.RequireFromString("105.50"), "RUB")
	if m.IsZero() {
		t.Fatal("expected non-zero money")
	}
	if m.String() == "" {
		t.Error("expected formatted output for RUB")
	}

	unknown := NewMoney(decimal.NewFromInt(1), "ZZZ")
	if !unknown.IsZero() {
		t.Error("unknown currency should produce zero money")
	}
	if unknown.String() != "" {
		t.Errorf("unknown currency String() = %q, want empty", unknown.String())
	}
}
