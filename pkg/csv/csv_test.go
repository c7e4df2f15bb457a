package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/yurifrl/fintrack/pkg/models"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("decimal %q: %v", s, err)
	}
	return d
}

func parseOutput(t *testing.T, data []byte) [][]string {
	t.Helper()
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("reading produced csv: %v", err)
	}
	return rows
}

func TestCreate(t *testing.T) {
	records := []models.Record{
		{Date: "2024-01-01", Category: models.CategoryIncome, Amount: dec(t, "100"), Description: "зарплата"},
		{Date: "2024-01-02", Category: models.CategoryExpense, Amount: dec(t, "40.5"), Description: "обед, кафе"},
	}

	rows := parseOutput(t, Create(records, nil))
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}

	header := []string{"Date", "Payee", "Memo", "Outflow", "Inflow"}
	for i, want := range header {
		if rows[0][i] != want {
			t.Errorf("header[%d] = %q, expected %q", i, rows[0][i], want)
		}
	}

	income := rows[1]
	if income[0] != "2024-01-01" || income[1] != "зарплата" {
		t.Errorf("unexpected income row: %v", income)
	}
	if income[3] != "" || income[4] != "100.00" {
		t.Errorf("income must fill Inflow only, got outflow=%q inflow=%q", income[3], income[4])
	}
	wantMemo := fmt.Sprintf("%s,fintrack,-", records[0].ID())
	if income[2] != wantMemo {
		t.Errorf("memo = %q, expected %q", income[2], wantMemo)
	}

	expense := rows[2]
	if expense[1] != "обед, кафе" {
		t.Errorf("comma in payee must survive csv quoting, got %q", expense[1])
	}
	if expense[3] != "40.50" || expense[4] != "" {
		t.Errorf("expense must fill Outflow only, got outflow=%q inflow=%q", expense[3], expense[4])
	}
}

func TestCreateFilter(t *testing.T) {
	records := []models.Record{
		{Date: "2024-01-01", Category: models.CategoryIncome, Amount: dec(t, "100"), Description: "зарплата"},
		{Date: "2024-02-01", Category: models.CategoryExpense, Amount: dec(t, "40"), Description: "обед"},
	}

	rows := parseOutput(t, Create(records, func(r models.Record) bool {
		return r.Category == models.CategoryExpense
	}))
	if len(rows) != 2 {
		t.Fatalf("expected header plus 1 row, got %d", len(rows))
	}
	if rows[1][0] != "2024-02-01" {
		t.Errorf("filter kept the wrong record: %v", rows[1])
	}
}

func TestCreateEmpty(t *testing.T) {
	rows := parseOutput(t, Create(nil, nil))
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %d rows", len(rows))
	}
}
