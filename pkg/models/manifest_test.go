package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

type stubParser struct {
	records []Record
}

func (p *stubParser) ProcessBytes(data []byte, filename string) ([]Record, error) {
	return p.records, nil
}

func TestManifestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.yaml")
	content := `statements:
  - type: bank_csv
    file: statements/january.csv
  - type: bank_txt
    file: statements/february.txt
    category: Расход
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	m, err := ManifestFromFile(path)
	if err != nil {
		t.Fatalf("ManifestFromFile failed: %v", err)
	}
	if len(m.Statements) != 2 {
		t.Fatalf("statements = %d, want 2", len(m.Statements))
	}
	if m.Statements[0].Type != "bank_csv" || m.Statements[0].FilePath != "statements/january.csv" {
		t.Errorf("unexpected first statement: %+v", m.Statements[0])
	}
	if m.Statements[1].Category != CategoryExpense {
		t.Errorf("category override = %q, want Расход", m.Statements[1].Category)
	}
}

func TestManifestFromFileRejectsBadCategory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.yaml")
	content := `statements:
  - file: a.csv
    category: Savings
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	if _, err := ManifestFromFile(path); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestStatementRecordsAppliesCategoryOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statement.csv")
	if err := os.WriteFile(path, []byte("ignored"), 0644); err != nil {
		t.Fatalf("write statement: %v", err)
	}

	p := &stubParser{records: []Record{
		{Date: "2024-01-01", Category: CategoryIncome, Amount: decimal.NewFromInt(10)},
		{Date: "2024-01-02", Category: CategoryIncome, Amount: decimal.NewFromInt(20)},
	}}

	st := &Statement{FilePath: path, Category: CategoryExpense}
	records, err := st.Records(p)
	if err != nil {
		t.Fatalf("Records failed: %v", err)
	}
	for i, r := range records {
		if r.Category != CategoryExpense {
			t.Errorf("record %d category = %q, want Расход", i, r.Category)
		}
	}
}
