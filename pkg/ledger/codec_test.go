package ledger

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/yurifrl/fintrack/pkg/models"
)

func TestEncodeFormat(t *testing.T) {
	records := []models.Record{
		{Date: "2024-01-01", Category: models.CategoryIncome, Amount: dec(t, "100.5"), Description: "зарплата"},
		{Date: "2024-01-02", Category: models.CategoryExpense, Amount: dec(t, "40"), Description: "продукты"},
	}

	var buf bytes.Buffer
	if err := encodeRecords(&buf, records); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	want := "Дата: 2024-01-01\n" +
		"Категория: Доход\n" +
		"Сумма: 100.5\n" +
		"Описание: зарплата\n" +
		"\n" +
		"Дата: 2024-01-02\n" +
		"Категория: Расход\n" +
		"Сумма: 40\n" +
		"Описание: продукты\n" +
		"\n"
	if buf.String() != want {
		t.Errorf("encoded file:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestDecodeFieldOrderIrrelevant(t *testing.T) {
	input := "Дата: 2024-05-05\n" +
		"Описание: перестановка\n" +
		"Сумма: 3.50\n" +
		"Категория: Расход\n"

	records, err := decodeRecords(strings.NewReader(input))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	r := records[0]
	if r.Date != "2024-05-05" || r.Category != models.CategoryExpense || r.AmountString() != "3.50" || r.Description != "перестановка" {
		t.Errorf("decoded record = %+v", r)
	}
}

func TestDecodeTrailingBlockKept(t *testing.T) {
	// No blank line and no further date label after the last block.
	input := "Дата: 2024-01-01\nКатегория: Доход\nСумма: 1\nОписание: a\n\nДата: 2024-01-02\nКатегория: Расход\nСумма: 2\nОписание: b"

	records, err := decodeRecords(strings.NewReader(input))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[1].Date != "2024-01-02" || records[1].Description != "b" {
		t.Errorf("trailing record = %+v", records[1])
	}
}

func TestDecodeIgnoresUnrecognizedLines(t *testing.T) {
	input := "Категория: Доход\n" + // field line before any block
		"# комментарий\n" +
		"Дата:2024-09-09\n" + // no space after the colon
		"\n" +
		"Дата: 2024-01-01\n" +
		"Примечание: лишнее\n" +
		"Категория: Доход\n" +
		"Сумма: 10\n" +
		"Описание: ужин\n" +
		"\n" +
		"случайный текст\n"

	records, err := decodeRecords(strings.NewReader(input))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	r := records[0]
	if r.Date != "2024-01-01" || r.Category != models.CategoryIncome || r.Amount.String() != "10" || r.Description != "ужин" {
		t.Errorf("decoded record = %+v", r)
	}
}

func TestDecodeMalformedAmountFails(t *testing.T) {
	input := "Дата: 2024-01-01\n" +
		"Категория: Доход\n" +
		"Сумма: пятьдесят\n" +
		"Описание: x\n"

	_, err := decodeRecords(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected decode error for malformed amount")
	}

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("error type = %T, want *DecodeError", err)
	}
	if decodeErr.Line != 3 {
		t.Errorf("error line = %d, want 3", decodeErr.Line)
	}
}

func TestDecodeDefaultsMissingFields(t *testing.T) {
	records, err := decodeRecords(strings.NewReader("Дата: 2024-01-01\n"))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	r := records[0]
	if r.Category != "" || r.Description != "" || r.Amount.String() != "0" {
		t.Errorf("defaults = %+v", r)
	}
}

func TestDecodeKeepsAmountScale(t *testing.T) {
	cases := []struct{ in, want string }{
		{"50.0", "50.0"},
		{"50.00", "50.00"},
		{"50", "50"},
		{"0.5", "0.5"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			input := "Дата: 2024-01-01\nСумма: " + tc.in + "\n"
			records, err := decodeRecords(strings.NewReader(input))
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if got := records[0].AmountString(); got != tc.want {
				t.Errorf("amount string = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDecodeValueKeepsEverythingAfterFirstSplit(t *testing.T) {
	input := "Дата: 2024-01-01\nОписание: обед: кафе у дома\n"

	records, err := decodeRecords(strings.NewReader(input))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got := records[0].Description; got != "обед: кафе у дома" {
		t.Errorf("description = %q, want %q", got, "обед: кафе у дома")
	}
}

func TestEncodeDecodeLegacyFile(t *testing.T) {
	// A file in the historical layout must survive a load+save cycle
	// byte for byte.
	legacy := "Дата: 2024-03-08\n" +
		"Категория: Расход\n" +
		"Сумма: 250.0\n" +
		"Описание: цветы\n" +
		"\n"

	records, err := decodeRecords(strings.NewReader(legacy))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	var buf bytes.Buffer
	if err := encodeRecords(&buf, records); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if buf.String() != legacy {
		t.Errorf("legacy round trip:\n%q\nwant:\n%q", buf.String(), legacy)
	}
}
