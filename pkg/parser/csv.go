package parser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/yurifrl/fintrack/pkg/models"
)

// ParseCSV parses a delimited statement with a header row. Column positions
// are located by header keywords, Russian or English; semicolon and comma
// separators are both accepted. Rows with unparseable dates or amounts are
// skipped, not fatal.
func (p *Parser) ParseCSV(data []byte) ([]models.Record, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("csv is empty")
		}
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	if len(header) < 2 {
		// Single column means the separator was wrong, retry with commas.
		reader = csv.NewReader(bytes.NewReader(data))
		reader.FieldsPerRecord = -1
		if header, err = reader.Read(); err != nil {
			return nil, fmt.Errorf("failed to read csv header: %w", err)
		}
	}

	dateIdx, descIdx, amountIdx := -1, -1, -1
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		switch {
		case strings.Contains(h, "дата") || strings.Contains(h, "date"):
			dateIdx = i
		case strings.Contains(h, "опис") || strings.Contains(h, "назначение") || strings.Contains(h, "desc") || strings.Contains(h, "memo"):
			descIdx = i
		case strings.Contains(h, "сумма") || strings.Contains(h, "amount") || strings.Contains(h, "value"):
			amountIdx = i
		}
	}
	if dateIdx == -1 || amountIdx == -1 {
		return nil, fmt.Errorf("required columns not found in csv header %v", header)
	}

	var records []models.Record
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		line++

		if len(row) <= dateIdx || len(row) <= amountIdx {
			continue
		}

		date, ok := parseStatementDate(strings.TrimSpace(row[dateIdx]))
		if !ok {
			p.logger.Debug("skipping row with unparseable date", "line", line, "date", row[dateIdx])
			continue
		}

		value, err := parseStatementAmount(row[amountIdx])
		if err != nil {
			p.logger.Debug("skipping row with unparseable amount", "line", line, "error", err)
			continue
		}

		description := ""
		if descIdx != -1 && len(row) > descIdx {
			description = row[descIdx]
		}

		records = append(records, statementRecord(date, description, value))
	}

	p.logger.Debug("csv parsing complete", "records", len(records))
	return records, nil
}
