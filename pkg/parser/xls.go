package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/extrame/xls"

	"github.com/yurifrl/fintrack/pkg/models"
)

// ParseXLS parses the bank's XLS export. Everything before the операции
// section marker is preamble; after it rows carry date, description and
// amount columns.
func (p *Parser) ParseXLS(data []byte) ([]models.Record, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "cp1251")
	if err != nil {
		return nil, fmt.Errorf("error creating workbook: %w", err)
	}

	rows := workbook.ReadAllCells(1000)
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in sheet")
	}

	var records []models.Record
	var foundSection bool

	for _, row := range rows {
		if len(row) < 3 {
			continue
		}

		marker := strings.ToLower(strings.TrimSpace(row[0]))
		if marker == "операции" || marker == "движение средств" {
			foundSection = true
			continue
		}
		if !foundSection {
			continue
		}

		// Column header and totals rows inside the section.
		if marker == "дата" || strings.Contains(marker, "итог") || strings.Contains(marker, "остаток") {
			continue
		}

		date, ok := parseStatementDate(strings.TrimSpace(row[0]))
		if !ok {
			continue
		}

		value, err := parseStatementAmount(row[2])
		if err != nil {
			p.logger.Debug("skipping row with unparseable amount", "row", row, "error", err)
			continue
		}

		records = append(records, statementRecord(date, row[1], value))
	}

	return records, nil
}
