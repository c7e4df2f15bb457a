package parser

import (
	"strings"

	"github.com/yurifrl/fintrack/pkg/models"
)

// ParseTXT parses the plain semicolon flavor: date;description;amount, one
// transaction per line, no header.
func (p *Parser) ParseTXT(data []byte) ([]models.Record, error) {
	var records []models.Record

	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Split(line, ";")
		if len(fields) < 3 {
			continue
		}

		date, ok := parseStatementDate(strings.TrimSpace(fields[0]))
		if !ok {
			p.logger.Debug("skipping line with unparseable date", "line", i+1, "date", fields[0])
			continue
		}

		value, err := parseStatementAmount(fields[2])
		if err != nil {
			p.logger.Debug("skipping line with unparseable amount", "line", i+1, "error", err)
			continue
		}

		records = append(records, statementRecord(date, fields[1], value))
	}

	return records, nil
}
