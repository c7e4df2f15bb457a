package parser

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/yurifrl/fintrack/pkg/models"
)

// FileType identifies a supported statement flavor.
type FileType string

const (
	StatementCSV FileType = "statement_csv"
	StatementTXT FileType = "statement_txt"
	StatementXLS FileType = "statement_xls"
	StatementOFX FileType = "statement_ofx"
)

// Parser converts raw bank statement files into ledger record candidates.
type Parser struct {
	logger *log.Logger
}

func New(logger *log.Logger) *Parser {
	return &Parser{
		logger: logger,
	}
}

// ProcessBytes detects the statement flavor from the filename and parses the
// payload. Dates are normalized to YYYY-MM-DD; negative amounts become
// expense records carrying the absolute value.
func (p *Parser) ProcessBytes(data []byte, filename string) ([]models.Record, error) {
	fileType := detectType(filename)
	p.logger.Debug("detected file type", "type", fileType, "filename", filename)

	switch fileType {
	case StatementCSV:
		return p.ParseCSV(data)
	case StatementTXT:
		return p.ParseTXT(data)
	case StatementXLS:
		return p.ParseXLS(data)
	case StatementOFX:
		return p.ParseOFX(data)
	default:
		p.logger.Debug("unknown file type", "filename", filename)
		return nil, fmt.Errorf("unsupported statement file %q", filename)
	}
}

// SupportedFile reports whether filename looks like a statement this parser
// can handle.
func SupportedFile(filename string) bool {
	return detectType(filename) != ""
}

func detectType(filename string) FileType {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return StatementCSV
	case ".txt":
		return StatementTXT
	case ".xls":
		return StatementXLS
	case ".ofx":
		return StatementOFX
	}
	return ""
}

var dateLayouts = []string{
	"2006-01-02",
	"02.01.2006",
	"02/01/2006",
	"02-01-2006",
	"2006-01-02 15:04:05",
}

func parseStatementDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// parseStatementAmount accepts the numeric forms banks emit: comma decimal
// separator, space or NBSP thousand groups, an optional currency sign.
func parseStatementAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.Trim(s, "₽")
	s = strings.ReplaceAll(s, ",", ".")
	return decimal.NewFromString(s)
}

// statementRecord normalizes one parsed statement row into a ledger record.
func statementRecord(date time.Time, description string, value decimal.Decimal) models.Record {
	category := models.CategoryIncome
	if value.IsNegative() {
		category = models.CategoryExpense
		value = value.Neg()
	}
	return models.Record{
		Date:        date.Format("2006-01-02"),
		Category:    category,
		Amount:      value,
		Description: strings.TrimSpace(description),
	}
}
