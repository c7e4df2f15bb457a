package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"

	"github.com/yurifrl/fintrack/pkg/models"
)

// ParseOFX parses bank and credit-card OFX statements.
func (p *Parser) ParseOFX(data []byte) ([]models.Record, error) {
	resp, err := ofxgo.ParseResponse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ofx: %w", err)
	}

	messages := append(resp.Bank, resp.CreditCard...)
	if len(messages) == 0 {
		return nil, fmt.Errorf("ofx has no bank or credit card statements")
	}

	var records []models.Record
	for _, msg := range messages {
		var transactions []ofxgo.Transaction
		switch stmt := msg.(type) {
		case *ofxgo.StatementResponse:
			if stmt.BankTranList != nil {
				transactions = stmt.BankTranList.Transactions
			}
		case *ofxgo.CCStatementResponse:
			if stmt.BankTranList != nil {
				transactions = stmt.BankTranList.Transactions
			}
		default:
			return nil, fmt.Errorf("unexpected ofx response type %T", msg)
		}

		for _, tr := range transactions {
			value, err := decimal.NewFromString(tr.TrnAmt.String())
			if err != nil {
				p.logger.Debug("skipping ofx transaction with unparseable amount", "fitid", tr.FiTID, "error", err)
				continue
			}

			description := strings.TrimSpace(string(tr.Name))
			if description == "" {
				description = strings.TrimSpace(string(tr.Memo))
			}

			records = append(records, statementRecord(tr.DtPosted.Time, description, value))
		}
	}

	return records, nil
}
