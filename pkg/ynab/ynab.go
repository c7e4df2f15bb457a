package ynab

import (
	"strings"

	"github.com/brunomvsouza/ynab.go"
	"github.com/brunomvsouza/ynab.go/api/transaction"
)

// Client wraps the YNAB API client and resolves the record identity that the
// exporter plants in transaction memos.
type Client struct {
	client ynab.ClientServicer
}

// TransactionService wraps the upstream transaction service.
type TransactionService struct {
	original *transaction.Service
}

// Transaction carries the upstream transaction plus the CustomID extracted
// from the first CSV field of the memo.
type Transaction struct {
	*transaction.Transaction
	customID string
}

// NewTransaction wraps an upstream transaction, extracting its custom identity.
func NewTransaction(tx *transaction.Transaction) *Transaction {
	return &Transaction{Transaction: tx, customID: extractCustomID(tx)}
}

// TODO: memo assembly lives in pkg/csv and pkg/executors while parsing lives
// here, fold the format into one helper.
func extractCustomID(tx *transaction.Transaction) string {
	if tx == nil || tx.Memo == nil {
		return ""
	}
	memo := strings.Trim(*tx.Memo, "\"")
	if idx := strings.Index(memo, ","); idx > 0 {
		return memo[:idx]
	}
	return ""
}

func New(token string) *Client {
	return &Client{client: ynab.NewClient(token)}
}

func (c *Client) Transaction() *TransactionService {
	return &TransactionService{original: c.client.Transaction()}
}

// GetTransactionsByAccount fetches account transactions and annotates each
// with its custom identity.
func (ts *TransactionService) GetTransactionsByAccount(budgetID, accountID string, filter *transaction.Filter) ([]*Transaction, error) {
	upstream, err := ts.original.GetTransactionsByAccount(budgetID, accountID, filter)
	if err != nil {
		return nil, err
	}

	transactions := make([]*Transaction, 0, len(upstream))
	for _, tx := range upstream {
		transactions = append(transactions, NewTransaction(tx))
	}
	return transactions, nil
}

// CreateTransactions pushes the payloads in a single API call.
func (ts *TransactionService) CreateTransactions(budgetID string, payloads []transaction.PayloadTransaction) error {
	if len(payloads) == 0 {
		return nil
	}
	_, err := ts.original.CreateTransactions(budgetID, payloads)
	return err
}

func (t *Transaction) CustomID() string {
	return t.customID
}
