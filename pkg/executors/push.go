package executors

import (
	"fmt"
)

// Push creates every ledger record missing from the configured YNAB account.
func (e *Executor) Push() error {
	e.logger.Debug("pushing ledger", "file", e.tracker.Path())

	report, err := e.buildRemoteReport()
	if err != nil {
		return err
	}

	toSync := report.RecordsToSync()
	e.logger.Info("records to create", "count", len(toSync), "account_id", e.config.YNAB.AccountID)
	if len(toSync) == 0 {
		return nil
	}

	batch, err := report.Payloads(e.config.YNAB.AccountID)
	if err != nil {
		return err
	}
	if err := e.ynab.Transaction().CreateTransactions(e.config.YNAB.BudgetID, batch); err != nil {
		return fmt.Errorf("failed to create transactions: %w", err)
	}
	e.logger.Info("created transactions", "count", len(batch), "account_id", e.config.YNAB.AccountID)

	return nil
}
