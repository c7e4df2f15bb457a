package executors

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/yurifrl/fintrack/pkg/config"
	"github.com/yurifrl/fintrack/pkg/ledger"
	"github.com/yurifrl/fintrack/pkg/models"
	"github.com/yurifrl/fintrack/pkg/ynab"
)

// Executor runs the YNAB synchronization flows against the local ledger.
type Executor struct {
	logger  *log.Logger
	config  *config.Config
	tracker *ledger.Tracker
	ynab    *ynab.Client
}

func New(logger *log.Logger, config *config.Config, tracker *ledger.Tracker, ynab *ynab.Client) *Executor {
	return &Executor{
		logger:  logger,
		config:  config,
		tracker: tracker,
		ynab:    ynab,
	}
}

// buildRemoteReport reconciles every ledger record against the configured
// YNAB account.
func (e *Executor) buildRemoteReport() (*Report, error) {
	if e.config.YNAB.BudgetID == "" || e.config.YNAB.AccountID == "" {
		return nil, fmt.Errorf("ynab budget_id and account_id must be configured")
	}

	local := make([]models.Record, 0, e.tracker.Len())
	for _, r := range e.tracker.Records() {
		local = append(local, r)
	}

	remote, err := e.ynab.Transaction().GetTransactionsByAccount(e.config.YNAB.BudgetID, e.config.YNAB.AccountID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch remote transactions: %w", err)
	}

	return BuildReport(local, remote, e.config.UseCustomID), nil
}
