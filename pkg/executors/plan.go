package executors

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/yurifrl/fintrack/pkg/models"
)

// Plan reconciles the ledger against the configured YNAB account and prints a
// human-readable preview. All heavy lifting is delegated to BuildReport.
func (e *Executor) Plan() error {
	e.logger.Debug("planning ledger sync", "file", e.tracker.Path())

	report, err := e.buildRemoteReport()
	if err != nil {
		return err
	}

	e.logger.Debug("processing plan report", "total", len(report.Items), "in_sync", report.InSyncCount(), "to_add", report.MissingCount())

	syncedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // gray
	addedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green

	for _, m := range report.Items {
		if m.Status == Synced {
			line := fmt.Sprintf("%s | %-30s | %s | %s | %s", m.Local.Date, m.Local.Description, m.Local.ID(), m.Remote.CustomID(), e.displayAmount(m.Local))
			fmt.Println(syncedStyle.Render("= " + line))
			continue // nothing to add
		}

		line := fmt.Sprintf("%s | %-30s | %s | %s | %s", m.Local.Date, m.Local.Description, m.Local.ID(), "xxxxxxxx", e.displayAmount(m.Local))
		fmt.Println(addedStyle.Render("+ " + line))
	}

	if report.MissingCount() == 0 {
		fmt.Printf("\nPlan: All %d record(s) are in sync\n", report.InSyncCount())
	} else {
		fmt.Printf("\nPlan: %d record(s) will be added, %d already in sync\n", report.MissingCount(), report.InSyncCount())
	}

	return nil
}

func (e *Executor) displayAmount(r models.Record) string {
	if m := models.NewMoney(signedAmount(r), e.config.Currency); m.String() != "" {
		return m.String()
	}
	return signedAmount(r).StringFixed(2)
}
