package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/yurifrl/fintrack/pkg/csv"
	"github.com/yurifrl/fintrack/pkg/models"
)

var exportFilters filters

var exportCmd = &cobra.Command{
	Use:   "export [output.csv]",
	Short: "Export the ledger as YNAB import CSV",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, tracker, err := openTracker(cmd)
		if err != nil {
			return err
		}
		filter, err := exportFilters.toFilterFunc()
		if err != nil {
			return err
		}

		records := make([]models.Record, 0, tracker.Len())
		for _, r := range tracker.Records() {
			records = append(records, r)
		}
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Date < records[j].Date
		})

		out := csv.Create(records, filter)
		if len(args) == 1 {
			return os.WriteFile(args[0], out, 0o644)
		}
		fmt.Print(string(out))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFilters.startDate, "start", "", "Start date (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportFilters.endDate, "end", "", "End date (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportFilters.minAmount, "min", "", "Minimum amount")
	exportCmd.Flags().StringVar(&exportFilters.maxAmount, "max", "", "Maximum amount")
	exportCmd.Flags().StringVar(&exportFilters.payee, "payee", "", "Filter by description (case insensitive)")
	exportCmd.Flags().StringVar(&exportFilters.category, "category", "", "Filter by category (Доход/Расход)")
	rootCmd.AddCommand(exportCmd)
}
