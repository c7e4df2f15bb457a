package main

import (
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/yurifrl/fintrack/pkg/models"
)

var dumpCmd = &cobra.Command{
	Use:    "dump",
	Short:  "Dump the resolved configuration and ledger records",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, tracker, err := openTracker(cmd)
		if err != nil {
			return err
		}

		records := make([]models.Record, 0, tracker.Len())
		for _, r := range tracker.Records() {
			records = append(records, r)
		}

		pp.Println(cfg)
		pp.Println(records)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
