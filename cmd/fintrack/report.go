package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/yurifrl/fintrack/pkg/models"
	"github.com/yurifrl/fintrack/pkg/report"
)

var reportRaw bool

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render a monthly income and expense summary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, tracker, err := openTracker(cmd)
		if err != nil {
			return err
		}

		records := make([]models.Record, 0, tracker.Len())
		for _, r := range tracker.Records() {
			records = append(records, r)
		}

		var md strings.Builder
		report.Build(records).Render(&md, cfg.Currency)

		if reportRaw {
			fmt.Print(md.String())
			return nil
		}

		renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
		if err != nil {
			return err
		}
		out, err := renderer.Render(md.String())
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	reportCmd.Flags().BoolVar(&reportRaw, "raw", false, "Print plain markdown instead of rendering it")
	rootCmd.AddCommand(reportCmd)
}
