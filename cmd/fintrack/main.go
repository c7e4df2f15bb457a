package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yurifrl/fintrack/pkg/config"
	"github.com/yurifrl/fintrack/pkg/ledger"
	"github.com/yurifrl/fintrack/pkg/models"
)

var (
	cfgFile   string
	debugMode bool
)

var rootCmd = &cobra.Command{
	Use:   "fintrack",
	Short: "Personal finance ledger",
	Long:  "fintrack keeps a plain-text ledger of income and expense records, imports bank statements and syncs the ledger with YNAB.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

func newLogger() *log.Logger {
	level := log.InfoLevel
	if debugMode {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    debugMode,
		ReportTimestamp: true,
		Prefix:          "fintrack",
		Level:           level,
	})
}

// buildConfig loads configuration with the command's flags bound on top.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	return config.Build(cfgFile, cmd.Flags())
}

func openTracker(cmd *cobra.Command) (*config.Config, *ledger.Tracker, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	tracker, err := ledger.Open(cfg.DataFile)
	if err != nil {
		return nil, nil, err
	}
	return cfg, tracker, nil
}

// formatRecord renders one ledger record the way the console dialogue does.
func formatRecord(index int, r models.Record) string {
	return fmt.Sprintf("%d: Дата: %s, Категория: %s, Сумма: %s, Описание: %s", index, r.Date, r.Category, r.AmountString(), r.Description)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is fintrack.yaml)")
	rootCmd.PersistentFlags().StringP("file", "f", "", "Ledger data file (default data.txt)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
