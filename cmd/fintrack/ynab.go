package main

import (
	"github.com/spf13/cobra"

	"github.com/yurifrl/fintrack/pkg/executors"
	"github.com/yurifrl/fintrack/pkg/ynab"
)

var ynabCmd = &cobra.Command{
	Use:   "ynab",
	Short: "Synchronize the ledger with YNAB",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Preview which records would be pushed to YNAB (dry-run)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		exec, err := buildExecutor(cmd)
		if err != nil {
			return err
		}
		return exec.Plan()
	},
}

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Create the records missing from the YNAB account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		exec, err := buildExecutor(cmd)
		if err != nil {
			return err
		}
		return exec.Push()
	},
}

func buildExecutor(cmd *cobra.Command) (*executors.Executor, error) {
	logger := newLogger()
	cfg, tracker, err := openTracker(cmd)
	if err != nil {
		return nil, err
	}
	token, err := cfg.Token()
	if err != nil {
		return nil, err
	}
	return executors.New(logger, cfg, tracker, ynab.New(token)), nil
}

func init() {
	ynabCmd.AddCommand(planCmd)
	ynabCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(ynabCmd)
}
