package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yurifrl/fintrack/pkg/menu"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Manage the ledger through the interactive menu",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger := newLogger()
		_, tracker, err := openTracker(cmd)
		if err != nil {
			return err
		}
		return menu.New(tracker, os.Stdin, os.Stdout, logger).Run()
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
}
