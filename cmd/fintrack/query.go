package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every ledger record with its index",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, tracker, err := openTracker(cmd)
		if err != nil {
			return err
		}
		for i, r := range tracker.Records() {
			fmt.Println(formatRecord(i, r))
		}
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search records by date, category or exact amount",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, tracker, err := openTracker(cmd)
		if err != nil {
			return err
		}
		for i, r := range tracker.Search(args[0]) {
			fmt.Println(formatRecord(i, r))
		}
		return nil
	},
}

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show the current balance, total income and total expense",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, tracker, err := openTracker(cmd)
		if err != nil {
			return err
		}
		balance := tracker.Balance()
		fmt.Printf("Текущий баланс: %s\n", balance.Net)
		fmt.Printf("Общий доход: %s\n", balance.Income)
		fmt.Printf("Общий расход: %s\n", balance.Expense)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(balanceCmd)
}
