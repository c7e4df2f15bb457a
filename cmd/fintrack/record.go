package main

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/yurifrl/fintrack/pkg/models"
)

var addCmd = &cobra.Command{
	Use:   "add <date> <category> <amount> [description]",
	Short: "Add a record to the ledger",
	Args:  cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, tracker, err := openTracker(cmd)
		if err != nil {
			return err
		}

		record, err := recordFromArgs(args)
		if err != nil {
			return err
		}
		if err := tracker.Add(record); err != nil {
			return err
		}

		fmt.Println(formatRecord(tracker.Len()-1, record))
		return nil
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <index> <date> <category> <amount> [description]",
	Short: "Replace a ledger record by index",
	Args:  cobra.RangeArgs(4, 5),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("index %q must be an integer", args[0])
		}
		record, err := recordFromArgs(args[1:])
		if err != nil {
			return err
		}

		_, tracker, err := openTracker(cmd)
		if err != nil {
			return err
		}
		if err := tracker.Edit(index, record); err != nil {
			return err
		}

		fmt.Println(formatRecord(index, record))
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <index>",
	Short: "Delete a ledger record by index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("index %q must be an integer", args[0])
		}

		_, tracker, err := openTracker(cmd)
		if err != nil {
			return err
		}
		return tracker.Delete(index)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
}

// recordFromArgs builds a record from date, category, amount and an optional
// description.
func recordFromArgs(args []string) (models.Record, error) {
	if !models.IsValidDate(args[0]) {
		return models.Record{}, fmt.Errorf("date %q must be in YYYY-MM-DD form", args[0])
	}
	category, err := models.ParseCategory(args[1])
	if err != nil {
		return models.Record{}, err
	}
	amount, err := decimal.NewFromString(args[2])
	if err != nil {
		return models.Record{}, fmt.Errorf("amount %q must be a decimal number", args[2])
	}
	if amount.IsNegative() {
		return models.Record{}, fmt.Errorf("amount must not be negative")
	}

	record := models.Record{Date: args[0], Category: category, Amount: amount}
	if len(args) == 4 {
		record.Description = args[3]
	}
	return record, nil
}
