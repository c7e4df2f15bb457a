package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yurifrl/fintrack/pkg/models"
	"github.com/yurifrl/fintrack/pkg/parser"
	"github.com/yurifrl/fintrack/pkg/service"
)

var manifestPath string

var importCmd = &cobra.Command{
	Use:   "import [path]",
	Short: "Import bank statements into the ledger",
	Long: "Import parses CSV, TXT, XLS or OFX statements and appends the records " +
		"that are not in the ledger yet. Path may be a file or a directory; " +
		"--manifest imports the statements a YAML manifest lists.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		_, tracker, err := openTracker(cmd)
		if err != nil {
			return err
		}
		processor := service.NewProcessor(logger, parser.New(logger), tracker)

		var added int
		switch {
		case manifestPath != "":
			m, err := models.ManifestFromFile(manifestPath)
			if err != nil {
				return err
			}
			added, err = processor.ImportManifest(m)
			if err != nil {
				return err
			}
		case len(args) == 1:
			info, err := os.Stat(args[0])
			if err != nil {
				return err
			}
			if info.IsDir() {
				added, err = processor.ImportDirectory(args[0])
			} else {
				added, err = processor.ImportFile(args[0])
			}
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("either a path or --manifest is required")
		}

		fmt.Printf("Imported %d record(s)\n", added)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&manifestPath, "manifest", "", "YAML manifest of statements to import")
	rootCmd.AddCommand(importCmd)
}
