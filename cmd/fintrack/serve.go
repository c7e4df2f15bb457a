package main

import (
	"github.com/spf13/cobra"

	"github.com/yurifrl/fintrack/pkg/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the ledger over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger := newLogger()
		cfg, tracker, err := openTracker(cmd)
		if err != nil {
			return err
		}
		return server.New(cfg, logger, tracker).Start(cfg.Server.Addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default :3000)")
	rootCmd.AddCommand(serveCmd)
}
