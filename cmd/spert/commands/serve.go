package commands

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/spertscheduler/engine/config"
	"github.com/spertscheduler/engine/httpapi"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP transport",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := serveAddr
		if addr == "" {
			processCfg, err := config.LoadProcessConfig(envPath)
			if err != nil {
				return err
			}
			addr = processCfg.HTTPAddr
		}

		registry := prometheus.NewRegistry()
		server := httpapi.NewServer(registry, logger)
		return httpapi.Serve(context.Background(), addr, server.Handler(), logger)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "HTTP listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
