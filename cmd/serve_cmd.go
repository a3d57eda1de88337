package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"glamhaven/pkg/server"
	"glamhaven/pkg/services"
)

// newServeCmd creates a new command for serving the web application
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Long:  `Start the web server to serve the site over HTTP until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			services.InitService(cfg)

			cfg.PrintServerStartMessage()
			if err := server.Run(cfg, logger); err != nil {
				logger.Error("Server error", "error", err)
				return err
			}
			return nil
		},
	}
}
