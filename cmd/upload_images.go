package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"glamhaven/pkg/config"
	"glamhaven/pkg/services"
)

// newUploadImagesCmd creates a command that publishes a local image tree to the catalog bucket
func newUploadImagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload-images [dir]",
		Short: "Upload dress photos to the catalog bucket",
		Long: `Upload every image under dir laid out as <category>/<brand>/<title>.<jpg|jpeg|png|webp>
to the catalog bucket. Images that fail to decode or are a single flat color are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if cfg.BucketName == "" {
				return config.ErrBucketNameNotSet
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			result, err := services.UploadImages(ctx, cfg.BucketName, args[0], func(name string, done, total int) {
				fmt.Fprintf(out, "[%d/%d] %s\n", done, total, name)
			})
			if err != nil {
				return err
			}

			for _, name := range result.Skipped {
				logger.Info("Skipped", "file", name)
			}
			fmt.Fprintf(out, "Uploaded %d images, skipped %d\n", result.Uploaded, len(result.Skipped))
			return nil
		},
	}
}
