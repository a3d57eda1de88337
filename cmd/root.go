package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"glamhaven/pkg/config"
	"glamhaven/pkg/logging"
)

// Configuration flags
var (
	envFile       string
	whatsApp      string
	secretKey     string
	portNumber    string
	catalogSource string
	catalogFile   string
	bucketName    string
	logLevel      string
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "glamhaven",
		Short: "GlamHaven serves the dress rental site",
		Long: `GlamHaven is a command line application that serves the dress rental
single-page site and lets you inspect the catalog it is built from. The catalog
comes from the built-in list, a YAML file or a Google Cloud Storage bucket.`,
		SilenceUsage: true,
	}

	// Define persistent flags that will be available for all commands
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Read environment variables from this file if it exists")
	rootCmd.PersistentFlags().StringVarP(&whatsApp, "whatsapp", "w", "", "Set the WHATSAPP_NUMBER (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&secretKey, "secret-key", "s", "", "Set the SECRET_KEY (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&portNumber, "port", "p", "", "Set the PORT (overrides environment variable)")
	rootCmd.PersistentFlags().StringVar(&catalogSource, "catalog-source", "", "Set the CATALOG_SOURCE: builtin, file or gcs (overrides environment variable)")
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog-file", "", "Set the CATALOG_FILE (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&bucketName, "bucket", "b", "", "Set the BUCKET_NAME (overrides environment variable)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set the LOG_LEVEL (overrides environment variable)")

	// Add commands to root
	rootCmd.AddCommand(newListCategoriesCmd())
	rootCmd.AddCommand(newListItemsCmd())
	rootCmd.AddCommand(newShowItemCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newContactLinkCmd())
	rootCmd.AddCommand(newHeroCmd())
	rootCmd.AddCommand(newUploadImagesCmd())
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

// LoadConfig loads configuration with respect to command line flags and
// installs the process logger
func LoadConfig() (*config.Config, *slog.Logger, error) {
	if err := config.LoadDotEnv(envFile); err != nil {
		return nil, nil, err
	}

	// Set environment variables from flags if provided
	overrides := map[string]string{
		"WHATSAPP_NUMBER": whatsApp,
		"SECRET_KEY":      secretKey,
		"PORT":            portNumber,
		"CATALOG_SOURCE":  catalogSource,
		"CATALOG_FILE":    catalogFile,
		"BUCKET_NAME":     bucketName,
		"LOG_LEVEL":       logLevel,
	}
	for key, value := range overrides {
		if value != "" {
			os.Setenv(key, value)
		}
	}

	// Load configuration from environment variables (potentially set above)
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	logger := logging.Setup(logging.Options{
		Writer: os.Stderr,
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	return cfg, logger, nil
}
