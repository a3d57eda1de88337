package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"glamhaven/pkg/services"
)

// newExportCmd creates a new command for exporting catalog data
func newExportCmd() *cobra.Command {
	var base bool

	cmd := &cobra.Command{
		Use:   "export [format]",
		Short: "Export catalog data",
		Long: `Export the catalog in the specified format. Supported formats: json, yaml.
The yaml output can be used as a CATALOG_FILE.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"json", "yaml"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			services.InitService(cfg)

			format := "json"
			if len(args) > 0 {
				format = args[0]
			}
			return exportData(cmd, format, base)
		},
	}

	cmd.Flags().BoolVar(&base, "base", false, "Export the base catalog instead of the duplicated gallery")
	return cmd
}

// exportData writes the catalog in the specified format
func exportData(cmd *cobra.Command, format string, base bool) error {
	items := services.GetItems()
	if base {
		items = items[:len(items)/services.DuplicationFactor]
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case "json":
		data, err = json.MarshalIndent(items, "", "  ")
	case "yaml", "yml":
		data, err = services.MarshalCatalog(items)
	default:
		return fmt.Errorf("unsupported export format: %s (supported: json, yaml)", format)
	}
	if err != nil {
		return fmt.Errorf("error marshaling data: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
