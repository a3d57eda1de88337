package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"glamhaven/pkg/gallery"
	"glamhaven/pkg/services"
)

// newListCategoriesCmd creates a new command for listing categories
func newListCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-categories",
		Short: "List all dress categories",
		Long:  `List the gallery filter categories with the number of dresses in each.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			services.InitService(cfg)
			listCategories(cmd)
			return nil
		},
	}
}

// listCategories displays all categories and their item counts
func listCategories(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	b := gallery.NewBrowser(services.GetItems(), services.SiteConfig().PageSize)
	categories := b.CategoryCounts()

	fmt.Fprintln(out, "Dress Categories:")
	fmt.Fprintln(out, "=================")

	for _, c := range categories {
		pages := 0
		if err := b.SetCategory(c.Name); err == nil {
			pages = b.TotalPages()
		}
		fmt.Fprintf(out, "%s\n", c.Label)
		fmt.Fprintf(out, "  Dresses: %d\n", c.Count)
		fmt.Fprintf(out, "  Pages: %d\n", pages)
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "Total: %d categories\n", len(categories)-1)
}
