package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"glamhaven/pkg/gallery"
	"glamhaven/pkg/services"
)

// newListItemsCmd creates a new command for listing gallery items
func newListItemsCmd() *cobra.Command {
	var category string
	var page int

	cmd := &cobra.Command{
		Use:   "list-items",
		Short: "List gallery items",
		Long:  `List the gallery items of one page, filtered by category, the way the site shows them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			services.InitService(cfg)
			return listItems(cmd, category, page)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", gallery.All, "Only list items of this category")
	cmd.Flags().IntVar(&page, "page", 1, "Page to list")
	return cmd
}

// listItems displays one page of the filtered gallery
func listItems(cmd *cobra.Command, category string, page int) error {
	out := cmd.OutOrStdout()
	b := gallery.NewBrowser(services.GetItems(), services.SiteConfig().PageSize)
	if err := b.SetCategory(category); err != nil {
		return err
	}
	if page != 1 && !b.ChangePage(page) {
		return fmt.Errorf("page %d out of range (1-%d)", page, b.TotalPages())
	}

	p := b.Pagination()
	fmt.Fprintf(out, "Category: %s\n", gallery.Label(b.Category()))
	fmt.Fprintf(out, "Page %d of %d\n", p.CurrentPage, p.TotalPages)
	fmt.Fprintln(out, "================")

	for _, item := range b.Visible() {
		fmt.Fprintf(out, "%3d. %s (%s, %s)\n", item.ID, item.Title, item.Brand, item.Category)
	}

	fmt.Fprintf(out, "\nShowing %d of %d items\n", len(b.Visible()), p.Total)
	return nil
}
