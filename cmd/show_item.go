package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"glamhaven/pkg/services"
)

// newShowItemCmd creates a new command for showing item details
func newShowItemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-item [id]",
		Short: "Show a gallery item",
		Long:  `Show detailed information about a gallery item, including the image URLs the site serves for it.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			cfg, _, err := LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			services.InitService(cfg)
			return showItem(cmd, id)
		},
	}
}

// showItem displays details about a specific item
func showItem(cmd *cobra.Command, id int) error {
	item, err := services.GetItem(id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Item: %s\n", item.Title)
	fmt.Fprintf(out, "Brand: %s\n", item.Brand)
	fmt.Fprintf(out, "Category: %s\n", item.Category)
	fmt.Fprintf(out, "Alt: %s\n", item.Alt)
	fmt.Fprintln(out, "================")
	fmt.Fprintf(out, "Source: %s\n", item.Image)
	fmt.Fprintf(out, "Gallery: %s\n", services.GalleryImageURL(item.Image))
	fmt.Fprintf(out, "Placeholder: %s\n", services.Placeholder(item.Image))
	fmt.Fprintf(out, "Srcset: %s\n", services.SrcSet(item.Image, services.DefaultSrcSetWidths, 75, services.FormatWebP))
	return nil
}
