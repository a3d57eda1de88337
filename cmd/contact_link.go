package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"glamhaven/pkg/models"
	"glamhaven/pkg/services"
)

// newContactLinkCmd creates a command that prints the deep link a contact form would open
func newContactLinkCmd() *cobra.Command {
	var entry models.ContactEntry

	cmd := &cobra.Command{
		Use:   "contact-link",
		Short: "Print a prefilled WhatsApp link",
		Long:  `Print the WhatsApp deep link the contact form opens for the given details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			services.InitService(cfg)
			fmt.Fprintln(cmd.OutOrStdout(), services.ContactLink(entry))
			return nil
		},
	}

	cmd.Flags().StringVar(&entry.Name, "name", "", "Customer name")
	cmd.Flags().StringVar(&entry.Phone, "phone", "", "Customer phone")
	cmd.Flags().StringVar(&entry.Date, "date", "", "Event date")
	cmd.Flags().StringVar(&entry.Message, "message", "", "Message")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
