package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"glamhaven/pkg/hero"
	"glamhaven/pkg/models"
)

// newHeroCmd creates a command that previews the hero word rotation in the terminal
func newHeroCmd() *cobra.Command {
	var interval = hero.Interval

	cmd := &cobra.Command{
		Use:   "hero",
		Short: "Preview the hero word rotation",
		Long:  `Print the hero words in the order and at the pace the site rotates them. Stop with Ctrl-C.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			cycler := hero.NewCycler(hero.Words, interval)
			fmt.Fprintf(out, "Rent %s Dresses\n", cycler.Current().Text)

			err := cycler.Run(ctx, func(w models.HeroWord) {
				fmt.Fprintf(out, "Rent %s Dresses (%s, from %s)\n", w.Text, w.Color, w.Direction)
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", hero.Interval, "Time each word stays on screen")
	return cmd
}
