package main

import (
	"context"
	"os"

	"crypto_dash/internal/app"
	"crypto_dash/internal/quotes"

	"github.com/spf13/cobra"
)

var quotesCmd = &cobra.Command{
	Use:   "quotes",
	Short: "Fetch quotes once and print the strip",
	RunE: func(cmd *cobra.Command, args []string) error {
		bootstrap := app.NewBootstrap()
		if err := bootstrap.Initialize(configPath); err != nil {
			return err
		}

		d := bootstrap.Dashboard
		if err := d.Boot(); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), bootstrap.Config.FetchTimeout())
		defer cancel()
		if err := bootstrap.Poller.Refresh(ctx); err != nil {
			return err
		}

		return quotes.NewTextTarget(os.Stdout).Paint(d.Frame())
	},
}

func init() {
	rootCmd.AddCommand(quotesCmd)
}
