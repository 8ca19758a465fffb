// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lumina-bi",
	Short: "Lumina BI persistence and identity layer",
	Long: `Lumina BI is a business-intelligence web platform. This binary manages
its persistence layer: schema migration, default data seeding and
directory-integration checks.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
