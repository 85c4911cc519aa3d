package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/efpwealth/platform/pkg/config"
	"github.com/efpwealth/platform/pkg/database"
	"github.com/efpwealth/platform/pkg/logger"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "efp",
	Short: "EFP Wealth - site generation and client account tooling",
	Long: `EFP Wealth CLI

Generates the public site artifacts (site_metrics.json, landing.html, a PNG
equity preview) from the walk-forward equity curves, and manages client
account data (capital records, referrals) in PostgreSQL.

Examples:
  go run ./cmd/efp generate
  go run ./cmd/efp landing
  go run ./cmd/efp preview
  go run ./cmd/efp db init
  go run ./cmd/efp account capital add --email a@b.c --date 2025-06-30 --invested 5000000 --value 6200000`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
}

// initDeps loads config and builds the logger every command needs.
func initDeps() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if verbose {
		cfg.LogLevel = "debug"
	}

	return cfg, logger.New(cfg), nil
}

// initDBDeps additionally opens the database pool.
func initDBDeps() (*config.Config, *logger.Logger, *database.DB, error) {
	cfg, log, err := initDeps()
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := database.New(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	return cfg, log, db, nil
}
