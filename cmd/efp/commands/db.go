package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/efpwealth/platform/internal/account"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database administration",
}

var dbInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the accounts schema and tables",
	Long: `Creates the accounts schema (users, capital_records, referrals) if it does
not exist. Idempotent.

Example:
  go run ./cmd/efp db init`,
	RunE: runDBInit,
}

var dbStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check database connectivity and pool stats",
	RunE:  runDBStatus,
}

func init() {
	rootCmd.AddCommand(dbCmd)
	dbCmd.AddCommand(dbInitCmd)
	dbCmd.AddCommand(dbStatusCmd)
}

func runDBInit(cmd *cobra.Command, args []string) error {
	_, log, db, err := initDBDeps()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := account.EnsureSchema(cmd.Context(), db.Pool); err != nil {
		return err
	}

	log.Info("Accounts schema ready")
	fmt.Println("Accounts schema ready")
	return nil
}

func runDBStatus(cmd *cobra.Command, args []string) error {
	_, _, db, err := initDBDeps()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Ping(cmd.Context()); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}

	stats := db.Stats()
	fmt.Printf("Database OK (conns: %d total, %d idle, max %d)\n",
		stats.TotalConns, stats.IdleConns, stats.MaxConns)
	return nil
}
