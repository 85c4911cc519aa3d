package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/efpwealth/platform/internal/account"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Client account administration",
	Long: `Manages client accounts directly: capital snapshots and referral
invitations. User registration itself happens in the web application; these
commands cover the back-office side.`,
}

var (
	// capital add flags
	capitalEmail    string
	capitalDate     string
	capitalInvested float64
	capitalValue    float64
	capitalNote     string

	// invite flags
	inviteFrom string
	inviteTo   string
)

var accountCapitalCmd = &cobra.Command{
	Use:   "capital",
	Short: "Capital record management",
}

var accountCapitalAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a capital snapshot for a client",
	Long: `Inserts or replaces the client's capital record for a date. One record per
client per date; re-running for the same date overwrites.

Example:
  go run ./cmd/efp account capital add --email a@b.c --date 2025-06-30 --invested 5000000 --value 6200000`,
	RunE: runCapitalAdd,
}

var accountCapitalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a client's capital history",
	RunE:  runCapitalList,
}

var accountInviteCmd = &cobra.Command{
	Use:   "invite",
	Short: "Record a referral invitation",
	Long: `Records a referral invitation from an existing client, assigning the client
a referral code if they do not have one yet.

Example:
  go run ./cmd/efp account invite --from a@b.c --to friend@d.e`,
	RunE: runInvite,
}

func init() {
	rootCmd.AddCommand(accountCmd)
	accountCmd.AddCommand(accountCapitalCmd)
	accountCmd.AddCommand(accountInviteCmd)
	accountCapitalCmd.AddCommand(accountCapitalAddCmd)
	accountCapitalCmd.AddCommand(accountCapitalListCmd)

	accountCapitalAddCmd.Flags().StringVar(&capitalEmail, "email", "", "client email")
	accountCapitalAddCmd.Flags().StringVar(&capitalDate, "date", "", "snapshot date (YYYY-MM-DD, default today)")
	accountCapitalAddCmd.Flags().Float64Var(&capitalInvested, "invested", 0, "total capital deployed")
	accountCapitalAddCmd.Flags().Float64Var(&capitalValue, "value", 0, "current portfolio value")
	accountCapitalAddCmd.Flags().StringVar(&capitalNote, "note", "", "optional note")
	_ = accountCapitalAddCmd.MarkFlagRequired("email")
	_ = accountCapitalAddCmd.MarkFlagRequired("invested")
	_ = accountCapitalAddCmd.MarkFlagRequired("value")

	accountCapitalListCmd.Flags().StringVar(&capitalEmail, "email", "", "client email")
	_ = accountCapitalListCmd.MarkFlagRequired("email")

	accountInviteCmd.Flags().StringVar(&inviteFrom, "from", "", "referring client email")
	accountInviteCmd.Flags().StringVar(&inviteTo, "to", "", "invited email")
	_ = accountInviteCmd.MarkFlagRequired("from")
	_ = accountInviteCmd.MarkFlagRequired("to")
}

func runCapitalAdd(cmd *cobra.Command, args []string) error {
	_, _, db, err := initDBDeps()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := cmd.Context()
	repo := account.NewRepository(db.Pool)

	user, err := lookupUser(ctx, repo, capitalEmail)
	if err != nil {
		return err
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if capitalDate != "" {
		date, err = time.Parse("2006-01-02", capitalDate)
		if err != nil {
			return fmt.Errorf("invalid date: %w", err)
		}
	}

	rec := &account.CapitalRecord{
		UserID:       user.ID,
		Date:         date,
		Invested:     capitalInvested,
		CurrentValue: capitalValue,
	}
	if capitalNote != "" {
		rec.Note = &capitalNote
	}

	if err := repo.UpsertCapitalRecord(ctx, rec); err != nil {
		return err
	}

	fmt.Printf("Capital record %d saved for %s on %s\n",
		rec.ID, user.Email, date.Format("2006-01-02"))
	return nil
}

func runCapitalList(cmd *cobra.Command, args []string) error {
	_, _, db, err := initDBDeps()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := cmd.Context()
	repo := account.NewRepository(db.Pool)

	user, err := lookupUser(ctx, repo, capitalEmail)
	if err != nil {
		return err
	}

	records, err := repo.ListCapitalRecords(ctx, user.ID)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Printf("No capital records for %s\n", user.Email)
		return nil
	}

	fmt.Printf("Capital history for %s:\n", user.Email)
	for _, rec := range records {
		gain := 0.0
		if rec.Invested > 0 {
			gain = (rec.CurrentValue/rec.Invested - 1) * 100
		}
		fmt.Printf("  %s  invested %.2f  value %.2f  (%+.1f%%)\n",
			rec.Date.Format("2006-01-02"), rec.Invested, rec.CurrentValue, gain)
	}
	return nil
}

func runInvite(cmd *cobra.Command, args []string) error {
	_, _, db, err := initDBDeps()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := cmd.Context()
	repo := account.NewRepository(db.Pool)

	user, err := lookupUser(ctx, repo, inviteFrom)
	if err != nil {
		return err
	}

	code, err := repo.AssignReferralCode(ctx, user.ID)
	if err != nil {
		return err
	}

	ref := &account.Referral{
		ReferrerID:    user.ID,
		ReferredEmail: inviteTo,
	}
	if err := repo.CreateReferral(ctx, ref); err != nil {
		return err
	}

	fmt.Printf("Referral %d recorded: %s -> %s (code %s)\n",
		ref.ID, user.Email, inviteTo, code)
	return nil
}

func lookupUser(ctx context.Context, repo *account.Repository, email string) (*account.User, error) {
	user, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", email, err)
	}
	return user, nil
}
