package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint hits.
const pgUniqueViolation = "23505"

// ErrEmailTaken is returned when a user with the same email already exists.
var ErrEmailTaken = errors.New("email already registered")

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// Repository handles account data persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new account repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// CreateUser inserts a new user and fills in its ID and timestamps.
func (r *Repository) CreateUser(ctx context.Context, u *User) error {
	query := `
		INSERT INTO accounts.users (
			email, password_hash, name, approved, phone, pan_number,
			kyc_status, risk_profile, referred_by, terms_version, terms_accepted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	if u.KYCStatus == "" {
		u.KYCStatus = KYCPending
	}
	if u.RiskProfile == "" {
		u.RiskProfile = RiskModerate
	}

	err := r.pool.QueryRow(ctx, query,
		u.Email, u.PasswordHash, u.Name, u.Approved, u.Phone, u.PANNumber,
		u.KYCStatus, u.RiskProfile, u.ReferredBy, u.TermsVersion, u.TermsAccepted,
	).Scan(&u.ID, &u.CreatedAt)

	if isUniqueViolation(err) {
		return ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUserByEmail retrieves a user by email.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, email, password_hash, name, approved, phone, pan_number,
		       kyc_status, risk_profile, referral_code, referred_by,
		       terms_version, terms_accepted_at, created_at
		FROM accounts.users
		WHERE email = $1
	`

	var u User
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Approved, &u.Phone, &u.PANNumber,
		&u.KYCStatus, &u.RiskProfile, &u.ReferralCode, &u.ReferredBy,
		&u.TermsVersion, &u.TermsAccepted, &u.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

// AssignReferralCode generates and stores a unique referral code for the
// user, retrying on the rare collision. One code per user: an existing code
// is returned unchanged.
func (r *Repository) AssignReferralCode(ctx context.Context, userID int64) (string, error) {
	var existing *string
	err := r.pool.QueryRow(ctx,
		`SELECT referral_code FROM accounts.users WHERE id = $1`, userID,
	).Scan(&existing)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read referral code: %w", err)
	}
	if existing != nil {
		return *existing, nil
	}

	const maxAttempts = 5
	for attempt := 0; attempt < maxAttempts; attempt++ {
		code, err := GenerateReferralCode()
		if err != nil {
			return "", err
		}

		_, err = r.pool.Exec(ctx,
			`UPDATE accounts.users SET referral_code = $1 WHERE id = $2`, code, userID)
		if isUniqueViolation(err) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to assign referral code: %w", err)
		}
		return code, nil
	}

	return "", fmt.Errorf("failed to assign referral code after %d attempts", maxAttempts)
}

// UpsertCapitalRecord inserts a capital snapshot, replacing an existing one
// for the same user and date.
func (r *Repository) UpsertCapitalRecord(ctx context.Context, rec *CapitalRecord) error {
	query := `
		INSERT INTO accounts.capital_records (user_id, date, invested, current_value, note)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, date) DO UPDATE SET
			invested = EXCLUDED.invested,
			current_value = EXCLUDED.current_value,
			note = EXCLUDED.note
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		rec.UserID, rec.Date, rec.Invested, rec.CurrentValue, rec.Note,
	).Scan(&rec.ID, &rec.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to upsert capital record: %w", err)
	}

	return nil
}

// ListCapitalRecords retrieves a user's capital history, oldest first.
func (r *Repository) ListCapitalRecords(ctx context.Context, userID int64) ([]CapitalRecord, error) {
	query := `
		SELECT id, user_id, date, invested, current_value, note, created_at
		FROM accounts.capital_records
		WHERE user_id = $1
		ORDER BY date ASC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list capital records: %w", err)
	}
	defer rows.Close()

	var records []CapitalRecord
	for rows.Next() {
		var rec CapitalRecord
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Date, &rec.Invested,
			&rec.CurrentValue, &rec.Note, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan capital record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// CreateReferral records an invitation.
func (r *Repository) CreateReferral(ctx context.Context, ref *Referral) error {
	query := `
		INSERT INTO accounts.referrals (referrer_id, referred_email, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	if ref.Status == "" {
		ref.Status = ReferralInvited
	}

	err := r.pool.QueryRow(ctx, query,
		ref.ReferrerID, ref.ReferredEmail, ref.Status,
	).Scan(&ref.ID, &ref.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create referral: %w", err)
	}

	return nil
}

// UpdateReferralStatus advances an invitation to a new status.
func (r *Repository) UpdateReferralStatus(ctx context.Context, id int64, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE accounts.referrals SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update referral: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListReferralsByReferrer retrieves a user's sent invitations, newest first.
func (r *Repository) ListReferralsByReferrer(ctx context.Context, referrerID int64) ([]Referral, error) {
	query := `
		SELECT id, referrer_id, referred_email, status, created_at
		FROM accounts.referrals
		WHERE referrer_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, referrerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list referrals: %w", err)
	}
	defer rows.Close()

	var referrals []Referral
	for rows.Next() {
		var ref Referral
		if err := rows.Scan(
			&ref.ID, &ref.ReferrerID, &ref.ReferredEmail, &ref.Status, &ref.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan referral: %w", err)
		}
		referrals = append(referrals, ref)
	}

	return referrals, rows.Err()
}

// LatestCapitalByUser returns each approved user's most recent capital
// snapshot as of the given date, for the monthly statement run.
func (r *Repository) LatestCapitalByUser(ctx context.Context, asOf time.Time) ([]CapitalRecord, error) {
	query := `
		SELECT DISTINCT ON (c.user_id)
		       c.id, c.user_id, c.date, c.invested, c.current_value, c.note, c.created_at
		FROM accounts.capital_records c
		JOIN accounts.users u ON u.id = c.user_id
		WHERE u.approved AND c.date <= $1
		ORDER BY c.user_id, c.date DESC
	`

	rows, err := r.pool.Query(ctx, query, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to list latest capital: %w", err)
	}
	defer rows.Close()

	var records []CapitalRecord
	for rows.Next() {
		var rec CapitalRecord
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Date, &rec.Invested,
			&rec.CurrentValue, &rec.Note, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan capital record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
