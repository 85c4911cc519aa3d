package account

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema bootstraps the accounts tables. Idempotent; run via `efp db init`.
const schema = `
CREATE SCHEMA IF NOT EXISTS accounts;

CREATE TABLE IF NOT EXISTS accounts.users (
	id                BIGSERIAL PRIMARY KEY,
	email             VARCHAR(255) NOT NULL UNIQUE,
	password_hash     VARCHAR(255) NOT NULL,
	name              VARCHAR(255) NOT NULL,
	approved          BOOLEAN NOT NULL DEFAULT FALSE,
	phone             VARCHAR(20),
	pan_number        VARCHAR(10),
	kyc_status        VARCHAR(20) NOT NULL DEFAULT 'pending',
	risk_profile      VARCHAR(20) NOT NULL DEFAULT 'moderate',
	referral_code     VARCHAR(12) UNIQUE,
	referred_by       BIGINT REFERENCES accounts.users(id),
	terms_version     VARCHAR(10),
	terms_accepted_at TIMESTAMPTZ,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS accounts.capital_records (
	id            BIGSERIAL PRIMARY KEY,
	user_id       BIGINT NOT NULL REFERENCES accounts.users(id),
	date          DATE NOT NULL,
	invested      DOUBLE PRECISION NOT NULL,
	current_value DOUBLE PRECISION NOT NULL,
	note          VARCHAR(255),
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT uq_user_date UNIQUE (user_id, date)
);

CREATE TABLE IF NOT EXISTS accounts.referrals (
	id             BIGSERIAL PRIMARY KEY,
	referrer_id    BIGINT NOT NULL REFERENCES accounts.users(id),
	referred_email VARCHAR(255) NOT NULL,
	status         VARCHAR(20) NOT NULL DEFAULT 'invited',
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_capital_records_user
	ON accounts.capital_records (user_id, date);
CREATE INDEX IF NOT EXISTS idx_referrals_referrer
	ON accounts.referrals (referrer_id);
`

// EnsureSchema creates the accounts schema and tables if missing.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure accounts schema: %w", err)
	}
	return nil
}
