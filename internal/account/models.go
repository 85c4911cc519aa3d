package account

import (
	"crypto/rand"
	"fmt"
	"time"
)

// KYC statuses a user moves through.
const (
	KYCPending   = "pending"
	KYCSubmitted = "submitted"
	KYCVerified  = "verified"
)

// Risk profiles selectable at onboarding.
const (
	RiskConservative = "conservative"
	RiskModerate     = "moderate"
	RiskAggressive   = "aggressive"
)

// Referral invitation statuses.
const (
	ReferralInvited    = "invited"
	ReferralRegistered = "registered"
	ReferralApproved   = "approved"
)

// User is a client account. Nullable columns are pointers.
type User struct {
	ID            int64      `json:"id"`
	Email         string     `json:"email"`
	PasswordHash  string     `json:"-"`
	Name          string     `json:"name"`
	Approved      bool       `json:"approved"`
	Phone         *string    `json:"phone,omitempty"`
	PANNumber     *string    `json:"pan_number,omitempty"`
	KYCStatus     string     `json:"kyc_status"`
	RiskProfile   string     `json:"risk_profile"`
	ReferralCode  *string    `json:"referral_code,omitempty"`
	ReferredBy    *int64     `json:"referred_by,omitempty"`
	TermsVersion  *string    `json:"terms_version,omitempty"`
	TermsAccepted *time.Time `json:"terms_accepted_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// CapitalRecord is a snapshot of a client's deployed capital and portfolio
// value. At most one record exists per user per date.
type CapitalRecord struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Date         time.Time `json:"date"`
	Invested     float64   `json:"invested"`      // total capital deployed, cumulative
	CurrentValue float64   `json:"current_value"` // current portfolio value
	Note         *string   `json:"note,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Referral tracks an invitation and its progress.
type Referral struct {
	ID            int64     `json:"id"`
	ReferrerID    int64     `json:"referrer_id"`
	ReferredEmail string    `json:"referred_email"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

const referralCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const referralCodeLength = 6

// GenerateReferralCode produces a code like "EFP-A3K7M2". Uniqueness is
// enforced by the database; callers retry on collision.
func GenerateReferralCode() (string, error) {
	buf := make([]byte, referralCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate referral code: %w", err)
	}
	for i, b := range buf {
		buf[i] = referralCodeAlphabet[int(b)%len(referralCodeAlphabet)]
	}
	return "EFP-" + string(buf), nil
}
