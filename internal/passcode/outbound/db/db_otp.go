package db

import (
	"context"
	"time"

	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/passcode/entity"
)

const queryGetActiveOTP = `
SELECT user_email, otp_hash, expires_at
FROM active_otps
WHERE user_email = $1
`

func (s *DB) GetActiveOTP(ctx context.Context, email string) (_ *entity.ActiveOTP, err error) {
	ctx, span := s.startSpan(ctx, "GetActiveOTP")
	defer func() { s.endSpan(span, err) }()

	var out entity.ActiveOTP
	err = s.conn.QueryRow(ctx, queryGetActiveOTP, email).Scan(
		&out.UserEmail,
		&out.OTPHash,
		&out.ExpiresAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &out, nil
}

const queryUpsertActiveOTP = `
INSERT INTO active_otps (user_email, otp_hash, expires_at)
VALUES ($1, $2, $3)
ON CONFLICT (user_email) DO UPDATE SET
    otp_hash = EXCLUDED.otp_hash,
    expires_at = EXCLUDED.expires_at
`

// UpsertActiveOTP stores the passcode for an identity, silently replacing any
// outstanding one. The unique user_email constraint enforces the
// one-outstanding-passcode-per-identity rule.
func (s *DB) UpsertActiveOTP(ctx context.Context, in entity.ActiveOTP) (err error) {
	ctx, span := s.startSpan(ctx, "UpsertActiveOTP")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryUpsertActiveOTP, in.UserEmail, in.OTPHash, in.ExpiresAt)

	return s.mapError(err)
}

const queryDeleteActiveOTP = `
DELETE FROM active_otps
WHERE user_email = $1
`

func (s *DB) DeleteActiveOTP(ctx context.Context, email string) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteActiveOTP")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryDeleteActiveOTP, email)

	return s.mapError(err)
}

const queryDeleteExpiredOTPs = `
DELETE FROM active_otps
WHERE expires_at < $1
`

// DeleteExpiredOTPs reaps every passcode past its expiry and returns how many
// rows were removed.
func (s *DB) DeleteExpiredOTPs(ctx context.Context, before time.Time) (_ int64, err error) {
	ctx, span := s.startSpan(ctx, "DeleteExpiredOTPs")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, queryDeleteExpiredOTPs, before)
	if err != nil {
		return 0, s.mapError(err)
	}

	return tag.RowsAffected(), nil
}
