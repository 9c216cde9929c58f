package entity

import "time"

// OTPLength is the fixed length of every generated passcode.
const OTPLength = 6

// ActiveOTP is the single outstanding passcode for an end-user identity.
// Only the hash of the passcode is ever stored.
type ActiveOTP struct {
	UserEmail string
	OTPHash   string
	ExpiresAt time.Time
}

// Expired reports whether the passcode is past its validity window at now.
func (o ActiveOTP) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
