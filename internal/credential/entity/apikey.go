package entity

import (
	"errors"
	"time"
)

// KeyLength is the fixed length of every issued API key.
const KeyLength = 52

// ErrKeyCollision reports that a freshly generated key already exists. The
// caller retries generation; it never reaches an HTTP response.
var ErrKeyCollision = errors.New("generated key already exists")

// APIKey is a stored credential bound to exactly one email.
type APIKey struct {
	ID          int64
	Email       string
	Key         string
	CreatedBy   string
	CompanyName string
	CreatedAt   time.Time
}
