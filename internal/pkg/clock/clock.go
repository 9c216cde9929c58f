package clock

import "time"

// Clocker abstracts time so callers can replace real time in tests.
type Clocker interface {
	Now() time.Time
}

// UTCClocker is the production clock. It always reads the system time in UTC
// because every expiry decision in the application is made against UTC.
type UTCClocker struct{}

// New returns a UTCClocker.
func New() *UTCClocker {
	return &UTCClocker{}
}

// Now returns the current system time in UTC.
func (*UTCClocker) Now() time.Time {
	return time.Now().UTC()
}
