// Package clock abstracts the system clock behind a small interface so that
// time-dependent logic (OTP expiry in particular) can be tested with a fixed
// or movable clock.
package clock
