// Package hash provides helpers for hashing and verifying secrets.
//
// Only the digest is ever persisted; verification recomputes the digest from
// user input and compares in constant time.
package hash
