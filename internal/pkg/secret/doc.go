// Package secret generates fixed-length random strings from a
// cryptographically secure source. It is the single entropy source for both
// long-lived API keys and short-lived one-time passcodes, which differ only
// in length and alphabet.
package secret
