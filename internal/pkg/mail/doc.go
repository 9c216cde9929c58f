// Package mail abstracts outbound email delivery. The secrets this service
// issues (API keys and one-time passcodes) reach their owners through this
// channel in plaintext; nothing in this package persists them.
package mail
