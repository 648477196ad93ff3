// Package service defines interfaces for domain capabilities provided by the infrastructure layer.
package service

// PasswordHasher stores and verifies the passwords of locally managed accounts.
type PasswordHasher interface {
	// Hash returns a salted hash of password, safe to persist.
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}
