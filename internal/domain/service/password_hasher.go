// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
type PasswordHasher interface {
	// Hash takes a plaintext password and returns a salted digest.
	// Two calls with the same input produce different digests.
	Hash(password string) (string, error)

	// Check reports whether password reproduces hash. A malformed hash never matches.
	Check(password, hash string) bool
}
