// Package service defines interfaces for the collaborators the use cases
// depend on but do not implement.
package service

// PasswordHasher hashes and verifies passwords for the local auth provider.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool
}
