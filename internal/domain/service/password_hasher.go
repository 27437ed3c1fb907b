// Package service defines interfaces for stateless domain logic that does
// not belong to any single entity, such as credential hashing and tokens.
package service

// PasswordHasher hashes plaintext passwords and verifies them against
// stored hashes. The concrete algorithm lives in the infrastructure layer.
type PasswordHasher interface {
	// Hash produces a salted hash of the given plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the hash.
	Check(password, hash string) bool
}
