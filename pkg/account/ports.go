package account

import "context"

// TokenIssuer abstracts access-token creation (e.g., JWT).
// It allows use cases to stay framework-agnostic.
type TokenIssuer interface {
	Issue(ctx context.Context, acct Account) (string, error)
}

// PasswordHasher abstracts one-way password hashing.
// Verify must return false on mismatch or on a malformed hash, never error.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) bool
}
