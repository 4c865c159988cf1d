package domain

import "time"

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated administrator.
type TokenIssuer interface {
	Issue(subject, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated subject.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}
