package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor passed to bcrypt when hashing passwords.
// Raising it slows both hashing and brute-force attempts.
const bcryptCost = 10

// HashPassword hashes a plaintext password with bcrypt.
//
// Every call produces a different hash for the same input because bcrypt
// embeds a random salt into the output. The resulting string is safe to
// store as-is; verification goes through [ComparePassword].
//
// Parameters:
//
//	plain - the plaintext password to hash
//
// Returns:
//
//	string - the bcrypt hash in its standard encoded form
//	error  - non-nil if the underlying bcrypt call fails
//
// Example usage:
//
//	hash, err := utils.HashPassword("secret1")
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// ComparePassword reports whether plain matches the given bcrypt hash.
//
// Any bcrypt error (including a malformed hash) is treated as a mismatch;
// callers only need the boolean outcome and must not distinguish failure
// modes, which keeps credential checks constant in shape.
func ComparePassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
