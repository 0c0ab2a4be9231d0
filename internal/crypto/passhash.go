// Package crypto implements server-side password hashing and verification.
package crypto

import "golang.org/x/crypto/bcrypt"

// bcryptCost is the work factor for password hashing. 12 is slow enough to
// resist offline brute force while staying acceptable for interactive login.
const bcryptCost = 12

// HashPassword returns the bcrypt hash of password (salt embedded in the hash).
func HashPassword(password []byte) ([]byte, error) {
	return bcrypt.GenerateFromPassword(password, bcryptCost)
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
func VerifyPassword(password, hash []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, password) == nil
}
