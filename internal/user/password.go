package user

import "golang.org/x/crypto/bcrypt"

// Work factor carried over from the reference system.
const bcryptCost = 10

// HashPassword produces a salted bcrypt hash of the plaintext password.
// bcrypt generates the salt itself, so two hashes of the same password differ.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
}

// CheckPassword reports whether the plaintext password matches the stored
// hash. A malformed stored hash simply fails the check.
func CheckPassword(password string, hash []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}
