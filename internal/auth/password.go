package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted bcrypt hash of the plaintext password. Each
// call generates a fresh salt, so hashing the same password twice yields
// different values.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether the plaintext password matches the stored
// hash. Malformed hashes verify as false rather than erroring.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
