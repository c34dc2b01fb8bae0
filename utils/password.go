package utils

import "golang.org/x/crypto/bcrypt"

// MinPasswordLength is the minimum accepted password length for registration
const MinPasswordLength = 8

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the bcrypt hash
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidPasswordLength reports whether the password meets the minimum length
func ValidPasswordLength(password string) bool {
	return len(password) >= MinPasswordLength
}
