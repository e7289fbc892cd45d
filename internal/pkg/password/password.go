package password

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the bcrypt work factor used for all stored credentials
	DefaultCost = 10

	// MinLength and MaxLength bound accepted plaintext passwords
	MinLength = 8
	MaxLength = 20
)

// specialChars is the whitelist of accepted special characters
const specialChars = "@$!%*?&"

// Hash hashes a password using bcrypt with the given cost.
// A cost below bcrypt.MinCost falls back to DefaultCost.
func Hash(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify compares a password with a stored hash
func Verify(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// MeetsPolicy checks the password policy: 8-20 characters drawn from
// letters, digits and the special-character whitelist, with at least one
// uppercase, one lowercase, one digit and one special character.
func MeetsPolicy(password string) bool {
	if len(password) < MinLength || len(password) > MaxLength {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, ch := range password {
		switch {
		case ch >= 'A' && ch <= 'Z':
			hasUpper = true
		case ch >= 'a' && ch <= 'z':
			hasLower = true
		case ch >= '0' && ch <= '9':
			hasDigit = true
		case strings.ContainsRune(specialChars, ch):
			hasSpecial = true
		default:
			// character outside the whitelist
			return false
		}
	}

	return hasUpper && hasLower && hasDigit && hasSpecial
}
