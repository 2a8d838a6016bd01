package utils

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor used for stored passwords
const PasswordCost = 12

const (
	passwordMinLength = 8
	passwordMaxLength = 72

	passwordSpecialChars = "!@#$%^&"
)

// Password policy messages, returned to clients verbatim
const (
	MsgPasswordTooShort  = "Password must be longer than 8 characters"
	MsgPasswordTooLong   = "Password cannot be longer than 72 characters"
	MsgPasswordSpace     = "Password cannot start or end with a space"
	MsgPasswordTooSimple = "Password must contain 1 upper case, lower case, number and special character"
)

// ValidatePassword checks a plaintext password against the registration policy.
// It returns the message of the first failing rule, or "" when the password is acceptable.
// Lengths are measured in bytes, which is also the limit bcrypt enforces.
func ValidatePassword(password string) string {
	if len(password) < passwordMinLength {
		return MsgPasswordTooShort
	}
	if len(password) > passwordMaxLength {
		return MsgPasswordTooLong
	}
	if strings.HasPrefix(password, " ") || strings.HasSuffix(password, " ") {
		return MsgPasswordSpace
	}
	if !isComplexPassword(password) {
		return MsgPasswordTooSimple
	}
	return ""
}

// isComplexPassword reports whether password holds at least one lower case letter,
// upper case letter, digit and special character, and no whitespace at all.
// This is stricter than the legacy unanchored pattern, which let whitespace
// through between other characters (e.g. "11AA aa!!").
func isComplexPassword(password string) bool {
	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsSpace(r):
			return false
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecialChars, r):
			special = true
		}
	}
	return lower && upper && digit && special
}

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword reports whether password matches a hash produced by HashPassword
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
