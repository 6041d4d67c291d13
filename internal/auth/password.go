package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is the single failure returned for a bad login,
// whether the username is unknown or the password is wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

func HashPassword(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether raw matches the stored bcrypt hash.
// bcrypt's comparison is constant-time over the digest.
func CheckPassword(hash, raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}
