// Package otp generates, hashes and compares numeric one-time codes.
package otp

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"math/big"
)

// DefaultDigits is the code length used by the sign-in flow.
const DefaultDigits = 4

// ErrInvalidDigits is returned for a code length outside 4–10.
var ErrInvalidDigits = errors.New("otp: digits must be between 4 and 10")

// Generate returns a numeric code of the given length (e.g. "0427"), uniformly
// distributed, using crypto/rand.
func Generate(digits int) (string, error) {
	if digits < 4 || digits > 10 {
		return "", ErrInvalidDigits
	}
	ten := big.NewInt(10)
	s := make([]byte, digits)
	for i := range s {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", err
		}
		s[i] = '0' + byte(n.Int64())
	}
	return string(s), nil
}

// Hash returns a SHA-256 hash of the code, hex-encoded. The phone is mixed in so equal
// codes issued to different members do not share a hash.
func Hash(phone, code string) string {
	h := sha256.Sum256([]byte(phone + ":" + code))
	return hex.EncodeToString(h[:])
}

// Equal performs constant-time comparison of the provided code's hash with the stored hash.
func Equal(phone, provided, storedHash string) bool {
	if provided == "" || storedHash == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(Hash(phone, provided)), []byte(storedHash)) == 1
}
