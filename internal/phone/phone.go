// Package phone normalizes and validates member phone numbers (DRC, country code 243).
package phone

import (
	"regexp"
	"strings"
	"unicode"
)

// CountryCode is the only country code accepted for sign-in.
const CountryCode = "243"

var pattern = regexp.MustCompile(`^\+?243[0-9]{9}$`)

// Normalize removes all whitespace from s. It does not add or remove the leading '+'.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Valid reports whether s, after Normalize, is an optional '+', 243, and nine digits.
func Valid(s string) bool {
	return pattern.MatchString(Normalize(s))
}

// Digits returns the normalized number without the leading '+' (the form SMS gateways expect).
func Digits(s string) string {
	return strings.TrimPrefix(Normalize(s), "+")
}

// Canonical returns the normalized number with a leading '+'. Used as the storage key so
// "+243..." and "243..." refer to the same member.
func Canonical(s string) string {
	return "+" + Digits(s)
}

// Mask hides all but the last three digits, e.g. "+243******789". Used in logs.
func Mask(s string) string {
	d := Digits(s)
	switch {
	case len(d) <= 3:
		return strings.Repeat("*", len(d))
	case len(d) <= 6:
		return strings.Repeat("*", len(d)-3) + d[len(d)-3:]
	}
	return "+" + d[:3] + strings.Repeat("*", len(d)-6) + d[len(d)-3:]
}
