package domain

import "time"

// Challenge is the pending one-time code for a phone. Only the hash of the code is kept.
type Challenge struct {
	ID        string
	Phone     string // canonical form, e.g. +243123456789
	CodeHash  string
	Attempts  int
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the challenge can no longer be used at now.
func (c *Challenge) Expired(now time.Time) bool {
	return !c.ExpiresAt.After(now)
}
