// Package repository stores OTP challenges: in memory, in Postgres, or in Redis.
package repository

import (
	"context"
	"time"

	"likelemba/internal/otp/domain"
)

// Repository defines persistence for OTP challenges. A phone has at most one active
// challenge; every Put also counts as one send for CountSince.
type Repository interface {
	// Put stores c as the active challenge for c.Phone, replacing any previous one.
	Put(ctx context.Context, c *domain.Challenge) error
	// GetByPhone returns the active challenge for phone, or nil if there is none.
	GetByPhone(ctx context.Context, phone string) (*domain.Challenge, error)
	// IncrementAttempts adds one failed attempt to challenge id and returns the new count.
	// It returns ErrNotFound if id is no longer the active challenge for phone.
	IncrementAttempts(ctx context.Context, phone, id string) (int, error)
	// Delete closes challenge id if it is still the active one for phone. It reports whether
	// this call closed it; a challenge that is missing or already closed yields false, nil.
	Delete(ctx context.Context, phone, id string) (bool, error)
	// CountSince returns how many challenges were created for phone at or after since.
	CountSince(ctx context.Context, phone string, since time.Time) (int, error)
}

// DefaultChallengeTTL is the default OTP challenge expiry.
const DefaultChallengeTTL = 5 * time.Minute
