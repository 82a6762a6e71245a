package repository

import (
	"context"
	"time"

	"likelemba/internal/session/domain"
)

// Repository defines persistence for sessions. GetByID returns (nil, nil) when not found.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	Create(ctx context.Context, s *domain.Session) error
	// Revoke sets revoked_at if the session is not already revoked. Unknown ids are a no-op.
	Revoke(ctx context.Context, id string) error
	UpdateLastSeen(ctx context.Context, id string, at time.Time) error
}
