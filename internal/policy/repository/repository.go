package repository

import (
	"context"

	"likelemba/internal/policy/domain"
)

// Repository defines persistence for send policies.
type Repository interface {
	// ListEnabled returns enabled policies ordered by creation time.
	ListEnabled(ctx context.Context) ([]*domain.Policy, error)
	Create(ctx context.Context, p *domain.Policy) error
}
