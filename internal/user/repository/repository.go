package repository

import (
	"context"
	"errors"

	"likelemba/internal/user/domain"
)

// ErrDuplicatePhone is returned by Create when a user with the same phone exists.
var ErrDuplicatePhone = errors.New("user with this phone already exists")

// Repository defines persistence for users. Lookups return (nil, nil) when not found.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
}
