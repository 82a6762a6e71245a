// Package repository stores tontine groups, memberships and payments.
package repository

import (
	"context"
	"errors"
	"time"

	"likelemba/internal/tontine/domain"
)

var (
	// ErrUnknownGroup is returned when a member or payment refers to a group that does not exist.
	ErrUnknownGroup = errors.New("unknown group")
	// ErrAlreadyMember is returned by JoinGroup when the user already has a seat in the group.
	ErrAlreadyMember = errors.New("already a member")
	// ErrAlreadyPaid is returned by RecordPayment when the contribution is already paid.
	ErrAlreadyPaid = errors.New("already paid")
)

// Repository reads a member's groups and payments. Lookups return (nil, nil) when not found.
type Repository interface {
	// ListGroupsByMember returns the groups userID belongs to, ordered by name.
	ListGroupsByMember(ctx context.Context, userID string) ([]*domain.Group, error)
	// GetGroupForMember returns the group only if userID is a member of it.
	GetGroupForMember(ctx context.Context, userID, groupID string) (*domain.Group, error)
	// ListPayments returns userID's payments, newest due date first. groupID "" means all groups.
	ListPayments(ctx context.Context, userID, groupID string) ([]*domain.Payment, error)
	// ListMembers returns the seats of groupID in payout order. Name and Phone are left empty.
	ListMembers(ctx context.Context, groupID string) ([]*domain.Member, error)
	// ListRoundPayments returns the payment rows of every member of groupID for one round.
	ListRoundPayments(ctx context.Context, groupID string, round int) ([]*domain.Payment, error)
}

// Writer creates tontine data. Used by the seed command and the dev-mode demo data.
type Writer interface {
	CreateGroup(ctx context.Context, g *domain.Group) error
	AddMember(ctx context.Context, groupID, userID string, payoutRound int) error
	CreatePayment(ctx context.Context, p *domain.Payment) error
}

// Roster changes a group on behalf of its members.
type Roster interface {
	// JoinGroup gives userID the next payout position in groupID, after every existing seat and
	// after the group's member count, and sets member count and total rounds to that position.
	// It returns the new seat and the updated group, or ErrAlreadyMember.
	JoinGroup(ctx context.Context, groupID, userID string, joinedAt time.Time) (*domain.Member, *domain.Group, error)
	// RecordPayment marks the contribution of p.UserID to round p.Round of p.GroupID as paid
	// with p.Method at *p.PaidAt. An existing row keeps its ID and due date, which are copied
	// back into p; otherwise p is inserted. It returns ErrAlreadyPaid if the row was paid.
	RecordPayment(ctx context.Context, p *domain.Payment) error
}

// Store is everything the tontine service needs.
type Store interface {
	Repository
	Writer
	Roster
}
