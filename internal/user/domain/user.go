package domain

import (
	"errors"
	"time"

	"likelemba/internal/phone"
)

// User is a tontine member, identified by phone number.
type User struct {
	ID        string
	Name      string
	Phone     string // canonical "+243..." form
	Status    UserStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusDisabled UserStatus = "disabled"
)

// DefaultName is the display name given to a member created at first sign-in.
func DefaultName(p string) string {
	d := phone.Digits(p)
	if len(d) > 4 {
		d = d[len(d)-4:]
	}
	return "Member " + d
}

// Validate validates the user for persistence. Returns an error describing the first validation failure.
func (u *User) Validate() error {
	if u.Phone == "" {
		return errors.New("phone is required")
	}
	if !phone.Valid(u.Phone) {
		return errors.New("phone is invalid")
	}
	if u.Status == "" {
		u.Status = UserStatusActive
	}
	return nil
}
