package authflow

import (
	"context"
	"time"
)

// User is the authenticated identity returned by verification.
type User struct {
	ID        string
	Name      string
	Phone     string
	CreatedAt time.Time
}

// SendResult is the outcome of a code-delivery request.
type SendResult struct {
	Success bool
}

// VerifyResult is the outcome of a verification request. User is set only on success.
type VerifyResult struct {
	Success bool
	User    *User
}

// CodeSender delivers a one-time code to phone.
type CodeSender interface {
	SendCode(ctx context.Context, phone string) (SendResult, error)
}

// CodeVerifier checks code against the last code delivered to phone.
type CodeVerifier interface {
	VerifyCode(ctx context.Context, phone, code string) (VerifyResult, error)
}

// SessionStore exposes the signed-in identity kept by the collaborator side.
// CurrentUser returns (nil, nil) when nobody is signed in. Logout is idempotent.
type SessionStore interface {
	CurrentUser(ctx context.Context) (*User, error)
	Logout(ctx context.Context) error
}
