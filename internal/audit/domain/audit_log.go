package domain

import "time"

// AuditLog is one recorded security-relevant event. UserID is empty for events
// before sign-in (code requests, failed verifications).
type AuditLog struct {
	ID        string
	UserID    string
	Action    string
	Resource  string
	IP        string
	Metadata  string // JSON object, may be empty
	CreatedAt time.Time
}
