package domain

import (
	"encoding/json"
	"time"
)

// Event types emitted by the server.
const (
	EventGRPCRequest   = "grpc_request"
	EventOTPSent       = "otp_sent"
	EventOTPSendFailed = "otp_send_failed"
	EventOTPDenied     = "otp_denied"
	EventLoginSuccess  = "login_success"
	EventLoginFailure  = "login_failure"
	EventLogout        = "logout"
)

// Event is one telemetry record. UserID and SessionID are empty before sign-in.
type Event struct {
	UserID    string          `json:"user_id,omitempty"`
	SessionID string          `json:"session_id,omitempty"`
	EventType string          `json:"event_type"`
	Source    string          `json:"source"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
