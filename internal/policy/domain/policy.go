package domain

import "time"

// Policy is an operator-supplied Rego module for package likelemba.otp. Enabled
// policies replace the built-in send policy.
type Policy struct {
	ID        string
	Name      string
	Rules     string
	Enabled   bool
	CreatedAt time.Time
}
