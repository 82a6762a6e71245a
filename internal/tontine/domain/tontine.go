// Package domain holds the tontine (rotating savings group) model.
package domain

import (
	"errors"
	"time"
)

// Frequency is how often members contribute.
type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

// Valid reports whether f is a known frequency.
func (f Frequency) Valid() bool {
	return f == FrequencyWeekly || f == FrequencyBiweekly || f == FrequencyMonthly
}

// Period is the time between two rounds. A month counts as 30 days.
func (f Frequency) Period() time.Duration {
	const day = 24 * time.Hour
	switch f {
	case FrequencyBiweekly:
		return 14 * day
	case FrequencyMonthly:
		return 30 * day
	default:
		return 7 * day
	}
}

// GroupStatus is the lifecycle state of a group.
type GroupStatus string

const (
	GroupStatusPending   GroupStatus = "pending"
	GroupStatusActive    GroupStatus = "active"
	GroupStatusPaused    GroupStatus = "paused"
	GroupStatusCompleted GroupStatus = "completed"
)

// PaymentStatus is the state of one member's contribution for one round.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusLate    PaymentStatus = "late"
)

// PaymentMethod is how a contribution was paid: one of the mobile money networks, or cash.
type PaymentMethod string

const (
	PaymentMethodAirtel PaymentMethod = "airtel"
	PaymentMethodMpesa  PaymentMethod = "mpesa"
	PaymentMethodOrange PaymentMethod = "orange"
	PaymentMethodCash   PaymentMethod = "cash"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodAirtel, PaymentMethodMpesa, PaymentMethodOrange, PaymentMethodCash:
		return true
	}
	return false
}

// Group is a tontine. Each round every member contributes ContributionAmount and one member
// receives the pot. Amounts are in minor units of Currency.
type Group struct {
	ID                 string
	Name               string
	Description        string
	ContributionAmount int64
	Currency           string
	Frequency          Frequency
	MemberCount        int
	CurrentRound       int
	TotalRounds        int
	NextPayoutAt       time.Time
	Status             GroupStatus
	CreatedBy          string
	CreatedAt          time.Time
}

// Validate checks the group before it is stored.
func (g *Group) Validate() error {
	switch {
	case g.ID == "":
		return errors.New("group id is required")
	case g.Name == "":
		return errors.New("group name is required")
	case g.ContributionAmount <= 0:
		return errors.New("contribution amount must be positive")
	case len(g.Currency) != 3:
		return errors.New("currency must be a 3-letter code")
	case !g.Frequency.Valid():
		return errors.New("frequency must be weekly, biweekly or monthly")
	case g.TotalRounds <= 0 || g.CurrentRound < 0 || g.CurrentRound > g.TotalRounds:
		return errors.New("rounds out of range")
	}
	if g.Status == "" {
		g.Status = GroupStatusPending
	}
	return nil
}

// Member is one seat in a group's payout order. Position is the round in which the member
// receives the pot. Name and Phone come from the user record and are filled in by the service.
type Member struct {
	GroupID     string
	UserID      string
	Name        string
	Phone       string
	Position    int
	HasReceived bool
	JoinedAt    time.Time
}

// Payment is one member's contribution to a group round. PaidAt is nil and Method empty until paid.
type Payment struct {
	ID        string
	GroupID   string
	GroupName string
	UserID    string
	Amount    int64
	Currency  string
	Round     int
	Status    PaymentStatus
	DueAt     time.Time
	PaidAt    *time.Time
	Method    PaymentMethod
}
