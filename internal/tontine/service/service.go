// Package service answers the signed-in member's tontine questions and records the changes
// members make: new groups, new members and contributions.
package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"likelemba/internal/phone"
	"likelemba/internal/tontine/domain"
	"likelemba/internal/tontine/repository"
	userdomain "likelemba/internal/user/domain"
	userrepo "likelemba/internal/user/repository"
)

var (
	// ErrGroupNotFound is returned when the group does not exist or the member does not belong to it.
	ErrGroupNotFound = errors.New("group not found")
	// ErrInvalidGroup wraps the reason a new group was rejected.
	ErrInvalidGroup = errors.New("invalid group")
	// ErrInvalidPhone is returned by AddMember for a number outside the accepted format.
	ErrInvalidPhone = errors.New("invalid phone number")
	// ErrInvalidPaymentMethod is returned for a method other than airtel, mpesa, orange or cash.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	// ErrInvalidRound is returned for a round outside 1..TotalRounds.
	ErrInvalidRound = errors.New("invalid round")
	// ErrGroupClosed is returned when a group no longer accepts members or payments.
	ErrGroupClosed = errors.New("group is not open")
	// ErrAlreadyMember and ErrAlreadyPaid are passed through from the repository.
	ErrAlreadyMember = repository.ErrAlreadyMember
	ErrAlreadyPaid   = repository.ErrAlreadyPaid
)

// DefaultCurrency is used when a new group names none.
const DefaultCurrency = "CDF"

// UserDirectory resolves the users behind group seats. AddMember creates a user for a phone
// number that has never signed in.
type UserDirectory interface {
	GetByID(ctx context.Context, id string) (*userdomain.User, error)
	GetByPhone(ctx context.Context, phone string) (*userdomain.User, error)
	Create(ctx context.Context, u *userdomain.User) error
}

// NewGroup is what a member supplies to start a group.
type NewGroup struct {
	Name               string
	Description        string
	ContributionAmount int64
	Currency           string
	Frequency          domain.Frequency
}

// RoundEntry is one member's contribution state for a round.
type RoundEntry struct {
	Member *domain.Member
	Status domain.PaymentStatus
	Method domain.PaymentMethod
	PaidAt *time.Time
}

// CurrencyTotal is an amount in minor units of one currency.
type CurrencyTotal struct {
	Currency string
	Amount   int64
}

// Dashboard summarizes a member's tontines.
type Dashboard struct {
	ActiveGroups int
	// TotalContributed sums paid contributions per currency, ordered by currency code.
	TotalContributed []CurrencyTotal
	PendingPayments  int
	LatePayments     int
	// NextPayout is the active group with the soonest future payout, or nil.
	NextPayout *domain.Group
}

// Service implements the tontine views and the member actions on groups.
type Service struct {
	repo  repository.Store
	users UserDirectory
	nowF  func() time.Time
}

// NewService returns a Service over repo. users fills in member names and phones.
func NewService(repo repository.Store, users UserDirectory) *Service {
	return &Service{repo: repo, users: users, nowF: func() time.Time { return time.Now().UTC() }}
}

// ListGroups returns the groups userID belongs to.
func (s *Service) ListGroups(ctx context.Context, userID string) ([]*domain.Group, error) {
	return s.repo.ListGroupsByMember(ctx, userID)
}

// GetGroup returns groupID if userID is a member, otherwise ErrGroupNotFound.
func (s *Service) GetGroup(ctx context.Context, userID, groupID string) (*domain.Group, error) {
	groupID = strings.TrimSpace(groupID)
	if groupID == "" {
		return nil, ErrGroupNotFound
	}
	g, err := s.repo.GetGroupForMember(ctx, userID, groupID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGroupNotFound
	}
	return g, nil
}

// ListPayments returns userID's payments, optionally limited to one group. Filtering on a
// group the member does not belong to gives ErrGroupNotFound.
func (s *Service) ListPayments(ctx context.Context, userID, groupID string) ([]*domain.Payment, error) {
	groupID = strings.TrimSpace(groupID)
	if groupID != "" {
		if _, err := s.GetGroup(ctx, userID, groupID); err != nil {
			return nil, err
		}
	}
	return s.repo.ListPayments(ctx, userID, groupID)
}

// Dashboard computes the summary shown after sign-in.
func (s *Service) Dashboard(ctx context.Context, userID string) (*Dashboard, error) {
	groups, err := s.repo.ListGroupsByMember(ctx, userID)
	if err != nil {
		return nil, err
	}
	payments, err := s.repo.ListPayments(ctx, userID, "")
	if err != nil {
		return nil, err
	}
	now := s.nowF()
	d := &Dashboard{}
	for _, g := range groups {
		if g.Status != domain.GroupStatusActive {
			continue
		}
		d.ActiveGroups++
		if g.NextPayoutAt.IsZero() || g.NextPayoutAt.Before(now) {
			continue
		}
		if d.NextPayout == nil || g.NextPayoutAt.Before(d.NextPayout.NextPayoutAt) {
			d.NextPayout = g
		}
	}
	totals := make(map[string]int64)
	for _, p := range payments {
		switch p.Status {
		case domain.PaymentStatusPaid:
			totals[p.Currency] += p.Amount
		case domain.PaymentStatusPending:
			d.PendingPayments++
		case domain.PaymentStatusLate:
			d.LatePayments++
		}
	}
	for cur, amt := range totals {
		d.TotalContributed = append(d.TotalContributed, CurrencyTotal{Currency: cur, Amount: amt})
	}
	sort.Slice(d.TotalContributed, func(i, j int) bool {
		return d.TotalContributed[i].Currency < d.TotalContributed[j].Currency
	})
	return d, nil
}

// CreateGroup starts an active group with userID in the first payout position.
func (s *Service) CreateGroup(ctx context.Context, userID string, in NewGroup) (*domain.Group, error) {
	now := s.nowF()
	g := &domain.Group{
		ID:                 uuid.New().String(),
		Name:               strings.TrimSpace(in.Name),
		Description:        strings.TrimSpace(in.Description),
		ContributionAmount: in.ContributionAmount,
		Currency:           strings.ToUpper(strings.TrimSpace(in.Currency)),
		Frequency:          domain.Frequency(strings.ToLower(strings.TrimSpace(string(in.Frequency)))),
		CurrentRound:       1,
		TotalRounds:        1,
		Status:             domain.GroupStatusActive,
		CreatedBy:          userID,
		CreatedAt:          now,
	}
	if g.Currency == "" {
		g.Currency = DefaultCurrency
	}
	if g.Frequency == "" {
		g.Frequency = domain.FrequencyMonthly
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGroup, err)
	}
	g.NextPayoutAt = now.Add(g.Frequency.Period())
	if err := s.repo.CreateGroup(ctx, g); err != nil {
		return nil, fmt.Errorf("create group: %w", err)
	}
	_, joined, err := s.repo.JoinGroup(ctx, g.ID, userID, now)
	if err != nil {
		return nil, fmt.Errorf("seat creator: %w", err)
	}
	return joined, nil
}

// AddMember seats the owner of phoneNumber at the end of the payout order of groupID. The
// caller must be a member. A phone that has never signed in gets a user record named name,
// or the default member name. The group's total rounds grow with the roster.
func (s *Service) AddMember(ctx context.Context, userID, groupID, phoneNumber, name string) (*domain.Member, *domain.Group, error) {
	g, err := s.GetGroup(ctx, userID, groupID)
	if err != nil {
		return nil, nil, err
	}
	if g.Status == domain.GroupStatusCompleted {
		return nil, nil, ErrGroupClosed
	}
	if !phone.Valid(phoneNumber) {
		return nil, nil, ErrInvalidPhone
	}
	u, err := s.findOrCreateUser(ctx, phone.Canonical(phoneNumber), strings.TrimSpace(name))
	if err != nil {
		return nil, nil, err
	}
	m, updated, err := s.repo.JoinGroup(ctx, g.ID, u.ID, s.nowF())
	if err != nil {
		return nil, nil, err
	}
	m.Name, m.Phone = u.Name, u.Phone
	return m, updated, nil
}

// ListMembers returns the roster of groupID in payout order, with names and phones.
func (s *Service) ListMembers(ctx context.Context, userID, groupID string) ([]*domain.Member, error) {
	g, err := s.GetGroup(ctx, userID, groupID)
	if err != nil {
		return nil, err
	}
	return s.roster(ctx, g)
}

// RecordPayment marks userID's contribution to round of groupID as paid by method. Round 0
// means the current round. The amount is the group's contribution.
func (s *Service) RecordPayment(ctx context.Context, userID, groupID string, round int, method domain.PaymentMethod) (*domain.Payment, error) {
	method = domain.PaymentMethod(strings.ToLower(strings.TrimSpace(string(method))))
	if !method.Valid() {
		return nil, ErrInvalidPaymentMethod
	}
	g, err := s.GetGroup(ctx, userID, groupID)
	if err != nil {
		return nil, err
	}
	if g.Status != domain.GroupStatusActive {
		return nil, ErrGroupClosed
	}
	if round == 0 {
		round = g.CurrentRound
	}
	if round < 1 || round > g.TotalRounds {
		return nil, ErrInvalidRound
	}
	now := s.nowF()
	p := &domain.Payment{
		ID:        uuid.New().String(),
		GroupID:   g.ID,
		GroupName: g.Name,
		UserID:    userID,
		Amount:    g.ContributionAmount,
		Currency:  g.Currency,
		Round:     round,
		Status:    domain.PaymentStatusPaid,
		DueAt:     s.dueAt(g, round),
		PaidAt:    &now,
		Method:    method,
	}
	if err := s.repo.RecordPayment(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// RoundStatus lists every member of groupID with their contribution state for round (0 means
// the current round). A member with no payment row is pending, or late once the round is due.
func (s *Service) RoundStatus(ctx context.Context, userID, groupID string, round int) (int, []RoundEntry, error) {
	g, err := s.GetGroup(ctx, userID, groupID)
	if err != nil {
		return 0, nil, err
	}
	if round == 0 {
		round = g.CurrentRound
	}
	if round < 1 || round > g.TotalRounds {
		return 0, nil, ErrInvalidRound
	}
	members, err := s.roster(ctx, g)
	if err != nil {
		return 0, nil, err
	}
	payments, err := s.repo.ListRoundPayments(ctx, g.ID, round)
	if err != nil {
		return 0, nil, err
	}
	byUser := make(map[string]*domain.Payment, len(payments))
	for _, p := range payments {
		byUser[p.UserID] = p
	}
	unpaid := domain.PaymentStatusPending
	if s.nowF().After(s.dueAt(g, round)) {
		unpaid = domain.PaymentStatusLate
	}
	out := make([]RoundEntry, 0, len(members))
	for _, m := range members {
		e := RoundEntry{Member: m, Status: unpaid}
		if p, ok := byUser[m.UserID]; ok {
			e.Status, e.Method, e.PaidAt = p.Status, p.Method, p.PaidAt
		}
		out = append(out, e)
	}
	return round, out, nil
}

func (s *Service) roster(ctx context.Context, g *domain.Group) ([]*domain.Member, error) {
	members, err := s.repo.ListMembers(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		m.HasReceived = g.Status == domain.GroupStatusCompleted || m.Position < g.CurrentRound
		u, err := s.users.GetByID(ctx, m.UserID)
		if err != nil {
			return nil, fmt.Errorf("load member: %w", err)
		}
		if u != nil {
			m.Name, m.Phone = u.Name, u.Phone
		}
	}
	return members, nil
}

// dueAt places round on the group's schedule: the current round falls due at NextPayoutAt
// and the others a whole number of periods away from it.
func (s *Service) dueAt(g *domain.Group, round int) time.Time {
	anchor := g.NextPayoutAt
	if anchor.IsZero() {
		anchor = g.CreatedAt.Add(g.Frequency.Period())
	}
	return anchor.Add(time.Duration(round-g.CurrentRound) * g.Frequency.Period())
}

func (s *Service) findOrCreateUser(ctx context.Context, canonical, name string) (*userdomain.User, error) {
	u, err := s.users.GetByPhone(ctx, canonical)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if u != nil {
		return u, nil
	}
	if name == "" {
		name = userdomain.DefaultName(canonical)
	}
	now := s.nowF()
	u = &userdomain.User{
		ID:        uuid.New().String(),
		Name:      name,
		Phone:     canonical,
		Status:    userdomain.UserStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	err = s.users.Create(ctx, u)
	if errors.Is(err, userrepo.ErrDuplicatePhone) {
		return s.users.GetByPhone(ctx, canonical)
	}
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}
