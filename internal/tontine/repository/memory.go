package repository

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"likelemba/internal/tontine/domain"
)

// MemoryRepository keeps tontine data in process memory. With demo seeding enabled, a member
// who has no groups gets the SeedDemo data on first lookup.
type MemoryRepository struct {
	mu       sync.RWMutex
	groups   map[string]*domain.Group
	members  map[string]map[string]domain.Member // groupID -> userID -> seat
	payments []*domain.Payment
	seedDemo bool
	seeded   map[string]bool
	nowF     func() time.Time
}

// NewMemoryRepository returns an empty in-memory repository. seedDemo enables dev-mode demo data.
func NewMemoryRepository(seedDemo bool) *MemoryRepository {
	return &MemoryRepository{
		groups:   make(map[string]*domain.Group),
		members:  make(map[string]map[string]domain.Member),
		seedDemo: seedDemo,
		seeded:   make(map[string]bool),
		nowF:     func() time.Time { return time.Now().UTC() },
	}
}

func (r *MemoryRepository) CreateGroup(ctx context.Context, g *domain.Group) error {
	if err := g.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *g
	r.groups[g.ID] = &cp
	return nil
}

// AddMember seats userID at payoutRound. Adding an existing member updates the payout round.
func (r *MemoryRepository) AddMember(ctx context.Context, groupID, userID string, payoutRound int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.groups[groupID]; !ok {
		return ErrUnknownGroup
	}
	if r.members[groupID] == nil {
		r.members[groupID] = make(map[string]domain.Member)
	}
	m, ok := r.members[groupID][userID]
	if !ok {
		m = domain.Member{GroupID: groupID, UserID: userID, JoinedAt: r.nowF()}
	}
	m.Position = payoutRound
	r.members[groupID][userID] = m
	return nil
}

func (r *MemoryRepository) JoinGroup(ctx context.Context, groupID, userID string, joinedAt time.Time) (*domain.Member, *domain.Group, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.groups[groupID]
	if !ok {
		return nil, nil, ErrUnknownGroup
	}
	if _, ok := r.members[groupID][userID]; ok {
		return nil, nil, ErrAlreadyMember
	}
	if r.members[groupID] == nil {
		r.members[groupID] = make(map[string]domain.Member)
	}
	pos := g.MemberCount
	for _, m := range r.members[groupID] {
		pos = max(pos, m.Position)
	}
	m := domain.Member{GroupID: groupID, UserID: userID, Position: pos + 1, JoinedAt: joinedAt}
	r.members[groupID][userID] = m
	g.MemberCount = m.Position
	g.TotalRounds = m.Position
	cp := *g
	return &m, &cp, nil
}

func (r *MemoryRepository) RecordPayment(ctx context.Context, p *domain.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.groups[p.GroupID]; !ok {
		return ErrUnknownGroup
	}
	for _, existing := range r.payments {
		if existing.GroupID != p.GroupID || existing.UserID != p.UserID || existing.Round != p.Round {
			continue
		}
		if existing.Status == domain.PaymentStatusPaid {
			return ErrAlreadyPaid
		}
		paidAt := *p.PaidAt
		existing.Status = domain.PaymentStatusPaid
		existing.Method = p.Method
		existing.PaidAt = &paidAt
		p.ID = existing.ID
		p.DueAt = existing.DueAt
		p.Status = domain.PaymentStatusPaid
		return nil
	}
	cp := *p
	cp.Status = domain.PaymentStatusPaid
	p.Status = domain.PaymentStatusPaid
	r.payments = append(r.payments, &cp)
	return nil
}

func (r *MemoryRepository) CreatePayment(ctx context.Context, p *domain.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.groups[p.GroupID]; !ok {
		return ErrUnknownGroup
	}
	cp := *p
	r.payments = append(r.payments, &cp)
	return nil
}

func (r *MemoryRepository) ListGroupsByMember(ctx context.Context, userID string) ([]*domain.Group, error) {
	r.ensureDemo(ctx, userID)
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.Group
	for id, g := range r.groups {
		if _, ok := r.members[id][userID]; ok {
			cp := *g
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MemoryRepository) GetGroupForMember(ctx context.Context, userID, groupID string) (*domain.Group, error) {
	r.ensureDemo(ctx, userID)
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.groups[groupID]
	if !ok {
		return nil, nil
	}
	if _, ok := r.members[groupID][userID]; !ok {
		return nil, nil
	}
	cp := *g
	return &cp, nil
}

func (r *MemoryRepository) ListPayments(ctx context.Context, userID, groupID string) ([]*domain.Payment, error) {
	r.ensureDemo(ctx, userID)
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.Payment
	for _, p := range r.payments {
		if p.UserID != userID || (groupID != "" && p.GroupID != groupID) {
			continue
		}
		cp := *p
		if g, ok := r.groups[p.GroupID]; ok {
			cp.GroupName = g.Name
		}
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DueAt.After(out[j].DueAt) })
	return out, nil
}

func (r *MemoryRepository) ListMembers(ctx context.Context, groupID string) ([]*domain.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Member, 0, len(r.members[groupID]))
	for _, m := range r.members[groupID] {
		cp := m
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].JoinedAt.Before(out[j].JoinedAt)
	})
	return out, nil
}

func (r *MemoryRepository) ListRoundPayments(ctx context.Context, groupID string, round int) ([]*domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.Payment
	for _, p := range r.payments {
		if p.GroupID == groupID && p.Round == round {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ensureDemo seeds demo data once per user that has no groups yet.
func (r *MemoryRepository) ensureDemo(ctx context.Context, userID string) {
	if !r.seedDemo || userID == "" {
		return
	}
	r.mu.Lock()
	if r.seeded[userID] || r.isMemberLocked(userID) {
		r.seeded[userID] = true
		r.mu.Unlock()
		return
	}
	r.seeded[userID] = true
	r.mu.Unlock()
	if err := SeedDemo(ctx, r, userID, r.nowF()); err != nil {
		log.Printf("tontine: seed demo data: %v", err)
	}
}

func (r *MemoryRepository) isMemberLocked(userID string) bool {
	for _, m := range r.members {
		if _, ok := m[userID]; ok {
			return true
		}
	}
	return false
}
