package repository

import (
	"context"
	"sync"
	"time"

	"likelemba/internal/otp/domain"
)

// MemoryRepository is an in-memory Repository for development and tests.
type MemoryRepository struct {
	mu     sync.Mutex
	active map[string]domain.Challenge
	sends  map[string][]time.Time
}

// NewMemoryRepository returns an empty in-memory challenge store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		active: make(map[string]domain.Challenge),
		sends:  make(map[string][]time.Time),
	}
}

// Put stores c as the active challenge for its phone.
func (r *MemoryRepository) Put(ctx context.Context, c *domain.Challenge) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active[c.Phone] = *c
	r.sends[c.Phone] = append(r.sends[c.Phone], c.CreatedAt)
	return nil
}

// GetByPhone returns a copy of the active challenge for phone, or nil.
func (r *MemoryRepository) GetByPhone(ctx context.Context, phone string) (*domain.Challenge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.active[phone]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// IncrementAttempts adds one attempt to the active challenge id.
func (r *MemoryRepository) IncrementAttempts(ctx context.Context, phone, id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.active[phone]
	if !ok || c.ID != id {
		return 0, ErrNotFound
	}
	c.Attempts++
	r.active[phone] = c
	return c.Attempts, nil
}

// Delete removes challenge id if it is still active for phone.
func (r *MemoryRepository) Delete(ctx context.Context, phone, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.active[phone]
	if !ok || c.ID != id {
		return false, nil
	}
	delete(r.active, phone)
	return true, nil
}

// CountSince counts sends to phone at or after since. Sends older than the history
// window are dropped on the way, so the history of a phone stays bounded.
func (r *MemoryRepository) CountSince(ctx context.Context, phone string, since time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	horizon := time.Now().Add(-sendHistoryTTL)
	kept := r.sends[phone][:0]
	n := 0
	for _, t := range r.sends[phone] {
		if t.Before(horizon) {
			continue
		}
		kept = append(kept, t)
		if !t.Before(since) {
			n++
		}
	}
	if len(kept) == 0 {
		delete(r.sends, phone)
	} else {
		r.sends[phone] = kept
	}
	return n, nil
}
