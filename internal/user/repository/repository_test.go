package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"likelemba/internal/user/domain"
)

func TestMemoryRepository_CreateAndGet(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	now := time.Now().UTC()
	u := &domain.User{ID: "u1", Name: "Member 6789", Phone: "+243123456789", Status: domain.UserStatusActive, CreatedAt: now, UpdatedAt: now}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, "u1")
	if err != nil || got == nil {
		t.Fatalf("GetByID = %v, %v", got, err)
	}
	if got.Phone != u.Phone || got.Name != u.Name {
		t.Errorf("GetByID = %+v", got)
	}
	got, err = repo.GetByPhone(ctx, "+243123456789")
	if err != nil || got == nil || got.ID != "u1" {
		t.Fatalf("GetByPhone = %v, %v", got, err)
	}

	got.Name = "changed"
	again, _ := repo.GetByID(ctx, "u1")
	if again.Name != "Member 6789" {
		t.Error("repository must return copies")
	}
}

func TestMemoryRepository_NotFound(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	if u, err := repo.GetByID(ctx, "missing"); u != nil || err != nil {
		t.Errorf("GetByID = %v, %v; want nil, nil", u, err)
	}
	if u, err := repo.GetByPhone(ctx, "+243000000000"); u != nil || err != nil {
		t.Errorf("GetByPhone = %v, %v; want nil, nil", u, err)
	}
}

func TestMemoryRepository_DuplicatePhone(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	_ = repo.Create(ctx, &domain.User{ID: "u1", Phone: "+243123456789"})
	err := repo.Create(ctx, &domain.User{ID: "u2", Phone: "+243123456789"})
	if !errors.Is(err, ErrDuplicatePhone) {
		t.Fatalf("Create duplicate: err = %v, want ErrDuplicatePhone", err)
	}
}
