package repository

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"likelemba/internal/db"
	"likelemba/internal/otp/domain"
)

const testPhone = "+243123456789"

func challenge(id string, created time.Time) *domain.Challenge {
	return &domain.Challenge{
		ID:        id,
		Phone:     testPhone,
		CodeHash:  "hash-" + id,
		ExpiresAt: created.Add(5 * time.Minute),
		CreatedAt: created,
	}
}

// runContract exercises the Repository behavior every implementation must share.
func runContract(t *testing.T, repo Repository) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	got, err := repo.GetByPhone(ctx, testPhone)
	if err != nil {
		t.Fatalf("GetByPhone empty: %v", err)
	}
	if got != nil {
		t.Fatalf("GetByPhone empty = %+v, want nil", got)
	}

	if err := repo.Put(ctx, challenge("c1", now.Add(-20*time.Minute))); err != nil {
		t.Fatalf("Put c1: %v", err)
	}
	if err := repo.Put(ctx, challenge("c2", now)); err != nil {
		t.Fatalf("Put c2: %v", err)
	}

	got, err = repo.GetByPhone(ctx, testPhone)
	if err != nil {
		t.Fatalf("GetByPhone: %v", err)
	}
	if got == nil || got.ID != "c2" {
		t.Fatalf("GetByPhone = %+v, want c2", got)
	}
	if got.CodeHash != "hash-c2" || got.Attempts != 0 {
		t.Errorf("GetByPhone fields = %+v", got)
	}
	if !got.ExpiresAt.Equal(now.Add(5 * time.Minute)) {
		t.Errorf("ExpiresAt = %v, want %v", got.ExpiresAt, now.Add(5*time.Minute))
	}

	n, err := repo.IncrementAttempts(ctx, testPhone, "c2")
	if err != nil || n != 1 {
		t.Fatalf("IncrementAttempts = %d, %v; want 1, nil", n, err)
	}
	n, err = repo.IncrementAttempts(ctx, testPhone, "c2")
	if err != nil || n != 2 {
		t.Fatalf("IncrementAttempts = %d, %v; want 2, nil", n, err)
	}
	if _, err := repo.IncrementAttempts(ctx, testPhone, "c1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("IncrementAttempts superseded: err = %v, want ErrNotFound", err)
	}

	count, err := repo.CountSince(ctx, testPhone, now.Add(-10*time.Minute))
	if err != nil || count != 1 {
		t.Errorf("CountSince(10m) = %d, %v; want 1", count, err)
	}
	count, err = repo.CountSince(ctx, testPhone, now.Add(-30*time.Minute))
	if err != nil || count != 2 {
		t.Errorf("CountSince(30m) = %d, %v; want 2", count, err)
	}

	// deleting a superseded id leaves the active challenge alone
	if closed, err := repo.Delete(ctx, testPhone, "c1"); err != nil || closed {
		t.Fatalf("Delete c1 = %t, %v; want false, nil", closed, err)
	}
	if got, _ := repo.GetByPhone(ctx, testPhone); got == nil || got.ID != "c2" {
		t.Fatalf("after Delete c1: %+v, want c2", got)
	}
	if closed, err := repo.Delete(ctx, testPhone, "c2"); err != nil || !closed {
		t.Fatalf("Delete c2 = %t, %v; want true, nil", closed, err)
	}
	if got, _ := repo.GetByPhone(ctx, testPhone); got != nil {
		t.Fatalf("after Delete c2: %+v, want nil", got)
	}
	if closed, err := repo.Delete(ctx, testPhone, "c2"); err != nil || closed {
		t.Errorf("Delete twice = %t, %v; want false, nil", closed, err)
	}

	// concurrent deletes of one challenge: exactly one caller closes it
	if err := repo.Put(ctx, challenge("c3", now)); err != nil {
		t.Fatalf("Put c3: %v", err)
	}
	const racers = 8
	var wg sync.WaitGroup
	var wins atomic.Int32
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			closed, err := repo.Delete(ctx, testPhone, "c3")
			if err != nil {
				t.Errorf("Delete c3: %v", err)
				return
			}
			if closed {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()
	if got := wins.Load(); got != 1 {
		t.Errorf("concurrent Delete winners = %d, want 1", got)
	}
}

func TestMemoryRepository(t *testing.T) {
	runContract(t, NewMemoryRepository())
}

func TestMemoryRepository_PrunesOldSends(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	now := time.Now().UTC()

	if err := repo.Put(ctx, challenge("old", now.Add(-sendHistoryTTL-time.Hour))); err != nil {
		t.Fatalf("Put old: %v", err)
	}
	if err := repo.Put(ctx, challenge("new", now)); err != nil {
		t.Fatalf("Put new: %v", err)
	}
	n, err := repo.CountSince(ctx, testPhone, now.Add(-48*time.Hour))
	if err != nil || n != 1 {
		t.Fatalf("CountSince = %d, %v; want 1, nil", n, err)
	}
	repo.mu.Lock()
	kept := len(repo.sends[testPhone])
	repo.mu.Unlock()
	if kept != 1 {
		t.Errorf("send history length = %d, want 1", kept)
	}

	if _, err := repo.Delete(ctx, testPhone, "new"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.CountSince(ctx, "+243999999999", now); err != nil {
		t.Fatalf("CountSince unknown phone: %v", err)
	}
	repo.mu.Lock()
	_, tracked := repo.sends["+243999999999"]
	repo.mu.Unlock()
	if tracked {
		t.Error("CountSince left an empty history entry for an unknown phone")
	}
}

func TestRedisRepository(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	runContract(t, NewRedisRepository(client, ""))
}

func TestRedisRepository_ChallengeExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	repo := NewRedisRepository(client, "test:")
	ctx := context.Background()

	now := time.Now().UTC()
	mr.SetTime(now)
	if err := repo.Put(ctx, challenge("c1", now)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if !mr.Exists("test:c:" + testPhone) {
		t.Fatal("challenge key not written with prefix")
	}
	mr.FastForward(6 * time.Minute)
	got, err := repo.GetByPhone(ctx, testPhone)
	if err != nil {
		t.Fatalf("GetByPhone: %v", err)
	}
	if got != nil {
		t.Errorf("GetByPhone after expiry = %+v, want nil", got)
	}
}

func TestPostgresRepository(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	conn, err := db.Open(dsn)
	if err != nil {
		t.Fatalf("db.Open: %v", err)
	}
	defer conn.Close()
	if _, err := conn.Exec(`DELETE FROM otp_challenges WHERE phone = $1`, testPhone); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	runContract(t, NewPostgresRepository(conn))
}
