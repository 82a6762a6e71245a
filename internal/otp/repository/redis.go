package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"likelemba/internal/otp/domain"
)

const (
	defaultRedisPrefix = "likelemba:otp:"
	sendHistoryTTL     = 24 * time.Hour
)

// incrementAttemptsLua bumps the attempt counter only if ARGV[1] is still the active id.
// Returns the new count, or -1 when the id does not match.
var incrementAttemptsLua = redis.NewScript(`
if redis.call('HGET', KEYS[1], 'id') ~= ARGV[1] then
  return -1
end
return redis.call('HINCRBY', KEYS[1], 'attempts', 1)
`)

// deleteIfActiveLua deletes KEYS[1] only if ARGV[1] is still the active id.
var deleteIfActiveLua = redis.NewScript(`
if redis.call('HGET', KEYS[1], 'id') == ARGV[1] then
  return redis.call('DEL', KEYS[1])
end
return 0
`)

// RedisRepository stores the active challenge of a phone as a hash that expires with
// the challenge, and the send history as a sorted set scored by creation time.
type RedisRepository struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisRepository returns a Redis-backed challenge store. An empty prefix uses "likelemba:otp:".
func NewRedisRepository(client redis.UniversalClient, prefix string) *RedisRepository {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &RedisRepository{client: client, prefix: prefix}
}

func (r *RedisRepository) challengeKey(phone string) string { return r.prefix + "c:" + phone }
func (r *RedisRepository) sendsKey(phone string) string     { return r.prefix + "s:" + phone }

// Put replaces the active challenge for c.Phone and records the send.
func (r *RedisRepository) Put(ctx context.Context, c *domain.Challenge) error {
	key := r.challengeKey(c.Phone)
	sends := r.sendsKey(c.Phone)
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, map[string]interface{}{
		"id":         c.ID,
		"phone":      c.Phone,
		"code_hash":  c.CodeHash,
		"attempts":   c.Attempts,
		"expires_at": c.ExpiresAt.UnixMilli(),
		"created_at": c.CreatedAt.UnixMilli(),
	})
	pipe.PExpireAt(ctx, key, c.ExpiresAt)
	pipe.ZAdd(ctx, sends, redis.Z{Score: float64(c.CreatedAt.UnixMilli()), Member: c.ID})
	pipe.Expire(ctx, sends, sendHistoryTTL)
	_, err := pipe.Exec(ctx)
	return err
}

// GetByPhone returns the active challenge for phone, or nil.
func (r *RedisRepository) GetByPhone(ctx context.Context, phone string) (*domain.Challenge, error) {
	m, err := r.client.HGetAll(ctx, r.challengeKey(phone)).Result()
	if err != nil {
		return nil, err
	}
	if len(m) == 0 || m["id"] == "" {
		return nil, nil
	}
	attempts, err := strconv.Atoi(m["attempts"])
	if err != nil {
		return nil, errors.New("otp challenge: bad attempts field")
	}
	expires, err := strconv.ParseInt(m["expires_at"], 10, 64)
	if err != nil {
		return nil, errors.New("otp challenge: bad expires_at field")
	}
	created, err := strconv.ParseInt(m["created_at"], 10, 64)
	if err != nil {
		return nil, errors.New("otp challenge: bad created_at field")
	}
	return &domain.Challenge{
		ID:        m["id"],
		Phone:     m["phone"],
		CodeHash:  m["code_hash"],
		Attempts:  attempts,
		ExpiresAt: time.UnixMilli(expires).UTC(),
		CreatedAt: time.UnixMilli(created).UTC(),
	}, nil
}

// IncrementAttempts adds one attempt to the active challenge id.
func (r *RedisRepository) IncrementAttempts(ctx context.Context, phone, id string) (int, error) {
	n, err := incrementAttemptsLua.Run(ctx, r.client, []string{r.challengeKey(phone)}, id).Int()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, ErrNotFound
	}
	return n, nil
}

// Delete removes challenge id if it is still active for phone.
func (r *RedisRepository) Delete(ctx context.Context, phone, id string) (bool, error) {
	n, err := deleteIfActiveLua.Run(ctx, r.client, []string{r.challengeKey(phone)}, id).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// CountSince counts sends to phone at or after since (within the 24h history window).
func (r *RedisRepository) CountSince(ctx context.Context, phone string, since time.Time) (int, error) {
	n, err := r.client.ZCount(ctx, r.sendsKey(phone), strconv.FormatInt(since.UnixMilli(), 10), "+inf").Result()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
