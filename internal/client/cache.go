package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"likelemba/internal/authflow"
	"likelemba/internal/client/migrations"
)

// Session is the signed-in state kept between client runs.
type Session struct {
	AccessToken string
	ExpiresAt   time.Time
	User        authflow.User
}

// SessionCache persists at most one Session. Load returns (nil, nil) when nothing is cached.
type SessionCache interface {
	Load(ctx context.Context) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Clear(ctx context.Context) error
}

// SQLiteCache is a SessionCache backed by a local SQLite file.
type SQLiteCache struct {
	db *sql.DB
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// OpenCache opens (creating if needed) the SQLite database at dsn and migrates it.
func OpenCache(ctx context.Context, dsn string) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// one writer; SQLite serializes anyway
	db.SetMaxOpenConns(1)
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate session cache: %w", err)
	}
	return &SQLiteCache{db: db}, nil
}

// Close closes the underlying database.
func (c *SQLiteCache) Close() error {
	return c.db.Close()
}

func (c *SQLiteCache) Load(ctx context.Context) (*Session, error) {
	var (
		s                    Session
		expiresAt, createdAt int64
	)
	err := c.db.QueryRowContext(ctx,
		`SELECT access_token, expires_at, user_id, user_name, user_phone, user_created_at FROM session WHERE id = 1`,
	).Scan(&s.AccessToken, &expiresAt, &s.User.ID, &s.User.Name, &s.User.Phone, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	s.ExpiresAt = time.Unix(expiresAt, 0).UTC()
	s.User.CreatedAt = time.Unix(createdAt, 0).UTC()
	return &s, nil
}

func (c *SQLiteCache) Save(ctx context.Context, s *Session) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO session (id, access_token, expires_at, user_id, user_name, user_phone, user_created_at)
		VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			access_token = excluded.access_token,
			expires_at = excluded.expires_at,
			user_id = excluded.user_id,
			user_name = excluded.user_name,
			user_phone = excluded.user_phone,
			user_created_at = excluded.user_created_at
	`, s.AccessToken, s.ExpiresAt.Unix(), s.User.ID, s.User.Name, s.User.Phone, s.User.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (c *SQLiteCache) Clear(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
