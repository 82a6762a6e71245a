package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"likelemba/internal/otp/domain"
)

// PostgresRepository keeps every challenge row in otp_challenges; superseded, used or
// exhausted challenges get closed_at set so the send history stays countable.
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns an OTP challenge repository that uses the given db.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Put closes any open challenge for the phone and inserts c, in one transaction.
func (r *PostgresRepository) Put(ctx context.Context, c *domain.Challenge) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`UPDATE otp_challenges SET closed_at = $2 WHERE phone = $1 AND closed_at IS NULL`,
		c.Phone, c.CreatedAt,
	); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO otp_challenges (id, phone, code_hash, attempts, expires_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Phone, c.CodeHash, c.Attempts, c.ExpiresAt, c.CreatedAt,
	); err != nil {
		return err
	}
	return tx.Commit()
}

// GetByPhone returns the open challenge for phone, or nil if there is none.
func (r *PostgresRepository) GetByPhone(ctx context.Context, phone string) (*domain.Challenge, error) {
	var c domain.Challenge
	err := r.db.QueryRowContext(ctx,
		`SELECT id, phone, code_hash, attempts, expires_at, created_at
		 FROM otp_challenges
		 WHERE phone = $1 AND closed_at IS NULL
		 ORDER BY created_at DESC
		 LIMIT 1`,
		phone,
	).Scan(&c.ID, &c.Phone, &c.CodeHash, &c.Attempts, &c.ExpiresAt, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// IncrementAttempts adds one attempt to the open challenge id and returns the new count.
func (r *PostgresRepository) IncrementAttempts(ctx context.Context, phone, id string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`UPDATE otp_challenges SET attempts = attempts + 1
		 WHERE id = $1 AND phone = $2 AND closed_at IS NULL
		 RETURNING attempts`,
		id, phone,
	).Scan(&n)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return n, nil
}

// Delete closes challenge id. Only the caller whose UPDATE hit the open row gets true.
func (r *PostgresRepository) Delete(ctx context.Context, phone, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE otp_challenges SET closed_at = $3 WHERE id = $1 AND phone = $2 AND closed_at IS NULL`,
		id, phone, time.Now().UTC(),
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// CountSince counts challenges created for phone at or after since.
func (r *PostgresRepository) CountSince(ctx context.Context, phone string, since time.Time) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM otp_challenges WHERE phone = $1 AND created_at >= $2`,
		phone, since,
	).Scan(&n)
	return n, err
}
