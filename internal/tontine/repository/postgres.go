package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"likelemba/internal/tontine/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a tontine repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const groupColumns = `g.id, g.name, g.description, g.contribution_amount, g.currency, g.frequency, g.member_count,
	g.current_round, g.total_rounds, g.next_payout_at, g.status, g.created_by, g.created_at`

const paymentColumns = `p.id, p.group_id, g.name, p.user_id, p.amount, p.currency, p.round, p.status,
	p.due_at, p.paid_at, p.method`

func (r *PostgresRepository) CreateGroup(ctx context.Context, g *domain.Group) error {
	if err := g.Validate(); err != nil {
		return err
	}
	var nextPayout sql.NullTime
	if !g.NextPayoutAt.IsZero() {
		nextPayout = sql.NullTime{Time: g.NextPayoutAt, Valid: true}
	}
	var createdBy sql.NullString
	if g.CreatedBy != "" {
		createdBy = sql.NullString{String: g.CreatedBy, Valid: true}
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tontine_groups (id, name, description, contribution_amount, currency, frequency, member_count,
			current_round, total_rounds, next_payout_at, status, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		g.ID, g.Name, g.Description, g.ContributionAmount, g.Currency, string(g.Frequency), g.MemberCount,
		g.CurrentRound, g.TotalRounds, nextPayout, string(g.Status), createdBy, g.CreatedAt)
	return err
}

// AddMember adds userID to groupID. Adding an existing member updates the payout round.
func (r *PostgresRepository) AddMember(ctx context.Context, groupID, userID string, payoutRound int) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO group_members (group_id, user_id, payout_round) VALUES ($1, $2, $3)
		ON CONFLICT (group_id, user_id) DO UPDATE SET payout_round = EXCLUDED.payout_round`,
		groupID, userID, payoutRound)
	return err
}

func (r *PostgresRepository) CreatePayment(ctx context.Context, p *domain.Payment) error {
	var paidAt sql.NullTime
	if p.PaidAt != nil {
		paidAt = sql.NullTime{Time: *p.PaidAt, Valid: true}
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO payments (id, group_id, user_id, amount, currency, round, status, due_at, paid_at, method)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.GroupID, p.UserID, p.Amount, p.Currency, p.Round, string(p.Status), p.DueAt, paidAt, nullMethod(p.Method))
	return err
}

// JoinGroup locks the group row so concurrent joins get distinct positions.
func (r *PostgresRepository) JoinGroup(ctx context.Context, groupID, userID string, joinedAt time.Time) (*domain.Member, *domain.Group, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = tx.Rollback() }()

	var memberCount, lastPosition int
	err = tx.QueryRowContext(ctx,
		`SELECT member_count FROM tontine_groups WHERE id = $1 FOR UPDATE`, groupID).Scan(&memberCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, ErrUnknownGroup
	}
	if err != nil {
		return nil, nil, err
	}
	var exists bool
	if err := tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM group_members WHERE group_id = $1 AND user_id = $2),
			COALESCE((SELECT max(payout_round) FROM group_members WHERE group_id = $1), 0)`,
		groupID, userID).Scan(&exists, &lastPosition); err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, ErrAlreadyMember
	}
	m := &domain.Member{GroupID: groupID, UserID: userID, Position: max(memberCount, lastPosition) + 1, JoinedAt: joinedAt}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO group_members (group_id, user_id, payout_round, joined_at) VALUES ($1, $2, $3, $4)`,
		groupID, userID, m.Position, joinedAt); err != nil {
		return nil, nil, err
	}
	g, err := scanGroup(tx.QueryRowContext(ctx,
		`UPDATE tontine_groups g SET member_count = $2, total_rounds = $2 WHERE g.id = $1
		RETURNING `+groupColumns, groupID, m.Position))
	if err != nil {
		return nil, nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}
	return m, g, nil
}

// RecordPayment upserts on (group_id, user_id, round). The update is skipped for a row that
// is already paid, which RETURNING reports as no rows.
func (r *PostgresRepository) RecordPayment(ctx context.Context, p *domain.Payment) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO payments (id, group_id, user_id, amount, currency, round, status, due_at, paid_at, method)
		VALUES ($1, $2, $3, $4, $5, $6, 'paid', $7, $8, $9)
		ON CONFLICT (group_id, user_id, round) DO UPDATE
			SET status = 'paid', paid_at = EXCLUDED.paid_at, method = EXCLUDED.method
			WHERE payments.status <> 'paid'
		RETURNING id, due_at`,
		p.ID, p.GroupID, p.UserID, p.Amount, p.Currency, p.Round, p.DueAt, *p.PaidAt, nullMethod(p.Method),
	).Scan(&p.ID, &p.DueAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrAlreadyPaid
	}
	if err != nil {
		return err
	}
	p.Status = domain.PaymentStatusPaid
	return nil
}

func (r *PostgresRepository) ListMembers(ctx context.Context, groupID string) ([]*domain.Member, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT group_id, user_id, payout_round, joined_at FROM group_members
		WHERE group_id = $1 ORDER BY payout_round, joined_at`, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Member
	for rows.Next() {
		var m domain.Member
		if err := rows.Scan(&m.GroupID, &m.UserID, &m.Position, &m.JoinedAt); err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) ListRoundPayments(ctx context.Context, groupID string, round int) ([]*domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+paymentColumns+`
		FROM payments p JOIN tontine_groups g ON g.id = p.group_id
		WHERE p.group_id = $1 AND p.round = $2`, groupID, round)
	if err != nil {
		return nil, err
	}
	return scanPayments(rows)
}

func (r *PostgresRepository) ListGroupsByMember(ctx context.Context, userID string) ([]*domain.Group, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+groupColumns+` FROM tontine_groups g
		JOIN group_members m ON m.group_id = g.id
		WHERE m.user_id = $1 ORDER BY g.name`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Group
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetGroupForMember(ctx context.Context, userID, groupID string) (*domain.Group, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+groupColumns+` FROM tontine_groups g
		JOIN group_members m ON m.group_id = g.id
		WHERE m.user_id = $1 AND g.id = $2`, userID, groupID)
	g, err := scanGroup(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return g, err
}

func (r *PostgresRepository) ListPayments(ctx context.Context, userID, groupID string) ([]*domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+paymentColumns+`
		FROM payments p JOIN tontine_groups g ON g.id = p.group_id
		WHERE p.user_id = $1 AND ($2 = '' OR p.group_id::text = $2)
		ORDER BY p.due_at DESC`, userID, groupID)
	if err != nil {
		return nil, err
	}
	return scanPayments(rows)
}

func scanPayments(rows *sql.Rows) ([]*domain.Payment, error) {
	defer rows.Close()
	var out []*domain.Payment
	for rows.Next() {
		var p domain.Payment
		var status string
		var paidAt sql.NullTime
		var method sql.NullString
		if err := rows.Scan(&p.ID, &p.GroupID, &p.GroupName, &p.UserID, &p.Amount, &p.Currency,
			&p.Round, &status, &p.DueAt, &paidAt, &method); err != nil {
			return nil, err
		}
		p.Status = domain.PaymentStatus(status)
		p.Method = domain.PaymentMethod(method.String)
		if paidAt.Valid {
			t := paidAt.Time
			p.PaidAt = &t
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func nullMethod(m domain.PaymentMethod) sql.NullString {
	return sql.NullString{String: string(m), Valid: m != ""}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGroup(s scanner) (*domain.Group, error) {
	var g domain.Group
	var frequency, status string
	var nextPayout sql.NullTime
	var createdBy sql.NullString
	if err := s.Scan(&g.ID, &g.Name, &g.Description, &g.ContributionAmount, &g.Currency, &frequency, &g.MemberCount,
		&g.CurrentRound, &g.TotalRounds, &nextPayout, &status, &createdBy, &g.CreatedAt); err != nil {
		return nil, err
	}
	g.CreatedBy = createdBy.String
	g.Frequency = domain.Frequency(frequency)
	g.Status = domain.GroupStatus(status)
	if nextPayout.Valid {
		g.NextPayoutAt = nextPayout.Time
	}
	return &g, nil
}
