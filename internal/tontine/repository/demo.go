package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"likelemba/internal/tontine/domain"
)

var demoMethods = []domain.PaymentMethod{domain.PaymentMethodMpesa, domain.PaymentMethodAirtel, domain.PaymentMethodOrange, domain.PaymentMethodCash}

// SeedDemo writes three demo groups for userID with their payment history, relative to now.
// The groups mirror what a new member sees in development: an active weekly group in CDF,
// an active monthly group in USD with a late payment, and a completed group.
func SeedDemo(ctx context.Context, w Writer, userID string, now time.Time) error {
	day := 24 * time.Hour
	type plan struct {
		group    domain.Group
		payout   int
		statuses []domain.PaymentStatus
	}
	plans := []plan{
		{
			group: domain.Group{
				Name: "Likelemba ya Kintambo", Description: "Quartier Kintambo, chaque samedi", ContributionAmount: 5000000, Currency: "CDF",
				Frequency: domain.FrequencyWeekly, MemberCount: 8, CurrentRound: 3, TotalRounds: 8,
				NextPayoutAt: now.Add(4 * day), Status: domain.GroupStatusActive,
			},
			payout:   5,
			statuses: []domain.PaymentStatus{domain.PaymentStatusPaid, domain.PaymentStatusPaid, domain.PaymentStatusPending},
		},
		{
			group: domain.Group{
				Name: "Bamama ya Marché", ContributionAmount: 5000, Currency: "USD",
				Frequency: domain.FrequencyMonthly, MemberCount: 6, CurrentRound: 2, TotalRounds: 6,
				NextPayoutAt: now.Add(12 * day), Status: domain.GroupStatusActive,
			},
			payout:   2,
			statuses: []domain.PaymentStatus{domain.PaymentStatusPaid, domain.PaymentStatusLate},
		},
		{
			group: domain.Group{
				Name: "Ekipi ya Bureau", ContributionAmount: 2000000, Currency: "CDF",
				Frequency: domain.FrequencyWeekly, MemberCount: 4, CurrentRound: 4, TotalRounds: 4,
				Status: domain.GroupStatusCompleted,
			},
			payout:   1,
			statuses: []domain.PaymentStatus{domain.PaymentStatusPaid, domain.PaymentStatusPaid, domain.PaymentStatusPaid, domain.PaymentStatusPaid},
		},
	}
	for i, pl := range plans {
		g := pl.group
		g.ID = uuid.New().String()
		g.CreatedAt = now.Add(-time.Duration(60+30*i) * day)
		if err := w.CreateGroup(ctx, &g); err != nil {
			return fmt.Errorf("seed group %q: %w", g.Name, err)
		}
		if err := w.AddMember(ctx, g.ID, userID, pl.payout); err != nil {
			return fmt.Errorf("seed member of %q: %w", g.Name, err)
		}
		period := g.Frequency.Period()
		for r, st := range pl.statuses {
			round := r + 1
			due := now.Add(-time.Duration(len(pl.statuses)-round) * period)
			if g.Status == domain.GroupStatusCompleted {
				due = g.CreatedAt.Add(time.Duration(round) * period)
			}
			p := &domain.Payment{
				ID: uuid.New().String(), GroupID: g.ID, GroupName: g.Name, UserID: userID,
				Amount: g.ContributionAmount, Currency: g.Currency, Round: round, Status: st, DueAt: due,
			}
			if st == domain.PaymentStatusPaid {
				paid := due.Add(-day)
				p.PaidAt = &paid
				p.Method = demoMethods[(i+r)%len(demoMethods)]
			}
			if err := w.CreatePayment(ctx, p); err != nil {
				return fmt.Errorf("seed payment: %w", err)
			}
		}
	}
	return nil
}
