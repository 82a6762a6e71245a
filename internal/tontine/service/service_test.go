package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"likelemba/internal/tontine/domain"
	"likelemba/internal/tontine/repository"
	userdomain "likelemba/internal/user/domain"
	userrepo "likelemba/internal/user/repository"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()
	repo := repository.NewMemoryRepository(false)
	groups := []*domain.Group{
		{ID: "g1", Name: "Kintambo", ContributionAmount: 5000000, Currency: "CDF", Frequency: domain.FrequencyWeekly,
			MemberCount: 8, CurrentRound: 3, TotalRounds: 8, NextPayoutAt: testNow.Add(96 * time.Hour), Status: domain.GroupStatusActive},
		{ID: "g2", Name: "Marché", ContributionAmount: 5000, Currency: "USD", Frequency: domain.FrequencyMonthly,
			MemberCount: 6, CurrentRound: 2, TotalRounds: 6, NextPayoutAt: testNow.Add(48 * time.Hour), Status: domain.GroupStatusActive},
		{ID: "g3", Name: "Bureau", ContributionAmount: 2000000, Currency: "CDF", Frequency: domain.FrequencyWeekly,
			MemberCount: 4, CurrentRound: 4, TotalRounds: 4, NextPayoutAt: testNow.Add(time.Hour), Status: domain.GroupStatusCompleted},
		{ID: "g4", Name: "Stale", ContributionAmount: 1000, Currency: "USD", Frequency: domain.FrequencyWeekly,
			MemberCount: 3, CurrentRound: 1, TotalRounds: 3, NextPayoutAt: testNow.Add(-time.Hour), Status: domain.GroupStatusActive},
		{ID: "g5", Name: "Foreign", ContributionAmount: 1000, Currency: "USD", Frequency: domain.FrequencyWeekly,
			MemberCount: 3, CurrentRound: 1, TotalRounds: 3, Status: domain.GroupStatusActive},
	}
	for _, g := range groups {
		if err := repo.CreateGroup(ctx, g); err != nil {
			t.Fatalf("CreateGroup %s: %v", g.ID, err)
		}
	}
	for _, id := range []string{"g1", "g2", "g3", "g4"} {
		_ = repo.AddMember(ctx, id, "u1", 1)
	}
	_ = repo.AddMember(ctx, "g5", "u2", 1)
	paid := testNow.Add(-24 * time.Hour)
	payments := []*domain.Payment{
		{ID: "p1", GroupID: "g1", UserID: "u1", Amount: 5000000, Currency: "CDF", Round: 1, Status: domain.PaymentStatusPaid, DueAt: testNow.Add(-336 * time.Hour), PaidAt: &paid},
		{ID: "p2", GroupID: "g1", UserID: "u1", Amount: 5000000, Currency: "CDF", Round: 2, Status: domain.PaymentStatusPaid, DueAt: testNow.Add(-168 * time.Hour), PaidAt: &paid},
		{ID: "p3", GroupID: "g1", UserID: "u1", Amount: 5000000, Currency: "CDF", Round: 3, Status: domain.PaymentStatusPending, DueAt: testNow},
		{ID: "p4", GroupID: "g2", UserID: "u1", Amount: 5000, Currency: "USD", Round: 1, Status: domain.PaymentStatusPaid, DueAt: testNow.Add(-720 * time.Hour), PaidAt: &paid},
		{ID: "p5", GroupID: "g2", UserID: "u1", Amount: 5000, Currency: "USD", Round: 2, Status: domain.PaymentStatusLate, DueAt: testNow.Add(-24 * time.Hour)},
		{ID: "p6", GroupID: "g5", UserID: "u2", Amount: 1000, Currency: "USD", Round: 1, Status: domain.PaymentStatusPaid, DueAt: testNow, PaidAt: &paid},
	}
	for _, p := range payments {
		if err := repo.CreatePayment(ctx, p); err != nil {
			t.Fatalf("CreatePayment %s: %v", p.ID, err)
		}
	}
	svc := NewService(repo, userrepo.NewMemoryRepository())
	svc.nowF = func() time.Time { return testNow }
	return svc
}

func TestGetGroup(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	g, err := svc.GetGroup(ctx, "u1", " g1 ")
	if err != nil || g.Name != "Kintambo" {
		t.Fatalf("GetGroup = %+v, %v", g, err)
	}
	for _, id := range []string{"g5", "missing", ""} {
		if _, err := svc.GetGroup(ctx, "u1", id); !errors.Is(err, ErrGroupNotFound) {
			t.Errorf("GetGroup(%q) err = %v, want ErrGroupNotFound", id, err)
		}
	}
}

func TestListGroupsAndPayments(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	groups, err := svc.ListGroups(ctx, "u1")
	if err != nil || len(groups) != 4 {
		t.Fatalf("ListGroups = %d, %v; want 4", len(groups), err)
	}
	all, err := svc.ListPayments(ctx, "u1", "")
	if err != nil || len(all) != 5 {
		t.Fatalf("ListPayments = %d, %v; want 5", len(all), err)
	}
	g2, err := svc.ListPayments(ctx, "u1", "g2")
	if err != nil || len(g2) != 2 {
		t.Fatalf("ListPayments(g2) = %d, %v; want 2", len(g2), err)
	}
	if _, err := svc.ListPayments(ctx, "u1", "g5"); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("foreign group filter err = %v, want ErrGroupNotFound", err)
	}
}

func TestDashboard(t *testing.T) {
	svc := newTestService(t)
	d, err := svc.Dashboard(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if d.ActiveGroups != 3 {
		t.Errorf("ActiveGroups = %d, want 3", d.ActiveGroups)
	}
	if d.PendingPayments != 1 || d.LatePayments != 1 {
		t.Errorf("pending/late = %d/%d, want 1/1", d.PendingPayments, d.LatePayments)
	}
	want := []CurrencyTotal{{"CDF", 10000000}, {"USD", 5000}}
	if len(d.TotalContributed) != len(want) {
		t.Fatalf("TotalContributed = %+v", d.TotalContributed)
	}
	for i := range want {
		if d.TotalContributed[i] != want[i] {
			t.Errorf("TotalContributed[%d] = %+v, want %+v", i, d.TotalContributed[i], want[i])
		}
	}
	if d.NextPayout == nil || d.NextPayout.ID != "g2" {
		t.Errorf("NextPayout = %+v, want g2 (soonest future payout of an active group)", d.NextPayout)
	}
}

func TestDashboard_NoGroups(t *testing.T) {
	svc := newTestService(t)
	d, err := svc.Dashboard(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if d.ActiveGroups != 0 || d.NextPayout != nil || len(d.TotalContributed) != 0 {
		t.Errorf("dashboard = %+v, want empty", d)
	}
}

func newEmptyService(t *testing.T) (*Service, *userrepo.MemoryRepository) {
	t.Helper()
	users := userrepo.NewMemoryRepository()
	for _, u := range []*userdomain.User{
		{ID: "u1", Name: "Amani", Phone: "+243810000001", CreatedAt: testNow},
		{ID: "u2", Name: "Bora", Phone: "+243810000002", CreatedAt: testNow},
	} {
		if err := users.Create(context.Background(), u); err != nil {
			t.Fatalf("create user: %v", err)
		}
	}
	svc := NewService(repository.NewMemoryRepository(false), users)
	svc.nowF = func() time.Time { return testNow }
	return svc, users
}

func TestCreateGroup(t *testing.T) {
	svc, _ := newEmptyService(t)
	ctx := context.Background()
	g, err := svc.CreateGroup(ctx, "u1", NewGroup{Name: "  Famille ", Description: "Dimanche", ContributionAmount: 10000, Frequency: "Biweekly"})
	if err != nil {
		t.Fatalf("CreateGroup: %v", err)
	}
	if g.Name != "Famille" || g.Currency != DefaultCurrency || g.Frequency != domain.FrequencyBiweekly {
		t.Errorf("group = %+v", g)
	}
	if g.Status != domain.GroupStatusActive || g.CreatedBy != "u1" || g.MemberCount != 1 || g.TotalRounds != 1 || g.CurrentRound != 1 {
		t.Errorf("group state = %+v, want active with the creator as its only member", g)
	}
	if want := testNow.Add(14 * 24 * time.Hour); !g.NextPayoutAt.Equal(want) {
		t.Errorf("NextPayoutAt = %v, want %v", g.NextPayoutAt, want)
	}
	members, err := svc.ListMembers(ctx, "u1", g.ID)
	if err != nil || len(members) != 1 || members[0].Name != "Amani" || members[0].Position != 1 {
		t.Fatalf("ListMembers = %+v, %v", members, err)
	}

	for _, in := range []NewGroup{
		{Name: "", ContributionAmount: 100},
		{Name: "x", ContributionAmount: 0},
		{Name: "x", ContributionAmount: 100, Currency: "dollars"},
		{Name: "x", ContributionAmount: 100, Frequency: "daily"},
	} {
		if _, err := svc.CreateGroup(ctx, "u1", in); !errors.Is(err, ErrInvalidGroup) {
			t.Errorf("CreateGroup(%+v) err = %v, want ErrInvalidGroup", in, err)
		}
	}
}

func TestAddMember(t *testing.T) {
	svc, users := newEmptyService(t)
	ctx := context.Background()
	g, _ := svc.CreateGroup(ctx, "u1", NewGroup{Name: "Famille", ContributionAmount: 10000})

	m, updated, err := svc.AddMember(ctx, "u1", g.ID, "243 810 000 002", "")
	if err != nil {
		t.Fatalf("AddMember existing user: %v", err)
	}
	if m.UserID != "u2" || m.Name != "Bora" || m.Position != 2 || updated.TotalRounds != 2 || updated.MemberCount != 2 {
		t.Errorf("member = %+v, group = %+v", m, updated)
	}

	m, updated, err = svc.AddMember(ctx, "u2", g.ID, "+243810000003", "Chance")
	if err != nil {
		t.Fatalf("AddMember new user: %v", err)
	}
	if m.Name != "Chance" || m.Phone != "+243810000003" || m.Position != 3 || updated.TotalRounds != 3 {
		t.Errorf("member = %+v, group = %+v", m, updated)
	}
	if u, _ := users.GetByPhone(ctx, "+243810000003"); u == nil || u.ID != m.UserID {
		t.Errorf("new member user = %+v", u)
	}

	if _, _, err := svc.AddMember(ctx, "u1", g.ID, "+243810000002", ""); !errors.Is(err, ErrAlreadyMember) {
		t.Errorf("duplicate err = %v, want ErrAlreadyMember", err)
	}
	if _, _, err := svc.AddMember(ctx, "u1", g.ID, "+33612345678", ""); !errors.Is(err, ErrInvalidPhone) {
		t.Errorf("foreign phone err = %v, want ErrInvalidPhone", err)
	}
	if _, _, err := svc.AddMember(ctx, "outsider", g.ID, "+243810000004", ""); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("non-member err = %v, want ErrGroupNotFound", err)
	}

	members, _ := svc.ListMembers(ctx, "u1", g.ID)
	if len(members) != 3 || members[2].Name != "Chance" {
		t.Errorf("members = %+v", members)
	}
}

func TestAddMember_CompletedGroup(t *testing.T) {
	svc := newTestService(t)
	if _, _, err := svc.AddMember(context.Background(), "u1", "g3", "+243810000009", ""); !errors.Is(err, ErrGroupClosed) {
		t.Errorf("err = %v, want ErrGroupClosed", err)
	}
}

func TestListMembers_HasReceived(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	// u1 sits at position 1; g1 is in round 3 and g3 is completed.
	for id, want := range map[string]bool{"g1": true, "g3": true} {
		members, err := svc.ListMembers(ctx, "u1", id)
		if err != nil || len(members) != 1 {
			t.Fatalf("ListMembers(%s) = %+v, %v", id, members, err)
		}
		if members[0].HasReceived != want {
			t.Errorf("%s HasReceived = %t, want %t", id, members[0].HasReceived, want)
		}
	}
	svc2, _ := newEmptyService(t)
	g, _ := svc2.CreateGroup(ctx, "u1", NewGroup{Name: "Famille", ContributionAmount: 100})
	members, _ := svc2.ListMembers(ctx, "u1", g.ID)
	if members[0].HasReceived {
		t.Error("the first position has not received before its round ends")
	}
}

func TestRecordPayment(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.RecordPayment(ctx, "u1", "g1", 0, "MPESA")
	if err != nil {
		t.Fatalf("RecordPayment current round: %v", err)
	}
	if p.ID != "p3" || p.Round != 3 || p.Method != domain.PaymentMethodMpesa || p.Amount != 5000000 || p.PaidAt == nil {
		t.Errorf("payment = %+v, want pending p3 settled by mpesa", p)
	}
	if _, err := svc.RecordPayment(ctx, "u1", "g1", 3, domain.PaymentMethodCash); !errors.Is(err, ErrAlreadyPaid) {
		t.Errorf("second payment err = %v, want ErrAlreadyPaid", err)
	}

	p, err = svc.RecordPayment(ctx, "u1", "g1", 4, domain.PaymentMethodOrange)
	if err != nil {
		t.Fatalf("RecordPayment future round: %v", err)
	}
	if want := testNow.Add(96*time.Hour + 7*24*time.Hour); !p.DueAt.Equal(want) {
		t.Errorf("DueAt = %v, want %v", p.DueAt, want)
	}

	d, _ := svc.Dashboard(ctx, "u1")
	if d.PendingPayments != 0 {
		t.Errorf("pending after payment = %d, want 0", d.PendingPayments)
	}

	cases := []struct {
		group  string
		round  int
		method domain.PaymentMethod
		want   error
	}{
		{"g1", 1, "paypal", ErrInvalidPaymentMethod},
		{"g1", 9, domain.PaymentMethodCash, ErrInvalidRound},
		{"g1", -1, domain.PaymentMethodCash, ErrInvalidRound},
		{"g3", 1, domain.PaymentMethodCash, ErrGroupClosed},
		{"g5", 1, domain.PaymentMethodCash, ErrGroupNotFound},
	}
	for _, tc := range cases {
		if _, err := svc.RecordPayment(ctx, "u1", tc.group, tc.round, tc.method); !errors.Is(err, tc.want) {
			t.Errorf("RecordPayment(%s, %d, %q) err = %v, want %v", tc.group, tc.round, tc.method, err, tc.want)
		}
	}
}

func TestRoundStatus(t *testing.T) {
	svc, _ := newEmptyService(t)
	ctx := context.Background()
	g, _ := svc.CreateGroup(ctx, "u1", NewGroup{Name: "Famille", ContributionAmount: 100, Frequency: domain.FrequencyWeekly})
	if _, _, err := svc.AddMember(ctx, "u1", g.ID, "+243810000002", ""); err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	if _, err := svc.RecordPayment(ctx, "u2", g.ID, 1, domain.PaymentMethodAirtel); err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}

	round, entries, err := svc.RoundStatus(ctx, "u1", g.ID, 0)
	if err != nil {
		t.Fatalf("RoundStatus: %v", err)
	}
	if round != 1 || len(entries) != 2 {
		t.Fatalf("round %d entries %+v", round, entries)
	}
	if entries[0].Member.UserID != "u1" || entries[0].Status != domain.PaymentStatusPending || entries[0].PaidAt != nil {
		t.Errorf("creator entry = %+v, want pending", entries[0])
	}
	if entries[1].Member.Name != "Bora" || entries[1].Status != domain.PaymentStatusPaid || entries[1].Method != domain.PaymentMethodAirtel {
		t.Errorf("second entry = %+v, want paid by airtel", entries[1])
	}

	svc.nowF = func() time.Time { return testNow.Add(8 * 24 * time.Hour) }
	_, entries, _ = svc.RoundStatus(ctx, "u1", g.ID, 1)
	if entries[0].Status != domain.PaymentStatusLate {
		t.Errorf("unpaid past due = %s, want late", entries[0].Status)
	}
	if _, _, err := svc.RoundStatus(ctx, "u1", g.ID, 3); !errors.Is(err, ErrInvalidRound) {
		t.Errorf("round 3 err = %v, want ErrInvalidRound", err)
	}
}
