package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"likelemba/internal/audit"
	"likelemba/internal/devotp"
	otpdomain "likelemba/internal/otp/domain"
	otprepo "likelemba/internal/otp/repository"
	policyengine "likelemba/internal/policy/engine"
	"likelemba/internal/security"
	"likelemba/internal/server/interceptors"
	sessionrepo "likelemba/internal/session/repository"
	userdomain "likelemba/internal/user/domain"
	userrepo "likelemba/internal/user/repository"
)

const testPhone = "+243 812 345 678"

type mockSMS struct {
	mu    sync.Mutex
	codes map[string]string
	err   error
}

func (m *mockSMS) SendOTP(ctx context.Context, to, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if m.codes == nil {
		m.codes = make(map[string]string)
	}
	m.codes[to] = code
	return nil
}

func (m *mockSMS) last(to string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.codes[to]
}

type mockAuditLogger struct {
	mu      sync.Mutex
	actions []string
}

func (m *mockAuditLogger) LogEvent(ctx context.Context, userID, action, resource string, metadata map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actions = append(m.actions, action)
}

func (m *mockAuditLogger) has(action string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.actions {
		if a == action {
			return true
		}
	}
	return false
}

type mockEvaluator struct {
	decision policyengine.SendDecision
	err      error
	last     policyengine.SendInput
}

func (m *mockEvaluator) EvaluateSend(ctx context.Context, in policyengine.SendInput) (policyengine.SendDecision, error) {
	m.last = in
	return m.decision, m.err
}

type testSetup struct {
	svc        *AuthService
	sms        *mockSMS
	audit      *mockAuditLogger
	users      *userrepo.MemoryRepository
	sessions   *sessionrepo.MemoryRepository
	challenges *otprepo.MemoryRepository
	dev        *devotp.MemoryStore
	now        time.Time
}

func newTestAuthService(t *testing.T, cfg Config) *testSetup {
	t.Helper()
	tokens, err := security.NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	ts := &testSetup{
		sms:        &mockSMS{},
		audit:      &mockAuditLogger{},
		users:      userrepo.NewMemoryRepository(),
		sessions:   sessionrepo.NewMemoryRepository(),
		challenges: otprepo.NewMemoryRepository(),
		dev:        devotp.NewMemoryStore(),
		now:        time.Now().UTC(),
	}
	ts.svc = NewAuthService(Deps{
		Users:      ts.users,
		Sessions:   ts.sessions,
		Challenges: ts.challenges,
		Policy:     policyengine.NewOPAEvaluator(nil),
		SMS:        ts.sms,
		DevOTP:     ts.dev,
		Tokens:     tokens,
		Audit:      ts.audit,
	}, cfg)
	ts.svc.nowF = func() time.Time { return ts.now }
	return ts
}

func (ts *testSetup) sendAndGetCode(t *testing.T) string {
	t.Helper()
	sent, err := ts.svc.SendCode(context.Background(), testPhone)
	if err != nil || !sent {
		t.Fatalf("SendCode = %v, %v", sent, err)
	}
	code := ts.sms.last("+243812345678")
	if len(code) != 4 {
		t.Fatalf("code = %q, want 4 digits", code)
	}
	return code
}

func wrongCode(code string) string {
	if code == "0000" {
		return "1111"
	}
	return "0000"
}

func TestSendCode_InvalidPhone(t *testing.T) {
	ts := newTestAuthService(t, Config{})
	for _, p := range []string{"", "0812345678", "+2438123456", "+33 612 345 678"} {
		if _, err := ts.svc.SendCode(context.Background(), p); !errors.Is(err, ErrInvalidPhone) {
			t.Errorf("SendCode(%q) err = %v, want ErrInvalidPhone", p, err)
		}
	}
}

func TestSendCode_DeliversAndStoresHashOnly(t *testing.T) {
	ts := newTestAuthService(t, Config{})
	code := ts.sendAndGetCode(t)

	ch, err := ts.challenges.GetByPhone(context.Background(), "+243812345678")
	if err != nil || ch == nil {
		t.Fatalf("challenge = %v, %v", ch, err)
	}
	if ch.CodeHash == code || ch.CodeHash == "" {
		t.Error("challenge must store the hash, not the code")
	}
	if !ch.ExpiresAt.Equal(ts.now.Add(otprepo.DefaultChallengeTTL)) {
		t.Errorf("ExpiresAt = %v", ch.ExpiresAt)
	}
	if !ts.audit.has(audit.ActionOTPSent) {
		t.Error("otp_sent should be audited")
	}
}

func TestSendCode_DeliveryFailure(t *testing.T) {
	ts := newTestAuthService(t, Config{})
	ts.sms.err = errors.New("gateway down")

	sent, err := ts.svc.SendCode(context.Background(), testPhone)
	if err != nil || sent {
		t.Fatalf("SendCode = %v, %v; want false, nil", sent, err)
	}
	ch, _ := ts.challenges.GetByPhone(context.Background(), "+243812345678")
	if ch != nil {
		t.Error("undelivered challenge should be deleted")
	}
	if !ts.audit.has(audit.ActionOTPSendFailed) {
		t.Error("otp_send_failed should be audited")
	}
}

func TestSendCode_NoDeliveryConfigured(t *testing.T) {
	ts := newTestAuthService(t, Config{})
	ts.svc.SMS = nil
	sent, err := ts.svc.SendCode(context.Background(), testPhone)
	if err != nil || sent {
		t.Fatalf("SendCode = %v, %v; want false, nil", sent, err)
	}
}

func TestSendCode_DevModeUsesDevStore(t *testing.T) {
	ts := newTestAuthService(t, Config{DevMode: true})
	sent, err := ts.svc.SendCode(context.Background(), testPhone)
	if err != nil || !sent {
		t.Fatalf("SendCode = %v, %v", sent, err)
	}
	if ts.sms.last("+243812345678") != "" {
		t.Error("dev mode must not send SMS")
	}
	code, ok := ts.dev.Get(context.Background(), "243812345678")
	if !ok || len(code) != 4 {
		t.Fatalf("dev store code = %q, %v", code, ok)
	}

	res, err := ts.svc.VerifyCode(context.Background(), testPhone, code)
	if err != nil || !res.Success {
		t.Fatalf("VerifyCode = %+v, %v", res, err)
	}
	if _, ok := ts.dev.Get(context.Background(), "243812345678"); ok {
		t.Error("dev code should be dropped after use")
	}
}

func TestSendCode_RateLimited(t *testing.T) {
	ts := newTestAuthService(t, Config{SendLimit: 2, SendWindow: 10 * time.Minute})
	for i := 0; i < 2; i++ {
		ts.sendAndGetCode(t)
	}
	if _, err := ts.svc.SendCode(context.Background(), testPhone); !errors.Is(err, ErrTooManyRequests) {
		t.Fatalf("third SendCode err = %v, want ErrTooManyRequests", err)
	}
	if !ts.audit.has(audit.ActionOTPDenied) {
		t.Error("otp_denied should be audited")
	}

	ts.now = ts.now.Add(11 * time.Minute)
	ts.sendAndGetCode(t)
}

func TestSendCode_PolicyDecisions(t *testing.T) {
	tests := []struct {
		name     string
		decision policyengine.SendDecision
		evalErr  error
		wantErr  error
	}{
		{"country", policyengine.SendDecision{Reason: policyengine.ReasonCountryNotAllowed}, nil, ErrPhoneNotAllowed},
		{"other reason", policyengine.SendDecision{Reason: "maintenance"}, nil, ErrTooManyRequests},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestAuthService(t, Config{})
			ev := &mockEvaluator{decision: tt.decision, err: tt.evalErr}
			ts.svc.Policy = ev
			if _, err := ts.svc.SendCode(context.Background(), testPhone); !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if ev.last.Phone != "+243812345678" || ev.last.AllowedPrefix != "+243" || ev.last.SendLimit != 3 {
				t.Errorf("policy input = %+v", ev.last)
			}
		})
	}

	ts := newTestAuthService(t, Config{})
	ts.svc.Policy = &mockEvaluator{err: errors.New("boom")}
	if _, err := ts.svc.SendCode(context.Background(), testPhone); err == nil {
		t.Error("policy error should fail the request")
	}
}

func TestVerifyCode_Success(t *testing.T) {
	ts := newTestAuthService(t, Config{})
	code := ts.sendAndGetCode(t)

	res, err := ts.svc.VerifyCode(context.Background(), "243812345678", code)
	if err != nil {
		t.Fatalf("VerifyCode: %v", err)
	}
	if !res.Success || res.User == nil || res.AccessToken == "" {
		t.Fatalf("result = %+v", res)
	}
	if res.User.Phone != "+243812345678" || res.User.Name != "Member 5678" {
		t.Errorf("user = %+v", res.User)
	}
	if !ts.audit.has(audit.ActionLoginSuccess) {
		t.Error("login_success should be audited")
	}

	again, err := ts.svc.VerifyCode(context.Background(), testPhone, code)
	if err != nil || again.Success {
		t.Errorf("a code is single-use: %+v, %v", again, err)
	}
}

// gatedChallenges holds every GetByPhone until the test releases them, so concurrent
// verifications all see the same open challenge.
type gatedChallenges struct {
	otprepo.Repository
	arrived chan struct{}
	release chan struct{}
}

func (g *gatedChallenges) GetByPhone(ctx context.Context, phone string) (*otpdomain.Challenge, error) {
	ch, err := g.Repository.GetByPhone(ctx, phone)
	g.arrived <- struct{}{}
	<-g.release
	return ch, err
}

func TestVerifyCode_ConcurrentUseOfOneCode(t *testing.T) {
	ts := newTestAuthService(t, Config{})
	code := ts.sendAndGetCode(t)

	gate := &gatedChallenges{Repository: ts.challenges, arrived: make(chan struct{}), release: make(chan struct{})}
	ts.svc.Challenges = gate

	const callers = 4
	results := make(chan *VerifyResult, callers)
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		go func() {
			res, err := ts.svc.VerifyCode(context.Background(), testPhone, code)
			if err != nil {
				errs <- err
				return
			}
			results <- res
		}()
	}
	for i := 0; i < callers; i++ {
		<-gate.arrived
	}
	close(gate.release)

	successes := 0
	for i := 0; i < callers; i++ {
		select {
		case err := <-errs:
			t.Fatalf("VerifyCode: %v", err)
		case res := <-results:
			if res.Success {
				successes++
			}
		}
	}
	if successes != 1 {
		t.Errorf("successful verifications = %d, want 1", successes)
	}
}

func TestVerifyCode_ExistingUserKept(t *testing.T) {
	ts := newTestAuthService(t, Config{})
	existing := &userdomain.User{ID: "u-1", Name: "Amani", Phone: "+243812345678", Status: userdomain.UserStatusActive}
	if err := ts.users.Create(context.Background(), existing); err != nil {
		t.Fatalf("Create: %v", err)
	}
	code := ts.sendAndGetCode(t)
	res, err := ts.svc.VerifyCode(context.Background(), testPhone, code)
	if err != nil || !res.Success {
		t.Fatalf("VerifyCode = %+v, %v", res, err)
	}
	if res.User.ID != "u-1" || res.User.Name != "Amani" {
		t.Errorf("user = %+v, want existing member", res.User)
	}
}

func TestVerifyCode_DisabledUser(t *testing.T) {
	ts := newTestAuthService(t, Config{})
	_ = ts.users.Create(context.Background(), &userdomain.User{ID: "u-1", Phone: "+243812345678", Status: userdomain.UserStatusDisabled})
	code := ts.sendAndGetCode(t)
	res, err := ts.svc.VerifyCode(context.Background(), testPhone, code)
	if err != nil || res.Success {
		t.Fatalf("VerifyCode = %+v, %v; want failure", res, err)
	}
}

func TestVerifyCode_Failures(t *testing.T) {
	t.Run("no challenge", func(t *testing.T) {
		ts := newTestAuthService(t, Config{})
		res, err := ts.svc.VerifyCode(context.Background(), testPhone, "1234")
		if err != nil || res.Success {
			t.Errorf("VerifyCode = %+v, %v", res, err)
		}
		if !ts.audit.has(audit.ActionLoginFailure) {
			t.Error("login_failure should be audited")
		}
	})
	t.Run("invalid phone", func(t *testing.T) {
		ts := newTestAuthService(t, Config{})
		if _, err := ts.svc.VerifyCode(context.Background(), "123", "1234"); !errors.Is(err, ErrInvalidPhone) {
			t.Errorf("err = %v, want ErrInvalidPhone", err)
		}
	})
	t.Run("expired", func(t *testing.T) {
		ts := newTestAuthService(t, Config{TTL: time.Minute})
		code := ts.sendAndGetCode(t)
		ts.now = ts.now.Add(time.Minute)
		res, err := ts.svc.VerifyCode(context.Background(), testPhone, code)
		if err != nil || res.Success {
			t.Errorf("VerifyCode = %+v, %v", res, err)
		}
		if ch, _ := ts.challenges.GetByPhone(context.Background(), "+243812345678"); ch != nil {
			t.Error("expired challenge should be deleted")
		}
	})
	t.Run("attempts exhausted", func(t *testing.T) {
		ts := newTestAuthService(t, Config{MaxAttempts: 3})
		code := ts.sendAndGetCode(t)
		for i := 0; i < 3; i++ {
			res, err := ts.svc.VerifyCode(context.Background(), testPhone, wrongCode(code))
			if err != nil || res.Success {
				t.Fatalf("attempt %d = %+v, %v", i+1, res, err)
			}
		}
		res, err := ts.svc.VerifyCode(context.Background(), testPhone, code)
		if err != nil || res.Success {
			t.Errorf("correct code after lockout = %+v, %v; want failure", res, err)
		}
	})
	t.Run("wrong then right", func(t *testing.T) {
		ts := newTestAuthService(t, Config{})
		code := ts.sendAndGetCode(t)
		if res, _ := ts.svc.VerifyCode(context.Background(), testPhone, wrongCode(code)); res.Success {
			t.Fatal("wrong code accepted")
		}
		res, err := ts.svc.VerifyCode(context.Background(), testPhone, code)
		if err != nil || !res.Success {
			t.Errorf("VerifyCode = %+v, %v", res, err)
		}
	})
	t.Run("resend replaces code", func(t *testing.T) {
		ts := newTestAuthService(t, Config{})
		first := ts.sendAndGetCode(t)
		second := ts.sendAndGetCode(t)
		if first == second {
			t.Skip("codes collided")
		}
		if res, _ := ts.svc.VerifyCode(context.Background(), testPhone, first); res.Success {
			t.Error("replaced code must not verify")
		}
	})
}

func signIn(t *testing.T, ts *testSetup) (context.Context, *VerifyResult) {
	t.Helper()
	code := ts.sendAndGetCode(t)
	res, err := ts.svc.VerifyCode(context.Background(), testPhone, code)
	if err != nil || !res.Success {
		t.Fatalf("VerifyCode = %+v, %v", res, err)
	}
	sessionID, userID, err := ts.svc.Tokens.(*security.TokenProvider).ValidateAccess(res.AccessToken)
	if err != nil {
		t.Fatalf("ValidateAccess: %v", err)
	}
	if userID != res.User.ID {
		t.Fatalf("token user = %q, want %q", userID, res.User.ID)
	}
	return interceptors.WithIdentity(context.Background(), userID, sessionID), res
}

func TestCurrentUserAndLogout(t *testing.T) {
	ts := newTestAuthService(t, Config{})
	ctx, res := signIn(t, ts)

	u, err := ts.svc.CurrentUser(ctx)
	if err != nil || u == nil || u.ID != res.User.ID {
		t.Fatalf("CurrentUser = %+v, %v", u, err)
	}
	sessionID, _ := interceptors.GetSessionID(ctx)
	if active, err := ts.svc.SessionActive(ctx, sessionID); err != nil || !active {
		t.Errorf("SessionActive = %v, %v", active, err)
	}

	if err := ts.svc.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if !ts.audit.has(audit.ActionLogout) {
		t.Error("logout should be audited")
	}
	if u, err := ts.svc.CurrentUser(ctx); err != nil || u != nil {
		t.Errorf("CurrentUser after logout = %+v, %v; want nil", u, err)
	}
	if active, _ := ts.svc.SessionActive(ctx, sessionID); active {
		t.Error("session should be inactive after logout")
	}
	if err := ts.svc.Logout(ctx); err != nil {
		t.Errorf("second Logout: %v", err)
	}
}

func TestCurrentUser_NoIdentity(t *testing.T) {
	ts := newTestAuthService(t, Config{})
	if u, err := ts.svc.CurrentUser(context.Background()); err != nil || u != nil {
		t.Errorf("CurrentUser = %+v, %v; want nil, nil", u, err)
	}
	if err := ts.svc.Logout(context.Background()); err != nil {
		t.Errorf("Logout without identity: %v", err)
	}
}

func TestCurrentUser_ExpiredOrForeignSession(t *testing.T) {
	ts := newTestAuthService(t, Config{})
	ctx, _ := signIn(t, ts)
	sessionID, _ := interceptors.GetSessionID(ctx)

	other := interceptors.WithIdentity(context.Background(), "someone-else", sessionID)
	if u, _ := ts.svc.CurrentUser(other); u != nil {
		t.Error("session must belong to the user in context")
	}

	ts.now = ts.now.Add(time.Hour)
	if u, _ := ts.svc.CurrentUser(ctx); u != nil {
		t.Error("expired session must not resolve a user")
	}
}
