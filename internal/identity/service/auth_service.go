// Package service implements phone sign-in: code issuance, verification, the current
// user lookup and logout.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"likelemba/internal/audit"
	"likelemba/internal/devotp"
	"likelemba/internal/otp"
	otpdomain "likelemba/internal/otp/domain"
	otprepo "likelemba/internal/otp/repository"
	"likelemba/internal/phone"
	policyengine "likelemba/internal/policy/engine"
	"likelemba/internal/server/interceptors"
	sessiondomain "likelemba/internal/session/domain"
	"likelemba/internal/telemetry"
	telemetrydomain "likelemba/internal/telemetry/domain"
	telemetryotel "likelemba/internal/telemetry/otel"
	userdomain "likelemba/internal/user/domain"
	userrepo "likelemba/internal/user/repository"
)

// Sentinel errors for auth service; handler maps them to gRPC codes.
var (
	ErrInvalidPhone     = errors.New("invalid phone number")
	ErrTooManyRequests  = errors.New("too many code requests, try again later")
	ErrPhoneNotAllowed  = errors.New("phone number not allowed")
	ErrDeliveryDisabled = errors.New("no code delivery configured")
)

const telemetrySource = "auth_service"

// UserRepo is the minimal user repository needed by the auth service.
type UserRepo interface {
	GetByID(ctx context.Context, id string) (*userdomain.User, error)
	GetByPhone(ctx context.Context, phone string) (*userdomain.User, error)
	Create(ctx context.Context, u *userdomain.User) error
}

// SessionRepo is the minimal session repository needed by the auth service.
type SessionRepo interface {
	GetByID(ctx context.Context, id string) (*sessiondomain.Session, error)
	Create(ctx context.Context, s *sessiondomain.Session) error
	Revoke(ctx context.Context, id string) error
	UpdateLastSeen(ctx context.Context, id string, at time.Time) error
}

// CodeSender delivers a code by SMS.
type CodeSender interface {
	SendOTP(ctx context.Context, to, code string) error
}

// TokenIssuer issues access tokens bound to a session.
type TokenIssuer interface {
	IssueAccess(sessionID, userID string) (token string, expiresAt time.Time, err error)
	AccessTTL() time.Duration
}

// Config holds the code and rate-limit settings.
type Config struct {
	Digits        int
	TTL           time.Duration
	MaxAttempts   int
	SendLimit     int
	SendWindow    time.Duration
	AllowedPrefix string
	// DevMode stores codes in the dev OTP store instead of sending SMS. Never set in production.
	DevMode bool
}

// DefaultConfig returns the settings used when none are configured.
func DefaultConfig() Config {
	return Config{
		Digits:        otp.DefaultDigits,
		TTL:           otprepo.DefaultChallengeTTL,
		MaxAttempts:   5,
		SendLimit:     3,
		SendWindow:    10 * time.Minute,
		AllowedPrefix: "+" + phone.CountryCode,
	}
}

// Deps are the collaborators of AuthService. Audit, Telemetry, Metrics and DevOTP may be nil.
type Deps struct {
	Users      UserRepo
	Sessions   SessionRepo
	Challenges otprepo.Repository
	Policy     policyengine.Evaluator
	SMS        CodeSender
	DevOTP     devotp.Store
	Tokens     TokenIssuer
	Audit      audit.AuditLogger
	Telemetry  telemetry.EventEmitter
	Metrics    *telemetryotel.AuthMetrics
}

// VerifyResult is the outcome of VerifyCode. User, AccessToken and ExpiresAt are set only on success.
type VerifyResult struct {
	Success     bool
	User        *userdomain.User
	AccessToken string
	ExpiresAt   time.Time
}

// AuthService implements phone/OTP sign-in, current user lookup, and logout.
type AuthService struct {
	Deps
	cfg  Config
	nowF func() time.Time
}

// NewAuthService returns an AuthService. Zero fields in cfg take their DefaultConfig value.
func NewAuthService(deps Deps, cfg Config) *AuthService {
	def := DefaultConfig()
	if cfg.Digits == 0 {
		cfg.Digits = def.Digits
	}
	if cfg.TTL <= 0 {
		cfg.TTL = def.TTL
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = def.MaxAttempts
	}
	if cfg.SendLimit <= 0 {
		cfg.SendLimit = def.SendLimit
	}
	if cfg.SendWindow <= 0 {
		cfg.SendWindow = def.SendWindow
	}
	if cfg.AllowedPrefix == "" {
		cfg.AllowedPrefix = def.AllowedPrefix
	}
	return &AuthService{
		Deps: deps,
		cfg:  cfg,
		nowF: func() time.Time { return time.Now().UTC() },
	}
}

// SendCode issues a new code for p and delivers it. It returns sent=false without an
// error when delivery fails; the challenge is dropped in that case.
func (s *AuthService) SendCode(ctx context.Context, p string) (bool, error) {
	if !phone.Valid(p) {
		return false, ErrInvalidPhone
	}
	canonical := phone.Canonical(p)
	masked := phone.Mask(canonical)
	now := s.nowF()

	recent, err := s.Challenges.CountSince(ctx, canonical, now.Add(-s.cfg.SendWindow))
	if err != nil {
		return false, fmt.Errorf("count recent sends: %w", err)
	}
	decision, err := s.Policy.EvaluateSend(ctx, policyengine.SendInput{
		Phone:         canonical,
		RecentSends:   recent,
		SendLimit:     s.cfg.SendLimit,
		Window:        s.cfg.SendWindow,
		AllowedPrefix: s.cfg.AllowedPrefix,
	})
	if err != nil {
		return false, fmt.Errorf("evaluate send policy: %w", err)
	}
	if !decision.Allow {
		log.Printf("auth: code request for %s denied: %s", masked, decision.Reason)
		s.record(ctx, "", "", audit.ActionOTPDenied, telemetrydomain.EventOTPDenied, map[string]string{"phone": masked, "reason": decision.Reason})
		s.Metrics.RecordSend(ctx, telemetryotel.OutcomeDenied)
		if decision.Reason == policyengine.ReasonCountryNotAllowed {
			return false, ErrPhoneNotAllowed
		}
		return false, ErrTooManyRequests
	}

	code, err := otp.Generate(s.cfg.Digits)
	if err != nil {
		return false, fmt.Errorf("generate code: %w", err)
	}
	ch := &otpdomain.Challenge{
		ID:        uuid.New().String(),
		Phone:     canonical,
		CodeHash:  otp.Hash(canonical, code),
		ExpiresAt: now.Add(s.cfg.TTL),
		CreatedAt: now,
	}
	if err := s.Challenges.Put(ctx, ch); err != nil {
		return false, fmt.Errorf("store challenge: %w", err)
	}

	if err := s.deliver(ctx, canonical, code, ch.ExpiresAt); err != nil {
		log.Printf("auth: code delivery to %s failed: %v", masked, err)
		if _, delErr := s.Challenges.Delete(ctx, canonical, ch.ID); delErr != nil {
			log.Printf("auth: drop undelivered challenge: %v", delErr)
		}
		s.record(ctx, "", "", audit.ActionOTPSendFailed, telemetrydomain.EventOTPSendFailed, map[string]string{"phone": masked})
		s.Metrics.RecordSend(ctx, telemetryotel.OutcomeFailure)
		return false, nil
	}
	s.record(ctx, "", "", audit.ActionOTPSent, telemetrydomain.EventOTPSent, map[string]string{"phone": masked})
	s.Metrics.RecordSend(ctx, telemetryotel.OutcomeSuccess)
	return true, nil
}

func (s *AuthService) deliver(ctx context.Context, canonical, code string, expiresAt time.Time) error {
	if s.cfg.DevMode && s.DevOTP != nil {
		s.DevOTP.Put(ctx, canonical, code, expiresAt)
		log.Printf("auth: dev mode, code for %s kept in dev OTP store", phone.Mask(canonical))
		return nil
	}
	if s.SMS == nil {
		return ErrDeliveryDisabled
	}
	return s.SMS.SendOTP(ctx, canonical, code)
}

// VerifyCode checks code against the active challenge for p. On a match it signs the member
// in: the user is found or created, a session is opened and an access token issued.
// A wrong, expired or missing code gives Success=false and no error.
func (s *AuthService) VerifyCode(ctx context.Context, p, code string) (*VerifyResult, error) {
	if !phone.Valid(p) {
		return nil, ErrInvalidPhone
	}
	canonical := phone.Canonical(p)
	masked := phone.Mask(canonical)

	ok, err := s.checkCode(ctx, canonical, code)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.record(ctx, "", "", audit.ActionLoginFailure, telemetrydomain.EventLoginFailure, map[string]string{"phone": masked})
		s.Metrics.RecordVerification(ctx, telemetryotel.OutcomeFailure)
		return &VerifyResult{}, nil
	}

	user, err := s.findOrCreateUser(ctx, canonical)
	if err != nil {
		return nil, err
	}
	if user.Status != userdomain.UserStatusActive {
		log.Printf("auth: sign-in refused for disabled user %s", user.ID)
		s.record(ctx, user.ID, "", audit.ActionLoginFailure, telemetrydomain.EventLoginFailure, map[string]string{"phone": masked, "reason": "user_disabled"})
		s.Metrics.RecordVerification(ctx, telemetryotel.OutcomeDenied)
		return &VerifyResult{}, nil
	}

	now := s.nowF()
	sess := &sessiondomain.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		ExpiresAt: now.Add(s.Tokens.AccessTTL()),
		CreatedAt: now,
	}
	if err := s.Sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	token, expiresAt, err := s.Tokens.IssueAccess(sess.ID, user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	s.record(ctx, user.ID, sess.ID, audit.ActionLoginSuccess, telemetrydomain.EventLoginSuccess, map[string]string{"phone": masked})
	s.Metrics.RecordVerification(ctx, telemetryotel.OutcomeSuccess)
	return &VerifyResult{Success: true, User: user, AccessToken: token, ExpiresAt: expiresAt}, nil
}

// checkCode consumes the challenge on a match. A match only counts for the caller that
// closed the challenge, so one code signs in at most once. Mismatches count as attempts;
// the challenge is dropped once MaxAttempts is reached or it has expired.
func (s *AuthService) checkCode(ctx context.Context, canonical, code string) (bool, error) {
	ch, err := s.Challenges.GetByPhone(ctx, canonical)
	if err != nil {
		return false, fmt.Errorf("load challenge: %w", err)
	}
	if ch == nil {
		return false, nil
	}
	if ch.Expired(s.nowF()) || ch.Attempts >= s.cfg.MaxAttempts {
		_, err := s.dropChallenge(ctx, ch)
		return false, err
	}
	if !otp.Equal(canonical, code, ch.CodeHash) {
		n, err := s.Challenges.IncrementAttempts(ctx, canonical, ch.ID)
		if errors.Is(err, otprepo.ErrNotFound) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("count attempt: %w", err)
		}
		if n >= s.cfg.MaxAttempts {
			_, err := s.dropChallenge(ctx, ch)
			return false, err
		}
		return false, nil
	}
	closed, err := s.dropChallenge(ctx, ch)
	if err != nil || !closed {
		return false, err
	}
	if s.DevOTP != nil {
		s.DevOTP.Delete(ctx, canonical)
	}
	return true, nil
}

func (s *AuthService) dropChallenge(ctx context.Context, ch *otpdomain.Challenge) (bool, error) {
	closed, err := s.Challenges.Delete(ctx, ch.Phone, ch.ID)
	if err != nil {
		return false, fmt.Errorf("delete challenge: %w", err)
	}
	return closed, nil
}

func (s *AuthService) findOrCreateUser(ctx context.Context, canonical string) (*userdomain.User, error) {
	u, err := s.Users.GetByPhone(ctx, canonical)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if u != nil {
		return u, nil
	}
	now := s.nowF()
	u = &userdomain.User{
		ID:        uuid.New().String(),
		Name:      userdomain.DefaultName(canonical),
		Phone:     canonical,
		Status:    userdomain.UserStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	err = s.Users.Create(ctx, u)
	if errors.Is(err, userrepo.ErrDuplicatePhone) {
		// Created concurrently by another sign-in.
		return s.Users.GetByPhone(ctx, canonical)
	}
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// CurrentUser returns the user of the session the auth interceptor put in context.
// It returns (nil, nil) when there is no identity or the session is no longer active.
func (s *AuthService) CurrentUser(ctx context.Context) (*userdomain.User, error) {
	sessionID, ok := interceptors.GetSessionID(ctx)
	if !ok || sessionID == "" {
		return nil, nil
	}
	userID, _ := interceptors.GetUserID(ctx)
	sess, err := s.Sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	now := s.nowF()
	if !sess.Active(now) || sess.UserID != userID {
		return nil, nil
	}
	if err := s.Sessions.UpdateLastSeen(ctx, sessionID, now); err != nil {
		log.Printf("auth: update last seen: %v", err)
	}
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if u == nil || u.Status != userdomain.UserStatusActive {
		return nil, nil
	}
	return u, nil
}

// SessionActive reports whether sessionID refers to a live session. Used by the auth interceptor.
func (s *AuthService) SessionActive(ctx context.Context, sessionID string) (bool, error) {
	sess, err := s.Sessions.GetByID(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return sess.Active(s.nowF()), nil
}

// Logout revokes the session in context. Without an identity it is a no-op.
func (s *AuthService) Logout(ctx context.Context) error {
	sessionID, ok := interceptors.GetSessionID(ctx)
	if !ok || sessionID == "" {
		return nil
	}
	if err := s.Sessions.Revoke(ctx, sessionID); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	userID, _ := interceptors.GetUserID(ctx)
	s.record(ctx, userID, sessionID, audit.ActionLogout, telemetrydomain.EventLogout, nil)
	return nil
}

// record writes the audit row and emits the telemetry event for one auth event. Best-effort.
func (s *AuthService) record(ctx context.Context, userID, sessionID, action, eventType string, meta map[string]string) {
	if s.Audit != nil {
		s.Audit.LogEvent(ctx, userID, action, audit.ResourceAuth, meta)
	}
	if s.Telemetry == nil {
		return
	}
	var raw json.RawMessage
	if len(meta) > 0 {
		raw, _ = json.Marshal(meta)
	}
	telemetry.EmitAsync(s.Telemetry, ctx, &telemetrydomain.Event{
		UserID:    userID,
		SessionID: sessionID,
		EventType: eventType,
		Source:    telemetrySource,
		Metadata:  raw,
		CreatedAt: s.nowF(),
	})
}
