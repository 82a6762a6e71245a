package authflow

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"likelemba/internal/phone"
)

// DefaultRequestTimeout bounds every collaborator call made by a Flow.
const DefaultRequestTimeout = 15 * time.Second

var (
	// ErrPhoneChanged is returned by RequestCode and VerifyCode when the phone number was
	// edited (or the flow sent back to phone entry) while the request was in flight.
	// The late answer is discarded.
	ErrPhoneChanged = errors.New("authflow: phone number changed during request")
	// ErrLoggedOut is returned by a request whose answer arrived after Logout reset the flow.
	ErrLoggedOut = errors.New("authflow: flow was reset while the request was in flight")
)

// Flow drives one sign-in. It is safe for concurrent use; the mutex guards state only
// and is never held across a collaborator call.
type Flow struct {
	mu       sync.Mutex
	state    State
	sender   CodeSender
	verifier CodeVerifier
	sessions SessionStore
	timeout  time.Duration
	// epoch is bumped by Logout; a request only lands if the epoch it started in is current.
	epoch uint64
}

// Option configures a Flow.
type Option func(*Flow)

// WithSessionStore sets the collaborator used by Restore and Logout.
func WithSessionStore(s SessionStore) Option {
	return func(f *Flow) { f.sessions = s }
}

// WithRequestTimeout overrides DefaultRequestTimeout. Zero or negative disables the timeout.
func WithRequestTimeout(d time.Duration) Option {
	return func(f *Flow) { f.timeout = d }
}

// New returns a Flow in the initial state.
func New(sender CodeSender, verifier CodeVerifier, opts ...Option) *Flow {
	f := &Flow{
		sender:   sender,
		verifier: verifier,
		timeout:  DefaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// State returns a snapshot of the current state.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.state
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

// SetPhone replaces the phone number and clears the error. No format check is done here.
func (f *Flow) SetPhone(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.apply(Event{Type: EventSetPhone, Value: v})
}

// SetOTP replaces the code (bounded to OTPLength characters) and clears the error.
func (f *Flow) SetOTP(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.apply(Event{Type: EventSetOTP, Value: v})
}

// ResetToPhoneStep goes back to phone entry, clearing the code and the error. The phone is kept.
func (f *Flow) ResetToPhoneStep() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.apply(Event{Type: EventResetToPhone})
}

// RequestCode validates the phone and asks the CodeSender to deliver a code.
// On success the flow moves to StepOTPEntry. Calls made while a request is loading
// return ErrRequestInFlight without doing anything.
func (f *Flow) RequestCode(ctx context.Context) (err error) {
	f.mu.Lock()
	if err := f.begin(); err != nil {
		f.mu.Unlock()
		return err
	}
	if verr := ValidatePhone(f.state.Phone); verr != nil {
		f.fail(verr)
		f.mu.Unlock()
		return verr
	}
	entered := f.state.Phone
	p := phone.Normalize(entered)
	epoch := f.epoch
	f.apply(Event{Type: EventRequestStarted})
	f.mu.Unlock()

	outcome := Event{Type: EventRequestFailed, Message: MsgSendFailed}
	defer func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.epoch != epoch {
			err = ErrLoggedOut
			return
		}
		if outcome.Type == EventCodeSent && f.state.Phone != entered {
			outcome = Event{Type: EventRequestFailed}
			err = ErrPhoneChanged
		}
		f.apply(outcome)
	}()

	ctx, cancel := f.withTimeout(ctx)
	defer cancel()
	res, serr := f.sender.SendCode(ctx, p)
	if serr != nil {
		return fmt.Errorf("%w: send code: %v", ErrDeliveryFailure, serr)
	}
	if !res.Success {
		return ErrDeliveryFailure
	}
	outcome = Event{Type: EventCodeSent}
	return nil
}

// VerifyCode validates the code and submits it with the phone to the CodeVerifier.
// On success the user is stored, the flow becomes StepAuthenticated, and the user is returned.
// If the phone is edited or the flow leaves StepOTPEntry while the verifier is
// answering, the answer is discarded and ErrPhoneChanged returned.
func (f *Flow) VerifyCode(ctx context.Context) (user *User, err error) {
	f.mu.Lock()
	if err := f.begin(); err != nil {
		f.mu.Unlock()
		return nil, err
	}
	if verr := ValidateOTP(f.state.OTP); verr != nil {
		f.fail(verr)
		f.mu.Unlock()
		return nil, verr
	}
	if f.state.Step != StepOTPEntry {
		f.mu.Unlock()
		return nil, ErrCodeNotRequested
	}
	entered, code := f.state.Phone, f.state.OTP
	p := phone.Normalize(entered)
	epoch := f.epoch
	f.apply(Event{Type: EventRequestStarted})
	f.mu.Unlock()

	outcome := Event{Type: EventRequestFailed, Message: MsgGeneric}
	defer func() {
		verified := outcome.Type == EventVerified
		f.mu.Lock()
		switch {
		case f.epoch != epoch:
			user, err = nil, ErrLoggedOut
		case verified && (f.state.Phone != entered || f.state.Step != StepOTPEntry):
			f.apply(Event{Type: EventRequestFailed})
			user, err = nil, ErrPhoneChanged
		default:
			f.apply(outcome)
		}
		f.mu.Unlock()
		if verified && user == nil {
			f.dropOrphanedSession(ctx)
		}
	}()

	ctx, cancel := f.withTimeout(ctx)
	defer cancel()
	res, verr := f.verifier.VerifyCode(ctx, p, code)
	if verr != nil {
		return nil, fmt.Errorf("%w: verify code: %v", ErrDeliveryFailure, verr)
	}
	if !res.Success || res.User == nil {
		outcome = Event{Type: EventRequestFailed, Message: MsgIncorrectCode}
		return nil, ErrVerificationFailure
	}
	u := *res.User
	outcome = Event{Type: EventVerified, User: &u}
	return &u, nil
}

// Restore asks the SessionStore for a signed-in user and, if there is one, enters
// StepAuthenticated without a new code. It returns (nil, nil) when nobody is signed in
// or no SessionStore is configured.
func (f *Flow) Restore(ctx context.Context) (user *User, err error) {
	if f.sessions == nil {
		return nil, nil
	}
	f.mu.Lock()
	if err := f.begin(); err != nil {
		f.mu.Unlock()
		return nil, err
	}
	epoch := f.epoch
	f.apply(Event{Type: EventRequestStarted})
	f.mu.Unlock()

	outcome := Event{Type: EventRequestFailed, Message: MsgGeneric}
	defer func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.epoch != epoch {
			user, err = nil, ErrLoggedOut
			return
		}
		f.apply(outcome)
	}()

	ctx, cancel := f.withTimeout(ctx)
	defer cancel()
	u, cerr := f.sessions.CurrentUser(ctx)
	if cerr != nil {
		return nil, fmt.Errorf("%w: current user: %v", ErrDeliveryFailure, cerr)
	}
	if u == nil {
		outcome = Event{Type: EventRequestFailed}
		return nil, nil
	}
	cp := *u
	outcome = Event{Type: EventRestored, User: &cp}
	return &cp, nil
}

// Logout ends the collaborator session (if a SessionStore is set) and resets the flow to
// its initial state. It is unconditional: the local reset happens even when the collaborator
// call fails, and a request still in flight is abandoned (its answer is discarded).
func (f *Flow) Logout(ctx context.Context) error {
	f.mu.Lock()
	f.epoch++
	f.apply(Event{Type: EventLogout})
	f.mu.Unlock()

	var err error
	if f.sessions != nil {
		lctx, cancel := f.withTimeout(ctx)
		err = f.sessions.Logout(lctx)
		cancel()
	}
	if err != nil {
		return fmt.Errorf("authflow: logout: %w", err)
	}
	return nil
}

// dropOrphanedSession ends a session the verifier opened for an answer the flow discarded.
func (f *Flow) dropOrphanedSession(ctx context.Context) {
	if f.sessions == nil {
		return
	}
	lctx, cancel := f.withTimeout(context.WithoutCancel(ctx))
	defer cancel()
	_ = f.sessions.Logout(lctx)
}

// begin checks the request guards. Caller holds f.mu.
func (f *Flow) begin() error {
	if f.state.Loading {
		return ErrRequestInFlight
	}
	if f.state.Step == StepAuthenticated {
		return ErrAlreadyAuthenticated
	}
	return nil
}

// fail records a validation error. Caller holds f.mu.
func (f *Flow) fail(err error) {
	msg := err.Error()
	var ve *ValidationError
	if errors.As(err, &ve) {
		msg = ve.Message
	}
	f.apply(Event{Type: EventValidationFailed, Message: msg})
}

// apply runs one transition. Caller holds f.mu.
func (f *Flow) apply(e Event) {
	f.state = Transition(f.state, e)
}

func (f *Flow) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if f.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, f.timeout)
}
