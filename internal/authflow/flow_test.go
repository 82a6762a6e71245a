package authflow

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	calls   atomic.Int32
	phones  []string
	mu      sync.Mutex
	result  SendResult
	err     error
	started chan struct{}
	release chan struct{}
}

func (s *fakeSender) SendCode(ctx context.Context, phone string) (SendResult, error) {
	s.calls.Add(1)
	s.mu.Lock()
	s.phones = append(s.phones, phone)
	s.mu.Unlock()
	if s.started != nil {
		s.started <- struct{}{}
	}
	if s.release != nil {
		<-s.release
	}
	return s.result, s.err
}

// fakeVerifier accepts only code and returns user for it.
type fakeVerifier struct {
	calls   atomic.Int32
	code    string
	user    *User
	err     error
	started chan struct{}
	release chan struct{}
}

func (v *fakeVerifier) VerifyCode(ctx context.Context, phone, code string) (VerifyResult, error) {
	v.calls.Add(1)
	if v.started != nil {
		v.started <- struct{}{}
	}
	if v.release != nil {
		<-v.release
	}
	if v.err != nil {
		return VerifyResult{}, v.err
	}
	if code != v.code {
		return VerifyResult{Success: false}, nil
	}
	return VerifyResult{Success: true, User: v.user}, nil
}

type fakeSessions struct {
	user      *User
	err       error
	logouts   atomic.Int32
	logoutErr error
}

func (s *fakeSessions) CurrentUser(ctx context.Context) (*User, error) { return s.user, s.err }
func (s *fakeSessions) Logout(ctx context.Context) error {
	s.logouts.Add(1)
	return s.logoutErr
}

func demoUser() *User {
	return &User{ID: "u1", Name: "Amani", Phone: "+243123456789", CreatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)}
}

func TestFlow_LoginScenario(t *testing.T) {
	sender := &fakeSender{result: SendResult{Success: true}}
	verifier := &fakeVerifier{code: "1234", user: demoUser()}
	f := New(sender, verifier)
	ctx := context.Background()

	f.SetPhone("+243123456789")
	require.NoError(t, f.RequestCode(ctx))
	s := f.State()
	assert.Equal(t, StepOTPEntry, s.Step)
	assert.False(t, s.Loading)
	assert.Empty(t, s.Error)

	f.SetOTP("1234")
	u, err := f.VerifyCode(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	s = f.State()
	assert.Equal(t, StepAuthenticated, s.Step)
	require.NotNil(t, s.User)
	assert.Equal(t, *demoUser(), *s.User)
	assert.False(t, s.Loading)
}

func TestFlow_RequestCodeEmptyPhone(t *testing.T) {
	sender := &fakeSender{result: SendResult{Success: true}}
	f := New(sender, &fakeVerifier{})

	err := f.RequestCode(context.Background())
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "phone", ve.Field)
	assert.Equal(t, MsgPhoneRequired, ve.Message)
	assert.Equal(t, int32(0), sender.calls.Load())

	s := f.State()
	assert.Equal(t, StepPhoneEntry, s.Step)
	assert.Equal(t, MsgPhoneRequired, s.Error)
	assert.False(t, s.Loading)
}

func TestFlow_RequestCodeInvalidPhones(t *testing.T) {
	bad := []string{"   ", "+24312345678", "+2431234567890", "+244123456789", "243-123-456-789", "abc", "+243 12345678x", "00243123456789"}
	for _, p := range bad {
		t.Run(p, func(t *testing.T) {
			sender := &fakeSender{result: SendResult{Success: true}}
			f := New(sender, &fakeVerifier{})
			f.SetPhone(p)
			err := f.RequestCode(context.Background())
			assert.True(t, IsValidation(err), "want validation error, got %v", err)
			s := f.State()
			assert.Equal(t, StepPhoneEntry, s.Step)
			assert.NotEmpty(t, s.Error)
			assert.Equal(t, int32(0), sender.calls.Load())
		})
	}
}

func TestFlow_RequestCodeStripsWhitespace(t *testing.T) {
	sender := &fakeSender{result: SendResult{Success: true}}
	f := New(sender, &fakeVerifier{})
	f.SetPhone(" +243 123 456 789 ")
	require.NoError(t, f.RequestCode(context.Background()))
	assert.Equal(t, []string{"+243123456789"}, sender.phones)
	assert.Equal(t, StepOTPEntry, f.State().Step)
}

func TestFlow_RequestCodeDeliveryFailure(t *testing.T) {
	cases := map[string]*fakeSender{
		"reported failure": {result: SendResult{Success: false}},
		"error":            {err: errors.New("network down")},
	}
	for name, sender := range cases {
		t.Run(name, func(t *testing.T) {
			f := New(sender, &fakeVerifier{})
			f.SetPhone("+243123456789")
			err := f.RequestCode(context.Background())
			require.ErrorIs(t, err, ErrDeliveryFailure)
			s := f.State()
			assert.Equal(t, StepPhoneEntry, s.Step)
			assert.Equal(t, MsgSendFailed, s.Error)
			assert.False(t, s.Loading)
		})
	}
}

func TestFlow_RequestCodeWhileLoadingIsIgnored(t *testing.T) {
	sender := &fakeSender{
		result:  SendResult{Success: true},
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	f := New(sender, &fakeVerifier{})
	f.SetPhone("+243123456789")

	done := make(chan error, 1)
	go func() { done <- f.RequestCode(context.Background()) }()
	<-sender.started

	assert.True(t, f.State().Loading)
	assert.ErrorIs(t, f.RequestCode(context.Background()), ErrRequestInFlight)
	_, err := f.VerifyCode(context.Background())
	assert.ErrorIs(t, err, ErrRequestInFlight)

	close(sender.release)
	require.NoError(t, <-done)
	assert.Equal(t, int32(1), sender.calls.Load())
	assert.False(t, f.State().Loading)
	assert.Equal(t, StepOTPEntry, f.State().Step)
}

func TestFlow_PhoneEditedDuringRequest(t *testing.T) {
	sender := &fakeSender{
		result:  SendResult{Success: true},
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	f := New(sender, &fakeVerifier{})
	f.SetPhone("+243123456789")

	done := make(chan error, 1)
	go func() { done <- f.RequestCode(context.Background()) }()
	<-sender.started
	f.SetPhone("+243999999999")
	close(sender.release)

	require.ErrorIs(t, <-done, ErrPhoneChanged)
	s := f.State()
	assert.Equal(t, StepPhoneEntry, s.Step)
	assert.False(t, s.Loading)
	assert.Equal(t, "+243999999999", s.Phone)
}

func blockingVerifyFlow(t *testing.T, sessions *fakeSessions) (*Flow, *fakeVerifier) {
	t.Helper()
	verifier := &fakeVerifier{
		code:    "1234",
		user:    demoUser(),
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	opts := []Option{}
	if sessions != nil {
		opts = append(opts, WithSessionStore(sessions))
	}
	f := New(&fakeSender{result: SendResult{Success: true}}, verifier, opts...)
	f.SetPhone("+243123456789")
	require.NoError(t, f.RequestCode(context.Background()))
	f.SetOTP("1234")
	return f, verifier
}

type verifyOutcome struct {
	user *User
	err  error
}

func TestFlow_PhoneEditedDuringVerify(t *testing.T) {
	sessions := &fakeSessions{}
	f, verifier := blockingVerifyFlow(t, sessions)

	done := make(chan verifyOutcome, 1)
	go func() {
		u, err := f.VerifyCode(context.Background())
		done <- verifyOutcome{u, err}
	}()
	<-verifier.started
	f.SetPhone("+243999999999")
	assert.Equal(t, StepPhoneEntry, f.State().Step)
	close(verifier.release)

	out := <-done
	require.ErrorIs(t, out.err, ErrPhoneChanged)
	assert.Nil(t, out.user)
	s := f.State()
	assert.Equal(t, StepPhoneEntry, s.Step)
	assert.Nil(t, s.User)
	assert.False(t, s.Loading)
	assert.Equal(t, "+243999999999", s.Phone)
	assert.Equal(t, int32(1), sessions.logouts.Load(), "session opened for the old number is ended")
}

func TestFlow_ResetToPhoneStepDuringVerify(t *testing.T) {
	f, verifier := blockingVerifyFlow(t, nil)

	done := make(chan verifyOutcome, 1)
	go func() {
		u, err := f.VerifyCode(context.Background())
		done <- verifyOutcome{u, err}
	}()
	<-verifier.started
	f.ResetToPhoneStep()
	close(verifier.release)

	out := <-done
	require.ErrorIs(t, out.err, ErrPhoneChanged)
	s := f.State()
	assert.Equal(t, StepPhoneEntry, s.Step)
	assert.Nil(t, s.User)
	assert.False(t, s.Loading)
}

func TestFlow_LogoutDuringVerify(t *testing.T) {
	sessions := &fakeSessions{}
	f, verifier := blockingVerifyFlow(t, sessions)

	done := make(chan verifyOutcome, 1)
	go func() {
		u, err := f.VerifyCode(context.Background())
		done <- verifyOutcome{u, err}
	}()
	<-verifier.started
	require.NoError(t, f.Logout(context.Background()))
	assert.Equal(t, State{}, f.State())
	close(verifier.release)

	out := <-done
	require.ErrorIs(t, out.err, ErrLoggedOut)
	assert.Nil(t, out.user)
	assert.Equal(t, State{}, f.State())
	assert.Equal(t, int32(2), sessions.logouts.Load())
}

func TestFlow_LogoutDuringRequestCode(t *testing.T) {
	sender := &fakeSender{
		result:  SendResult{Success: true},
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	f := New(sender, &fakeVerifier{})
	f.SetPhone("+243123456789")

	done := make(chan error, 1)
	go func() { done <- f.RequestCode(context.Background()) }()
	<-sender.started
	require.NoError(t, f.Logout(context.Background()))

	// A new request may start while the abandoned one is still outstanding.
	f.SetPhone("+243987654321")
	assert.False(t, f.State().Loading)
	close(sender.release)

	require.ErrorIs(t, <-done, ErrLoggedOut)
	s := f.State()
	assert.Equal(t, StepPhoneEntry, s.Step)
	assert.Equal(t, "+243987654321", s.Phone)
	assert.False(t, s.Loading)
}

func TestFlow_RequestCodeHonorsTimeout(t *testing.T) {
	f := New(senderFunc(func(ctx context.Context, phone string) (SendResult, error) {
		<-ctx.Done()
		return SendResult{}, ctx.Err()
	}), &fakeVerifier{}, WithRequestTimeout(10*time.Millisecond))
	f.SetPhone("+243123456789")

	err := f.RequestCode(context.Background())
	require.ErrorIs(t, err, ErrDeliveryFailure)
	assert.False(t, f.State().Loading)
}

func TestFlow_LoadingClearedWhenSenderPanics(t *testing.T) {
	f := New(senderFunc(func(ctx context.Context, phone string) (SendResult, error) {
		panic("boom")
	}), &fakeVerifier{})
	f.SetPhone("+243123456789")

	assert.Panics(t, func() { _ = f.RequestCode(context.Background()) })
	s := f.State()
	assert.False(t, s.Loading)
	assert.Equal(t, StepPhoneEntry, s.Step)
}

func TestFlow_VerifyValidOTPCallsVerifierOnce(t *testing.T) {
	codes := []string{"0000", "1234", "9999", "0420", "5071"}
	for _, code := range codes {
		t.Run(code, func(t *testing.T) {
			verifier := &fakeVerifier{code: "none"}
			f := otpStepFlow(t, verifier)
			f.SetOTP(code)
			_, err := f.VerifyCode(context.Background())
			assert.False(t, IsValidation(err))
			assert.Equal(t, int32(1), verifier.calls.Load())
		})
	}
}

func TestFlow_VerifyInvalidOTP(t *testing.T) {
	cases := map[string]string{
		"":     MsgOTPRequired,
		"12":   MsgOTPInvalid,
		"12a":  MsgOTPInvalid,
		"abcd": MsgOTPInvalid,
		"12 4": MsgOTPInvalid,
	}
	for code, msg := range cases {
		t.Run(code, func(t *testing.T) {
			verifier := &fakeVerifier{code: "1234"}
			f := otpStepFlow(t, verifier)
			f.SetOTP(code)
			_, err := f.VerifyCode(context.Background())
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "otp", ve.Field)
			assert.Equal(t, msg, f.State().Error)
			assert.Equal(t, int32(0), verifier.calls.Load())
		})
	}
}

func TestFlow_VerifyWrongCode(t *testing.T) {
	verifier := &fakeVerifier{code: "1234", user: demoUser()}
	f := otpStepFlow(t, verifier)
	f.SetOTP("0000")

	u, err := f.VerifyCode(context.Background())
	require.ErrorIs(t, err, ErrVerificationFailure)
	assert.Nil(t, u)
	s := f.State()
	assert.Equal(t, MsgIncorrectCode, s.Error)
	assert.Nil(t, s.User)
	assert.Equal(t, StepOTPEntry, s.Step)
	assert.False(t, s.Loading)

	// editing the code clears the error
	f.SetOTP("1")
	assert.Empty(t, f.State().Error)
}

func TestFlow_VerifySuccessWithoutIdentity(t *testing.T) {
	verifier := &fakeVerifier{code: "1234"}
	f := otpStepFlow(t, verifier)
	f.SetOTP("1234")
	_, err := f.VerifyCode(context.Background())
	require.ErrorIs(t, err, ErrVerificationFailure)
	assert.Equal(t, MsgIncorrectCode, f.State().Error)
}

func TestFlow_VerifyCollaboratorError(t *testing.T) {
	verifier := &fakeVerifier{err: errors.New("unavailable")}
	f := otpStepFlow(t, verifier)
	f.SetOTP("1234")
	_, err := f.VerifyCode(context.Background())
	require.ErrorIs(t, err, ErrDeliveryFailure)
	s := f.State()
	assert.Equal(t, MsgGeneric, s.Error)
	assert.Equal(t, StepOTPEntry, s.Step)
	assert.False(t, s.Loading)
}

func TestFlow_VerifyBeforeRequest(t *testing.T) {
	verifier := &fakeVerifier{code: "1234"}
	f := New(&fakeSender{}, verifier)
	f.SetPhone("+243123456789")
	f.SetOTP("1234")
	_, err := f.VerifyCode(context.Background())
	require.ErrorIs(t, err, ErrCodeNotRequested)
	assert.Equal(t, int32(0), verifier.calls.Load())
}

func TestFlow_ResetToPhoneStep(t *testing.T) {
	f := otpStepFlow(t, &fakeVerifier{code: "1234"})
	f.SetOTP("0000")
	_, _ = f.VerifyCode(context.Background())
	require.NotEmpty(t, f.State().Error)

	f.ResetToPhoneStep()
	s := f.State()
	assert.Equal(t, StepPhoneEntry, s.Step)
	assert.Empty(t, s.OTP)
	assert.Empty(t, s.Error)
	assert.Equal(t, "+243123456789", s.Phone)
}

func TestFlow_ResendFromOTPStep(t *testing.T) {
	sender := &fakeSender{result: SendResult{Success: true}}
	f := New(sender, &fakeVerifier{})
	f.SetPhone("+243123456789")
	require.NoError(t, f.RequestCode(context.Background()))
	require.NoError(t, f.RequestCode(context.Background()))
	assert.Equal(t, int32(2), sender.calls.Load())
	assert.Equal(t, StepOTPEntry, f.State().Step)
}

func TestFlow_AfterAuthenticated(t *testing.T) {
	verifier := &fakeVerifier{code: "1234", user: demoUser()}
	f := otpStepFlow(t, verifier)
	f.SetOTP("1234")
	_, err := f.VerifyCode(context.Background())
	require.NoError(t, err)

	assert.ErrorIs(t, f.RequestCode(context.Background()), ErrAlreadyAuthenticated)
	_, err = f.VerifyCode(context.Background())
	assert.ErrorIs(t, err, ErrAlreadyAuthenticated)
}

func TestFlow_Logout(t *testing.T) {
	sessions := &fakeSessions{}
	verifier := &fakeVerifier{code: "1234", user: demoUser()}
	f := New(&fakeSender{result: SendResult{Success: true}}, verifier, WithSessionStore(sessions))
	f.SetPhone("+243123456789")
	require.NoError(t, f.RequestCode(context.Background()))
	f.SetOTP("1234")
	_, err := f.VerifyCode(context.Background())
	require.NoError(t, err)

	require.NoError(t, f.Logout(context.Background()))
	assert.Equal(t, State{}, f.State())
	assert.Equal(t, int32(1), sessions.logouts.Load())

	// idempotent
	require.NoError(t, f.Logout(context.Background()))
	assert.Equal(t, int32(2), sessions.logouts.Load())
}

func TestFlow_LogoutResetsEvenOnError(t *testing.T) {
	sessions := &fakeSessions{logoutErr: errors.New("offline")}
	f := New(&fakeSender{}, &fakeVerifier{}, WithSessionStore(sessions))
	f.SetPhone("+243123456789")
	require.Error(t, f.Logout(context.Background()))
	assert.Equal(t, State{}, f.State())
}

func TestFlow_Restore(t *testing.T) {
	sessions := &fakeSessions{user: demoUser()}
	f := New(&fakeSender{}, &fakeVerifier{}, WithSessionStore(sessions))
	u, err := f.Restore(context.Background())
	require.NoError(t, err)
	require.NotNil(t, u)
	s := f.State()
	assert.Equal(t, StepAuthenticated, s.Step)
	assert.Equal(t, "u1", s.User.ID)

	empty := New(&fakeSender{}, &fakeVerifier{}, WithSessionStore(&fakeSessions{}))
	u, err = empty.Restore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, u)
	assert.Equal(t, State{}, empty.State())

	failing := New(&fakeSender{}, &fakeVerifier{}, WithSessionStore(&fakeSessions{err: errors.New("x")}))
	_, err = failing.Restore(context.Background())
	require.ErrorIs(t, err, ErrDeliveryFailure)
	assert.False(t, failing.State().Loading)

	none := New(&fakeSender{}, &fakeVerifier{})
	u, err = none.Restore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestFlow_StateIsSnapshot(t *testing.T) {
	f := New(&fakeSender{}, &fakeVerifier{}, WithSessionStore(&fakeSessions{user: demoUser()}))
	_, err := f.Restore(context.Background())
	require.NoError(t, err)
	s := f.State()
	s.User.ID = "mutated"
	assert.Equal(t, "u1", f.State().User.ID)
}

type senderFunc func(ctx context.Context, phone string) (SendResult, error)

func (fn senderFunc) SendCode(ctx context.Context, phone string) (SendResult, error) {
	return fn(ctx, phone)
}

func otpStepFlow(t *testing.T, verifier *fakeVerifier) *Flow {
	t.Helper()
	f := New(&fakeSender{result: SendResult{Success: true}}, verifier)
	f.SetPhone("+243123456789")
	require.NoError(t, f.RequestCode(context.Background()))
	return f
}
