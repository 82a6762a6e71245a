package cli

import (
	"context"
	"errors"
	"io"

	"likelemba/internal/authflow"
)

// Words accepted at the code prompt besides the code itself.
const (
	cmdResend = "resend"
	cmdChange = "change"
)

// login walks the member through phone entry and code entry. An empty answer cancels.
func (a *App) login(ctx context.Context) error {
	if s := a.flow.State(); s.Step == authflow.StepAuthenticated {
		a.printf("Already signed in as %s.\n", s.User.Name)
		return nil
	}
	for {
		if a.flow.State().Step != authflow.StepOTPEntry {
			sent, err := a.phoneStep(ctx)
			if err != nil || !sent {
				return err
			}
		}
		done, err := a.codeStep(ctx)
		if err != nil || done {
			return err
		}
	}
}

// phoneStep asks for a phone number until a code is sent. It returns false when cancelled.
func (a *App) phoneStep(ctx context.Context) (bool, error) {
	for {
		p, err := readLine(a.in, a.out, "Phone number (+243...): ")
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if p == "" {
			a.printf("Cancelled.\n")
			return false, nil
		}
		a.flow.SetPhone(p)
		if a.requestCode(ctx) {
			return true, nil
		}
	}
}

func (a *App) requestCode(ctx context.Context) bool {
	err := a.flow.RequestCode(ctx)
	if err != nil {
		a.printf("%s\n", a.errorText(err))
		return false
	}
	a.printf("A 4-digit code was sent to %s.\n", a.flow.State().Phone)
	if a.devOTP {
		if code, err := a.backend.DevOTP(ctx, a.flow.State().Phone); err == nil {
			a.printf("[dev] code: %s\n", code)
		}
	}
	return true
}

// codeStep asks for the code. It returns true once signed in or cancelled.
func (a *App) codeStep(ctx context.Context) (bool, error) {
	for {
		code, err := a.readCode()
		if errors.Is(err, io.EOF) {
			return true, nil
		}
		if err != nil {
			return true, err
		}
		switch code {
		case "":
			a.flow.ResetToPhoneStep()
			a.printf("Cancelled.\n")
			return true, nil
		case cmdChange:
			a.flow.ResetToPhoneStep()
			return false, nil
		case cmdResend:
			a.requestCode(ctx)
			continue
		}
		a.flow.SetOTP(code)
		u, err := a.flow.VerifyCode(ctx)
		if err != nil {
			a.printf("%s\n", a.errorText(err))
			continue
		}
		a.printf("Welcome, %s!\n", u.Name)
		return true, nil
	}
}

func (a *App) readCode() (string, error) {
	const prompt = "Code (or 'resend', 'change', empty to cancel): "
	if a.secret != nil {
		return a.secret(a.out, prompt)
	}
	return readLine(a.in, a.out, prompt)
}

// errorText prefers the message the flow recorded for the member.
func (a *App) errorText(err error) string {
	if msg := a.flow.State().Error; msg != "" {
		return msg
	}
	return err.Error()
}
