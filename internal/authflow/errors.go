package authflow

import (
	"errors"
	"fmt"
)

// User-facing messages stored in State.Error.
const (
	MsgPhoneRequired = "phone number is required"
	MsgPhoneInvalid  = "invalid phone number: expected +243 followed by 9 digits"
	MsgOTPRequired   = "verification code is required"
	MsgOTPInvalid    = "verification code must be 4 digits"
	MsgSendFailed    = "could not send the verification code, please try again"
	MsgIncorrectCode = "incorrect verification code"
	MsgGeneric       = "something went wrong, please try again"
)

var (
	// ErrDeliveryFailure is returned when a collaborator reports failure or returns an error.
	ErrDeliveryFailure = errors.New("authflow: collaborator request failed")
	// ErrVerificationFailure is returned when the submitted code is rejected.
	ErrVerificationFailure = errors.New("authflow: incorrect code")
	// ErrRequestInFlight is returned, with no side effect, while another request is loading.
	ErrRequestInFlight = errors.New("authflow: request already in flight")
	// ErrCodeNotRequested is returned by VerifyCode before a code was sent.
	ErrCodeNotRequested = errors.New("authflow: no code has been requested")
	// ErrAlreadyAuthenticated is returned by requests made after sign-in completed.
	ErrAlreadyAuthenticated = errors.New("authflow: already authenticated")
)

// ValidationError is a local, field-level error. It never reaches a collaborator.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("authflow: invalid %s: %s", e.Field, e.Message)
}

// IsValidation reports whether err is a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
