package authflow

import (
	"regexp"

	"likelemba/internal/phone"
)

// OTPLength is the number of digits in a one-time code.
const OTPLength = 4

var otpPattern = regexp.MustCompile(`^[0-9]{4}$`)

// ValidatePhone checks a user-entered phone number. It returns a *ValidationError or nil.
func ValidatePhone(p string) error {
	n := phone.Normalize(p)
	if n == "" {
		return &ValidationError{Field: "phone", Message: MsgPhoneRequired}
	}
	if !phone.Valid(n) {
		return &ValidationError{Field: "phone", Message: MsgPhoneInvalid}
	}
	return nil
}

// ValidateOTP checks a user-entered code. It returns a *ValidationError or nil.
func ValidateOTP(code string) error {
	if code == "" {
		return &ValidationError{Field: "otp", Message: MsgOTPRequired}
	}
	if !otpPattern.MatchString(code) {
		return &ValidationError{Field: "otp", Message: MsgOTPInvalid}
	}
	return nil
}

// boundOTP keeps at most OTPLength characters, like the input field's max length.
func boundOTP(v string) string {
	r := []rune(v)
	if len(r) > OTPLength {
		r = r[:OTPLength]
	}
	return string(r)
}
