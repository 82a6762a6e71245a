// Package authflow implements the phone/OTP sign-in flow as a small state machine.
//
// The flow moves PhoneEntry → OTPEntry → Authenticated. State changes go through
// Transition, a pure (State, Event) → State function; Flow wraps it with the
// collaborator calls (code delivery, code verification, session lookup) and the
// single-request guard. Collaborators are injected; the package has no globals.
package authflow
