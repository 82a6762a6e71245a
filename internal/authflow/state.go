package authflow

// Step is the position of the flow.
type Step int

const (
	StepPhoneEntry Step = iota
	StepOTPEntry
	StepAuthenticated
)

func (s Step) String() string {
	switch s {
	case StepPhoneEntry:
		return "phone_entry"
	case StepOTPEntry:
		return "otp_entry"
	case StepAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// State is one login attempt. The zero value is the initial state.
type State struct {
	Phone   string
	OTP     string
	Step    Step
	Loading bool
	// Error is the last user-facing message; empty when there is none.
	Error string
	// User is non-nil only when Step is StepAuthenticated.
	User *User
}

// EventType identifies a state transition.
type EventType int

const (
	EventSetPhone EventType = iota + 1
	EventSetOTP
	EventRequestStarted
	EventCodeSent
	EventRequestFailed
	EventValidationFailed
	EventVerified
	EventResetToPhone
	EventLogout
	EventRestored
)

// Event is an input to Transition. Value carries a field value, Message an error
// message, User an identity; which ones are read depends on Type.
type Event struct {
	Type    EventType
	Value   string
	Message string
	User    *User
}

// Transition returns the state that follows s after e. It is pure: s is not modified.
// Events that do not apply to the current step return s unchanged.
func Transition(s State, e Event) State {
	switch e.Type {
	case EventSetPhone:
		if s.Step == StepAuthenticated {
			return s
		}
		if s.Step == StepOTPEntry && e.Value != s.Phone {
			// the code was sent to the old number
			s.Step = StepPhoneEntry
			s.OTP = ""
		}
		s.Phone = e.Value
		s.Error = ""
	case EventSetOTP:
		if s.Step == StepAuthenticated {
			return s
		}
		s.OTP = boundOTP(e.Value)
		s.Error = ""
	case EventRequestStarted:
		s.Loading = true
		s.Error = ""
	case EventCodeSent:
		s.Loading = false
		s.Step = StepOTPEntry
		s.OTP = ""
		s.Error = ""
	case EventRequestFailed:
		s.Loading = false
		s.Error = e.Message
	case EventValidationFailed:
		s.Error = e.Message
	case EventVerified:
		if e.User == nil {
			s.Loading = false
			s.Error = MsgIncorrectCode
			return s
		}
		u := *e.User
		s.Loading = false
		s.Step = StepAuthenticated
		s.User = &u
		s.Error = ""
	case EventResetToPhone:
		if s.Step == StepAuthenticated {
			return s
		}
		s.Step = StepPhoneEntry
		s.OTP = ""
		s.Error = ""
	case EventLogout:
		return State{}
	case EventRestored:
		if e.User == nil {
			return s
		}
		u := *e.User
		return State{Phone: u.Phone, Step: StepAuthenticated, User: &u}
	}
	return s
}
