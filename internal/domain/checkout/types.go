package checkout

type State string

const (
	StateClosed     State = "closed"
	StateOpen       State = "open"
	StateSubmitting State = "submitting"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	switch s {
	case StateClosed, StateOpen, StateSubmitting:
		return true
	default:
		return false
	}
}
