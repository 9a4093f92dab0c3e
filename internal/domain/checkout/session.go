// Package checkout models the simulated purchase form of a landing view.
//
// The flow is a stub: submitting never contacts a payment provider or sends
// mail. A submitted session only waits for its owner to call Complete after a
// fixed delay.
package checkout

import "errors"

var (
	ErrCheckoutClosed   = errors.New("checkout is not open")
	ErrCheckoutInFlight = errors.New("checkout submission already in progress")
	ErrNothingSubmitted = errors.New("no checkout submission to complete")
)

// Session moves through Closed -> Open -> Submitting -> Closed, with a direct
// Open -> Closed cancel. Not safe for concurrent use.
type Session struct {
	state State
	email Email
}

func NewSession() *Session {
	return &Session{state: StateClosed}
}

// Open shows the form. Opening an already open form is a no-op.
func (s *Session) Open() error {
	switch s.state {
	case StateSubmitting:
		return ErrCheckoutInFlight
	case StateOpen:
		return nil
	}
	s.state = StateOpen
	return nil
}

// Submit accepts the e-mail and enters Submitting. An invalid address leaves
// the form open and unchanged.
func (s *Session) Submit(rawEmail string) error {
	switch s.state {
	case StateClosed:
		return ErrCheckoutClosed
	case StateSubmitting:
		return ErrCheckoutInFlight
	}

	email, err := NewEmail(rawEmail)
	if err != nil {
		return err
	}
	s.email = email
	s.state = StateSubmitting
	return nil
}

// Complete closes a submitted session and resets it for the next purchase.
func (s *Session) Complete() error {
	if s.state != StateSubmitting {
		return ErrNothingSubmitted
	}
	s.reset()
	return nil
}

// Cancel closes an open form without a purchase. A submission waiting for
// completion cannot be cancelled.
func (s *Session) Cancel() error {
	if s.state == StateSubmitting {
		return ErrCheckoutInFlight
	}
	s.reset()
	return nil
}

func (s *Session) reset() {
	s.state = StateClosed
	s.email = Email{}
}

func (s *Session) State() State    { return s.state }
func (s *Session) Email() Email    { return s.email }
func (s *Session) Visible() bool   { return s.state != StateClosed }
func (s *Session) Submitted() bool { return s.state == StateSubmitting }
