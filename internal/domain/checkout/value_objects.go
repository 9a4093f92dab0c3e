package checkout

import (
	"errors"
	"strings"
)

var ErrInvalidEmail = errors.New("invalid email format")

// Email is checked only for presence and an "@" with text on both sides. The
// checkout is a demo gate, so no deliverability check is attempted.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" || domain == "" {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

func (e Email) IsZero() bool {
	return e.value == ""
}
