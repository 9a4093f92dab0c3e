package scarcity

import (
	"errors"
	"math"
)

// DefaultCriticalThreshold is the remaining count at or below which the badge
// turns critical.
const DefaultCriticalThreshold = 25

var (
	ErrNegativeTotal    = errors.New("total stock cannot be negative")
	ErrSoldOutOfRange   = errors.New("sold count must be between 0 and total")
	ErrNegativeCritical = errors.New("critical threshold cannot be negative")
)

// State is the sold counter of one landing view. It is not safe for
// concurrent use; the owning view serialises access.
type State struct {
	total             int
	sold              int
	criticalThreshold int
}

func NewState(total, sold, criticalThreshold int) (*State, error) {
	if total < 0 {
		return nil, ErrNegativeTotal
	}
	if sold < 0 || sold > total {
		return nil, ErrSoldOutOfRange
	}
	if criticalThreshold < 0 {
		return nil, ErrNegativeCritical
	}
	return &State{total: total, sold: sold, criticalThreshold: criticalThreshold}, nil
}

func (s *State) Total() int { return s.total }
func (s *State) Sold() int  { return s.sold }

func (s *State) Remaining() int {
	return max(s.total-s.sold, 0)
}

// Percentage is the share of stock sold, within [0, 100]. Zero stock reads 0.
func (s *State) Percentage() float64 {
	if s.total == 0 {
		return 0
	}
	return math.Min(float64(s.sold)*100/float64(s.total), 100)
}

func (s *State) Badge() Badge {
	if s.Remaining() <= s.criticalThreshold {
		return BadgeCritical
	}
	return BadgeNormal
}

func (s *State) SoldOut() bool {
	return s.Remaining() == 0
}

// Increment records one purchase. It reports false when the stock is
// exhausted and the counter did not move.
func (s *State) Increment() bool {
	if s.sold >= s.total {
		return false
	}
	s.sold++
	return true
}
