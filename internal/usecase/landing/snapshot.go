package landing

import (
	"offer-landing/internal/domain/checkout"
	"offer-landing/internal/domain/countdown"
	"offer-landing/internal/domain/scarcity"

	"github.com/google/uuid"
)

// Snapshot is everything a page needs to render one view. It is a pure
// function of the view's state and the offer, so equal state yields equal
// snapshots.
type Snapshot struct {
	ViewID      uuid.UUID
	ProductName string
	Countdown   countdown.Breakdown
	Scarcity    ScarcityView
	Checkout    CheckoutView
}

type ScarcityView struct {
	Total      int
	Sold       int
	Remaining  int
	Percentage float64
	Badge      scarcity.Badge
	BadgeLabel string
}

type CheckoutView struct {
	State     checkout.State
	Visible   bool
	Submitted bool
	Email     string
	// Simulated is always true: the checkout is a non-functional stub.
	Simulated bool
}

func newScarcityView(s *scarcity.State) ScarcityView {
	badge := s.Badge()
	return ScarcityView{
		Total:      s.Total(),
		Sold:       s.Sold(),
		Remaining:  s.Remaining(),
		Percentage: s.Percentage(),
		Badge:      badge,
		BadgeLabel: badge.Label(s.Remaining()),
	}
}

func newCheckoutView(s *checkout.Session) CheckoutView {
	return CheckoutView{
		State:     s.State(),
		Visible:   s.Visible(),
		Submitted: s.Submitted(),
		Email:     s.Email().Value(),
		Simulated: true,
	}
}
