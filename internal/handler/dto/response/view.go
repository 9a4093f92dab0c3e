package response

import (
	"offer-landing/internal/usecase/landing"

	"github.com/google/uuid"
)

type CountdownResponse struct {
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
	Expired bool  `json:"expired"`
}

type ScarcityResponse struct {
	Total      int     `json:"total"`
	Sold       int     `json:"sold"`
	Remaining  int     `json:"remaining"`
	Percentage float64 `json:"percentage"`
	Badge      string  `json:"badge"`
	BadgeLabel string  `json:"badge_label"`
}

type CheckoutResponse struct {
	State     string `json:"state"`
	Visible   bool   `json:"visible"`
	Submitted bool   `json:"submitted"`
	Email     string `json:"email,omitempty"`
	Simulated bool   `json:"simulated"`
}

type SnapshotResponse struct {
	ProductName string            `json:"product_name"`
	Countdown   CountdownResponse `json:"countdown"`
	Scarcity    ScarcityResponse  `json:"scarcity"`
	Checkout    CheckoutResponse  `json:"checkout"`
}

type ViewResponse struct {
	ID       uuid.UUID        `json:"id"`
	Snapshot SnapshotResponse `json:"snapshot"`
}

func FromSnapshot(s landing.Snapshot) SnapshotResponse {
	return SnapshotResponse{
		ProductName: s.ProductName,
		Countdown: CountdownResponse{
			Days:    s.Countdown.Days,
			Hours:   s.Countdown.Hours,
			Minutes: s.Countdown.Minutes,
			Seconds: s.Countdown.Seconds,
			Expired: s.Countdown.Expired(),
		},
		Scarcity: ScarcityResponse{
			Total:      s.Scarcity.Total,
			Sold:       s.Scarcity.Sold,
			Remaining:  s.Scarcity.Remaining,
			Percentage: s.Scarcity.Percentage,
			Badge:      s.Scarcity.Badge.String(),
			BadgeLabel: s.Scarcity.BadgeLabel,
		},
		Checkout: CheckoutResponse{
			State:     s.Checkout.State.String(),
			Visible:   s.Checkout.Visible,
			Submitted: s.Checkout.Submitted,
			Email:     s.Checkout.Email,
			Simulated: s.Checkout.Simulated,
		},
	}
}

func FromView(s landing.Snapshot) *ViewResponse {
	return &ViewResponse{
		ID:       s.ViewID,
		Snapshot: FromSnapshot(s),
	}
}
