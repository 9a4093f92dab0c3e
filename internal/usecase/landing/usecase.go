package landing

import (
	"context"
	"time"

	"offer-landing/internal/domain/offer"
	"offer-landing/internal/domain/scarcity"

	"github.com/google/uuid"
)

// UseCase is what the transport layer needs from mounted landing views. Every
// method except Offer and Mount addresses an existing view by id and fails with
// errs.ErrViewNotFound once it has been torn down or reaped.
type UseCase interface {
	Offer() *offer.Offer
	Mount(ctx context.Context) (Snapshot, error)
	Snapshot(ctx context.Context, id uuid.UUID) (Snapshot, error)
	Unmount(ctx context.Context, id uuid.UUID) error
	OpenCheckout(ctx context.Context, id uuid.UUID) (Snapshot, error)
	// SubmitCheckout starts the simulated purchase. No payment or e-mail
	// happens; the sold counter moves after Settings.CheckoutDelay.
	SubmitCheckout(ctx context.Context, id uuid.UUID, email string) (Snapshot, error)
	CancelCheckout(ctx context.Context, id uuid.UUID) (Snapshot, error)
	// Subscribe streams snapshots of a view until the returned cancel func is
	// called or the view is torn down, which closes the channel.
	Subscribe(ctx context.Context, id uuid.UUID) (<-chan Snapshot, func(), error)
}

type Settings struct {
	CountdownTick     time.Duration
	CheckoutDelay     time.Duration
	CriticalThreshold int
	IdleTTL           time.Duration
	ReapInterval      time.Duration
	MaxViews          int
}

func DefaultSettings() Settings {
	return Settings{
		CountdownTick:     time.Second,
		CheckoutDelay:     900 * time.Millisecond,
		CriticalThreshold: scarcity.DefaultCriticalThreshold,
		IdleTTL:           30 * time.Minute,
		ReapInterval:      time.Minute,
		MaxViews:          10000,
	}
}
