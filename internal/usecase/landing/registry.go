package landing

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"offer-landing/internal/domain/offer"
	"offer-landing/internal/pkg/clock"
	"offer-landing/internal/pkg/errs"

	"github.com/google/uuid"
)

// Registry owns every mounted view. It implements UseCase.
type Registry struct {
	offer    *offer.Offer
	clock    clock.Clock
	settings Settings
	logger   *slog.Logger

	mu     sync.RWMutex
	views  map[uuid.UUID]*View
	reaper clock.Timer
	closed bool
}

var _ UseCase = (*Registry)(nil)

func NewRegistry(o *offer.Offer, clk clock.Clock, settings Settings, logger *slog.Logger) *Registry {
	return &Registry{
		offer:    o,
		clock:    clk,
		settings: settings,
		logger:   logger,
		views:    make(map[uuid.UUID]*View),
	}
}

// Start begins reaping idle views every Settings.ReapInterval.
func (r *Registry) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.reaper != nil || r.closed {
		return
	}
	r.reaper = clock.Repeat(r.clock, r.settings.ReapInterval, func() { r.Reap() })
	r.logger.Info("Landing view reaper started",
		"interval", r.settings.ReapInterval,
		"idle_ttl", r.settings.IdleTTL)
}

// Close stops the reaper and tears down every view.
func (r *Registry) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	if r.reaper != nil {
		r.reaper.Stop()
	}
	views := r.views
	r.views = make(map[uuid.UUID]*View)
	r.mu.Unlock()

	for _, v := range views {
		v.Close()
	}
	r.logger.Info("Landing views unmounted", "count", len(views))
}

func (r *Registry) Offer() *offer.Offer {
	return r.offer
}

func (r *Registry) Mount(ctx context.Context) (Snapshot, error) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return Snapshot{}, errs.ErrViewClosed
	}
	if len(r.views) >= r.settings.MaxViews {
		r.mu.Unlock()
		r.logger.WarnContext(ctx, "Landing view limit reached", "max_views", r.settings.MaxViews)
		return Snapshot{}, errs.ErrTooManyViews
	}

	v, err := NewView(uuid.New(), r.offer, r.clock, r.settings, r.logger)
	if err != nil {
		r.mu.Unlock()
		return Snapshot{}, err
	}
	r.views[v.ID()] = v
	r.mu.Unlock()

	r.logger.DebugContext(ctx, "Landing view mounted", "view_id", v.ID().String())
	return v.Snapshot()
}

func (r *Registry) Snapshot(_ context.Context, id uuid.UUID) (Snapshot, error) {
	v, err := r.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	return translate(v.Snapshot())
}

func (r *Registry) Unmount(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	v, ok := r.views[id]
	delete(r.views, id)
	r.mu.Unlock()
	if !ok {
		return errs.ErrViewNotFound
	}

	v.Close()
	r.logger.DebugContext(ctx, "Landing view unmounted", "view_id", id.String())
	return nil
}

func (r *Registry) OpenCheckout(_ context.Context, id uuid.UUID) (Snapshot, error) {
	v, err := r.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	return translate(v.OpenCheckout())
}

func (r *Registry) SubmitCheckout(_ context.Context, id uuid.UUID, email string) (Snapshot, error) {
	v, err := r.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	return translate(v.SubmitCheckout(email))
}

func (r *Registry) CancelCheckout(_ context.Context, id uuid.UUID) (Snapshot, error) {
	v, err := r.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	return translate(v.CancelCheckout())
}

func (r *Registry) Subscribe(_ context.Context, id uuid.UUID) (<-chan Snapshot, func(), error) {
	v, err := r.lookup(id)
	if err != nil {
		return nil, nil, err
	}
	ch, cancel, err := v.Subscribe()
	if errors.Is(err, errs.ErrViewClosed) {
		return nil, nil, errs.ErrViewNotFound
	}
	return ch, cancel, err
}

// Reap unmounts views idle longer than Settings.IdleTTL that have no
// subscribers, and returns how many were removed.
func (r *Registry) Reap() int {
	cutoff := r.clock.Now().Add(-r.settings.IdleTTL)

	r.mu.Lock()
	var stale []*View
	for id, v := range r.views {
		if v.Subscribers() == 0 && v.IdleSince().Before(cutoff) {
			stale = append(stale, v)
			delete(r.views, id)
		}
	}
	r.mu.Unlock()

	for _, v := range stale {
		v.Close()
	}
	if len(stale) > 0 {
		r.logger.Info("Reaped idle landing views", "count", len(stale))
	}
	return len(stale)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.views)
}

func (r *Registry) lookup(id uuid.UUID) (*View, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.views[id]
	if !ok {
		return nil, errs.ErrViewNotFound
	}
	return v, nil
}

// translate maps a view closed between lookup and use to not-found, which is
// what callers outside the registry observe.
func translate(snap Snapshot, err error) (Snapshot, error) {
	if errors.Is(err, errs.ErrViewClosed) {
		return Snapshot{}, errs.ErrViewNotFound
	}
	return snap, err
}
