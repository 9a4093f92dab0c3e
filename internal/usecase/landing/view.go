package landing

import (
	"log/slog"
	"sync"
	"time"

	"offer-landing/internal/domain/checkout"
	"offer-landing/internal/domain/countdown"
	"offer-landing/internal/domain/offer"
	"offer-landing/internal/domain/scarcity"
	"offer-landing/internal/pkg/clock"
	"offer-landing/internal/pkg/errs"

	"github.com/google/uuid"
)

// View is one mounted landing page. It owns the scarcity counter, the
// countdown sample and the checkout session, and the two timers that drive
// them. All state changes happen under mu; timer callbacks take the same lock
// and do nothing once the view is closed.
type View struct {
	id       uuid.UUID
	offer    *offer.Offer
	clock    clock.Clock
	settings Settings
	logger   *slog.Logger

	mu       sync.Mutex
	scarcity *scarcity.State
	checkout *checkout.Session
	sampled  time.Time
	lastSeen time.Time
	ticker   clock.Timer
	pending  clock.Timer
	subs     map[int]chan Snapshot
	nextSub  int
	closed   bool
}

// NewView mounts a view: it samples the clock once and starts re-sampling
// every Settings.CountdownTick until Close.
func NewView(id uuid.UUID, o *offer.Offer, clk clock.Clock, settings Settings, logger *slog.Logger) (*View, error) {
	stock := o.Stock()
	state, err := scarcity.NewState(stock.Total(), stock.InitialSold(), settings.CriticalThreshold)
	if err != nil {
		return nil, errs.Wrap(err, "failed to seed scarcity state")
	}

	now := clk.Now()
	v := &View{
		id:       id,
		offer:    o,
		clock:    clk,
		settings: settings,
		logger:   logger.With("view_id", id.String()),
		scarcity: state,
		checkout: checkout.NewSession(),
		sampled:  now,
		lastSeen: now,
		subs:     make(map[int]chan Snapshot),
	}

	v.mu.Lock()
	v.ticker = clock.Repeat(clk, settings.CountdownTick, v.tick)
	v.mu.Unlock()

	return v, nil
}

func (v *View) ID() uuid.UUID { return v.id }

func (v *View) Snapshot() (Snapshot, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return Snapshot{}, errs.ErrViewClosed
	}
	v.touchLocked()
	return v.snapshotLocked(), nil
}

func (v *View) OpenCheckout() (Snapshot, error) {
	return v.mutate(func() error {
		return v.checkout.Open()
	})
}

// SubmitCheckout accepts the e-mail and schedules the simulated completion.
func (v *View) SubmitCheckout(email string) (Snapshot, error) {
	return v.mutate(func() error {
		if err := v.checkout.Submit(email); err != nil {
			return err
		}
		v.pending = v.clock.AfterFunc(v.settings.CheckoutDelay, v.completeCheckout)
		v.logger.Debug("Simulated checkout submitted", "delay", v.settings.CheckoutDelay)
		return nil
	})
}

func (v *View) CancelCheckout() (Snapshot, error) {
	return v.mutate(func() error {
		return v.checkout.Cancel()
	})
}

// Subscribe returns a channel that receives the current snapshot immediately
// and then one per change. The channel holds only the newest snapshot; a slow
// reader skips intermediate ones. It is closed by cancel or by Close.
func (v *View) Subscribe() (<-chan Snapshot, func(), error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return nil, nil, errs.ErrViewClosed
	}

	key := v.nextSub
	v.nextSub++
	ch := make(chan Snapshot, 1)
	ch <- v.snapshotLocked()
	v.subs[key] = ch
	v.touchLocked()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			v.mu.Lock()
			defer v.mu.Unlock()
			if c, ok := v.subs[key]; ok {
				delete(v.subs, key)
				close(c)
			}
		})
	}
	return ch, cancel, nil
}

// Close tears the view down: both timers are stopped and every subscriber
// channel is closed. Safe to call more than once.
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.closed = true

	v.ticker.Stop()
	if v.pending != nil {
		v.pending.Stop()
		v.pending = nil
	}
	for key, ch := range v.subs {
		delete(v.subs, key)
		close(ch)
	}
	v.logger.Debug("Landing view closed", "sold", v.scarcity.Sold())
}

// IdleSince reports the last time a caller read or changed the view. Timer
// callbacks do not count as activity.
func (v *View) IdleSince() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastSeen
}

// Subscribers reports how many streams are attached; a streamed view is not
// idle.
func (v *View) Subscribers() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.subs)
}

func (v *View) mutate(fn func() error) (Snapshot, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return Snapshot{}, errs.ErrViewClosed
	}
	v.touchLocked()

	if err := fn(); err != nil {
		return v.snapshotLocked(), err
	}
	v.publishLocked()
	return v.snapshotLocked(), nil
}

func (v *View) tick() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.sampled = v.clock.Now()
	v.publishLocked()
}

func (v *View) completeCheckout() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.pending = nil

	if err := v.checkout.Complete(); err != nil {
		v.logger.Warn("Checkout completion fired without a submission", "error", err)
		return
	}
	if !v.scarcity.Increment() {
		v.logger.Info("Simulated purchase completed with stock exhausted", "sold", v.scarcity.Sold())
	} else {
		v.logger.Info("Simulated purchase completed", "sold", v.scarcity.Sold(), "remaining", v.scarcity.Remaining())
	}
	v.publishLocked()
}

func (v *View) touchLocked() {
	v.lastSeen = v.clock.Now()
}

func (v *View) snapshotLocked() Snapshot {
	return Snapshot{
		ViewID:      v.id,
		ProductName: v.offer.ProductName(),
		Countdown:   countdown.Compute(v.offer.Stock().EndsAt(), v.sampled),
		Scarcity:    newScarcityView(v.scarcity),
		Checkout:    newCheckoutView(v.checkout),
	}
}

// publishLocked replaces whatever snapshot a subscriber has not read yet.
// Only the view sends on these channels, so drain-then-send cannot block.
func (v *View) publishLocked() {
	if len(v.subs) == 0 {
		return
	}
	snap := v.snapshotLocked()
	for _, ch := range v.subs {
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
}
