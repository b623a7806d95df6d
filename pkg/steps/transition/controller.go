package transition

import (
	"context"
	"log/slog"
	"sync"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/steps/pkg/steps/internal"
)

// Navigator is the navigation state a Controller drives.
type Navigator interface {
	Current() string
	PickNext() string
	PickPrevious() string
	Activate(name string) error
}

// Validator is called before a transition is committed. The transition is
// prevented if the result resolves to exactly false or is rejected. A nil
// result approves the transition.
type Validator func(ctx context.Context, req Request) *Deferred

// Notifier is called after a transition has been committed.
type Notifier func(req Request)

// Sync adapts a synchronous boolean hook into a Validator.
func Sync(fn func(req Request) bool) Validator {
	return func(_ context.Context, req Request) *Deferred {
		return Resolved(fn(req))
	}
}

// Controller serializes transition requests against a Navigator.
//
// At most one validation is in flight at a time. Requests made while a
// validation is pending are dropped, not queued. Once disposed, pending
// validations settle without touching navigation state.
type Controller struct {
	nav       Navigator
	validator Validator
	notifiers []Notifier
	logger    *slog.Logger

	loading  *atomic.Bool
	disposed *atomic.Bool

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	idle    *sync.Cond
	pending int
}

// New creates a new Controller for nav.
func New(nav Navigator) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		nav:      nav,
		logger:   internal.GetLogger(),
		loading:  atomic.NewBool(false),
		disposed: atomic.NewBool(false),
		ctx:      ctx,
		cancel:   cancel,
	}
	c.idle = sync.NewCond(&c.mu)
	return c
}

// OnValidate sets the validation hook. Hooks must be configured before the
// first transition.
func (c *Controller) OnValidate(fn Validator) *Controller {
	c.validator = fn
	return c
}

// OnTransition adds a notifier called after each committed transition.
// Notifiers run in the order they were added.
func (c *Controller) OnTransition(fn Notifier) *Controller {
	if fn != nil {
		c.notifiers = append(c.notifiers, fn)
	}
	return c
}

// WithLogger replaces the controller's logger.
func (c *Controller) WithLogger(logger *slog.Logger) *Controller {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// TransitionTo requests a transition to the named step.
//
// Without a validator the step is activated immediately. With one, the
// controller enters the loading state until the validator's result settles.
// If that result is already settled the transition completes before
// TransitionTo returns; otherwise it completes on another goroutine.
//
// The returned error is an activation error from a transition completed
// before returning. Dropped, rejected and failed validations return nil.
func (c *Controller) TransitionTo(to string, payload any, dir Direction) error {
	if c.disposed.Load() {
		return nil
	}
	if c.loading.Load() {
		c.logger.Debug("transition dropped while validating", "to", to, "direction", dir.String())
		return nil
	}

	req := Request{
		From:      c.nav.Current(),
		To:        to,
		Payload:   payload,
		Direction: dir,
	}

	if c.validator == nil {
		return c.commit(req)
	}

	if !c.loading.CompareAndSwap(false, true) {
		c.logger.Debug("transition dropped while validating", "to", to, "direction", dir.String())
		return nil
	}

	result := c.validator(c.ctx, req)
	if result == nil {
		result = Resolved(nil)
	}

	if result.Settled() {
		return c.settle(req, result)
	}

	c.track(1)
	go c.await(req, result)
	return nil
}

// TransitionToNext requests a transition to the step after the current one.
func (c *Controller) TransitionToNext(payload any) error {
	return c.TransitionTo(c.nav.PickNext(), payload, DirectionNext)
}

// TransitionToPrevious requests a transition to the step before the
// current one.
func (c *Controller) TransitionToPrevious(payload any) error {
	return c.TransitionTo(c.nav.PickPrevious(), payload, DirectionPrevious)
}

// Activate sets the current step directly, bypassing validation and
// notifiers. It is intended for mirroring an externally owned value.
func (c *Controller) Activate(name string) error {
	if c.disposed.Load() {
		return nil
	}
	return c.nav.Activate(name)
}

// Loading reports whether a validation result is pending.
func (c *Controller) Loading() bool {
	return c.loading.Load()
}

// Wait blocks until every pending validation has settled or the controller
// has been disposed. It is safe to call while other goroutines are making
// requests.
func (c *Controller) Wait() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.pending > 0 {
		c.idle.Wait()
	}
}

// Dispose marks the controller as torn down. Pending validations will not
// commit or clear the loading state, and further requests are ignored.
func (c *Controller) Dispose() {
	if c.disposed.CompareAndSwap(false, true) {
		c.cancel()
	}
}

// Disposed reports whether Dispose has been called.
func (c *Controller) Disposed() bool {
	return c.disposed.Load()
}

func (c *Controller) await(req Request, result *Deferred) {
	defer c.track(-1)

	select {
	case <-result.Done():
		if err := c.settle(req, result); err != nil {
			c.logger.Error("transition failed after validation",
				"from", req.From, "to", req.To, "error", err)
		}
	case <-c.ctx.Done():
	}
}

func (c *Controller) track(delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending += delta
	if c.pending == 0 {
		c.idle.Broadcast()
	}
}

func (c *Controller) settle(req Request, result *Deferred) error {
	defer func() {
		if !c.disposed.Load() {
			c.loading.Store(false)
		}
	}()

	v, err := result.Result()
	if err != nil {
		c.logger.Warn("transition validation failed",
			"from", req.From, "to", req.To, "direction", req.Direction.String(), "error", err)
		return nil
	}
	if !Approves(v) {
		c.logger.Debug("transition rejected", "from", req.From, "to", req.To)
		return nil
	}
	if c.disposed.Load() {
		return nil
	}
	return c.commit(req)
}

func (c *Controller) commit(req Request) error {
	if err := c.nav.Activate(req.To); err != nil {
		return err
	}
	for _, notify := range c.notifiers {
		notify(req)
	}
	return nil
}
