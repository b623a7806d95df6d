package transition

import (
	"context"
	"sync"
)

// Deferred is the eventual result of a validation hook. It settles exactly
// once, either with a value or with an error; later settle calls are no-ops.
type Deferred struct {
	once  sync.Once
	done  chan struct{}
	value any
	err   error
}

// NewDeferred creates a pending Deferred.
func NewDeferred() *Deferred {
	return &Deferred{done: make(chan struct{})}
}

// Resolved returns a Deferred already settled with v.
func Resolved(v any) *Deferred {
	d := NewDeferred()
	d.Resolve(v)
	return d
}

// Rejected returns a Deferred already settled with err.
func Rejected(err error) *Deferred {
	d := NewDeferred()
	d.Reject(err)
	return d
}

// Go runs fn on a new goroutine and settles the Deferred with its result.
func Go(fn func() (any, error)) *Deferred {
	d := NewDeferred()
	go func() {
		v, err := fn()
		if err != nil {
			d.Reject(err)
			return
		}
		d.Resolve(v)
	}()
	return d
}

// Resolve settles d with v.
func (d *Deferred) Resolve(v any) {
	d.once.Do(func() {
		d.value = v
		close(d.done)
	})
}

// Reject settles d with err.
func (d *Deferred) Reject(err error) {
	d.once.Do(func() {
		d.err = err
		close(d.done)
	})
}

// Done returns a channel closed once d settles.
func (d *Deferred) Done() <-chan struct{} {
	return d.done
}

// Settled reports whether d has settled.
func (d *Deferred) Settled() bool {
	select {
	case <-d.done:
		return true
	default:
		return false
	}
}

// Result returns the settled value and error. It must only be called after
// Done is closed.
func (d *Deferred) Result() (any, error) {
	return d.value, d.err
}

// Await blocks until d settles or ctx is done.
func (d *Deferred) Await(ctx context.Context) (any, error) {
	select {
	case <-d.done:
		return d.value, d.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Approves reports whether a resolved value approves a transition. Only an
// exact false rejects; nil and any other value approve.
func Approves(v any) bool {
	b, ok := v.(bool)
	return !ok || b
}
