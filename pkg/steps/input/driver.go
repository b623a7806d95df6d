// Package input maps controller and keyboard buttons onto step transitions.
//
// Right, Down and A move to the next step. Left, Up and B move to the
// previous step. Holding a directional button repeats the move after a
// delay, driven by calls to Tick.
package input

import (
	"sync"
	"time"

	"github.com/BrandonKowalski/steps/pkg/steps/constants"
	"github.com/BrandonKowalski/steps/pkg/steps/internal"
)

// Commander receives the transitions produced by a Driver. *steps.Manager
// satisfies it.
type Commander interface {
	TransitionToNext(payload any) error
	TransitionToPrevious(payload any) error
}

// Driver turns button presses into transitions on a Commander.
// It is safe for concurrent use.
type Driver struct {
	mu          sync.Mutex
	cmd         Commander
	directional internal.DirectionalInput
	payload     func() any
}

// NewDriver creates a Driver with default repeat timing.
func NewDriver(cmd Commander) *Driver {
	return &Driver{cmd: cmd, directional: internal.NewDirectionalInput()}
}

// NewDriverWithTiming creates a Driver with custom repeat timing.
func NewDriverWithTiming(cmd Commander, delay, interval time.Duration) *Driver {
	return &Driver{cmd: cmd, directional: internal.NewDirectionalInputWithTiming(delay, interval)}
}

// WithPayload sets a function supplying the payload for each transition,
// such as the values of the form on the current step.
func (d *Driver) WithPayload(fn func() any) *Driver {
	d.payload = fn
	return d
}

// Press handles a button going down.
func (d *Driver) Press(button constants.VirtualButton) error {
	d.mu.Lock()
	d.directional.SetHeld(button, true)
	d.mu.Unlock()

	switch button {
	case constants.VirtualButtonA:
		return d.move(internal.DirectionForward)
	case constants.VirtualButtonB:
		return d.move(internal.DirectionBackward)
	default:
		return d.move(internal.DirectionOf(button))
	}
}

// Release handles a button going up.
func (d *Driver) Release(button constants.VirtualButton) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.directional.SetHeld(button, false)
}

// Tick fires a repeat for a held direction once its timing has elapsed.
// Call it regularly, for example from the host's frame loop.
func (d *Driver) Tick() error {
	d.mu.Lock()
	dir := d.directional.Update()
	d.mu.Unlock()
	return d.move(dir)
}

// Reset releases all held buttons.
func (d *Driver) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.directional.Reset()
}

func (d *Driver) move(dir internal.Direction) error {
	var payload any
	if d.payload != nil && dir != internal.DirectionNone {
		payload = d.payload()
	}

	switch dir {
	case internal.DirectionForward:
		return d.cmd.TransitionToNext(payload)
	case internal.DirectionBackward:
		return d.cmd.TransitionToPrevious(payload)
	default:
		return nil
	}
}
