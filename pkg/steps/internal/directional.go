package internal

import (
	"time"

	"github.com/BrandonKowalski/steps/pkg/steps/constants"
)

// Direction is the way a held button moves through the steps.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionBackward
	DirectionForward
)

// DirectionalInput tracks held directional buttons and handles repeat timing.
// Up and Left move backward; Down and Right move forward.
type DirectionalInput struct {
	held struct {
		up, down, left, right bool
	}
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
	now            func() time.Time
}

// NewDirectionalInput creates a DirectionalInput with default timing.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(constants.DefaultRepeatDelay, constants.DefaultRepeatInterval)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing.
func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: time.Now(),
		now:            time.Now,
	}
}

// SetClock replaces the time source. Intended for tests.
func (d *DirectionalInput) SetClock(now func() time.Time) {
	d.now = now
	d.lastRepeatTime = now()
}

// SetHeld updates the held state for a direction based on a virtual button.
// Pressing a direction restarts the repeat delay.
// Returns true if the button was a directional button.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) bool {
	switch button {
	case constants.VirtualButtonUp:
		d.held.up = held
	case constants.VirtualButtonDown:
		d.held.down = held
	case constants.VirtualButtonLeft:
		d.held.left = held
	case constants.VirtualButtonRight:
		d.held.right = held
	default:
		return false
	}
	d.hasRepeated = false
	d.lastRepeatTime = d.now()
	return true
}

// IsHeld returns true if any direction is currently held.
func (d *DirectionalInput) IsHeld() bool {
	return d.held.up || d.held.down || d.held.left || d.held.right
}

// HeldDirection returns the currently held direction.
// If multiple directions are held, priority is: up, down, left, right.
func (d *DirectionalInput) HeldDirection() Direction {
	switch {
	case d.held.up:
		return DirectionBackward
	case d.held.down:
		return DirectionForward
	case d.held.left:
		return DirectionBackward
	case d.held.right:
		return DirectionForward
	}
	return DirectionNone
}

// Update checks if a repeat event should fire based on timing.
// Call this on every tick. It returns the direction that should be
// processed, or DirectionNone if no repeat should occur.
//
// The first repeat occurs after repeatDelay, subsequent repeats after repeatInterval.
func (d *DirectionalInput) Update() Direction {
	now := d.now()
	if !d.IsHeld() {
		d.lastRepeatTime = now
		d.hasRepeated = false
		return DirectionNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if now.Sub(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = now
		d.hasRepeated = true
		return d.HeldDirection()
	}

	return DirectionNone
}

// Reset clears all held directions and timing state.
func (d *DirectionalInput) Reset() {
	d.held.up = false
	d.held.down = false
	d.held.left = false
	d.held.right = false
	d.hasRepeated = false
	d.lastRepeatTime = d.now()
}

// DirectionOf returns the direction a single button press moves, or
// DirectionNone for non-directional buttons.
func DirectionOf(button constants.VirtualButton) Direction {
	switch button {
	case constants.VirtualButtonUp, constants.VirtualButtonLeft:
		return DirectionBackward
	case constants.VirtualButtonDown, constants.VirtualButtonRight:
		return DirectionForward
	default:
		return DirectionNone
	}
}

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionBackward:
		return "backward"
	case DirectionForward:
		return "forward"
	default:
		return ""
	}
}
