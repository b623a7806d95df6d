//go:build linux

package input

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/steps/pkg/steps/constants"
	"github.com/BrandonKowalski/steps/pkg/steps/internal"
)

// Key event values reported by the kernel.
const (
	keyReleased = 0
	keyPressed  = 1
	keyRepeated = 2
)

// keyMap maps keyboard and gamepad codes to virtual buttons.
var keyMap = map[evdev.EvCode]constants.VirtualButton{
	evdev.KEY_UP:         constants.VirtualButtonUp,
	evdev.KEY_DOWN:       constants.VirtualButtonDown,
	evdev.KEY_LEFT:       constants.VirtualButtonLeft,
	evdev.KEY_RIGHT:      constants.VirtualButtonRight,
	evdev.KEY_ENTER:      constants.VirtualButtonA,
	evdev.KEY_BACKSPACE:  constants.VirtualButtonB,
	evdev.KEY_ESC:        constants.VirtualButtonB,
	evdev.BTN_SOUTH:      constants.VirtualButtonA,
	evdev.BTN_EAST:       constants.VirtualButtonB,
	evdev.BTN_DPAD_UP:    constants.VirtualButtonUp,
	evdev.BTN_DPAD_DOWN:  constants.VirtualButtonDown,
	evdev.BTN_DPAD_LEFT:  constants.VirtualButtonLeft,
	evdev.BTN_DPAD_RIGHT: constants.VirtualButtonRight,
	evdev.BTN_TL:         constants.VirtualButtonL1,
	evdev.BTN_TR:         constants.VirtualButtonR1,
	evdev.BTN_START:      constants.VirtualButtonStart,
	evdev.BTN_SELECT:     constants.VirtualButtonSelect,
}

// ButtonFor returns the virtual button for an input event code.
func ButtonFor(code evdev.EvCode) (constants.VirtualButton, bool) {
	b, ok := keyMap[code]
	return b, ok
}

// Listen reads key events from the evdev device at path and feeds them to
// the driver until ctx is cancelled or the device fails. Transition errors
// are logged and do not stop the listener.
func Listen(ctx context.Context, path string, d *Driver) error {
	dev, err := evdev.Open(path)
	if err != nil {
		return fmt.Errorf("open input device %s: %w", path, err)
	}

	logger := internal.GetLogger()
	if name, err := dev.Name(); err == nil {
		logger.Debug("listening for step input", "device", name, "path", path)
	}

	// Closing the device unblocks ReadOne.
	stop := context.AfterFunc(ctx, func() { _ = dev.Close() })
	defer func() {
		if stop() {
			_ = dev.Close()
		}
	}()

	for {
		ev, err := dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("read input device %s: %w", path, err)
		}
		if err := handleEvent(d, ev); err != nil {
			logger.Warn("step input transition failed", slog.String("path", path), slog.Any("error", err))
		}
	}
}

func handleEvent(d *Driver, ev *evdev.InputEvent) error {
	if ev == nil || ev.Type != evdev.EV_KEY {
		return nil
	}
	button, ok := ButtonFor(ev.Code)
	if !ok {
		return nil
	}

	switch ev.Value {
	case keyPressed:
		return d.Press(button)
	case keyReleased:
		d.Release(button)
	case keyRepeated:
		// Repeats come from Tick so timing matches the host.
	}
	return nil
}

var errNoDevice = errors.New("no input device path configured")

// ListenAll starts a listener for each path and returns when all of them
// have stopped. The first error is returned.
func ListenAll(ctx context.Context, paths []string, d *Driver) error {
	if len(paths) == 0 {
		return errNoDevice
	}
	errs := make(chan error, len(paths))
	for _, p := range paths {
		go func(path string) { errs <- Listen(ctx, path, d) }(p)
	}
	var first error
	for range paths {
		if err := <-errs; err != nil && first == nil {
			first = err
		}
	}
	return first
}
