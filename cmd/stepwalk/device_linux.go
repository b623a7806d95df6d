//go:build linux

package main

import (
	"context"
	"time"

	"github.com/BrandonKowalski/steps/pkg/steps/input"
)

const tickInterval = 20 * time.Millisecond

type ticker interface {
	Tick() error
}

// attachDevice navigates the walker's steps from an evdev input device.
func attachDevice(parent context.Context, path string, w *walker) (func(), error) {
	ctx, cancel := context.WithCancel(parent)
	driver := input.NewDriver(w.manager)

	go func() {
		if err := input.Listen(ctx, path, driver); err != nil && ctx.Err() == nil {
			w.println(errorMsg("input device: %v", err))
		}
	}()

	go func() {
		t := time.NewTicker(tickInterval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				w.tick(driver)
			}
		}
	}()

	return func() {
		cancel()
		driver.Reset()
	}, nil
}

// tick fires held-button repeats and reports transition errors.
func (w *walker) tick(t ticker) {
	if err := t.Tick(); err != nil {
		w.println(errorMsg("%s", w.describe(err)))
	}
}
