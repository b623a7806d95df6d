//go:build !linux

package main

import (
	"context"
	"errors"
)

func attachDevice(context.Context, string, *walker) (func(), error) {
	return nil, errors.New("--device is only supported on linux")
}
