//go:build !linux

package main

import (
	"context"
	"fmt"
	"runtime"
	"time"
)

func openWaylandDevice(ctx context.Context) (Device, error) {
	return nil, fmt.Errorf("%w: wayland backend is not supported on %s", ErrCapability, runtime.GOOS)
}

func openUinputDevice(settle time.Duration) (Device, error) {
	return nil, fmt.Errorf("%w: uinput backend is not supported on %s", ErrCapability, runtime.GOOS)
}
