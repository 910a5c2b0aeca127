package main

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Backend names accepted in the config and on the command line
const (
	BackendWayland = "wayland"
	BackendUinput  = "uinput"
	BackendPrint   = "print"
)

// Device is a virtual keyboard that accepts modifier and key operations.
// Timestamps are milliseconds of a monotonic clock.
type Device interface {
	SendModifiers(mask Modifier, timestampMs uint32) error
	SendKey(code uint32, timestampMs uint32, pressed bool) error
	Close() error
}

// OpenDevice creates the virtual keyboard for the configured backend with its
// keymap in place. The print backend writes operations to out.
func OpenDevice(ctx context.Context, config *Config, out io.Writer) (Device, error) {
	switch config.Device.Backend {
	case BackendWayland:
		return openWaylandDevice(ctx)
	case BackendUinput:
		return openUinputDevice(time.Duration(config.Device.UinputSettleMs) * time.Millisecond)
	case BackendPrint:
		return &printDevice{out: out}, nil
	default:
		return nil, fmt.Errorf("unknown backend: %s", config.Device.Backend)
	}
}

// printDevice writes each operation as a line of text instead of injecting it
type printDevice struct {
	out io.Writer
}

func (d *printDevice) SendModifiers(mask Modifier, timestampMs uint32) error {
	_, err := fmt.Fprintf(d.out, "mods 0x%02x @%d\n", uint32(mask), timestampMs)
	return err
}

func (d *printDevice) SendKey(code uint32, timestampMs uint32, pressed bool) error {
	state := "up"
	if pressed {
		state = "down"
	}
	_, err := fmt.Fprintf(d.out, "key %d %s @%d\n", code, state, timestampMs)
	return err
}

func (d *printDevice) Close() error {
	return nil
}
