package main

import (
	"fmt"
)

// Sequencer turns KeyEvents into device operations. Modifiers are declared
// before the key goes down and cleared only after it is released, so the
// state of one event never leaks into the next.
type Sequencer struct {
	device Device
	now    func() uint32
}

// NewSequencer creates a sequencer stamping operations with the monotonic clock
func NewSequencer(device Device) *Sequencer {
	return &Sequencer{
		device: device,
		now:    monotonicMillis,
	}
}

// Emit sends ev to the device: set modifiers, key down, key up, clear
// modifiers, skipping the modifier steps for an empty mask and the key steps
// for code 0. Every operation gets its own timestamp.
func (s *Sequencer) Emit(ev KeyEvent) error {
	// declare modifiers first so the key press sees them
	if ev.Mods != ModNone {
		if err := s.device.SendModifiers(ev.Mods, s.now()); err != nil {
			return fmt.Errorf("set modifiers %s: %w", ev.Mods, err)
		}
	}

	// code 0 means no key, only the modifiers are pulsed
	if ev.Code != 0 {
		if err := s.device.SendKey(ev.Code, s.now(), true); err != nil {
			return fmt.Errorf("press key %d: %w", ev.Code, err)
		}
		if err := s.device.SendKey(ev.Code, s.now(), false); err != nil {
			return fmt.Errorf("release key %d: %w", ev.Code, err)
		}
	}

	// clear after release so the mask does not leak into the next event
	if ev.Mods != ModNone {
		if err := s.device.SendModifiers(ModNone, s.now()); err != nil {
			return fmt.Errorf("clear modifiers: %w", err)
		}
	}
	return nil
}
