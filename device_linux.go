package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/libwldevices-go/virtual_keyboard"
	"github.com/micmonay/keybd_event"
)

// waylandDevice drives zwp_virtual_keyboard_v1 on the compositor's default seat
type waylandDevice struct {
	manager  *virtual_keyboard.VirtualKeyboardManager
	keyboard *virtual_keyboard.VirtualKeyboard
}

func openWaylandDevice(ctx context.Context) (Device, error) {
	manager, err := virtual_keyboard.NewVirtualKeyboardManager(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCapability, err)
	}

	// CreateKeyboard uploads the default xkb keymap before returning
	keyboard, err := manager.CreateKeyboard()
	if err != nil {
		_ = manager.Close()
		return nil, fmt.Errorf("%w: %v", ErrCapability, err)
	}

	return &waylandDevice{
		manager:  manager,
		keyboard: keyboard,
	}, nil
}

func (d *waylandDevice) SendModifiers(mask Modifier, timestampMs uint32) error {
	return d.keyboard.Modifiers(uint32(mask), 0, 0, 0)
}

func (d *waylandDevice) SendKey(code uint32, timestampMs uint32, pressed bool) error {
	state := virtual_keyboard.KeyStateReleased
	if pressed {
		state = virtual_keyboard.KeyStatePressed
	}
	// the keyboard converts back to milliseconds, so the stamp survives intact
	return d.keyboard.Key(time.UnixMilli(int64(timestampMs)), code, state)
}

// Close destroys the keyboard, then the connection. The library exposes no
// display round trip, so requests still unread by the compositor when the
// socket hangs up are dropped with the client.
func (d *waylandDevice) Close() error {
	return errors.Join(d.keyboard.Close(), d.manager.Close())
}

// keyBonder is the part of keybd_event.KeyBonding the uinput backend drives
type keyBonder interface {
	SetKeys(keys ...int)
	HasSHIFT(bool)
	HasCTRL(bool)
	HasALT(bool)
	HasSuper(bool)
	Press() error
	Release() error
	Clear()
}

// uinputDevice drives a kernel uinput keyboard. uinput has no separate
// modifier state, so the declared mask is held as modifier keys around the
// key press.
type uinputDevice struct {
	kb   keyBonder
	mods Modifier
	// pressed is set once a key went down under the current mask
	pressed bool
}

func openUinputDevice(settle time.Duration) (Device, error) {
	kb, err := keybd_event.NewKeyBonding()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCapability, err)
	}

	// Linux needs a moment before a fresh uinput device receives events
	time.Sleep(settle)

	return newUinputDevice(&kb), nil
}

func newUinputDevice(kb keyBonder) *uinputDevice {
	return &uinputDevice{kb: kb}
}

// applyModifiers mirrors the current mask onto the bonding's modifier flags
func (d *uinputDevice) applyModifiers() {
	d.kb.HasSHIFT(d.mods.Has(ModShift))
	d.kb.HasCTRL(d.mods.Has(ModControl))
	d.kb.HasALT(d.mods.Has(ModAlt))
	d.kb.HasSuper(d.mods.Has(ModSuper))
}

func (d *uinputDevice) SendModifiers(mask Modifier, timestampMs uint32) error {
	if mask == ModNone && d.mods != ModNone && !d.pressed {
		// modifiers declared without a key: tap them on their own
		d.kb.Clear()
		// Clear drops the modifier flags along with the keys
		d.applyModifiers()
		if err := d.kb.Press(); err != nil {
			return err
		}
		if err := d.kb.Release(); err != nil {
			return err
		}
	}

	// the new mask applies to the next key press
	d.mods = mask
	d.pressed = false
	d.applyModifiers()
	return nil
}

func (d *uinputDevice) SendKey(code uint32, timestampMs uint32, pressed bool) error {
	// modifier flags stay as set, only the key list is replaced
	d.kb.SetKeys(int(code))
	if pressed {
		d.pressed = true
		return d.kb.Press()
	}
	return d.kb.Release()
}

func (d *uinputDevice) Close() error {
	d.mods = ModNone
	d.kb.Clear()
	d.applyModifiers()
	return nil
}
