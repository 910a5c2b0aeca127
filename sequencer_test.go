package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// countingClock returns 1, 2, 3, ... so every sampled stamp is distinct
func countingClock() func() uint32 {
	var n uint32
	return func() uint32 {
		n++
		return n
	}
}

func newTestSequencer(device Device) *Sequencer {
	seq := NewSequencer(device)
	seq.now = countingClock()
	return seq
}

func TestEmitFullChordOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := NewMockDevice(ctrl)

	gomock.InOrder(
		device.EXPECT().SendModifiers(ModControl|ModAlt, uint32(1)).Return(nil),
		device.EXPECT().SendKey(uint32(31), uint32(2), true).Return(nil),
		device.EXPECT().SendKey(uint32(31), uint32(3), false).Return(nil),
		device.EXPECT().SendModifiers(ModNone, uint32(4)).Return(nil),
	)

	err := newTestSequencer(device).Emit(KeyEvent{Code: 31, Mods: ModControl | ModAlt})
	require.NoError(t, err)
}

func TestEmitNoopSendsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := NewMockDevice(ctrl)

	// no expectations: any call fails the test
	err := newTestSequencer(device).Emit(KeyEvent{})
	require.NoError(t, err)
}

func TestEmitKeyWithoutModifiers(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := NewMockDevice(ctrl)

	gomock.InOrder(
		device.EXPECT().SendKey(uint32(48), gomock.Any(), true).Return(nil),
		device.EXPECT().SendKey(uint32(48), gomock.Any(), false).Return(nil),
	)

	require.NoError(t, newTestSequencer(device).Emit(KeyEvent{Code: 48}))
}

func TestEmitModifiersWithoutKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := NewMockDevice(ctrl)

	gomock.InOrder(
		device.EXPECT().SendModifiers(ModSuper, gomock.Any()).Return(nil),
		device.EXPECT().SendModifiers(ModNone, gomock.Any()).Return(nil),
	)

	require.NoError(t, newTestSequencer(device).Emit(KeyEvent{Mods: ModSuper}))
}

func TestEmitStopsAtFirstDeviceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := NewMockDevice(ctrl)
	broken := errors.New("connection reset")

	gomock.InOrder(
		device.EXPECT().SendModifiers(ModShift, gomock.Any()).Return(nil),
		device.EXPECT().SendKey(uint32(30), gomock.Any(), true).Return(broken),
	)

	err := newTestSequencer(device).Emit(KeyEvent{Code: 30, Mods: ModShift})
	require.Error(t, err)
	assert.ErrorIs(t, err, broken)
	assert.Contains(t, err.Error(), "press key 30")
}

func TestEmitSamplesClockPerOperation(t *testing.T) {
	device := &recordingDevice{}
	seq := newTestSequencer(device)

	require.NoError(t, seq.Emit(KeyEvent{Code: 16, Mods: ModShift}))
	require.NoError(t, seq.Emit(KeyEvent{Code: 17}))

	var stamps []uint32
	for _, op := range device.ops {
		stamps = append(stamps, op.ts)
	}
	assert.Equal(t, []uint32{1, 2, 3, 4, 5, 6}, stamps)
}
