package main

import (
	"time"

	"golang.org/x/sys/unix"
)

// monotonicMillis reads CLOCK_MONOTONIC in milliseconds, truncated to the
// 32 bits the keyboard protocol carries
func monotonicMillis() uint32 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return fallbackMillis()
	}
	return uint32(ts.Nano() / int64(time.Millisecond))
}
