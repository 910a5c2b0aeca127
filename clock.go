package main

import "time"

var processStart = time.Now()

// fallbackMillis uses the monotonic reading carried by time.Time
func fallbackMillis() uint32 {
	return uint32(time.Since(processStart).Milliseconds())
}
