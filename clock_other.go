//go:build !linux

package main

func monotonicMillis() uint32 {
	return fallbackMillis()
}
