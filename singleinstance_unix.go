//go:build unix

package main

import (
	"errors"

	"golang.org/x/sys/unix"
)

// isProcessRunning probes pid with signal 0
func isProcessRunning(pid int) bool {
	if pid <= 0 {
		return false
	}
	err := unix.Kill(pid, 0)
	// EPERM means the process exists but belongs to someone else
	return err == nil || errors.Is(err, unix.EPERM)
}
