package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrAlreadyRunning is returned when another instance holds the lock
var ErrAlreadyRunning = errors.New("another instance is already running")

// SingleInstance keeps two processes from interleaving modifier state on
// the same seat
type SingleInstance struct {
	lockFile *os.File
	lockPath string
}

// NewSingleInstance creates a lock named after appName in dir, or in the
// runtime dir (temp dir as fallback) when dir is empty
func NewSingleInstance(appName string, dir string) *SingleInstance {
	if dir == "" {
		dir = os.Getenv("XDG_RUNTIME_DIR")
	}
	if dir == "" {
		dir = os.TempDir()
	}

	return &SingleInstance{
		lockPath: filepath.Join(dir, fmt.Sprintf("%s.lock", appName)),
	}
}

// TryLock acquires the lock. It returns ErrAlreadyRunning when a live
// process holds it; a stale lock is replaced.
func (si *SingleInstance) TryLock() error {
	return si.tryLock(true)
}

func (si *SingleInstance) tryLock(retryStale bool) error {
	file, err := os.OpenFile(si.lockPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0600)
	if err != nil {
		if os.IsExist(err) && retryStale {
			return si.checkExistingInstance()
		}
		if os.IsExist(err) {
			return ErrAlreadyRunning
		}
		return fmt.Errorf("failed to create lock file: %w", err)
	}

	if _, err := file.WriteString(strconv.Itoa(os.Getpid())); err != nil {
		file.Close()
		os.Remove(si.lockPath)
		return fmt.Errorf("failed to write PID to lock file: %w", err)
	}

	si.lockFile = file
	return nil
}

// checkExistingInstance removes the lock if its owner is gone and retries once
func (si *SingleInstance) checkExistingInstance() error {
	data, err := os.ReadFile(si.lockPath)
	if err == nil {
		pid, convErr := strconv.Atoi(strings.TrimSpace(string(data)))
		if convErr == nil && isProcessRunning(pid) {
			return fmt.Errorf("%w (pid %d)", ErrAlreadyRunning, pid)
		}
	}

	os.Remove(si.lockPath)
	return si.tryLock(false)
}

// Release removes the lock file
func (si *SingleInstance) Release() {
	if si.lockFile == nil {
		return
	}
	si.lockFile.Close()
	si.lockFile = nil
	os.Remove(si.lockPath)
}
