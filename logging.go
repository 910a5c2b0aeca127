package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// LogManager writes leveled key/value logs to stderr and, when configured,
// to a log file
type LogManager struct {
	logFile *os.File
	logger  zerolog.Logger
}

// NewLogManager creates a log manager writing to out
func NewLogManager(config *Config, out io.Writer) (*LogManager, error) {
	level, err := zerolog.ParseLevel(config.Logging.Level)
	if err != nil {
		return nil, err
	}

	lm := &LogManager{}

	var output io.Writer = out
	if config.Logging.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.TimeOnly,
		}
	}

	if config.Logging.File != "" {
		if err := os.MkdirAll(filepath.Dir(config.Logging.File), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		lm.logFile, err = os.OpenFile(config.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		// the file always gets json lines
		output = zerolog.MultiLevelWriter(output, lm.logFile)
	}

	lm.logger = zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	return lm, nil
}

// NewNopLogManager returns a log manager that discards everything
func NewNopLogManager() *LogManager {
	return &LogManager{logger: zerolog.Nop()}
}

func withPairs(event *zerolog.Event, keyValuePairs []string) *zerolog.Event {
	for i := 0; i+1 < len(keyValuePairs); i += 2 {
		event = event.Str(keyValuePairs[i], keyValuePairs[i+1])
	}
	return event
}

// LogDebug logs a debug message
func (lm *LogManager) LogDebug(message string, keyValuePairs ...string) {
	withPairs(lm.logger.Debug(), keyValuePairs).Msg(message)
}

// LogInfo logs an informational message
func (lm *LogManager) LogInfo(message string, keyValuePairs ...string) {
	withPairs(lm.logger.Info(), keyValuePairs).Msg(message)
}

// LogWarning logs a warning message
func (lm *LogManager) LogWarning(message string, keyValuePairs ...string) {
	withPairs(lm.logger.Warn(), keyValuePairs).Msg(message)
}

// LogError logs an error message
func (lm *LogManager) LogError(message string, err error, keyValuePairs ...string) {
	withPairs(lm.logger.Error().Err(err), keyValuePairs).Msg(message)
}

// LogKeyEvent logs a resolved event at debug level
func (lm *LogManager) LogKeyEvent(message string, input string, ev KeyEvent) {
	lm.logger.Debug().
		Str("input", input).
		Uint32("code", ev.Code).
		Stringer("mods", ev.Mods).
		Msg(message)
}

// Close closes the log file
func (lm *LogManager) Close() {
	if lm.logFile != nil {
		lm.logFile.Close()
		lm.logFile = nil
	}
}
