package main

import (
	"errors"
	"fmt"
)

var (
	// ErrCapability is returned when the selected backend cannot create a
	// virtual keyboard on this system
	ErrCapability = errors.New("virtual keyboard not available")

	// ErrHelp is returned by the dispatcher after it printed usage
	ErrHelp = errors.New("help requested")
)

// ParseError reports an operation or chord token that could not be understood
type ParseError struct {
	Expr   string // whole expression or operation the token belongs to
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Expr != "" && e.Expr != e.Token {
		return fmt.Sprintf("%s %q in %q", e.Reason, e.Token, e.Expr)
	}
	return fmt.Sprintf("%s: %q", e.Reason, e.Token)
}

// StreamError is a failed read of the raw input stream. End of stream is
// not an error.
type StreamError struct {
	Err error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("read input stream: %v", e.Err)
}

func (e *StreamError) Unwrap() error {
	return e.Err
}
