package main

import (
	"fmt"
	"io"
	"strconv"
	"time"
)

const usageText = `Usage: vkbd [flags] <operation> [<operation> ...]

Operations run left to right:
  type <text>    type text, holding Shift where a character needs it
  send <chord>   send one chord, e.g. C-M-s, S-F12, H-enter
  sleep <ms>     pause for the given milliseconds
  pipe           type everything read from stdin, then exit
  help           show this help

Chord modifiers: S/shift, C/ctrl, M/alt, H/super
Named keys: esc, enter, tab, backspace, space, F1-F12, home, end,
            pageup, pagedown, insert, delete, up, down, left, right
`

// printUsage writes the operation summary to w
func printUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}

// Dispatcher walks the operation tokens and feeds the resulting key events to
// the sequencer, one at a time
type Dispatcher struct {
	sequencer *Sequencer
	log       *LogManager
	stdin     io.Reader
	stdout    io.Writer
	blockSize int
	sleep     func(time.Duration)
}

// NewDispatcher creates a dispatcher reading pipe input from stdin
func NewDispatcher(sequencer *Sequencer, config *Config, log *LogManager, stdin io.Reader, stdout io.Writer) *Dispatcher {
	return &Dispatcher{
		sequencer: sequencer,
		log:       log,
		stdin:     stdin,
		stdout:    stdout,
		blockSize: config.Input.PipeBlockSize,
		sleep:     time.Sleep,
	}
}

// Run executes the operations in args in order. It returns ErrHelp after
// printing usage, and stops after pipe whatever follows it.
func (d *Dispatcher) Run(args []string) error {
	for i := 0; i < len(args); {
		op := args[i]

		switch op {
		case "pipe":
			if rest := len(args) - i - 1; rest > 0 {
				d.log.LogWarning("Ignoring operations after pipe", "count", strconv.Itoa(rest))
			}
			return d.pipe()
		case "help":
			printUsage(d.stdout)
			return ErrHelp
		case "type", "send", "sleep":
			// these take one argument, handled below
		default:
			return &ParseError{Token: op, Reason: "invalid operation"}
		}

		// the argument is the next token, whatever it looks like
		if i+1 >= len(args) {
			return &ParseError{Token: op, Reason: "missing argument for operation"}
		}
		arg := args[i+1]

		var err error
		switch op {
		case "type":
			err = d.typeText(arg)
		case "send":
			err = d.sendChord(arg)
		case "sleep":
			err = d.pause(arg)
		}
		if err != nil {
			return err
		}

		// skip the operation and its argument
		i += 2
	}
	return nil
}

func (d *Dispatcher) typeText(text string) error {
	return TextEvents(text, func(c byte, ev KeyEvent) error {
		d.log.LogKeyEvent("Typing", strconv.QuoteRune(rune(c)), ev)
		return d.sequencer.Emit(ev)
	})
}

func (d *Dispatcher) sendChord(chord string) error {
	ev, err := ParseChord(chord)
	if err != nil {
		return err
	}
	// the modifiers are still pulsed
	if ev.Code == 0 {
		d.log.LogWarning("Chord has no known key", "chord", chord)
	}
	d.log.LogKeyEvent("Sending", chord, ev)
	return d.sequencer.Emit(ev)
}

func (d *Dispatcher) pause(arg string) error {
	ms, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return &ParseError{Expr: "sleep " + arg, Token: arg, Reason: "invalid duration"}
	}
	d.log.LogDebug("Sleeping", "ms", arg)
	d.sleep(time.Duration(ms) * time.Millisecond)
	return nil
}

func (d *Dispatcher) pipe() error {
	return StreamEvents(d.stdin, d.blockSize, func(c byte, ev KeyEvent) error {
		d.log.LogKeyEvent("Typing", strconv.QuoteRune(rune(c)), ev)
		return d.sequencer.Emit(ev)
	})
}

// StreamEvents reads r in blocks of blockSize and calls fn for every byte as
// soon as its block arrives. End of stream returns nil, any other read error
// a *StreamError.
func StreamEvents(r io.Reader, blockSize int, fn func(byte, KeyEvent) error) error {
	if blockSize < 1 {
		blockSize = 1
	}
	buf := make([]byte, blockSize)
	for {
		// a short read is typed right away instead of waiting for a full block
		n, err := r.Read(buf)

		// bytes that came with an error are typed before the error is handled
		for _, c := range buf[:n] {
			if ferr := fn(c, LookupByte(c).Event()); ferr != nil {
				return ferr
			}
		}
		// end of stream is a normal exit
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return &StreamError{Err: err}
		}
	}
}
