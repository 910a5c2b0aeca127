package main

// KeyEvent is one resolved key press waiting to be sequenced.
// A zero Code only toggles modifiers, a zero Mods skips modifier bracketing.
type KeyEvent struct {
	Code uint32
	Mods Modifier
}

// IsNoop reports whether emitting the event sends nothing to the device
func (e KeyEvent) IsNoop() bool {
	return e.Code == 0 && e.Mods == ModNone
}

// ScancodeEntry is the device key code for a byte and whether the symbol
// needs Shift held under the default layout
type ScancodeEntry struct {
	Code  uint32
	Shift bool
}

// Event converts the entry to a KeyEvent, holding Shift when required
func (e ScancodeEntry) Event() KeyEvent {
	ev := KeyEvent{Code: e.Code}
	if e.Shift {
		ev.Mods = ModShift
	}
	return ev
}

// scancodes maps every byte to a linux input event code (evdev), which is
// the xkb keycode minus 8 as expected by the virtual keyboard protocol.
// Bytes without a key stay zero.
var scancodes = [256]ScancodeEntry{
	0x1b: {1, false}, // esc
	'1': {2, false}, '!': {2, true},
	'2': {3, false}, '@': {3, true},
	'3': {4, false}, '#': {4, true},
	'4': {5, false}, '$': {5, true},
	'5': {6, false}, '%': {6, true},
	'6': {7, false}, '^': {7, true},
	'7': {8, false}, '&': {8, true},
	'8': {9, false}, '*': {9, true},
	'9': {10, false}, '(': {10, true},
	'0': {11, false}, ')': {11, true},
	'-': {12, false}, '_': {12, true},
	'=': {13, false}, '+': {13, true},
	0x08: {14, false}, // backspace
	'\t': {15, false},
	'q': {16, false}, 'Q': {16, true},
	'w': {17, false}, 'W': {17, true},
	'e': {18, false}, 'E': {18, true},
	'r': {19, false}, 'R': {19, true},
	't': {20, false}, 'T': {20, true},
	'y': {21, false}, 'Y': {21, true},
	'u': {22, false}, 'U': {22, true},
	'i': {23, false}, 'I': {23, true},
	'o': {24, false}, 'O': {24, true},
	'p': {25, false}, 'P': {25, true},
	'[': {26, false}, '{': {26, true},
	']': {27, false}, '}': {27, true},
	'\n': {28, false},
	// 29 left ctrl
	'a': {30, false}, 'A': {30, true},
	's': {31, false}, 'S': {31, true},
	'd': {32, false}, 'D': {32, true},
	'f': {33, false}, 'F': {33, true},
	'g': {34, false}, 'G': {34, true},
	'h': {35, false}, 'H': {35, true},
	'j': {36, false}, 'J': {36, true},
	'k': {37, false}, 'K': {37, true},
	'l': {38, false}, 'L': {38, true},
	';': {39, false}, ':': {39, true},
	'\'': {40, false}, '"': {40, true},
	'`': {41, false}, '~': {41, true},
	// 42 left shift
	'\\': {43, false}, '|': {43, true},
	'z': {44, false}, 'Z': {44, true},
	'x': {45, false}, 'X': {45, true},
	'c': {46, false}, 'C': {46, true},
	'v': {47, false}, 'V': {47, true},
	'b': {48, false}, 'B': {48, true},
	'n': {49, false}, 'N': {49, true},
	'm': {50, false}, 'M': {50, true},
	',': {51, false}, '<': {51, true},
	'.': {52, false}, '>': {52, true},
	'/': {53, false}, '?': {53, true},
	' ': {57, false},
}

// LookupByte returns the table entry for b. It never fails; unmapped bytes
// give the zero entry.
func LookupByte(b byte) ScancodeEntry {
	return scancodes[b]
}

// TextEvents calls fn with one KeyEvent per byte of text, left to right.
// It stops at the first error fn returns.
func TextEvents(text string, fn func(byte, KeyEvent) error) error {
	for i := 0; i < len(text); i++ {
		c := text[i]
		if err := fn(c, LookupByte(c).Event()); err != nil {
			return err
		}
	}
	return nil
}
