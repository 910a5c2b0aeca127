package main

import (
	"fmt"
	"strings"
)

// Modifier is a bitset of held modifier keys in the layout's modifier index
// order, the same mask the compositor expects in modifier updates.
type Modifier uint32

const (
	ModNone    Modifier = 0x0
	ModShift   Modifier = 0x1
	ModControl Modifier = 0x4
	ModAlt     Modifier = 0x8
	ModSuper   Modifier = 0x40
)

// modifierOrder fixes the order modifiers are printed in
var modifierOrder = []struct {
	mod  Modifier
	name string
}{
	{ModShift, "S"},
	{ModControl, "C"},
	{ModAlt, "M"},
	{ModSuper, "H"},
}

// Has returns true if m contains every bit of mod
func (m Modifier) Has(mod Modifier) bool {
	return mod != ModNone && m&mod == mod
}

// String renders the mask in chord notation, e.g. "C-M"
func (m Modifier) String() string {
	if m == ModNone {
		return "none"
	}
	var names []string
	for _, entry := range modifierOrder {
		if m.Has(entry.mod) {
			names = append(names, entry.name)
		}
	}
	if rest := m &^ (ModShift | ModControl | ModAlt | ModSuper); rest != 0 {
		names = append(names, fmt.Sprintf("0x%X", uint32(rest)))
	}
	return strings.Join(names, string(chordDelimiter))
}

// modifierNames maps lowercase modifier names to their bit.
// The single letters follow emacs chord notation (C-M-s).
var modifierNames = map[string]Modifier{
	"s":       ModShift,
	"shift":   ModShift,
	"c":       ModControl,
	"ctrl":    ModControl,
	"control": ModControl,
	"m":       ModAlt,
	"alt":     ModAlt,
	"meta":    ModAlt,
	"h":       ModSuper,
	"super":   ModSuper,
	"win":     ModSuper,
}

// keyNames maps lowercase key names to linux input event codes for keys
// that have no printable byte. No entry is 0.
var keyNames = map[string]uint32{
	"esc":       1,
	"escape":    1,
	"backspace": 14,
	"tab":       15,
	"enter":     28,
	"return":    28,
	"space":     57,

	"f1":  59,
	"f2":  60,
	"f3":  61,
	"f4":  62,
	"f5":  63,
	"f6":  64,
	"f7":  65,
	"f8":  66,
	"f9":  67,
	"f10": 68,
	"f11": 87,
	"f12": 88,

	"home":     102,
	"up":       103,
	"pageup":   104,
	"left":     105,
	"right":    106,
	"end":      107,
	"down":     108,
	"pagedown": 109,
	"insert":   110,
	"delete":   111,
}

// LookupKeyName returns the key code for a named key, case-insensitively
func LookupKeyName(name string) (uint32, bool) {
	code, exists := keyNames[strings.ToLower(name)]
	return code, exists
}

// LookupModifier returns the modifier bit for a modifier name, case-insensitively
func LookupModifier(name string) (Modifier, bool) {
	mod, exists := modifierNames[strings.ToLower(name)]
	return mod, exists
}
