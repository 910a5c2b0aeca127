package main

import (
	"strings"
)

const chordDelimiter = '-'

// ParseChord parses a chord expression such as "C-M-s" or "S-F12".
//
// The last token names the key and every token before it names a modifier.
// A single character key resolves through the byte table, anything longer
// through the named keys. The byte table's Shift flag is not applied: only
// modifiers written in the chord end up in the mask, so "C-!" sends Control
// with the "1" key.
//
// Empty tokens are skipped, so "C--" is the chord "C". A key that does not
// resolve gives code 0, which still pulses the parsed modifiers. An unknown
// modifier is a *ParseError.
func ParseChord(expr string) (KeyEvent, error) {
	tokens := strings.FieldsFunc(expr, func(r rune) bool {
		return r == chordDelimiter
	})

	var ev KeyEvent
	if len(tokens) == 0 {
		return ev, nil
	}

	keyToken := tokens[len(tokens)-1]
	for _, token := range tokens[:len(tokens)-1] {
		mod, ok := LookupModifier(token)
		if !ok {
			return KeyEvent{}, &ParseError{Expr: expr, Token: token, Reason: "invalid modifier"}
		}
		ev.Mods |= mod
	}

	if len(keyToken) == 1 {
		ev.Code = LookupByte(keyToken[0]).Code
	} else {
		ev.Code, _ = LookupKeyName(keyToken)
	}
	return ev, nil
}
