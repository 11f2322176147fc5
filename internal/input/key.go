// Package input turns raw terminal input into the small set of keys the
// editor understands.
package input

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

type Kind int

const (
	Unsupported Kind = iota
	Char
	Backspace
	DeleteWord
	Quit
)

// Control bytes as delivered by a terminal in raw mode.
const (
	ESC_KEY         = 0x1b
	DELETE_KEY      = 0x7f
	CTRL_H_KEY      = 0x08
	CTRL_Q_KEY      = 0x11
	cursesBackspace = "backspace"
)

func (k Kind) String() string {
	switch k {
	case Char:
		return "char"
	case Backspace:
		return "backspace"
	case DeleteWord:
		return "ctrl+h"
	case Quit:
		return "ctrl+q"
	default:
		return "unsupported"
	}
}

// Key is one input event. Char is only set for Kind == Char.
type Key struct {
	Kind Kind
	Char rune
}

func (k Key) String() string {
	if k.Kind == Char {
		return fmt.Sprintf("char(%q)", k.Char)
	}
	return k.Kind.String()
}

// FromRune classifies a single rune read from the terminal.
func FromRune(r rune) Key {
	switch {
	case r == DELETE_KEY:
		return Key{Kind: Backspace}
	case r == CTRL_H_KEY:
		return Key{Kind: DeleteWord}
	case r == CTRL_Q_KEY:
		return Key{Kind: Quit}
	case r == utf8.RuneError, unicode.IsControl(r):
		return Key{Kind: Unsupported}
	default:
		return Key{Kind: Char, Char: r}
	}
}

// FromCursesName classifies the name goncurses gives a key (see KeyString).
// Named keys other than backspace ("enter", "down", "F1", ...) are
// unsupported.
func FromCursesName(name string) Key {
	if name == cursesBackspace {
		return Key{Kind: Backspace}
	}
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || size != len(name) {
		return Key{Kind: Unsupported}
	}
	return FromRune(r)
}

// Decode splits one raw read into keys. An escape sequence (arrow keys,
// function keys, alt+key) becomes a single Unsupported key; it is assumed to
// arrive whole within one read.
func Decode(p []byte) []Key {
	var keys []Key
	for len(p) > 0 {
		if p[0] == ESC_KEY {
			keys = append(keys, Key{Kind: Unsupported})
			p = p[escapeLen(p):]
			continue
		}
		r, size := utf8.DecodeRune(p)
		keys = append(keys, FromRune(r))
		p = p[size:]
	}
	return keys
}

// IncompleteSuffix returns how many bytes at the end of p begin a UTF-8
// sequence that the rest of p does not complete. A read can stop in the middle
// of a multi-byte rune; those bytes belong in front of the next read.
func IncompleteSuffix(p []byte) int {
	for i := len(p) - 1; i >= 0 && i > len(p)-utf8.UTFMax; i-- {
		if !utf8.RuneStart(p[i]) {
			continue
		}
		if utf8.FullRune(p[i:]) {
			return 0
		}
		return len(p) - i
	}
	return 0
}

// escapeLen returns the length of the escape sequence at the start of p.
func escapeLen(p []byte) int {
	if len(p) < 2 {
		return len(p)
	}
	switch p[1] {
	case '[':
		// CSI: parameters and intermediates, then a final byte in 0x40-0x7e.
		for i := 2; i < len(p); i++ {
			if p[i] >= 0x40 && p[i] <= 0x7e {
				return i + 1
			}
		}
		return len(p)
	case 'O':
		// SS3, e.g. F1-F4 and arrows in application mode.
		return min(3, len(p))
	default:
		// Alt+key.
		_, size := utf8.DecodeRune(p[1:])
		return 1 + size
	}
}
