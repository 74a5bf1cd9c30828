// Package term runs the interactive search session on a terminal. It
// decodes raw keyboard input, renders results with ANSI escapes, and
// drives the docsearch.Controller state machine.
package term

import "unicode/utf8"

// Key names produced by DecodeKey. Navigation keys use the same names
// the controller dispatches on.
const (
	KeyRune      = "Rune"
	KeyEnter     = "Enter"
	KeyEscape    = "Escape"
	KeyArrowUp   = "ArrowUp"
	KeyArrowDown = "ArrowDown"
	KeyBackspace = "Backspace"
	KeyInterrupt = "Interrupt"
	KeyUnknown   = "Unknown"
)

// Key is a single decoded keyboard event. Rune is set only for
// KeyRune events.
type Key struct {
	Name string
	Rune rune
}

// DecodeKey decodes the first key event in buf and returns it together
// with the number of bytes consumed. A lone ESC byte is reported as
// Escape; ESC [ A/B sequences become arrow keys. Unrecognized escape
// sequences and control bytes are reported as KeyUnknown so callers
// can skip them.
func DecodeKey(buf []byte) (Key, int) {
	if len(buf) == 0 {
		return Key{Name: KeyUnknown}, 0
	}

	switch buf[0] {
	case 0x1b:
		if len(buf) >= 3 && buf[1] == '[' {
			switch buf[2] {
			case 'A':
				return Key{Name: KeyArrowUp}, 3
			case 'B':
				return Key{Name: KeyArrowDown}, 3
			default:
				return Key{Name: KeyUnknown}, 3
			}
		}
		return Key{Name: KeyEscape}, 1
	case '\r', '\n':
		return Key{Name: KeyEnter}, 1
	case 0x7f, 0x08:
		return Key{Name: KeyBackspace}, 1
	case 0x03:
		return Key{Name: KeyInterrupt}, 1
	}

	if buf[0] < 0x20 {
		return Key{Name: KeyUnknown}, 1
	}

	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError && size == 1 {
		return Key{Name: KeyUnknown}, 1
	}
	return Key{Name: KeyRune, Rune: r}, size
}
