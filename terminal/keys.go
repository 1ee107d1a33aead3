package terminal

import "github.com/grovetools/consoleui/tui/components/navigator"

const (
	keyCtrlC = 0x03
	keyLF    = '\n'
	keyCR    = '\r'
	keyEsc   = 0x1b
)

// Decode returns the first key event encoded in data.
func Decode(data []byte) navigator.KeyEvent {
	ev, _ := DecodeNext(data)
	return ev
}

// DecodeNext decodes one key event from the start of data and reports how
// many bytes it used. Empty input yields CodeOther and 0.
//
// Raw mode turns off signal generation, so Ctrl+C arrives as a byte and is
// decoded as Escape to keep the menu cancellable.
func DecodeNext(data []byte) (navigator.KeyEvent, int) {
	if len(data) == 0 {
		return navigator.Press(navigator.CodeOther), 0
	}

	switch b := data[0]; b {
	case keyCR, keyLF:
		// Terminals in raw mode may send CR LF for a single Enter.
		if b == keyCR && len(data) > 1 && data[1] == keyLF {
			return navigator.Press(navigator.CodeEnter), 2
		}
		return navigator.Press(navigator.CodeEnter), 1
	case keyCtrlC:
		return navigator.Press(navigator.CodeEscape), 1
	case keyEsc:
		return decodeEscape(data)
	}

	return navigator.Press(navigator.CodeOther), utf8Len(data)
}

// decodeEscape handles a buffer starting with ESC. A lone ESC is the Escape
// key; CSI and SS3 sequences ending in A-D are arrows, any modifier
// parameters are ignored.
func decodeEscape(data []byte) (navigator.KeyEvent, int) {
	if len(data) == 1 {
		return navigator.Press(navigator.CodeEscape), 1
	}

	switch data[1] {
	case '[':
		end := 2
		for end < len(data) {
			c := data[end]
			if c >= 0x40 && c <= 0x7e {
				return navigator.Press(arrowCode(c)), end + 1
			}
			if c < 0x20 || c > 0x3f {
				break
			}
			end++
		}
		// Unterminated or malformed CSI: swallow what we have.
		return navigator.Press(navigator.CodeOther), end
	case 'O':
		if len(data) < 3 {
			return navigator.Press(navigator.CodeOther), 2
		}
		return navigator.Press(arrowCode(data[2])), 3
	case keyEsc:
		// ESC ESC: the first is a lone Escape.
		return navigator.Press(navigator.CodeEscape), 1
	}

	// Alt+key
	return navigator.Press(navigator.CodeOther), 1 + utf8Len(data[1:])
}

func arrowCode(final byte) navigator.KeyCode {
	switch final {
	case 'A':
		return navigator.CodeUp
	case 'B':
		return navigator.CodeDown
	case 'C':
		return navigator.CodeRight
	case 'D':
		return navigator.CodeLeft
	}
	return navigator.CodeOther
}

// utf8Len returns the byte length of the UTF-8 sequence starting data,
// clamped to the available bytes. Invalid start bytes count as one.
func utf8Len(data []byte) int {
	if len(data) == 0 {
		return 0
	}
	n := 1
	switch b := data[0]; {
	case b&0xe0 == 0xc0:
		n = 2
	case b&0xf0 == 0xe0:
		n = 3
	case b&0xf8 == 0xf0:
		n = 4
	}
	if n > len(data) {
		return len(data)
	}
	return n
}
