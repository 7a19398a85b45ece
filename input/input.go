// Package input decodes raw terminal bytes into key events. The
// decoder understands the escape sequences the session loop cares
// about: arrow keys, delete, plus control characters and printable
// ASCII. Anything else decodes to KindNone and is ignored upstream.
package input

import "io"

// Kind identifies a key event.
type Kind int

const (
	KindNone Kind = iota
	KindChar       // printable character, see Key.Ch
	KindCtrl       // control-modified letter, see Key.Ch
	KindUp
	KindDown
	KindLeft
	KindRight
	KindEnter
	KindBackspace
	KindDelete
	KindEscape
)

// Key is one decoded input event.
type Key struct {
	Kind Kind
	Ch   byte // the character for KindChar, the lowercase letter for KindCtrl
}

// Char builds a printable-character key. Test helper shorthand.
func Char(c byte) Key { return Key{Kind: KindChar, Ch: c} }

// Ctrl builds a control-key event for the given lowercase letter.
func Ctrl(c byte) Key { return Key{Kind: KindCtrl, Ch: c} }

// Reader decodes key events from a raw-mode byte stream.
type Reader struct {
	r   io.Reader
	buf [8]byte
}

// NewReader wraps a raw-mode input stream.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// ReadKey blocks until one key event is available. Raw mode is set up
// with a read timeout (VTIME), so zero-byte reads are retried here
// rather than surfaced.
func (r *Reader) ReadKey() (Key, error) {
	for {
		n, err := r.r.Read(r.buf[:])
		if n > 0 {
			return Decode(r.buf[:n]), nil
		}
		if err != nil {
			return Key{}, err
		}
	}
}

// Decode turns one raw read into a key event.
func Decode(b []byte) Key {
	if len(b) == 0 {
		return Key{}
	}

	if b[0] == 0x1b {
		if len(b) >= 3 && b[1] == '[' {
			switch b[2] {
			case 'A':
				return Key{Kind: KindUp}
			case 'B':
				return Key{Kind: KindDown}
			case 'C':
				return Key{Kind: KindRight}
			case 'D':
				return Key{Kind: KindLeft}
			case '3':
				if len(b) >= 4 && b[3] == '~' {
					return Key{Kind: KindDelete}
				}
			}
			return Key{}
		}
		return Key{Kind: KindEscape}
	}

	switch b[0] {
	case '\r', '\n':
		return Key{Kind: KindEnter}
	case 0x7f:
		return Key{Kind: KindBackspace}
	}

	// Control characters map back to their letter: 0x01 = Ctrl-A.
	if b[0] < 0x20 {
		return Key{Kind: KindCtrl, Ch: 'a' + b[0] - 1}
	}

	if b[0] < 0x7f {
		return Key{Kind: KindChar, Ch: b[0]}
	}

	return Key{}
}
