//-----------------------------------------------------------------------------
/*

Terminal Input Decoding

Turns the raw byte stream from a terminal into discrete input sequences:

* printable characters (UTF-8 decoded)
* control codes (in caret notation, Ctrl-C is 'C')
* two byte escapes (ESC + byte)
* CSI sequences (ESC [ params final)

Only what is needed to drive line editing is interpreted. This is not a
terminal emulator.

*/
//-----------------------------------------------------------------------------

package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

//-----------------------------------------------------------------------------

const keycodeESC = 0x1b
const keycodeDEL = 0x7f

// ErrInvalidUTF8 is returned when the input holds a malformed UTF-8 encoding.
var ErrInvalidUTF8 = errors.New("invalid utf8 input")

//-----------------------------------------------------------------------------

// Kind is the type of a decoded input sequence.
type Kind int

// Sequence kinds.
const (
	KindChar    Kind = iota // printable character
	KindControl             // C0 control code or DEL, caret notation
	KindEscape              // ESC followed by anything but '['
	KindCSI                 // ESC [ params final
)

// Sequence is one decoded unit of terminal input.
// Sequences are comparable so they can be used as KeyMap keys.
type Sequence struct {
	Kind   Kind
	Rune   rune   // KindChar: the character
	Byte   byte   // KindControl: code ^ 0x40, KindEscape: the byte after ESC
	Params string // KindCSI: the bytes between "ESC [" and the final byte
	Final  byte   // KindCSI: the final byte (0x40..0x7e)
}

// Char returns a printable character sequence.
func Char(r rune) Sequence {
	return Sequence{Kind: KindChar, Rune: r}
}

// Control returns a control code sequence, c is in caret notation ('C' for ^C).
func Control(c byte) Sequence {
	return Sequence{Kind: KindControl, Byte: c}
}

// Escape returns an ESC + byte sequence.
func Escape(c byte) Sequence {
	return Sequence{Kind: KindEscape, Byte: c}
}

// CSI returns a control sequence with the given parameters and final byte.
func CSI(params string, final byte) Sequence {
	return Sequence{Kind: KindCSI, Params: params, Final: final}
}

func (s Sequence) String() string {
	switch s.Kind {
	case KindChar:
		return fmt.Sprintf("Char(%q)", s.Rune)
	case KindControl:
		return fmt.Sprintf("Control(^%c)", s.Byte)
	case KindEscape:
		return fmt.Sprintf("Escape(%q)", s.Byte)
	case KindCSI:
		return fmt.Sprintf("CSI(%q, %q)", s.Params, s.Final)
	}
	return fmt.Sprintf("Sequence(%d)", s.Kind)
}

//-----------------------------------------------------------------------------
// UTF8 Decoding

const (
	utf8Byte0 = iota
	utf83More
	utf82More
	utf81More
)

type utf8State struct {
	state byte
	count int
	val   int32
}

// Add a byte to a utf8 decode.
// Return the rune and its size in bytes, size is 0 while incomplete.
func (u *utf8State) add(c byte) (rune, int, error) {
	switch u.state {
	case utf8Byte0:
		if c&0x80 == 0 {
			// 1 byte
			return rune(c), 1, nil
		} else if c&0xe0 == 0xc0 {
			// 2 bytes
			u.val = int32(c&0x1f) << 6
			u.count = 2
			u.state = utf81More
			return 0, 0, nil
		} else if c&0xf0 == 0xe0 {
			// 3 bytes
			u.val = int32(c&0x0f) << 6
			u.count = 3
			u.state = utf82More
			return 0, 0, nil
		} else if c&0xf8 == 0xf0 {
			// 4 bytes
			u.val = int32(c&0x07) << 6
			u.count = 4
			u.state = utf83More
			return 0, 0, nil
		}
	case utf83More:
		if c&0xc0 == 0x80 {
			u.state = utf82More
			u.val |= int32(c & 0x3f)
			u.val <<= 6
			return 0, 0, nil
		}
	case utf82More:
		if c&0xc0 == 0x80 {
			u.state = utf81More
			u.val |= int32(c & 0x3f)
			u.val <<= 6
			return 0, 0, nil
		}
	case utf81More:
		if c&0xc0 == 0x80 {
			u.state = utf8Byte0
			u.val |= int32(c & 0x3f)
			r := rune(u.val)
			// reject surrogates, out of range values and overlong encodings
			if !utf8.ValidRune(r) || utf8.RuneLen(r) != u.count {
				return 0, 0, ErrInvalidUTF8
			}
			return r, u.count, nil
		}
	}
	// Error
	u.state = utf8Byte0
	return 0, 0, ErrInvalidUTF8
}

//-----------------------------------------------------------------------------

// Decoder reads input sequences from a byte stream.
type Decoder struct {
	r   io.ByteReader
	buf []byte // raw bytes of the current sequence
}

// NewDecoder returns a decoder reading from r.
// r is buffered unless it is already an io.ByteReader.
func NewDecoder(r io.Reader) *Decoder {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Decoder{r: br, buf: make([]byte, 0, 16)}
}

// Bytes returns the raw bytes of the last decoded sequence.
// It is only valid until the next call to Decode.
func (d *Decoder) Bytes() []byte {
	return d.buf
}

// read the first byte of a sequence
func (d *Decoder) readByte() (byte, error) {
	c, err := d.r.ReadByte()
	if err != nil {
		return 0, err
	}
	d.buf = append(d.buf, c)
	return c, nil
}

// read a byte inside a sequence, running out of input here is unexpected
func (d *Decoder) more() (byte, error) {
	c, err := d.readByte()
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return c, err
}

// decode the rest of a multi-byte utf8 character
func (d *Decoder) decodeRune(c byte) (Sequence, error) {
	u := utf8State{}
	for {
		r, size, err := u.add(c)
		if err != nil {
			return Sequence{}, fmt.Errorf("%w: % x", err, d.buf)
		}
		if size != 0 {
			return Char(r), nil
		}
		c, err = d.more()
		if err != nil {
			return Sequence{}, err
		}
	}
}

// Decode blocks until it has read exactly one sequence from the input.
// A CSI sequence is never returned incomplete: decoding continues until the
// final byte arrives.
func (d *Decoder) Decode() (Sequence, error) {
	d.buf = d.buf[:0]
	c, err := d.readByte()
	if err != nil {
		return Sequence{}, err
	}
	switch {
	case c >= 0x80:
		return d.decodeRune(c)
	case c == keycodeESC:
		c, err = d.more()
		if err != nil {
			return Sequence{}, err
		}
		if c != '[' {
			return Escape(c), nil
		}
		// CSI sequences are always terminated by a byte in this range
		for {
			c, err = d.more()
			if err != nil {
				return Sequence{}, err
			}
			if c >= 0x40 && c <= 0x7e {
				break
			}
		}
		return CSI(string(d.buf[2:len(d.buf)-1]), c), nil
	case c <= 0x1f || c == keycodeDEL:
		return Control(c ^ 0x40), nil
	}
	return Char(rune(c)), nil
}

//-----------------------------------------------------------------------------
