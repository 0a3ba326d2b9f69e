//-----------------------------------------------------------------------------
/*

Edit Buffer

The line being edited and the cursor within it.

The cursor is a byte offset into the UTF-8 content. Every primitive leaves the
cursor on a character boundary, it never points into the middle of a
multi-byte encoding.

*/
//-----------------------------------------------------------------------------

package prompt

import (
	"unicode"
	"unicode/utf8"
)

//-----------------------------------------------------------------------------

// IsKeyword is the default keyword character predicate used for word motion:
// letters, digits, underscore and any non-ASCII character.
func IsKeyword(r rune) bool {
	return r == '_' || r >= utf8.RuneSelf || unicode.IsLetter(r) || unicode.IsDigit(r)
}

//-----------------------------------------------------------------------------

// Buffer holds the text being edited and the cursor position.
type Buffer struct {
	text   string
	cursor int // byte offset, always on a character boundary
}

// String returns the buffer content.
func (b *Buffer) String() string {
	return b.text
}

// Cursor returns the cursor byte offset.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// Len returns the length of the content in bytes.
func (b *Buffer) Len() int {
	return len(b.text)
}

// Set replaces the content and moves the cursor to the end.
func (b *Buffer) Set(s string) {
	b.text = s
	b.cursor = len(s)
}

// Reset empties the buffer.
func (b *Buffer) Reset() {
	b.Set("")
}

// Return the nearest character boundary at or before i.
func (b *Buffer) floor(i int) int {
	if i <= 0 {
		return 0
	}
	if i >= len(b.text) {
		return len(b.text)
	}
	for i > 0 && !utf8.RuneStart(b.text[i]) {
		i--
	}
	return i
}

// Return the nearest character boundary at or after i.
func (b *Buffer) ceil(i int) int {
	if i <= 0 {
		return 0
	}
	for i < len(b.text) && !utf8.RuneStart(b.text[i]) {
		i++
	}
	if i > len(b.text) {
		return len(b.text)
	}
	return i
}

// SetCursor moves the cursor to offset i.
// Out of range offsets are clamped and offsets inside a character move back to
// its start.
func (b *Buffer) SetCursor(i int) {
	b.cursor = b.floor(i)
}

// Insert a character at the cursor and move the cursor past it.
func (b *Buffer) Insert(r rune) {
	b.InsertString(string(r))
}

// InsertString inserts s at the cursor and moves the cursor past it.
func (b *Buffer) InsertString(s string) {
	b.text = b.text[:b.cursor] + s + b.text[b.cursor:]
	b.cursor += len(s)
}

// ReplaceRange replaces the content in [start, end) with s.
// The cursor is left at the end of the inserted text.
func (b *Buffer) ReplaceRange(start, end int, s string) {
	start, end = b.floor(start), b.ceil(end)
	if start > end {
		start, end = end, start
	}
	b.text = b.text[:start] + s + b.text[end:]
	b.cursor = start + len(s)
}

// Remove the content in [start, end) and leave the cursor at start.
func (b *Buffer) remove(start, end int) bool {
	if start >= end {
		return false
	}
	b.text = b.text[:start] + b.text[end:]
	b.cursor = start
	return true
}

// Return the offset of the character before i.
func (b *Buffer) prev(i int) int {
	_, size := utf8.DecodeLastRuneInString(b.text[:i])
	return i - size
}

// Return the offset of the character after i.
func (b *Buffer) next(i int) int {
	_, size := utf8.DecodeRuneInString(b.text[i:])
	return i + size
}

// Backspace deletes the character left of the cursor.
func (b *Buffer) Backspace() bool {
	if b.cursor == 0 {
		return false
	}
	return b.remove(b.prev(b.cursor), b.cursor)
}

// Delete deletes the character under the cursor.
func (b *Buffer) Delete() bool {
	if b.cursor == len(b.text) {
		return false
	}
	return b.remove(b.cursor, b.next(b.cursor))
}

// Left moves the cursor one character left.
func (b *Buffer) Left() bool {
	if b.cursor == 0 {
		return false
	}
	b.cursor = b.prev(b.cursor)
	return true
}

// Right moves the cursor one character right.
func (b *Buffer) Right() bool {
	if b.cursor == len(b.text) {
		return false
	}
	b.cursor = b.next(b.cursor)
	return true
}

// Home moves the cursor to the start of the buffer.
func (b *Buffer) Home() bool {
	moved := b.cursor != 0
	b.cursor = 0
	return moved
}

// End moves the cursor to the end of the buffer.
func (b *Buffer) End() bool {
	moved := b.cursor != len(b.text)
	b.cursor = len(b.text)
	return moved
}

//-----------------------------------------------------------------------------
// words

// Return the start of the word left of i: skip non-keyword characters, then
// keyword characters.
func (b *Buffer) wordStart(i int, isKeyword func(rune) bool) int {
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(b.text[:i])
		if isKeyword(r) {
			break
		}
		i -= size
	}
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(b.text[:i])
		if !isKeyword(r) {
			break
		}
		i -= size
	}
	return i
}

// Return the end of the word right of i.
func (b *Buffer) wordEnd(i int, isKeyword func(rune) bool) int {
	for i < len(b.text) {
		r, size := utf8.DecodeRuneInString(b.text[i:])
		if isKeyword(r) {
			break
		}
		i += size
	}
	for i < len(b.text) {
		r, size := utf8.DecodeRuneInString(b.text[i:])
		if !isKeyword(r) {
			break
		}
		i += size
	}
	return i
}

// WordLeft moves the cursor to the start of the previous word.
func (b *Buffer) WordLeft(isKeyword func(rune) bool) bool {
	i := b.wordStart(b.cursor, isKeyword)
	moved := i != b.cursor
	b.cursor = i
	return moved
}

// WordRight moves the cursor to the end of the next word.
func (b *Buffer) WordRight(isKeyword func(rune) bool) bool {
	i := b.wordEnd(b.cursor, isKeyword)
	moved := i != b.cursor
	b.cursor = i
	return moved
}

//-----------------------------------------------------------------------------
// kills

// KillToStart deletes from the start of the buffer to the cursor.
func (b *Buffer) KillToStart() bool {
	return b.remove(0, b.cursor)
}

// KillToEnd deletes from the cursor to the end of the buffer.
func (b *Buffer) KillToEnd() bool {
	if b.cursor == len(b.text) {
		return false
	}
	b.text = b.text[:b.cursor]
	return true
}

// DeleteWord deletes the word left of the cursor.
func (b *Buffer) DeleteWord(isKeyword func(rune) bool) bool {
	return b.remove(b.wordStart(b.cursor, isKeyword), b.cursor)
}

// Transpose swaps the character before the cursor with the one under it.
// At the end of the buffer the last two characters are swapped.
func (b *Buffer) Transpose() bool {
	i := b.cursor
	if i == len(b.text) {
		if i == 0 {
			return false
		}
		i = b.prev(i)
	}
	if i == 0 {
		return false
	}
	p, n := b.prev(i), b.next(i)
	b.text = b.text[:p] + b.text[i:n] + b.text[p:i] + b.text[n:]
	b.cursor = n
	return true
}

//-----------------------------------------------------------------------------
