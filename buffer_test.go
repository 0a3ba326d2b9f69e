//-----------------------------------------------------------------------------
/*

Edit buffer tests

Buffers are written as strings with a '|' at the cursor position.

*/
//-----------------------------------------------------------------------------

package prompt

import (
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"
)

//-----------------------------------------------------------------------------

// make a buffer from "text|text"
func bufferAt(s string) *Buffer {
	i := strings.IndexByte(s, '|')
	b := &Buffer{}
	b.Set(s[:i] + s[i+1:])
	b.SetCursor(i)
	return b
}

// show a buffer as "text|text"
func (b *Buffer) marked() string {
	return b.text[:b.cursor] + "|" + b.text[b.cursor:]
}

// the cursor is on a character boundary
func checkBoundary(t *testing.T, b *Buffer) {
	t.Helper()
	if b.cursor < 0 || b.cursor > len(b.text) {
		t.Fatalf("cursor %d out of range for %q", b.cursor, b.text)
	}
	if b.cursor < len(b.text) && !utf8.RuneStart(b.text[b.cursor]) {
		t.Fatalf("cursor %d inside a character in %q", b.cursor, b.text)
	}
}

//-----------------------------------------------------------------------------

func insertOp(r rune) func(b *Buffer) bool {
	return func(b *Buffer) bool {
		b.Insert(r)
		return true
	}
}

func Test_BufferOps(t *testing.T) {
	kw := IsKeyword
	tests := []struct {
		in    string
		op    func(b *Buffer) bool
		out   string
		moved bool
	}{
		{"|", insertOp('a'), "a|", true},
		{"a|c", insertOp('b'), "ab|c", true},
		{"|", insertOp('つ'), "つ|", true},
		{"ab|", (*Buffer).Backspace, "a|", true},
		{"|ab", (*Buffer).Backspace, "|ab", false},
		{"aつ|b", (*Buffer).Backspace, "a|b", true},
		{"a|b", (*Buffer).Delete, "a|", true},
		{"ab|", (*Buffer).Delete, "ab|", false},
		{"a|つb", (*Buffer).Delete, "a|b", true},
		{"aつ|", (*Buffer).Left, "a|つ", true},
		{"|a", (*Buffer).Left, "|a", false},
		{"a|😀", (*Buffer).Right, "a😀|", true},
		{"a|", (*Buffer).Right, "a|", false},
		{"ab|c", (*Buffer).Home, "|abc", true},
		{"|abc", (*Buffer).Home, "|abc", false},
		{"a|bc", (*Buffer).End, "abc|", true},
		{"foo bar|", func(b *Buffer) bool { return b.WordLeft(kw) }, "foo |bar", true},
		{"foo bar |", func(b *Buffer) bool { return b.WordLeft(kw) }, "foo |bar ", true},
		{"foo |bar", func(b *Buffer) bool { return b.WordLeft(kw) }, "|foo bar", true},
		{"  |foo", func(b *Buffer) bool { return b.WordLeft(kw) }, "|  foo", true},
		{"|foo", func(b *Buffer) bool { return b.WordLeft(kw) }, "|foo", false},
		{"|foo bar", func(b *Buffer) bool { return b.WordRight(kw) }, "foo| bar", true},
		{"foo| bar", func(b *Buffer) bool { return b.WordRight(kw) }, "foo bar|", true},
		{"a.b|", func(b *Buffer) bool { return b.WordLeft(kw) }, "a.|b", true},
		{"x つのだ|", func(b *Buffer) bool { return b.WordLeft(kw) }, "x |つのだ", true},
		{"ab|cd", (*Buffer).KillToStart, "|cd", true},
		{"|cd", (*Buffer).KillToStart, "|cd", false},
		{"ab|cd", (*Buffer).KillToEnd, "ab|", true},
		{"ab|", (*Buffer).KillToEnd, "ab|", false},
		{"foo bar|", func(b *Buffer) bool { return b.DeleteWord(kw) }, "foo |", true},
		{"foo bar  |x", func(b *Buffer) bool { return b.DeleteWord(kw) }, "foo |x", true},
		{"a|bc", (*Buffer).Transpose, "ba|c", true},
		{"abc|", (*Buffer).Transpose, "acb|", true},
		{"|abc", (*Buffer).Transpose, "|abc", false},
		{"a|", (*Buffer).Transpose, "a|", false},
		{"aつ|b", (*Buffer).Transpose, "abつ|", true},
	}
	for i, v := range tests {
		b := bufferAt(v.in)
		moved := v.op(b)
		if b.marked() != v.out {
			t.Errorf("%d: FAIL %q expected (%q) != actual (%q)", i, v.in, v.out, b.marked())
		}
		if moved != v.moved {
			t.Errorf("%d: FAIL %q expected changed (%v) != actual (%v)", i, v.in, v.moved, moved)
		}
		checkBoundary(t, b)
	}
}

func Test_ReplaceRange(t *testing.T) {
	tests := []struct {
		in         string
		start, end int
		s          string
		out        string
	}{
		{"he|", 0, 2, "hello", "hello|"},
		{"a he| b", 2, 4, "help", "a help| b"},
		{"ab|", 2, 2, "cd", "abcd|"},
		{"つの|", 1, 5, "x", "x|"}, // snapped to 0..6
		{"ab|", 5, 0, "x", "x|"}, // reversed and clamped
	}
	for i, v := range tests {
		b := bufferAt(v.in)
		b.ReplaceRange(v.start, v.end, v.s)
		if b.marked() != v.out {
			t.Errorf("%d: FAIL expected (%q) != actual (%q)", i, v.out, b.marked())
		}
		checkBoundary(t, b)
	}
}

func Test_SetCursor(t *testing.T) {
	b := &Buffer{}
	b.Set("aつb")
	for i, v := range []struct{ in, out int }{{-1, 0}, {0, 0}, {1, 1}, {2, 1}, {3, 1}, {4, 4}, {5, 5}, {9, 5}} {
		b.SetCursor(v.in)
		if b.Cursor() != v.out {
			t.Errorf("%d: FAIL expected (%d) != actual (%d)", i, v.out, b.Cursor())
		}
	}
}

//-----------------------------------------------------------------------------

var testRunes = []rune{'a', 'b', ' ', '.', '_', 'é', 'つ', '☆', '😀', '\n'}

// apply an operation selected by op to the buffer
func applyOp(b *Buffer, op byte, r rune) {
	switch op % 14 {
	case 0:
		b.Insert(r)
	case 1:
		b.Backspace()
	case 2:
		b.Delete()
	case 3:
		b.Left()
	case 4:
		b.Right()
	case 5:
		b.Home()
	case 6:
		b.End()
	case 7:
		b.WordLeft(IsKeyword)
	case 8:
		b.WordRight(IsKeyword)
	case 9:
		b.KillToStart()
	case 10:
		b.KillToEnd()
	case 11:
		b.DeleteWord(IsKeyword)
	case 12:
		b.Transpose()
	case 13:
		b.SetCursor(int(r) % (len(b.text) + 1))
	}
}

// Random editing never leaves the cursor inside a character.
func Test_BufferRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 0; n < 200; n++ {
		b := &Buffer{}
		for i := 0; i < 100; i++ {
			applyOp(b, byte(rng.Intn(256)), testRunes[rng.Intn(len(testRunes))])
			checkBoundary(t, b)
			if !utf8.ValidString(b.text) {
				t.Fatalf("invalid utf8 %q", b.text)
			}
		}
	}
}

func Fuzz_Buffer(f *testing.F) {
	f.Add([]byte{0, 0, 0, 3, 12, 7, 1})
	f.Add([]byte{0, 5, 0, 9, 13, 11, 2})
	f.Fuzz(func(t *testing.T, ops []byte) {
		b := &Buffer{}
		for i, op := range ops {
			applyOp(b, op, testRunes[i%len(testRunes)])
			checkBoundary(t, b)
		}
	})
}

//-----------------------------------------------------------------------------
