package prompt

import (
	"errors"
	"testing"
)

//-----------------------------------------------------------------------------

func Test_ParseCursorReport(t *testing.T) {
	tests := []struct {
		in       string
		row, col int
		ok       bool
	}{
		{"\x1b[12;34R", 12, 34, true},
		{"\x1b[1;1R", 1, 1, true},
		{"\x1b[1;R", 0, 0, false},
		{"\x1b[12R", 0, 0, false},
		{"12;34R", 0, 0, false},
		{"", 0, 0, false},
	}
	for i, v := range tests {
		row, col, err := parseCursorReport([]byte(v.in))
		if (err == nil) != v.ok || row != v.row || col != v.col {
			t.Errorf("%d: FAIL %q expected (%d, %d, %v) != actual (%d, %d, %v)", i, v.in, v.row, v.col, v.ok, row, col, err)
		}
	}
}

func Test_ParseCursorPosition(t *testing.T) {
	for i, v := range []string{"", "1", "1;", ";1", "a;1", "1;2;3"} {
		if _, _, err := parseCursorPosition(v); !errors.Is(err, ErrBadResponse) {
			t.Errorf("%d: FAIL %q expected (%v) != actual (%v)", i, v, ErrBadResponse, err)
		}
	}
}

func Test_UnsupportedTerm(t *testing.T) {
	tests := []struct {
		term        string
		unsupported bool
	}{
		{"dumb", true},
		{"cons25", true},
		{"emacs", true},
		{"xterm-256color", false},
		{"", false},
	}
	for i, v := range tests {
		t.Setenv("TERM", v.term)
		if unsupportedTerm() != v.unsupported {
			t.Errorf("%d: FAIL %q expected (%v) != actual (%v)", i, v.term, v.unsupported, !v.unsupported)
		}
	}
}

//-----------------------------------------------------------------------------
