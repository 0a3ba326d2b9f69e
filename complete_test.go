//-----------------------------------------------------------------------------
/*

Completion tests

*/
//-----------------------------------------------------------------------------

package prompt

import (
	"testing"
)

//-----------------------------------------------------------------------------

func indexCompare(a, b [][2]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i][0] != b[i][0] {
			return false
		}
		if a[i][1] != b[i][1] {
			return false
		}
	}
	return true
}

func Test_SplitIndex(t *testing.T) {
	tests := []struct {
		s string
		r [][2]int
	}{
		{"aaa bb  ccccc      ddddd", [][2]int{{0, 3}, {4, 6}, {8, 13}, {19, 24}}},
		{"", [][2]int{}},
		{"a", [][2]int{{0, 1}}},
		{" つの x", [][2]int{{1, 7}, {8, 9}}},
	}
	for i, v := range tests {
		r := splitIndex(v.s)
		if !indexCompare(r, v.r) {
			t.Errorf("%d: FAIL expected (%v) != actual (%v)", i, v.r, r)
		}
	}
}

func Test_WordRange(t *testing.T) {
	tests := []struct {
		in         string
		start, end int
	}{
		{"|", 0, 0},
		{"he|", 0, 2},
		{"h|e", 0, 2},
		{"ab  cd|e", 4, 7},
		{"ab | cd", 3, 3},
		{"ab| cd", 0, 2},
	}
	for i, v := range tests {
		b := bufferAt(v.in)
		start, end := WordRange(b.String(), b.Cursor())
		if start != v.start || end != v.end {
			t.Errorf("%d: FAIL expected (%d, %d) != actual (%d, %d)", i, v.start, v.end, start, end)
		}
	}
}

//-----------------------------------------------------------------------------

func Test_CompleteCycle(t *testing.T) {
	e := Words{List: []string{"hello", "help", "world"}}
	b := bufferAt("he|")
	c := &completer{}

	expect := []string{"hello|", "help|", "hello|", "help|"}
	for i, x := range expect {
		c.tab(e, b)
		if b.marked() != x {
			t.Errorf("%d: FAIL expected (%q) != actual (%q)", i, x, b.marked())
		}
	}
	// any other key ends the cycle, the next tab starts from the new buffer
	c.reset()
	b.Insert(' ')
	c.tab(e, b)
	if b.marked() != "help "+IndentUnit+"|" {
		t.Errorf("FAIL expected indent, got (%q)", b.marked())
	}
}

func Test_CompleteSingle(t *testing.T) {
	e := Words{List: []string{"hello", "world"}}
	b := bufferAt("say w|")
	c := &completer{}
	c.tab(e, b)
	if b.marked() != "say world|" {
		t.Errorf("FAIL expected (%q) != actual (%q)", "say world|", b.marked())
	}
	if c.active {
		t.Errorf("FAIL a single candidate should not start a cycle")
	}
}

func Test_CompleteNone(t *testing.T) {
	b := bufferAt("x|")
	c := &completer{}
	c.tab(BaseEditor{}, b)
	if b.marked() != "x"+IndentUnit+"|" {
		t.Errorf("FAIL expected indent, got (%q)", b.marked())
	}
}

// n candidates: tab n+1 times gives the first candidate again.
func Test_CompletePeriod(t *testing.T) {
	list := []string{"a0", "a1", "a2", "a3", "a4"}
	e := Words{List: list}
	for n := 2; n <= len(list); n++ {
		e.List = list[:n]
		b := bufferAt("a|")
		c := &completer{}
		c.tab(e, b)
		first := b.marked()
		for i := 0; i < n; i++ {
			c.tab(e, b)
		}
		if b.marked() != first {
			t.Errorf("%d: FAIL expected (%q) != actual (%q)", n, first, b.marked())
		}
	}
}

//-----------------------------------------------------------------------------
