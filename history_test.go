//-----------------------------------------------------------------------------
/*

History tests

*/
//-----------------------------------------------------------------------------

package prompt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

//-----------------------------------------------------------------------------

func newTestHistory(lines ...string) *History {
	h := NewHistory()
	for _, l := range lines {
		h.Push(l)
	}
	return h
}

func Test_HistoryBrowse(t *testing.T) {
	h := newTestHistory("a", "b", "c")
	var got []string
	for i := 0; i < 3; i++ {
		s, ok := h.Up("draft")
		if !ok {
			t.Fatalf("%d: FAIL up returned false", i)
		}
		got = append(got, s)
	}
	// stuck at the oldest entry
	s, _ := h.Up("ignored")
	got = append(got, s)
	for i := 0; i < 3; i++ {
		s, ok := h.Down()
		if !ok {
			t.Fatalf("%d: FAIL down returned false", i)
		}
		got = append(got, s)
	}
	if _, ok := h.Down(); ok {
		t.Errorf("FAIL down past the draft should return false")
	}
	expect := []string{"c", "b", "a", "a", "b", "c", "draft"}
	if diff := cmp.Diff(expect, got); diff != "" {
		t.Errorf("FAIL (-expected +actual):\n%s", diff)
	}
}

func Test_HistoryEmpty(t *testing.T) {
	h := NewHistory()
	if _, ok := h.Up("x"); ok {
		t.Errorf("FAIL up on empty history should return false")
	}
	if _, ok := h.Down(); ok {
		t.Errorf("FAIL down on empty history should return false")
	}
}

func Test_HistoryPush(t *testing.T) {
	h := newTestHistory("a", "a", "b", "a", "", "")
	expect := []string{"a", "b", "a", ""}
	if diff := cmp.Diff(expect, h.List()); diff != "" {
		t.Errorf("FAIL (-expected +actual):\n%s", diff)
	}
	// push ends browsing
	h.Up("")
	h.Push("z")
	if s, _ := h.Up(""); s != "z" {
		t.Errorf("FAIL expected (z) != actual (%s)", s)
	}
}

func Test_HistoryMaxlen(t *testing.T) {
	h := newTestHistory("1", "2", "3", "4", "5")
	h.SetMaxlen(3)
	if diff := cmp.Diff([]string{"3", "4", "5"}, h.List()); diff != "" {
		t.Errorf("FAIL (-expected +actual):\n%s", diff)
	}
	h.Push("6")
	if diff := cmp.Diff([]string{"4", "5", "6"}, h.List()); diff != "" {
		t.Errorf("FAIL (-expected +actual):\n%s", diff)
	}
	h.SetMaxlen(0)
	h.Push("7")
	if h.Len() != 0 {
		t.Errorf("FAIL expected empty history, got %v", h.List())
	}
}

func Test_HistoryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.txt")
	h := newTestHistory("one", `back\slash`, "two\nlines", "three")
	if err := h.Save(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	expectFile := "one\nback\\\\slash\ntwo\\nlines\nthree\n"
	if string(data) != expectFile {
		t.Errorf("FAIL expected (%q) != actual (%q)", expectFile, data)
	}
	g := NewHistory()
	if err := g.Load(path); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(h.List(), g.List()); diff != "" {
		t.Errorf("FAIL (-expected +actual):\n%s", diff)
	}
}

func Test_HistoryLoadErrors(t *testing.T) {
	dir := t.TempDir()
	h := NewHistory()
	if err := h.Load(filepath.Join(dir, "missing")); err != nil {
		t.Errorf("FAIL missing file: %v", err)
	}
	if err := h.Load(dir); err == nil {
		t.Errorf("FAIL loading a directory should fail")
	}
	if err := h.Save(filepath.Join(dir, "no", "such", "dir")); err == nil {
		t.Errorf("FAIL saving to a missing directory should fail")
	}
}

//-----------------------------------------------------------------------------
