//-----------------------------------------------------------------------------
/*

Tab Completion

The first tab asks the editor for candidates. No candidates indents, a single
candidate is accepted directly and several candidates start a cycle: each
further tab restores the buffer as it was when completion started and
applies the next candidate. Any other key ends the cycle.

*/
//-----------------------------------------------------------------------------

package prompt

import "strings"

//-----------------------------------------------------------------------------

// Completion is a set of candidates for the byte range [Start, End) of the
// buffer.
type Completion struct {
	Start      int
	End        int
	Candidates []string
}

// completion cycling state
type completer struct {
	active     bool
	start, end int
	candidates []string
	index      int    // candidate currently applied
	snapshot   string // buffer when the cycle started
	cursor     int    // cursor when the cycle started
}

// reset ends any completion cycle.
func (c *completer) reset() {
	*c = completer{}
}

// tab completes or indents the buffer.
func (c *completer) tab(e Editor, b *Buffer) {
	if c.active {
		// restore the original buffer and apply the next candidate
		b.text, b.cursor = c.snapshot, c.cursor
		c.index = (c.index + 1) % len(c.candidates)
		b.ReplaceRange(c.start, c.end, c.candidates[c.index])
		return
	}
	comp := e.Complete(b.String(), b.Cursor())
	if comp == nil || len(comp.Candidates) == 0 {
		// nothing to complete
		e.Indent(b)
		return
	}
	if len(comp.Candidates) == 1 {
		// unambiguous, accept it
		b.ReplaceRange(comp.Start, comp.End, comp.Candidates[0])
		return
	}
	*c = completer{
		active:     true,
		start:      comp.Start,
		end:        comp.End,
		candidates: comp.Candidates,
		snapshot:   b.text,
		cursor:     b.cursor,
	}
	b.ReplaceRange(c.start, c.end, c.candidates[0])
}

//-----------------------------------------------------------------------------

// Split a string on whitespace and return the substring indices.
func splitIndex(s string) [][2]int {
	// start and end with whitespace
	ws := true
	s += " "
	indices := make([][2]int, 0, 10)
	var start int
	for i, c := range s {
		if !ws && c == ' ' {
			// non-whitespace to whitespace
			ws = true
			indices = append(indices, [2]int{start, i})
		} else if ws && c != ' ' {
			// whitespace to non-whitespace
			start = i
			ws = false
		}
	}
	return indices
}

// WordRange returns the byte range of the space delimited word containing the
// cursor. If the cursor is on whitespace the range is empty.
func WordRange(buffer string, cursor int) (start, end int) {
	for _, idx := range splitIndex(buffer) {
		if idx[0] <= cursor && cursor <= idx[1] {
			return idx[0], idx[1]
		}
	}
	return cursor, cursor
}

//-----------------------------------------------------------------------------

// Words is an Editor that completes the word under the cursor from a list.
type Words struct {
	BaseEditor
	List []string
}

// Complete returns the words in the list starting with the part of the word
// before the cursor. There is nothing to complete at whitespace.
func (w Words) Complete(buffer string, cursor int) *Completion {
	start, end := WordRange(buffer, cursor)
	prefix := buffer[start:cursor]
	if prefix == "" {
		return nil
	}
	var matches []string
	for _, s := range w.List {
		if strings.HasPrefix(s, prefix) {
			matches = append(matches, s)
		}
	}
	if len(matches) == 0 {
		return nil
	}
	return &Completion{Start: start, End: end, Candidates: matches}
}

//-----------------------------------------------------------------------------
