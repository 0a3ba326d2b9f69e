//-----------------------------------------------------------------------------
/*

Display

Render the prompt, buffer and hint, and keep the terminal cursor where the
buffer cursor is.

The rendered block starts at the row the prompt was first written on. Each
logical line of the buffer gets its own prompt and wraps onto as many screen
rows as it needs. The renderer remembers which row of the block the terminal
cursor is on so a redraw can go back to the top of the block, clear to the end
of the screen and write everything again.

Widths are measured with runewidth on the unstyled text. Highlighting must not
change the displayed width.

*/
//-----------------------------------------------------------------------------

package prompt

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

//-----------------------------------------------------------------------------

// Use this value if we can't work out how many columns the terminal has.
const DefaultCols = 80

// Wrap returns the number of screen rows taken by n columns of text on a
// terminal w columns wide, and the number of columns used on the last row.
// Empty text still takes a row. A row that is exactly full reports w columns,
// the cursor only moves to a fresh row once more text follows.
func Wrap(n, w int) (rows, cols int) {
	if w < 1 {
		w = 1
	}
	if n <= 0 {
		return 1, 0
	}
	rows = (n + w - 1) / w
	cols = n % w
	if cols == 0 {
		cols = w
	}
	return rows, cols
}

// wrapText is Wrap for a string. A wide character that doesn't fit on the
// rest of a row goes to the next row and the cell it leaves is counted.
func wrapText(s string, w int) (rows, cols int) {
	if w < 1 {
		w = 1
	}
	rows = 1
	for _, c := range s {
		cw := runewidth.RuneWidth(c)
		if cw == 0 {
			continue
		}
		if cols > 0 && cols+cw > w {
			rows++
			cols = 0
		}
		cols += cw
	}
	return rows, cols
}

//-----------------------------------------------------------------------------

// frame is the state to render.
type frame struct {
	prompt    string // primary prompt
	multiline string // continuation prompt
	text      string // buffer content
	cursor    int    // buffer cursor
	hint      string // hint text, empty for none
}

// the plain prompt for logical line i
func (f *frame) promptFor(i int) string {
	if i == 0 {
		return f.prompt
	}
	return f.multiline
}

// geometry is the screen layout of a frame.
type geometry struct {
	lines     []int // screen rows for each logical line
	extra     int   // logical line followed by a fresh cursor row, -1 for none
	hint      int   // screen rows for the hint
	cursorRow int   // cursor row relative to the top of the block
	cursorCol int   // cursor column
}

// total number of screen rows in the block
func (g *geometry) rows() int {
	n := g.hint
	for _, r := range g.lines {
		n += r
	}
	return n
}

// same reports whether two layouts occupy the same rows.
func (g *geometry) same(h *geometry) bool {
	if h == nil || g.hint != h.hint || g.extra != h.extra || len(g.lines) != len(h.lines) {
		return false
	}
	for i := range g.lines {
		if g.lines[i] != h.lines[i] {
			return false
		}
	}
	return true
}

// measure computes the layout of a frame on a terminal w columns wide.
// The buffer and the prefix up to the cursor go through the same wrapText.
func measure(f *frame, w int) *geometry {
	lines := strings.Split(f.text, "\n")
	before := f.text[:f.cursor]
	cursorLine := strings.Count(before, "\n")
	cursorText := before[strings.LastIndexByte(before, '\n')+1:]

	g := &geometry{lines: make([]int, len(lines)), extra: -1}
	row := 0
	for i, l := range lines {
		p := f.promptFor(i)
		rows, _ := wrapText(p+l, w)
		if i == cursorLine {
			crows, ccols := wrapText(p+cursorText, w)
			if ccols == w {
				// the cursor sits past a full row: it goes to column 0 of the next row
				crows, ccols = crows+1, 0
			}
			if crows > rows {
				// that row does not exist yet, the line needs one more
				rows = crows
				g.extra = i
			}
			g.cursorRow = row + crows - 1
			g.cursorCol = ccols
		}
		g.lines[i] = rows
		row += rows
	}
	if f.hint != "" {
		for _, l := range strings.Split(f.hint, "\n") {
			rows, _ := wrapText(l, w)
			g.hint += rows
		}
	}
	return g
}

//-----------------------------------------------------------------------------

// renderer writes frames to the terminal.
// Output is collected and written once per flush.
type renderer struct {
	out   io.Writer
	buf   bytes.Buffer
	width int       // terminal columns
	row   int       // terminal cursor row relative to the top of the block
	last  *geometry // layout of the last redraw
}

func newRenderer(out io.Writer) *renderer {
	return &renderer{out: out, width: DefaultCols}
}

func (r *renderer) up(n int) {
	if n > 0 {
		fmt.Fprintf(&r.buf, "\x1b[%dA", n)
	}
}

func (r *renderer) down(n int) {
	if n > 0 {
		fmt.Fprintf(&r.buf, "\x1b[%dB", n)
	}
}

// go to the start of the row, then col columns right
func (r *renderer) column(col int) {
	r.buf.WriteByte('\r')
	if col > 0 {
		fmt.Fprintf(&r.buf, "\x1b[%dC", col)
	}
}

// redraw clears the block and writes the whole frame.
func (r *renderer) redraw(e Editor, f *frame) {
	g := measure(f, r.width)
	// First step: go to the top row of the block and clear to the end of the screen.
	r.up(r.row)
	r.buf.WriteString("\r\x1b[J")
	// Write each logical line with its prompt.
	lines := strings.Split(f.text, "\n")
	hl := strings.Split(e.Highlight(f.text), "\n")
	if len(hl) != len(lines) {
		// the highlighter broke the line structure, don't use it
		hl = lines
	}
	for i, l := range hl {
		if i > 0 {
			r.buf.WriteString("\r\n")
		}
		r.buf.WriteString(e.HighlightPrompt(f.promptFor(i), i > 0))
		r.buf.WriteString("\x1b[m")
		r.buf.WriteString(l)
		r.buf.WriteString("\x1b[m")
		if i == g.extra {
			// We are at the very end of the screen row with the cursor, emit a
			// newline so the cursor can go to the first column.
			r.buf.WriteString("\r\n")
		}
	}
	// Show hints (if any)
	if g.hint > 0 {
		r.buf.WriteString("\r\n")
		r.buf.WriteString(strings.ReplaceAll(e.HighlightHint(f.hint), "\n", "\r\n"))
		r.buf.WriteString("\x1b[m")
	}
	// Move the cursor from the end of the block to its position.
	r.up(g.rows() - 1 - g.cursorRow)
	r.column(g.cursorCol)
	r.row = g.cursorRow
	r.last = g
}

// move repositions the cursor without rewriting the block.
// It redraws if the layout has changed.
func (r *renderer) move(e Editor, f *frame) {
	g := measure(f, r.width)
	if !g.same(r.last) {
		r.redraw(e, f)
		return
	}
	if g.cursorRow < r.row {
		r.up(r.row - g.cursorRow)
	} else {
		r.down(g.cursorRow - r.row)
	}
	r.column(g.cursorCol)
	r.row = g.cursorRow
}

// finish redraws the frame without a hint and leaves the cursor on a new row
// below the block. The next frame starts a new block.
func (r *renderer) finish(e Editor, f *frame) {
	plain := *f
	plain.hint = ""
	plain.cursor = len(plain.text)
	r.redraw(e, &plain)
	if r.last.extra < 0 {
		// the last row is already a fresh row when the text fills it exactly
		r.buf.WriteString("\r\n")
	}
	r.reset()
}

// reset forgets the current block, the cursor is at the start of a new one.
func (r *renderer) reset() {
	r.row = 0
	r.last = nil
}

// clear clears the screen and redraws the frame at the top.
func (r *renderer) clear(e Editor, f *frame) {
	r.buf.WriteString("\x1b[H\x1b[2J")
	r.reset()
	r.redraw(e, f)
}

// flush writes the pending output.
func (r *renderer) flush() error {
	if r.buf.Len() == 0 {
		return nil
	}
	_, err := r.out.Write(r.buf.Bytes())
	r.buf.Reset()
	if err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

//-----------------------------------------------------------------------------
