//-----------------------------------------------------------------------------
/*

Key Bindings

Map decoded input sequences to editing actions.

*/
//-----------------------------------------------------------------------------

package prompt

import (
	"fmt"
	"sort"
)

//-----------------------------------------------------------------------------

// Op is an editing operation.
type Op int

// Editing operations.
const (
	OpInsert      Op = iota // insert Action.Rune at the cursor
	OpEnter                 // submit the line (or continue a multi-line input)
	OpBackspace             // delete the character left of the cursor
	OpTab                   // complete or indent
	OpLeft                  // cursor left one character
	OpRight                 // cursor right one character
	OpHome                  // cursor to the start of the buffer
	OpEnd                   // cursor to the end of the buffer
	OpInterrupt             // cancel the line
	OpEOF                   // end of input
	OpSuspend               // stop the process (job control)
	OpUp                    // previous history entry
	OpDown                  // next history entry
	OpClear                 // clear the screen
	OpLeftWord              // cursor left one word
	OpRightWord             // cursor right one word
	OpDelete                // delete the character under the cursor
	OpKillToStart           // delete from the start of the buffer to the cursor
	OpKillToEnd             // delete from the cursor to the end of the buffer
	OpDeleteWord            // delete the word left of the cursor
	OpTranspose             // swap the characters around the cursor
)

var opNames = map[Op]string{
	OpInsert:      "insert",
	OpEnter:       "enter",
	OpBackspace:   "backspace",
	OpTab:         "tab",
	OpLeft:        "left",
	OpRight:       "right",
	OpHome:        "home",
	OpEnd:         "end",
	OpInterrupt:   "interrupt",
	OpEOF:         "eof",
	OpSuspend:     "suspend",
	OpUp:          "up",
	OpDown:        "down",
	OpClear:       "clear",
	OpLeftWord:    "left-word",
	OpRightWord:   "right-word",
	OpDelete:      "delete",
	OpKillToStart: "kill-to-start",
	OpKillToEnd:   "kill-to-end",
	OpDeleteWord:  "delete-word",
	OpTranspose:   "transpose",
}

func (op Op) String() string {
	if s, ok := opNames[op]; ok {
		return s
	}
	return fmt.Sprintf("op(%d)", int(op))
}

// Action is a semantic editing action.
type Action struct {
	Op   Op
	Rune rune // OpInsert only
}

// Insert returns an action inserting r.
func Insert(r rune) Action {
	return Action{Op: OpInsert, Rune: r}
}

func (a Action) String() string {
	if a.Op == OpInsert {
		return fmt.Sprintf("insert(%q)", a.Rune)
	}
	return a.Op.String()
}

//-----------------------------------------------------------------------------

// KeyMap maps input sequences to actions.
// Characters that are not in the map are inserted.
type KeyMap map[Sequence]Action

// DefaultKeyMap is the default emacs-like key binding table.
var DefaultKeyMap = KeyMap{
	Escape('\r'):    Insert('\n'),
	Control('M'):    {Op: OpEnter},
	Control('?'):    {Op: OpBackspace},
	Control('H'):    {Op: OpBackspace},
	Control('I'):    {Op: OpTab},
	Control('B'):    {Op: OpLeft},
	CSI("", 'D'):    {Op: OpLeft},
	Control('F'):    {Op: OpRight},
	CSI("", 'C'):    {Op: OpRight},
	Control('A'):    {Op: OpHome},
	CSI("", 'H'):    {Op: OpHome},
	Control('E'):    {Op: OpEnd},
	CSI("", 'F'):    {Op: OpEnd},
	Control('C'):    {Op: OpInterrupt},
	Control('D'):    {Op: OpEOF},
	Control('Z'):    {Op: OpSuspend},
	CSI("", 'A'):    {Op: OpUp},
	Control('P'):    {Op: OpUp},
	CSI("", 'B'):    {Op: OpDown},
	Control('N'):    {Op: OpDown},
	Control('L'):    {Op: OpClear},
	CSI("1;5", 'D'): {Op: OpLeftWord},
	CSI("1;3", 'D'): {Op: OpLeftWord},
	CSI("1;5", 'C'): {Op: OpRightWord},
	CSI("1;3", 'C'): {Op: OpRightWord},
	CSI("3", '~'):   {Op: OpDelete},
	Control('U'):    {Op: OpKillToStart},
	Control('K'):    {Op: OpKillToEnd},
	Control('W'):    {Op: OpDeleteWord},
	Control('T'):    {Op: OpTranspose},
}

// Lookup returns the action bound to a sequence.
func (m KeyMap) Lookup(s Sequence) (Action, bool) {
	if a, ok := m[s]; ok {
		return a, true
	}
	if s.Kind == KindChar {
		return Insert(s.Rune), true
	}
	return Action{}, false
}

// NextAction decodes sequences until one maps to an action.
// Unbound sequences are dropped.
func (m KeyMap) NextAction(d *Decoder) (Action, error) {
	for {
		s, err := d.Decode()
		if err != nil {
			return Action{}, err
		}
		if a, ok := m.Lookup(s); ok {
			return a, nil
		}
	}
}

// Bindings returns the key map as sorted [sequence, action] string pairs.
func (m KeyMap) Bindings() [][]string {
	rows := make([][]string, 0, len(m))
	for s, a := range m {
		rows = append(rows, []string{s.String(), a.String()})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i][1] != rows[j][1] {
			return rows[i][1] < rows[j][1]
		}
		return rows[i][0] < rows[j][0]
	})
	return rows
}

//-----------------------------------------------------------------------------
