//-----------------------------------------------------------------------------
/*

Key Code Debugging

*/
//-----------------------------------------------------------------------------

package prompt

import (
	"errors"
	"fmt"
	"io"
)

//-----------------------------------------------------------------------------

// PrintKeycodes puts the terminal in raw mode and prints the bytes, the
// decoded sequence and the bound action for each key until ^C is pressed.
func (p *Prompt) PrintKeycodes(m KeyMap) error {
	mode, ok := p.term.GetMode()
	if !ok {
		return errors.New("input is not a terminal")
	}
	if err := p.term.SetMode(p.term.MakeRaw(mode)); err != nil {
		return err
	}
	defer func() {
		if err := p.term.SetMode(mode); err != nil {
			p.log.Error("restore terminal mode", "err", err)
		}
	}()

	fmt.Fprintf(p.out, "Key code debugging mode.\r\n")
	fmt.Fprintf(p.out, "Press keys to see their sequences. Press ctrl-c to exit.\r\n")

	for {
		s, err := p.dec.Decode()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		action := "-"
		if a, ok := m.Lookup(s); ok {
			action = a.String()
		}
		row := []string{fmt.Sprintf("% x", p.dec.Bytes()), s.String(), action}
		fmt.Fprintf(p.out, "%s\r\n", TableString([][]string{row}, []int{16, 24, 0}, 1))
		if s == Control('C') {
			return nil
		}
	}
}

//-----------------------------------------------------------------------------
