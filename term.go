//-----------------------------------------------------------------------------
/*

Terminal Control

The platform specific terminal mode handling sits behind the Terminal
interface. The line editor never branches on the platform itself.

*/
//-----------------------------------------------------------------------------

package prompt

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

//-----------------------------------------------------------------------------

// Mode is a saved terminal mode. Its content is platform specific.
type Mode any

// Terminal controls the terminal mode.
type Terminal interface {
	// GetMode returns the current mode, false if the input is not a terminal.
	GetMode() (Mode, bool)
	// SetMode applies a mode.
	SetMode(m Mode) error
	// MakeRaw derives the raw variant of a mode: no line buffering, no echo
	// and no signal keys on input, output processing left enabled.
	MakeRaw(m Mode) Mode
	// Width returns the number of terminal columns.
	Width() (int, bool)
}

// Stdio returns the terminal on standard input and output.
func Stdio() Terminal {
	return newTerminal(os.Stdin, os.Stdout)
}

//-----------------------------------------------------------------------------

var unsupported = map[string]bool{
	"dumb":   true,
	"cons25": true,
	"emacs":  true,
}

// Return true if we know we don't support this terminal.
func unsupportedTerm() bool {
	_, ok := unsupported[os.Getenv("TERM")]
	return ok
}

//-----------------------------------------------------------------------------

// Parse the parameters of a cursor position report: "row;col".
func parseCursorPosition(params string) (row, col int, err error) {
	x := strings.Split(params, ";")
	if len(x) != 2 {
		return 0, 0, fmt.Errorf("%w: cursor position %q", ErrBadResponse, params)
	}
	row, err = strconv.Atoi(x[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: cursor position %q", ErrBadResponse, params)
	}
	col, err = strconv.Atoi(x[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: cursor position %q", ErrBadResponse, params)
	}
	return row, col, nil
}

// Parse a complete cursor position report: ESC [ row ; col R
func parseCursorReport(buf []byte) (row, col int, err error) {
	// at least 6 characters
	if len(buf) < 6 || buf[0] != keycodeESC || buf[1] != '[' || buf[len(buf)-1] != 'R' {
		return 0, 0, fmt.Errorf("%w: cursor report %q", ErrBadResponse, buf)
	}
	return parseCursorPosition(string(buf[2 : len(buf)-1]))
}

//-----------------------------------------------------------------------------
