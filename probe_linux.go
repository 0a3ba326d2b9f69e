//go:build linux

//-----------------------------------------------------------------------------
/*

Terminal width probing with cursor position reports.

*/
//-----------------------------------------------------------------------------

package prompt

import (
	"fmt"
	"syscall"

	"github.com/deadsy/go-fdset"
)

//-----------------------------------------------------------------------------

var probeTimeout = syscall.Timeval{Sec: 0, Usec: 20 * 1000}

// Read a byte from fd. Return false if nothing is readable within the timeout.
func readTimeout(fd int) (byte, bool) {
	// use select() for the timeout
	rd := syscall.FdSet{}
	fdset.Set(fd, &rd)
	tv := probeTimeout
	n, err := syscall.Select(fd+1, &rd, nil, nil, &tv)
	if err != nil || n == 0 {
		return 0, false
	}
	var buf [1]byte
	n, err = syscall.Read(fd, buf[:])
	if err != nil || n != 1 {
		return 0, false
	}
	return buf[0], true
}

// Get the horizontal cursor position.
func cursorColumn(ifd, ofd int) (int, error) {
	// query the cursor location
	if _, err := syscall.Write(ofd, []byte("\x1b[6n")); err != nil {
		return 0, err
	}
	// read the response: ESC [ rows ; cols R
	buf := make([]byte, 0, 32)
	for len(buf) < 32 {
		c, ok := readTimeout(ifd)
		if !ok {
			break
		}
		buf = append(buf, c)
		if c == 'R' {
			break
		}
	}
	_, col, err := parseCursorReport(buf)
	return col, err
}

// Get the number of columns by moving to the right margin and asking the
// terminal where the cursor is.
func probeWidth(ifd, ofd int) (int, bool) {
	start, err := cursorColumn(ifd, ofd)
	if err != nil {
		return 0, false
	}
	// go to right margin and get position
	if _, err := syscall.Write(ofd, []byte("\x1b[999C")); err != nil {
		return 0, false
	}
	cols, err := cursorColumn(ifd, ofd)
	if err != nil {
		return 0, false
	}
	// restore the position
	if cols > start {
		syscall.Write(ofd, []byte(fmt.Sprintf("\x1b[%dD", cols-start)))
	}
	return cols, true
}

//-----------------------------------------------------------------------------
