//go:build linux || darwin

//-----------------------------------------------------------------------------
/*

POSIX terminal control: termios.

*/
//-----------------------------------------------------------------------------

package prompt

import (
	"fmt"
	"os"
	"syscall"

	"github.com/creack/termios/raw"
	"github.com/mattn/go-isatty"
	"golang.org/x/sys/unix"
)

//-----------------------------------------------------------------------------

type unixTerminal struct {
	in, out *os.File
}

func newTerminal(in, out *os.File) Terminal {
	return &unixTerminal{in: in, out: out}
}

func (t *unixTerminal) GetMode() (Mode, bool) {
	fd := t.in.Fd()
	// make sure this is a tty
	if !isatty.IsTerminal(fd) {
		return nil, false
	}
	mode, err := raw.TcGetAttr(fd)
	if err != nil {
		return nil, false
	}
	return mode, true
}

func (t *unixTerminal) SetMode(m Mode) error {
	mode, ok := m.(*raw.Termios)
	if !ok {
		return fmt.Errorf("set mode: unexpected mode %T", m)
	}
	if err := raw.TcSetAttr(t.in.Fd(), mode); err != nil {
		return fmt.Errorf("set mode: %w", err)
	}
	return nil
}

func (t *unixTerminal) MakeRaw(m Mode) Mode {
	mode := *m.(*raw.Termios)
	mode.Iflag &^= (syscall.IGNBRK | syscall.BRKINT | syscall.PARMRK | syscall.ISTRIP | syscall.INLCR | syscall.IGNCR | syscall.ICRNL | syscall.IXON)
	// keep OPOST so the output keeps its newline translation
	mode.Oflag |= syscall.OPOST
	mode.Lflag &^= (syscall.ECHO | syscall.ECHONL | syscall.ICANON | syscall.ISIG | syscall.IEXTEN)
	mode.Cflag &^= (syscall.CSIZE | syscall.PARENB)
	mode.Cflag |= syscall.CS8
	mode.Cc[syscall.VMIN] = 1
	mode.Cc[syscall.VTIME] = 0
	return &mode
}

func (t *unixTerminal) Width() (int, bool) {
	// try using the ioctl to get the number of cols
	ws, err := unix.IoctlGetWinsize(int(t.out.Fd()), unix.TIOCGWINSZ)
	if err == nil && ws.Col > 0 {
		return int(ws.Col), true
	}
	// the ioctl failed - try using the terminal itself
	return probeWidth(int(t.in.Fd()), int(t.out.Fd()))
}

//-----------------------------------------------------------------------------
