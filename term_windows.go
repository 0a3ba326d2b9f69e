//go:build windows

//-----------------------------------------------------------------------------
/*

Windows terminal control: console modes.

*/
//-----------------------------------------------------------------------------

package prompt

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/sys/windows"
)

//-----------------------------------------------------------------------------

type consoleMode struct {
	in, out uint32
}

type windowsTerminal struct {
	in, out windows.Handle
}

func newTerminal(in, out *os.File) Terminal {
	return &windowsTerminal{in: windows.Handle(in.Fd()), out: windows.Handle(out.Fd())}
}

func (t *windowsTerminal) GetMode() (Mode, bool) {
	if !isatty.IsTerminal(uintptr(t.in)) {
		return nil, false
	}
	var m consoleMode
	if err := windows.GetConsoleMode(t.in, &m.in); err != nil {
		return nil, false
	}
	if err := windows.GetConsoleMode(t.out, &m.out); err != nil {
		return nil, false
	}
	return m, true
}

func (t *windowsTerminal) SetMode(m Mode) error {
	mode, ok := m.(consoleMode)
	if !ok {
		return fmt.Errorf("set mode: unexpected mode %T", m)
	}
	if err := windows.SetConsoleMode(t.in, mode.in); err != nil {
		return fmt.Errorf("set mode: %w", err)
	}
	if err := windows.SetConsoleMode(t.out, mode.out); err != nil {
		return fmt.Errorf("set mode: %w", err)
	}
	return nil
}

func (t *windowsTerminal) MakeRaw(m Mode) Mode {
	mode := m.(consoleMode)
	mode.in &^= windows.ENABLE_ECHO_INPUT | windows.ENABLE_LINE_INPUT | windows.ENABLE_PROCESSED_INPUT
	mode.in |= windows.ENABLE_VIRTUAL_TERMINAL_INPUT
	mode.out |= windows.ENABLE_PROCESSED_OUTPUT | windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING
	return mode
}

func (t *windowsTerminal) Width() (int, bool) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(t.out, &info); err != nil {
		return 0, false
	}
	return int(info.Window.Right-info.Window.Left) + 1, true
}

//-----------------------------------------------------------------------------
