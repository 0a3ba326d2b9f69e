//go:build !linux && !darwin && !windows

package prompt

import (
	"errors"
	"os"
)

// No terminal mode support, input is always read a line at a time.
type lineTerminal struct{}

func newTerminal(in, out *os.File) Terminal {
	return lineTerminal{}
}

func (lineTerminal) GetMode() (Mode, bool) { return nil, false }

func (lineTerminal) SetMode(m Mode) error { return errors.New("set mode: not supported") }

func (lineTerminal) MakeRaw(m Mode) Mode { return m }

func (lineTerminal) Width() (int, bool) { return 0, false }
