//go:build !unix

package prompt

import (
	"os"
	"os/signal"
)

//-----------------------------------------------------------------------------

// No job control.
func suspend() error {
	return nil
}

func restoreOnSignal(t Terminal, mode Mode) (stop func()) {
	sigs := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigs, os.Interrupt)
	go func() {
		select {
		case <-sigs:
			t.SetMode(mode)
			os.Exit(1)
		case <-done:
		}
	}()
	return func() {
		signal.Stop(sigs)
		close(done)
	}
}

//-----------------------------------------------------------------------------
