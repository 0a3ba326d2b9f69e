//go:build unix

package prompt

import (
	"os"
	"os/signal"
	"time"

	"golang.org/x/sys/unix"
)

//-----------------------------------------------------------------------------

// suspend stops the process as the terminal would for ^Z and returns once it
// has been continued. A process in an orphaned group is never stopped, so
// the wait for SIGCONT is bounded.
func suspend() error {
	cont := make(chan os.Signal, 1)
	signal.Notify(cont, unix.SIGCONT)
	defer signal.Stop(cont)
	if err := unix.Kill(unix.Getpid(), unix.SIGTSTP); err != nil {
		return err
	}
	select {
	case <-cont:
	case <-time.After(time.Second):
	}
	return nil
}

// restoreOnSignal restores the terminal mode if the process is terminated
// while the terminal is in raw mode. The signal is raised again with the
// default disposition once the mode is restored.
func restoreOnSignal(t Terminal, mode Mode) (stop func()) {
	sigs := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigs, unix.SIGTERM, unix.SIGHUP, unix.SIGQUIT)
	go func() {
		select {
		case sig := <-sigs:
			t.SetMode(mode)
			signal.Stop(sigs)
			unix.Kill(unix.Getpid(), sig.(unix.Signal))
		case <-done:
		}
	}()
	return func() {
		signal.Stop(sigs)
		close(done)
	}
}

//-----------------------------------------------------------------------------
