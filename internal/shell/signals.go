package shell

import (
	"fmt"
	"os/signal"

	"golang.org/x/sys/unix"
)

const (
	enteringForegroundOnly = "\nEntering foreground-only mode (& is now ignored)\n"
	exitingForegroundOnly  = "\nExiting foreground-only mode\n"
)

func (s *Shell) setupSignalHandling() {
	signal.Notify(s.signalChan, unix.SIGINT, unix.SIGTSTP)
	go s.handleSignals()
}

func (s *Shell) handleSignals() {
	for sig := range s.signalChan {
		switch sig {
		case unix.SIGINT:
			// Swallowed. Children exec with default dispositions, so a
			// foreground child still dies to Ctrl-C while the shell
			// keeps reading.
		case unix.SIGTSTP:
			s.toggleForegroundOnly()
		}
	}
}

// toggleForegroundOnly flips foreground-only mode and announces the new
// state immediately. The flag is a machine-word atomic; the prompt loop
// reads it once per command with no lock across the signal boundary.
func (s *Shell) toggleForegroundOnly() {
	if s.foregroundOnly.Load() {
		s.foregroundOnly.Store(false)
		fmt.Fprint(s.out, exitingForegroundOnly)
	} else {
		s.foregroundOnly.Store(true)
		fmt.Fprint(s.out, enteringForegroundOnly)
	}
}
