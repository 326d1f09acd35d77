package shell

import (
	"fmt"
	"os"

	"smallsh/internal/parser"
)

// executeBuiltin dispatches the built-in commands. These run in the
// shell's own process and never fork. The second return value reports
// whether the session should end.
func (s *Shell) executeBuiltin(cmd parser.Command) (handled, quit bool) {
	switch cmd.Args[0] {
	case "exit":
		return true, true
	case "cd":
		s.changeDirectory(cmd.Args[1:])
		return true, false
	case "status":
		fmt.Fprintln(s.out, s.lastStatus)
		return true, false
	}
	return false, false
}

// changeDirectory moves to the given directory, or home with no argument.
// Failure is silent: no message, no status change, directory unchanged.
func (s *Shell) changeDirectory(args []string) {
	dir := s.config.HomeDir
	if len(args) > 0 {
		dir = args[0]
	}
	_ = os.Chdir(dir)
}
