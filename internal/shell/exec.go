package shell

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"

	"smallsh/internal/parser"
)

// streams holds the files opened for a command's redirections. A nil
// field means the corresponding standard stream is not redirected.
type streams struct {
	stdin  *os.File
	stdout *os.File
}

func (f *streams) Close() {
	if f.stdin != nil {
		f.stdin.Close()
	}
	if f.stdout != nil {
		f.stdout.Close()
	}
}

// runExternal launches a non-builtin command, waiting for it if it is a
// foreground command and registering it with the job tracker otherwise.
func (s *Shell) runExternal(cmd parser.Command) {
	plan := parser.PlanRedirections(cmd.Args)

	files, err := s.openRedirections(plan, cmd.Background)
	if err != nil {
		fmt.Fprintln(s.errOut, err)
		s.fail(cmd, 1)
		return
	}

	if len(plan.Args) == 0 {
		// A bare redirection clause still opens and truncates its
		// files, but there is no program left to run.
		files.Close()
		fmt.Fprintln(s.errOut, "missing command")
		s.fail(cmd, 1)
		return
	}

	c := exec.Command(plan.Args[0], plan.Args[1:]...)
	if files.stdin != nil {
		c.Stdin = files.stdin
	} else if !cmd.Background {
		c.Stdin = s.childIn
	}
	if files.stdout != nil {
		c.Stdout = files.stdout
	} else {
		c.Stdout = s.out
	}
	c.Stderr = s.errOut
	if cmd.Background {
		// Own process group, so terminal-generated SIGINT only reaches
		// foreground work.
		c.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	}

	if err := c.Start(); err != nil {
		files.Close()
		s.reportStartFailure(cmd, plan.Args[0], err)
		return
	}
	// The child owns its copies of the descriptors now.
	files.Close()

	if cmd.Background {
		fmt.Fprintf(s.out, "background pid is %d\n", c.Process.Pid)
		pid := c.Process.Pid
		go func() {
			s.done <- jobResult{pid: pid, status: waitStatus(c.Wait())}
		}()
		return
	}

	st := waitStatus(c.Wait())
	s.lastStatus = st
	if st.Kind == StatusSignaled {
		fmt.Fprintln(s.out, st)
	}
}

// openRedirections opens every file named by the plan, in token order, so
// that any open failure surfaces; the last file per direction wins. A
// background command falls back to the null device for any direction left
// unredirected. Errors are attributed to the offending filename.
func (s *Shell) openRedirections(plan parser.Redirection, background bool) (*streams, error) {
	files := &streams{}
	ok := false
	defer func() {
		if !ok {
			files.Close()
		}
	}()

	for _, name := range plan.Inputs {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %v", name, errCause(err))
		}
		if files.stdin != nil {
			files.stdin.Close()
		}
		files.stdin = f
	}
	for _, name := range plan.Outputs {
		f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return nil, fmt.Errorf("%s: %v", name, errCause(err))
		}
		if files.stdout != nil {
			files.stdout.Close()
		}
		files.stdout = f
	}

	if background {
		if files.stdin == nil {
			f, err := os.Open(os.DevNull)
			if err != nil {
				return nil, fmt.Errorf("%s: %v", os.DevNull, errCause(err))
			}
			files.stdin = f
		}
		if files.stdout == nil {
			f, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
			if err != nil {
				return nil, fmt.Errorf("%s: %v", os.DevNull, errCause(err))
			}
			files.stdout = f
		}
	}

	ok = true
	return files, nil
}

// reportStartFailure sorts a Start error into the failure taxonomy:
// lookup failures are scoped to the command (status 1), descriptor setup
// failures are the distinct status-2 class, and fork-level resource
// exhaustion is fatal to the whole shell.
func (s *Shell) reportStartFailure(cmd parser.Command, name string, err error) {
	var lookupErr *exec.Error
	switch {
	case errors.As(err, &lookupErr):
		fmt.Fprintf(s.errOut, "%s: %v\n", lookupErr.Name, lookupErr.Err)
		s.fail(cmd, 1)
	case errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.ENOMEM):
		fmt.Fprintf(s.errOut, "fork: %v\n", errCause(err))
		os.Exit(1)
	case errors.Is(err, unix.ENOENT) || errors.Is(err, unix.EACCES) || errors.Is(err, unix.ENOEXEC):
		fmt.Fprintf(s.errOut, "%s: %v\n", name, errCause(err))
		s.fail(cmd, 1)
	default:
		fmt.Fprintln(s.errOut, "cannot redirect input/output")
		s.fail(cmd, 2)
	}
}

// fail records a launch failure as the foreground status. Background
// launch failures leave the foreground status untouched.
func (s *Shell) fail(cmd parser.Command, code int) {
	if !cmd.Background {
		s.lastStatus = Status{Kind: StatusExited, Value: code}
	}
}

// waitStatus converts a Wait result into a termination descriptor.
func waitStatus(err error) Status {
	if err == nil {
		return Status{Kind: StatusExited, Value: 0}
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			return Status{Kind: StatusSignaled, Value: int(ws.Signal())}
		}
		return Status{Kind: StatusExited, Value: exitErr.ExitCode()}
	}
	return Status{Kind: StatusExited, Value: 1}
}

// errCause unwraps the syscall-level cause so messages read like
// "badfile: no such file or directory" rather than repeating the path.
func errCause(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
