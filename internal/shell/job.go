package shell

import "fmt"

// jobResult is what a background job's wait goroutine delivers once the
// child terminates. The shell holds no job table; a child is identified
// solely by its PID.
type jobResult struct {
	pid    int
	status Status
}

// reapBackground drains every completed background job without blocking
// and announces each one. Safe to call with nothing pending; runs before
// each prompt.
func (s *Shell) reapBackground() {
	for {
		select {
		case res := <-s.done:
			fmt.Fprintf(s.out, "Background pid %d is done: %s\n", res.pid, res.status)
		default:
			return
		}
	}
}
