package shell

import "fmt"

type StatusKind int

const (
	StatusExited StatusKind = iota
	StatusSignaled
)

// Status is the termination descriptor of a finished child: either a
// numeric exit code or the number of the signal that killed it.
type Status struct {
	Kind  StatusKind
	Value int
}

func (st Status) String() string {
	if st.Kind == StatusSignaled {
		return fmt.Sprintf("terminated by signal %d", st.Value)
	}
	return fmt.Sprintf("exit value %d", st.Value)
}
