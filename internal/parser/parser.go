// Package parser turns a raw input line into the argument vector,
// background flag, and redirection plan for one command.
package parser

import (
	"strconv"
	"strings"
)

const (
	// BackgroundToken marks a background command when it is the final token.
	BackgroundToken = "&"
	// InputRedirect and OutputRedirect each take the following token as a
	// filename.
	InputRedirect  = "<"
	OutputRedirect = ">"

	pidMarker = "$$"
)

// Command is the unit of work for one input line.
type Command struct {
	Args       []string
	Background bool
}

// Redirection is the result of scanning an argument vector for redirection
// operators. Args is the vector with the redirection clause stripped.
type Redirection struct {
	Args    []string
	Inputs  []string
	Outputs []string
}

// Tokenize splits a line on whitespace and expands every occurrence of the
// PID marker in each token. Empty tokens are never produced. At most
// maxArgs tokens are kept; maxArgs <= 0 means no limit.
func Tokenize(line string, pid, maxArgs int) []string {
	tokens := strings.Fields(line)
	if maxArgs > 0 && len(tokens) > maxArgs {
		tokens = tokens[:maxArgs]
	}

	pidStr := strconv.Itoa(pid)
	for i, tok := range tokens {
		tokens[i] = expandPID(tok, pidStr)
	}
	return tokens
}

// expandPID replaces each occurrence of the marker, rescanning from the
// start after every replacement. The result contains no marker, so a
// second pass is a no-op.
func expandPID(token, pid string) string {
	for {
		i := strings.Index(token, pidMarker)
		if i < 0 {
			return token
		}
		token = token[:i] + pid + token[i+len(pidMarker):]
	}
}

// Classify strips a trailing background token and marks the command
// background unless foreground-only mode is on, in which case the token is
// still consumed but the request is silently ignored.
func Classify(tokens []string, foregroundOnly bool) Command {
	cmd := Command{Args: tokens}
	if len(tokens) == 0 {
		return cmd
	}
	if tokens[len(tokens)-1] == BackgroundToken {
		cmd.Args = tokens[:len(tokens)-1]
		cmd.Background = !foregroundOnly
	}
	return cmd
}

// PlanRedirections scans the argument vector for redirection operators.
// Every operator's following token is recorded as a filename (missing
// filenames are recorded as "" and fail at open time). The returned Args
// is truncated at the first operator found; trailing tokens after a
// redirection clause are dropped along with it.
func PlanRedirections(args []string) Redirection {
	r := Redirection{Args: args}

	first := -1
	for i := 0; i < len(args); i++ {
		if args[i] != InputRedirect && args[i] != OutputRedirect {
			continue
		}
		if first < 0 {
			first = i
		}
		var name string
		if i+1 < len(args) {
			name = args[i+1]
		}
		if args[i] == InputRedirect {
			r.Inputs = append(r.Inputs, name)
		} else {
			r.Outputs = append(r.Outputs, name)
		}
		i++ // skip the filename slot
	}

	if first >= 0 {
		r.Args = args[:first]
	}
	return r
}
