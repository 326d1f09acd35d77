package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"

	"smallsh/internal/config"
	"smallsh/internal/history"
	"smallsh/internal/parser"
)

type Shell struct {
	config  *config.Config
	history *history.History

	reader  *bufio.Reader
	childIn io.Reader
	out     io.Writer
	errOut  io.Writer

	pid            int
	foregroundOnly atomic.Bool
	lastStatus     Status

	done       chan jobResult
	signalChan chan os.Signal
}

func New(cfg *config.Config) (*Shell, error) {
	hist, err := history.New(cfg.HistoryFile)
	if err != nil {
		return nil, fmt.Errorf("error initializing history: %w", err)
	}

	return &Shell{
		config:     cfg,
		history:    hist,
		reader:     bufio.NewReader(os.Stdin),
		childIn:    os.Stdin,
		out:        os.Stdout,
		errOut:     os.Stderr,
		pid:        os.Getpid(),
		done:       make(chan jobResult, 16),
		signalChan: make(chan os.Signal, 1),
	}, nil
}

// Run drives the prompt loop until the exit builtin or end of input.
// Finished background jobs are reaped and announced before every prompt.
func (s *Shell) Run() {
	s.setupSignalHandling()
	defer signal.Stop(s.signalChan)

	for {
		s.reapBackground()
		fmt.Fprint(s.out, s.config.Prompt)

		line, err := s.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			// Interrupted read: discard and re-prompt.
			continue
		}
		eof := errors.Is(err, io.EOF)

		line = strings.TrimSuffix(line, "\n")
		if !s.skipLine(line) && len(line) <= s.config.MaxLineChars {
			s.history.Add(line)
			if quit := s.execute(line); quit {
				break
			}
		}
		if eof {
			break
		}
	}

	if err := s.history.Save(); err != nil {
		fmt.Fprintf(s.errOut, "Error saving history: %v\n", err)
	}
}

// skipLine filters blank lines and comment lines before they reach the
// tokenizer.
func (s *Shell) skipLine(line string) bool {
	if strings.TrimSpace(line) == "" {
		return true
	}
	return strings.HasPrefix(line, s.config.CommentPrefix)
}

// execute parses and dispatches one line. It returns true when the exit
// builtin ends the session.
func (s *Shell) execute(line string) bool {
	tokens := parser.Tokenize(line, s.pid, s.config.MaxArgs)
	if len(tokens) == 0 {
		return false
	}

	cmd := parser.Classify(tokens, s.foregroundOnly.Load())
	if len(cmd.Args) == 0 {
		// The line was a bare background token.
		return false
	}

	if handled, quit := s.executeBuiltin(cmd); handled {
		return quit
	}
	s.runExternal(cmd)
	return false
}
