package main

import (
	"fmt"
	"os"

	"smallsh/internal/config"
	"smallsh/internal/shell"
)

// configFile is looked up in the working directory; a missing file means
// defaults, so the shell takes no arguments and starts prompting
// immediately.
const configFile = "smallsh.yml"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "smallsh: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	s, err := shell.New(cfg)
	if err != nil {
		return err
	}
	s.Run()
	return nil
}
