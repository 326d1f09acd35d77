package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

const (
	DefaultPrompt        = ": "
	DefaultCommentPrefix = "#"
	DefaultMaxLineChars  = 2048
	DefaultMaxArgs       = 512
)

type Config struct {
	Prompt        string `yaml:"prompt"`
	CommentPrefix string `yaml:"comment_prefix"`
	MaxLineChars  int    `yaml:"max_line_chars"`
	MaxArgs       int    `yaml:"max_args"`
	HistoryFile   string `yaml:"history_file"`
	HomeDir       string `yaml:"home_dir"`
}

// Load reads the config file if it exists and fills in defaults for
// anything left unset. A missing file is not an error; the shell runs
// with pure defaults. An empty HistoryFile keeps history in memory only.
func Load(file string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(file)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	case !os.IsNotExist(err):
		return nil, err
	}

	if cfg.HomeDir == "" {
		cfg.HomeDir, err = os.UserHomeDir()
		if err != nil {
			return nil, err
		}
	}
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}
	if cfg.CommentPrefix == "" {
		cfg.CommentPrefix = DefaultCommentPrefix
	}
	if cfg.MaxLineChars == 0 {
		cfg.MaxLineChars = DefaultMaxLineChars
	}
	if cfg.MaxArgs == 0 {
		cfg.MaxArgs = DefaultMaxArgs
	}

	return cfg, nil
}
