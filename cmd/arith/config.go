package main

import (
	"fmt"
	"io"
	"os"

	"github.com/flynn/json5"

	"github.com/zephyrtronium/arith"
)

// Config controls the calculator. It is read from a JSON5 file; flags given on
// the command line override it.
type Config struct {
	// Prompt is printed before each line in interactive sessions.
	Prompt string `json:"prompt"`

	// Interactive forces the banner and prompt on or off. When unset, they
	// are shown only if stdin is a terminal.
	Interactive *bool `json:"interactive"`

	// Quit holds the characters which end an interactive session when they
	// appear anywhere in a line. Empty means only EOF ends the session.
	Quit string `json:"quit"`

	// Echo prints the parse tree of each expression before its value.
	Echo bool `json:"echo"`

	// Format is a fmt verb for results, e.g. "%.3f". Empty prints the
	// shortest exact decimal, with inf, -inf, and NaN for special values.
	Format string `json:"format"`

	// MaxDepth limits the nesting depth of expressions. Zero is unlimited.
	MaxDepth int `json:"max_depth"`

	// Strict rejects input left over after a complete expression.
	Strict bool `json:"strict"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Prompt: "> ",
		Quit:   "q",
	}
}

// LoadConfig decodes a JSON5 configuration on top of the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := json5.NewDecoder(r).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.MaxDepth < 0 {
		return cfg, fmt.Errorf("max_depth must not be negative, got %d", cfg.MaxDepth)
	}
	return cfg, nil
}

// LoadConfigFile reads a configuration file. An empty name gives the defaults.
func LoadConfigFile(name string) (Config, error) {
	if name == "" {
		return DefaultConfig(), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	cfg, err := LoadConfig(f)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

// ParseOptions converts the configuration to options for the parser.
func (c Config) ParseOptions() []arith.ParseOption {
	var opts []arith.ParseOption
	if c.MaxDepth > 0 {
		opts = append(opts, arith.MaxDepth(c.MaxDepth))
	}
	if c.Strict {
		opts = append(opts, arith.RejectTrailing())
	}
	return opts
}
