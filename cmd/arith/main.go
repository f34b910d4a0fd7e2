// Command arith evaluates arithmetic expressions, either interactively or from
// arguments and files.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jcgregorio/logger"
	cli "github.com/urfave/cli/v2"
	"golang.org/x/term"
)

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// appFlags holds the values of the global flags.
type appFlags struct {
	ConfigFile string
	Echo       bool
	Verbose    bool
	Strict     bool
	MaxDepth   int
	Format     string
}

// AsCliFlags returns the global flags bound to f.
func (f *appFlags) AsCliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Destination: &f.ConfigFile,
			Name:        "config",
			Usage:       "JSON5 configuration file",
		},
		&cli.BoolFlag{
			Destination: &f.Echo,
			Name:        "echo",
			Usage:       "print the parse tree of each expression",
		},
		&cli.BoolFlag{
			Destination: &f.Verbose,
			Name:        "verbose",
			Usage:       "log tokens and errors at debug level",
		},
		&cli.BoolFlag{
			Destination: &f.Strict,
			Name:        "strict",
			Usage:       "reject input following a complete expression",
		},
		&cli.IntFlag{
			Destination: &f.MaxDepth,
			Name:        "max_depth",
			Usage:       "maximum nesting depth of expressions, 0 for unlimited",
		},
		&cli.StringFlag{
			Destination: &f.Format,
			Name:        "fmt",
			Usage:       "fmt verb for results, e.g. %.3f",
		},
	}
}

// apply overrides cfg with the flags that were given explicitly.
func (f *appFlags) apply(c *cli.Context, cfg *Config) error {
	if c.IsSet("echo") {
		cfg.Echo = f.Echo
	}
	if c.IsSet("strict") {
		cfg.Strict = f.Strict
	}
	if c.IsSet("max_depth") {
		if f.MaxDepth < 0 {
			return fmt.Errorf("max_depth must not be negative, got %d", f.MaxDepth)
		}
		cfg.MaxDepth = f.MaxDepth
	}
	if c.IsSet("fmt") {
		cfg.Format = f.Format
	}
	return nil
}

func newApp(stdin io.Reader, stdout io.Writer, stderr logger.SyncWriter) *cli.App {
	var (
		flags appFlags
		ev    *calc
		cfg   Config
	)
	return &cli.App{
		Name:      "arith",
		Usage:     "Arithmetic Expression Evaluator",
		Flags:     (&flags).AsCliFlags(),
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Before: func(c *cli.Context) error {
			var err error
			cfg, err = LoadConfigFile(flags.ConfigFile)
			if err != nil {
				return err
			}
			if err := flags.apply(c, &cfg); err != nil {
				return err
			}
			log := logger.NewFromOptions(&logger.Options{
				SyncWriter:   stderr,
				IncludeDebug: flags.Verbose,
			})
			log.Debugf("config: %+v", cfg)
			ev = newCalc(cfg, log, flags.Verbose, stdout, isTerminal(stdout))
			return nil
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 0 {
				return fmt.Errorf("unexpected arguments %q; use the eval command to evaluate arguments", c.Args().Slice())
			}
			interactive := isTerminal(stdin)
			if cfg.Interactive != nil {
				interactive = *cfg.Interactive
			}
			return ev.repl(stdin, interactive)
		},
		Commands: []*cli.Command{
			{
				Name:      "eval",
				Usage:     "evaluate each argument as an expression",
				ArgsUsage: "EXPR...",
				Action: func(c *cli.Context) error {
					if c.NArg() == 0 {
						return errors.New("eval needs at least one expression")
					}
					return ev.evalArgs(c.Args().Slice())
				},
			},
			{
				Name:      "run",
				Usage:     "evaluate each line of a file, - for stdin",
				ArgsUsage: "FILE",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return errors.New("run needs exactly one file")
					}
					name := c.Args().First()
					if name == "-" {
						return ev.run(stdin)
					}
					f, err := os.Open(name)
					if err != nil {
						return err
					}
					defer f.Close()
					if err := ev.run(f); err != nil {
						return fmt.Errorf("%s: %w", name, err)
					}
					return nil
				},
			},
		},
	}
}

// isTerminal reports whether v is a file connected to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
