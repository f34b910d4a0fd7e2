package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/jcgregorio/logger"

	"github.com/zephyrtronium/arith"
)

const (
	goodbye  = "Thanks for using the Arithmetic Expression Evaluator!"
	badInput = "Error in evaluating expression. Please enter valid expression"
)

var banner = []string{
	"Hello! Welcome to Arithmetic Expression Evaluator!",
	"You can calculate the value of expressions such as: 2*3+4*(4-5)+2^3/4.",
	"Allowed numbers: positive, negative and decimals.",
	"Supported operations: Add, Subtract, Multiply, Divide, PowerOf(^).",
	"Enter your arithmetic expression below:",
}

// calc evaluates lines of input and writes the results.
type calc struct {
	cfg     Config
	opts    []arith.ParseOption
	log     *logger.Logger
	verbose bool
	out     io.Writer
	errc    *color.Color
}

func newCalc(cfg Config, log *logger.Logger, verbose bool, out io.Writer, colored bool) *calc {
	errc := color.New(color.FgRed)
	if colored {
		errc.EnableColor()
	} else {
		errc.DisableColor()
	}
	return &calc{
		cfg:     cfg,
		opts:    cfg.ParseOptions(),
		log:     log,
		verbose: verbose,
		out:     out,
		errc:    errc,
	}
}

// evaluate removes whitespace from line, then parses and evaluates it. The
// parsed expression is nil if parsing failed.
func (c *calc) evaluate(line string) (*arith.Expr, float64, error) {
	src := strings.Join(strings.Fields(line), "")
	if c.verbose {
		toks, err := arith.Tokenize(src)
		c.log.Debugf("tokens for %q (err=%v):\n%s", src, err, spew.Sdump(toks))
	}
	a, err := arith.ParseString(src, c.opts...)
	if err != nil {
		return nil, math.NaN(), err
	}
	r, err := a.Eval()
	return a, r, err
}

// echo prints the parse tree of a if echoing is enabled.
func (c *calc) echo(a *arith.Expr) {
	if c.cfg.Echo && a != nil {
		fmt.Fprintf(c.out, "The generated AST is %s\n", a.Tree())
	}
}

func (c *calc) format(r float64) string {
	if c.cfg.Format != "" {
		return fmt.Sprintf(c.cfg.Format, r)
	}
	switch {
	case math.IsInf(r, 1):
		return "inf"
	case math.IsInf(r, -1):
		return "-inf"
	case math.IsNaN(r):
		return "NaN"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// repl runs an interactive session until EOF or a line containing a quit
// character. Invalid expressions are reported and the session continues.
func (c *calc) repl(in io.Reader, interactive bool) error {
	if interactive {
		for _, s := range banner {
			fmt.Fprintln(c.out, s)
		}
	}
	sc := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(c.out, c.cfg.Prompt)
		}
		if !sc.Scan() {
			break
		}
		line := sc.Text()
		if c.cfg.Quit != "" && strings.ContainsAny(line, c.cfg.Quit) {
			fmt.Fprintln(c.out, goodbye)
			return nil
		}
		a, r, err := c.evaluate(line)
		c.echo(a)
		if err != nil {
			c.log.Debugf("evaluating %q: %v", line, err)
			c.errc.Fprintf(c.out, "%s\n\n", badInput)
			continue
		}
		fmt.Fprintf(c.out, "The computed number is %s\n\n", c.format(r))
	}
	if interactive {
		fmt.Fprintln(c.out)
	}
	return sc.Err()
}

// run evaluates every non-blank line of in, printing one result per line.
// Failures are collected so that every line is evaluated.
func (c *calc) run(in io.Reader) error {
	var errs *multierror.Error
	sc := bufio.NewScanner(in)
	for n := 1; sc.Scan(); n++ {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		a, r, err := c.evaluate(line)
		c.echo(a)
		if err != nil {
			c.log.Errorf("line %d: %v", n, err)
			errs = multierror.Append(errs, fmt.Errorf("line %d: %w", n, err))
			continue
		}
		fmt.Fprintln(c.out, c.format(r))
	}
	if err := sc.Err(); err != nil {
		errs = multierror.Append(errs, err)
	}
	return errs.ErrorOrNil()
}

// evalArgs evaluates each argument as a separate expression.
func (c *calc) evalArgs(args []string) error {
	var errs *multierror.Error
	for i, arg := range args {
		a, r, err := c.evaluate(arg)
		c.echo(a)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("argument %d (%q): %w", i+1, arg, err))
			continue
		}
		fmt.Fprintln(c.out, c.format(r))
	}
	return errs.ErrorOrNil()
}
