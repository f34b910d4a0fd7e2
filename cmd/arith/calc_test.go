package main

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/jcgregorio/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/arith"
)

type fauxSyncWriter struct {
	b bytes.Buffer
}

func (f *fauxSyncWriter) Write(p []byte) (n int, err error) {
	return f.b.Write(p)
}

func (f *fauxSyncWriter) Sync() error {
	return nil
}

func (f *fauxSyncWriter) String() string {
	return f.b.String()
}

func testCalc(cfg Config, verbose bool) (*calc, *bytes.Buffer, *fauxSyncWriter) {
	var out bytes.Buffer
	var logs fauxSyncWriter
	log := logger.NewFromOptions(&logger.Options{
		SyncWriter:   &logs,
		IncludeDebug: verbose,
	})
	return newCalc(cfg, log, verbose, &out, false), &out, &logs
}

func TestREPL(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{
			name: "eof",
			in:   "",
			out:  "",
		},
		{
			name: "one",
			in:   "2*3+4*(4-5)+2^3/4\n",
			out:  "The computed number is 4\n\n",
		},
		{
			name: "spaces",
			in:   " 1 +\t2 \n",
			out:  "The computed number is 3\n\n",
		},
		{
			name: "invalid-continues",
			in:   "(1+2\n1.5*2\n",
			out: "Error in evaluating expression. Please enter valid expression\n\n" +
				"The computed number is 3\n\n",
		},
		{
			name: "spaced-implicit-mul",
			in:   "3 (2)\n",
			out:  "Error in evaluating expression. Please enter valid expression\n\n",
		},
		{
			name: "quit",
			in:   "1\nq\n2\n",
			out: "The computed number is 1\n\n" +
				"Thanks for using the Arithmetic Expression Evaluator!\n",
		},
		{
			name: "quit-anywhere",
			in:   "1+quit\n",
			out:  "Thanks for using the Arithmetic Expression Evaluator!\n",
		},
		{
			name: "specials",
			in:   "1/0\n-1/0\n0/0\n",
			out: "The computed number is inf\n\n" +
				"The computed number is -inf\n\n" +
				"The computed number is NaN\n\n",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			calc, out, _ := testCalc(DefaultConfig(), false)
			require.NoError(t, calc.repl(strings.NewReader(c.in), false))
			assert.Equal(t, c.out, out.String())
		})
	}
}

func TestREPLInteractive(t *testing.T) {
	calc, out, _ := testCalc(DefaultConfig(), false)
	require.NoError(t, calc.repl(strings.NewReader("1\n"), true))
	want := strings.Join(banner, "\n") + "\n" +
		"> The computed number is 1\n\n" +
		"> \n"
	assert.Equal(t, want, out.String())
}

func TestREPLEcho(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Echo = true
	calc, out, _ := testCalc(cfg, false)
	require.NoError(t, calc.repl(strings.NewReader("1+2\n"), false))
	want := "The generated AST is Add(Number(1), Number(2))\n" +
		"The computed number is 3\n\n"
	assert.Equal(t, want, out.String())
}

func TestREPLNoQuit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Quit = ""
	calc, out, _ := testCalc(cfg, false)
	require.NoError(t, calc.repl(strings.NewReader("q\n"), false))
	assert.Equal(t, "Error in evaluating expression. Please enter valid expression\n\n", out.String())
}

func TestRun(t *testing.T) {
	calc, out, logs := testCalc(DefaultConfig(), false)
	err := calc.run(strings.NewReader("1+2\n\n(1\n2^10\n3$\n"))
	require.Error(t, err)
	assert.Equal(t, "3\n1024\n", out.String())
	assert.Contains(t, err.Error(), "line 3:")
	assert.Contains(t, err.Error(), "line 5:")
	assert.NotContains(t, err.Error(), "line 1:")
	var perr *arith.ParseError
	assert.True(t, errors.As(err, &perr), "want *ParseError in %#v", err)
	assert.Contains(t, logs.String(), "line 3")
}

func TestRunClean(t *testing.T) {
	calc, out, _ := testCalc(DefaultConfig(), false)
	require.NoError(t, calc.run(strings.NewReader("(2)(3)\n  \n-2^2\n")))
	assert.Equal(t, "6\n4\n", out.String())
}

func TestEvalArgs(t *testing.T) {
	calc, out, _ := testCalc(DefaultConfig(), false)
	err := calc.evalArgs([]string{"2^3^2", "1+", "0.1+0.2"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `argument 2 ("1+")`)
	assert.Equal(t, "512\n0.30000000000000004\n", out.String())
}

func TestFormat(t *testing.T) {
	cases := []struct {
		verb string
		r    float64
		want string
	}{
		{"", 4, "4"},
		{"", 0.5, "0.5"},
		{"", 1e21, "1000000000000000000000"},
		{"", math.Inf(1), "inf"},
		{"", math.Inf(-1), "-inf"},
		{"", math.NaN(), "NaN"},
		{"%.3f", 2, "2.000"},
		{"%g", 1e21, "1e+21"},
	}
	for _, c := range cases {
		cfg := DefaultConfig()
		cfg.Format = c.verb
		calc, _, _ := testCalc(cfg, false)
		assert.Equal(t, c.want, calc.format(c.r), "%q %g", c.verb, c.r)
	}
}

func TestVerboseLogsTokens(t *testing.T) {
	calc, _, logs := testCalc(DefaultConfig(), true)
	_, r, err := calc.evaluate("1 + 2")
	require.NoError(t, err)
	assert.Equal(t, 3.0, r)
	assert.Contains(t, logs.String(), `tokens for "1+2"`)

	quiet, _, logs := testCalc(DefaultConfig(), false)
	_, _, err = quiet.evaluate("1 + 2")
	require.NoError(t, err)
	assert.Empty(t, logs.String())
}
