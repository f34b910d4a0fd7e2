package arith

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Context is a context for evaluating expressions. It holds the working stack
// so that evaluating many expressions reuses memory. It is not safe to use a
// Context concurrently.
type Context struct {
	stack []float64
	err   error
	done  bool
}

// NewContext creates a new evaluation context.
func NewContext() *Context {
	return &Context{stack: make([]float64, 0, 8)}
}

// Eval evaluates an expression and returns the result. If an error occurs,
// then the result is NaN and ctx.Err returns the error. Parsed expressions
// never produce errors; only malformed expressions, like a nil *Expr, do.
func (ctx *Context) Eval(e *Expr) float64 {
	if len(ctx.stack) > 1 {
		panic("arith: Eval during Eval")
	}
	ctx.stack = ctx.stack[:0]
	ctx.done = true
	if e == nil {
		ctx.err = &EvalError{Msg: "nil expression"}
		return math.NaN()
	}
	ctx.err = e.n.eval(ctx)
	if ctx.err != nil {
		ctx.stack = ctx.stack[:0]
		return math.NaN()
	}
	return ctx.Result()
}

// Result returns the result obtained after evaluating an expression. Panics if
// ctx has not been used to evaluate an expression. Returns NaN if an error
// occurred during evaluation.
func (ctx *Context) Result() float64 {
	if !ctx.done {
		panic("arith: Context.Result called before evaluating any expression")
	}
	if ctx.err != nil {
		return math.NaN()
	}
	if len(ctx.stack) != 1 {
		panic("arith: inconsistent stack: " + strconv.Itoa(len(ctx.stack)) + " items (bad AST?)")
	}
	return ctx.stack[0]
}

// Err returns the error that occurred while evaluating the last expression
// with ctx, if any.
func (ctx *Context) Err() error {
	return ctx.err
}

// push pushes a value to the stack.
func (ctx *Context) push(x float64) {
	ctx.stack = append(ctx.stack, x)
}

// pop removes the top from the stack and returns it.
func (ctx *Context) pop() float64 {
	r := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return r
}

// top is a shortcut to get the top element of the stack.
func (ctx *Context) top() *float64 {
	return &ctx.stack[len(ctx.stack)-1]
}

// eval pushes the node's value to the context's stack.
func (n *node) eval(ctx *Context) error {
	if n == nil {
		return &EvalError{Msg: "missing operand"}
	}
	switch n.kind {
	case nodeNum:
		ctx.push(n.num)
	case nodeNeg:
		if err := n.left.eval(ctx); err != nil {
			return err
		}
		v := ctx.top()
		*v = -*v
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		if err := n.left.eval(ctx); err != nil {
			return err
		}
		if err := n.right.eval(ctx); err != nil {
			return err
		}
		r := ctx.pop()
		l := ctx.top()
		switch n.kind {
		case nodeAdd:
			*l += r
		case nodeSub:
			*l -= r
		case nodeMul:
			*l *= r
		case nodeDiv:
			// x/0 is ±Inf or NaN, not an error.
			*l /= r
		case nodePow:
			*l = math.Pow(*l, r)
		}
	default:
		return &EvalError{Msg: "invalid node " + n.kind.String()}
	}
	return nil
}

// Eval evaluates the expression with a new context.
func (e *Expr) Eval() (float64, error) {
	return Evaluate(e)
}

// Evaluate evaluates an expression and returns its result.
func Evaluate(e *Expr) (float64, error) {
	ctx := NewContext()
	r := ctx.Eval(e)
	return r, ctx.Err()
}

// EvalReader is a shortcut to parse an expression and return its result.
func EvalReader(src io.RuneScanner, opts ...ParseOption) (float64, error) {
	a, err := Parse(src, opts...)
	if err != nil {
		return math.NaN(), err
	}
	return Evaluate(a)
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ParseOption) (float64, error) {
	return EvalReader(strings.NewReader(src), opts...)
}

// EvalError is an error from evaluating a malformed expression tree.
type EvalError struct {
	// Msg describes the problem.
	Msg string
}

func (err *EvalError) Error() string {
	return "cannot evaluate expression: " + err.Msg
}
