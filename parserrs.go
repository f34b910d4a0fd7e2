package arith

import "strconv"

// ErrorKind classifies a ParseError. The kinds differ only in diagnostics.
type ErrorKind int8

const (
	// UnableToParse indicates a token that cannot begin a primary
	// expression.
	UnableToParse ErrorKind = iota + 1
	// InvalidOperator indicates a missing or unexpected operator, an invalid
	// character, or mismatched parentheses.
	InvalidOperator
)

func (k ErrorKind) String() string {
	switch k {
	case UnableToParse:
		return "UnableToParse"
	case InvalidOperator:
		return "InvalidOperator"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ParseError is an error produced while building an expression tree. It
// implements InputError.
type ParseError struct {
	// Kind classifies the error.
	Kind ErrorKind
	// Msg is a human-readable description of the problem.
	Msg string
	// Col is the position of the token at which parsing failed.
	Col int
	// Err is the underlying lexical error, if any.
	Err error
}

func (err *ParseError) Error() string {
	return errpos(err.Col, "error in evaluating "+err.Msg)
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

func (err *ParseError) Pos() int {
	return err.Col
}

// DepthError is an error indicating an expression nested more deeply than
// the parser allows. It implements InputError.
type DepthError struct {
	// Col is the position of the token at which the limit was exceeded.
	Col int
	// Max is the nesting limit.
	Max int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "expression nested deeper than "+strconv.Itoa(err.Max))
}

func (err *DepthError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*ParseError)(nil)
	_ InputError = (*DepthError)(nil)
	_ InputError = (*LexError)(nil)
)
