package arith

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// Expr = num | Neg | Add | Sub | Mul | Div | Pow | '(' Expr ')' | Group Group
// Group = '(' Expr ')'
// Neg = '-' Expr      (operand binds tighter than any binary operator)
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr
// Div = Expr '/' Expr
// Pow = Expr '^' Expr (right-associative)

// Parser builds an expression tree from a token stream with one token of
// lookahead. A Parser parses one expression and is not safe for concurrent
// use.
type Parser struct {
	scan *lexer
	// cur is the lookahead token.
	cur Token
	// col is the position of cur.
	col   int
	depth int
	p     parsectx
}

// NewParser creates a parser reading from src and scans the first token. The
// given options are applied in order. src must not contain whitespace.
func NewParser(src io.RuneScanner, opts ...ParseOption) (*Parser, error) {
	ps := &Parser{
		scan: lex(src),
		p:    config(opts),
	}
	if err := ps.advance(); err != nil {
		return nil, err
	}
	return ps, nil
}

// Parse parses an expression from the parser's input. Unless the parser was
// created with RejectTrailing, parsing stops at the first token that cannot
// continue the expression, and any remaining input is ignored.
func (ps *Parser) Parse() (*Expr, error) {
	n, err := ps.generate(exprprec)
	if err != nil {
		return nil, err
	}
	if ps.p.strict && ps.cur.Kind != TokenEOF {
		return nil, ps.error(UnableToParse, "unexpected trailing "+ps.cur.String())
	}
	return &Expr{n: n}, nil
}

// Parse parses an expression so it can be evaluated. The given options are
// applied in order.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Expr, error) {
	ps, err := NewParser(src, opts...)
	if err != nil {
		return nil, err
	}
	return ps.Parse()
}

// ParseString is a shortcut to parse an expression from a string.
func ParseString(src string, opts ...ParseOption) (*Expr, error) {
	return Parse(strings.NewReader(src), opts...)
}

// generate parses an expression whose binary operators are all more binding
// than floor. On return, cur is the first token not part of the expression.
func (ps *Parser) generate(floor operator) (*node, error) {
	ps.depth++
	defer func() { ps.depth-- }()
	if ps.p.maxdepth > 0 && ps.depth > ps.p.maxdepth {
		return nil, &DepthError{Col: ps.col, Max: ps.p.maxdepth}
	}
	left, err := ps.primary()
	if err != nil {
		return nil, err
	}
	for ps.cur.Kind != TokenEOF {
		op := binop(ps.cur.Kind)
		if !op.moreBinding(floor) {
			break
		}
		left, err = ps.binary(left, op)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

// primary parses a number, a negation, or a parenthesized group.
func (ps *Parser) primary() (*node, error) {
	switch ps.cur.Kind {
	case TokenSub:
		// -2^2 -> (-2)^2
		if err := ps.advance(); err != nil {
			return nil, err
		}
		n, err := ps.generate(negprec)
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeNeg, left: n}, nil
	case TokenNum:
		n := &node{kind: nodeNum, num: ps.cur.Value}
		if err := ps.advance(); err != nil {
			return nil, err
		}
		return n, nil
	case TokenLeftParen:
		if err := ps.advance(); err != nil {
			return nil, err
		}
		n, err := ps.generate(exprprec)
		if err != nil {
			return nil, err
		}
		if err := ps.expect(TokenRightParen); err != nil {
			return nil, err
		}
		if ps.cur.Kind == TokenLeftParen {
			// (a)(b) -> (a) * (b). The lexer rejects 2(b).
			rhs, err := ps.generate(mulprec)
			if err != nil {
				return nil, err
			}
			return &node{kind: nodeMul, left: n, right: rhs}, nil
		}
		return n, nil
	default:
		return nil, ps.error(UnableToParse, "unable to parse "+ps.cur.String())
	}
}

// binary consumes the operator in cur and parses its right operand.
func (ps *Parser) binary(left *node, op operator) (*node, error) {
	if op.op == nodeNone {
		return nil, ps.error(InvalidOperator, "invalid operator "+ps.cur.String())
	}
	if err := ps.advance(); err != nil {
		return nil, err
	}
	right, err := ps.generate(op)
	if err != nil {
		return nil, err
	}
	return &node{kind: op.op, left: left, right: right}, nil
}

// expect consumes cur if it has the given kind.
func (ps *Parser) expect(kind TokenKind) error {
	if ps.cur.Kind != kind {
		return ps.error(InvalidOperator, "expected "+kind.String()+", got "+ps.cur.String())
	}
	return ps.advance()
}

// advance scans the next token into cur.
func (ps *Parser) advance() error {
	tok, err := ps.scan.next()
	if err != nil {
		var lerr *LexError
		if errors.As(err, &lerr) {
			return &ParseError{Kind: InvalidOperator, Msg: "invalid character", Col: lerr.Col, Err: err}
		}
		return &ParseError{Kind: InvalidOperator, Msg: "reading input: " + err.Error(), Col: ps.scan.col, Err: err}
	}
	ps.cur = tok
	ps.col = ps.scan.pos
	return nil
}

func (ps *Parser) error(kind ErrorKind, msg string) error {
	return &ParseError{Kind: kind, Msg: msg, Col: ps.col}
}

// Prec is the precedence level of an operator. Higher levels bind more
// tightly.
type Prec int8

const (
	// PrecDefault is the level of tokens which are not operators.
	PrecDefault Prec = iota
	// PrecAddSub is the level of + and -.
	PrecAddSub
	// PrecMulDiv is the level of * and /.
	PrecMulDiv
	// PrecPow is the level of ^.
	PrecPow
	// PrecNeg is the level of unary -.
	PrecNeg
)

func (p Prec) String() string {
	switch p {
	case PrecDefault:
		return "DefaultZero"
	case PrecAddSub:
		return "AddSub"
	case PrecMulDiv:
		return "MulDiv"
	case PrecPow:
		return "Power"
	case PrecNeg:
		return "Negative"
	default:
		return "Prec(" + strconv.Itoa(int(p)) + ")"
	}
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec Prec
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token kind. If there is no such binary
// operator, then the result has an op of nodeNone and PrecDefault.
func binop(kind TokenKind) operator {
	switch kind {
	case TokenAdd:
		return operator{PrecAddSub, false, nodeAdd}
	case TokenSub:
		return operator{PrecAddSub, false, nodeSub}
	case TokenMul:
		return operator{PrecMulDiv, false, nodeMul}
	case TokenDiv:
		return operator{PrecMulDiv, false, nodeDiv}
	case TokenCaret:
		return operator{PrecPow, true, nodePow}
	default:
		return operator{}
	}
}

var (
	// exprprec is the precedence required to parse an entire subexpression.
	exprprec = operator{PrecDefault, false, nodeNone}
	// mulprec is the precedence of a group implicitly multiplied by the
	// group before it.
	mulprec = binop(TokenMul)
	// negprec is the precedence of the operand of unary negation.
	negprec = operator{PrecNeg, false, nodeNeg}
)
