package arith

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is a single lexical unit of an expression.
type Token struct {
	// Kind is the type of the token.
	Kind TokenKind
	// Value is the value of a TokenNum. It is zero for other kinds.
	Value float64
}

func (t Token) String() string {
	if t.Kind == TokenNum {
		return "Num(" + strconv.FormatFloat(t.Value, 'g', -1, 64) + ")"
	}
	return t.Kind.String()
}

// Prec returns the precedence of the token as a binary operator. Tokens which
// are not binary operators have PrecDefault.
func (t Token) Prec() Prec {
	return binop(t.Kind).prec
}

// TokenKind identifies the type of a token.
type TokenKind int8

const (
	// TokenNone is never produced by the lexer.
	TokenNone TokenKind = iota
	// TokenAdd is +.
	TokenAdd
	// TokenSub is -, either binary subtraction or unary negation.
	TokenSub
	// TokenMul is *.
	TokenMul
	// TokenDiv is /.
	TokenDiv
	// TokenCaret is ^, exponentiation.
	TokenCaret
	// TokenLeftParen is (.
	TokenLeftParen
	// TokenRightParen is ).
	TokenRightParen
	// TokenNum is a numeric literal.
	TokenNum
	// TokenEOF indicates the end of the input.
	TokenEOF
)

var tokenKindNames = [...]string{
	TokenNone:       "None",
	TokenAdd:        "Add",
	TokenSub:        "Subtract",
	TokenMul:        "Multiply",
	TokenDiv:        "Divide",
	TokenCaret:      "Caret",
	TokenLeftParen:  "LeftParen",
	TokenRightParen: "RightParen",
	TokenNum:        "Num",
	TokenEOF:        "EOF",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenKindNames[k]
}

// Operators contains the runes which are lexed as single-rune tokens.
const Operators = "+-*/^()"

var operkinds = [...]TokenKind{TokenAdd, TokenSub, TokenMul, TokenDiv, TokenCaret, TokenLeftParen, TokenRightParen}

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// col is the number of runes read so far.
	col int
	// pos is the column of the first rune of the last scanned token.
	pos int
	eof bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.col++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.col--
}

// next scans the next token from the input. The first time the input is
// exhausted, the result is an EOF token with a nil error. After that, the
// result is an empty token with io.EOF.
func (l *lexer) next() (Token, error) {
	if l.eof {
		return Token{}, io.EOF
	}
	defer l.buf.Reset()
	l.pos = l.col + 1
	r, err := l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			l.eof = true
			return Token{Kind: TokenEOF}, nil
		}
		return Token{}, err
	}
	if '0' <= r && r <= '9' {
		l.buf.WriteRune(r)
		return l.scanNum()
	}
	if k := strings.IndexRune(Operators, r); k >= 0 {
		return Token{Kind: operkinds[k]}, nil
	}
	// Write the rune so that it shows up in the error message.
	l.buf.WriteRune(r)
	return Token{}, l.error("")
}

// scanNum scans the remainder of a number whose first digit is already in
// the buffer. A number immediately followed by an open paren is an error.
func (l *lexer) scanNum() (Token, error) {
scan:
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Token{}, err
		}
		switch {
		case r == '.', unicode.IsNumber(r):
			l.buf.WriteRune(r)
		case r == '(':
			l.buf.WriteRune(r)
			return Token{}, l.error("number")
		default:
			l.unreadRune()
			break scan
		}
	}
	v, err := strconv.ParseFloat(l.buf.String(), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// Out of range literals are ±Inf, but e.g. 1.2.3 is not a number.
		return Token{}, l.error("number")
	}
	return Token{Kind: TokenNum, Value: v}, nil
}

func (l *lexer) error(kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  l.col,
	}
}

// Tokenize scans all tokens in text, up to and including the TokenEOF. If a
// lexical error occurs, the result holds the tokens scanned before it. Text
// must not contain whitespace.
func Tokenize(text string) ([]Token, error) {
	scan := lex(strings.NewReader(text))
	var toks []Token
	for {
		tok, err := scan.next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.Kind == TokenEOF {
			return toks, nil
		}
	}
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This is "number" or
	// the empty string if a token kind hadn't been decided.
	Kind string
	// Col is the total number of runes scanned by the lexer up to and
	// including this error.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + strconv.Quote(err.Text)
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + strconv.Quote(err.Text)
}

func (err *LexError) Pos() int {
	return err.Col
}
