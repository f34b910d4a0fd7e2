package arith

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	depthopt  int
	strictopt struct{}
)

// parsectx holds the configuration for parsing. It is also a ParseOption.
type parsectx struct {
	// maxdepth is the maximum nesting depth of subexpressions, or 0 for no
	// limit.
	maxdepth int
	// strict indicates that tokens remaining after a complete expression are
	// an error rather than ignored.
	strict bool
}

// MaxDepth limits the nesting depth of subexpressions. Every parenthesized
// group, negation, and operand of a binary operator is one level. Exceeding
// the limit produces a *DepthError. A limit of zero or less means no limit,
// which is the default; deeply nested input then uses an amount of stack
// proportional to its depth.
func MaxDepth(n int) ParseOption {
	if n < 0 {
		n = 0
	}
	return depthopt(n)
}

func (o depthopt) parseOption(p parsectx) parsectx {
	p.maxdepth = int(o)
	return p
}

// RejectTrailing tells the parser to report an error when input remains after
// a complete expression, e.g. the "3" in "(1)3" or the ")" in "1)". By
// default, such tokens are left unexamined.
func RejectTrailing() ParseOption {
	return strictopt{}
}

func (strictopt) parseOption(p parsectx) parsectx {
	p.strict = true
	return p
}

// ParsingPreset bundles several options into one. A preset panics when it
// would change any option from the default, but it is safe to apply other
// options after a preset.
func ParsingPreset(opts ...ParseOption) ParseOption {
	p := config(opts)
	return &p
}

func (o *parsectx) parseOption(p parsectx) parsectx {
	if p != (parsectx{}) {
		panic("arith: preset applied to non-default parse config")
	}
	return *o
}

// config applies opts in order to the default configuration.
func config(opts []ParseOption) parsectx {
	var p parsectx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.parseOption(p)
	}
	return p
}
