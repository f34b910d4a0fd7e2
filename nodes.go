package arith

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind

	num float64

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // push num

	nodeNeg // evaluate left, then negate
	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
	nodePow // evaluate left, exp by right
)

var nodeKindNames = [...]string{
	nodeNone: "None",
	nodeNum:  "Number",
	nodeNeg:  "Negative",
	nodeAdd:  "Add",
	nodeSub:  "Subtract",
	nodeMul:  "Multiply",
	nodeDiv:  "Divide",
	nodePow:  "Caret",
}

func (k nodeKind) String() string {
	if k < 0 || int(k) >= len(nodeKindNames) {
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
	return nodeKindNames[k]
}

// binary reports whether the kind has both a left and a right child.
func (k nodeKind) binary() bool {
	return nodeAdd <= k && k <= nodePow
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNum:
		b.WriteString(fmtnum(n.num))
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b, !square)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		n.left.fmt(b, !square)
		b.WriteString(opstrs[n.kind])
		n.right.fmt(b, !square)
	default:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b, !square)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b, !square)
		}
		b.WriteByte('$')
	}
}

var opstrs = map[nodeKind]string{
	nodeAdd: " + ",
	nodeSub: " - ",
	nodeMul: " * ",
	nodeDiv: " / ",
	nodePow: " ^ ",
}

// tree writes the node in constructor form, e.g. Add(Number(1), Number(2)).
func (n *node) tree(b *strings.Builder) {
	if n == nil {
		b.WriteString("nil")
		return
	}
	b.WriteString(n.kind.String())
	b.WriteByte('(')
	switch {
	case n.kind == nodeNum:
		b.WriteString(fmtnum(n.num))
	case n.kind == nodeNeg:
		n.left.tree(b)
	case n.kind.binary():
		n.left.tree(b)
		b.WriteString(", ")
		n.right.tree(b)
	}
	b.WriteByte(')')
}

// clone deep-copies the subtree rooted at n.
func (n *node) clone() *node {
	if n == nil {
		return nil
	}
	return &node{
		kind:  n.kind,
		num:   n.num,
		left:  n.left.clone(),
		right: n.right.clone(),
	}
}

func fmtnum(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// Expr is a parsed expression.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	if e == nil || e.n == nil {
		return "<nil>"
	}
	return e.n.String()
}

// Tree describes the structure of the parsed expression in constructor form,
// e.g. "Add(Number(1), Multiply(Number(2), Number(3)))" for 1+2*3.
func (e *Expr) Tree() string {
	var b strings.Builder
	if e == nil {
		b.WriteString("nil")
	} else {
		e.n.tree(&b)
	}
	return b.String()
}

// Clone returns a deep copy of the expression.
func (e *Expr) Clone() *Expr {
	if e == nil {
		return nil
	}
	return &Expr{n: e.n.clone()}
}
