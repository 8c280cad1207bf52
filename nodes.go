package calculator

import (
	"strconv"
	"strings"
)

// node is a node in the expression tree. Number nodes are leaves; every other
// kind has exactly two children which it owns.
type node struct {
	kind nodeKind

	// val is the value of a number node. name is its source text, either a
	// literal or a constant name.
	val  float64
	name string

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // val
	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
	nodePow // evaluate left, exp by right
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeNum:
		return "Num"
	case nodeAdd:
		return "Add"
	case nodeSub:
		return "Sub"
	case nodeMul:
		return "Mul"
	case nodeDiv:
		return "Div"
	case nodePow:
		return "Pow"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// op gets the operator a node applies, or None for leaves.
func (k nodeKind) op() Operator {
	switch k {
	case nodeAdd:
		return Add
	case nodeSub:
		return Subtract
	case nodeMul:
		return Multiply
	case nodeDiv:
		return Divide
	case nodePow:
		return Power
	default:
		return None
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes the node with every term in parentheses, so that the result
// compiles back to the same tree.
func (n *node) fmt(b *strings.Builder) {
	b.WriteByte('(')
	defer b.WriteByte(')')
	switch n.kind {
	case nodeNum:
		if n.name != "" {
			b.WriteString(n.name)
			return
		}
		b.WriteString(strconv.FormatFloat(n.val, 'g', -1, 64))
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(n.kind.op().String())
		b.WriteByte(' ')
		n.right.fmt(b)
	default:
		panic("calculator: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

// depth gets the height of the tree rooted at n.
func (n *node) depth() int {
	if n.kind == nodeNum {
		return 1
	}
	l, r := n.left.depth(), n.right.depth()
	if r > l {
		l = r
	}
	return l + 1
}
