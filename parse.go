package calculator

import (
	"errors"
	"strconv"
	"unicode/utf8"
)

// Expr = num | const | '-' const | '-' '(' Expr ')' | '(' Expr ')' | Add | Sub | Mul | Div | Pow
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr
// Div = Expr '/' Expr
// Pow = Expr '^' Expr
//
// All binary operators are left-associative.

// Expr is a compiled expression.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// compilectx holds the state of one call to Compile. It is also a
// CompileOption.
type compilectx struct {
	src source
	// maxDepth and maxLength are the limits set by options. Zero means no
	// limit.
	maxDepth  int
	maxLength int
}

func defaultctx() compilectx {
	return compilectx{
		maxDepth:  DefaultMaxDepth,
		maxLength: DefaultMaxLength,
	}
}

// Compile compiles an expression into a tree that can be evaluated. All
// whitespace in text is ignored. The given options are applied in order.
//
// Every error returned from Compile implements InputError and matches
// ErrParse.
func Compile(text string, opts ...CompileOption) (*Expr, error) {
	c := defaultctx()
	for _, opt := range opts {
		c = opt.compileOption(c)
	}
	if c.maxLength > 0 && utf8.RuneCountInString(text) > c.maxLength {
		return nil, &LimitError{Col: c.maxLength + 1, Limit: "length", Max: c.maxLength}
	}
	c.src = strip(text)
	if err := c.brackets(); err != nil {
		return nil, err
	}
	n, err := c.compile(0, len(c.src.text))
	if err != nil {
		return nil, err
	}
	return &Expr{n: n}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(text string, opts ...CompileOption) *Expr {
	e, err := Compile(text, opts...)
	if err != nil {
		panic("calculator: compiling " + strconv.Quote(text) + ": " + err.Error())
	}
	return e
}

// brackets checks that parentheses are balanced and nested no deeper than
// the limit. Once it passes, every segment the compiler considers has balanced
// parentheses as well.
func (c *compilectx) brackets() error {
	t := c.src.text
	var open []int
	for i := 0; i < len(t); i++ {
		switch t[i] {
		case '(':
			open = append(open, i)
			if c.maxDepth > 0 && len(open) > c.maxDepth {
				return &LimitError{Col: c.src.pos(i), Limit: "nesting depth", Max: c.maxDepth}
			}
		case ')':
			if len(open) == 0 {
				return &BracketError{Col: c.src.pos(i), Right: ")"}
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) != 0 {
		return &BracketError{Col: c.src.pos(open[0]), Left: "("}
	}
	return nil
}

// compile compiles the text in [lo, hi). The loosest operators outside
// parentheses become the root, and the operands between them are folded
// left to right.
func (c *compilectx) compile(lo, hi int) (*node, error) {
	if lo >= hi {
		return nil, c.empty(lo, hi)
	}
	for prec := minPrec; prec <= maxPrec; prec++ {
		at := c.splits(lo, hi, prec)
		if len(at) == 0 {
			continue
		}
		n, err := c.compile(lo, at[0])
		if err != nil {
			return nil, err
		}
		for k, i := range at {
			end := hi
			if k+1 < len(at) {
				end = at[k+1]
			}
			rhs, err := c.compile(i+1, end)
			if err != nil {
				return nil, err
			}
			n = &node{kind: OperatorOf(rune(c.src.text[i])).kind(), left: n, right: rhs}
		}
		return n, nil
	}
	return c.term(lo, hi)
}

// splits finds the positions of binary operators of the given precedence in
// [lo, hi) that are outside parentheses.
func (c *compilectx) splits(lo, hi, prec int) []int {
	t := c.src.text
	var at []int
	depth := 0
	for i := lo; i < hi; i++ {
		switch t[i] {
		case '(':
			depth++
			continue
		case ')':
			depth--
			continue
		}
		if depth != 0 {
			continue
		}
		op := OperatorOf(rune(t[i]))
		if op.Precedence() != prec {
			continue
		}
		switch op {
		case Add:
			if c.src.expsign(i) {
				continue
			}
		case Subtract:
			if c.src.expsign(i) || c.src.unary(lo, i) {
				continue
			}
		}
		at = append(at, i)
	}
	return at
}

// term compiles a segment which contains no binary operators outside
// parentheses.
func (c *compilectx) term(lo, hi int) (*node, error) {
	t := c.src.text
	if t[lo] == '(' && c.match(lo) == hi-1 {
		return c.compile(lo+1, hi-1)
	}
	s := t[lo:hi]
	if v, ok := Constant(s); ok {
		return &node{kind: nodeNum, val: v, name: s}, nil
	}
	if s[0] == '-' && len(s) > 1 && (s[1] == '(' || isConstant(s[1:])) {
		// -(expr) and -pi are negations rather than literals.
		n, err := c.term(lo+1, hi)
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeMul, left: &node{kind: nodeNum, val: -1, name: "-1"}, right: n}, nil
	}
	if k, ok := scanNum(s); !ok {
		if k >= len(s) {
			// Ran out of text, as in 1e. Point at the last character.
			k = len(s) - 1
		}
		return nil, &LiteralError{Col: c.src.pos(lo + k), Text: s}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, &LiteralError{Col: c.src.pos(lo), Text: s}
	}
	// Out of range literals parse to ±Inf or 0, which is the value we want.
	return &node{kind: nodeNum, val: v, name: s}, nil
}

// match gets the index of the parenthesis that closes the one at i.
func (c *compilectx) match(i int) int {
	t := c.src.text
	depth := 0
	for j := i; j < len(t); j++ {
		switch t[j] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	panic("calculator: unbalanced parenthesis after bracket check at " + strconv.Itoa(i))
}

// empty creates an error for an empty segment [lo, hi).
func (c *compilectx) empty(lo, hi int) error {
	err := &EmptyExpressionError{Col: c.src.pos(lo)}
	if hi < len(c.src.text) {
		r, _ := utf8.DecodeRuneInString(c.src.text[hi:])
		err.End = string(r)
	}
	return err
}

// String creates a string representation of the compiled expression with
// every term parenthesized. Compiling the result gives the same tree.
func (e *Expr) String() string {
	return e.n.String()
}

// Depth returns the height of the expression tree. A single number has depth
// one.
func (e *Expr) Depth() int {
	return e.n.depth()
}
