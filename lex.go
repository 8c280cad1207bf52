package calculator

import (
	"strings"
	"unicode"
)

// Operator is a binary arithmetic operator.
type Operator int8

const (
	// None is the classification of any rune that is not an operator. It is
	// never attached to a node.
	None Operator = iota
	Add
	Subtract
	Multiply
	Divide
	Power
)

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/^"

const (
	minPrec = 1
	maxPrec = 3
)

// OperatorOf classifies a rune. The result is None for anything not in
// Operators.
func OperatorOf(r rune) Operator {
	switch r {
	case '+':
		return Add
	case '-':
		return Subtract
	case '*':
		return Multiply
	case '/':
		return Divide
	case '^':
		return Power
	default:
		return None
	}
}

// Precedence returns the binding level of the operator. Lower levels bind
// more loosely: 1 for addition and subtraction, 2 for multiplication and
// division, and 3 for exponentiation. None has precedence 0.
func (op Operator) Precedence() int {
	switch op {
	case Add, Subtract:
		return 1
	case Multiply, Divide:
		return 2
	case Power:
		return 3
	default:
		return 0
	}
}

func (op Operator) String() string {
	switch op {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	case Power:
		return "^"
	default:
		return ""
	}
}

// kind gets the node kind which applies the operator.
func (op Operator) kind() nodeKind {
	switch op {
	case Add:
		return nodeAdd
	case Subtract:
		return nodeSub
	case Multiply:
		return nodeMul
	case Divide:
		return nodeDiv
	case Power:
		return nodePow
	default:
		panic("calculator: no node kind for operator " + op.String())
	}
}

// source is an input expression with whitespace removed.
type source struct {
	text string
	// col maps each byte of text to the 1-based rune column it had in the
	// original input.
	col []int
}

func strip(s string) source {
	var b strings.Builder
	col := make([]int, 0, len(s))
	c := 0
	for _, r := range s {
		c++
		if unicode.IsSpace(r) {
			continue
		}
		k := b.Len()
		b.WriteRune(r)
		for ; k < b.Len(); k++ {
			col = append(col, c)
		}
	}
	return source{text: b.String(), col: col}
}

// pos gets the original column of byte i of the stripped text. i may be
// len(text), meaning the column just past the end of the input.
func (s source) pos(i int) int {
	if i < len(s.col) {
		return s.col[i]
	}
	if len(s.col) == 0 {
		return 1
	}
	return s.col[len(s.col)-1] + 1
}

// expsign reports whether the + or - at byte i is the sign of an exponent in
// a numeric literal, as in 1e-5, rather than an operator.
func (s source) expsign(i int) bool {
	if i < 2 {
		return false
	}
	if c := s.text[i-1]; c != 'e' && c != 'E' {
		return false
	}
	c := s.text[i-2]
	return '0' <= c && c <= '9' || c == '.'
}

// unary reports whether the - at byte i is a sign rather than a binary
// operator, i.e. it begins the segment starting at lo or follows another
// operator.
func (s source) unary(lo, i int) bool {
	return i == lo || OperatorOf(rune(s.text[i-1])) != None
}

// scanNum checks whether s is a decimal literal: an optional minus sign,
// digits with an optional fraction, and an optional exponent which may be
// signed. If it is not, k is the byte offset at which scanning failed.
func scanNum(s string) (k int, ok bool) {
	var dig, dot, e, le, ed bool
	for k, r := range s {
		switch r {
		case '-', '+':
			if k == 0 && r == '-' {
				continue
			}
			// A sign anywhere other than immediately following an exponent
			// marker is an operator, which can't be part of a literal.
			if !le {
				return k, false
			}
			le = false
		case '.':
			if dot || e {
				return k, false
			}
			dot = true
			le = false
		case 'e', 'E':
			if !dig || e {
				return k, false
			}
			e = true
			le = true
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			if e {
				ed = true
			} else {
				dig = true
			}
			le = false
		default:
			return k, false
		}
	}
	if !dig || (e && !ed) {
		return len(s), false
	}
	return len(s), true
}
