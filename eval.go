package calculator

import (
	"errors"
	"math"
	"strconv"
)

// ErrEval is matched by every error returned from EvalStrict.
var ErrEval = errors.New("evaluation error")

// Eval evaluates the expression with IEEE 754 semantics: division by zero
// gives an infinity or NaN rather than an error, as does exponentiation of a
// negative number to a fractional power. Each call recomputes the result.
func (e *Expr) Eval() float64 {
	return e.n.eval()
}

// EvalStrict evaluates the expression like Eval, except that dividing by zero
// results in a *DivideByZeroError and exponentiation that has no real result
// results in a *DomainError.
func (e *Expr) EvalStrict() (float64, error) {
	return e.n.evalStrict()
}

func (n *node) eval() float64 {
	switch n.kind {
	case nodeNum:
		return n.val
	case nodeAdd:
		return n.left.eval() + n.right.eval()
	case nodeSub:
		return n.left.eval() - n.right.eval()
	case nodeMul:
		return n.left.eval() * n.right.eval()
	case nodeDiv:
		return n.left.eval() / n.right.eval()
	case nodePow:
		return math.Pow(n.left.eval(), n.right.eval())
	default:
		panic("calculator: invalid AST node " + n.kind.String())
	}
}

func (n *node) evalStrict() (float64, error) {
	if n.kind == nodeNum {
		return n.val, nil
	}
	l, err := n.left.evalStrict()
	if err != nil {
		return 0, err
	}
	r, err := n.right.evalStrict()
	if err != nil {
		return 0, err
	}
	switch n.kind {
	case nodeAdd:
		return l + r, nil
	case nodeSub:
		return l - r, nil
	case nodeMul:
		return l * r, nil
	case nodeDiv:
		if r == 0 {
			return 0, &DivideByZeroError{X: l}
		}
		return l / r, nil
	case nodePow:
		// Guard against powers with no real result: negative base with a
		// fractional exponent, or zero to a negative power.
		v := math.Pow(l, r)
		if math.IsNaN(v) && !math.IsNaN(l) && !math.IsNaN(r) || l == 0 && r < 0 {
			return 0, &DomainError{X: l, Y: r, Func: Power.String()}
		}
		return v, nil
	default:
		panic("calculator: invalid AST node " + n.kind.String())
	}
}

// EvalString is a shortcut to compile and evaluate a string expression with
// IEEE semantics.
func EvalString(text string, opts ...CompileOption) (float64, error) {
	e, err := Compile(text, opts...)
	if err != nil {
		return 0, err
	}
	return e.Eval(), nil
}

// DivideByZeroError is an error from EvalStrict for a division with a zero
// divisor.
type DivideByZeroError struct {
	// X is the dividend.
	X float64
}

func (err *DivideByZeroError) Error() string {
	return "division of " + fmtnum(err.X) + " by zero"
}

func (err *DivideByZeroError) Unwrap() error {
	return ErrEval
}

// DomainError is an error from EvalStrict for an operation on arguments
// outside its domain.
type DomainError struct {
	// X and Y are the operands.
	X, Y float64
	// Func is a name identifying the operation.
	Func string
}

func (err *DomainError) Error() string {
	return fmtnum(err.X) + " " + err.Func + " " + fmtnum(err.Y) + " outside domain of " + err.Func
}

func (err *DomainError) Unwrap() error {
	return ErrEval
}

func fmtnum(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
