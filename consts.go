package calculator

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// constprec is the precision in bits of the stored constants, enough for
// printing them well past float64 precision.
const constprec = 128

var constants = map[string]*big.Float{
	"pi": bigfloat.Pi(new(big.Float).SetPrec(constprec)),
	"e": bigfloat.Exp(
		new(big.Float).SetPrec(constprec),
		new(big.Float).SetPrec(constprec).SetInt64(1),
	),
}

// constnames is the sorted list of constant names.
var constnames = []string{"e", "pi"}

// Constants returns the names of the constants recognized in expressions, in
// sorted order.
func Constants() []string {
	return append([]string(nil), constnames...)
}

// Constant returns the value of a named constant as used in expressions.
// Names are case-sensitive.
func Constant(name string) (float64, bool) {
	v := constants[name]
	if v == nil {
		return 0, false
	}
	f, _ := v.Float64()
	return f, true
}

// ConstantText formats a named constant with the given number of digits after
// the decimal point. The result is correctly rounded for up to about 35
// digits.
func ConstantText(name string, digits int) (string, bool) {
	v := constants[name]
	if v == nil {
		return "", false
	}
	return v.Text('f', digits), true
}

func isConstant(s string) bool {
	_, ok := constants[s]
	return ok
}
