package calculator_test

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/calculator"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"num", "1", 1},
		{"frac", "0.25", 0.25},
		{"add", "4+5+6", 4 + 5 + 6},
		{"sub", "4-5-6", 4 - 5 - 6},
		{"mul", "4*5*6", 4 * 5 * 6},
		{"div", "4/5/6", 4.0 / 5.0 / 6.0},
		{"pow", "2^3^2", 64},
		{"prec", "2+3*4", 14},
		{"paren", "(2+3)*4", 20},
		{"nested", "((1+2))*3", 9},
		{"leftassoc", "8-3-2", 3},
		{"divassoc", "64/4/2", 8},
		{"negadd", "-5+3", -2},
		{"mulneg", "3*-2", -6},
		{"powneg", "2^-1", 0.5},
		{"negpow", "-2^2", 4},
		{"negparen", "-(2+3)", -5},
		{"subneg", "1--2", 3},
		{"fracpow", "4^0.5", 2},
		{"sample", "3 + 4 * (2 - 1)", 7},
		{"spaces", " 1 0 * 2 ", 20},
		{"exp", "1.5e3", 1500},
		{"expneg", "25e-1*2", 5},
		{"divzero", "1/0", math.Inf(1)},
		{"negdivzero", "-1/0", math.Inf(-1)},
		{"overflow", "1e400", math.Inf(1)},
		{"negoverflow", "-1e400", math.Inf(-1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := calculator.Compile(c.src)
			if err != nil {
				t.Fatal(c.src, "failed to compile:", err)
			}
			if r := a.Eval(); r != c.r {
				t.Errorf("wrong result: want %g, got %g", c.r, r)
			}
			r, err := a.EvalStrict()
			if math.IsInf(c.r, 0) && err != nil {
				// Strict evaluation may reject what gave an infinity.
				return
			}
			if err != nil {
				t.Fatal("strict evaluation error:", err)
			}
			if r != c.r {
				t.Errorf("wrong strict result: want %g, got %g", c.r, r)
			}
		})
	}
}

func TestEvalConstants(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"pi", "pi", 3.14159265358979},
		{"e", "e", 2.71828182845904},
		{"twoe", "e*2", 5.43656365691809},
		{"negpi", "-pi", -3.14159265358979},
		{"eminus", "e-1", 1.71828182845904},
		{"piparen", "(pi)/2", 1.5707963267949},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calculator.EvalString(c.src)
			require.NoError(t, err)
			assert.InDelta(t, c.r, r, 1e-13)
		})
	}
	pi, ok := calculator.Constant("pi")
	require.True(t, ok)
	assert.Equal(t, math.Pi, pi)
	e, ok := calculator.Constant("e")
	require.True(t, ok)
	assert.Equal(t, math.E, e)
	_, ok = calculator.Constant("PI")
	assert.False(t, ok)
}

func TestConstantText(t *testing.T) {
	cases := []struct {
		name   string
		digits int
		want   string
	}{
		{"pi", 20, "3.14159265358979323846"},
		{"e", 20, "2.71828182845904523536"},
		{"pi", 2, "3.14"},
		{"e", 0, "3"},
	}
	for _, c := range cases {
		s, ok := calculator.ConstantText(c.name, c.digits)
		if !ok {
			t.Errorf("no constant %q", c.name)
			continue
		}
		if s != c.want {
			t.Errorf("%s to %d digits: want %s, got %s", c.name, c.digits, c.want, s)
		}
	}
	if _, ok := calculator.ConstantText("tau", 5); ok {
		t.Error("found nonexistent constant tau")
	}
	assert.Equal(t, []string{"e", "pi"}, calculator.Constants())
}

func TestEvalLiteralRoundTrip(t *testing.T) {
	for _, x := range []float64{0, 1, 0.1, 1.0 / 3, 123456789.125, 6.02214076e23, 1.602176634e-19, math.MaxFloat64, math.SmallestNonzeroFloat64} {
		for _, s := range []string{strconv.FormatFloat(x, 'g', -1, 64), strconv.FormatFloat(x, 'f', -1, 64), strconv.FormatFloat(-x, 'e', -1, 64)} {
			r, err := calculator.EvalString(s)
			if err != nil {
				t.Errorf("%q failed: %v", s, err)
				continue
			}
			want, _ := strconv.ParseFloat(s, 64)
			if r != want {
				t.Errorf("%q evaluated to %g", s, r)
			}
		}
	}
}

func TestEvalIdempotent(t *testing.T) {
	a := calculator.MustCompile("(1+2)/3^0.5 - pi*e")
	want := a.Eval()
	for i := 0; i < 10; i++ {
		if r := a.Eval(); r != want {
			t.Fatalf("evaluation %d gave %g, first gave %g", i, r, want)
		}
		r, err := a.EvalStrict()
		require.NoError(t, err)
		if r != want {
			t.Fatalf("strict evaluation %d gave %g, first gave %g", i, r, want)
		}
	}
}

func TestEvalNaN(t *testing.T) {
	cases := []string{"0/0", "(-1)^0.5", "(1/0)-(1/0)"}
	for _, src := range cases {
		a := calculator.MustCompile(src)
		if r := a.Eval(); !math.IsNaN(r) {
			t.Errorf("%q gave %g, want NaN", src, r)
		}
	}
}

func TestEvalStrictErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
		re   string
	}{
		{"div-zero", "1/0", new(calculator.DivideByZeroError), `(?i)\bzero\b`},
		{"zero-zero", "0/0", new(calculator.DivideByZeroError), `(?i)\bzero\b`},
		{"div-zero-expr", "2/(1-1)", new(calculator.DivideByZeroError), `\b2\b`},
		{"nested", "1+(3/0)*2", new(calculator.DivideByZeroError), `\b3\b`},
		{"pow-neg", "(-1)^0.5", new(calculator.DomainError), `(?i)\bdomain\b`},
		{"pow-zero-neg", "0^-1", new(calculator.DomainError), `\^`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := calculator.Compile(c.src)
			if err != nil {
				t.Fatalf("%q failed to compile: %v", c.src, err)
			}
			r, err := a.EvalStrict()
			if err == nil {
				t.Fatalf("evaluating %q gave no error and result %g", c.src, r)
			}
			if !errors.Is(err, calculator.ErrEval) {
				t.Errorf("%v does not match ErrEval", err)
			}
			if errors.Is(err, calculator.ErrParse) {
				t.Errorf("%v matches ErrParse", err)
			}
			switch c.err.(type) {
			case *calculator.DivideByZeroError:
				var e *calculator.DivideByZeroError
				if !errors.As(err, &e) {
					t.Errorf("%#v is not *DivideByZeroError", err)
				}
			case *calculator.DomainError:
				var e *calculator.DomainError
				if !errors.As(err, &e) {
					t.Errorf("%#v is not *DomainError", err)
				}
			}
			if !regexp.MustCompile(c.re).MatchString(err.Error()) {
				t.Errorf("error message %q does not match %s", err, c.re)
			}
		})
	}
}

func TestEvalStringErrors(t *testing.T) {
	for _, src := range []string{"2+", "(1+2", "abc", "", "1+2)", "3*"} {
		r, err := calculator.EvalString(src)
		if err == nil {
			t.Errorf("%q gave no error and result %g", src, r)
			continue
		}
		if !errors.Is(err, calculator.ErrParse) {
			t.Errorf("%q gave %v, which does not match ErrParse", src, err)
		}
	}
}
