package calculator

import "strconv"

// CompileOption is an option for compiling.
type CompileOption interface {
	compileOption(compilectx) compilectx
}

type (
	depthopt  int
	lengthopt int
)

const (
	// DefaultMaxDepth is the parenthesis nesting limit if MaxDepth is not
	// given.
	DefaultMaxDepth = 256
	// DefaultMaxLength is the input length limit in runes if MaxLength is not
	// given.
	DefaultMaxLength = 1 << 16
)

// MaxDepth limits the nesting depth of parentheses. Zero removes the limit.
// Panics if n is negative.
func MaxDepth(n int) CompileOption {
	if n < 0 {
		panic("calculator: negative max depth " + strconv.Itoa(n))
	}
	return depthopt(n)
}

func (o depthopt) compileOption(p compilectx) compilectx {
	p.maxDepth = int(o)
	return p
}

// MaxLength limits the length of the input in runes, including whitespace.
// Zero removes the limit. Panics if n is negative.
func MaxLength(n int) CompileOption {
	if n < 0 {
		panic("calculator: negative max length " + strconv.Itoa(n))
	}
	return lengthopt(n)
}

func (o lengthopt) compileOption(p compilectx) compilectx {
	p.maxLength = int(o)
	return p
}

// CompilePreset collects options so that they can be applied together to
// many calls to Compile. Options given after a preset override it.
func CompilePreset(opts ...CompileOption) CompileOption {
	p := defaultctx()
	for _, opt := range opts {
		p = opt.compileOption(p)
	}
	return &p
}

func (o *compilectx) compileOption(p compilectx) compilectx {
	p.maxDepth = o.maxDepth
	p.maxLength = o.maxLength
	return p
}
