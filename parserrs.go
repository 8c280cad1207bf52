package calculator

import (
	"errors"
	"strconv"
)

// ErrParse is matched by every error that results from invalid input to
// Compile, so errors.Is(err, ErrParse) identifies a syntax problem.
var ErrParse = errors.New("parse error")

// BracketError is an error indicating an unbalanced parenthesis in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Left is the opening bracket, if it has no close bracket.
	Left string
	// Right is the closing bracket, if it has no open bracket.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Unwrap() error {
	return ErrParse
}

// EmptyExpressionError is an error indicating an empty expression or an
// operator missing an operand.
type EmptyExpressionError struct {
	// Col is the position at which an expression was expected.
	Col int
	// End is the text that ended the subexpression, or the empty string if
	// it was the end of the input.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

func (err *EmptyExpressionError) Unwrap() error {
	return ErrParse
}

// LiteralError is an error indicating a term that is neither a number nor a
// known constant. It implements InputError.
type LiteralError struct {
	// Col is the position of the first character that cannot continue a
	// number, or of the last character if the term ends too early.
	Col int
	// Text is the term, with whitespace removed.
	Text string
}

func (err *LiteralError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *LiteralError) Pos() int {
	return err.Col
}

func (err *LiteralError) Unwrap() error {
	return ErrParse
}

// LimitError is an error indicating input which exceeds a limit set by
// MaxDepth or MaxLength. It implements InputError.
type LimitError struct {
	// Col is the position at which the limit was exceeded.
	Col int
	// Limit is the name of the limit, "length" or "nesting depth".
	Limit string
	// Max is the value of the limit.
	Max int
}

func (err *LimitError) Error() string {
	return errpos(err.Col, err.Limit+" exceeds maximum of "+strconv.Itoa(err.Max))
}

func (err *LimitError) Pos() int {
	return err.Col
}

func (err *LimitError) Unwrap() error {
	return ErrParse
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the text that caused the error.
	Pos() int
}

var (
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*LiteralError)(nil)
	_ InputError = (*LimitError)(nil)
)
