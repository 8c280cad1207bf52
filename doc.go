// Package calculator compiles and evaluates arithmetic expressions.
//
// An expression is numbers, the constants pi and e, parentheses, and the
// binary operators + - * / ^, where ^ is exponentiation. Whitespace is
// ignored. Operators bind in the usual order, loosest to tightest:
// addition and subtraction, multiplication and division, exponentiation. All
// operators are left-associative, so "2^3^2" is 64 and "8-3-2" is 3.
//
// A minus sign at the start of an expression or immediately after another
// operator negates the term that follows it, binding tighter than any
// operator: "3*-2" is -6, and "-2^2" is 4.
//
// Compile builds an expression tree once; Eval and EvalStrict walk it.
package calculator
