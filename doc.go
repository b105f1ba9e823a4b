// Package rpn implements an infix expression calculator built around
// Reverse Polish Notation.
//
// An expression is tokenized, converted to a postfix token sequence with
// the shunting-yard algorithm, and then evaluated over a value stack.
// Expressions combine arithmetic ("+ - * / % ^"), comparison
// ("< > <= >= == !="), and logical ("and", "or", "not" or "!") operators
// over double-precision values. Comparisons and logical operators yield 1
// for true and 0 for false; any nonzero value is true.
//
// Variables are ordinary identifiers. Assignment with "=" writes through
// to a Store that outlives any one expression, so "x = 5" followed by
// "x + 1" yields 6. Assignment is an expression itself: "a = b = 3"
// assigns 3 to b and then to a, and the whole thing evaluates to 3.
package rpn
