// Package arith implements a float64 calculator for arithmetic expressions.
//
// The syntax is numbers, the binary operators + - * / ^, unary -, and
// parentheses. Whitespace is not part of the syntax; callers strip it before
// parsing. "2^3^2" is "2^(3^2)", but "-2^2" is "(-2)^2": negation binds
// tighter than any binary operator. Two adjacent parenthesized groups
// multiply, so "(2)(3)" is 6, but a number directly followed by a group, like
// "3(2)", is rejected by the lexer.
package arith
