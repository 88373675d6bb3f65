// Package calculator implements an infix arithmetic calculator over float64.
//
// Expressions combine decimal numbers with the binary operators + - * / % and
// ^. A - at the start of an expression or directly after another operator
// negates the number that follows it, so "3 - -2" is 5. Operators of equal
// precedence apply left to right, including ^, so "2^3^2" is 64. Parentheses
// are not supported for grouping.
//
// A Context remembers the result of the last binary operator it applied,
// even one applied by an evaluation that later failed. An expression that begins with a binary operator other than -
// continues from that result: after "2 + 3", "* 2" evaluates to 10.
//
package calculator
