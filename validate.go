package calculator

import (
	"strings"
	"unicode"
)

// Validate checks that an expression contains only digits, decimal points,
// whitespace, operators, and balanced parentheses, and that it is not blank.
// Eval calls Validate before evaluating.
func Validate(expr string) error {
	var (
		col   int
		blank = true
		open  []int
	)
	for _, r := range expr {
		col++
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9', r == '.', strings.ContainsRune(Operators, r):
		case r == '(':
			open = append(open, col)
		case r == ')':
			if len(open) == 0 {
				return &BracketError{Col: col, Right: ")"}
			}
			open = open[:len(open)-1]
		default:
			return &LexError{Text: string(r), Col: col}
		}
		blank = false
	}
	if blank {
		return &EmptyExpressionError{Col: col + 1}
	}
	if len(open) > 0 {
		return &BracketError{Col: open[len(open)-1], Left: "("}
	}
	return nil
}
