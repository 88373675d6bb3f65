package calculator

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidExpression is the error that every InputError unwraps to.
var ErrInvalidExpression = errors.New("invalid expression")

// ErrDivisionByZero is the error that DomainError unwraps to.
var ErrDivisionByZero = errors.New("division by zero")

// LexError is an error indicating a character that cannot appear in an
// expression. It implements InputError.
type LexError struct {
	// Text is the offending character.
	Text string
	// Col is the position of the character.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "invalid character "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) Unwrap() error {
	return ErrInvalidExpression
}

// BracketError is an error indicating unbalanced parentheses in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Left is the unmatched open bracket, if any.
	Left string
	// Right is the unmatched close bracket, if any.
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
	return ErrInvalidExpression
}

// EmptyExpressionError is an error indicating an input with no tokens.
type EmptyExpressionError struct {
	// Col is the position of the end of the input.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "no expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

func (err *EmptyExpressionError) Unwrap() error {
	return ErrInvalidExpression
}

// TokenError is an error indicating text between operators that is not a
// number. Parenthesized groups produce this error, since grouping is not
// supported. It implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Text is the token.
	Text string
}

func (err *TokenError) Error() string {
	if strings.ContainsAny(err.Text, Brackets) {
		return errpos(err.Col, "grouping is not supported: "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "not a number: "+strconv.Quote(err.Text))
}

func (err *TokenError) Pos() int {
	return err.Col
}

func (err *TokenError) Unwrap() error {
	return ErrInvalidExpression
}

// OperandError is an error indicating an operator without the operands it
// needs. It implements InputError.
type OperandError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator token.
	Operator string
	// Unary is whether the operator was a sign prefix, which requires a number
	// immediately after it.
	Unary bool
}

func (err *OperandError) Error() string {
	if err.Unary {
		return errpos(err.Col, "expected number after "+strconv.Quote(err.Operator))
	}
	return errpos(err.Col, "not enough operands for "+strconv.Quote(err.Operator))
}

func (err *OperandError) Pos() int {
	return err.Col
}

func (err *OperandError) Unwrap() error {
	return ErrInvalidExpression
}

// SurplusError is an error indicating that evaluation left a number of
// operands other than one, e.g. "5 3". It implements InputError.
type SurplusError struct {
	// Col is the position of the end of the input.
	Col int
	// Count is the number of operands remaining.
	Count int
}

func (err *SurplusError) Error() string {
	return errpos(err.Col, "expression leaves "+strconv.Itoa(err.Count)+" operands")
}

func (err *SurplusError) Pos() int {
	return err.Col
}

func (err *SurplusError) Unwrap() error {
	return ErrInvalidExpression
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
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*SurplusError)(nil)
)

// DomainError is an error returned under StrictDivision when the divisor of /
// or % is zero. DomainError unwraps to ErrDivisionByZero.
type DomainError struct {
	// X is the dividend.
	X float64
	// Func is the operator.
	Func string
	// Col is the position of the operator.
	Col int
}

func (err *DomainError) Error() string {
	return errpos(err.Col, strconv.FormatFloat(err.X, 'g', -1, 64)+" "+err.Func+" 0: division by zero")
}

func (err *DomainError) Unwrap() error {
	return ErrDivisionByZero
}

// PrecedenceError is an error creating a PrecedenceTable.
type PrecedenceError struct {
	// Operator is the offending key.
	Operator string
	// Prec is the precedence given for Operator.
	Prec int
	// Missing is whether Operator was absent.
	Missing bool
}

func (err *PrecedenceError) Error() string {
	switch {
	case err.Missing:
		return "no precedence for operator " + strconv.Quote(err.Operator)
	case len(err.Operator) != 1 || !strings.Contains(Operators, err.Operator):
		return "unknown operator " + strconv.Quote(err.Operator)
	default:
		return "precedence " + strconv.Itoa(err.Prec) + " for " + strconv.Quote(err.Operator) + " must be positive"
	}
}
