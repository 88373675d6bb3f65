package calculator

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is a lexical unit of an expression.
type Token struct {
	// Text is the token's source text with surrounding whitespace removed.
	Text string
	// Value is the parsed value of a number token.
	Value float64
	// Pos is the 1-based rune column where the token starts.
	Pos  int
	kind tokenKind
}

func (t Token) String() string {
	return t.kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// IsNumber returns whether the token is a number.
func (t Token) IsNumber() bool {
	return t.kind == tokenNum
}

// IsOperator returns whether the token is one of the operators in Operators.
func (t Token) IsOperator() bool {
	return t.kind == tokenOp
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenNum is a decimal number.
	tokenNum
	// tokenOp is an operator.
	tokenOp
	// tokenUnknown is any other text between operators, e.g. "(5" or "5 3".
	tokenUnknown
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token

// Operators contains the runes which are considered to be operators. Each
// operator is a token by itself and also separates the tokens around it.
const Operators = "+-*/%^"

// Brackets contains the runes that pass through the tokenizer as part of
// other tokens.
const Brackets = "()"

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	// start is the column of the first non-space rune in buf, or 0.
	start int
	toks  []Token
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// Tokenize splits an expression into numbers, operators, and unknown text.
// Whitespace is discarded. Tokenize never fails; text which is not a plain
// decimal number is returned as an unknown token for the evaluator to reject.
func Tokenize(expr string) []Token {
	toks, err := lex(strings.NewReader(expr)).all()
	if err != nil {
		// strings.Reader only fails with io.EOF.
		panic("calculator: " + err.Error())
	}
	return toks
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// all scans the entire input.
func (l *lexer) all() ([]Token, error) {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.flush()
				return l.toks, nil
			}
			return l.toks, err
		}
		switch {
		case strings.ContainsRune(Operators, r):
			l.flush()
			l.toks = append(l.toks, Token{Text: string(r), Pos: l.rune, kind: tokenOp})
		case unicode.IsSpace(r):
			// Leading spaces are dropped; inner spaces stay so that "5 3" is
			// one token rather than two numbers.
			if l.start != 0 {
				l.buf.WriteRune(r)
			}
		default:
			if l.start == 0 {
				l.start = l.rune
			}
			l.buf.WriteRune(r)
		}
	}
}

// flush emits the text accumulated since the last operator, if any.
func (l *lexer) flush() {
	defer func() {
		l.buf.Reset()
		l.start = 0
	}()
	if l.start == 0 {
		return
	}
	s := strings.TrimRightFunc(l.buf.String(), unicode.IsSpace)
	tok := Token{Text: s, Pos: l.start, kind: tokenUnknown}
	if isDecimal(s) {
		v, err := strconv.ParseFloat(s, 64)
		var nerr *strconv.NumError
		switch {
		case err == nil:
		case errors.As(err, &nerr) && errors.Is(nerr.Err, strconv.ErrRange):
			// ParseFloat already gives ±Inf or ±0 for out of range input.
		default:
			panic("calculator: invalid number: " + s + " (" + err.Error() + ")")
		}
		tok.Value = v
		tok.kind = tokenNum
	}
	l.toks = append(l.toks, tok)
}

// isDecimal reports whether s is digits with at most one decimal point and at
// least one digit. ParseFloat accepts much more than that, e.g. "inf", "1e9",
// and hexadecimal.
func isDecimal(s string) bool {
	var dig, dot bool
	for _, r := range s {
		switch {
		case '0' <= r && r <= '9':
			dig = true
		case r == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return dig
}
