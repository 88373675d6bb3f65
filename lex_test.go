package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func num(text string, v float64, pos int) Token {
	return Token{Text: text, Value: v, Pos: pos, kind: tokenNum}
}

func op(text string, pos int) Token {
	return Token{Text: text, Pos: pos, kind: tokenOp}
}

func unknown(text string, pos int) Token {
	return Token{Text: text, Pos: pos, kind: tokenUnknown}
}

func TestTokenize(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		tokens []Token
	}{
		// spaces
		{"empty", "", nil},
		{"spaces", " \t \r\n ", nil},
		// numbers
		{"zero", "0", []Token{num("0", 0, 1)}},
		{"digits", "9876543210", []Token{num("9876543210", 9876543210, 1)}},
		{"decimal", "1.5", []Token{num("1.5", 1.5, 1)}},
		{"leading-dot", ".5", []Token{num(".5", 0.5, 1)}},
		{"trailing-dot", "5.", []Token{num("5.", 5, 1)}},
		{"padded", "  42  ", []Token{num("42", 42, 3)}},
		// operators
		{"add", "1+0", []Token{num("1", 1, 1), op("+", 2), num("0", 0, 3)}},
		{"spaced", "2 + 3", []Token{num("2", 2, 1), op("+", 3), num("3", 3, 5)}},
		{"all", "1+2-3*4/5%6^7", []Token{
			num("1", 1, 1), op("+", 2), num("2", 2, 3), op("-", 4), num("3", 3, 5),
			op("*", 6), num("4", 4, 7), op("/", 8), num("5", 5, 9), op("%", 10),
			num("6", 6, 11), op("^", 12), num("7", 7, 13),
		}},
		{"neg", "-4", []Token{op("-", 1), num("4", 4, 2)}},
		{"double", "3 - -2", []Token{num("3", 3, 1), op("-", 3), op("-", 5), num("2", 2, 6)}},
		{"consecutive", "2 + + 3", []Token{num("2", 2, 1), op("+", 3), op("+", 5), num("3", 3, 7)}},
		{"leading-op", "* 2", []Token{op("*", 1), num("2", 2, 3)}},
		// unknown
		{"open", "(5 + 3) * 2", []Token{unknown("(5", 1), op("+", 4), unknown("3)", 6), op("*", 9), num("2", 2, 11)}},
		{"juxtaposed", "5 3", []Token{unknown("5 3", 1)}},
		{"word", "abc", []Token{unknown("abc", 1)}},
		{"exponent", "1e5", []Token{unknown("1e5", 1)}},
		{"dots", "1.2.3", []Token{unknown("1.2.3", 1)}},
		{"dot", ".", []Token{unknown(".", 1)}},
		{"inf", "inf", []Token{unknown("inf", 1)}},
		{"unicode", "π+1", []Token{unknown("π", 1), op("+", 2), num("1", 1, 3)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Tokenize(c.src)
			require.Len(t, got, len(c.tokens), "tokens: %v", got)
			for i, want := range c.tokens {
				assert.Equal(t, want, got[i], "token %d", i)
			}
		})
	}
}

func TestTokenizeOverflow(t *testing.T) {
	src := "1"
	for i := 0; i < 400; i++ {
		src += "0"
	}
	toks := Tokenize(src)
	require.Len(t, toks, 1)
	assert.True(t, toks[0].IsNumber())
	assert.True(t, math.IsInf(toks[0].Value, 1))
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "Num:12@3", num("12", 12, 3).String())
	assert.Equal(t, "Op:+@1", op("+", 1).String())
	assert.Equal(t, "Unknown:(1@1", unknown("(1", 1).String())
	assert.Equal(t, "tokenKind(9)", tokenKind(9).String())
}
