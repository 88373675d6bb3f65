package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	ok := []string{
		"1",
		"2 + 3",
		" 1.5*-2 ",
		"7%3^2/1",
		"(1)",
		"((2 + 3) * (4))",
		"2 3 +",
		"+",
		"\t1\n",
	}
	for _, src := range ok {
		assert.NoError(t, Validate(src), "%q", src)
	}

	cases := []struct {
		src string
		err error
	}{
		{"", &EmptyExpressionError{Col: 1}},
		{" \t ", &EmptyExpressionError{Col: 4}},
		{"abc", &LexError{Text: "a", Col: 1}},
		{"2 + 3x", &LexError{Text: "x", Col: 6}},
		{"1,000", &LexError{Text: ",", Col: 2}},
		{"2 × 3", &LexError{Text: "×", Col: 3}},
		{"[1]", &LexError{Text: "[", Col: 1}},
		{")", &BracketError{Col: 1, Right: ")"}},
		{"(1))", &BracketError{Col: 4, Right: ")"}},
		{"((1)", &BracketError{Col: 1, Left: "("}},
		{"(1)(", &BracketError{Col: 4, Left: "("}},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			err := Validate(c.src)
			require.Error(t, err)
			assert.Equal(t, c.err, err)
			assert.ErrorIs(t, err, ErrInvalidExpression)
		})
	}
}
