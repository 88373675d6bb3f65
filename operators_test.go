package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPrecedence(t *testing.T) {
	cases := map[string]int{"+": 1, "-": 1, "*": 2, "/": 2, "%": 2, "^": 3}
	prec := DefaultPrecedence()
	for op, want := range cases {
		got, ok := prec.Precedence(op)
		assert.True(t, ok, op)
		assert.Equal(t, want, got, op)
	}
	_, ok := prec.Precedence("(")
	assert.False(t, ok)
	assert.Equal(t, "^=3 *=2 /=2 %=2 +=1 -=1", prec.String())

	// The zero value behaves as the default.
	var zero PrecedenceTable
	p, ok := zero.Precedence("^")
	assert.True(t, ok)
	assert.Equal(t, 3, p)
}

func TestNewPrecedenceTable(t *testing.T) {
	in := map[string]int{"+": 2, "-": 2, "*": 1, "/": 1, "%": 1, "^": 5}
	prec, err := NewPrecedenceTable(in)
	require.NoError(t, err)
	in["+"] = 100
	p, _ := prec.Precedence("+")
	assert.Equal(t, 2, p, "table aliases its input")

	cases := []struct {
		name string
		in   map[string]int
		msg  string
	}{
		{"missing", map[string]int{"+": 1, "-": 1, "*": 2, "/": 2, "%": 2}, `no precedence for operator "^"`},
		{"unknown", map[string]int{"+": 1, "-": 1, "*": 2, "/": 2, "%": 2, "^": 3, "&": 1}, `unknown operator "&"`},
		{"long", map[string]int{"**": 3}, `unknown operator "**"`},
		{"zero", map[string]int{"+": 0, "-": 1, "*": 2, "/": 2, "%": 2, "^": 3}, `precedence 0 for "+" must be positive`},
		{"empty", nil, `no precedence for operator "+"`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewPrecedenceTable(c.in)
			var perr *PrecedenceError
			require.ErrorAs(t, err, &perr)
			assert.EqualError(t, err, c.msg)
		})
	}
}

func TestBinop(t *testing.T) {
	cases := []struct {
		op   string
		kind opKind
		l, r float64
		want float64
	}{
		{"+", opAdd, 2, 3, 5},
		{"-", opSub, 2, 3, -1},
		{"*", opMul, 2, 3, 6},
		{"/", opDiv, 3, 2, 1.5},
		{"%", opMod, -7, 3, -1},
		{"%", opMod, 7, -3, 1},
		{"^", opPow, 2, 10, 1024},
		{"/", opDiv, 1, 0, math.Inf(1)},
	}
	for _, c := range cases {
		k := binop(c.op)
		require.Equal(t, c.kind, k, c.op)
		assert.Equal(t, c.want, k.apply(c.l, c.r), "%g %s %g", c.l, c.op, c.r)
	}
	assert.True(t, math.IsNaN(opMod.apply(1, 0)))
	assert.True(t, opDiv.divides())
	assert.True(t, opMod.divides())
	assert.False(t, opMul.divides())
	assert.Equal(t, opNone, binop("("))
	assert.PanicsWithValue(t, "calculator: invalid operation 0", func() { opNone.apply(1, 2) })
}
