package calculator

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// PrecedenceTable maps each operator to its precedence. Higher binds more
// tightly. The zero value is the default table.
type PrecedenceTable struct {
	prec map[string]int
}

var defaultprec = map[string]int{
	"+": 1,
	"-": 1,
	"*": 2,
	"/": 2,
	"%": 2,
	"^": 3,
}

// DefaultPrecedence returns the usual precedence table: ^ binds more tightly
// than *, /, and %, which bind more tightly than + and -.
func DefaultPrecedence() PrecedenceTable {
	return PrecedenceTable{prec: defaultprec}
}

// NewPrecedenceTable creates a precedence table from a map of operators to
// precedences. Every operator in Operators must be present with a precedence
// of at least 1, and no other keys may be present. The map is copied.
func NewPrecedenceTable(prec map[string]int) (PrecedenceTable, error) {
	m := make(map[string]int, len(prec))
	for k, v := range prec {
		if len(k) != 1 || !strings.Contains(Operators, k) {
			return PrecedenceTable{}, &PrecedenceError{Operator: k, Prec: v}
		}
		if v < 1 {
			return PrecedenceTable{}, &PrecedenceError{Operator: k, Prec: v}
		}
		m[k] = v
	}
	for _, r := range Operators {
		if _, ok := m[string(r)]; !ok {
			return PrecedenceTable{}, &PrecedenceError{Operator: string(r), Missing: true}
		}
	}
	return PrecedenceTable{prec: m}, nil
}

// Precedence returns the precedence of an operator and whether the operator is
// in the table.
func (t PrecedenceTable) Precedence(op string) (int, bool) {
	p, ok := t.table()[op]
	return p, ok
}

func (t PrecedenceTable) table() map[string]int {
	if t.prec == nil {
		return defaultprec
	}
	return t.prec
}

func (t PrecedenceTable) String() string {
	m := t.table()
	ops := make([]string, 0, len(m))
	for k := range m {
		ops = append(ops, k)
	}
	sort.Slice(ops, func(i, j int) bool {
		if m[ops[i]] != m[ops[j]] {
			return m[ops[i]] > m[ops[j]]
		}
		return strings.Index(Operators, ops[i]) < strings.Index(Operators, ops[j])
	})
	var b strings.Builder
	for i, k := range ops {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(strconv.Itoa(m[k]))
	}
	return b.String()
}

type opKind int8

const (
	opNone opKind = iota

	opAdd // left + right
	opSub // left - right
	opMul // left * right
	opDiv // left / right
	opMod // left % right, with the sign of left
	opPow // left ^ right
)

// binop gets the operation for an operator token. If there is no such
// operator, then the result is opNone.
func binop(text string) opKind {
	switch text {
	case "+":
		return opAdd
	case "-":
		return opSub
	case "*":
		return opMul
	case "/":
		return opDiv
	case "%":
		return opMod
	case "^":
		return opPow
	default:
		return opNone
	}
}

// apply computes the operation. Division and modulo by zero follow IEEE 754.
func (k opKind) apply(l, r float64) float64 {
	switch k {
	case opAdd:
		return l + r
	case opSub:
		return l - r
	case opMul:
		return l * r
	case opDiv:
		return l / r
	case opMod:
		return math.Mod(l, r)
	case opPow:
		return math.Pow(l, r)
	default:
		panic("calculator: invalid operation " + strconv.Itoa(int(k)))
	}
}

// divides reports whether the operation's right operand is a divisor.
func (k opKind) divides() bool {
	return k == opDiv || k == opMod
}
