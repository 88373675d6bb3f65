package calculator

import (
	"sync"

	"github.com/rs/zerolog"
)

// Context is an evaluation session. It remembers the result of the last
// binary operation applied by any evaluation so that an expression
// starting with an operator, like "* 2", continues from it. A Context is safe
// for concurrent use; evaluations are serialized.
type Context struct {
	mu sync.Mutex

	nums []float64
	ops  []Token

	last    float64
	hasLast bool

	prec   PrecedenceTable
	carry  bool
	strict bool
	log    zerolog.Logger
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	precopt   PrecedenceTable
	carryopt  bool
	strictopt bool
	logopt    zerolog.Logger
)

func (precopt) ctxOption()   {}
func (carryopt) ctxOption()  {}
func (strictopt) ctxOption() {}
func (logopt) ctxOption()    {}

// WithPrecedence sets the operator precedence table.
func WithPrecedence(t PrecedenceTable) ContextOption {
	return precopt(t)
}

// CarryLastResult sets whether an expression beginning with a binary operator
// uses the last result as its left operand. The default is true. Without
// carrying, such expressions are missing an operand.
func CarryLastResult(carry bool) ContextOption {
	return carryopt(carry)
}

// StrictDivision sets whether division or modulo by zero is an error. By
// default, the results follow IEEE 754, so 2/0 is +Inf and 2%0 is NaN.
func StrictDivision(strict bool) ContextOption {
	return strictopt(strict)
}

// WithLogger sets the logger for evaluation details. The default discards
// all logs.
func WithLogger(log zerolog.Logger) ContextOption {
	return logopt(log)
}

// NewContext creates a new evaluation context with no last result.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{
		prec:  DefaultPrecedence(),
		carry: true,
		log:   zerolog.Nop(),
	}
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context, including its last result, and applies
// options to it.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	ctx.mu.Lock()
	n := Context{
		last:    ctx.last,
		hasLast: ctx.hasLast,
		prec:    ctx.prec,
		carry:   ctx.carry,
		strict:  ctx.strict,
		log:     ctx.log,
	}
	ctx.mu.Unlock()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case precopt:
			n.prec = PrecedenceTable(opt)
		case carryopt:
			n.carry = bool(opt)
		case strictopt:
			n.strict = bool(opt)
		case logopt:
			n.log = zerolog.Logger(opt)
		default:
			panic("calculator: unknown option type")
		}
	}
	return &n
}

// LastResult returns the last result and whether there is one.
func (ctx *Context) LastResult() (float64, bool) {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	return ctx.last, ctx.hasLast
}

// Clear forgets the last result.
func (ctx *Context) Clear() {
	ctx.mu.Lock()
	ctx.last, ctx.hasLast = 0, false
	ctx.mu.Unlock()
	ctx.log.Debug().Msg("last result cleared")
}

// Precedence returns the context's operator precedence table.
func (ctx *Context) Precedence() PrecedenceTable {
	return ctx.prec
}

// Eval evaluates an expression and returns the result. Operators are applied
// by precedence, left to right among equal precedence. A - at the start of the
// expression or after another operator negates the number following it.
//
// Each binary operator applied sets the context's last result, even if the
// evaluation fails later, e.g. "1 + 2 +" leaves 3. Every error other than a
// DomainError is an InputError that unwraps to ErrInvalidExpression.
func (ctx *Context) Eval(expr string) (float64, error) {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	if err := Validate(expr); err != nil {
		ctx.log.Debug().Str("expr", expr).Err(err).Msg("rejected")
		return 0, err
	}
	toks := Tokenize(expr)
	ctx.log.Debug().Str("expr", expr).Stringer("tokens", tokenList(toks)).Msg("tokenized")
	r, err := ctx.eval(toks)
	if err != nil {
		ctx.log.Debug().Str("expr", expr).Err(err).Msg("evaluation failed")
		return 0, err
	}
	ctx.log.Debug().Str("expr", expr).Float64("result", r).Msg("evaluated")
	return r, nil
}

// eval runs the operator precedence algorithm over toks. ctx.mu must be held.
func (ctx *Context) eval(toks []Token) (float64, error) {
	ctx.nums = ctx.nums[:0]
	ctx.ops = ctx.ops[:0]
	end := 1
	if len(toks) > 0 {
		t := toks[len(toks)-1]
		end = t.Pos + len([]rune(t.Text))
	}
	if len(toks) == 0 {
		return 0, &EmptyExpressionError{Col: end}
	}

	if ctx.carry && ctx.hasLast && toks[0].IsOperator() && toks[0].Text != "-" {
		ctx.push(ctx.last)
	}
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		switch tok.kind {
		case tokenNum:
			ctx.push(tok.Value)
		case tokenOp:
			if tok.Text == "-" && (i == 0 || toks[i-1].IsOperator()) {
				// Sign prefix.
				if i+1 >= len(toks) || !toks[i+1].IsNumber() {
					return 0, &OperandError{Col: tok.Pos, Operator: tok.Text, Unary: true}
				}
				i++
				ctx.push(-toks[i].Value)
				continue
			}
			p, ok := ctx.prec.Precedence(tok.Text)
			if !ok {
				panic("calculator: no precedence for operator " + tok.Text)
			}
			for len(ctx.ops) > 0 {
				q, ok := ctx.prec.Precedence(ctx.ops[len(ctx.ops)-1].Text)
				if !ok || p > q {
					break
				}
				if err := ctx.apply(); err != nil {
					return 0, err
				}
			}
			ctx.ops = append(ctx.ops, tok)
		default:
			return 0, &TokenError{Col: tok.Pos, Text: tok.Text}
		}
	}
	for len(ctx.ops) > 0 {
		if err := ctx.apply(); err != nil {
			return 0, err
		}
	}
	if len(ctx.nums) != 1 {
		return 0, &SurplusError{Col: end, Count: len(ctx.nums)}
	}
	return ctx.pop(), nil
}

// apply pops an operator and its two operands, pushes the result, and records
// it as the last result.
func (ctx *Context) apply() error {
	op := ctx.ops[len(ctx.ops)-1]
	ctx.ops = ctx.ops[:len(ctx.ops)-1]
	if len(ctx.nums) < 2 {
		return &OperandError{Col: op.Pos, Operator: op.Text}
	}
	r := ctx.pop()
	l := ctx.pop()
	k := binop(op.Text)
	if ctx.strict && k.divides() && r == 0 {
		return &DomainError{X: l, Func: op.Text, Col: op.Pos}
	}
	v := k.apply(l, r)
	ctx.log.Trace().Float64("left", l).Str("op", op.Text).Float64("right", r).Float64("result", v).Msg("apply")
	ctx.push(v)
	ctx.last, ctx.hasLast = v, true
	return nil
}

func (ctx *Context) push(v float64) {
	ctx.nums = append(ctx.nums, v)
}

// pop removes the top from the operand stack and returns it.
func (ctx *Context) pop() float64 {
	v := ctx.nums[len(ctx.nums)-1]
	ctx.nums = ctx.nums[:len(ctx.nums)-1]
	return v
}

// EvalString is a shortcut to evaluate an expression in a new context.
func EvalString(expr string, opts ...ContextOption) (float64, error) {
	return NewContext(opts...).Eval(expr)
}

type tokenList []Token

func (l tokenList) String() string {
	b := make([]byte, 0, 8*len(l))
	b = append(b, '[')
	for i, t := range l {
		if i > 0 {
			b = append(b, ' ')
		}
		b = append(b, t.Text...)
	}
	return string(append(b, ']'))
}
