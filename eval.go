package rpn

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Context is a context for evaluating postfix expressions. It holds the
// value stack and the variable store. It is not safe to use a Context
// concurrently.
type Context struct {
	stack []value
	store *Store
	err   error
}

// value is one entry on the evaluation stack. A symbol stays unresolved
// until an operator consumes it, because it may instead be the target of
// an assignment.
type value struct {
	num  float64
	name string
	sym  bool
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt  map[string]float64
	storeopt struct {
		store *Store
	}
)

func (varopt) ctxOption()   {}
func (varsopt) ctxOption()  {}
func (storeopt) ctxOption() {}

// SetVar sets the value of a variable in the context's store.
func SetVar(name string, val float64) ContextOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the context's
// store.
func SetVars(vars map[string]float64) ContextOption {
	return varsopt(vars)
}

// WithStore makes the context evaluate against an existing store rather
// than a fresh one. A REPL uses this to keep variables across expressions
// while re-creating contexts.
func WithStore(store *Store) ContextOption {
	return storeopt{store}
}

// NewContext creates a new evaluation context. Unless WithStore is given,
// the context owns a fresh empty store.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{}
	// First, check for a store. Loop backward so we keep the last one.
	for i := len(opts) - 1; i >= 0; i-- {
		if o, ok := opts[i].(storeopt); ok {
			ctx.store = o.store
			break
		}
	}
	if ctx.store == nil {
		ctx.store = NewStore()
	}
	for _, opt := range opts {
		switch opt := opt.(type) {
		case varopt:
			ctx.store.Set(opt.name, opt.val)
		case varsopt:
			for k, v := range opt {
				ctx.store.Set(k, v)
			}
		case storeopt:
			// Already done. Do nothing.
		default:
			panic("rpn: unknown option type")
		}
	}
	return &ctx
}

// Store returns the context's variable store.
func (ctx *Context) Store() *Store {
	return ctx.store
}

// Set sets the value of a variable. Returns ctx for chaining.
func (ctx *Context) Set(name string, value float64) *Context {
	ctx.store.Set(name, value)
	return ctx
}

// Lookup returns the value of a variable. The second result is false if
// the variable has never been assigned.
func (ctx *Context) Lookup(name string) (float64, bool) {
	return ctx.store.Get(name)
}

// Err returns the error from the most recent Eval, if any.
func (ctx *Context) Err() error {
	return ctx.err
}

// Eval evaluates a postfix expression and returns the result. Assignments
// write through to the context's store as they are evaluated; an
// assignment that completed before a later error is not rolled back.
func (ctx *Context) Eval(p Postfix) (float64, error) {
	ctx.stack = ctx.stack[:0]
	r, err := ctx.eval(p)
	ctx.err = err
	return r, err
}

func (ctx *Context) eval(p Postfix) (float64, error) {
	for _, tok := range p {
		switch tok.Kind {
		case TokNum:
			n, err := strconv.ParseFloat(tok.Text, 64)
			if err != nil {
				// Huge literals clamp to infinity. Anything else the lexer
				// already rejected.
				if e, ok := err.(*strconv.NumError); !ok || e.Err != strconv.ErrRange {
					panic("rpn: invalid number: " + tok.Text)
				}
			}
			ctx.push(value{num: n})
		case TokSym:
			ctx.push(value{name: tok.Text, sym: true})
		case TokAssign:
			if len(ctx.stack) < 2 {
				return 0, &StackError{Op: tok.Text, Len: len(ctx.stack)}
			}
			rhs, err := ctx.resolve(ctx.pop())
			if err != nil {
				return 0, err
			}
			target := ctx.pop()
			if !target.sym {
				return 0, &AssignTargetError{Col: tok.Pos}
			}
			ctx.store.Set(target.name, rhs)
			ctx.push(value{num: rhs})
		default:
			if !tok.operator() {
				panic("rpn: unexpected token in postfix sequence: " + tok.String())
			}
			if tok.Unary {
				if len(ctx.stack) < 1 {
					return 0, &StackError{Op: tok.Text, Len: 0}
				}
				v, err := ctx.resolve(ctx.pop())
				if err != nil {
					return 0, err
				}
				switch tok.Kind {
				case TokMinus:
					v = -v
				case TokNot:
					v = truth(v == 0)
				default:
					panic("rpn: invalid unary operator token " + tok.String())
				}
				ctx.push(value{num: v})
				continue
			}
			if len(ctx.stack) < 2 {
				return 0, &StackError{Op: tok.Text, Len: len(ctx.stack)}
			}
			r, err := ctx.resolve(ctx.pop())
			if err != nil {
				return 0, err
			}
			l, err := ctx.resolve(ctx.pop())
			if err != nil {
				return 0, err
			}
			v, err := apply(tok, l, r)
			if err != nil {
				return 0, err
			}
			ctx.push(value{num: v})
		}
	}
	if len(ctx.stack) != 1 {
		return 0, &StackError{Len: len(ctx.stack)}
	}
	return ctx.resolve(ctx.pop())
}

// push adds a value to the top of the stack.
func (ctx *Context) push(v value) {
	ctx.stack = append(ctx.stack, v)
}

// pop removes the top of the stack and returns it.
func (ctx *Context) pop() value {
	v := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return v
}

// resolve turns a stack entry into a number, looking up symbols in the
// store.
func (ctx *Context) resolve(v value) (float64, error) {
	if !v.sym {
		return v.num, nil
	}
	n, ok := ctx.store.Get(v.name)
	if !ok {
		return 0, &NameError{Name: v.name}
	}
	return n, nil
}

// apply computes a binary operation other than assignment.
func apply(tok Token, l, r float64) (float64, error) {
	switch tok.Kind {
	case TokPlus:
		return l + r, nil
	case TokMinus:
		return l - r, nil
	case TokStar:
		return l * r, nil
	case TokSlash:
		if r == 0 {
			return 0, &DivisionError{Col: tok.Pos, Op: "/"}
		}
		return l / r, nil
	case TokPercent:
		if r == 0 {
			return 0, &DivisionError{Col: tok.Pos, Op: "%"}
		}
		return math.Mod(l, r), nil
	case TokCaret:
		return math.Pow(l, r), nil
	case TokLess:
		return truth(l < r), nil
	case TokGreater:
		return truth(l > r), nil
	case TokLessEq:
		return truth(l <= r), nil
	case TokGreaterEq:
		return truth(l >= r), nil
	case TokEqual:
		return truth(l == r), nil
	case TokNotEqual:
		return truth(l != r), nil
	case TokAnd:
		return truth(l != 0 && r != 0), nil
	case TokOr:
		return truth(l != 0 || r != 0), nil
	default:
		panic("rpn: invalid binary operator token " + tok.String())
	}
}

// truth maps a condition onto the numeric logic domain, where any nonzero
// value is true.
func truth(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Eval is a shortcut to convert an expression and return its result.
func Eval(src io.RuneScanner, opts ...ContextOption) (float64, error) {
	p, err := Convert(src)
	if err != nil {
		return 0, err
	}
	return NewContext(opts...).Eval(p)
}

// EvalString is a shortcut to convert and evaluate a string expression.
func EvalString(src string, opts ...ContextOption) (float64, error) {
	return Eval(strings.NewReader(src), opts...)
}

// NameError is an error from a lookup for a variable that is missing from
// the store.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

// AssignTargetError is an error indicating an assignment whose left
// operand is not a variable name, e.g. "3 = x". It implements InputError.
type AssignTargetError struct {
	// Col is the position of the assignment operator.
	Col int
}

func (err *AssignTargetError) Error() string {
	return errpos(err.Col, "assignment target is not a variable")
}

func (err *AssignTargetError) Pos() int {
	return err.Col
}

// DivisionError is an error indicating division or modulo by zero. It
// implements InputError.
type DivisionError struct {
	// Col is the position of the operator.
	Col int
	// Op is "/" or "%".
	Op string
}

func (err *DivisionError) Error() string {
	if err.Op == "%" {
		return errpos(err.Col, "modulo by zero")
	}
	return errpos(err.Col, "division by zero")
}

func (err *DivisionError) Pos() int {
	return err.Col
}

// StackError is an error indicating a malformed postfix sequence: either
// an operator without enough operands, or a sequence that leaves other
// than exactly one value behind.
type StackError struct {
	// Op is the operator that was short of operands, or the empty string
	// if the sequence finished with the wrong number of values.
	Op string
	// Len is the number of values on the stack at the point of failure.
	Len int
}

func (err *StackError) Error() string {
	if err.Op != "" {
		return "operator " + strconv.Quote(err.Op) + " with " + strconv.Itoa(err.Len) + " operands"
	}
	return "malformed expression: " + strconv.Itoa(err.Len) + " values remain"
}
