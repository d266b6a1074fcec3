package brain

import (
	"log"
	"math"
	"strings"
)

// Brain is the model of a calculator: a stack of entries, a set of variable
// bindings, and the operations and constants it knows. It is not safe to use
// a Brain concurrently.
type Brain struct {
	stack  []entry
	vars   map[string]float64
	consts map[string]float64
	ops    *Registry
	prec   uint
	trace  *log.Logger
}

// Option is an option used when creating a Brain.
type Option interface {
	brainOption()
}

type (
	opopt struct {
		symbol string
		op     Op
	}
	opsopt   struct{ r *Registry }
	constopt struct {
		name string
		val  float64
	}
	varopt struct {
		name string
		val  float64
	}
	varsopt  map[string]float64
	precopt  uint
	extopt   struct{}
	traceopt struct{ l *log.Logger }
)

func (opopt) brainOption()    {}
func (opsopt) brainOption()   {}
func (constopt) brainOption() {}
func (varopt) brainOption()   {}
func (varsopt) brainOption()  {}
func (precopt) brainOption()  {}
func (extopt) brainOption()   {}
func (traceopt) brainOption() {}

// Operation registers an operation in addition to the built-in ones, or
// replaces one. Passing the zero Op removes the symbol.
func Operation(symbol string, op Op) Option {
	return opopt{symbol, op}
}

// Operations replaces the built-in operations with a copy of r. A nil r means
// no operations. Extended and Operation options still apply on top of it.
func Operations(r *Registry) Option {
	return opsopt{r}
}

// Constant adds a named constant. PushSymbol pushes constants with their
// values fixed instead of as variables. π is always a constant unless
// replaced.
func Constant(name string, val float64) Option {
	return constopt{name, val}
}

// SetVar sets the value of a variable in the new Brain.
func SetVar(name string, val float64) Option {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the new Brain.
func SetVars(vars map[string]float64) Option {
	return varsopt(vars)
}

// Prec sets the precision in bits of the extended operations that are
// computed with arbitrary precision. The default is 64.
func Prec(prec uint) Option {
	return precopt(prec)
}

// Extended enables the operations xʸ, eˣ, ln, ±, and tan.
func Extended() Option {
	return extopt{}
}

// Trace logs every evaluation of the stack to l.
func Trace(l *log.Logger) Option {
	return traceopt{l}
}

// New creates a Brain with an empty stack.
func New(opts ...Option) *Brain {
	b := Brain{
		vars:   make(map[string]float64),
		consts: map[string]float64{"π": math.Pi},
		ops:    NewRegistry(),
		prec:   64,
	}
	// Options that others depend on come first. Loop backward so that the
	// last one applies.
	for i := len(opts) - 1; i >= 0; i-- {
		if p, ok := opts[i].(precopt); ok {
			b.prec = uint(p)
			break
		}
	}
	for i := len(opts) - 1; i >= 0; i-- {
		if r, ok := opts[i].(opsopt); ok {
			b.ops = r.r.clone()
			break
		}
	}
	for _, opt := range opts {
		if _, ok := opt.(extopt); ok {
			for k, v := range extended(b.prec) {
				b.ops.Register(k, v)
			}
			break
		}
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case opopt:
			b.ops.Register(opt.symbol, opt.op)
		case constopt:
			b.consts[opt.name] = opt.val
		case varopt:
			b.vars[opt.name] = opt.val
		case varsopt:
			for k, v := range opt {
				b.vars[k] = v
			}
		case traceopt:
			b.trace = opt.l
		case precopt, opsopt, extopt:
			// Already done.
		default:
			panic("brain: unknown option type")
		}
	}
	return &b
}

// PushOperand pushes a number and evaluates the stack.
func (b *Brain) PushOperand(v float64) (float64, bool) {
	b.stack = append(b.stack, entry{kind: entryOperand, val: v})
	return b.Evaluate()
}

// PushSymbol pushes a constant, if name is one, or else a variable, and
// evaluates the stack. The variable does not need to have a value yet.
func (b *Brain) PushSymbol(name string) (float64, bool) {
	if v, ok := b.consts[name]; ok {
		b.stack = append(b.stack, entry{kind: entryConstant, name: name, val: v})
	} else {
		b.stack = append(b.stack, entry{kind: entryVariable, name: name})
	}
	return b.Evaluate()
}

// PerformOperation pushes the operation registered for symbol and evaluates
// the stack. If there is no such operation, the stack is unchanged and the
// result is the current evaluation.
func (b *Brain) PerformOperation(symbol string) (float64, bool) {
	if op, ok := b.ops.Lookup(symbol); ok {
		b.stack = append(b.stack, op.entry(symbol))
	}
	return b.Evaluate()
}

// Known returns whether PerformOperation recognizes symbol.
func (b *Brain) Known(symbol string) bool {
	_, ok := b.ops.Lookup(symbol)
	return ok
}

// SetVariable sets the value of a variable. The stack is not evaluated.
// Returns b for chaining.
func (b *Brain) SetVariable(name string, val float64) *Brain {
	b.vars[name] = val
	return b
}

// Variable returns the value of a variable, if it has one.
func (b *Brain) Variable(name string) (float64, bool) {
	v, ok := b.vars[name]
	return v, ok
}

// Evaluate evaluates the expression at the top of the stack. The result is
// false if the expression is incomplete or uses a variable with no value.
// Entries below the top expression are ignored.
func (b *Brain) Evaluate() (float64, bool) {
	// Entries are never modified, so the evaluator can share the array.
	s := b.stack[:len(b.stack):len(b.stack)]
	r, rest, ok := b.eval(s)
	if b.trace != nil {
		res := "no result"
		if ok {
			res = formatNum(r)
		}
		b.trace.Printf("[%s] = %s with [%s] left over", join(s), res, join(rest))
	}
	return r, ok
}

// Description returns the infix form of the expression at the top of the
// stack, e.g. "(3.0+4.0)". The result is false if there is no complete
// expression at the top.
func (b *Brain) Description() (string, bool) {
	d, _, ok := describe(b.stack)
	return d, ok
}

// Descriptions returns the infix forms of all complete expressions on the
// stack, oldest first and separated by commas. Describing stops at the first
// incomplete expression from the top.
func (b *Brain) Descriptions() (string, bool) {
	var v []string
	for s := b.stack; len(s) > 0; {
		d, rest, ok := describe(s)
		if !ok {
			break
		}
		v = append(v, d)
		s = rest
	}
	if len(v) == 0 {
		return "", false
	}
	for i, j := 0, len(v)-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
	return strings.Join(v, ", "), true
}

// Stack returns the text of each entry on the stack, bottom first.
func (b *Brain) Stack() []string {
	v := make([]string, len(b.stack))
	for i, e := range b.stack {
		v[i] = e.String()
	}
	return v
}

// ClearStack removes all entries from the stack. Variables keep their values.
func (b *Brain) ClearStack() {
	b.stack = nil
}

// ClearVariables removes all variable values. The stack is unchanged.
func (b *Brain) ClearVariables() {
	b.vars = make(map[string]float64)
}

// ClearAll clears both the stack and the variables.
func (b *Brain) ClearAll() {
	b.ClearStack()
	b.ClearVariables()
}

// Clone creates a copy of b with its own stack and variables. Operations,
// constants, and tracing are shared.
func (b *Brain) Clone() *Brain {
	n := Brain{
		stack:  make([]entry, len(b.stack)),
		vars:   make(map[string]float64, len(b.vars)),
		consts: b.consts,
		ops:    b.ops,
		prec:   b.prec,
		trace:  b.trace,
	}
	copy(n.stack, b.stack)
	for k, v := range b.vars {
		n.vars[k] = v
	}
	return &n
}

func join(s []entry) string {
	var sb strings.Builder
	for i, e := range s {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(e.String())
	}
	return sb.String()
}
