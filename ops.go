package brain

import (
	"errors"
	"math"
	"math/big"
	"sort"

	"github.com/zephyrtronium/bigfloat"
)

// Op is an operation that can be pushed onto a Brain's stack. The zero Op is
// not an operation; registering it removes a symbol.
type Op struct {
	un  func(float64) float64
	bin func(a, b float64) float64
}

// Unary creates an operation of one operand.
func Unary(f func(float64) float64) Op {
	return Op{un: f}
}

// Binary creates an operation of two operands. f receives the operand nearest
// the top of the stack as a and the one below it as b, so e.g. subtraction in
// the usual order is func(a, b float64) float64 { return b - a }.
func Binary(f func(a, b float64) float64) Op {
	return Op{bin: f}
}

// Arity returns the number of operands the operation consumes, or 0 for the
// zero Op.
func (op Op) Arity() int {
	switch {
	case op.un != nil:
		return 1
	case op.bin != nil:
		return 2
	default:
		return 0
	}
}

// entry creates a stack entry for the operation.
func (op Op) entry(symbol string) entry {
	switch op.Arity() {
	case 1:
		return entry{kind: entryUnary, name: symbol, un: op.un}
	case 2:
		return entry{kind: entryBinary, name: symbol, bin: op.bin}
	default:
		panic("brain: entry for zero Op " + symbol)
	}
}

// Registry maps operation symbols to operations. Symbols are matched exactly;
// "-" and "−" are different symbols.
type Registry struct {
	ops map[string]Op
}

// NewRegistry creates a registry holding the built-in operations: ×, ÷, +, −,
// √, sin, and cos.
func NewRegistry() *Registry {
	r := Registry{ops: make(map[string]Op, len(builtins))}
	for k, v := range builtins {
		r.ops[k] = v
	}
	return &r
}

// Register sets the operation for a symbol, replacing any previous one. If op
// is the zero Op, the symbol is removed instead. Returns r for chaining.
func (r *Registry) Register(symbol string, op Op) *Registry {
	if r.ops == nil {
		r.ops = make(map[string]Op)
	}
	if op.Arity() == 0 {
		delete(r.ops, symbol)
		return r
	}
	r.ops[symbol] = op
	return r
}

// Lookup returns the operation registered for symbol.
func (r *Registry) Lookup(symbol string) (Op, bool) {
	op, ok := r.ops[symbol]
	return op, ok
}

// Symbols returns the registered symbols in sorted order.
func (r *Registry) Symbols() []string {
	s := make([]string, 0, len(r.ops))
	for k := range r.ops {
		s = append(s, k)
	}
	sort.Strings(s)
	return s
}

// clone copies the registry. A nil registry copies as an empty one.
func (r *Registry) clone() *Registry {
	if r == nil {
		return &Registry{ops: make(map[string]Op)}
	}
	n := Registry{ops: make(map[string]Op, len(r.ops))}
	for k, v := range r.ops {
		n.ops[k] = v
	}
	return &n
}

var builtins = map[string]Op{
	"×":   Binary(func(a, b float64) float64 { return a * b }),
	"÷":   Binary(func(a, b float64) float64 { return b / a }),
	"+":   Binary(func(a, b float64) float64 { return a + b }),
	"−":   Binary(func(a, b float64) float64 { return b - a }),
	"√":   Unary(math.Sqrt),
	"sin": Unary(math.Sin),
	"cos": Unary(math.Cos),
}

// extended returns the operations enabled by Extended. Powers, exponentials,
// and logarithms are computed to prec bits before rounding to float64.
func extended(prec uint) map[string]Op {
	return map[string]Op{
		"xʸ": Binary(func(a, b float64) float64 { return pow(prec, b, a) }),
		"eˣ": Unary(func(x float64) float64 {
			// Outside this range the float64 result is 0 or +Inf, and
			// bigfloat's argument reduction is slow.
			if !finite(x) || x > 710 || x < -746 {
				return math.Exp(x)
			}
			return precise(prec, func(z *big.Float, x []*big.Float) *big.Float { return bigfloat.Exp(z, x[0]) }, x)
		}),
		"ln": Unary(func(x float64) float64 {
			if !finite(x) || x <= 0 {
				return math.Log(x)
			}
			return precise(prec, func(z *big.Float, x []*big.Float) *big.Float { return bigfloat.Log(z, x[0]) }, x)
		}),
		"±":   Unary(func(x float64) float64 { return -x }),
		"tan": Unary(math.Tan),
	}
}

// pow computes x^y. A negative base requires an integer exponent.
func pow(prec uint, x, y float64) float64 {
	switch {
	case x == 0, !finite(x), !finite(y), y == 0:
		return math.Pow(x, y)
	case x < 0:
		if y != math.Trunc(y) {
			return math.NaN()
		}
		r := pow(prec, -x, y)
		if math.Mod(y, 2) != 0 {
			r = -r
		}
		return r
	}
	if e := y * math.Log2(x); e > 1100 || e < -1100 {
		// Overflows or underflows float64 regardless of precision.
		return math.Pow(x, y)
	}
	return precise(prec, func(z *big.Float, x []*big.Float) *big.Float { return bigfloat.Pow(z, x[0], x[1]) }, x, y)
}

// precise evaluates f on xs converted to big floats of precision prec and
// rounds the result to float64. f may return z or a different value; the
// returned one is the result. If f panics with big.ErrNaN, the result is NaN.
func precise(prec uint, f func(z *big.Float, x []*big.Float) *big.Float, xs ...float64) (r float64) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		err, ok := p.(error)
		if !ok || !errors.As(err, &big.ErrNaN{}) {
			panic(p)
		}
		r = math.NaN()
	}()
	in := make([]*big.Float, len(xs))
	for i, x := range xs {
		in[i] = new(big.Float).SetPrec(prec).SetFloat64(x)
	}
	z := new(big.Float).SetPrec(prec)
	r, _ = f(z, in).Float64()
	return r
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
