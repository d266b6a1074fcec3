package brain

// eval evaluates the expression ending at the top of s. It returns the result
// and the entries below the expression. If the expression cannot be
// evaluated, the result is false and rest is s itself, so that failure at any
// level consumes nothing.
func (b *Brain) eval(s []entry) (r float64, rest []entry, ok bool) {
	if len(s) == 0 {
		return 0, s, false
	}
	e, rest := s[len(s)-1], s[:len(s)-1]
	switch e.kind {
	case entryOperand, entryConstant:
		return e.val, rest, true
	case entryVariable:
		if v, ok := b.vars[e.name]; ok {
			return v, rest, true
		}
	case entryUnary:
		if x, rest, ok := b.eval(rest); ok {
			return e.un(x), rest, true
		}
	case entryBinary:
		x, rest, ok := b.eval(rest)
		if !ok {
			break
		}
		y, rest, ok := b.eval(rest)
		if !ok {
			break
		}
		return e.bin(x, y), rest, true
	default:
		panic("brain: invalid entry kind " + e.kind.String())
	}
	return 0, s, false
}
