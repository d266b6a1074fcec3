package brain

import (
	"strconv"
	"strings"
)

// describe renders the expression ending at the top of s in infix form. It
// follows the same traversal as eval, except that variables are described by
// name whether or not they have values.
func describe(s []entry) (d string, rest []entry, ok bool) {
	if len(s) == 0 {
		return "", s, false
	}
	e, rest := s[len(s)-1], s[:len(s)-1]
	switch e.kind {
	case entryOperand, entryConstant, entryVariable:
		return e.String(), rest, true
	case entryUnary:
		if x, rest, ok := describe(rest); ok {
			return e.name + "(" + x + ")", rest, true
		}
	case entryBinary:
		x, rest, ok := describe(rest)
		if !ok {
			break
		}
		y, rest, ok := describe(rest)
		if !ok {
			break
		}
		var b strings.Builder
		b.Grow(len(x) + len(y) + len(e.name) + 2)
		b.WriteByte('(')
		b.WriteString(y)
		b.WriteString(e.name)
		b.WriteString(x)
		b.WriteByte(')')
		return b.String(), rest, true
	default:
		panic("brain: invalid entry kind " + e.kind.String())
	}
	return "", s, false
}

// formatNum formats an operand so that strconv.ParseFloat recovers it
// exactly. Integral values get a trailing ".0" so they read as reals.
func formatNum(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}
	return s
}
