package brain_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/zephyrtronium/brain"
)

func TestDescription(t *testing.T) {
	cases := []struct {
		name  string
		items []interface{}
		d     string
		ok    bool
	}{
		{"empty", nil, "", false},
		{"num", []interface{}{3}, "3.0", true},
		{"frac", []interface{}{0.5}, "0.5", true},
		{"neg", []interface{}{-2}, "-2.0", true},
		{"big", []interface{}{1e21}, "1e+21", true},
		{"add", []interface{}{3, 4, "+"}, "(3.0+4.0)", true},
		{"sub", []interface{}{5, 3, "−"}, "(5.0−3.0)", true},
		{"div", []interface{}{1, 0, "÷"}, "(1.0÷0.0)", true},
		{"sqrt", []interface{}{16, "√"}, "√(16.0)", true},
		{"sin", []interface{}{"π", "sin"}, "sin(π)", true},
		{"var", []interface{}{"x", 2, "×"}, "(x×2.0)", true},
		{"nested", []interface{}{3, 5, 4, "+", "×"}, "(3.0×(5.0+4.0))", true},
		{"unary-of-binary", []interface{}{3, 4, "+", "√"}, "√((3.0+4.0))", true},
		{"top-only", []interface{}{1, 2, 3, "+"}, "(2.0+3.0)", true},
		{"one-operand", []interface{}{3, "+"}, "", false},
		{"no-operand", []interface{}{"+"}, "", false},
		{"unary-no-operand", []interface{}{"cos"}, "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := brain.New()
			push(b, c.items...)
			d, ok := b.Description()
			if ok != c.ok {
				t.Fatalf("wrong ok: want %t, got %t (description %q)", c.ok, ok, d)
			}
			if d != c.d {
				t.Errorf("wrong description: want %q, got %q", c.d, d)
			}
		})
	}
}

func TestDescriptions(t *testing.T) {
	cases := []struct {
		name  string
		items []interface{}
		d     string
		ok    bool
	}{
		{"empty", nil, "", false},
		{"one", []interface{}{3, 4, "+"}, "(3.0+4.0)", true},
		{"two", []interface{}{3, 4, "+", 5, "√"}, "(3.0+4.0), √(5.0)", true},
		{"three", []interface{}{1, "x", 2, "×"}, "1.0, (x×2.0)", true},
		{"broken-below", []interface{}{"+", 3, 4, "+"}, "(3.0+4.0)", true},
		{"broken-top", []interface{}{3, 4, "+", "×", "÷"}, "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := brain.New()
			push(b, c.items...)
			d, ok := b.Descriptions()
			if ok != c.ok {
				t.Fatalf("wrong ok: want %t, got %t (description %q)", c.ok, ok, d)
			}
			if d != c.d {
				t.Errorf("wrong description: want %q, got %q", c.d, d)
			}
		})
	}
}

func TestDescriptionParses(t *testing.T) {
	cases := []float64{
		0, 1, -1, 3, 0.1, 1.0 / 3, 123456789, 1e21, 1e-7, 2.5e-300,
		math.MaxFloat64, math.SmallestNonzeroFloat64, math.Pi,
		math.Inf(1), math.Inf(-1),
	}
	for _, v := range cases {
		b := brain.New()
		b.PushOperand(v)
		d, ok := b.Description()
		if !ok {
			t.Errorf("no description for %g", v)
			continue
		}
		r, err := strconv.ParseFloat(d, 64)
		if err != nil {
			t.Errorf("description %q of %g doesn't parse: %v", d, v, err)
			continue
		}
		if r != v {
			t.Errorf("description %q of %g parses to %g", d, v, r)
		}
	}
}

func TestStack(t *testing.T) {
	b := brain.New()
	push(b, 3, "x", "π", "+", "√", 0.25)
	want := []string{"3.0", "x", "π", "+", "√", "0.25"}
	got := b.Stack()
	if len(got) != len(want) {
		t.Fatalf("wrong stack: want %q, got %q", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: want %q, got %q", i, want[i], got[i])
		}
	}
}
