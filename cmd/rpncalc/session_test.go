package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zephyrtronium/brain"
)

func TestSession(t *testing.T) {
	cases := []struct {
		name string
		src  string
		echo bool
		out  string
		errs string
	}{
		{"add", "3 4 +", false, "7\n", ""},
		{"ascii-sub", "5 3 -", false, "2\n", ""},
		{"unicode-sub", "5 3 −", false, "2\n", ""},
		{"negative-literal", "0 -5 +", false, "-5\n", ""},
		{"negative-mul", "7 -2 *", false, "-14\n", ""},
		{"sub-of-negative", "1 -2 -", false, "3\n", ""},
		{"ascii-aliases", "2 sqrt pi * 8 /", false, fmt.Sprintf("%g\n", math.Sqrt(2)*math.Pi/8), ""},
		{"incomplete", "3 +", false, "?\n", ""},
		{"lines", "3 4 +\n2 ×", false, "7\n14\n", ""},
		{"blank-lines", "\n3\n\n", false, "3\n", ""},
		{"assign", "3 4 + →x\nclear x 2 *", false, "7\n14\n", ""},
		{"late-binding", "x 1 +\n5 →x\nclear x 1 +", false, "?\n5\n6\n", ""},
		{"clear-all", "3 4 + →x C x", false, "?\n", ""},
		{"clear-vars", "1 →x clearvars x", false, "?\n", ""},
		{"unknown-op", "3 4 ∑", false, "4\n", ""},
		{"echo", "3 4 + 5 sqrt", true, fmt.Sprintf("(3.0+4.0), √(5.0) = %g\n", math.Sqrt(5)), ""},
		{"echo-none", "+", true, " = ?\n", ""},
		{"lex-error", "1.2.3 5\n2 3 +", false, "5\n", "invalid number"},
		{"lex-error-after-tokens", "2 3 + 1..\n", false, "5\n", "invalid number"},
		{"assign-no-result", "→x", false, "?\n", "no result to assign to x"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out, errs strings.Builder
			s := session{
				b:    brain.New(),
				errs: log.New(&errs, "", 0),
				verb: "%g\n",
				echo: c.echo,
			}
			if err := s.run(strings.NewReader(c.src), &out); err != nil {
				t.Fatalf("%q: %v", c.src, err)
			}
			if out.String() != c.out {
				t.Errorf("%q: wrong output:\n\twant %q\n\tgot  %q", c.src, c.out, out.String())
			}
			if c.errs == "" && errs.Len() != 0 {
				t.Errorf("%q: unexpected errors %q", c.src, errs.String())
			}
			if c.errs != "" && !strings.Contains(errs.String(), c.errs) {
				t.Errorf("%q: errors %q don't mention %q", c.src, errs.String(), c.errs)
			}
		})
	}
}

func TestSessionPrompt(t *testing.T) {
	var out strings.Builder
	s := session{
		b:      brain.New(),
		errs:   log.New(&out, "", 0),
		verb:   "%g\n",
		prompt: "> ",
	}
	if err := s.run(strings.NewReader("1 2 +\n"), &out); err != nil {
		t.Fatal(err)
	}
	if want := "> 3\n> "; out.String() != want {
		t.Errorf("wrong output: want %q, got %q", want, out.String())
	}
}

func TestEvalLine(t *testing.T) {
	b := brain.New(brain.SetVar("y", 3))
	b.PushOperand(10)
	r, err := evalLine(b, "2 pi *")
	if err != nil {
		t.Fatal(err)
	}
	if r != 2*math.Pi {
		t.Errorf("2 pi * gave %g", r)
	}
	if r, err := evalLine(b, "y 1 +"); err != nil || r != 4 {
		t.Errorf("y 1 + gave %g, %v", r, err)
	}
	if got := b.Stack(); len(got) != 1 || got[0] != "10.0" {
		t.Errorf("evalLine changed the stack to %q", got)
	}
	for _, src := range []string{"+", "z", "1.2.3", ""} {
		if r, err := evalLine(b, src); err == nil {
			t.Errorf("%q gave %g with no error", src, r)
		}
	}
}

func TestLoadVars(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte("x: 3\ny: 0.5\nbig: 1e10\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	vars, err := loadVars(good)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]float64{"x": 3, "y": 0.5, "big": 1e10}
	if len(vars) != len(want) {
		t.Errorf("wrong vars: want %v, got %v", want, vars)
	}
	for k, v := range want {
		if vars[k] != v {
			t.Errorf("%s: want %g, got %g", k, v, vars[k])
		}
	}

	for name, src := range map[string]string{
		"syntax.yaml": "x: [",
		"string.yaml": "x: abc",
		"list.yaml":   "- 1\n- 2\n",
	} {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := loadVars(p); err == nil {
			t.Errorf("%s: no error", name)
		} else if !strings.Contains(err.Error(), name) {
			t.Errorf("%s: error %q doesn't name the file", name, err)
		}
	}
	if _, err := loadVars(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file gave no error")
	}
}
