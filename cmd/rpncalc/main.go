package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/brain"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb, varsname string
		with                   [][2]string
		ext, echo, trace       bool
		prec                   int
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.Func("given", "name=value variable definition, value in RPN (any number of times)", addwith)
	flag.StringVar(&varsname, "vars", "", "YAML file of variable values")
	flag.IntVar(&prec, "p", 64, "precision in bits of xʸ, eˣ, and ln")
	flag.BoolVar(&ext, "ext", false, "enable extended operations xʸ, eˣ, ln, ±, tan")
	flag.BoolVar(&echo, "echo", false, "print descriptions of the stack")
	flag.BoolVar(&trace, "trace", false, "log every evaluation to stderr")
	flag.Parse()
	if prec <= 0 {
		log.Fatalf("precision (%d) must be positive", prec)
	}

	opts := []brain.Option{brain.Prec(uint(prec))}
	if ext {
		opts = append(opts, brain.Extended())
	}
	if trace {
		opts = append(opts, brain.Trace(log.New(os.Stderr, "trace: ", 0)))
	}
	if varsname != "" {
		vars, err := loadVars(varsname)
		if err != nil {
			log.Fatal(err)
		}
		opts = append(opts, brain.SetVars(vars))
	}
	b := brain.New(opts...)
	for _, d := range with {
		nm := d[0]
		r, err := evalLine(b, d[1])
		if err != nil {
			log.Fatalf("setting %s: %v", nm, err)
		}
		b.SetVariable(nm, r)
	}

	var ins []io.RuneScanner
	f, interactive, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		ins = append(ins, f)
	}
	for _, arg := range flag.Args() {
		ins = append(ins, strings.NewReader(arg))
	}

	s := session{
		b:    b,
		errs: log.Default(),
		verb: verb + "\n",
		echo: echo,
	}
	if interactive {
		s.prompt = "> "
	}
	for _, in := range ins {
		if err := s.run(in, os.Stdout); err != nil {
			log.Fatal(err)
		}
	}
}

// evalLine evaluates an RPN line using a copy of b with an empty stack.
func evalLine(b *brain.Brain, src string) (float64, error) {
	var errs strings.Builder
	s := session{
		b:    b.Clone(),
		errs: log.New(&errs, "", 0),
		verb: "%g\n",
	}
	s.b.ClearStack()
	if err := s.run(strings.NewReader(src), io.Discard); err != nil {
		return 0, err
	}
	if errs.Len() > 0 {
		return 0, fmt.Errorf("%s", strings.TrimSpace(errs.String()))
	}
	if !s.ok {
		return 0, fmt.Errorf("%q has no result", src)
	}
	return s.last, nil
}

// loadVars reads variable values from a YAML mapping of names to numbers.
func loadVars(name string) (map[string]float64, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	var vars map[string]float64
	if err := yaml.Unmarshal(data, &vars); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return vars, nil
}

// infile opens the input file, if any. interactive is true when the input is
// stdin attached to a terminal.
func infile(inname string, std bool) (in io.RuneScanner, interactive bool, err error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		f, err = os.Open(inname)
		if err != nil {
			return nil, false, err
		}
	case inname == "-", std:
		f = os.Stdin
		interactive = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	if f == nil {
		return nil, false, nil
	}
	return bufio.NewReader(f), interactive, nil
}
