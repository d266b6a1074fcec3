package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/zephyrtronium/brain"
)

// aliases maps ASCII spellings onto the symbols the brain knows.
var aliases = map[string]string{
	"*":    "×",
	"/":    "÷",
	"-":    "−",
	"sqrt": "√",
	"pi":   "π",
}

// session feeds tokens to a Brain and prints its results line by line.
type session struct {
	b    *brain.Brain
	errs *log.Logger

	// verb is the format for results, including the line end.
	verb string
	// echo prints the descriptions of the stack before each result.
	echo bool
	// prompt is printed before each line when non-empty.
	prompt string

	last float64
	ok   bool
}

// apply performs the action for one token.
func (s *session) apply(tok token) error {
	switch tok.kind {
	case tokenNum:
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			// Out of range numbers become infinities or zeros, like any
			// other overflow.
			var ne *strconv.NumError
			if !errors.As(err, &ne) || !errors.Is(ne.Err, strconv.ErrRange) {
				return err
			}
		}
		s.last, s.ok = s.b.PushOperand(v)
	case tokenAssign:
		if !s.ok {
			return fmt.Errorf("no result to assign to %s", tok.text)
		}
		s.b.SetVariable(tok.text, s.last)
		s.last, s.ok = s.b.Evaluate()
	case tokenWord, tokenOp:
		sym := tok.text
		if a, ok := aliases[sym]; ok {
			sym = a
		}
		switch {
		case sym == "C", sym == "clearall":
			s.b.ClearAll()
			s.last, s.ok = s.b.Evaluate()
		case sym == "clear":
			s.b.ClearStack()
			s.last, s.ok = s.b.Evaluate()
		case sym == "clearvars":
			s.b.ClearVariables()
			s.last, s.ok = s.b.Evaluate()
		case s.b.Known(sym), tok.kind == tokenOp:
			// Unknown symbols leave the stack alone.
			s.last, s.ok = s.b.PerformOperation(sym)
		default:
			s.last, s.ok = s.b.PushSymbol(sym)
		}
	default:
		panic("rpncalc: apply on " + tok.String())
	}
	return nil
}

// result writes the current result, or ? if there is none.
func (s *session) result(w io.Writer) {
	if s.echo {
		d, _ := s.b.Descriptions()
		fmt.Fprintf(w, "%s = ", d)
	}
	if !s.ok {
		fmt.Fprintln(w, "?")
		return
	}
	fmt.Fprintf(w, s.verb, s.last)
}

// run reads lines from in and writes a result for each line that has any
// tokens. Invalid tokens are logged and the rest of their line is skipped.
func (s *session) run(in io.RuneScanner, out io.Writer) error {
	l := lex(in)
	pending := false
	if s.prompt != "" {
		io.WriteString(out, s.prompt)
	}
	for {
		tok, err := l.next()
		if err != nil {
			var le *LexError
			if !errors.As(err, &le) {
				return err
			}
			s.errs.Print(err)
			more := l.skipLine()
			if pending {
				s.result(out)
				pending = false
			}
			if !more {
				return nil
			}
			if s.prompt != "" {
				io.WriteString(out, s.prompt)
			}
			continue
		}
		switch tok.kind {
		case tokenEOF:
			if pending {
				s.result(out)
			}
			return nil
		case tokenEOL:
			if pending {
				s.result(out)
				pending = false
			}
			if s.prompt != "" {
				io.WriteString(out, s.prompt)
			}
		default:
			if err := s.apply(tok); err != nil {
				s.errs.Print(err)
			}
			pending = true
		}
	}
}
