package main

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type token struct {
	text string
	kind tokenKind
	pos  int
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenEOL indicates the end of a line.
	tokenEOL
	// tokenNum is a number.
	tokenNum
	// tokenWord is a variable, constant, command, or operation name.
	tokenWord
	// tokenOp is a single-rune operation symbol.
	tokenOp
	// tokenAssign is →name or ->name. The text is the name.
	tokenAssign
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenEOL:
		return "EOL"
	case tokenNum:
		return "Num"
	case tokenWord:
		return "Word"
	case tokenOp:
		return "Op"
	case tokenAssign:
		return "Assign"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	line int
	col  int
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		line: 1,
		col:  0,
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (rune, error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.col++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.col--
}

// next scans the next token from the input. At the end of the input, the
// result is an EOF token with a nil error. After an error, the rest of the
// line should be skipped with skipLine.
//
// A - that begins a line or follows whitespace and is immediately followed by
// a digit or dot starts a negative number, so "0 -5" is two numbers. Anywhere
// else it is the subtraction symbol, as in "3-4" or "3 4 -".
func (l *lexer) next() (token, error) {
	defer l.buf.Reset()
	gap := l.col == 0
	for {
		r, err := l.readRune()
		tok := token{pos: l.col}
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.kind = tokenEOF
				return tok, nil
			}
			return tok, err
		}
		switch {
		case r == '\n':
			tok.kind = tokenEOL
			l.line++
			l.col = 0
			return tok, nil
		case unicode.IsSpace(r):
			gap = true
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenNum
			return tok, nil
		case r == '_', unicode.IsLetter(r):
			l.unreadRune()
			if err := l.scanIdent(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenWord
			return tok, nil
		case r == '→':
			return l.assign(tok)
		case r == '-':
			n, err := l.readRune()
			if err == nil {
				if n == '>' {
					return l.assign(tok)
				}
				l.unreadRune()
				if gap && ('0' <= n && n <= '9' || n == '.') {
					l.buf.WriteRune('-')
					if err := l.scanNum(); err != nil {
						return tok, err
					}
					tok.text = l.buf.String()
					tok.kind = tokenNum
					return tok, nil
				}
			}
			tok.text = "-"
			tok.kind = tokenOp
			return tok, nil
		default:
			tok.text = string(r)
			tok.kind = tokenOp
			return tok, nil
		}
	}
}

// assign scans the variable name of an assignment token.
func (l *lexer) assign(tok token) (token, error) {
	r, err := l.readRune()
	if err != nil && !errors.Is(err, io.EOF) {
		return tok, err
	}
	if err != nil || !(r == '_' || unicode.IsLetter(r)) {
		switch {
		case err != nil: // nothing to show
		case unicode.IsSpace(r):
			// Leave line ends for the caller.
			l.unreadRune()
		default:
			l.buf.WriteRune(r)
		}
		return tok, l.error("assignment")
	}
	l.unreadRune()
	if err := l.scanIdent(); err != nil {
		return tok, err
	}
	tok.text = l.buf.String()
	tok.kind = tokenAssign
	return tok, nil
}

func (l *lexer) scanNum() error {
	var dig, dot, e, le, ed bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if unicode.IsSpace(r) {
			l.unreadRune()
			break
		}
		if r == '+' || r == '-' {
			// + or - anywhere other than immediately following an exponent
			// marker means a new token, as it is an operation.
			if !le {
				l.unreadRune()
				break
			}
			le = false
			l.buf.WriteRune(r)
			continue
		}
		if r != '.' && r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
		switch r {
		case '.':
			if dot || e {
				return l.error("number")
			}
			dot = true
			le = false
		case 'e', 'E':
			if !dig || e {
				return l.error("number")
			}
			e = true
			le = true
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			if e {
				ed = true
			} else {
				dig = true
			}
			le = false
		default:
			return l.error("number")
		}
	}
	if !dig || (e && !ed) {
		return l.error("number")
	}
	return nil
}

func (l *lexer) scanIdent() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// Callers unread the rune that decides ident scanning, so we
				// have scanned at least one rune.
				return nil
			}
			return err
		}
		switch {
		case r == '_', unicode.IsLetter(r), unicode.IsDigit(r):
			l.buf.WriteRune(r)
		default:
			l.unreadRune()
			return nil
		}
	}
}

// skipLine discards input through the end of the current line. It returns
// false if the input ended first.
func (l *lexer) skipLine() bool {
	for {
		r, err := l.readRune()
		if err != nil {
			return false
		}
		if r == '\n' {
			l.line++
			l.col = 0
			return true
		}
	}
}

func (l *lexer) error(kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Line: l.line,
		Col:  l.col,
	}
}

// LexError indicates an invalid token.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning, either "number" or
	// "assignment".
	Kind string
	// Line is the line of the input containing the error.
	Line int
	// Col is the number of runes scanned on the line up to and including
	// this error.
	Col int
}

func (err *LexError) Error() string {
	return "invalid " + err.Kind + " token at line " + strconv.Itoa(err.Line) + " column " + strconv.Itoa(err.Col) + ": " + err.Text
}
