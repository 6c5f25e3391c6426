// reader.go: recursive-descent reader from tokens to Values.
//
// The reader consumes the tokens produced by lexer.go and builds the
// Values the evaluator consumes. The grammar is the classic one:
//
//	expr  := INTEGER | BOOLEAN | SYMBOL | list
//	list  := '(' expr* ')'
//	       | '(' expr+ '.' expr ')'
//
// "()" reads as Nil. A dotted tail builds an improper pair chain,
// which the evaluator treats as inert data.
//
// Three entry points cover the callers: Read wants exactly one
// expression (trailing tokens are an error), ReadAll reads a whole
// file, and ReadAllInteractive is ReadAll for REPLs: an error at end
// of input is marked incomplete so the caller can prompt for a
// continuation line instead of rejecting the input (see IsIncomplete).
//
// Dependencies
//   - lexer.go (Token, TokenType, Lexer)
//   - errors.go recognizes *ParseError for caret-snippet rendering
package pith

import (
	"errors"
	"fmt"
)

// ParseError is a structural failure in the token stream.
// Col is 0-based; renderers show it 1-based. Incomplete marks errors
// at end of input that more source text could resolve.
type ParseError struct {
	Line       int
	Col        int
	Msg        string
	Incomplete bool
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("PARSE ERROR at %d:%d: %s", e.Line, e.Col+1, e.Msg)
}

// IsIncomplete reports whether err is a parse error that further input
// could fix, such as an unclosed "(" at end of input in interactive
// mode. REPLs use it to keep reading continuation lines instead of
// failing.
func IsIncomplete(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Incomplete
}

// Read parses exactly one expression from src. Anything after the
// first expression is an error.
func Read(src string) (Value, error) {
	toks, err := NewLexer(src).Scan()
	if err != nil {
		return Nil, err
	}
	r := &reader{toks: toks}
	v, err := r.expr()
	if err != nil {
		return Nil, err
	}
	if t := r.peek(); t.Type != EOF {
		return Nil, r.errAt(t, fmt.Sprintf("unexpected %q after expression", t.Lexeme))
	}
	return v, nil
}

// ReadAll parses every expression in src, in order.
func ReadAll(src string) ([]Value, error) {
	return readAll(src, false)
}

// ReadAllInteractive parses like ReadAll, but an error at end of input
// is flagged incomplete (detectable via IsIncomplete) rather than
// treated as malformed, which is what a line-at-a-time REPL needs.
func ReadAllInteractive(src string) ([]Value, error) {
	return readAll(src, true)
}

func readAll(src string, interactive bool) ([]Value, error) {
	toks, err := NewLexer(src).Scan()
	if err != nil {
		return nil, err
	}
	r := &reader{toks: toks, interactive: interactive}
	var out []Value
	for !r.atEnd() {
		v, err := r.expr()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

type reader struct {
	toks        []Token
	i           int
	interactive bool
}

// ----- token basics -----

func (r *reader) atEnd() bool { return r.peek().Type == EOF }

func (r *reader) peek() Token {
	if r.i >= len(r.toks) {
		return r.toks[len(r.toks)-1] // Scan always emits EOF last
	}
	return r.toks[r.i]
}

// errAt anchors a parse error at t. At EOF in interactive mode the
// error is incomplete: the form might continue on the next line.
func (r *reader) errAt(t Token, msg string) error {
	return &ParseError{
		Line:       t.Line,
		Col:        t.Col,
		Msg:        msg,
		Incomplete: r.interactive && t.Type == EOF,
	}
}

// ----- grammar -----

// expr parses one expression.
func (r *reader) expr() (Value, error) {
	t := r.peek()
	switch t.Type {
	case INTEGER:
		r.i++
		return Int(t.Literal.(int64)), nil
	case BOOLEAN:
		r.i++
		return Bool(t.Literal.(bool)), nil
	case SYMBOL:
		r.i++
		return Sym(t.Lexeme), nil
	case LPAREN:
		r.i++
		return r.list()
	case RPAREN:
		return Nil, r.errAt(t, "unexpected ')'")
	case DOT:
		return Nil, r.errAt(t, "unexpected '.'")
	default: // EOF
		return Nil, r.errAt(t, "unexpected end of input")
	}
}

// list parses the elements after a consumed '(' up to the matching ')'.
func (r *reader) list() (Value, error) {
	var items []Value
	for {
		t := r.peek()
		switch t.Type {
		case RPAREN:
			r.i++
			return List(items...), nil

		case DOT:
			// A dotted tail needs at least one element before the dot
			// and exactly one expression after it.
			if len(items) == 0 {
				return Nil, r.errAt(t, "unexpected '.'")
			}
			r.i++
			if tt := r.peek(); tt.Type == RPAREN {
				return Nil, r.errAt(tt, "expected expression after '.'")
			}
			tail, err := r.expr()
			if err != nil {
				return Nil, err
			}
			if tt := r.peek(); tt.Type != RPAREN {
				return Nil, r.errAt(tt, "expected ')' after dotted tail")
			}
			r.i++
			for i := len(items) - 1; i >= 0; i-- {
				tail = Cons(items[i], tail)
			}
			return tail, nil

		case EOF:
			return Nil, r.errAt(t, "expected ')'")

		default:
			item, err := r.expr()
			if err != nil {
				return Nil, err
			}
			items = append(items, item)
		}
	}
}
