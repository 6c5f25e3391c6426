// lexer.go: tokenizer for Pith source text.
//
// The surface syntax is small: parentheses, a standalone dot for
// improper tails, line comments introduced by ';', and atoms. An atom
// is a maximal run of non-delimiter characters and is classified after
// the fact: "#t"/"#f" are booleans, text that parses as a signed
// 64-bit integer is an integer, and everything else is a symbol. That
// last rule is what lets "+", "if", and "list->items" all be ordinary
// symbols without a special identifier grammar.
package pith

import (
	"errors"
	"fmt"
	"strconv"
)

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota

	// Punctuation
	LPAREN // "("
	RPAREN // ")"
	DOT    // "." standing alone (improper-tail marker)

	// Atoms
	INTEGER // signed 64-bit integer literal
	BOOLEAN // "#t" or "#f"
	SYMBOL  // any other atom
)

// Token is a lexical token with an optional literal value.
type Token struct {
	Type    TokenType
	Lexeme  string    // raw text slice
	Literal any       // int64 for INTEGER, bool for BOOLEAN, string for SYMBOL
	Line    int       // 1-based
	Col     int       // 0-based byte column
}

// Lexer scans a Pith source string into tokens.
type Lexer struct {
	src    string
	start  int     // start index of current token
	cur    int     // current index
	line   int     // 1-based
	col    int     // 0-based column within line
	tokens []Token

	// precise token start position
	tokStartLine int
	tokStartCol  int
}

// NewLexer creates a new lexer for the given source.
func NewLexer(src string) *Lexer {
	return &Lexer{
		src:  src,
		line: 1,
		col:  0,
	}
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.cur], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return ch, true
}

func (l *Lexer) addToken(tt TokenType, lit any) Token {
	tok := Token{
		Type:    tt,
		Lexeme:  l.src[l.start:l.cur],
		Literal: lit,
		Line:    l.tokStartLine,
		Col:     l.tokStartCol,
	}
	l.tokens = append(l.tokens, tok)
	l.start = l.cur
	return tok
}

func (l *Lexer) skipWhitespaceAndComments() {
	for !l.isAtEnd() {
		ch, _ := l.peek()
		switch ch {
		case ' ', '\r', '\n', '\t':
			l.advance()
			l.start = l.cur
		case ';':
			for !l.isAtEnd() {
				c, _ := l.peek()
				if c == '\n' {
					break
				}
				l.advance()
			}
			l.start = l.cur
		default:
			return
		}
	}
}

// helpers

func isDelimiter(b byte) bool {
	switch b {
	case ' ', '\r', '\n', '\t', '(', ')', ';':
		return true
	default:
		return false
	}
}

// ----- errors -----

// LexError is a tokenization failure at a source position.
// Col is 0-based; renderers show it 1-based.
type LexError struct {
	Line int
	Col  int
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("LEXICAL ERROR at %d:%d: %s", e.Line, e.Col+1, e.Msg)
}

func (l *Lexer) err(msg string) error {
	return &LexError{Line: l.tokStartLine, Col: l.tokStartCol, Msg: msg}
}

// ----- scanners -----

// scanAtom consumes a maximal run of non-delimiter bytes and classifies
// it. Boolean literals use the '#' sigil; any other atom starting with
// '#' is an error rather than a symbol, so typos like "#true" surface
// at the source position instead of riding along as data.
func (l *Lexer) scanAtom() (Token, error) {
	for !l.isAtEnd() {
		ch, _ := l.peek()
		if isDelimiter(ch) {
			break
		}
		l.advance()
	}
	lex := l.src[l.start:l.cur]

	if lex == "." {
		return l.addToken(DOT, nil), nil
	}
	if lex[0] == '#' {
		switch lex {
		case "#t":
			return l.addToken(BOOLEAN, true), nil
		case "#f":
			return l.addToken(BOOLEAN, false), nil
		default:
			return Token{}, l.err(fmt.Sprintf("unknown literal %q (booleans are #t and #f)", lex))
		}
	}
	n, err := strconv.ParseInt(lex, 10, 64)
	if err == nil {
		return l.addToken(INTEGER, n), nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return Token{}, l.err(fmt.Sprintf("integer literal %q out of range", lex))
	}
	return l.addToken(SYMBOL, lex), nil
}

func (l *Lexer) scanToken() (Token, error) {
	l.skipWhitespaceAndComments()

	l.tokStartLine = l.line
	l.tokStartCol = l.col

	if l.isAtEnd() {
		return l.addToken(EOF, nil), nil
	}

	ch, _ := l.peek()
	switch ch {
	case '(':
		l.advance()
		return l.addToken(LPAREN, nil), nil
	case ')':
		l.advance()
		return l.addToken(RPAREN, nil), nil
	default:
		return l.scanAtom()
	}
}

// Scan tokenizes the entire source and returns tokens (EOF included).
func (l *Lexer) Scan() ([]Token, error) {
	for {
		tok, err := l.scanToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == EOF {
			return l.tokens, nil
		}
	}
}
