package pith

import (
	"strings"
	"testing"
)

func mustContain(t *testing.T, s, sub string) {
	t.Helper()
	if !strings.Contains(s, sub) {
		t.Fatalf("expected output to contain %q\n--- output ---\n%s", sub, s)
	}
}

func Test_ErrorWrap_Parse_ShowsCaretAndContext(t *testing.T) {
	// Two lines; parse error on line 2: stray ')'.
	src := "(if #t\n  1 2))"

	_, err := ReadAll(src)
	if err == nil {
		t.Fatalf("expected parse error, got nil")
	}
	msg := WrapErrorWithSource(err, src).Error()

	// Header
	mustContain(t, msg, "PARSE ERROR at 2:")
	// Context lines (line numbers + source)
	mustContain(t, msg, "   1 | (if #t")
	mustContain(t, msg, "   2 |   1 2))")
	// Caret line
	mustContain(t, msg, "     | ")
	mustContain(t, msg, "^")
}

func Test_ErrorWrap_Lex_ShowsCaretAndContext(t *testing.T) {
	// Three lines; lex error on line 2: '#' atom that is not a boolean.
	src := "(list\n  #maybe\n  2)"

	_, err := ReadAll(src)
	if err == nil {
		t.Fatalf("expected lex error, got nil")
	}
	msg := WrapErrorWithSource(err, src).Error()

	mustContain(t, msg, "LEXICAL ERROR at 2:3:")
	mustContain(t, msg, "booleans are #t and #f")
	mustContain(t, msg, "   1 | (list")
	mustContain(t, msg, "   2 |   #maybe")
	mustContain(t, msg, "   3 |   2)")
	mustContain(t, msg, "^")
}

func Test_ErrorWrap_CaretUnderOffendingColumn(t *testing.T) {
	src := "(1 . 2 3)"

	_, err := ReadAll(src)
	if err == nil {
		t.Fatalf("expected parse error, got nil")
	}
	msg := WrapErrorWithSource(err, src).Error()

	// The extra expression after the dotted tail sits at column 8.
	mustContain(t, msg, "PARSE ERROR at 1:8:")
	mustContain(t, msg, "   1 | (1 . 2 3)")
	mustContain(t, msg, "     |        ^")
}

func Test_ErrorWrap_WithName_LabelsHeader(t *testing.T) {
	src := "(oops"
	_, err := ReadAll(src)
	if err == nil {
		t.Fatalf("expected parse error, got nil")
	}
	msg := WrapErrorWithName(err, "scratch.pith", src).Error()
	mustContain(t, msg, "PARSE ERROR in scratch.pith at 1:6:")
}

func Test_ErrorWrap_LeavesOtherErrorsAlone(t *testing.T) {
	_, _, err := Eval(readOne(t, "(if 3 4 5)"), EmptyEnv())
	if err == nil {
		t.Fatalf("expected type mismatch, got nil")
	}
	wrapped := WrapErrorWithSource(err, "(if 3 4 5)")
	if wrapped != err {
		t.Fatalf("evaluation error was rewrapped: %v", wrapped)
	}
}

func Test_ErrorWrap_ClampsOutOfRangePositions(t *testing.T) {
	// A hand-built error past the end of the source still renders.
	e := &ParseError{Line: 99, Col: 99, Msg: "synthetic"}
	msg := WrapErrorWithSource(e, "only line").Error()
	mustContain(t, msg, "PARSE ERROR at 1:100: synthetic")
	mustContain(t, msg, "   1 | only line")
	mustContain(t, msg, "^")
}
