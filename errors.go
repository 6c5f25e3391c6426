// errors.go: user-facing error wrapping and caret-snippet rendering
//
// What this file does
// -------------------
// This module turns low-level lexer/reader diagnostics into readable,
// Python-style error snippets with a caret pointing at the offending
// column. The primary entry point is `WrapErrorWithSource`, which
// recognizes `*LexError` (from lexer.go) and `*ParseError` (from
// reader.go), formats them, and returns a new `error` that contains a
// multi-line snippet:
//
//	PARSE ERROR at 3:12: expected ')' after dotted tail
//
//	   2 | (if #t
//	   3 |     (1 . 2 3)
//	     |            ^
//	   4 |     ())
//
// The snippet includes up to one line of context before and after the
// error, numbers the lines, and places a caret under the 1-based
// column.
//
// Dependencies (other files)
// --------------------------
//   - lexer.go: defines `*LexError { Line, Col, Msg }`.
//   - reader.go: defines `*ParseError { Line, Col, Msg, Incomplete }`.
//     Both carry a 1-based Line and a 0-based Col; rendering converts
//     the column to 1-based.
//
// Scope of the public API
// -----------------------
// Public:   `WrapErrorWithSource(err error, src string) error`
//           `WrapErrorWithName(err error, srcName, src string) error`
// Private:  caret-snippet renderer and tiny helpers.
//
// Behavior guarantees
// -------------------
//   - If `err` is a `*LexError` or `*ParseError`, the returned error's
//     message is a fully formatted, plain-text snippet (no ANSI colors).
//   - If `err` is anything else (a *TypeMismatchError in particular),
//     it is returned unchanged: evaluation errors describe values, not
//     source positions, and wrapping would only obscure them.
//   - Line/column are clamped to the source bounds so the caret can be
//     rendered safely. Empty/short source strings are handled.
//
// This utility is intentionally independent of the evaluator. It can be
// used anywhere you want to surface lex/parse errors with helpful
// context.
package pith

import (
	"fmt"
	"strings"
)

/* ===========================
   PUBLIC API
   =========================== */

// WrapErrorWithSource returns an error augmented with a caret-annotated
// snippet of the provided source. It recognizes lexer/reader errors and
// leaves other errors untouched.
func WrapErrorWithSource(err error, src string) error {
	// Fall back to a name-less header (won't show "in <src>").
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName is WrapErrorWithSource with a source name (a file
// path, or "<repl>") included in the header line.
func WrapErrorWithName(err error, srcName string, src string) error {
	switch e := err.(type) {
	case *LexError:
		// Lex/parse Col are 0-based; render as 1-based.
		return fmt.Errorf("%s", prettyErrorStringLabeled(src, "LEXICAL ERROR", srcName, e.Line, e.Col+1, e.Msg))
	case *ParseError:
		return fmt.Errorf("%s", prettyErrorStringLabeled(src, "PARSE ERROR", srcName, e.Line, e.Col+1, e.Msg))
	default:
		return err
	}
}

/* ===========================
   PRIVATE: helpers & rendering
   =========================== */

// prettyErrorStringLabeled builds a Python-like snippet with a header
// and a caret. It shows at most one previous and one next line when
// available. Coordinates are treated as 1-based and clamped to the
// source bounds.
func prettyErrorStringLabeled(src, header, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}
	lineTxt := lines[line-1]

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	caretPad := col - 1
	if caretPad < 0 {
		caretPad = 0
	}
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", caretPad))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
