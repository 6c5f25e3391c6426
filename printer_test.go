// printer_test.go
package pith

import "testing"

func wantFormat(t *testing.T, v Value, want string) {
	t.Helper()
	if got := FormatValue(v); got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func Test_Printer_Atoms(t *testing.T) {
	wantFormat(t, Int(0), "0")
	wantFormat(t, Int(42), "42")
	wantFormat(t, Int(-42), "-42")
	wantFormat(t, Int(-9223372036854775808), "-9223372036854775808")
	wantFormat(t, Bool(true), "#t")
	wantFormat(t, Bool(false), "#f")
	wantFormat(t, Sym("list->items"), "list->items")
	wantFormat(t, Nil, "()")
}

func Test_Printer_Lists(t *testing.T) {
	wantFormat(t, List(Int(1), Int(2), Int(3)), "(1 2 3)")
	wantFormat(t, List(Sym("if"), Bool(true), Int(3), Int(4)), "(if #t 3 4)")
	wantFormat(t, List(List(Int(1)), Nil, List()), "((1) () ())")
}

func Test_Printer_DottedTails(t *testing.T) {
	wantFormat(t, Cons(Int(1), Int(2)), "(1 . 2)")
	wantFormat(t, Cons(Int(1), Cons(Int(2), Int(3))), "(1 2 . 3)")
	wantFormat(t, Cons(Nil, Sym("x")), "(() . x)")
	// A Nil tail is list notation, never "(1 . ())".
	wantFormat(t, Cons(Int(1), Nil), "(1)")
}

func Test_Printer_ReadRoundTrip(t *testing.T) {
	// Reading canonical output reproduces the value, and formatting is
	// idempotent across the trip.
	for _, src := range []string{
		"42",
		"#f",
		"x",
		"()",
		"(if #t 3 4)",
		"(1 (2 (3)) . 4)",
		"((()))",
	} {
		v := readOne(t, src)
		text := FormatValue(v)
		back := readOne(t, text)
		if !Equal(v, back) {
			t.Fatalf("%q: round trip changed value: %s vs %s", src, text, FormatValue(back))
		}
		if text != FormatValue(back) {
			t.Fatalf("%q: formatting not stable: %q vs %q", src, text, FormatValue(back))
		}
	}
}

func Test_Printer_NormalizesSourceSpelling(t *testing.T) {
	for _, tc := range []struct{ src, want string }{
		{"( if   #t  1   2 )", "(if #t 1 2)"},
		{"(1 . (2 . ()))", "(1 2)"},
		{"(1 ; comment\n 2)", "(1 2)"},
	} {
		wantFormat(t, readOne(t, tc.src), tc.want)
	}
}
