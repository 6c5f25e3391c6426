// value.go: the Pith expression model.
//
// Pith is homoiconic: the reader, the evaluator, and the printer all
// exchange the same Value type. A Value is either an atom (integer,
// boolean, symbol, or the empty list) or a cons pair of two Values.
// Chained pairs whose final tail is Nil form a proper list; any other
// chain is an improper ("dotted") list. Pair is the only recursive
// variant, and well-formed input is always finite; nothing in this
// package constructs a cyclic chain.
//
// No evaluation semantics live here. Equality is structural (Equal);
// the canonical text rendering lives in printer.go.
package pith

// ValueTag enumerates the kinds a Value may hold.
// The tag determines what Value.Data contains (see Value docs).
type ValueTag int

const (
	VTNil  ValueTag = iota // empty list (no payload)
	VTBool                 // bool
	VTInt                  // int64
	VTSym                  // string (identifier)
	VTPair                 // *Pair
)

// Value is the universal symbolic-expression carrier.
//
// Fields:
//   - Tag: discriminant indicating which case is active.
//   - Data: Go value appropriate for Tag (e.g. int64 for VTInt).
//
// Invariants:
//   - When Tag==VTNil, Data is nil. Nil is a distinct value (the
//     empty list), not the absence of a value.
//   - When Tag==VTPair, Data is a non-nil *Pair.
type Value struct {
	Tag  ValueTag
	Data any
}

// Pair is a cons cell: a head expression prepended to a tail expression.
type Pair struct {
	Head Value
	Tail Value
}

// Nil is the singleton empty list.
var Nil = Value{Tag: VTNil}

// Primitive constructors.
func Bool(b bool) Value     { return Value{Tag: VTBool, Data: b} }
func Int(n int64) Value     { return Value{Tag: VTInt, Data: n} }
func Sym(name string) Value { return Value{Tag: VTSym, Data: name} }

// Cons builds a pair of head and tail.
func Cons(head, tail Value) Value {
	return Value{Tag: VTPair, Data: &Pair{Head: head, Tail: tail}}
}

// List builds a proper list of the given items. List() is Nil.
func List(items ...Value) Value {
	out := Nil
	for i := len(items) - 1; i >= 0; i-- {
		out = Cons(items[i], out)
	}
	return out
}

// ListItems flattens a Nil-terminated pair chain into a slice.
// For Nil it returns (nil, true). For an improper list (a chain whose
// final tail is not Nil) or for a non-list value it returns
// (nil, false).
func ListItems(v Value) ([]Value, bool) {
	var items []Value
	for v.Tag == VTPair {
		p := v.Data.(*Pair)
		items = append(items, p.Head)
		v = p.Tail
	}
	if v.Tag != VTNil {
		return nil, false
	}
	return items, true
}

// IsList reports whether v is a proper list (Nil or a chain of pairs
// ending in Nil).
func IsList(v Value) bool {
	for v.Tag == VTPair {
		v = v.Data.(*Pair).Tail
	}
	return v.Tag == VTNil
}

// IsSym reports whether v is the symbol named name.
func IsSym(v Value, name string) bool {
	return v.Tag == VTSym && v.Data.(string) == name
}

// Equal reports structural equality. Atoms compare by tag and payload;
// pairs compare head and tail recursively.
func Equal(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VTNil:
		return true
	case VTBool:
		return a.Data.(bool) == b.Data.(bool)
	case VTInt:
		return a.Data.(int64) == b.Data.(int64)
	case VTSym:
		return a.Data.(string) == b.Data.(string)
	case VTPair:
		ap, bp := a.Data.(*Pair), b.Data.(*Pair)
		return Equal(ap.Head, bp.Head) && Equal(ap.Tail, bp.Tail)
	default:
		return false
	}
}

// String renders the canonical text form (see printer.go), so Values
// read well under %v and %s in logs and test failures.
func (v Value) String() string { return FormatValue(v) }
