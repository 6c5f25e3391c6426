package pith

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatValue renders v in the same syntax the reader accepts, so for
// any v the reader could produce, Read(FormatValue(v)) is Equal to v.
// Proper lists print as "(a b c)"; an improper tail prints dotted,
// "(a b . c)"; the empty list prints as "()".
func FormatValue(v Value) string {
	var b strings.Builder
	writeValue(&b, v)
	return b.String()
}

func writeValue(b *strings.Builder, v Value) {
	switch v.Tag {
	case VTNil:
		b.WriteString("()")
	case VTBool:
		if v.Data.(bool) {
			b.WriteString("#t")
		} else {
			b.WriteString("#f")
		}
	case VTInt:
		b.WriteString(strconv.FormatInt(v.Data.(int64), 10))
	case VTSym:
		b.WriteString(v.Data.(string))
	case VTPair:
		p := v.Data.(*Pair)
		b.WriteByte('(')
		writeValue(b, p.Head)
		tail := p.Tail
		for tail.Tag == VTPair {
			p = tail.Data.(*Pair)
			b.WriteByte(' ')
			writeValue(b, p.Head)
			tail = p.Tail
		}
		if tail.Tag != VTNil {
			b.WriteString(" . ")
			writeValue(b, tail)
		}
		b.WriteByte(')')
	default:
		fmt.Fprintf(b, "#<invalid %d>", int(v.Tag))
	}
}
