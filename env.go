// env.go: immutable environments mapping names to values.
package pith

// Env maps symbol names to Values. It is an immutable value: no
// operation changes an Env in place. Bind returns a new Env sharing
// structure with its receiver, so environments are cheap to copy and
// safe to hold across evaluation steps. The evaluator receives an Env,
// threads it through sub-evaluations, and returns one; the control
// loop owns the environment between calls and carries the returned
// value into the next step.
//
// At this stage the evaluator never consults the environment (a bare
// symbol evaluates to itself rather than to its binding), but the type
// is threaded through every evaluation so that binding forms can be
// added without changing any signatures.
//
// The zero Env is the empty environment.
type Env struct {
	head *binding
}

type binding struct {
	name  string
	value Value
	next  *binding
}

// EmptyEnv returns the environment with no bindings. This is the value
// the control loop starts from at process start.
func EmptyEnv() Env { return Env{} }

// Bind returns an environment extended with name bound to v. The
// receiver is unchanged. Binding a name again shadows the older
// binding rather than replacing it.
func (e Env) Bind(name string, v Value) Env {
	return Env{head: &binding{name: name, value: v, next: e.head}}
}

// Lookup returns the value bound to name, preferring the most recent
// binding, and reports whether any binding was found.
func (e Env) Lookup(name string) (Value, bool) {
	for b := e.head; b != nil; b = b.next {
		if b.name == name {
			return b.value, true
		}
	}
	return Value{}, false
}

// Len counts the visible names: shadowed bindings are not counted.
func (e Env) Len() int {
	n := 0
	for b := e.head; b != nil; b = b.next {
		shadowed := false
		for p := e.head; p != b; p = p.next {
			if p.name == b.name {
				shadowed = true
				break
			}
		}
		if !shadowed {
			n++
		}
	}
	return n
}
