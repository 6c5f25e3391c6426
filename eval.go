// eval.go: the recursive evaluator.
//
// Evaluation takes an expression and an environment and produces a
// value and an environment. The environment is never mutated: every
// step passes it down by value and hands one back, and the caller
// carries the returned environment into its next step. That makes the
// evaluator purely functional (no observable effect beyond the
// returned pair) and keeps later binding forms from needing any shared
// mutable state.
//
// Dispatch is structural. Atoms evaluate to themselves. A pair is
// inspected against the known special-form shapes, in order; a pair
// matching none of them is inert data and also evaluates to itself,
// unevaluated. New special forms slot in as additional cases ahead of
// that fallback.
package pith

import "fmt"

// Eval evaluates expr against env.
//
// Rules, in priority order:
//
//  1. Integers, booleans, symbols, and the empty list are
//     self-evaluating: the result is (expr, env) unchanged. A symbol is
//     not looked up in env; name resolution is a binding form's job,
//     and no binding forms exist yet.
//
//  2. A four-element proper list headed by the symbol "if" is the
//     conditional form. Its condition is evaluated first, against env;
//     the environment that evaluation returns is dropped, only the
//     value is kept. The value must be a boolean, anything else is a
//     *TypeMismatchError. The matching branch (consequent on #t,
//     alternative on #f) is then evaluated against the ORIGINAL env,
//     and that sub-result, value and environment both, is the
//     conditional's result. The other branch is never evaluated; code
//     relying on a branch's side effects can rely on the untaken
//     branch having none. Note the returned environment is the taken
//     branch's: a binding made inside the branch stays visible to
//     whatever the caller evaluates next. There is no block scoping
//     here, and downstream stages depend on that, so it must not be
//     narrowed.
//
//  3. Every other pair (wrong length, wrong head, or a dotted tail)
//     matches no special form and is returned as-is, unevaluated,
//     with env untouched.
//
// Errors propagate unchanged through every enclosing recursive call.
// Failure is detected before anything environment-affecting commits,
// so on the error path the environment handed back equals the one
// passed in. Recursion depth follows input nesting depth.
func Eval(expr Value, env Env) (Value, Env, error) {
	switch expr.Tag {
	case VTInt, VTBool, VTSym, VTNil:
		return expr, env, nil

	case VTPair:
		if cond, conseq, alt, ok := ifForm(expr); ok {
			cv, _, err := Eval(cond, env)
			if err != nil {
				return Nil, env, err
			}
			if cv.Tag != VTBool {
				return Nil, env, &TypeMismatchError{Form: expr, Got: cv}
			}
			if cv.Data.(bool) {
				return Eval(conseq, env)
			}
			return Eval(alt, env)
		}
		// Unrecognized compound data is inert.
		return expr, env, nil

	default:
		// The union is closed; a tag outside it is a constructed-by-hand
		// Value, not an evaluation outcome.
		panic(fmt.Sprintf("pith: invalid value tag %d", int(expr.Tag)))
	}
}

// ifForm matches the conditional shape: exactly
// (if condition consequent alternative), a proper list. Anything
// else, dotted tails and other lengths included, does not match.
func ifForm(v Value) (cond, conseq, alt Value, ok bool) {
	items, proper := ListItems(v)
	if !proper || len(items) != 4 || !IsSym(items[0], "if") {
		return Nil, Nil, Nil, false
	}
	return items[1], items[2], items[3], true
}

// TypeMismatchError reports a special form that received a value of
// the wrong type: the condition of an (if ...) evaluated to something
// other than #t or #f. Form is the whole offending conditional, Got
// the value its condition produced.
type TypeMismatchError struct {
	Form Value
	Got  Value
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("TYPE MISMATCH in %s: condition evaluated to %s, want #t or #f",
		FormatValue(e.Form), FormatValue(e.Got))
}
