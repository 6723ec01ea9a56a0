// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ternary

// Function is the payload of a TagFunction leaf (spec.md §3 Function).
// LeftName/RightName are the symbolic names the body uses for its two
// arguments; Body has already been baked (see bake.go) by the time a
// Function value exists — every free occurrence of LeftName/RightName
// inside Body has been rewritten to an explicit ".$name" lookup tree.
type Function struct {
	LeftName, RightName string
	Body                *V
	Env                 *Environment
}

// NativeFn is a native operation: it reads L and R against the calling
// environment (for lookup/bind/assign — hb.py's BUILTINS are all
// (a, b, env) closures) and produces a result or an error. This is the
// payload of a TagBuiltin leaf. Errors are caught exactly once by the
// reducer and rewritten into a language-level shift "error" (spec.md
// §4.7 Failure mode) — NativeFn therefore returns a Go error rather than
// panicking.
//
// The signature plays the role kont's Cont[R, A] closure plays for the
// teacher: "the rest of the computation, reified as a callable value" —
// but because this reducer has exactly one computation shape (ternary
// tree rewriting) rather than an open set of monadic programs, a plain
// (L, R, env) -> (V, error) function suffices; no CPS wrapping is needed.
type NativeFn func(l, r *V, env *Environment) (*V, error)

// SpecialFn is a native operation that may mutate the environment or the
// cactus stack directly (spec.md §4.3 SPECIAL): "(x', env', cstack') =
// H.w(L, R, cstack, env)". reset and shift are the only two built into
// the core; built-in modules may register more. err is non-nil only for
// the unrecoverable "unbalanced shift" condition (spec.md §7 kind 5),
// which Eval (and so Execute) returns as its error rather than
// delivering as a language value.
type SpecialFn func(l, r *V, env *Environment, cs *CactusStack) (x *V, env2 *Environment, err error)

// Continuation is the payload of a TagContinuation leaf (spec.md §3
// Continuation Frame / §4.5). It pairs a captured cactus-stack segment
// with the environment active at capture time. A Continuation is
// semantically single-use but may be invoked multiple times: each
// invocation reinstalls a *copy* of Segment (CactusStack.Scopy), never
// the original, so repeated invocation never corrupts earlier ones. This
// is the deliberate point of divergence from the teacher's Suspension /
// Affine one-shot guard — see DESIGN.md.
type Continuation struct {
	Segment *Stack
	Env     *Environment
}

// Builtin wraps a NativeFn as a V payload.
func Builtin(fn NativeFn, sp Span) *V {
	return &V{Tag: TagBuiltin, Payload: fn, Sp: sp}
}

// Special wraps a SpecialFn as a V payload.
func Special(fn SpecialFn, sp Span) *V {
	return &V{Tag: TagSpecial, Payload: fn, Sp: sp}
}

// FunctionValue wraps a Function record as a V payload.
func FunctionValue(f *Function, sp Span) *V {
	return &V{Tag: TagFunction, Payload: f, Sp: sp}
}

// ContinuationValue wraps a Continuation as a V payload.
func ContinuationValue(c *Continuation, sp Span) *V {
	return &V{Tag: TagContinuation, Payload: c, Sp: sp}
}

// ErrorValue constructs an ERROR payload (spec.md §3: "An ERROR value
// never participates in dispatch on its own; it is always wrapped into a
// shift 'error' v rewrite" — see reducer.go's catch-once logic).
func ErrorValue(msg string, sp Span) *V {
	return &V{Tag: TagError, Payload: msg, Sp: sp}
}

// ObjectValue wraps an Environment as an OBJECT dispatch module/handle.
func ObjectValue(env *Environment, sp Span) *V {
	return &V{Tag: TagObject, Payload: env, Sp: sp}
}

// AsObjectEnv extracts the Environment handle from an OBJECT leaf. It
// does not accept the NATIVE_OBJECT leaves jsoneach builds: their
// payload is the decoded map[string]any, not an Environment.
func AsObjectEnv(v *V) *Environment { return v.Payload.(*Environment) }
