// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ternary

// Reset is the SPECIAL backing the "reset" keyword (spec.md §4.5). L
// names the delimiter tag; R is the guarded body. It opens a fresh
// tagged segment on the cactus stack (Spush) and hands R (unwrapped if
// a THUNK) back to the reducer to continue evaluating in place — every
// structural frame the body's reduction pushes from here on lands in
// this new segment, a direct port of original_source/hb.py's
// "cstack.spush(); return b" and stack.py's Cactus.reset. A body that
// completes without shifting leaves this segment empty; the reducer's
// own Pop() already skips empty segments, so an un-shifted reset needs
// no separate marker frame to fall through transparently.
func Reset(l, r *V, env *Environment, cs *CactusStack) (*V, *Environment, error) {
	cs.Spush(tagString(l))
	return unthunk(r), env, nil
}

// Shift is the SPECIAL backing the "shift" keyword (spec.md §4.5). L
// names the tag to escape to; R is the function (or plain value)
// receiving the captured continuation.
func Shift(l, r *V, env *Environment, cs *CactusStack) (*V, *Environment, error) {
	return performShift(cs, env, tagString(l), r)
}

// performShift pops segments off cs (Spop) until it pops the one tagged
// tag — a direct port of hb.py's "cc = cstack.spop()" — wraps that
// segment with env into a CONTINUATION, then either invokes r with the
// continuation as its left argument (if r is callable) or returns r
// unchanged (spec.md §4.5). The popped segment already holds its frames
// in push order, exactly what Scopy needs to replay it later, so no
// separate frame-by-frame capture or reversal is needed. NativeFn
// failures funnel language-level errors through this same function with
// tag "error" and a non-callable r, which is what makes error delivery
// and ordinary shift share one unwinding path (spec.md §7 propagation).
func performShift(cs *CactusStack, env *Environment, tag string, r *V) (*V, *Environment, error) {
	captured, err := cs.Spop(tag)
	if err != nil {
		return nil, nil, err
	}

	cc := &Continuation{Segment: captured, Env: env}
	childEnv := NewEnvironment(env)
	k := ContinuationValue(cc, r.Sp)

	if callable(r) {
		return Tree(k, r, Unit, r.Sp), childEnv, nil
	}
	return r, childEnv, nil
}

// callable reports whether v can stand as the head of an application —
// the set of tags the reducer itself knows how to enter.
func callable(v *V) bool {
	switch v.Tag {
	case TagFunction, TagBuiltin, TagSpecial, TagThunk, TagContinuation:
		return true
	}
	return false
}

// unthunk unwraps a THUNK to its body; any other value passes through
// unchanged. reset and Function application both do this immediately
// before handing control back to the reducer (spec.md §4.3 THUNK).
func unthunk(v *V) *V {
	if v.Tag == TagThunk {
		return v.Payload.(*V)
	}
	return v
}

// tagString extracts the label a reset/shift operand names, accepting
// either a SYMBOL or a STRING leaf (spec.md §4.5: "L is a tag
// symbol/string").
func tagString(v *V) string {
	if v.Tag == TagSymbol || v.Tag == TagString {
		return AsString(v)
	}
	return ""
}
