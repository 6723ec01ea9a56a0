// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ternary

// ins is the reducer's sub-instruction pointer (spec.md §4.3): it
// tracks how far into descending a Tree's three children the current
// iteration has gotten, and doubles as the restore target when a
// popped frame hands a reduced child back.
type ins int

const (
	insLeaf ins = iota
	insTree
	insLeft
	insHead
	insRight
	insReturn
	insFunction
)

func nextIns(x *V) ins {
	if x.IsTree() {
		return insTree
	}
	return insLeaf
}

// Eval is the iterative tree-rewriting reducer (spec.md §4.3): a single
// unbounded loop over an explicit cactus stack rather than recursive Go
// calls, so that deep trees and tail-recursive user functions don't grow
// the Go call stack. This is the ternary-domain counterpart of the
// teacher's evalFrames trampoline (trampoline.go) — generalized from a
// handful of generic monadic frame shapes to the five structural frame
// kinds a tree reducer actually needs (frame.go).
func Eval(x *V, env *Environment, cs *CactusStack) (*V, error) {
	cs.Push(&ReturnFrame{Env: env})
	cur := nextIns(x)
	var L, H, R *V

	for {
		if cur >= insTree {
			if cur == insTree {
				L, H, R = x.L, x.H, x.R
			}
			if cur < insLeft && L.IsTree() {
				cs.Push(&LeftFrame{H: H, R: R, Env: env})
				x, cur = L, nextIns(L)
				continue
			}
			if cur < insHead && H.IsTree() {
				cs.Push(&HeadFrame{L: L, R: R, Env: env})
				x, cur = H, nextIns(H)
				continue
			}
			if H.Tag == TagSeparator {
				// Tail-continue into R without pushing a frame: "a | b"
				// evaluates a, discards it, and tail-returns b.
				x, cur = R, nextIns(R)
				continue
			}
			if cur < insRight && R.IsTree() {
				cs.Push(&RightFrame{L: L, H: H, Env: env})
				x, cur = R, nextIns(R)
				continue
			}

			var err error
			x, env, err = reduceHead(L, H, R, env, cs)
			if err != nil {
				return nil, err
			}
			cur = nextIns(x)
			if x.IsTree() && x.L == L && x.H == H && x.R == R {
				// A "." or ":" head hands its own triple back unreduced: it
				// is a value, so go on with the pending frames.
				cur = insLeaf
			}
			continue
		}

		// Apply-continuation: pop one frame and restore (spec.md §4.3).
		f := cs.Pop()
		switch fr := f.(type) {
		case *ReturnFrame:
			return x, nil
		case *LeftFrame:
			L, H, R, env = x, fr.H, fr.R, fr.Env
			cur = insLeft
		case *HeadFrame:
			L, H, R, env = fr.L, x, fr.R, fr.Env
			cur = insHead
		case *RightFrame:
			L, H, R, env = fr.L, fr.H, x, fr.Env
			cur = insRight
		case *FunctionFrame:
			env = fr.Env
			cur = nextIns(x)
		default:
			return nil, &CantReduceError{Head: x}
		}
	}
}

// reduceHead performs one step of "choose reduction by H.tag" (spec.md
// §4.3) once L, H, R are all atomic (or H has reduced to an irreducible
// cons tree). It returns the next x and the (possibly rebound)
// environment to continue with; err is non-nil only for the handful of
// unrecoverable conditions (unbalanced shift, can't-reduce, no-dispatch,
// a bad module path or an OBJECT without a "." constructor) that abort
// the whole Eval rather than being caught as language values.
func reduceHead(L, H, R *V, env *Environment, cs *CactusStack) (*V, *Environment, error) {
	if H.IsTree() {
		if isCons(H) {
			return reduceModulePath(L, H, R, env)
		}
		return nil, nil, &CantReduceError{Head: H}
	}

	switch H.Tag {
	case TagUnit:
		return H, env, nil

	case TagContinuation:
		cc := H.Payload.(*Continuation)
		cs.Scopy(cc.Segment)
		return L, cc.Env, nil

	case TagPunctuation:
		s := AsString(H)
		if s == "." || s == ":" {
			return Tree(L, H, R, H.Sp), env, nil
		}
		return reduceDispatch(s, L, H, R, env)

	case TagBuiltin:
		fn := H.Payload.(NativeFn)
		result, err := fn(L, R, env)
		if err != nil {
			return errorRewrite(err, H.Sp), env, nil
		}
		return result, env, nil

	case TagSpecial:
		fn := H.Payload.(SpecialFn)
		result, env2, err := fn(L, R, env, cs)
		if err != nil {
			return nil, nil, err
		}
		return result, env2, nil

	case TagFunThunk:
		symFunc := Leaf(TagSymbol, "func", H.Sp)
		inner := Tree(H, symFunc, Unit, H.Sp)
		return Tree(L, inner, R, H.Sp), env, nil

	case TagThunk:
		return unthunk(H), env, nil

	case TagFunction:
		return reduceFunction(L, H, R, env, cs)

	case TagObject:
		ctor := AsObjectEnv(H).Lookup(".")
		if ctor == nil {
			return nil, nil, &TypeError{Context: "object constructor", Got: TagObject}
		}
		return Tree(L, ctor, R, H.Sp), env, nil

	case TagSymbol, TagString, TagSeparator:
		return reduceDispatch(AsString(H), L, H, R, env)

	default:
		return nil, nil, &CantReduceError{Head: H}
	}
}

// reduceDispatch resolves operator name fn and replaces H with the
// resolved operation (spec.md §4.4), leaving L/R untouched for the next
// iteration to reduce against the newly substituted head.
func reduceDispatch(fn string, L, H, R *V, env *Environment) (*V, *Environment, error) {
	op, err := Dispatch(fn, L, R, env)
	if err != nil {
		return nil, nil, err
	}
	return Tree(L, op, R, H.Sp), env, nil
}

// reduceModulePath resolves a module-qualified head like a.b.c (spec.md
// §4.3 "TREE whose head is . or :"): walk the left-associative cons
// chain down to a base OBJECT, look the final name up inside it, and
// substitute it in as H.
func reduceModulePath(L, H, R *V, env *Environment) (*V, *Environment, error) {
	if H.R.Tag != TagSymbol {
		return nil, nil, &TypeError{Context: "module path", Got: H.R.Tag}
	}
	modEnv, err := resolveModulePath(H.L, env)
	if err != nil {
		return nil, nil, err
	}
	name := AsString(H.R)
	op := modEnv.Lookup(name)
	if op == nil {
		return nil, nil, &NoDispatchError{Op: name}
	}
	return Tree(L, op, R, H.Sp), env, nil
}

// resolveModulePath walks down to the Environment an OBJECT value wraps,
// following a chain of symbol and cons lookups.
func resolveModulePath(v *V, env *Environment) (*Environment, error) {
	if v.Tag == TagSymbol {
		obj := env.Lookup(AsString(v))
		if obj == nil || obj.Tag != TagObject {
			return nil, &TypeError{Context: "module path", Got: v.Tag}
		}
		return AsObjectEnv(obj), nil
	}
	if v.IsTree() && isCons(v) {
		parent, err := resolveModulePath(v.L, env)
		if err != nil {
			return nil, err
		}
		if v.R.Tag != TagSymbol {
			return nil, &TypeError{Context: "module path", Got: v.R.Tag}
		}
		obj := parent.Lookup(AsString(v.R))
		if obj == nil || obj.Tag != TagObject {
			return nil, &TypeError{Context: "module path", Got: v.Tag}
		}
		return AsObjectEnv(obj), nil
	}
	return nil, &TypeError{Context: "module path", Got: v.Tag}
}

// reduceFunction applies a FUNCTION value, flattening tail calls (spec.md
// §4.8): when the topmost cactus frame is already a Function frame for
// this exact function value, its environment is reused and rebound in
// place instead of pushing a new frame and allocating a new child
// environment, which is what keeps tail-recursive user functions running
// in bounded stack.
func reduceFunction(L, H, R *V, env *Environment, cs *CactusStack) (*V, *Environment, error) {
	fn := H.Payload.(*Function)

	flatten := false
	if top, err := cs.Peek(); err == nil {
		if ff, ok := top.(*FunctionFrame); ok && ff.H == H {
			flatten = true
		}
	}

	if !flatten {
		cs.Push(&FunctionFrame{L: L, H: H, R: R, Env: env})
		env = NewEnvironment(fn.Env)
	}
	env.Bind(fn.LeftName, L)
	env.Bind(fn.RightName, R)
	env.Bind("self", H)
	return fn.Body, env, nil
}

// errorRewrite implements the BUILTIN failure mode (spec.md §4.7): a Go
// error surfacing from a native is caught exactly once and turned into a
// "shift error (ERROR msg)" tree, which the next iteration dispatches
// through the ordinary SYMBOL path to whichever reset "error" [...] is
// innermost.
func errorRewrite(err error, sp Span) *V {
	tag := Leaf(TagSymbol, "error", sp)
	shiftOp := Leaf(TagSymbol, "shift", sp)
	errVal := ErrorValue(err.Error(), sp)
	return Tree(tag, shiftOp, errVal, sp)
}
