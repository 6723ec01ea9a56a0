// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ternary

import (
	"fmt"
	"time"
)

// bindAmbient installs the operators that resolve directly in the
// ambient environment regardless of operand type (spec.md §4.4 step 3),
// grounded on original_source/hb.py's flat BUILTINS/SPECIAL dicts.
func bindAmbient(root *Environment) {
	root.Bind("reset", Special(Reset, Span{}))
	root.Bind("shift", Special(Shift, Span{}))

	root.Bind("$", Builtin(lookupBuiltin, Span{}))
	root.Bind("to", Builtin(assignBuiltin, Span{}))
	root.Bind("as", Builtin(bindBuiltin, Span{}))
	root.Bind("is", Builtin(isBuiltin, Span{}))
	root.Bind("if", Builtin(ifBuiltin, Span{}))
	root.Bind("then", Builtin(thenBuiltin, Span{}))
	root.Bind("?", Builtin(thenBuiltin, Span{}))
	root.Bind("not", Builtin(notBuiltin, Span{}))
	root.Bind("t", Builtin(typeOfBuiltin, Span{}))
	root.Bind("|", Builtin(pipeBuiltin, Span{}))
	root.Bind("bake", Builtin(bakeBuiltin, Span{}))
	root.Bind("L", Builtin(leftChildBuiltin, Span{}))
	root.Bind("H", Builtin(headChildBuiltin, Span{}))
	root.Bind("R", Builtin(rightChildBuiltin, Span{}))
	root.Bind("open", Builtin(openBuiltin, Span{}))
	root.Bind("unwrap", Builtin(openBuiltin, Span{}))
	root.Bind(",", Builtin(appendBuiltin, Span{}))
	root.Bind("print", Builtin(printBuiltin, Span{}))
	root.Bind("wait", Builtin(waitBuiltin, Span{}))
	root.Bind("!", Builtin(invokeBuiltin, Span{}))
	root.Bind("dispatch", Builtin(setDispatchBuiltin, Span{}))
	root.Bind("sametype", Builtin(sameTypeBuiltin, Span{}))
}

// lookupBuiltin is "$": env.lookup(name, fallback=l) (hb.py: env.lookup
// (b.w, a)). It is how baked variable reads (bake.go) resolve.
func lookupBuiltin(l, r *V, env *Environment) (*V, error) {
	if v := env.Lookup(AsString(r)); v != nil {
		return v, nil
	}
	return l, nil
}

// assignBuiltin is "to": env.assign(name, l).
func assignBuiltin(l, r *V, env *Environment) (*V, error) {
	return env.Assign(AsString(r), l), nil
}

// bindBuiltin is "as": env.bind(name, l).
func bindBuiltin(l, r *V, env *Environment) (*V, error) {
	return env.Bind(AsString(r), l), nil
}

// isBuiltin is "is": env.bind(name-of-l, r).
func isBuiltin(l, r *V, env *Environment) (*V, error) {
	return env.Bind(AsString(l), r), nil
}

// ifBuiltin implements the "if" ternary: l is a PUNCTUATION tree whose
// L/R hold the two branches, r is the NUM condition (spec.md §4.7; hb.py
// if_).
func ifBuiltin(l, r *V, _ *Environment) (*V, error) {
	if !l.IsTree() {
		return nil, &TypeError{Context: "if", Got: l.Tag}
	}
	branch := l.R
	if Truthy(r) {
		branch = l.L
	}
	return unthunk(branch), nil
}

func thenBuiltin(l, r *V, env *Environment) (*V, error) {
	return ifBuiltin(r, l, env)
}

func notBuiltin(l, _ *V, _ *Environment) (*V, error) {
	return Bool(!Truthy(l), l.Sp), nil
}

func typeOfBuiltin(l, _ *V, _ *Environment) (*V, error) {
	return Leaf(TagSymbol, string(l.Tag), l.Sp), nil
}

func pipeBuiltin(_, r *V, _ *Environment) (*V, error) { return r, nil }

// bakeBuiltin lets user code re-bake an already-constructed FUNCTION's
// body (hb.py's standalone "bake" builtin, distinct from the FUNTHUNK
// module's automatic "func" promotion in bake.go).
func bakeBuiltin(l, _ *V, _ *Environment) (*V, error) {
	if l.Tag != TagFunction {
		return nil, &TypeError{Context: "bake", Got: l.Tag}
	}
	fn := l.Payload.(*Function)
	body := bake(bake(fn.Body, fn.LeftName), fn.RightName)
	return FunctionValue(&Function{LeftName: fn.LeftName, RightName: fn.RightName, Body: body, Env: fn.Env}, l.Sp), nil
}

func leftChildBuiltin(l, _ *V, _ *Environment) (*V, error) {
	if !l.IsTree() {
		return nil, &TypeError{Context: "L", Got: l.Tag}
	}
	return l.L, nil
}

func headChildBuiltin(l, _ *V, _ *Environment) (*V, error) {
	if !l.IsTree() {
		return nil, &TypeError{Context: "H", Got: l.Tag}
	}
	return l.H, nil
}

func rightChildBuiltin(l, _ *V, _ *Environment) (*V, error) {
	if !l.IsTree() {
		return nil, &TypeError{Context: "R", Got: l.Tag}
	}
	return l.R, nil
}

// openBuiltin unwraps a FUNCTION or THUNK payload tree (spec.md §4.6
// "open"/"unwrap").
func openBuiltin(l, _ *V, _ *Environment) (*V, error) {
	switch l.Tag {
	case TagThunk, TagFunThunk:
		return l.Payload.(*V), nil
	case TagFunction:
		return l.Payload.(*Function).Body, nil
	}
	return nil, &TypeError{Context: "open", Got: l.Tag}
}

// appendBuiltin is ",": append to (or start) a vec.
func appendBuiltin(l, r *V, _ *Environment) (*V, error) {
	return vecAppend(l, r)
}

func printBuiltin(l, _ *V, _ *Environment) (*V, error) {
	fmt.Println(Render(l))
	return l, nil
}

func waitBuiltin(l, r *V, _ *Environment) (*V, error) {
	if r.Tag != TagNum || AsNum(r).Sign() < 0 {
		return nil, &TypeError{Context: "wait", Got: r.Tag}
	}
	time.Sleep(time.Duration(AsNum(r).Int64()) * time.Second)
	return l, nil
}

// invokeBuiltin is "!": Tree(l, r, UNIT) — a generic re-dispatch entry
// point (hb.py's invoke).
func invokeBuiltin(l, r *V, _ *Environment) (*V, error) {
	return Tree(l, r, Unit, r.Sp), nil
}

// setDispatchBuiltin is "dispatch": register l as the handler for
// operator b.L on operand type named by b.R (spec.md §4.7's registry,
// hb.py's set_dispatch). r must be a cons "op:type". The type module is
// created lazily in the environment the dispatch call is running in, so
// a script can extend a built-in module or define an entirely new one.
func setDispatchBuiltin(l, r *V, env *Environment) (*V, error) {
	if !r.IsTree() {
		return nil, &TypeError{Context: "dispatch", Got: r.Tag}
	}
	opName := AsString(r.L)
	typeName := AsString(r.R)
	mod := env.Lookup(typeName)
	if mod == nil || mod.Tag != TagObject {
		mod = ObjectValue(NewEnvironment(nil), r.Sp)
		env.Bind(typeName, mod)
	}
	AsObjectEnv(mod).Bind(opName, l)
	return l, nil
}

func sameTypeBuiltin(l, r *V, _ *Environment) (*V, error) {
	return Bool(l.Tag == r.Tag, l.Sp), nil
}
