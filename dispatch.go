// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ternary

// Dispatch resolves operator fn on operand types (L.Tag, R.Tag) to a
// callable value, in the precedence order spec.md §4.4 names:
//
//  1. the type module bound to L's tag, tried as "fn:rt"
//  2. the same type module, tried as "fn"
//  3. the ambient environment, tried as "fn"
//
// A type module is an OBJECT value bound under its tag name (e.g.
// "NUM", "vec") in env; see registry.go for how modules are built and
// installed. Returns NoDispatch if nothing resolves.
func Dispatch(fn string, l, r *V, env *Environment) (*V, error) {
	if mod := env.Lookup(string(l.Tag)); mod != nil && mod.Tag == TagObject {
		modEnv := AsObjectEnv(mod)
		if op := modEnv.Lookup(fn + ":" + string(r.Tag)); op != nil {
			return op, nil
		}
		if op := modEnv.Lookup(fn); op != nil {
			return op, nil
		}
	}
	if op := env.Lookup(fn); op != nil {
		return op, nil
	}
	return nil, &NoDispatchError{Op: fn, LeftTag: l.Tag}
}
