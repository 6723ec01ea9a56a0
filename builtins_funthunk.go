// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ternary

// bindFunThunkModule registers the FUNTHUNK type module's sole
// operation: "func", the delayed promotion to FUNCTION that spec.md
// §4.3's FUNTHUNK reduction rule dispatches to (bake.go's
// promoteFunction).
func bindFunThunkModule(root *Environment) {
	modEnv := NewEnvironment(nil)
	modEnv.Bind("func", Builtin(promoteFuncFn, Span{}))
	root.Bind(string(TagFunThunk), ObjectValue(modEnv, Span{}))
}

func promoteFuncFn(l, r *V, env *Environment) (*V, error) {
	return promoteFunction(l, r, env)
}
