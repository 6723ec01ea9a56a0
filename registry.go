// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ternary

// NewRootEnvironment builds the ambient environment every Execute starts
// a program in: the SPECIAL control operators, the flat ambient
// builtins, and one type module per entry in spec.md §4.7's built-in
// registry. Grounded on original_source/hb.py's Repl(), which seeds its
// own root Env from BUILTINS/SPECIAL the same way, generalized into
// per-type OBJECT modules per spec.md §4.4's dispatch precedence.
func NewRootEnvironment() *Environment {
	root := NewEnvironment(nil)
	bindAmbient(root)
	bindNumModule(root)
	bindStringModule(root)
	bindVecModule(root)
	bindNumVecModule(root)
	bindRangeModule(root)
	bindNumSetModule(root)
	bindFunThunkModule(root)
	bindFileModule(root)
	bindFunctorModules(root)
	bindMatrixModule(root)
	return root
}
