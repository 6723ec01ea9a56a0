// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ternary

// Execute runs body to completion against env, establishing the two
// delimiters every top-level reduction gets for free (spec.md §4.5):
// "reset '__root__' (reset 'error' (body))" — an outermost delimiter any
// stray shift ultimately lands at, and a default error handler beneath
// it. env is the caller's persistent global/REPL environment; a fresh
// CactusStack is created per call, so a REPL can invoke Execute once per
// input line while reusing bindings across lines.
func Execute(body *V, env *Environment) (*V, error) {
	sp := body.Sp
	errorTag := Leaf(TagSymbol, "error", sp)
	rootTag := Leaf(TagSymbol, RootTag, sp)
	resetSym := Leaf(TagSymbol, "reset", sp)

	// body and the inner reset must sit behind THUNK leaves: R is only
	// atomic (and so left untouched until reduceHead actually dispatches
	// "reset") when it isn't itself a structural tree. Without this, the
	// strict Left-Head-Right ordering (spec.md §4.3) would reduce body to
	// completion before either delimiter's segment is ever spushed.
	innerReset := Tree(errorTag, resetSym, Leaf(TagThunk, body, sp), sp)
	outerReset := Tree(rootTag, resetSym, Leaf(TagThunk, innerReset, sp), sp)

	cs := NewCactusStack()
	return Eval(outerReset, env, cs)
}
