// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ternary

// promoteFunction is the FUNTHUNK module's "func" operation (spec.md
// §4.3's "a delayed func-promotion" dispatches here). l is the FUNTHUNK
// being promoted; r is unused (always UNIT at the call site). env is the
// lexical environment active at promotion time, captured as the
// resulting Function's closure.
func promoteFunction(l, _ *V, env *Environment) (*V, error) {
	leftName, rightName, body := splitHeader(l.Payload.(*V))
	body = bake(body, leftName)
	body = bake(body, rightName)
	return FunctionValue(&Function{
		LeftName:  leftName,
		RightName: rightName,
		Body:      body,
		Env:       env,
	}, l.Sp), nil
}

// splitHeader implements the function construction rule (spec.md §4.2):
// if body's top is Tree(header, SEPARATOR, rest), and header is a single
// symbol or a two-symbol cons "a:b", the header is stripped and supplies
// the parameter names; otherwise the names default to x/y and the body
// passes through untouched.
func splitHeader(body *V) (leftName, rightName string, rest *V) {
	if body.IsTree() && body.H.Tag == TagSeparator {
		header := body.L
		if header.Tag == TagSymbol {
			return AsString(header), "_", body.R
		}
		if isCons(header) && header.L.Tag == TagSymbol && header.R.Tag == TagSymbol {
			return AsString(header.L), AsString(header.R), body.R
		}
	}
	return "x", "y", body
}

// isCons reports whether v is an unreduced "." or ":" tree node.
func isCons(v *V) bool {
	if !v.IsTree() {
		return false
	}
	if v.H.Tag != TagPunctuation {
		return false
	}
	s := AsString(v.H)
	return s == "." || s == ":"
}

// bake rewrites every free Leaf(SYMBOL, name) inside body into the
// explicit lookup tree Tree(Leaf(SYMBOL,"."), Leaf(PUNCTUATION,"$"),
// Leaf(SYMBOL,name)) (spec.md §4.2). It recurses through tree children
// and through THUNK/FUNTHUNK payloads: a non-tail recursive call must be
// deferred inside "[...]" or "{...}" (an un-thunked branch is reduced
// eagerly by the strict Left-Head-Right walk before a conditional ever
// runs — original_source/hb.py's if_ only special-cases THUNK/FUNCTION
// branches for exactly this reason), so a read of the enclosing
// function's own parameter inside a deferred branch is just as "free"
// as one anywhere else in the body and must bake the same way.
//
// A FUNTHUNK payload is only descended into when name isn't one of
// *its own* parameter names — if it is, that payload's free reads of
// name refer to its own (shadowing) binding, not the outer one, and its
// header must survive untouched since promoteFunction's splitHeader
// pattern-matches it again at that FUNTHUNK's own promotion.
func bake(body *V, name string) *V {
	if body.IsTree() {
		l := bake(body.L, name)
		h := bake(body.H, name)
		r := bake(body.R, name)
		if l == body.L && h == body.H && r == body.R {
			return body
		}
		return Tree(l, h, r, body.Sp)
	}
	if body.Tag == TagSymbol && AsString(body) == name {
		return lookupTree(body, name)
	}
	if body.Tag == TagThunk {
		payload := body.Payload.(*V)
		baked := bake(payload, name)
		if baked == payload {
			return body
		}
		return Leaf(TagThunk, baked, body.Sp)
	}
	if body.Tag == TagFunThunk {
		payload := body.Payload.(*V)
		innerLeft, innerRight, _ := splitHeader(payload)
		if innerLeft == name || innerRight == name {
			return body
		}
		baked := bake(payload, name)
		if baked == payload {
			return body
		}
		return Leaf(TagFunThunk, baked, body.Sp)
	}
	return body
}

// lookupTree builds the explicit "$" read tree a bare symbol reference
// is rewritten into.
func lookupTree(sp *V, name string) *V {
	dot := Leaf(TagSymbol, ".", sp.Sp)
	dollar := Leaf(TagPunctuation, "$", sp.Sp)
	return Tree(dot, dollar, Leaf(TagSymbol, name, sp.Sp), sp.Sp)
}
