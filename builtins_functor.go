// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ternary

// TagSome is the optional-value functor's type tag (original_source/
// functors.py: modules["Some"]).
const TagSome Tag = "Some"

// bindFunctorModules installs the Some/UNIT functor modules and the
// true/false constants (spec.md §4.4's dispatch-table listing names
// `true`/`false` alongside `Some`/`matrix` as registered operand types,
// distinct from functors.py's own module table, which has no true/false
// at all), demonstrating that user-space dispatch over OBJECT type
// modules is enough to build an Optional monad without any reducer
// support beyond ordinary dispatch.
//
// true/false are bound as named SYMBOL constants rather than bare NUM
// 1/0: a SYMBOL already carries a "=" comparison against its name
// (builtins_string.go's SYMBOL module), so dispatch-style code can
// pattern-match a value against `true`/`false` by name ("flag = true")
// the same way it pattern-matches any other symbol, which a plain NUM
// constant can't offer (NUM 1 means nothing more than "one"). Truthy
// special-cases the SYMBOL "false" constant so it still reads as the
// falsy branch when used directly as a condition, keeping hb.py's
// NUM-0-is-false convention in spirit without requiring every boolean
// in the language to be a SYMBOL.
func bindFunctorModules(root *Environment) {
	root.Bind("true", Leaf(TagSymbol, "true", Span{}))
	root.Bind("false", Leaf(TagSymbol, "false", Span{}))

	someEnv := NewEnvironment(nil)
	someEnv.Bind(".", Builtin(someConstruct, Span{}))
	someEnv.Bind("|", Builtin(somePipe, Span{}))
	someEnv.Bind(">>=", Builtin(someBind, Span{}))
	root.Bind(string(TagSome), ObjectValue(someEnv, Span{}))

	unitEnv := NewEnvironment(nil)
	unitEnv.Bind("|", Builtin(unitShortCircuit, Span{}))
	unitEnv.Bind(">>=", Builtin(unitShortCircuit, Span{}))
	root.Bind(string(TagUnit), ObjectValue(unitEnv, Span{}))
}

// someConstruct is Some's "." builtin: wraps l as a Some leaf
// (functors.py: Leaf("Some", Some(a))).
func someConstruct(l, _ *V, _ *Environment) (*V, error) {
	return &V{Tag: TagSome, Payload: l, Sp: l.Sp}, nil
}

// somePipe unwraps a Some and applies its payload against r's shape
// (functors.py: `"|": lambda a, b, env: Tree(a.w.value, b.L, b.R)`).
func somePipe(l, r *V, _ *Environment) (*V, error) {
	inner := l.Payload.(*V)
	if !r.IsTree() {
		return nil, &TypeError{Context: "Some |", Got: r.Tag}
	}
	return Tree(inner, r.L, r.R, r.Sp), nil
}

// someBind implements Some's ">>=" monadic bind by synthesizing the
// same rewrite functors.py's lambda builds: apply the wrapped value to
// a function literal `b.L`, then sequence into `b.R` with the result
// discarded through UNIT, letting the ordinary reducer carry out the
// rest (functors.py: the `>>=` Tree(Tree(value, ->, b.L), ;, ...)
// rewrite).
func someBind(l, r *V, _ *Environment) (*V, error) {
	if !r.IsTree() {
		return nil, &TypeError{Context: "Some >>=", Got: r.Tag}
	}
	inner := l.Payload.(*V)
	arrow := Leaf(TagPunctuation, "->", r.Sp)
	applied := Tree(inner, arrow, r.L, r.Sp)
	semi := Leaf(TagPunctuation, ";", r.Sp)
	rest := Tree(Unit, r.R, Unit, r.Sp)
	return Tree(applied, semi, rest, r.Sp), nil
}

// unitShortCircuit is UNIT's "|"/">>=" handler: an absent value
// propagates unchanged, the Optional monad's "Nothing" short-circuit
// (functors.py: `TT.UNIT: {"|": lambda a, b, env: a, ">>=": ...}`).
func unitShortCircuit(l, _ *V, _ *Environment) (*V, error) {
	return l, nil
}
