// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ternary

import (
	"math/big"
	"sort"

	"github.com/emirpasic/gods/lists/arraylist"
)

// TagVec and TagRange are the two ordered-sequence modules spec.md §4.7
// names beyond NUM/STRING/SYMBOL. Both are plain Tag string values, not
// part of the core closed set (value.go's comment on Tag being an open
// set in practice).
const (
	TagVec   Tag = "vec"
	TagRange Tag = "range"
)

// bindVecModule registers the "vec" heterogeneous-list module (spec.md
// §4.7). The payload is a *arraylist.List from the pack's gods
// dependency rather than a bare []*V — grounded on npillmayer-gorgo's
// use of gods for ordered collections (see DESIGN.md).
func bindVecModule(root *Environment) {
	modEnv := NewEnvironment(nil)
	modEnv.Bind(",", Builtin(vecAppendOp, Span{}))
	modEnv.Bind("len", Builtin(vecLen, Span{}))
	modEnv.Bind("each", Builtin(vecEach, Span{}))
	modEnv.Bind("fold", Builtin(vecFold, Span{}))
	modEnv.Bind("scan", Builtin(vecScan, Span{}))
	modEnv.Bind("zip", Builtin(vecZip, Span{}))
	modEnv.Bind("order", Builtin(vecOrder, Span{}))
	modEnv.Bind("choose", Builtin(vecChoose, Span{}))
	modEnv.Bind("slice", Builtin(vecSlice, Span{}))
	modEnv.Bind("+", Builtin(vecConcat, Span{}))
	root.Bind(string(TagVec), ObjectValue(modEnv, Span{}))
	modEnv.Bind(".", Builtin(vecConstructor, Span{}))
}

func newVec(sp Span) *V {
	return Leaf(TagVec, arraylist.New(), sp)
}

func asVec(v *V) *arraylist.List { return v.Payload.(*arraylist.List) }

// vecConstructor is "vec": the zero-argument module-name builtin that
// mints an empty vec (hb.py: "vec": lambda a,_,env: Leaf("vec", [])).
func vecConstructor(l, _ *V, _ *Environment) (*V, error) {
	return newVec(l.Sp), nil
}

// vecAppend implements ",": append r to l, starting a fresh vec if l
// isn't one yet (hb.py's app/","). Shared with the ambient "," binding
// in builtins_ambient.go so both the bare "," and "vec:," resolve the
// same way.
func vecAppend(l, r *V) (*V, error) {
	if l.Tag == TagVec {
		out := arraylist.New()
		out.Add(asVec(l).Values()...)
		out.Add(r)
		return Leaf(TagVec, out, l.Sp), nil
	}
	out := arraylist.New()
	out.Add(l, r)
	return Leaf(TagVec, out, l.Sp), nil
}

func vecAppendOp(l, r *V, _ *Environment) (*V, error) { return vecAppend(l, r) }

func vecLen(l, _ *V, _ *Environment) (*V, error) {
	return NumInt64(int64(asVec(l).Size()), l.Sp), nil
}

// vecEach applies a function r to every element of vec l, left to
// right, for side effects, returning l unchanged.
func vecEach(l, r *V, env *Environment) (*V, error) {
	for _, elem := range asVec(l).Values() {
		if _, err := Eval(Tree(elem.(*V), r, Unit, l.Sp), env, NewCactusStack()); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// vecFold left-folds r (a two-argument function) over l, seeded with 0.
func vecFold(l, r *V, env *Environment) (*V, error) {
	acc := NumInt64(0, l.Sp)
	for _, elem := range asVec(l).Values() {
		var err error
		acc, err = Eval(Tree(acc, r, elem.(*V), l.Sp), env, NewCactusStack())
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// vecScan is fold's running-total sibling (spec.md §8 scenario 4:
// "scan `+`" over `1,2,3` -> `[1, 3, 6]"): left-folds r over l seeded
// with 0, but keeps every intermediate accumulator instead of only the
// final one.
func vecScan(l, r *V, env *Environment) (*V, error) {
	acc := NumInt64(0, l.Sp)
	out := arraylist.New()
	for _, elem := range asVec(l).Values() {
		var err error
		acc, err = Eval(Tree(acc, r, elem.(*V), l.Sp), env, NewCactusStack())
		if err != nil {
			return nil, err
		}
		out.Add(acc)
	}
	return Leaf(TagVec, out, l.Sp), nil
}

// vecZip pairs l's and r's elements positionally into cons trees "a:b",
// stopping at the shorter of the two (spec.md §4.7's "zip").
func vecZip(l, r *V, _ *Environment) (*V, error) {
	if r.Tag != TagVec {
		return nil, &TypeError{Context: "vec zip", Got: r.Tag}
	}
	a := asVec(l).Values()
	b := asVec(r).Values()
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	colon := Leaf(TagPunctuation, ":", l.Sp)
	out := arraylist.New()
	for i := 0; i < n; i++ {
		out.Add(Tree(a[i].(*V), colon, b[i].(*V), l.Sp))
	}
	return Leaf(TagVec, out, l.Sp), nil
}

// vecOrder sorts l by the two-argument comparator r, the same "apply a
// function elementwise via Eval" idiom vecFold/vecScan use: r(a, b) is
// expected to return a NUM whose sign orders a against b, negative
// meaning a sorts before b (spec.md §4.7's "order").
func vecOrder(l, r *V, env *Environment) (*V, error) {
	values := append([]interface{}(nil), asVec(l).Values()...)
	var sortErr error
	sort.SliceStable(values, func(i, j int) bool {
		if sortErr != nil {
			return false
		}
		cmp, err := Eval(Tree(values[i].(*V), r, values[j].(*V), l.Sp), env, NewCactusStack())
		if err != nil {
			sortErr = err
			return false
		}
		if cmp.Tag != TagNum {
			sortErr = &TypeError{Context: "vec order", Got: cmp.Tag}
			return false
		}
		return AsNum(cmp).Sign() < 0
	})
	if sortErr != nil {
		return nil, sortErr
	}
	out := arraylist.New()
	out.Add(values...)
	return Leaf(TagVec, out, l.Sp), nil
}

// vecChoose keeps only the elements for which predicate r returns a
// truthy value, applied the same way vecEach applies its function
// (spec.md §4.7's "choose").
func vecChoose(l, r *V, env *Environment) (*V, error) {
	out := arraylist.New()
	for _, elem := range asVec(l).Values() {
		v := elem.(*V)
		kept, err := Eval(Tree(v, r, Unit, l.Sp), env, NewCactusStack())
		if err != nil {
			return nil, err
		}
		if Truthy(kept) {
			out.Add(v)
		}
	}
	return Leaf(TagVec, out, l.Sp), nil
}

// vecSlice returns the half-open sub-vec [lo, hi), reading lo:hi from
// the "lo:hi" cons argument r — the same paired-argument-via-cons
// convention rangeConstructor uses for "lo:step" (spec.md §4.7's
// "slicing"). Out-of-range bounds clamp rather than error.
func vecSlice(l, r *V, _ *Environment) (*V, error) {
	if !isCons(r) || r.L.Tag != TagNum || r.R.Tag != TagNum {
		return nil, &TypeError{Context: "vec slice", Got: r.Tag}
	}
	src := asVec(l)
	n := int64(src.Size())
	lo, hi := AsNum(r.L).Int64(), AsNum(r.R).Int64()
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	out := arraylist.New()
	for i := lo; i < hi; i++ {
		elem, _ := src.Get(int(i))
		out.Add(elem)
	}
	return Leaf(TagVec, out, l.Sp), nil
}

// vecConcat is vec's "+": concatenates l and r into a new vec (spec.md
// §4.7's "concatenation"), distinct from "," which appends a single
// element.
func vecConcat(l, r *V, _ *Environment) (*V, error) {
	if r.Tag != TagVec {
		return nil, &TypeError{Context: "vec +", Got: r.Tag}
	}
	out := arraylist.New()
	out.Add(asVec(l).Values()...)
	out.Add(asVec(r).Values()...)
	return Leaf(TagVec, out, l.Sp), nil
}

// bindRangeModule registers "range", the (lo, step, count) arithmetic
// progression spec.md §4.7 names.
func bindRangeModule(root *Environment) {
	modEnv := NewEnvironment(nil)
	modEnv.Bind("len", Builtin(rangeLen, Span{}))
	modEnv.Bind("+:NUM", Builtin(rangeShift, Span{}))
	modEnv.Bind("*:NUM", Builtin(rangeScale, Span{}))
	root.Bind(string(TagRange), ObjectValue(modEnv, Span{}))
	modEnv.Bind(".", Builtin(rangeConstructor, Span{}))
}

type rangeVal struct {
	lo, step, count *big.Int
}

// rangeConstructor builds a range from a cons "lo:step" as l and the
// count as r.
func rangeConstructor(l, r *V, _ *Environment) (*V, error) {
	if !l.IsTree() || r.Tag != TagNum {
		return nil, &TypeError{Context: "range", Got: l.Tag}
	}
	return Leaf(TagRange, &rangeVal{lo: AsNum(l.L), step: AsNum(l.R), count: AsNum(r)}, l.Sp), nil
}

func rangeLen(l, _ *V, _ *Environment) (*V, error) {
	return Num(l.Payload.(*rangeVal).count, l.Sp), nil
}

// rangeShift is range's "+:NUM": shifts the whole progression by adding
// n to lo, keeping step and count unchanged — range arithmetic (spec.md
// §4.7), following builtins_matrix.go's "+:NUM" scalar-arithmetic pattern for a
// different aggregate type.
func rangeShift(l, r *V, _ *Environment) (*V, error) {
	rv := l.Payload.(*rangeVal)
	lo := new(big.Int).Add(rv.lo, AsNum(r))
	return Leaf(TagRange, &rangeVal{lo: lo, step: rv.step, count: rv.count}, l.Sp), nil
}

// rangeScale is range's "*:NUM": scales the stride by n, keeping lo and
// count unchanged — the other half of range arithmetic (spec.md §4.7).
func rangeScale(l, r *V, _ *Environment) (*V, error) {
	rv := l.Payload.(*rangeVal)
	step := new(big.Int).Mul(rv.step, AsNum(r))
	return Leaf(TagRange, &rangeVal{lo: rv.lo, step: step, count: rv.count}, l.Sp), nil
}
