// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ternary

import (
	"sort"

	"github.com/emirpasic/gods/lists/arraylist"
)

// TagNumVec is num_vec's type tag: a homogeneous list of NUM, distinct
// from the heterogeneous "vec" (spec.md §3/§4.7 name num_vec and vec as
// separate types; original_source/matrix.py's own dispatch keys —
// modules["num_vec"]["tomatrix"], modules["matrix"][("reshape",
// "num_vec")] — confirm num_vec, not vec, is matrix's collaborator).
const TagNumVec Tag = "num_vec"

// bindNumVecModule registers the num_vec module: the same append/len/
// each/fold/scan/order/choose/slice family vec offers, type-checked to
// NUM elements, plus "tomatrix" (matrix.py's Matrix bridge, which
// belongs to num_vec's module table, not vec's).
func bindNumVecModule(root *Environment) {
	modEnv := NewEnvironment(nil)
	modEnv.Bind(",", Builtin(numVecAppend, Span{}))
	modEnv.Bind("len", Builtin(numVecLen, Span{}))
	modEnv.Bind("each", Builtin(numVecEach, Span{}))
	modEnv.Bind("fold", Builtin(numVecFold, Span{}))
	modEnv.Bind("scan", Builtin(numVecScan, Span{}))
	modEnv.Bind("order", Builtin(numVecOrder, Span{}))
	modEnv.Bind("choose", Builtin(numVecChoose, Span{}))
	modEnv.Bind("slice", Builtin(numVecSlice, Span{}))
	modEnv.Bind("tomatrix", Builtin(toMatrixBuiltin, Span{}))
	root.Bind(string(TagNumVec), ObjectValue(modEnv, Span{}))
	modEnv.Bind(".", Builtin(numVecConstructor, Span{}))
}

func newNumVec(sp Span) *V {
	return Leaf(TagNumVec, arraylist.New(), sp)
}

func asNumVec(v *V) *arraylist.List { return v.Payload.(*arraylist.List) }

// numVecConstructor is "num_vec": mints an empty num_vec, mirroring
// vecConstructor's "vec" builtin.
func numVecConstructor(l, _ *V, _ *Environment) (*V, error) {
	return newNumVec(l.Sp), nil
}

// numVecAppend appends r to l, starting a fresh num_vec if l isn't one
// yet; r must be NUM, which is what makes num_vec homogeneous where vec
// is not.
func numVecAppend(l, r *V, _ *Environment) (*V, error) {
	if r.Tag != TagNum {
		return nil, &TypeError{Context: "num_vec ,", Got: r.Tag}
	}
	if l.Tag == TagNumVec {
		out := arraylist.New()
		out.Add(asNumVec(l).Values()...)
		out.Add(r)
		return Leaf(TagNumVec, out, l.Sp), nil
	}
	if l.Tag != TagNum {
		return nil, &TypeError{Context: "num_vec ,", Got: l.Tag}
	}
	out := arraylist.New()
	out.Add(l, r)
	return Leaf(TagNumVec, out, l.Sp), nil
}

func numVecLen(l, _ *V, _ *Environment) (*V, error) {
	return NumInt64(int64(asNumVec(l).Size()), l.Sp), nil
}

func numVecEach(l, r *V, env *Environment) (*V, error) {
	for _, elem := range asNumVec(l).Values() {
		if _, err := Eval(Tree(elem.(*V), r, Unit, l.Sp), env, NewCactusStack()); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func numVecFold(l, r *V, env *Environment) (*V, error) {
	acc := NumInt64(0, l.Sp)
	for _, elem := range asNumVec(l).Values() {
		var err error
		acc, err = Eval(Tree(acc, r, elem.(*V), l.Sp), env, NewCactusStack())
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func numVecScan(l, r *V, env *Environment) (*V, error) {
	acc := NumInt64(0, l.Sp)
	out := arraylist.New()
	for _, elem := range asNumVec(l).Values() {
		var err error
		acc, err = Eval(Tree(acc, r, elem.(*V), l.Sp), env, NewCactusStack())
		if err != nil {
			return nil, err
		}
		out.Add(acc)
	}
	return Leaf(TagNumVec, out, l.Sp), nil
}

// numVecOrder sorts l by the NUM values' natural order — unlike vec's
// comparator-driven "order" (elements may be any type), num_vec's
// elements are always NUM, so a direct big.Int comparison suffices.
func numVecOrder(l, _ *V, _ *Environment) (*V, error) {
	values := append([]interface{}(nil), asNumVec(l).Values()...)
	sort.SliceStable(values, func(i, j int) bool {
		return AsNum(values[i].(*V)).Cmp(AsNum(values[j].(*V))) < 0
	})
	out := arraylist.New()
	out.Add(values...)
	return Leaf(TagNumVec, out, l.Sp), nil
}

func numVecChoose(l, r *V, env *Environment) (*V, error) {
	out := arraylist.New()
	for _, elem := range asNumVec(l).Values() {
		v := elem.(*V)
		kept, err := Eval(Tree(v, r, Unit, l.Sp), env, NewCactusStack())
		if err != nil {
			return nil, err
		}
		if Truthy(kept) {
			out.Add(v)
		}
	}
	return Leaf(TagNumVec, out, l.Sp), nil
}

func numVecSlice(l, r *V, _ *Environment) (*V, error) {
	if !isCons(r) || r.L.Tag != TagNum || r.R.Tag != TagNum {
		return nil, &TypeError{Context: "num_vec slice", Got: r.Tag}
	}
	src := asNumVec(l)
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
	return Leaf(TagNumVec, out, l.Sp), nil
}
