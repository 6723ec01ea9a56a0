// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ternary

import (
	"math/big"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// TagNumSet is the "num_set" module spec.md §4.7 names: a set of NUM
// values kept in sorted order. Backed by gods' treeset rather than a
// hand-rolled map, grounded on npillmayer-gorgo's treeset usage for its
// LR automaton state sets (see DESIGN.md).
const TagNumSet Tag = "num_set"

func bigIntComparator(a, b interface{}) int {
	return a.(*big.Int).Cmp(b.(*big.Int))
}

// bindNumSetModule registers the num_set module.
func bindNumSetModule(root *Environment) {
	modEnv := NewEnvironment(nil)
	modEnv.Bind(",", Builtin(numSetAdd, Span{}))
	modEnv.Bind("len", Builtin(numSetLen, Span{}))
	modEnv.Bind("has", Builtin(numSetHas, Span{}))
	modEnv.Bind("each", Builtin(numSetEach, Span{}))
	root.Bind(string(TagNumSet), ObjectValue(modEnv, Span{}))
	modEnv.Bind(".", Builtin(numSetConstructor, Span{}))
}

func asNumSet(v *V) *treeset.Set { return v.Payload.(*treeset.Set) }

func numSetConstructor(l, _ *V, _ *Environment) (*V, error) {
	return Leaf(TagNumSet, treeset.NewWith(utils.Comparator(bigIntComparator)), l.Sp), nil
}

func numSetAdd(l, r *V, _ *Environment) (*V, error) {
	if r.Tag != TagNum {
		return nil, &TypeError{Context: "num_set ,", Got: r.Tag}
	}
	out := treeset.NewWith(utils.Comparator(bigIntComparator))
	for _, v := range asNumSet(l).Values() {
		out.Add(v)
	}
	out.Add(AsNum(r))
	return Leaf(TagNumSet, out, l.Sp), nil
}

func numSetLen(l, _ *V, _ *Environment) (*V, error) {
	return NumInt64(int64(asNumSet(l).Size()), l.Sp), nil
}

func numSetHas(l, r *V, _ *Environment) (*V, error) {
	if r.Tag != TagNum {
		return Bool(false, l.Sp), nil
	}
	return Bool(asNumSet(l).Contains(AsNum(r)), l.Sp), nil
}

// numSetEach applies r to every element of l in sorted order, for side
// effects, returning l unchanged — same "each" family member vecEach
// implements for vec (spec.md §4.7).
func numSetEach(l, r *V, env *Environment) (*V, error) {
	for _, elem := range asNumSet(l).Values() {
		n := Num(elem.(*big.Int), l.Sp)
		if _, err := Eval(Tree(n, r, Unit, l.Sp), env, NewCactusStack()); err != nil {
			return nil, err
		}
	}
	return l, nil
}
