// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ternary

import "math/big"

// bindNumModule registers the NUM type module (spec.md §4.7): arbitrary-
// precision arithmetic, comparison, and the "NUM:op" dispatch slots a
// plain number resolves through. Grounded on original_source/hb.py's
// BUILTINS arithmetic lambdas, generalized from machine ints to
// math/big.Int (spec.md §3: "NUM is arbitrary precision").
func bindNumModule(root *Environment) {
	modEnv := NewEnvironment(nil)
	modEnv.Bind("+", Builtin(numAdd, Span{}))
	modEnv.Bind("-", Builtin(numSub, Span{}))
	modEnv.Bind("*", Builtin(numMul, Span{}))
	modEnv.Bind("/", Builtin(numDiv, Span{}))
	modEnv.Bind("=", Builtin(numEq, Span{}))
	modEnv.Bind("<", Builtin(numLt, Span{}))
	modEnv.Bind(">", Builtin(numGt, Span{}))
	modEnv.Bind("le", Builtin(numLe, Span{}))
	modEnv.Bind("ge", Builtin(numGe, Span{}))
	modEnv.Bind("lt", Builtin(numLt, Span{}))
	modEnv.Bind("gt", Builtin(numGt, Span{}))
	root.Bind(string(TagNum), ObjectValue(modEnv, Span{}))
}

func numBinOp(l, r *V, f func(z, x, y *big.Int) *big.Int) (*V, error) {
	if l.Tag != TagNum || r.Tag != TagNum {
		return nil, &TypeError{Context: "NUM arithmetic", Got: r.Tag}
	}
	z := new(big.Int)
	f(z, AsNum(l), AsNum(r))
	return Num(z, l.Sp), nil
}

func numAdd(l, r *V, _ *Environment) (*V, error) {
	return numBinOp(l, r, (*big.Int).Add)
}

func numSub(l, r *V, _ *Environment) (*V, error) {
	return numBinOp(l, r, (*big.Int).Sub)
}

func numMul(l, r *V, _ *Environment) (*V, error) {
	return numBinOp(l, r, (*big.Int).Mul)
}

// numDiv is floor division, matching hb.py's "//" via Python semantics.
func numDiv(l, r *V, _ *Environment) (*V, error) {
	if l.Tag != TagNum || r.Tag != TagNum {
		return nil, &TypeError{Context: "NUM /", Got: r.Tag}
	}
	if AsNum(r).Sign() == 0 {
		return nil, &TypeError{Context: "NUM / by zero", Got: r.Tag}
	}
	q, m := new(big.Int), new(big.Int)
	q.DivMod(AsNum(l), AsNum(r), m)
	if m.Sign() != 0 && AsNum(r).Sign() < 0 {
		// DivMod is Euclidean; a negative divisor with a remainder needs
		// one more step down to reach the floor.
		q.Sub(q, big.NewInt(1))
	}
	return Num(q, l.Sp), nil
}

func numEq(l, r *V, _ *Environment) (*V, error) {
	if l.Tag != TagNum || r.Tag != TagNum {
		return Bool(false, l.Sp), nil
	}
	return Bool(AsNum(l).Cmp(AsNum(r)) == 0, l.Sp), nil
}

func numLt(l, r *V, _ *Environment) (*V, error) {
	return Bool(AsNum(l).Cmp(AsNum(r)) < 0, l.Sp), nil
}

func numGt(l, r *V, _ *Environment) (*V, error) {
	return Bool(AsNum(l).Cmp(AsNum(r)) > 0, l.Sp), nil
}

func numLe(l, r *V, _ *Environment) (*V, error) {
	return Bool(AsNum(l).Cmp(AsNum(r)) <= 0, l.Sp), nil
}

func numGe(l, r *V, _ *Environment) (*V, error) {
	return Bool(AsNum(l).Cmp(AsNum(r)) >= 0, l.Sp), nil
}
