// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ternary_test

import (
	"testing"

	"code.hybscloud.com/ternary"
)

func TestVecZipPairsElementwise(t *testing.T) {
	v := run(t, `(1 , 2 , 3) zip (4 , 5 , 6)`)
	if got := ternary.Render(v); got != "[(1 : 4), (2 : 5), (3 : 6)]" {
		t.Fatalf("got %s, want [(1 : 4), (2 : 5), (3 : 6)]", got)
	}
}

func TestVecOrderSortsByComparator(t *testing.T) {
	// The two-symbol header must be parenthesized: ":" is right-
	// associative in the grammar (parser.go's expr()), so a bare
	// "a:b | a - b" would let ":" swallow the whole "|" chain as its
	// right operand instead of stopping at "b". Wrapping "(a:b)" forces
	// it to parse as one cons atom, matching splitHeader's expectation
	// of Tree(header, SEPARATOR, rest) with header a two-symbol cons.
	v := run(t, `(3 , 1 , 2) order {(a:b) | a - b}`)
	if got := ternary.Render(v); got != "[1, 2, 3]" {
		t.Fatalf("got %s, want [1, 2, 3]", got)
	}
}

func TestVecChooseFiltersByPredicate(t *testing.T) {
	v := run(t, `(1 , 2 , 3 , 4) choose {n | n > 2}`)
	if got := ternary.Render(v); got != "[3, 4]" {
		t.Fatalf("got %s, want [3, 4]", got)
	}
}

func TestVecSliceHalfOpenRange(t *testing.T) {
	v := run(t, `(1 , 2 , 3 , 4) slice (1 : 3)`)
	if got := ternary.Render(v); got != "[2, 3]" {
		t.Fatalf("got %s, want [2, 3]", got)
	}
}

func TestVecConcatenation(t *testing.T) {
	v := run(t, `(1 , 2) + (3 , 4)`)
	if got := ternary.Render(v); got != "[1, 2, 3, 4]" {
		t.Fatalf("got %s, want [1, 2, 3, 4]", got)
	}
}

func TestStringSlice(t *testing.T) {
	v := run(t, `"hello" slice (1 : 4)`)
	if got := ternary.Render(v); got != `"ell"` {
		t.Fatalf(`got %s, want "ell"`, got)
	}
}

func TestRangeArithmeticShiftAndScale(t *testing.T) {
	// "range" names the range module; used as a triple's head it invokes
	// the module's "." constructor: (lo:step) range count. A bare "0:1:3" is just a nested cons chain, never a
	// TagRange value, since ":" never auto-dispatches (reducer.go's
	// TagPunctuation case returns cons trees unreduced).
	v := run(t, `((0 : 1) range 3) + 10`)
	if got := ternary.Render(v); got != "10:1:3" {
		t.Fatalf("got %s, want 10:1:3", got)
	}
	v = run(t, `((0 : 1) range 3) * 2`)
	if got := ternary.Render(v); got != "0:2:3" {
		t.Fatalf("got %s, want 0:2:3", got)
	}
}

func TestNumVecToMatrixReshapeShape(t *testing.T) {
	// "() num_vec ()" invokes the num_vec module's "." constructor (ignores
	// its operands, mints an empty num_vec), matching hb.py's "vec" builtin
	// invocation convention; the subsequent "," chain dispatches through
	// num_vec's own module once l carries the num_vec tag.
	six := `((() num_vec ()) , 1 , 2 , 3 , 4 , 5 , 6)`
	two3 := `((() num_vec ()) , 2 , 3)`

	// Every L-H-R triple needs an R, even for unary-feeling operations
	// like tomatrix/shape that ignore it; trailing "()" supplies UNIT.
	v := run(t, six+` tomatrix ()`)
	if v.Tag != ternary.TagMatrix {
		t.Fatalf("got tag %s, want matrix", v.Tag)
	}

	reshaped := run(t, `(`+six+` tomatrix ()) reshape `+two3)
	if reshaped.Tag != ternary.TagMatrix {
		t.Fatalf("got tag %s, want matrix", reshaped.Tag)
	}

	shape := run(t, `((`+six+` tomatrix ()) reshape `+two3+`) shape ()`)
	if shape.Tag != ternary.TagNumVec {
		t.Fatalf("got tag %s, want num_vec", shape.Tag)
	}
	if got := ternary.Render(shape); got != "[2, 3]" {
		t.Fatalf("got %s, want [2, 3]", got)
	}
}

func TestFunctorTrueFalseAreNamedSymbols(t *testing.T) {
	// SYMBOL's "=" compares by name, so dispatch-style code can
	// pattern-match a value against true/false the same way it matches
	// any other symbol.
	wantNum(t, `true = true`, 1)
	wantNum(t, `true = false`, 0)
	// Truthy special-cases the false symbol: used directly as a
	// condition, it takes the falsy (R) branch without ever touching
	// the thunked, divide-by-zero L branch.
	wantNum(t, `false then ( [ 1 / 0 ] : 1 )`, 1)
}
