// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ternary_test

import (
	"testing"

	"code.hybscloud.com/ternary"
	"code.hybscloud.com/ternary/parser"
)

func run(t *testing.T, src string) *ternary.V {
	t.Helper()
	body, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	root := ternary.NewRootEnvironment()
	v, err := ternary.Execute(body, root)
	if err != nil {
		t.Fatalf("execute %q: %v", src, err)
	}
	return v
}

func wantNum(t *testing.T, src string, want int64) {
	t.Helper()
	v := run(t, src)
	if v.Tag != ternary.TagNum {
		t.Fatalf("%q: got tag %s, want NUM", src, v.Tag)
	}
	if got := ternary.AsNum(v).Int64(); got != want {
		t.Fatalf("%q: got %d, want %d", src, got, want)
	}
}

func TestArithmeticLeftAssociative(t *testing.T) {
	// spec.md §8 scenario 1: left-associative, no precedence beyond
	// left-to-right within the ternary IR.
	wantNum(t, "1 + 2 * 3", 9)
}

func TestFunctionApplication(t *testing.T) {
	// "arg ! callee": invoke's Tree(a,b,UNIT) promotes the FUNTHUNK
	// automatically once it lands in head position (reducer.go's
	// TagFunThunk case), so no explicit ".func" call is needed here.
	wantNum(t, `41 ! {x + 1}`, 42)
}

func TestTailCallFlatteningDoesNotOverflow(t *testing.T) {
	// spec.md §8 scenario 2: a 100000-deep countdown must reduce in
	// bounded Go stack. "F is (...func())" binds the already-promoted
	// FUNCTION (rather than a raw FUNTHUNK re-promoted on every call),
	// so every recursive "! F" resolves to the same Function value and
	// reduceFunction's tail-call flattening reuses the frame. The
	// recursive branch is deferred inside "[...]" so it isn't reduced
	// eagerly before "then" picks a side; bake.go now recurses into that
	// THUNK payload, so the bare "n" read inside it bakes like any other
	// free read of the function's own parameter.
	wantNum(t, `F is ( { n | ( n = 0 ) then ( 0 : [ ( n - 1 ) ! F ] ) } func () ) | 100000 ! F`, 0)
}

func TestResetShiftRoundTrip(t *testing.T) {
	// spec.md §8 "Continuation round-trip": reset t [ shift t [...] ] = v.
	// Concrete surface syntax is "tag reset body" / "tag shift handler"
	// (reset/shift are SPECIALs dispatched through H, so the tag — not
	// the keyword — occupies the triple's left slot; see execute.go's
	// own "rootTag reset ..." construction). reset's and shift's bodies
	// are THUNK-wrapped so the strict Left-Head-Right evaluation order
	// doesn't reduce them before the delimiter/capture dispatches.
	wantNum(t, `"t" reset [ "t" shift [ 5 ] ]`, 5)
}

func TestMultiShotContinuation(t *testing.T) {
	// spec.md §8 scenario 3: invoking the captured "+10" continuation
	// twice composes as (10+1) + (10+2) = 23. The handler is a genuine
	// FUNCTION (promoted via "func") so shift can bind the continuation
	// to its parameter name; each invocation (again "arg ! cc") gets its
	// own independent cactus-segment copy via CactusStack.Scopy.
	wantNum(t, `"k" reset [ 10 + ( "k" shift ( { cc | ( 1 ! cc ) + ( 2 ! cc ) } func () ) ) ]`, 23)
}

func TestVecBuildFoldScan(t *testing.T) {
	v := run(t, `1 , 2 , 3`)
	if v.Tag != ternary.TagVec {
		t.Fatalf("got tag %s, want vec", v.Tag)
	}
	if got := ternary.Render(v); got != "[1, 2, 3]" {
		t.Fatalf("got %s, want [1, 2, 3]", got)
	}
	// Quoted: bare "+" is punctuation, not an atom, so passing it as data
	// (rather than as an infix head) needs the STRING form (spec.md §8
	// scenario 4).
	wantNum(t, `(1 , 2 , 3) fold "+"`, 6)
	scanned := run(t, `(1 , 2 , 3) scan "+"`)
	if got := ternary.Render(scanned); got != "[1, 3, 6]" {
		t.Fatalf("scan got %s, want [1, 3, 6]", got)
	}
}

func TestDivisionByZeroReifiesAsError(t *testing.T) {
	v := run(t, `"error" reset [ 1 / 0 ]`)
	if v.Tag != ternary.TagError {
		t.Fatalf("got tag %s, want ERROR", v.Tag)
	}
}

func TestBakingRewritesFreeParamReads(t *testing.T) {
	// spec.md §8 "Baking": a function body's free reads of its own
	// parameter resolve through the ".$name" lookup tree.
	wantNum(t, `10 ! {x | x + 1}`, 11)
}

func TestDispatchPrecedence(t *testing.T) {
	// The same "+" head resolves through the left operand's type module:
	// NUM's addition for numbers, STRING's concatenation for strings.
	wantNum(t, `3 + 4`, 7)
	if got := ternary.Render(run(t, `"ab" + "cd"`)); got != `"abcd"` {
		t.Fatalf(`"ab" + "cd": got %s, want "abcd"`, got)
	}
}
