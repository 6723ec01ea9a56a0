// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ternary

// Frame is the interface for continuation frames pushed onto the cactus
// stack (spec.md §3 Continuation Frame). Dispatch on the popped frame
// uses a type switch, not a tag field — Frame is a pure marker
// interface, the same discipline the teacher's frame.go uses for its
// defunctionalized Frame chain ("Dispatch uses type switches, not tags —
// Frame is a pure marker method.").
//
// Unlike kont's Frame (generic BindFrame/MapFrame/ThenFrame/EffectFrame,
// one shape per monadic combinator), this reducer has exactly one
// computation shape — ternary tree rewriting — so there are exactly the
// five structural frame kinds spec.md §3 names, each closing over the
// (L, H, R, Environment) state needed to resume.
type Frame interface {
	frame() // unexported marker method
}

// LeftFrame records that we descended into L; H and R (and the
// enclosing environment) are what's needed to resume once L reduces.
type LeftFrame struct {
	H, R *V
	Env  *Environment
}

func (*LeftFrame) frame() {}

// HeadFrame records that we descended into H.
type HeadFrame struct {
	L, R *V
	Env  *Environment
}

func (*HeadFrame) frame() {}

// RightFrame records that we descended into R.
type RightFrame struct {
	L, H *V
	Env  *Environment
}

func (*RightFrame) frame() {}

// FunctionFrame records entry into a user FUNCTION's body. H is the
// Function value itself (kept so tail-call flattening — spec.md §4.8 —
// can compare "same function" by identity without re-deriving it).
type FunctionFrame struct {
	L, H, R *V
	Env     *Environment
}

func (*FunctionFrame) frame() {}

// ReturnFrame marks the bottom of one Eval invocation. Popping it ends
// the reduction and yields the current value as the final result.
type ReturnFrame struct {
	Env *Environment
}

func (*ReturnFrame) frame() {}
