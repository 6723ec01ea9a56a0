// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ternary implements a small expression language whose only
// structural shape is the ternary tree Tree(L, H, R): a left operand, a
// head carrying the operation or dispatch key, and a right operand.
// There is no separate statement form and no fixed operator table —
// every reduction is dispatch on the head's textual form, resolved
// first against the left operand's runtime type, then against the
// ambient environment.
//
// # Core operations
//
// [Eval] drives a single reduction loop over an explicit instruction
// pointer and an explicit [CactusStack] of continuation frames rather
// than Go call-stack recursion, so deeply nested or self-recursive
// trees reduce in bounded Go stack. [Execute] wraps a parsed tree with
// the two delimiters every top-level reduction gets for free: an
// outermost root delimiter and a default error handler beneath it.
//
// # Dispatch
//
// dispatch.go and the registry.go/builtins_*.go modules implement the
// three-step precedence a head resolves through: a type-and-operand
// specific binding, then a type-general binding, then an ambient
// fallback.
//
// # Delimited control
//
// Reset and Shift (control.go) implement tagged, multi-shot delimited
// continuations over the cactus stack: shift captures the frames
// between its call site and the nearest matching reset as a
// Continuation value, which can be invoked more than once — each
// invocation replays an independent copy of the captured segment.
//
// # Functions and baking
//
// A function literal's free reads of its own parameters are rewritten
// once, at construction time, into explicit lookup trees (see bake.go);
// this keeps the reduction loop itself free of any notion of variable
// scoping beyond ordinary environment lookup.
package ternary
