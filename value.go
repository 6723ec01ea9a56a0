// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ternary

import "math/big"

// Tag identifies the shape and intended interpretation of a V's payload.
// The set is closed for the core tags below but is open in practice:
// user code and built-in modules (vec, num_vec, matrix, ...) mint new
// tags by naming an OBJECT or a native_object, so Tag is a plain string
// rather than a Go enum — new type modules register themselves under a
// tag the reducer never needed to know about in advance.
type Tag string

// Core tags named by spec.md §3. User-registered type names (vec,
// num_vec, num_set, range, matrix, Some, ...) are additional Tag values
// minted where those modules are registered; see registry.go.
const (
	TagUnit         Tag = "UNIT"
	TagNum          Tag = "NUM"
	TagString       Tag = "STRING"
	TagSymbol       Tag = "SYMBOL"
	TagPunctuation  Tag = "PUNCTUATION"
	TagSeparator    Tag = "SEPARATOR"
	TagThunk        Tag = "THUNK"
	TagFunThunk     Tag = "FUNTHUNK"
	TagFunction     Tag = "FUNCTION"
	TagBuiltin      Tag = "BUILTIN"
	TagSpecial      Tag = "SPECIAL"
	TagContinuation Tag = "CONTINUATION"
	TagObject       Tag = "OBJECT"
	TagNativeObject Tag = "NATIVE_OBJECT"
	TagError        Tag = "ERROR"
	TagTree         Tag = "TREE"
)

// Span records the byte offsets and source line a node came from. Every
// tree node carries one; synthesized nodes inherit a child's span so
// diagnostics stay localizable across many reductions (spec.md §9).
type Span struct {
	Start, End int
	Line       int
}

// Erased is a type-erased payload, recovered via type assertion at
// evaluation boundaries. Mirrors the teacher's Erased = any convention
// (frame.go) rather than a sealed interface hierarchy: V's payload field
// plays the same role kont's Erased plays in its frame chain.
type Erased = any

// V is the tagged variant at the center of the data model (spec.md §3).
// It is deliberately a single struct rather than an interface hierarchy:
// Leaf and Tree are the same Go type distinguished by Tag, matching the
// ternary IR's invariant that every composite node is exactly (L, H, R)
// and every leaf carries exactly one payload.
//
// V is immutable once produced except through an OBJECT's Environment,
// which is the only mutable value in the language (spec.md §3 Lifecycle).
type V struct {
	Tag Tag
	Sp  Span

	// Leaf payload. Populated for every tag except TagTree.
	Payload Erased

	// Tree children. Populated only when Tag == TagTree. Note the
	// reducer dispatches on H.Tag, not on this outer Tag, when deciding
	// how to reduce a tree node (spec.md §4.3).
	L, H, R *V
}

// IsTree reports whether v is a composite (L, H, R) node.
func (v *V) IsTree() bool { return v != nil && v.Tag == TagTree }

// IsLeaf reports whether v is an atomic node.
func (v *V) IsLeaf() bool { return v != nil && v.Tag != TagTree }

// HeadTag returns the tag that drives reduction: H.Tag for a tree,
// the node's own tag for a leaf. The reducer's own starting point
// (nextIns in reducer.go) looks only at whether a node is a tree.
func (v *V) HeadTag() Tag {
	if v.IsTree() {
		return v.H.Tag
	}
	return v.Tag
}

// Leaf constructs an atomic node.
func Leaf(tag Tag, payload Erased, sp Span) *V {
	return &V{Tag: tag, Payload: payload, Sp: sp}
}

// Tree constructs a composite node. Its own Tag is always TagTree; H's
// tag is what decides how the reducer treats it.
func Tree(l, h, r *V, sp Span) *V {
	return &V{Tag: TagTree, L: l, H: h, R: r, Sp: sp}
}

// Unit is the canonical empty value. spec.md §4.3: "UNIT: result is H
// itself" — any freshly minted UNIT leaf is interchangeable with any
// other, so a single shared instance is safe to reuse.
var Unit = &V{Tag: TagUnit}

// Num constructs an arbitrary-precision integer leaf (spec.md §3: NUM is
// arbitrary precision). math/big is stdlib; no pack dependency supplies
// big-integer arithmetic.
func Num(n *big.Int, sp Span) *V {
	return &V{Tag: TagNum, Payload: n, Sp: sp}
}

// NumInt64 is a convenience constructor for small integers (used
// pervasively by built-ins that produce 0/1 booleans, lengths, etc.).
func NumInt64(n int64, sp Span) *V {
	return Num(big.NewInt(n), sp)
}

// AsNum extracts the *big.Int payload of a NUM leaf. Panics if v is not
// NUM — callers are built-ins that have already dispatched on tag.
func AsNum(v *V) *big.Int { return v.Payload.(*big.Int) }

// AsString extracts the string payload of a STRING or SYMBOL leaf.
func AsString(v *V) string { return v.Payload.(string) }

// Truthy follows the original source's convention: NUM 0 is false,
// everything else (including UNIT) is true, matching hb.py's if_/not
// which only ever test a NUM payload for equality to 0. The named
// SYMBOL constant "false" (builtins_functor.go's bindFunctorModules) is
// the one non-NUM exception, so it still reads as the falsy branch when
// a condition is written directly as `false` rather than as a NUM 0
// comparison.
func Truthy(v *V) bool {
	if v.Tag == TagSymbol && AsString(v) == "false" {
		return false
	}
	if v.Tag != TagNum {
		return true
	}
	return AsNum(v).Sign() != 0
}

// Bool converts a Go bool into the language's NUM-encoded boolean.
func Bool(b bool, sp Span) *V {
	if b {
		return NumInt64(1, sp)
	}
	return NumInt64(0, sp)
}
