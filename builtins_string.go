// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ternary

import (
	"math/big"
	"strings"
)

// bindStringModule registers the STRING and SYMBOL type modules
// (spec.md §4.7): equality, concatenation, and length, following the
// same per-type dispatch-slot pattern bindNumModule uses.
func bindStringModule(root *Environment) {
	strEnv := NewEnvironment(nil)
	strEnv.Bind("+", Builtin(stringConcat, Span{}))
	strEnv.Bind("=", Builtin(stringEq, Span{}))
	strEnv.Bind("len", Builtin(stringLen, Span{}))
	strEnv.Bind("slice", Builtin(stringSlice, Span{}))
	root.Bind(string(TagString), ObjectValue(strEnv, Span{}))

	symEnv := NewEnvironment(nil)
	symEnv.Bind("=", Builtin(stringEq, Span{}))
	root.Bind(string(TagSymbol), ObjectValue(symEnv, Span{}))
}

func stringConcat(l, r *V, _ *Environment) (*V, error) {
	if l.Tag != TagString || r.Tag != TagString {
		return nil, &TypeError{Context: "STRING +", Got: r.Tag}
	}
	return Leaf(TagString, AsString(l)+AsString(r), l.Sp), nil
}

func stringEq(l, r *V, _ *Environment) (*V, error) {
	if (l.Tag != TagString && l.Tag != TagSymbol) || l.Tag != r.Tag {
		return Bool(false, l.Sp), nil
	}
	return Bool(AsString(l) == AsString(r), l.Sp), nil
}

func stringLen(l, _ *V, _ *Environment) (*V, error) {
	return NumInt64(int64(len(AsString(l))), l.Sp), nil
}

// stringSlice returns the half-open substring [lo, hi), reading lo:hi
// from the "lo:hi" cons argument r — the same paired-argument-via-cons
// convention vecSlice and rangeConstructor use (spec.md §4.7's
// "slicing"). Out-of-range bounds clamp rather than error.
func stringSlice(l, r *V, _ *Environment) (*V, error) {
	if !isCons(r) || r.L.Tag != TagNum || r.R.Tag != TagNum {
		return nil, &TypeError{Context: "string slice", Got: r.Tag}
	}
	s := AsString(l)
	n := int64(len(s))
	lo, hi := AsNum(r.L).Int64(), AsNum(r.R).Int64()
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	if lo > hi {
		lo = hi
	}
	return Leaf(TagString, s[lo:hi], l.Sp), nil
}

// Render produces the diagnostic/print textual form of a value (spec.md
// §6 onwards treats this as an external collaborator's concern, but
// "print" is a core built-in so Render lives here rather than in a
// dropped teacher module).
func Render(v *V) string {
	var b strings.Builder
	render(&b, v)
	return b.String()
}

func render(b *strings.Builder, v *V) {
	switch v.Tag {
	case TagUnit:
		b.WriteString("()")
	case TagNum:
		b.WriteString(AsNum(v).String())
	case TagString:
		b.WriteByte('"')
		b.WriteString(AsString(v))
		b.WriteByte('"')
	case TagSymbol:
		b.WriteString(AsString(v))
	case TagPunctuation, TagSeparator:
		b.WriteString(AsString(v))
	case TagTree:
		b.WriteByte('(')
		render(b, v.L)
		b.WriteByte(' ')
		render(b, v.H)
		b.WriteByte(' ')
		render(b, v.R)
		b.WriteByte(')')
	case TagVec:
		b.WriteByte('[')
		for i, elem := range asVec(v).Values() {
			if i > 0 {
				b.WriteString(", ")
			}
			render(b, elem.(*V))
		}
		b.WriteByte(']')
	case TagNumVec:
		b.WriteByte('[')
		for i, elem := range asNumVec(v).Values() {
			if i > 0 {
				b.WriteString(", ")
			}
			render(b, elem.(*V))
		}
		b.WriteByte(']')
	case TagRange:
		rv := v.Payload.(*rangeVal)
		b.WriteString(rv.lo.String())
		b.WriteByte(':')
		b.WriteString(rv.step.String())
		b.WriteByte(':')
		b.WriteString(rv.count.String())
	case TagNumSet:
		b.WriteByte('{')
		first := true
		for _, elem := range asNumSet(v).Values() {
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(elem.(*big.Int).String())
		}
		b.WriteByte('}')
	case TagMatrix:
		b.WriteString(renderMatrix(asMatrix(v)))
	case TagSome:
		b.WriteString("Some(")
		render(b, v.Payload.(*V))
		b.WriteByte(')')
	case TagError:
		b.WriteString("ERROR(")
		b.WriteString(v.Payload.(string))
		b.WriteByte(')')
	default:
		b.WriteString(string(v.Tag))
	}
}
