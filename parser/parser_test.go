// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parser_test

import (
	"testing"

	"code.hybscloud.com/ternary"
	"code.hybscloud.com/ternary/parser"
	"github.com/stretchr/testify/require"
)

func TestParseSingleTripleIsLeftHeadRight(t *testing.T) {
	v, err := parser.Parse("1 + 2")
	require.NoError(t, err)
	require.True(t, v.IsTree())
	require.Equal(t, ternary.TagNum, v.L.Tag)
	require.Equal(t, ternary.TagPunctuation, v.H.Tag)
	require.Equal(t, "+", ternary.AsString(v.H))
	require.Equal(t, ternary.TagNum, v.R.Tag)
}

func TestParseIsLeftAssociative(t *testing.T) {
	// "1 + 2 * 3" folds as (1 + 2) * 3 — no precedence beyond left-to-
	// right chaining of triples (spec.md §6).
	v, err := parser.Parse("1 + 2 * 3")
	require.NoError(t, err)
	require.True(t, v.IsTree())
	require.Equal(t, "*", ternary.AsString(v.H))
	require.True(t, v.L.IsTree())
	require.Equal(t, "+", ternary.AsString(v.L.H))
}

func TestParseColonHeadIsRightAssociative(t *testing.T) {
	// "1 : 2 : 3" folds as 1 : (2 : 3), since a head whose textual form
	// starts with ":" binds the rest of the chain into R.
	v, err := parser.Parse("1 : 2 : 3")
	require.NoError(t, err)
	require.True(t, v.IsTree())
	require.Equal(t, ":", ternary.AsString(v.H))
	require.Equal(t, ternary.TagNum, v.L.Tag)
	require.True(t, v.R.IsTree())
	require.Equal(t, ":", ternary.AsString(v.R.H))
}

func TestParseSeparatorIsRightAssociative(t *testing.T) {
	v, err := parser.Parse("a | b | c")
	require.NoError(t, err)
	require.Equal(t, ternary.TagSeparator, v.H.Tag)
	require.True(t, v.R.IsTree())
	require.Equal(t, ternary.TagSeparator, v.R.H.Tag)
}

func TestParseEmptyParensYieldUnit(t *testing.T) {
	v, err := parser.Parse("()")
	require.NoError(t, err)
	require.Equal(t, ternary.TagUnit, v.Tag)
}

func TestParseParenGroupDoesNotWrapInAThunk(t *testing.T) {
	v, err := parser.Parse("(1 + 2)")
	require.NoError(t, err)
	require.Equal(t, ternary.TagPunctuation, v.H.Tag)
}

func TestParseSquareBracketsProduceThunk(t *testing.T) {
	v, err := parser.Parse("[1 + 2]")
	require.NoError(t, err)
	require.Equal(t, ternary.TagThunk, v.Tag)
}

func TestParseCurlyBracesProduceFunThunk(t *testing.T) {
	v, err := parser.Parse("{1 + 2}")
	require.NoError(t, err)
	require.Equal(t, ternary.TagFunThunk, v.Tag)
}

func TestParseNegativeAndUnderscoreNumberLiterals(t *testing.T) {
	v, err := parser.Parse("_5")
	require.NoError(t, err)
	require.Equal(t, ternary.TagNum, v.Tag)
	require.Equal(t, int64(-5), ternary.AsNum(v).Int64())
}

func TestParseStringEscapes(t *testing.T) {
	v, err := parser.Parse(`"a\nb"`)
	require.NoError(t, err)
	require.Equal(t, ternary.TagString, v.Tag)
	require.Equal(t, "a\nb", ternary.AsString(v))
}

func TestParseDanglingTokenIsAnError(t *testing.T) {
	_, err := parser.Parse("1 + 2 3")
	require.Error(t, err)
	var perr *parser.Error
	require.ErrorAs(t, err, &perr)
}

func TestParseUnbalancedParenIsAnError(t *testing.T) {
	_, err := parser.Parse("(1 + 2")
	require.Error(t, err)
}
