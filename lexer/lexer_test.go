// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lexer_test

import (
	"testing"

	"code.hybscloud.com/ternary/lexer"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func kinds(t *testing.T, src string) []lexer.Kind {
	t.Helper()
	toks, err := lexer.Lex(src)
	require.NoError(t, err)
	out := make([]lexer.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestLexArithmeticTriple(t *testing.T) {
	got := kinds(t, "1 + 2")
	want := []lexer.Kind{lexer.NUM, lexer.PUNCTUATION, lexer.NUM, lexer.END}
	require.Empty(t, cmp.Diff(want, got))
}

func TestLexCommentsSpacesNewlinesAreDiscarded(t *testing.T) {
	got := kinds(t, "1 # trailing comment\n + 2")
	want := []lexer.Kind{lexer.NUM, lexer.PUNCTUATION, lexer.NUM, lexer.END}
	require.Empty(t, cmp.Diff(want, got))
}

func TestLexGroupingPunctuation(t *testing.T) {
	got := kinds(t, `( [ { } ] )`)
	want := []lexer.Kind{
		lexer.LPAREN, lexer.LTHUNK, lexer.LFUNTHUNK,
		lexer.RFUNTHUNK, lexer.RTHUNK, lexer.RPAREN, lexer.END,
	}
	require.Empty(t, cmp.Diff(want, got))
}

func TestLexSeparatorIsItsOwnKind(t *testing.T) {
	got := kinds(t, "a | b")
	want := []lexer.Kind{lexer.SYMBOL, lexer.SEPARATOR, lexer.SYMBOL, lexer.END}
	require.Empty(t, cmp.Diff(want, got))
}

func TestLexPunctuationRunsGreedy(t *testing.T) {
	// A run of punctuation characters lexes as one PUNCTUATION token,
	// not one per character (spec.md §6).
	toks, err := lexer.Lex("a != b")
	require.NoError(t, err)
	require.Equal(t, lexer.PUNCTUATION, toks[1].Kind)
	require.Equal(t, "!=", toks[1].Lexeme)
}

func TestLexStringLiteralWithEscapes(t *testing.T) {
	toks, err := lexer.Lex(`"a\"b"`)
	require.NoError(t, err)
	require.Equal(t, lexer.STRING, toks[0].Kind)
	require.Equal(t, `"a\"b"`, toks[0].Lexeme)
}

func TestLexNumberWithUnderscoreSeparators(t *testing.T) {
	toks, err := lexer.Lex("1_000")
	require.NoError(t, err)
	require.Equal(t, lexer.NUM, toks[0].Kind)
	require.Equal(t, "1_000", toks[0].Lexeme)
}

func TestLexBareUnderscoreIsNumNotSymbol(t *testing.T) {
	// A lone "_" matches the NUM rule ((_|[0-9])+), never SYMBOL, since
	// SYMBOL requires at least one letter.
	toks, err := lexer.Lex("_")
	require.NoError(t, err)
	require.Equal(t, lexer.NUM, toks[0].Kind)
}

func TestLexSymbolAllowsLeadingUnderscoreAndDigitsInBody(t *testing.T) {
	toks, err := lexer.Lex("_x1")
	require.NoError(t, err)
	require.Equal(t, lexer.SYMBOL, toks[0].Kind)
	require.Equal(t, "_x1", toks[0].Lexeme)
}

func TestLexSpansTrackByteOffsets(t *testing.T) {
	toks, err := lexer.Lex("ab + cd")
	require.NoError(t, err)
	require.Equal(t, 0, toks[0].Sp.Start)
	require.Equal(t, 2, toks[0].Sp.End)
	require.Equal(t, 5, toks[2].Sp.Start)
}

func TestLexAlwaysTerminatesWithEND(t *testing.T) {
	toks, err := lexer.Lex("")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	require.Equal(t, lexer.END, toks[0].Kind)
}
