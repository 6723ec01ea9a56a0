// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lexer tokenizes ternary source text per spec.md §6's lexer
// output contract, grounded on npillmayer-gorgo's lexmachine adapter
// (terexlang/scan.go, lr/scanner/lexmachine.go).
package lexer

import "code.hybscloud.com/ternary"

// Kind identifies a token's lexical category (spec.md §6).
type Kind int

const (
	NUM Kind = iota
	SYMBOL
	STRING
	PUNCTUATION
	SEPARATOR
	LPAREN
	RPAREN
	LTHUNK
	RTHUNK
	LFUNTHUNK
	RFUNTHUNK
	COMMENT
	SPACE
	NEWLINE
	END
)

func (k Kind) String() string {
	switch k {
	case NUM:
		return "NUM"
	case SYMBOL:
		return "SYMBOL"
	case STRING:
		return "STRING"
	case PUNCTUATION:
		return "PUNCTUATION"
	case SEPARATOR:
		return "SEPARATOR"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case LTHUNK:
		return "LTHUNK"
	case RTHUNK:
		return "RTHUNK"
	case LFUNTHUNK:
		return "LFUNTHUNK"
	case RFUNTHUNK:
		return "RFUNTHUNK"
	case COMMENT:
		return "COMMENT"
	case SPACE:
		return "SPACE"
	case NEWLINE:
		return "NEWLINE"
	case END:
		return "END"
	}
	return "UNKNOWN"
}

// Token is one surviving lexeme, carrying the byte-offset span and line
// number spec.md §6 requires for diagnostics.
type Token struct {
	Kind   Kind
	Lexeme string
	Sp     ternary.Span
}
