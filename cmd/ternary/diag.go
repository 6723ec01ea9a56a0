// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"code.hybscloud.com/ternary"
	"code.hybscloud.com/ternary/lexer"
	"code.hybscloud.com/ternary/parser"
	"github.com/pterm/pterm"
)

// printDiagnostic prints the source line and a caret underline from the
// witness span, plus the error message, to the diagnostic stream
// (spec.md §6: "print a formatted diagnostic (source line + caret
// underline from the witness span, plus the error message)").
func printDiagnostic(src string, err error) {
	sp := spanOf(err)
	lines := strings.Split(src, "\n")
	if sp.Line >= 1 && sp.Line <= len(lines) {
		line := lines[sp.Line-1]
		pterm.Error.Println(line)
		col := sp.Start // a byte offset into src; make it line-relative
		for _, prev := range lines[:sp.Line-1] {
			col -= len(prev) + 1
		}
		if col < 0 {
			col = 0
		}
		if col > len(line) {
			col = len(line)
		}
		pterm.Error.Println(strings.Repeat(" ", col) + "^")
	}
	pterm.Error.Println(err.Error())
}

// spanner is satisfied by every reducer-structural error type
// (errors.go, cactus.go's EmptyError); lexer and parser errors carry
// their span as a plain field instead.
type spanner interface{ Sp() ternary.Span }

func spanOf(err error) ternary.Span {
	switch e := err.(type) {
	case *ternary.Diagnostic:
		return e.Span
	case *lexer.Error:
		return e.Sp
	case *parser.Error:
		return e.Sp
	case spanner:
		return e.Sp()
	}
	return ternary.Span{Line: 1}
}
