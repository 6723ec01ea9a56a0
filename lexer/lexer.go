// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lexer

import (
	"fmt"

	"code.hybscloud.com/ternary"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Error reports a lexical failure at a span (spec.md §7 kind 1).
type Error struct {
	Msg string
	Sp  ternary.Span
}

func (e *Error) Error() string {
	return fmt.Sprintf("lex error at line %d: %s", e.Sp.Line, e.Msg)
}

var shared *lexmachine.Lexer

func dfa() (*lexmachine.Lexer, error) {
	if shared != nil {
		return shared, nil
	}
	lx := lexmachine.NewLexer()
	add := func(pattern string, kind Kind) {
		lx.Add([]byte(pattern), makeAction(kind))
	}
	add(`#[^\n]*`, COMMENT)
	add(`\"(\\.|[^"])*\"`, STRING)
	add(`_*([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`, SYMBOL)
	add(`(_|[0-9])+`, NUM)
	add(`\|`, SEPARATOR)
	add(`\(`, LPAREN)
	add(`\)`, RPAREN)
	add(`\[`, LTHUNK)
	add(`\]`, RTHUNK)
	add(`\{`, LFUNTHUNK)
	add(`\}`, RFUNTHUNK)
	add(`\.`, PUNCTUATION)
	add("[-$@&!%*+,?=<>/^`~;:]+", PUNCTUATION)
	add(`( |\t|\r)+`, SPACE)
	add(`\n`, NEWLINE)
	if err := lx.Compile(); err != nil {
		return nil, err
	}
	shared = lx
	return shared, nil
}

func makeAction(kind Kind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(kind), string(m.Bytes), m), nil
	}
}

// Lex scans src and returns the surviving tokens — COMMENT, SPACE, and
// NEWLINE are discarded before the parser ever sees them (spec.md §6),
// with a final END sentinel appended.
func Lex(src string) ([]Token, error) {
	lx, err := dfa()
	if err != nil {
		return nil, err
	}
	scanner, err := lx.Scanner([]byte(src))
	if err != nil {
		return nil, err
	}

	var out []Token
	line := 1
	for {
		tok, err, eof := scanner.Next()
		if eof {
			break
		}
		if err != nil {
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				scanner.TC = ui.FailTC
				continue
			}
			return nil, &Error{Msg: err.Error(), Sp: ternary.Span{Line: line}}
		}
		t := tok.(*lexmachine.Token)
		kind := Kind(t.Type)
		sp := ternary.Span{Start: t.TC, End: t.TC + len(t.Lexeme), Line: line}
		switch kind {
		case NEWLINE:
			line++
			continue
		case COMMENT, SPACE:
			continue
		}
		out = append(out, Token{Kind: kind, Lexeme: string(t.Lexeme), Sp: sp})
	}
	out = append(out, Token{Kind: END, Lexeme: "", Sp: ternary.Span{Line: line}})
	return out, nil
}
