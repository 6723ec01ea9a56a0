// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"code.hybscloud.com/ternary"
	"code.hybscloud.com/ternary/parser"
	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
)

// repl runs the interactive mode (spec.md §6: "interactive REPL (no
// arguments)"). On a core reducer error it prints a diagnostic and
// keeps running, rebinding into the same root environment so earlier
// definitions survive a later line's failure — grounded on
// npillmayer-gorgo/trepl's readline.Instance loop.
func repl() error {
	applyColor()
	rl, err := readline.New(prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	pterm.Info.Println("ternary REPL — quit with <ctrl>D")
	root := ternary.NewRootEnvironment()
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on <ctrl>D
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		evalLine(root, line)
	}
	pterm.Println("goodbye")
	return nil
}

func evalLine(root *ternary.Environment, line string) {
	body, err := parser.Parse(line)
	if err != nil {
		printDiagnostic(line, err)
		return
	}
	result, err := ternary.Execute(body, root)
	if err != nil {
		printDiagnostic(line, err)
		return
	}
	pterm.Println(ternary.Render(result))
}
