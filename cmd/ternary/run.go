// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"code.hybscloud.com/ternary"
	"code.hybscloud.com/ternary/parser"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// runCmd implements batch mode: "run [FILE]" (stdin if FILE omitted).
// Each invocation prints the final reduced value and, on a core reducer
// error, prints a diagnostic and still exits 0 (spec.md §6: "in batch,
// continue and still exit 0 unless usage was wrong").
func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [FILE]",
		Short: "evaluate a file (or stdin) and print the final value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyColor()
			var data []byte
			var err error
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(os.Stdin)
			}
			if err != nil {
				return err
			}
			runBatch(string(data))
			return nil
		},
	}
}

func runBatch(src string) {
	body, err := parser.Parse(src)
	if err != nil {
		printDiagnostic(src, err)
		return
	}
	root := ternary.NewRootEnvironment()
	result, err := ternary.Execute(body, root)
	if err != nil {
		printDiagnostic(src, err)
		return
	}
	pterm.Println(ternary.Render(result))
}
