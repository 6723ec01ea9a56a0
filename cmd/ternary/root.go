// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"code.hybscloud.com/ternary"
	"code.hybscloud.com/ternary/parser"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	noColor bool
	prompt  string
)

func init() {
	// load/import read and parse a file through the same front end the
	// CLI itself uses, wired once at startup (load.go can't import
	// lexer/parser without creating an import cycle).
	ternary.Source = func(path string) (*ternary.V, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return parser.Parse(string(data))
	}
}

// rootCmd builds the cobra command tree: a bare invocation enters the
// REPL, "run [FILE]" evaluates batch-style (spec.md §6 CLI).
func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ternary",
		Short: "ternary: a ternary-tree expression language",
		RunE: func(cmd *cobra.Command, args []string) error {
			return repl()
		},
	}
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostics")
	root.PersistentFlags().StringVar(&prompt, "prompt", "ternary> ", "REPL prompt text")
	root.AddCommand(runCmd())
	return root
}

func applyColor() {
	if noColor {
		pterm.DisableColor()
	}
}
