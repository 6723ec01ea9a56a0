// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command ternary is the CLI front end: a cobra root plus "run" (batch)
// and the bare invocation (interactive REPL), grounded on
// npillmayer-gorgo/terex/terexlang/trepl's flag+readline+pterm setup.
package main

import "os"

// Exit status: 0 on success, 1 on a usage error (spec.md §6).
func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
