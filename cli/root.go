/*
 * Wisp
 *
 * Copyright 2026 Wisp Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package cli implements the `wisp` command-line tool: a cobra command tree
with run, repl, tokens and ast subcommands, grounded on the
cmd/dwscript/cmd layout found elsewhere in the example pack.
*/
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wisplang/wisp/config"
	"github.com/wisplang/wisp/util"
)

var rootCmd = &cobra.Command{
	Use:   "wisp",
	Short: "Wisp language interpreter",
	Long: `wisp is the reference implementation of the Wisp scripting language:
a small, dynamically-typed language with C-like expressions, Python-like
statements, and first-class functions.`,
	Version: config.ProductVersion,
}

var logLevel string

/*
Execute runs the root command. It is the sole entry point cmd/wisp/main.go
calls.
*/
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("wisp version %s\n", config.ProductVersion))
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "error",
		"minimum level of diagnostic to report: debug, info, or error")
}

/*
newLogger builds the util.Logger that run and repl report parse/evaluate
diagnostics through, filtered by the --log-level flag.
*/
func newLogger() (util.Logger, error) {
	return util.NewLogLevelLogger(util.NewStdOutLogger(), logLevel)
}
