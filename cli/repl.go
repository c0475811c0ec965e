/*
 * Wisp
 *
 * Copyright 2026 Wisp Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wisplang/wisp/config"
	"github.com/wisplang/wisp/interpreter"
	"github.com/wisplang/wisp/parser"
	"github.com/wisplang/wisp/stdlib"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Wisp session",
	Long: `Read lines from standard input, evaluate each one against a
shared global scope, and print its result.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	env := interpreter.NewGlobalEnvironment()
	stdlib.Register(env)
	ev := interpreter.New("<repl>", config.Default())

	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Fprint(out, "> ")
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			fmt.Fprint(out, "> ")
			continue
		}

		prog, err := parser.Parse("<repl>", line)
		if err != nil {
			logger.LogError(err.Error())
			fmt.Fprintln(out, err.Error())
			fmt.Fprint(out, "> ")
			continue
		}

		result, err := ev.Run(prog, env)
		if err != nil {
			logger.LogError(err.Error())
			fmt.Fprintln(out, err.Error())
			fmt.Fprint(out, "> ")
			continue
		}

		logger.LogDebug("evaluated: ", line)
		fmt.Fprintln(out, interpreter.Stringify(result, config.Default()))
		fmt.Fprint(out, "> ")
	}

	return scanner.Err()
}
