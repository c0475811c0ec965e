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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wisplang/wisp/config"
	"github.com/wisplang/wisp/interpreter"
	"github.com/wisplang/wisp/parser"
	"github.com/wisplang/wisp/stdlib"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Wisp source file or inline expression",
	Long: `Execute a Wisp program read from a file or from the -e flag.

Examples:
  wisp run script.wisp
  wisp run -e "print(1 + 2)"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline source instead of reading a file")
}

func sourceFromArgs(args []string) (name, text string, err error) {
	if evalExpr != "" {
		return "<eval>", evalExpr, nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return args[0], string(content), nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e for inline source")
}

func runScript(_ *cobra.Command, args []string) error {
	name, text, err := sourceFromArgs(args)
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}

	logger.LogDebug("parsing ", name)
	prog, err := parser.Parse(name, text)
	if err != nil {
		logger.LogError(err.Error())
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	env := interpreter.NewGlobalEnvironment()
	stdlib.Register(env)

	ev := interpreter.New(name, config.Default())
	logger.LogDebug("evaluating ", name)
	if _, err := ev.Run(prog, env); err != nil {
		logger.LogError(err.Error())
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	logger.LogInfo(name, " ran to completion")

	return nil
}
