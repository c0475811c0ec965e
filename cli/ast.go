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

	"github.com/wisplang/wisp/parser"
)

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Parse a Wisp file or expression and print its syntax tree",
	Long: `Parse a Wisp program and print the resulting abstract syntax tree
as an indented S-expression, for debugging the parser.

Examples:
  wisp ast script.wisp
  wisp ast -e "1 + 2 * 3"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAST,
}

func init() {
	rootCmd.AddCommand(astCmd)
	astCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline source instead of reading a file")
}

func runAST(_ *cobra.Command, args []string) error {
	name, text, err := sourceFromArgs(args)
	if err != nil {
		return err
	}

	prog, err := parser.Parse(name, text)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	fmt.Print(parser.Print(prog))
	return nil
}
