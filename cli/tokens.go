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

	"github.com/spf13/cobra"

	"github.com/wisplang/wisp/lexer"
)

var (
	showPos    bool
	onlyErrors bool
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Tokenize a Wisp file or expression and print its tokens",
	Long: `Tokenize a Wisp program and print the resulting tokens, one per
line, for debugging the lexer.

Examples:
  wisp tokens script.wisp
  wisp tokens -e "1 + 2"
  wisp tokens --show-pos --only-errors script.wisp`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline source instead of reading a file")
	tokensCmd.Flags().BoolVar(&showPos, "show-pos", false, "show each token's line:column")
	tokensCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only ERROR tokens")
}

func runTokens(_ *cobra.Command, args []string) error {
	_, text, err := sourceFromArgs(args)
	if err != nil {
		return err
	}

	tokens := lexer.Lex(text)
	errCount := 0

	for _, tok := range tokens {
		if tok.Kind == lexer.ERROR {
			errCount++
		}
		if onlyErrors && tok.Kind != lexer.ERROR {
			continue
		}
		if showPos {
			fmt.Printf("%-10s %-20q @%d:%d\n", tok.Kind, tok.Lexeme, tok.Position.Line, tok.Position.Column)
		} else {
			fmt.Printf("%-10s %q\n", tok.Kind, tok.Lexeme)
		}
	}

	if errCount > 0 {
		return fmt.Errorf("found %d error token(s)", errCount)
	}
	return nil
}
