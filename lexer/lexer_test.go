/*
 * Wisp
 *
 * Copyright 2026 Wisp Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package lexer

import (
	"testing"
)

func kinds(toks []Token) []Kind {
	var ks []Kind
	for _, t := range toks {
		ks = append(ks, t.Kind)
	}
	return ks
}

func eqKinds(a, b []Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBasicTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Kind
	}{
		{"empty", "", []Kind{EOF}},
		{"integer", "42", []Kind{INTEGER, EOF}},
		{"float", "3.14", []Kind{FLOAT, EOF}},
		{"float needs both sides", "3.", []Kind{INTEGER, DOT, EOF}},
		{"string double", `"hi"`, []Kind{STRING, EOF}},
		{"string single", `'hi'`, []Kind{STRING, EOF}},
		{"ident", "x_1", []Kind{IDENT, EOF}},
		{"keyword function", "function", []Kind{FUNCTION, EOF}},
		{"keyword def alias", "def", []Kind{FUNCTION, EOF}},
		{"two char ops", "== != <= >= **", []Kind{EQ, NEQ, LE, GE, STARSTAR, EOF}},
		{"power assign maximal munch", "**=", []Kind{STARSTAR_ASSIGN, EOF}},
		{"compound assign", "+= -= *= /= %=", []Kind{PLUS_ASSIGN, MINUS_ASSIGN, STAR_ASSIGN, SLASH_ASSIGN, PERCENT_ASSIGN, EOF}},
		{"delimiters", "(){}[],;:.", []Kind{LPAREN, RPAREN, LBRACE, RBRACE, LBRACKET, RBRACKET, COMMA, SEMICOLON, COLON, DOT, EOF}},
		{"line comment", "1 // hi\n2", []Kind{INTEGER, COMMENT, NEWLINE, INTEGER, EOF}},
		{"block comment", "1 /* hi */ 2", []Kind{INTEGER, COMMENT, INTEGER, EOF}},
		{"unary minus is not part of number", "-1", []Kind{MINUS, INTEGER, EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := Lex(tt.input)
			if got := kinds(toks); !eqKinds(got, tt.want) {
				t.Errorf("Lex(%q) kinds = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStringEscapes(t *testing.T) {
	toks := Lex(`"a\nb\tc\\d\'e\"f"`)
	if toks[0].Kind != STRING {
		t.Fatalf("expected STRING, got %v", toks[0].Kind)
	}
	want := "a\nb\tc\\d'e\"f"
	if toks[0].Lexeme != want {
		t.Errorf("Lexeme = %q, want %q", toks[0].Lexeme, want)
	}
}

func TestPositions(t *testing.T) {
	toks := Lex("x = 1\ny = 2")

	want := []Position{
		{1, 1}, // x
		{1, 3}, // =
		{1, 5}, // 1
		{1, 6}, // newline
		{2, 1}, // y
		{2, 3}, // =
		{2, 5}, // 2
	}

	for i, w := range want {
		if toks[i].Position != w {
			t.Errorf("token %d (%v) position = %+v, want %+v", i, toks[i], toks[i].Position, w)
		}
	}
}

func TestUnterminatedString(t *testing.T) {
	toks := Lex(`"unterminated`)
	last := toks[len(toks)-1]
	if last.Kind != ERROR {
		t.Errorf("expected trailing ERROR token, got %v", last.Kind)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	toks := Lex(`/* never closes`)
	last := toks[len(toks)-1]
	if last.Kind != ERROR {
		t.Errorf("expected trailing ERROR token, got %v", last.Kind)
	}
}

func TestStrayCharacter(t *testing.T) {
	toks := Lex("1 @ 2")
	found := false
	for _, tok := range toks {
		if tok.Kind == ERROR {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an ERROR token for stray '@', got %v", kinds(toks))
	}
}

func TestColumnAdvancesPerCodepoint(t *testing.T) {
	// "λ" is two UTF-8 bytes but one code point; after it and one space, the
	// next identifier must start at column 3, not column 4.
	toks := Lex("λ x")
	if toks[0].Position.Column != 1 {
		t.Errorf("first token column = %d, want 1", toks[0].Position.Column)
	}
	if toks[1].Position.Column != 3 {
		t.Errorf("second token column = %d, want 3", toks[1].Position.Column)
	}
}
