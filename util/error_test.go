/*
 * Wisp
 *
 * Copyright 2026 Wisp Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package util

import (
	"testing"

	"github.com/wisplang/wisp/lexer"
)

func TestParseErrorFormat(t *testing.T) {
	err := NewParseError("foo.wisp", "expected ), got EOF", lexer.Position{Line: 2, Column: 5})
	want := "Error at line 2, column 5: expected ), got EOF"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestRuntimeErrorFormat(t *testing.T) {
	err := NewRuntimeError("foo.wisp", "division by zero", lexer.Position{Line: 1, Column: 3})
	want := "Error at line 1, column 3: division by zero"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestRuntimeErrorNoPosition(t *testing.T) {
	err := NewRuntimeErrorNoPosition("foo.wisp", "internal failure")
	if got := err.Error(); got != "internal failure" {
		t.Errorf("Error() = %q, want %q", got, "internal failure")
	}
}
