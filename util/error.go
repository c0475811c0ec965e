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
Package util contains utility definitions shared by the lexer, parser and
interpreter: a two-error-kind model (parse vs. runtime) and a small logging
facility.
*/
package util

import (
	"fmt"

	"github.com/wisplang/wisp/lexer"
)

/*
ParseError is a lexical or syntactic problem. It always carries the
position of the offending token.
*/
type ParseError struct {
	Source   string
	Detail   string
	Position lexer.Position
}

/*
NewParseError creates a ParseError at the given position.
*/
func NewParseError(source, detail string, pos lexer.Position) *ParseError {
	return &ParseError{Source: source, Detail: detail, Position: pos}
}

/*
Error renders the standard diagnostic form:
"Error at line L, column C: <message>".
*/
func (e *ParseError) Error() string {
	return fmt.Sprintf("Error at line %d, column %d: %s", e.Position.Line, e.Position.Column, e.Detail)
}

/*
RuntimeError is anything raised during evaluation. It is annotated with a
position at its point of origin and is never re-annotated by an outer
frame: a single annotation point at the origin of the failure, rather than
wrapping it again at each unwound call frame. A RuntimeError with no known
position (PositionKnown == false) renders without a location.
*/
type RuntimeError struct {
	Source        string
	Detail        string
	Position      lexer.Position
	PositionKnown bool
}

/*
NewRuntimeError creates a RuntimeError at the given position.
*/
func NewRuntimeError(source, detail string, pos lexer.Position) *RuntimeError {
	return &RuntimeError{Source: source, Detail: detail, Position: pos, PositionKnown: true}
}

/*
NewRuntimeErrorNoPosition creates a RuntimeError without an attached source
position, for failures that occur outside of any particular AST node.
*/
func NewRuntimeErrorNoPosition(source, detail string) *RuntimeError {
	return &RuntimeError{Source: source, Detail: detail}
}

/*
Error renders the same diagnostic form as ParseError.
*/
func (e *RuntimeError) Error() string {
	if !e.PositionKnown {
		return e.Detail
	}
	return fmt.Sprintf("Error at line %d, column %d: %s", e.Position.Line, e.Position.Column, e.Detail)
}
