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
Package parser builds a typed abstract syntax tree from a token stream using
precedence climbing for expressions and recursive descent for statements.

Every node carries the source position of its leading token. Each syntactic
form gets its own Go type implementing Node, a tagged-variant AST rather
than a single homogeneous node keyed by name.
*/
package parser

import "github.com/wisplang/wisp/lexer"

/*
Node is implemented by every AST node. Pos returns the position of the
token that began the node.
*/
type Node interface {
	Pos() lexer.Position
}

/*
base is embedded by every concrete node to provide Pos() without repeating
the field and method on each type.
*/
type base struct {
	Position lexer.Position
}

func (b base) Pos() lexer.Position { return b.Position }

// -------------------------------------------------------------------------
// Program

/*
Program is the root node: an ordered sequence of statements.
*/
type Program struct {
	base
	Statements []Node
}

// -------------------------------------------------------------------------
// Literals

/*
NoneLit is the literal `none`.
*/
type NoneLit struct{ base }

/*
NumberKind distinguishes integer- from float-valued NumberLit nodes.
*/
type NumberKind int

const (
	IntKind NumberKind = iota
	FloatKind
)

/*
NumberLit is an integer or float literal.
*/
type NumberLit struct {
	base
	Kind  NumberKind
	Int   int64
	Float float64
}

/*
StringLit is a string literal with escapes already interpreted by the lexer.
*/
type StringLit struct {
	base
	Value string
}

/*
BoolLit is `true` or `false`.
*/
type BoolLit struct {
	base
	Value bool
}

/*
ListLit is a `[e, e, ...]` literal.
*/
type ListLit struct {
	base
	Elements []Node
}

/*
DictPair is one `key: value` entry of a DictLit. Key is always a *StringLit:
dictionary-literal keys are restricted to string literals.
*/
type DictPair struct {
	Key   *StringLit
	Value Node
}

/*
DictLit is a `{ "k": v, ... }` literal.
*/
type DictLit struct {
	base
	Pairs []DictPair
}

// -------------------------------------------------------------------------
// Names and postfix forms

/*
Ident is a bare identifier reference.
*/
type Ident struct {
	base
	Name string
}

/*
Index is `collection[index]`.
*/
type Index struct {
	base
	Collection Node
	Index      Node
}

/*
Attribute is `object.attribute`.
*/
type Attribute struct {
	base
	Object Node
	Name   string
}

/*
Argument is one call argument: positional when Name == "".
*/
type Argument struct {
	Name  string
	Value Node
}

/*
Call is `callee(args...)`.
*/
type Call struct {
	base
	Callee Node
	Args   []Argument
}

// -------------------------------------------------------------------------
// Operators

/*
UnaryOp identifies a prefix unary operator.
*/
type UnaryOp int

const (
	UnaryPos UnaryOp = iota
	UnaryNeg
	UnaryNot
)

/*
Unary is a prefix `+x`, `-x` or `not x`.
*/
type Unary struct {
	base
	Op      UnaryOp
	Operand Node
}

/*
BinOp identifies a binary operator — arithmetic, comparison, logical or
membership.
*/
type BinOp int

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
	OpPow
	OpMod
	OpEq
	OpNeq
	OpLt
	OpGt
	OpLe
	OpGe
	OpAnd
	OpOr
	OpIn
	OpNotIn
)

/*
Binary is a binary-operator expression.
*/
type Binary struct {
	base
	Op    BinOp
	Left  Node
	Right Node
}

/*
Ternary is `<true-expr> if <cond> else <false-expr>`.
*/
type Ternary struct {
	base
	Cond  Node
	True  Node
	False Node
}

// -------------------------------------------------------------------------
// Assignment

/*
AssignOp identifies the assignment form used.
*/
type AssignOp int

const (
	Assign AssignOp = iota
	AssignAdd
	AssignSub
	AssignMul
	AssignDiv
	AssignMod
	AssignPow
)

/*
Assignment is `target op value`. Target is always an Ident, Index or
Attribute — enforced at parse time.
*/
type Assignment struct {
	base
	Target Node
	Op     AssignOp
	Value  Node
}

// -------------------------------------------------------------------------
// Control flow

/*
If is `if cond { then } [else { else }]`.
*/
type If struct {
	base
	Cond Node
	Then []Node
	Else []Node // nil when no else clause
}

/*
While is `while cond { body }`.
*/
type While struct {
	base
	Cond Node
	Body []Node
}

/*
For is `for name in iterable { body }`.
*/
type For struct {
	base
	Variable string
	Iterable Node
	Body     []Node
}

/*
Break is the `break` statement.
*/
type Break struct{ base }

/*
Continue is the `continue` statement.
*/
type Continue struct{ base }

// -------------------------------------------------------------------------
// Functions

/*
Parameter is one function parameter, with an optional default-value
expression and an optional (ignored) type annotation accepted as trivia
for forward compatibility with a future static-typing pass.
*/
type Parameter struct {
	Name         string
	Default      Node // nil if no default
	TypeAnnot    string
	HasTypeAnnot bool
}

/*
FunctionDef is `function name(params) { body }`.
*/
type FunctionDef struct {
	base
	Name       string
	Parameters []Parameter
	Body       []Node
	ReturnType string // only set when HasReturnType
	HasReturnType bool
}

/*
Return is `return [value]`.
*/
type Return struct {
	base
	Value Node // nil if bare `return`
}
