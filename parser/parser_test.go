/*
 * Wisp
 *
 * Copyright 2026 Wisp Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"testing"
)

func mustParse(t *testing.T, src string) *Program {
	t.Helper()
	prog, err := Parse("test.wisp", src)
	if err != nil {
		t.Fatalf("unexpected parse error for %q: %v", src, err)
	}
	return prog
}

func TestParsePrecedence(t *testing.T) {
	prog := mustParse(t, "1 + 2 * 3")
	if len(prog.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Statements))
	}
	bin, ok := prog.Statements[0].(*Binary)
	if !ok {
		t.Fatalf("expected *Binary, got %T", prog.Statements[0])
	}
	if bin.Op != OpAdd {
		t.Fatalf("expected top-level op OpAdd, got %v", bin.Op)
	}
	rhs, ok := bin.Right.(*Binary)
	if !ok || rhs.Op != OpMul {
		t.Fatalf("expected right side to be a multiplication, got %#v", bin.Right)
	}
}

func TestParsePowerRightAssociative(t *testing.T) {
	prog := mustParse(t, "2 ** 3 ** 2")
	bin, ok := prog.Statements[0].(*Binary)
	if !ok || bin.Op != OpPow {
		t.Fatalf("expected top-level **, got %#v", prog.Statements[0])
	}
	left, ok := bin.Left.(*NumberLit)
	if !ok || left.Int != 2 {
		t.Fatalf("expected left operand to be literal 2, got %#v", bin.Left)
	}
	right, ok := bin.Right.(*Binary)
	if !ok || right.Op != OpPow {
		t.Fatalf("expected right-associative nesting, got %#v", bin.Right)
	}
}

func TestParseTernary(t *testing.T) {
	prog := mustParse(t, `1 if x else 2`)
	tern, ok := prog.Statements[0].(*Ternary)
	if !ok {
		t.Fatalf("expected *Ternary, got %T", prog.Statements[0])
	}
	if _, ok := tern.Cond.(*Ident); !ok {
		t.Fatalf("expected condition to be an identifier, got %#v", tern.Cond)
	}
}

func TestParseNotIn(t *testing.T) {
	prog := mustParse(t, `x not in y`)
	bin, ok := prog.Statements[0].(*Binary)
	if !ok || bin.Op != OpNotIn {
		t.Fatalf("expected OpNotIn, got %#v", prog.Statements[0])
	}
}

func TestParseUnaryNot(t *testing.T) {
	prog := mustParse(t, `not true`)
	un, ok := prog.Statements[0].(*Unary)
	if !ok || un.Op != UnaryNot {
		t.Fatalf("expected unary not, got %#v", prog.Statements[0])
	}
}

func TestParsePostfixChain(t *testing.T) {
	prog := mustParse(t, `a.b(1, name=2)[0]`)
	idx, ok := prog.Statements[0].(*Index)
	if !ok {
		t.Fatalf("expected *Index at top, got %T", prog.Statements[0])
	}
	call, ok := idx.Collection.(*Call)
	if !ok {
		t.Fatalf("expected *Call under index, got %T", idx.Collection)
	}
	if len(call.Args) != 2 || call.Args[1].Name != "name" {
		t.Fatalf("unexpected args: %#v", call.Args)
	}
	attr, ok := call.Callee.(*Attribute)
	if !ok || attr.Name != "b" {
		t.Fatalf("expected *Attribute 'b', got %#v", call.Callee)
	}
}

func TestParseAssignment(t *testing.T) {
	prog := mustParse(t, `x += 1`)
	assign, ok := prog.Statements[0].(*Assignment)
	if !ok || assign.Op != AssignAdd {
		t.Fatalf("expected AssignAdd, got %#v", prog.Statements[0])
	}
	if _, ok := assign.Target.(*Ident); !ok {
		t.Fatalf("expected target to be an identifier, got %#v", assign.Target)
	}
}

func TestParseAssignmentRejectsNonAssignableTarget(t *testing.T) {
	_, err := Parse("test.wisp", `1 + 1 = 2`)
	if err == nil {
		t.Fatal("expected an error assigning to a non-assignable expression")
	}
}

func TestParseIfElse(t *testing.T) {
	prog := mustParse(t, `
	if x {
		y = 1
	} else {
		y = 2
	}
	`)
	ifNode, ok := prog.Statements[0].(*If)
	if !ok {
		t.Fatalf("expected *If, got %T", prog.Statements[0])
	}
	if len(ifNode.Then) != 1 || len(ifNode.Else) != 1 {
		t.Fatalf("expected one statement per branch, got then=%d else=%d", len(ifNode.Then), len(ifNode.Else))
	}
}

func TestParseWhileSingleStatementBody(t *testing.T) {
	prog := mustParse(t, `while x break`)
	w, ok := prog.Statements[0].(*While)
	if !ok {
		t.Fatalf("expected *While, got %T", prog.Statements[0])
	}
	if len(w.Body) != 1 {
		t.Fatalf("expected single-statement body, got %d statements", len(w.Body))
	}
	if _, ok := w.Body[0].(*Break); !ok {
		t.Fatalf("expected break statement, got %#v", w.Body[0])
	}
}

func TestParseForLoop(t *testing.T) {
	prog := mustParse(t, `for item in list { print(item) }`)
	f, ok := prog.Statements[0].(*For)
	if !ok {
		t.Fatalf("expected *For, got %T", prog.Statements[0])
	}
	if f.Variable != "item" {
		t.Fatalf("expected loop variable 'item', got %q", f.Variable)
	}
}

func TestParseBreakOutsideLoopIsError(t *testing.T) {
	_, err := Parse("test.wisp", `break`)
	if err == nil {
		t.Fatal("expected an error for break outside a loop")
	}
}

func TestParseContinueOutsideLoopIsError(t *testing.T) {
	_, err := Parse("test.wisp", `continue`)
	if err == nil {
		t.Fatal("expected an error for continue outside a loop")
	}
}

func TestParseBreakNestedInsideFunctionInsideLoopIsStillInLoop(t *testing.T) {
	// break inside a function body defined within a loop is not inside that
	// loop's iteration — but this grammar only tracks lexical nesting depth,
	// a purely syntactic check.
	prog := mustParse(t, `while x { function f() { break } }`)
	w := prog.Statements[0].(*While)
	fn, ok := w.Body[0].(*FunctionDef)
	if !ok {
		t.Fatalf("expected function definition, got %#v", w.Body[0])
	}
	if _, ok := fn.Body[0].(*Break); !ok {
		t.Fatalf("expected break, got %#v", fn.Body[0])
	}
}

func TestParseFunctionDefWithDefaultsAndTypes(t *testing.T) {
	prog := mustParse(t, `
	function add(a: int, b: int = 1) -> int {
		return a + b
	}
	`)
	fn, ok := prog.Statements[0].(*FunctionDef)
	if !ok {
		t.Fatalf("expected *FunctionDef, got %T", prog.Statements[0])
	}
	if fn.Name != "add" {
		t.Fatalf("expected name 'add', got %q", fn.Name)
	}
	if len(fn.Parameters) != 2 {
		t.Fatalf("expected 2 parameters, got %d", len(fn.Parameters))
	}
	if !fn.Parameters[0].HasTypeAnnot || fn.Parameters[0].TypeAnnot != "int" {
		t.Fatalf("expected first parameter annotated 'int', got %#v", fn.Parameters[0])
	}
	if fn.Parameters[1].Default == nil {
		t.Fatalf("expected second parameter to have a default")
	}
	if !fn.HasReturnType || fn.ReturnType != "int" {
		t.Fatalf("expected return type 'int', got %#v", fn)
	}
}

func TestParseDefAliasForFunction(t *testing.T) {
	prog := mustParse(t, `def f() { return 1 }`)
	if _, ok := prog.Statements[0].(*FunctionDef); !ok {
		t.Fatalf("expected *FunctionDef via 'def' alias, got %T", prog.Statements[0])
	}
}

func TestParseDictLiteralRequiresStringKeys(t *testing.T) {
	_, err := Parse("test.wisp", `{1: 2}`)
	if err == nil {
		t.Fatal("expected an error for a non-string dictionary key")
	}
}

func TestParseDictAndListLiterals(t *testing.T) {
	prog := mustParse(t, `{"a": 1, "b": 2}`)
	dict, ok := prog.Statements[0].(*DictLit)
	if !ok || len(dict.Pairs) != 2 {
		t.Fatalf("expected dict with 2 pairs, got %#v", prog.Statements[0])
	}

	prog = mustParse(t, `[1, 2, 3]`)
	list, ok := prog.Statements[0].(*ListLit)
	if !ok || len(list.Elements) != 3 {
		t.Fatalf("expected list with 3 elements, got %#v", prog.Statements[0])
	}
}

func TestParsePositionFidelity(t *testing.T) {
	prog := mustParse(t, "\n  x + 1")
	bin := prog.Statements[0].(*Binary)
	if bin.Pos().Line != 2 || bin.Pos().Column != 3 {
		t.Fatalf("unexpected position for binary op: %+v", bin.Pos())
	}
}

func TestParseUnterminatedBlockIsError(t *testing.T) {
	_, err := Parse("test.wisp", `if x { y = 1`)
	if err == nil {
		t.Fatal("expected an error for an unterminated block")
	}
}

func TestParseReturnWithoutValue(t *testing.T) {
	prog := mustParse(t, `function f() { return }`)
	fn := prog.Statements[0].(*FunctionDef)
	ret := fn.Body[0].(*Return)
	if ret.Value != nil {
		t.Fatalf("expected bare return to have a nil value, got %#v", ret.Value)
	}
}

func TestParseOptionalSemicolonsAndNewlines(t *testing.T) {
	prog := mustParse(t, "x = 1;\ny = 2\n")
	if len(prog.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Statements))
	}
}

func TestParseRelationalBindsTighterThanEquality(t *testing.T) {
	prog := mustParse(t, `1 < 2 == true`)
	bin, ok := prog.Statements[0].(*Binary)
	if !ok || bin.Op != OpEq {
		t.Fatalf("expected top-level ==, got %#v", prog.Statements[0])
	}
	if _, ok := bin.Left.(*Binary); !ok {
		t.Fatalf("expected left side to be the nested <, got %#v", bin.Left)
	}
}
