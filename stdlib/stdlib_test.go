/*
 * Wisp
 *
 * Copyright 2026 Wisp Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package stdlib

import (
	"testing"

	"github.com/wisplang/wisp/config"
	"github.com/wisplang/wisp/interpreter"
	"github.com/wisplang/wisp/parser"
)

func run(t *testing.T, src string) (interface{}, error) {
	t.Helper()
	prog, err := parser.Parse("test.wisp", src)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	env := interpreter.NewGlobalEnvironment()
	Register(env)
	return interpreter.New("test.wisp", config.Default()).Run(prog, env)
}

func TestLenBuiltin(t *testing.T) {
	v, err := run(t, `len("hello")`)
	if err != nil {
		t.Fatal(err)
	}
	if v != int64(5) {
		t.Errorf("len(\"hello\") = %v, want 5", v)
	}
}

func TestSqrtBuiltin(t *testing.T) {
	v, err := run(t, `sqrt(9)`)
	if err != nil {
		t.Fatal(err)
	}
	if v != float64(3) {
		t.Errorf("sqrt(9) = %v, want 3", v)
	}
}

func TestGetTypeOnScalars(t *testing.T) {
	cases := map[string]string{
		`get_type(1)`:    "int",
		`get_type(1.5)`:  "float",
		`get_type("a")`:  "string",
		`get_type(true)`: "bool",
		`get_type(none)`: "null",
	}
	for src, want := range cases {
		v, err := run(t, src)
		if err != nil {
			t.Fatalf("%s: %v", src, err)
		}
		if v != want {
			t.Errorf("%s = %v, want %v", src, v, want)
		}
	}
}

func TestGetTypeOnHomogeneousList(t *testing.T) {
	v, err := run(t, `get_type([1, 2, 3])`)
	if err != nil {
		t.Fatal(err)
	}
	if v != "list[int]" {
		t.Errorf("get_type([1,2,3]) = %v, want list[int]", v)
	}
}

func TestGetTypeOnHeterogeneousListDedupesUnion(t *testing.T) {
	v, err := run(t, `get_type([1, "a", 2])`)
	if err != nil {
		t.Fatal(err)
	}
	if v != "list[union[int, string]]" {
		t.Errorf("get_type([1,\"a\",2]) = %v, want list[union[int, string]]", v)
	}
}

func TestGetTypeOnFunction(t *testing.T) {
	v, err := run(t, `
function add(a, b) {
    return a + b
}
get_type(add)
`)
	if err != nil {
		t.Fatal(err)
	}
	if v != "callable[args[any, any], any]" {
		t.Errorf("get_type(add) = %v, want callable[args[any, any], any]", v)
	}
}

func TestGetTypeOnBuiltin(t *testing.T) {
	v, err := run(t, `get_type(print)`)
	if err != nil {
		t.Fatal(err)
	}
	if v != "callable[args[], any]" {
		t.Errorf("get_type(print) = %v, want callable[args[], any]", v)
	}
}

func TestTrimStripsSurroundingWhitespace(t *testing.T) {
	v, err := run(t, `trim("  hello  ")`)
	if err != nil {
		t.Fatal(err)
	}
	if v != "hello" {
		t.Errorf(`trim("  hello  ") = %q, want "hello"`, v)
	}
}

func TestAppendReturnsNewList(t *testing.T) {
	v, err := run(t, `
	x = [1, 2]
	y = append(x, 3)
	[x, y]
	`)
	if err != nil {
		t.Fatal(err)
	}
	pair := v.(*interpreter.List)
	orig := pair.Elements[0].(*interpreter.List)
	appended := pair.Elements[1].(*interpreter.List)
	if len(orig.Elements) != 2 {
		t.Errorf("original list mutated: %v", orig.Elements)
	}
	if len(appended.Elements) != 3 {
		t.Errorf("appended list wrong length: %v", appended.Elements)
	}
}

func TestSortBuiltin(t *testing.T) {
	v, err := run(t, `sort([3, 1, 2])`)
	if err != nil {
		t.Fatal(err)
	}
	list := v.(*interpreter.List)
	want := []int64{1, 2, 3}
	for i, el := range list.Elements {
		if el != want[i] {
			t.Fatalf("sort result = %v, want %v", list.Elements, want)
		}
	}
}

func TestRangeTwoArgs(t *testing.T) {
	v, err := run(t, `range(2, 5)`)
	if err != nil {
		t.Fatal(err)
	}
	list := v.(*interpreter.List)
	want := []int64{2, 3, 4}
	for i, el := range list.Elements {
		if el != want[i] {
			t.Fatalf("range(2,5) = %v, want %v", list.Elements, want)
		}
	}
}

func TestKeysAndValuesPreserveInsertionOrder(t *testing.T) {
	v, err := run(t, `keys({"b": 1, "a": 2})`)
	if err != nil {
		t.Fatal(err)
	}
	list := v.(*interpreter.List)
	if list.Elements[0] != "b" || list.Elements[1] != "a" {
		t.Fatalf("keys() = %v, want insertion order [b a]", list.Elements)
	}
}
