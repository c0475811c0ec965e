/*
 * Wisp
 *
 * Copyright 2026 Wisp Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package interpreter

import (
	"fmt"
	"math"
	"strings"

	"github.com/wisplang/wisp/parser"
)

func typeErrorFor(op string, left, right interface{}) error {
	return fmt.Errorf("unsupported operand types for %s: %s and %s", op, TypeName(left), TypeName(right))
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

/*
arithmetic implements +, -, *, /, %, **. Two integers
stay integers except for true division, which always yields a float; any
float operand promotes the whole operation to float. `+` also concatenates
strings and lists; `*` also repeats a string or list by an integer count.
*/
func arithmetic(op parser.BinOp, left, right interface{}) (interface{}, error) {
	if op == parser.OpAdd {
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
		}
		if ll, ok := left.(*List); ok {
			if rl, ok := right.(*List); ok {
				combined := make([]interface{}, 0, len(ll.Elements)+len(rl.Elements))
				combined = append(combined, ll.Elements...)
				combined = append(combined, rl.Elements...)
				return NewList(combined), nil
			}
		}
	}

	if op == parser.OpMul {
		if v, ok, err := repeat(left, right); ok {
			return v, err
		}
		if v, ok, err := repeat(right, left); ok {
			return v, err
		}
	}

	li, lIsInt := left.(int64)
	ri, rIsInt := right.(int64)
	if lIsInt && rIsInt && op != parser.OpDiv {
		return intArithmetic(op, li, ri)
	}

	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	if !lok || !rok {
		return nil, typeErrorFor(opSymbol(op), left, right)
	}

	return floatArithmetic(op, lf, rf)
}

func repeat(seq, count interface{}) (interface{}, bool, error) {
	n, ok := count.(int64)
	if !ok {
		return nil, false, nil
	}
	if n < 0 {
		n = 0
	}
	switch s := seq.(type) {
	case string:
		return strings.Repeat(s, int(n)), true, nil
	case *List:
		out := make([]interface{}, 0, len(s.Elements)*int(n))
		for i := int64(0); i < n; i++ {
			out = append(out, s.Elements...)
		}
		return NewList(out), true, nil
	}
	return nil, false, nil
}

func intArithmetic(op parser.BinOp, l, r int64) (interface{}, error) {
	switch op {
	case parser.OpAdd:
		return l + r, nil
	case parser.OpSub:
		return l - r, nil
	case parser.OpMul:
		return l * r, nil
	case parser.OpMod:
		if r == 0 {
			return nil, fmt.Errorf("modulo by zero")
		}
		m := l % r
		if m != 0 && (m < 0) != (r < 0) {
			m += r
		}
		return m, nil
	case parser.OpPow:
		if r < 0 {
			return math.Pow(float64(l), float64(r)), nil
		}
		var result int64 = 1
		for i := int64(0); i < r; i++ {
			result *= l
		}
		return result, nil
	}
	return nil, fmt.Errorf("unsupported integer operator")
}

func floatArithmetic(op parser.BinOp, l, r float64) (interface{}, error) {
	switch op {
	case parser.OpAdd:
		return l + r, nil
	case parser.OpSub:
		return l - r, nil
	case parser.OpMul:
		return l * r, nil
	case parser.OpDiv:
		if r == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return l / r, nil
	case parser.OpMod:
		if r == 0 {
			return nil, fmt.Errorf("modulo by zero")
		}
		m := math.Mod(l, r)
		if m != 0 && (m < 0) != (r < 0) {
			m += r
		}
		return m, nil
	case parser.OpPow:
		return math.Pow(l, r), nil
	}
	return nil, fmt.Errorf("unsupported float operator")
}

func opSymbol(op parser.BinOp) string {
	switch op {
	case parser.OpAdd:
		return "+"
	case parser.OpSub:
		return "-"
	case parser.OpMul:
		return "*"
	case parser.OpDiv:
		return "/"
	case parser.OpMod:
		return "%"
	case parser.OpPow:
		return "**"
	}
	return "?"
}

/*
compare implements <, >, <=, >= for numbers (mixed int/float allowed) and
lexicographic string comparison.
*/
func compare(op parser.BinOp, left, right interface{}) (bool, error) {
	if ls, ok := left.(string); ok {
		if rs, ok := right.(string); ok {
			switch op {
			case parser.OpLt:
				return ls < rs, nil
			case parser.OpGt:
				return ls > rs, nil
			case parser.OpLe:
				return ls <= rs, nil
			case parser.OpGe:
				return ls >= rs, nil
			}
		}
	}

	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	if !lok || !rok {
		return false, typeErrorFor(compareSymbol(op), left, right)
	}

	switch op {
	case parser.OpLt:
		return lf < rf, nil
	case parser.OpGt:
		return lf > rf, nil
	case parser.OpLe:
		return lf <= rf, nil
	case parser.OpGe:
		return lf >= rf, nil
	}
	return false, fmt.Errorf("unsupported comparison operator")
}

/*
LessThan exposes the language's own `<` ordering to callers outside this
package (the stdlib sort builtin), so a sorted list raises exactly the
same type error a `<` expression would.
*/
func LessThan(left, right interface{}) (bool, error) {
	return compare(parser.OpLt, left, right)
}

func compareSymbol(op parser.BinOp) string {
	switch op {
	case parser.OpLt:
		return "<"
	case parser.OpGt:
		return ">"
	case parser.OpLe:
		return "<="
	case parser.OpGe:
		return ">="
	}
	return "?"
}

/*
valuesEqual implements `==`: numbers compare across
int/float by value, collections compare structurally, everything else by
Go equality (functions and builtins compare by identity, since Go closures
over *Function/*Builtin are not comparable with ==... they are pointers,
so identity is exactly pointer equality).
*/
func valuesEqual(left, right interface{}) bool {
	if lf, lok := asFloat(left); lok {
		if rf, rok := asFloat(right); rok {
			return lf == rf
		}
	}

	switch l := left.(type) {
	case string:
		r, ok := right.(string)
		return ok && l == r
	case bool:
		r, ok := right.(bool)
		return ok && l == r
	case NoneType:
		_, ok := right.(NoneType)
		return ok
	case *List:
		r, ok := right.(*List)
		if !ok || len(l.Elements) != len(r.Elements) {
			return false
		}
		for i := range l.Elements {
			if !valuesEqual(l.Elements[i], r.Elements[i]) {
				return false
			}
		}
		return true
	case *Dict:
		r, ok := right.(*Dict)
		if !ok || l.Len() != r.Len() {
			return false
		}
		for _, k := range l.Keys() {
			lv, _ := l.Get(k)
			rv, ok := r.Get(k)
			if !ok || !valuesEqual(lv, rv) {
				return false
			}
		}
		return true
	}

	return left == right
}

/*
membership implements `in`/`not in`: substring test for
strings, element test for lists, key test for dicts.
*/
func membership(item, container interface{}) (bool, error) {
	switch c := container.(type) {
	case string:
		s, ok := item.(string)
		if !ok {
			return false, fmt.Errorf("'in <str>' requires a string left operand, got %s", TypeName(item))
		}
		return strings.Contains(c, s), nil
	case *List:
		for _, el := range c.Elements {
			if valuesEqual(item, el) {
				return true, nil
			}
		}
		return false, nil
	case *Dict:
		key, ok := item.(string)
		if !ok {
			return false, nil
		}
		_, found := c.Get(key)
		return found, nil
	}
	return false, fmt.Errorf("value of type %s is not a container", TypeName(container))
}

/*
getIndex implements `collection[index]`: negative list and
string indices count from the end, dict indexing looks up a string key.
*/
func getIndex(collection, index interface{}) (interface{}, error) {
	switch c := collection.(type) {
	case *List:
		i, ok := index.(int64)
		if !ok {
			return nil, fmt.Errorf("list indices must be integers, got %s", TypeName(index))
		}
		idx, err := normalizeIndex(i, len(c.Elements))
		if err != nil {
			return nil, err
		}
		return c.Elements[idx], nil

	case string:
		i, ok := index.(int64)
		if !ok {
			return nil, fmt.Errorf("string indices must be integers, got %s", TypeName(index))
		}
		runes := []rune(c)
		idx, err := normalizeIndex(i, len(runes))
		if err != nil {
			return nil, err
		}
		return string(runes[idx]), nil

	case *Dict:
		key, ok := index.(string)
		if !ok {
			return nil, fmt.Errorf("dict keys must be strings, got %s", TypeName(index))
		}
		v, ok := c.Get(key)
		if !ok {
			return nil, fmt.Errorf("key %q not found", key)
		}
		return v, nil
	}

	return nil, fmt.Errorf("value of type %s is not subscriptable", TypeName(collection))
}

/*
setIndex implements `collection[index] = value`. Strings are immutable and
rejected.
*/
func setIndex(collection, index, value interface{}) error {
	switch c := collection.(type) {
	case *List:
		i, ok := index.(int64)
		if !ok {
			return fmt.Errorf("list indices must be integers, got %s", TypeName(index))
		}
		idx, err := normalizeIndex(i, len(c.Elements))
		if err != nil {
			return err
		}
		c.Elements[idx] = value
		return nil

	case *Dict:
		key, ok := index.(string)
		if !ok {
			return fmt.Errorf("dict keys must be strings, got %s", TypeName(index))
		}
		c.Set(key, value)
		return nil

	case string:
		return fmt.Errorf("'str' object does not support item assignment")
	}

	return fmt.Errorf("value of type %s does not support item assignment", TypeName(collection))
}

func normalizeIndex(i int64, length int) (int, error) {
	idx := int(i)
	if idx < 0 {
		idx += length
	}
	if idx < 0 || idx >= length {
		return 0, fmt.Errorf("index %d out of range", i)
	}
	return idx, nil
}
