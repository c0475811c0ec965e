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
Package stdlib registers the intrinsic functions every Wisp program starts
with. It is a separate package from interpreter so the evaluator's core
stays usable on its own, with the builtin surface wired in as a distinct,
optional layer.
*/
package stdlib

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/wisplang/wisp/interpreter"
	"github.com/wisplang/wisp/lexer"
	"github.com/wisplang/wisp/scope"
)

/*
Register binds every intrinsic onto env as a *interpreter.Builtin.
*/
func Register(env *scope.Environment) {
	for _, b := range builtins {
		env.Define(b.Name, b)
	}
}

var builtins = []*interpreter.Builtin{
	{Name: "print", Fn: biPrint},
	{Name: "sqrt", Fn: biSqrt},
	{Name: "get_type", Fn: biGetType},
	{Name: "len", Fn: biLen},
	{Name: "str", Fn: biStr},
	{Name: "int", Fn: biInt},
	{Name: "float", Fn: biFloat},
	{Name: "bool", Fn: biBool},
	{Name: "abs", Fn: biAbs},
	{Name: "min", Fn: biMin},
	{Name: "max", Fn: biMax},
	{Name: "round", Fn: biRound},
	{Name: "upper", Fn: biUpper},
	{Name: "lower", Fn: biLower},
	{Name: "trim", Fn: biTrim},
	{Name: "keys", Fn: biKeys},
	{Name: "values", Fn: biValues},
	{Name: "append", Fn: biAppend},
	{Name: "range", Fn: biRange},
	{Name: "sort", Fn: biSort},
}

func argError(ev *interpreter.Evaluator, pos lexer.Position, format string, args ...interface{}) error {
	return ev.Errorf(pos, format, args...)
}

func checkArity(ev *interpreter.Evaluator, name string, args []interface{}, want int, pos lexer.Position) error {
	if len(args) != want {
		return argError(ev, pos, "%s() takes %d argument(s) but %d were given", name, want, len(args))
	}
	return nil
}

/*
print writes the string form of each argument, space-separated, followed
by a newline, and always returns none.
*/
func biPrint(ev *interpreter.Evaluator, args []interface{}, pos lexer.Position) (interface{}, error) {
	parts := make([]interface{}, len(args))
	for i, a := range args {
		parts[i] = interpreter.Stringify(a, nil)
	}
	fmt.Println(parts...)
	return interpreter.None, nil
}

func biSqrt(ev *interpreter.Evaluator, args []interface{}, pos lexer.Position) (interface{}, error) {
	if err := checkArity(ev, "sqrt", args, 1, pos); err != nil {
		return nil, err
	}
	f, err := toFloat(args[0])
	if err != nil {
		return nil, argError(ev, pos, "sqrt(): %s", err.Error())
	}
	if f < 0 {
		return nil, argError(ev, pos, "sqrt() of a negative number")
	}
	return math.Sqrt(f), nil
}

func biGetType(ev *interpreter.Evaluator, args []interface{}, pos lexer.Position) (interface{}, error) {
	if err := checkArity(ev, "get_type", args, 1, pos); err != nil {
		return nil, err
	}
	return interpreter.TypeInfo(args[0]), nil
}

func biLen(ev *interpreter.Evaluator, args []interface{}, pos lexer.Position) (interface{}, error) {
	if err := checkArity(ev, "len", args, 1, pos); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case string:
		return int64(len([]rune(v))), nil
	case *interpreter.List:
		return int64(len(v.Elements)), nil
	case *interpreter.Dict:
		return int64(v.Len()), nil
	}
	return nil, argError(ev, pos, "len() of unsized type %s", interpreter.TypeName(args[0]))
}

func biStr(ev *interpreter.Evaluator, args []interface{}, pos lexer.Position) (interface{}, error) {
	if err := checkArity(ev, "str", args, 1, pos); err != nil {
		return nil, err
	}
	return interpreter.Stringify(args[0], nil), nil
}

func biInt(ev *interpreter.Evaluator, args []interface{}, pos lexer.Position) (interface{}, error) {
	if err := checkArity(ev, "int", args, 1, pos); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case int64:
		return v, nil
	case float64:
		return int64(v), nil
	case bool:
		if v {
			return int64(1), nil
		}
		return int64(0), nil
	case string:
		var n int64
		if _, err := fmt.Sscanf(v, "%d", &n); err != nil {
			return nil, argError(ev, pos, "invalid literal for int(): %q", v)
		}
		return n, nil
	}
	return nil, argError(ev, pos, "int() argument must be a number, string or bool, not %s", interpreter.TypeName(args[0]))
}

func biFloat(ev *interpreter.Evaluator, args []interface{}, pos lexer.Position) (interface{}, error) {
	if err := checkArity(ev, "float", args, 1, pos); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	case string:
		var f float64
		if _, err := fmt.Sscanf(v, "%g", &f); err != nil {
			return nil, argError(ev, pos, "invalid literal for float(): %q", v)
		}
		return f, nil
	}
	return nil, argError(ev, pos, "float() argument must be a number or string, not %s", interpreter.TypeName(args[0]))
}

func biBool(ev *interpreter.Evaluator, args []interface{}, pos lexer.Position) (interface{}, error) {
	if err := checkArity(ev, "bool", args, 1, pos); err != nil {
		return nil, err
	}
	return interpreter.Truthy(args[0]), nil
}

func biAbs(ev *interpreter.Evaluator, args []interface{}, pos lexer.Position) (interface{}, error) {
	if err := checkArity(ev, "abs", args, 1, pos); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case int64:
		if v < 0 {
			return -v, nil
		}
		return v, nil
	case float64:
		return math.Abs(v), nil
	}
	return nil, argError(ev, pos, "abs() argument must be a number, not %s", interpreter.TypeName(args[0]))
}

func biMin(ev *interpreter.Evaluator, args []interface{}, pos lexer.Position) (interface{}, error) {
	return minMax(ev, args, pos, "min", false)
}

func biMax(ev *interpreter.Evaluator, args []interface{}, pos lexer.Position) (interface{}, error) {
	return minMax(ev, args, pos, "max", true)
}

func minMax(ev *interpreter.Evaluator, args []interface{}, pos lexer.Position, name string, wantGreater bool) (interface{}, error) {
	values := args
	if len(args) == 1 {
		if list, ok := args[0].(*interpreter.List); ok {
			values = list.Elements
		}
	}
	if len(values) == 0 {
		return nil, argError(ev, pos, "%s() of an empty sequence", name)
	}

	best := values[0]
	for _, v := range values[1:] {
		bf, err1 := toFloat(best)
		vf, err2 := toFloat(v)
		if err1 != nil || err2 != nil {
			return nil, argError(ev, pos, "%s() requires numeric arguments", name)
		}
		if (wantGreater && vf > bf) || (!wantGreater && vf < bf) {
			best = v
		}
	}
	return best, nil
}

func biRound(ev *interpreter.Evaluator, args []interface{}, pos lexer.Position) (interface{}, error) {
	if len(args) != 1 && len(args) != 2 {
		return nil, argError(ev, pos, "round() takes 1 or 2 argument(s) but %d were given", len(args))
	}
	f, err := toFloat(args[0])
	if err != nil {
		return nil, argError(ev, pos, "round(): %s", err.Error())
	}

	ndigits := int64(0)
	if len(args) == 2 {
		n, ok := args[1].(int64)
		if !ok {
			return nil, argError(ev, pos, "round() ndigits must be an int")
		}
		ndigits = n
	}

	scale := math.Pow(10, float64(ndigits))
	rounded := math.Round(f*scale) / scale

	if len(args) == 1 {
		if _, isInt := args[0].(int64); isInt {
			return int64(rounded), nil
		}
	}
	return rounded, nil
}

func biUpper(ev *interpreter.Evaluator, args []interface{}, pos lexer.Position) (interface{}, error) {
	s, err := requireString(ev, "upper", args, pos)
	if err != nil {
		return nil, err
	}
	return strings.ToUpper(s), nil
}

func biLower(ev *interpreter.Evaluator, args []interface{}, pos lexer.Position) (interface{}, error) {
	s, err := requireString(ev, "lower", args, pos)
	if err != nil {
		return nil, err
	}
	return strings.ToLower(s), nil
}

func biTrim(ev *interpreter.Evaluator, args []interface{}, pos lexer.Position) (interface{}, error) {
	s, err := requireString(ev, "trim", args, pos)
	if err != nil {
		return nil, err
	}
	return strings.TrimSpace(s), nil
}

func requireString(ev *interpreter.Evaluator, name string, args []interface{}, pos lexer.Position) (string, error) {
	if err := checkArity(ev, name, args, 1, pos); err != nil {
		return "", err
	}
	s, ok := args[0].(string)
	if !ok {
		return "", argError(ev, pos, "%s() argument must be a string, not %s", name, interpreter.TypeName(args[0]))
	}
	return s, nil
}

func biKeys(ev *interpreter.Evaluator, args []interface{}, pos lexer.Position) (interface{}, error) {
	if err := checkArity(ev, "keys", args, 1, pos); err != nil {
		return nil, err
	}
	d, ok := args[0].(*interpreter.Dict)
	if !ok {
		return nil, argError(ev, pos, "keys() argument must be a dict, not %s", interpreter.TypeName(args[0]))
	}
	out := make([]interface{}, len(d.Keys()))
	for i, k := range d.Keys() {
		out[i] = k
	}
	return interpreter.NewList(out), nil
}

func biValues(ev *interpreter.Evaluator, args []interface{}, pos lexer.Position) (interface{}, error) {
	if err := checkArity(ev, "values", args, 1, pos); err != nil {
		return nil, err
	}
	d, ok := args[0].(*interpreter.Dict)
	if !ok {
		return nil, argError(ev, pos, "values() argument must be a dict, not %s", interpreter.TypeName(args[0]))
	}
	out := make([]interface{}, 0, d.Len())
	for _, k := range d.Keys() {
		v, _ := d.Get(k)
		out = append(out, v)
	}
	return interpreter.NewList(out), nil
}

/*
append returns a new list with value appended, leaving the original list
untouched — chosen over in-place mutation so `append(x, y)` reads the same
whether x came from a literal or a shared reference.
*/
func biAppend(ev *interpreter.Evaluator, args []interface{}, pos lexer.Position) (interface{}, error) {
	if err := checkArity(ev, "append", args, 2, pos); err != nil {
		return nil, err
	}
	list, ok := args[0].(*interpreter.List)
	if !ok {
		return nil, argError(ev, pos, "append() first argument must be a list, not %s", interpreter.TypeName(args[0]))
	}
	out := make([]interface{}, len(list.Elements)+1)
	copy(out, list.Elements)
	out[len(list.Elements)] = args[1]
	return interpreter.NewList(out), nil
}

func biRange(ev *interpreter.Evaluator, args []interface{}, pos lexer.Position) (interface{}, error) {
	var start, stop int64
	switch len(args) {
	case 1:
		n, ok := args[0].(int64)
		if !ok {
			return nil, argError(ev, pos, "range() arguments must be integers")
		}
		start, stop = 0, n
	case 2:
		a, ok1 := args[0].(int64)
		b, ok2 := args[1].(int64)
		if !ok1 || !ok2 {
			return nil, argError(ev, pos, "range() arguments must be integers")
		}
		start, stop = a, b
	default:
		return nil, argError(ev, pos, "range() takes 1 or 2 argument(s) but %d were given", len(args))
	}

	if stop < start {
		stop = start
	}
	out := make([]interface{}, 0, stop-start)
	for i := start; i < stop; i++ {
		out = append(out, i)
	}
	return interpreter.NewList(out), nil
}

/*
sort returns a new, ascending-sorted copy of a list, ordered by the
language's own comparison semantics (interpreter.LessThan) so that
`sort([3, 1, "x"])` raises the same type error `1 < "x"` would.
*/
func biSort(ev *interpreter.Evaluator, args []interface{}, pos lexer.Position) (interface{}, error) {
	if err := checkArity(ev, "sort", args, 1, pos); err != nil {
		return nil, err
	}
	list, ok := args[0].(*interpreter.List)
	if !ok {
		return nil, argError(ev, pos, "sort() argument must be a list, not %s", interpreter.TypeName(args[0]))
	}

	out := make([]interface{}, len(list.Elements))
	copy(out, list.Elements)

	var sortErr error
	sort.SliceStable(out, func(i, j int) bool {
		if sortErr != nil {
			return false
		}
		less, err := interpreter.LessThan(out[i], out[j])
		if err != nil {
			sortErr = err
			return false
		}
		return less
	})
	if sortErr != nil {
		return nil, argError(ev, pos, "sort(): %s", sortErr.Error())
	}

	return interpreter.NewList(out), nil
}

func toFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	}
	return 0, fmt.Errorf("expected a number, got %s", interpreter.TypeName(v))
}
