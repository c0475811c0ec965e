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
Package interpreter is the tree-walking evaluator: it turns a parsed
Program into a value or a *util.RuntimeError.

Runtime values are represented with plain Go types wherever one exists
(int64, float64, bool, string) and with dedicated types for the rest
(None, *List, *Dict, *Function, *Builtin) rather than a single boxed
Value struct — a tagged union that maps directly onto a Go type switch,
which is how the evaluator in eval.go dispatches.
*/
package interpreter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/krotik/common/stringutil"

	"github.com/wisplang/wisp/config"
	"github.com/wisplang/wisp/lexer"
	"github.com/wisplang/wisp/parser"
	"github.com/wisplang/wisp/scope"
)

/*
NoneType is the type of the single None value.
*/
type NoneType struct{}

/*
None is the language's absence-of-a-value constant.
*/
var None = NoneType{}

/*
List is a mutable, ordered sequence value. Lists are reference values: two
variables holding the same *List alias the same backing slice.
*/
type List struct {
	Elements []interface{}
}

/*
NewList wraps a slice of values as a List.
*/
func NewList(elements []interface{}) *List {
	return &List{Elements: elements}
}

/*
Dict is an insertion-ordered string-keyed mapping value.
*/
type Dict struct {
	keys   []string
	values map[string]interface{}
}

/*
NewDict creates an empty dictionary.
*/
func NewDict() *Dict {
	return &Dict{values: make(map[string]interface{})}
}

/*
Get returns the value bound to key and whether it is present.
*/
func (d *Dict) Get(key string) (interface{}, bool) {
	v, ok := d.values[key]
	return v, ok
}

/*
Set binds key to value, appending key to the insertion order the first
time it is used.
*/
func (d *Dict) Set(key string, value interface{}) {
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

/*
Keys returns the dictionary's keys in insertion order.
*/
func (d *Dict) Keys() []string {
	return d.keys
}

/*
Len returns the number of entries.
*/
func (d *Dict) Len() int {
	return len(d.keys)
}

/*
Function is a user-defined function value: its definition plus the
environment it closed over at definition time.
*/
type Function struct {
	Def     *parser.FunctionDef
	Closure *scope.Environment
}

/*
BuiltinFn implements one intrinsic. pos is the call site, used to attach a
position to any *util.RuntimeError the builtin raises.
*/
type BuiltinFn func(ev *Evaluator, args []interface{}, pos lexer.Position) (interface{}, error)

/*
Builtin is a named intrinsic function registered on the global environment
.
*/
type Builtin struct {
	Name string
	Fn   BuiltinFn
}

// TypeName returns the name get_type and diagnostics use for a runtime value.
func TypeName(v interface{}) string {
	switch v.(type) {
	case NoneType:
		return "null"
	case int64:
		return "int"
	case float64:
		return "float"
	case bool:
		return "bool"
	case string:
		return "string"
	case *List:
		return "list"
	case *Dict:
		return "dict"
	case *Function, *Builtin:
		return "callable"
	}
	return fmt.Sprintf("%T", v)
}

/*
Truthy implements the language's truthiness rules: none, false, zero
numbers, and empty strings/lists/dicts are false; everything else is true.
*/
func Truthy(v interface{}) bool {
	switch val := v.(type) {
	case NoneType:
		return false
	case bool:
		return val
	case int64:
		return val != 0
	case float64:
		return val != 0
	case string:
		return val != ""
	case *List:
		return len(val.Elements) > 0
	case *Dict:
		return val.Len() > 0
	}
	return true
}

/*
Stringify renders a value the way `str()` and `print` do.
*/
func Stringify(v interface{}, cfg *config.Config) string {
	switch val := v.(type) {
	case NoneType:
		return "none"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return formatFloat(val, cfg)
	case string:
		return val
	case *List:
		parts := make([]string, len(val.Elements))
		for i, el := range val.Elements {
			parts[i] = reprOf(el, cfg)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *Dict:
		parts := make([]string, 0, val.Len())
		for _, k := range val.Keys() {
			v, _ := val.Get(k)
			parts = append(parts, strconv.Quote(k)+": "+reprOf(v, cfg))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case *Function:
		return "<function " + val.Def.Name + ">"
	case *Builtin:
		return "<builtin " + val.Name + ">"
	}
	// Unreached by any value this evaluator ever produces; kept as a safety
	// net the way scope/helper.go falls back to ConvertToString for values
	// outside its own closed type set.
	return stringutil.ConvertToString(v)
}

/*
reprOf is Stringify for values nested inside a list or dict, where strings
are quoted to distinguish them from bare identifiers in the rendering.
*/
func reprOf(v interface{}, cfg *config.Config) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	return Stringify(v, cfg)
}

func formatFloat(f float64, cfg *config.Config) string {
	format := "%g"
	if cfg != nil && cfg.FloatFormat != "" {
		format = cfg.FloatFormat
	}
	return fmt.Sprintf(format, f)
}
