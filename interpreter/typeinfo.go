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
	"strings"

	"github.com/wisplang/wisp/parser"
)

/*
TypeInfo renders the type of a value for the `get_type` builtin. Scalars
report their bare type name; collections report the union of their
elements' types: duplicate member types are deduped, nested unions are
flattened rather than nested, and a union of one distinct member
collapses back to that member's name. Callables report their parameter
and return types, falling back to "any" wherever no annotation was given.
*/
func TypeInfo(v interface{}) string {
	switch val := v.(type) {
	case *List:
		if len(val.Elements) == 0 {
			return "list"
		}
		return "list[" + unionOf(val.Elements) + "]"
	case *Dict:
		if val.Len() == 0 {
			return "dict"
		}
		values := make([]interface{}, 0, val.Len())
		for _, k := range val.Keys() {
			v, _ := val.Get(k)
			values = append(values, v)
		}
		return "dict[string, " + unionOf(values) + "]"
	case *Function:
		return callableType(val.Def.Parameters, val.Def.HasReturnType, val.Def.ReturnType)
	case *Builtin:
		return callableType(nil, false, "")
	}
	return TypeName(v)
}

/*
callableType renders the `callable[args[...], R]` form. A parameter with no
type annotation, or a function with no declared return type, types as "any"
— the core never enforces annotations, so "unannotated" and "untyped" mean
the same thing here.
*/
func callableType(params []parser.Parameter, hasReturn bool, returnType string) string {
	argTypes := make([]string, len(params))
	for i, p := range params {
		if p.HasTypeAnnot {
			argTypes[i] = p.TypeAnnot
		} else {
			argTypes[i] = "any"
		}
	}

	ret := "any"
	if hasReturn {
		ret = returnType
	}

	return "callable[args[" + strings.Join(argTypes, ", ") + "], " + ret + "]"
}

/*
unionOf builds the deduped, flattened union of the element types found in
values, preserving first-seen order. A nested union (e.g. from a list of
lists) is flattened into this one rather than nested as union[union[...]].
*/
func unionOf(values []interface{}) string {
	seen := make(map[string]bool)
	var members []string

	var add func(name string)
	add = func(name string) {
		if rest, ok := strings.CutPrefix(name, "union["); ok {
			for _, part := range strings.Split(strings.TrimSuffix(rest, "]"), ", ") {
				add(part)
			}
			return
		}
		if !seen[name] {
			seen[name] = true
			members = append(members, name)
		}
	}

	for _, v := range values {
		add(TypeInfo(v))
	}

	if len(members) == 1 {
		return members[0]
	}
	return "union[" + strings.Join(members, ", ") + "]"
}
