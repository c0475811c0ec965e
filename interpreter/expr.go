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

	"github.com/krotik/common/errorutil"

	"github.com/wisplang/wisp/parser"
	"github.com/wisplang/wisp/scope"
)

func notIterable(v interface{}) error {
	return fmt.Errorf("value of type %s is not iterable", TypeName(v))
}

/*
evalExpr evaluates an expression node to a value. Unlike evalStatement it
never returns a control-flow signal: return/break/continue only occur in
statement position, and a function Call consumes any Return signal raised
by its own body before it ever surfaces here.
*/
func (ev *Evaluator) evalExpr(node parser.Node, env *scope.Environment) (interface{}, error) {
	switch n := node.(type) {
	case *parser.NoneLit:
		return None, nil

	case *parser.NumberLit:
		if n.Kind == parser.IntKind {
			return n.Int, nil
		}
		return n.Float, nil

	case *parser.StringLit:
		return n.Value, nil

	case *parser.BoolLit:
		return n.Value, nil

	case *parser.ListLit:
		elems := make([]interface{}, len(n.Elements))
		for i, e := range n.Elements {
			v, err := ev.evalExpr(e, env)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return NewList(elems), nil

	case *parser.DictLit:
		dict := NewDict()
		for _, pair := range n.Pairs {
			v, err := ev.evalExpr(pair.Value, env)
			if err != nil {
				return nil, err
			}
			dict.Set(pair.Key.Value, v)
		}
		return dict, nil

	case *parser.Ident:
		v, ok := env.Lookup(n.Name)
		if !ok {
			return nil, ev.runtimeError(n.Pos(), "undefined name '%s'", n.Name)
		}
		return v, nil

	case *parser.Unary:
		return ev.evalUnary(n, env)

	case *parser.Binary:
		return ev.evalBinary(n, env)

	case *parser.Ternary:
		cond, err := ev.evalExpr(n.Cond, env)
		if err != nil {
			return nil, err
		}
		if Truthy(cond) {
			return ev.evalExpr(n.True, env)
		}
		return ev.evalExpr(n.False, env)

	case *parser.Index:
		return ev.evalIndex(n, env)

	case *parser.Attribute:
		return ev.evalAttribute(n, env)

	case *parser.Call:
		return ev.evalCall(n, env)
	}

	return nil, ev.runtimeError(node.Pos(), "cannot evaluate %T as an expression", node)
}

func (ev *Evaluator) evalUnary(n *parser.Unary, env *scope.Environment) (interface{}, error) {
	operand, err := ev.evalExpr(n.Operand, env)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case parser.UnaryNot:
		return !Truthy(operand), nil
	case parser.UnaryNeg:
		switch v := operand.(type) {
		case int64:
			return -v, nil
		case float64:
			return -v, nil
		}
	case parser.UnaryPos:
		switch operand.(type) {
		case int64, float64:
			return operand, nil
		}
	}

	return nil, ev.runtimeError(n.Pos(), "unsupported operand type for unary operator: %s", TypeName(operand))
}

/*
evalBinary implements the arithmetic, comparison, logical and membership
operators. 'and'/'or' short-circuit; every other operator evaluates both
operands first.
*/
func (ev *Evaluator) evalBinary(n *parser.Binary, env *scope.Environment) (interface{}, error) {
	if n.Op == parser.OpAnd || n.Op == parser.OpOr {
		left, err := ev.evalExpr(n.Left, env)
		if err != nil {
			return nil, err
		}
		if n.Op == parser.OpAnd && !Truthy(left) {
			return left, nil
		}
		if n.Op == parser.OpOr && Truthy(left) {
			return left, nil
		}
		return ev.evalExpr(n.Right, env)
	}

	left, err := ev.evalExpr(n.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := ev.evalExpr(n.Right, env)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case parser.OpAdd, parser.OpSub, parser.OpMul, parser.OpDiv, parser.OpMod, parser.OpPow:
		v, err := arithmetic(n.Op, left, right)
		if err != nil {
			return nil, ev.runtimeError(n.Pos(), "%s", err.Error())
		}
		return v, nil

	case parser.OpEq:
		return valuesEqual(left, right), nil
	case parser.OpNeq:
		return !valuesEqual(left, right), nil

	case parser.OpLt, parser.OpGt, parser.OpLe, parser.OpGe:
		v, err := compare(n.Op, left, right)
		if err != nil {
			return nil, ev.runtimeError(n.Pos(), "%s", err.Error())
		}
		return v, nil

	case parser.OpIn, parser.OpNotIn:
		found, err := membership(left, right)
		if err != nil {
			return nil, ev.runtimeError(n.Pos(), "%s", err.Error())
		}
		if n.Op == parser.OpNotIn {
			return !found, nil
		}
		return found, nil
	}

	errorutil.AssertTrue(false, fmt.Sprintf("unhandled binary operator %v", n.Op))
	return nil, nil
}

/*
evalAssignment implements both plain and compound assignment. `=` always
defines in env itself, shadowing any outer binding of the same name rather
than mutating it — callFunction is the only place that allocates a fresh
environment, so env here is always either the global scope or the current
call's frame, never a throwaway block scope. Compound forms (`+=` and
friends) instead mutate the nearest enclosing binding, since they read that
binding's current value first; evalExpr's Lookup already fails with
"undefined name" if no such binding exists anywhere on the chain.
*/
func (ev *Evaluator) evalAssignment(n *parser.Assignment, env *scope.Environment) (interface{}, error) {
	value, err := ev.evalExpr(n.Value, env)
	if err != nil {
		return nil, err
	}

	if n.Op != parser.Assign {
		current, err := ev.evalExpr(n.Target, env)
		if err != nil {
			return nil, err
		}
		op := compoundToBinary[n.Op]
		value, err = arithmetic(op, current, value)
		if err != nil {
			return nil, ev.runtimeError(n.Pos(), "%s", err.Error())
		}
	}

	switch target := n.Target.(type) {
	case *parser.Ident:
		if n.Op == parser.Assign {
			env.Define(target.Name, value)
		} else {
			env.Assign(target.Name, value)
		}
		return value, nil

	case *parser.Index:
		collection, err := ev.evalExpr(target.Collection, env)
		if err != nil {
			return nil, err
		}
		index, err := ev.evalExpr(target.Index, env)
		if err != nil {
			return nil, err
		}
		if err := setIndex(collection, index, value); err != nil {
			return nil, ev.runtimeError(n.Pos(), "%s", err.Error())
		}
		return value, nil
	}

	return nil, ev.runtimeError(n.Pos(), "invalid assignment target")
}

var compoundToBinary = map[parser.AssignOp]parser.BinOp{
	parser.AssignAdd: parser.OpAdd,
	parser.AssignSub: parser.OpSub,
	parser.AssignMul: parser.OpMul,
	parser.AssignDiv: parser.OpDiv,
	parser.AssignMod: parser.OpMod,
	parser.AssignPow: parser.OpPow,
}

func (ev *Evaluator) evalIndex(n *parser.Index, env *scope.Environment) (interface{}, error) {
	collection, err := ev.evalExpr(n.Collection, env)
	if err != nil {
		return nil, err
	}
	index, err := ev.evalExpr(n.Index, env)
	if err != nil {
		return nil, err
	}
	v, err := getIndex(collection, index)
	if err != nil {
		return nil, ev.runtimeError(n.Pos(), "%s", err.Error())
	}
	return v, nil
}

/*
evalAttribute looks up a built-in method exposed by a host intrinsic. None
of the language's own values (List, Dict, Function, Builtin, scalars) carry
user-settable attributes — `d["name"]` is how a dict entry is read; `.name`
is reserved for methods a host application attaches to its own intrinsic
values, and the core itself defines none, so every lookup here fails.
*/
func (ev *Evaluator) evalAttribute(n *parser.Attribute, env *scope.Environment) (interface{}, error) {
	object, err := ev.evalExpr(n.Object, env)
	if err != nil {
		return nil, err
	}
	return nil, ev.runtimeError(n.Pos(), "value of type %s has no attribute '%s'", TypeName(object), n.Name)
}
