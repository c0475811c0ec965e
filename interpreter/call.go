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
	"github.com/wisplang/wisp/lexer"
	"github.com/wisplang/wisp/parser"
	"github.com/wisplang/wisp/scope"
)

/*
evalCall evaluates a function or builtin invocation. Named
arguments may fill any parameter regardless of position; a parameter left
unfilled by both falls back to its default expression, evaluated fresh in
the callee's closure for every call.
*/
func (ev *Evaluator) evalCall(n *parser.Call, env *scope.Environment) (interface{}, error) {
	callee, err := ev.evalExpr(n.Callee, env)
	if err != nil {
		return nil, err
	}

	args := make([]argValue, len(n.Args))
	for i, a := range n.Args {
		v, err := ev.evalExpr(a.Value, env)
		if err != nil {
			return nil, err
		}
		args[i] = argValue{name: a.Name, value: v}
	}

	switch fn := callee.(type) {
	case *Builtin:
		positional := make([]interface{}, 0, len(args))
		for _, a := range args {
			if a.name != "" {
				return nil, ev.runtimeError(n.Pos(), "builtin '%s' does not accept named arguments", fn.Name)
			}
			positional = append(positional, a.value)
		}
		return fn.Fn(ev, positional, n.Pos())

	case *Function:
		return ev.callFunction(fn, args, n.Pos())
	}

	return nil, ev.runtimeError(n.Pos(), "value of type %s is not callable", TypeName(callee))
}

type argValue struct {
	name  string
	value interface{}
}

/*
callFunction binds args against fn's parameter list and evaluates its body
in a fresh child of the closure environment. MaxCallDepth guards against
unbounded recursion.
*/
func (ev *Evaluator) callFunction(fn *Function, args []argValue, pos lexer.Position) (interface{}, error) {
	ev.callDepth++
	defer func() { ev.callDepth-- }()

	if ev.callDepth > ev.cfg.MaxCallDepth {
		return nil, ev.runtimeError(pos, "maximum call depth exceeded")
	}

	callEnv := fn.Closure.NewChild()

	positional := make([]interface{}, 0, len(args))
	named := make(map[string]interface{})
	for _, a := range args {
		if a.name != "" {
			named[a.name] = a.value
		} else {
			if len(named) > 0 {
				return nil, ev.runtimeError(pos, "function '%s' got a positional argument after a named argument", fn.Def.Name)
			}
			positional = append(positional, a.value)
		}
	}

	if len(positional) > len(fn.Def.Parameters) {
		return nil, ev.runtimeError(pos, "function '%s' takes %d argument(s) but %d were given",
			fn.Def.Name, len(fn.Def.Parameters), len(positional)+len(named))
	}

	for i, param := range fn.Def.Parameters {
		if i < len(positional) {
			if _, dup := named[param.Name]; dup {
				return nil, ev.runtimeError(pos, "function '%s' got multiple values for argument '%s'", fn.Def.Name, param.Name)
			}
			callEnv.Define(param.Name, positional[i])
			continue
		}
		if v, ok := named[param.Name]; ok {
			callEnv.Define(param.Name, v)
			delete(named, param.Name)
			continue
		}
		if param.Default != nil {
			v, err := ev.evalExpr(param.Default, callEnv)
			if err != nil {
				return nil, err
			}
			callEnv.Define(param.Name, v)
			continue
		}
		return nil, ev.runtimeError(pos, "function '%s' missing required argument '%s'", fn.Def.Name, param.Name)
	}

	for name := range named {
		return nil, ev.runtimeError(pos, "function '%s' got an unexpected keyword argument '%s'", fn.Def.Name, name)
	}

	_, sig, err := ev.evalBlock(fn.Def.Body, callEnv)
	if err != nil {
		return nil, err
	}
	if sig != nil && sig.kind == sigReturn {
		return sig.value, nil
	}
	if sig != nil {
		return nil, ev.runtimeError(pos, "'%s' outside of a loop", sig.kind)
	}
	// Falling off the end of a function body without a return yields none.
	return None, nil
}
