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

	"github.com/wisplang/wisp/config"
	"github.com/wisplang/wisp/lexer"
	"github.com/wisplang/wisp/parser"
	"github.com/wisplang/wisp/scope"
	"github.com/wisplang/wisp/util"
)

/*
Evaluator walks a Program and produces a value or a *util.RuntimeError. It
holds no state beyond one call's worth of recursion depth, so the same
Evaluator can run several programs in the same global scope in sequence —
the shape a REPL needs.
*/
type Evaluator struct {
	source    string
	cfg       *config.Config
	callDepth int
}

/*
New creates an Evaluator for diagnostics attributed to the given source
name, using cfg for recursion-depth and formatting settings. A nil cfg
falls back to config.Default().
*/
func New(source string, cfg *config.Config) *Evaluator {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Evaluator{source: source, cfg: cfg}
}

/*
NewGlobalEnvironment returns a fresh, empty global scope. Callers
typically populate it with the standard library via stdlib.Register
before running a program — kept as a separate step here so
this package never imports the stdlib package that in turn depends on it.
*/
func NewGlobalEnvironment() *scope.Environment {
	return scope.New()
}

/*
Run evaluates every top-level statement in prog against env in order and
returns the value of the last statement, whatever its kind (None for an
empty program; a function definition or loop yields None, an assignment
yields the assigned value), matching the REPL's "last statement is the
result" behavior.
*/
func (ev *Evaluator) Run(prog *parser.Program, env *scope.Environment) (interface{}, error) {
	var result interface{} = None

	for _, stmt := range prog.Statements {
		v, sig, err := ev.evalStatement(stmt, env)
		if err != nil {
			return nil, err
		}
		if sig != nil {
			return nil, ev.runtimeError(stmt.Pos(), "'%s' outside of a loop or function", sig.kind)
		}
		result = v
	}

	return result, nil
}

// --- control-flow signalling -------------------------------------------

type signalKind int

const (
	sigBreak signalKind = iota
	sigContinue
	sigReturn
)

func (k signalKind) String() string {
	switch k {
	case sigBreak:
		return "break"
	case sigContinue:
		return "continue"
	case sigReturn:
		return "return"
	}
	return "signal"
}

/*
signal is how break/continue/return unwind the block stack without Go
panics: every statement-evaluating function returns one alongside its
value, and callers check it before continuing to the next statement
.
*/
type signal struct {
	kind  signalKind
	value interface{}
}

func (ev *Evaluator) runtimeError(pos lexer.Position, format string, args ...interface{}) error {
	return util.NewRuntimeError(ev.source, fmt.Sprintf(format, args...), pos)
}

/*
Errorf builds a *util.RuntimeError attributed to this evaluator's source
name. Exported for builtins (package stdlib), which raise errors on the
same Evaluator that called them but live outside this package.
*/
func (ev *Evaluator) Errorf(pos lexer.Position, format string, args ...interface{}) error {
	return ev.runtimeError(pos, format, args...)
}

// --- statements ----------------------------------------------------------

/*
evalBlock runs a sequence of statements in env, stopping early and
propagating the first non-nil signal or error.
*/
func (ev *Evaluator) evalBlock(stmts []parser.Node, env *scope.Environment) (interface{}, *signal, error) {
	var result interface{} = None

	for _, stmt := range stmts {
		v, sig, err := ev.evalStatement(stmt, env)
		if err != nil {
			return nil, nil, err
		}
		if sig != nil {
			return nil, sig, nil
		}
		result = v
	}

	return result, nil, nil
}

func (ev *Evaluator) evalStatement(node parser.Node, env *scope.Environment) (interface{}, *signal, error) {
	switch n := node.(type) {
	case *parser.FunctionDef:
		env.Define(n.Name, &Function{Def: n, Closure: env})
		return None, nil, nil

	case *parser.If:
		return ev.evalIf(n, env)

	case *parser.While:
		return ev.evalWhile(n, env)

	case *parser.For:
		return ev.evalFor(n, env)

	case *parser.Break:
		return nil, &signal{kind: sigBreak}, nil

	case *parser.Continue:
		return nil, &signal{kind: sigContinue}, nil

	case *parser.Return:
		var value interface{} = None
		if n.Value != nil {
			v, err := ev.evalExpr(n.Value, env)
			if err != nil {
				return nil, nil, err
			}
			value = v
		}
		return nil, &signal{kind: sigReturn, value: value}, nil

	case *parser.Assignment:
		v, err := ev.evalAssignment(n, env)
		return v, nil, err
	}

	v, err := ev.evalExpr(node, env)
	return v, nil, err
}

/*
evalIf, evalWhile and evalFor all run their bodies directly in env rather
than a child of it: only a function call allocates a fresh frame
(callFunction's fn.Closure.NewChild()). A name first assigned with `=`
inside an if/while/for body therefore stays visible in the enclosing frame
after the block ends, matching how a bare assignment always writes to the
frame it runs in.
*/
func (ev *Evaluator) evalIf(n *parser.If, env *scope.Environment) (interface{}, *signal, error) {
	cond, err := ev.evalExpr(n.Cond, env)
	if err != nil {
		return nil, nil, err
	}

	if Truthy(cond) {
		return ev.evalBlock(n.Then, env)
	}
	if n.Else != nil {
		return ev.evalBlock(n.Else, env)
	}
	return None, nil, nil
}

func (ev *Evaluator) evalWhile(n *parser.While, env *scope.Environment) (interface{}, *signal, error) {
	for {
		cond, err := ev.evalExpr(n.Cond, env)
		if err != nil {
			return nil, nil, err
		}
		if !Truthy(cond) {
			return None, nil, nil
		}

		_, sig, err := ev.evalBlock(n.Body, env)
		if err != nil {
			return nil, nil, err
		}
		if sig != nil {
			if sig.kind == sigBreak {
				return None, nil, nil
			}
			if sig.kind == sigReturn {
				return nil, sig, nil
			}
			// sigContinue falls through to the next iteration.
		}
	}
}

func (ev *Evaluator) evalFor(n *parser.For, env *scope.Environment) (interface{}, *signal, error) {
	iterable, err := ev.evalExpr(n.Iterable, env)
	if err != nil {
		return nil, nil, err
	}

	items, err := iterate(iterable)
	if err != nil {
		return nil, nil, ev.runtimeError(n.Pos(), "%s", err.Error())
	}

	for _, item := range items {
		env.Define(n.Variable, item)

		_, sig, err := ev.evalBlock(n.Body, env)
		if err != nil {
			return nil, nil, err
		}
		if sig != nil {
			if sig.kind == sigBreak {
				break
			}
			if sig.kind == sigReturn {
				return nil, sig, nil
			}
		}
	}

	return None, nil, nil
}

/*
iterate returns the successive values a for-loop binds its variable to
.
*/
func iterate(v interface{}) ([]interface{}, error) {
	switch val := v.(type) {
	case string:
		runes := []rune(val)
		items := make([]interface{}, len(runes))
		for i, r := range runes {
			items[i] = string(r)
		}
		return items, nil
	case *List:
		return append([]interface{}(nil), val.Elements...), nil
	case *Dict:
		items := make([]interface{}, len(val.Keys()))
		for i, k := range val.Keys() {
			items[i] = k
		}
		return items, nil
	}
	return nil, notIterable(v)
}
