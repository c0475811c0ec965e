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
Package scope implements lexical environments: parent-linked variable
storage used by the evaluator for both the global scope and every function
call frame.

The teacher's varsScope guards its storage map with a shared *sync.RWMutex
across the whole parent chain, because ECAL rules can fire concurrently.
Wisp programs evaluate on a single goroutine, so that locking is dropped here — see DESIGN.md.
*/
package scope

/*
Environment is a single lexical scope: a variable map plus a link to the
enclosing scope. The global environment has a nil parent.
*/
type Environment struct {
	parent  *Environment
	storage map[string]interface{}
}

/*
New creates a detached environment with no parent. Used for the program's
global scope.
*/
func New() *Environment {
	return &Environment{storage: make(map[string]interface{})}
}

/*
NewChild creates a new environment whose parent is e. Used for function
call frames, so closures see the defining scope rather than the caller's.
*/
func (e *Environment) NewChild() *Environment {
	return &Environment{parent: e, storage: make(map[string]interface{})}
}

/*
Parent returns the enclosing environment, or nil for the global scope.
*/
func (e *Environment) Parent() *Environment {
	return e.parent
}

/*
Define binds name to value in this environment, shadowing any binding of
the same name in an enclosing scope.
*/
func (e *Environment) Define(name string, value interface{}) {
	e.storage[name] = value
}

/*
Lookup searches this environment and its ancestors for name, returning the
bound value and true, or nil and false if no enclosing scope defines it.
*/
func (e *Environment) Lookup(name string) (interface{}, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.storage[name]; ok {
			return v, true
		}
	}
	return nil, false
}

/*
Assign mutates the nearest enclosing binding of name and returns true, or
returns false if no enclosing scope defines it.
*/
func (e *Environment) Assign(name string, value interface{}) bool {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.storage[name]; ok {
			env.storage[name] = value
			return true
		}
	}
	return false
}

/*
Names returns the variable names bound directly in this environment, not
including ancestors, in no particular order.
*/
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.storage))
	for n := range e.storage {
		names = append(names, n)
	}
	return names
}
