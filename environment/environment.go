// Package environment implements the name-to-value scope chain GoLox runs
// on. An Environment is a reference type with an optional enclosing link;
// closures retain environments past the lexical region that created them,
// so the scope chain is shared and, in the presence of recursive
// functions defined at the top level, cyclic: a global function's
// closure is the globals environment, which also holds the function
// itself (SPEC_FULL.md §5). Representing environments as pointers to a
// mutable struct — rather than an owned tree — is what makes that shape
// expressible at all; nothing here attempts to free them, Go's collector
// does that once the last holder (a call frame or a closure value) drops
// its reference.
package environment

import "fmt"

// Environment maps identifier names to runtime values within one lexical
// scope. Values are stored as interface{} rather than a named Value type
// so this package does not need to import the object package that gives
// that type its meaning — the two packages would otherwise form an
// import cycle, since object.Function.Closure points back at an
// Environment.
type Environment struct {
	values    map[string]interface{}
	Enclosing *Environment
}

// New creates a scope enclosed by parent. Pass nil to create the global
// scope.
func New(parent *Environment) *Environment {
	return &Environment{values: make(map[string]interface{}), Enclosing: parent}
}

// Define binds name to value in this scope, overwriting any existing
// binding. GoLox — like the reference language — permits redeclaring a
// name at global scope; the resolver is what rejects redeclaration in a
// local scope before execution ever reaches here.
func (e *Environment) Define(name string, value interface{}) {
	e.values[name] = value
}

// Get looks up name starting at this scope and walking outward. The
// error mirrors SPEC_FULL.md §4.4's "Undefined variable 'X'" message.
func (e *Environment) Get(name string) (interface{}, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, fmt.Errorf("Undefined variable '%s'.", name)
}

// Assign updates an existing binding for name, searching outward from
// this scope. It does not create a new global binding when none exists —
// SPEC_FULL.md §9 resolves that Open Question by keeping the reference
// behavior: assigning to an undefined variable is a runtime error.
func (e *Environment) Assign(name string, value interface{}) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, value)
	}
	return fmt.Errorf("Undefined variable '%s'.", name)
}

// Ancestor walks exactly distance enclosing links outward. The
// interpreter calls this with the scope depth the resolver computed, so
// a variable read/assign never has to search — it jumps straight to the
// scope that declared it.
func (e *Environment) Ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.Enclosing
	}
	return env
}

// GetAt reads name directly from the ancestor at distance, bypassing the
// walk-and-miss Get would otherwise do. Used for every resolved local
// variable read.
func (e *Environment) GetAt(distance int, name string) (interface{}, error) {
	env := e.Ancestor(distance)
	if v, ok := env.values[name]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("Undefined variable '%s'.", name)
}

// AssignAt writes value directly into the ancestor at distance.
func (e *Environment) AssignAt(distance int, name string, value interface{}) {
	e.Ancestor(distance).values[name] = value
}
