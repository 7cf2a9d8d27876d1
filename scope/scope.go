/*
File    : go-lite/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package scope implements the lexically-scoped, parent-chained
// environments that back variable bindings and closures. A Scope is a
// mutable map plus a pointer to its enclosing Scope; lookups walk
// outward until a binding is found or the chain is exhausted.
package scope

import "github.com/akashmaji946/go-lite/objects"

// Scope is one lexical frame: its own bindings, and a link to the scope
// it was created inside of (nil at the program root). There is no
// Copy-on-capture anywhere in this package — a closure stores the *Scope
// pointer itself, so later mutations of an outer binding are visible to
// every closure that captured it.
type Scope struct {
	Variables map[string]objects.Object
	Parent    *Scope
}

// NewScope creates a fresh top-level scope with no parent.
func NewScope() *Scope {
	return &Scope{Variables: make(map[string]objects.Object)}
}

// NewEnclosed creates a scope nested inside parent: a new frame for a
// function call whose lookups fall back to parent. Blocks do not get a
// frame of their own; they are evaluated in the enclosing scope.
func NewEnclosed(parent *Scope) *Scope {
	return &Scope{Variables: make(map[string]objects.Object), Parent: parent}
}

// Get looks up name in this scope, then each enclosing scope in turn.
func (s *Scope) Get(name string) (objects.Object, bool) {
	val, ok := s.Variables[name]
	if !ok && s.Parent != nil {
		return s.Parent.Get(name)
	}
	return val, ok
}

// Set binds name to val in this scope. A `let` always introduces the
// binding in the current frame, shadowing any same-named binding in an
// enclosing scope rather than mutating it.
func (s *Scope) Set(name string, val objects.Object) objects.Object {
	s.Variables[name] = val
	return val
}
