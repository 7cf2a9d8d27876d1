/*
File    : go-lite/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package function defines the closure runtime value. It sits between
// ast/scope and objects — importing the first two to define the type,
// and implementing the objects.Object interface — so that objects itself
// never needs to import ast or scope.
package function

import (
	"strings"

	"github.com/akashmaji946/go-lite/ast"
	"github.com/akashmaji946/go-lite/objects"
	"github.com/akashmaji946/go-lite/scope"
)

// Function is a closure: an anonymous function literal together with the
// environment it was evaluated in. Env is captured by reference, not
// copied — later lookups inside the body see any bindings made in outer
// scopes after the closure was created, and a function returned from
// another function keeps its defining scope alive.
type Function struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *scope.Scope
}

func (f *Function) Type() objects.ObjectType { return objects.FUNCTION_OBJ }

// String renders a closure the same way a FunctionLiteral node does,
// since a closure carries no name of its own.
func (f *Function) String() string {
	params := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.String()
	}
	var out strings.Builder
	out.WriteString("fn(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") {...}")
	return out.String()
}
