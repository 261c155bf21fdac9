/*
File    : tlox/value/callable.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import (
	"github.com/tlox/tlox/ast"
	"github.com/tlox/tlox/environment"
)

// Callable is the capability every Function value exposes: how many
// arguments it takes, how to invoke it, and how to display it. Dynamic
// dispatch on "is this a function, and what's its arity" is modeled as
// this capability set, not as a type hierarchy — the same approach the
// teacher's objects/function split takes for its own Function type.
type Callable interface {
	Value
	Arity() int
	Call(interp Interpreter, args []Value) (Value, error)
}

// sameCallable reports whether two Callables are the same underlying
// function value (reference identity), as spec.md's equality rule
// requires for Function values.
func sameCallable(a, b Callable) bool {
	return a == b
}

// Interpreter is the minimal surface a Callable needs from the evaluator
// to run a function body: execute a block of statements against a fresh
// environment frame and report whether it returned a value. Declaring this
// interface here (rather than importing the interpreter package directly)
// is what keeps value -> interpreter and interpreter -> value from forming
// an import cycle, the same way the teacher splits `function` out of
// `objects` to avoid function <-> eval cycling.
type Interpreter interface {
	ExecuteBlock(stmts []ast.Stmt, env *environment.Environment) (result Value, didReturn bool, err error)
}
