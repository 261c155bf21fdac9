/*
File    : tlox/callable/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package callable provides the two Callable implementations spec.md
// names: a user-defined closure-capturing function, and the native clock
// builtin. It plays the role the teacher's function package plays for
// GoMix's single Function type, generalized to hold an ast.FunctionStmt
// and a genuinely shared environment.Environment closure frame instead of
// a copied scope.
package callable

import (
	"fmt"

	"github.com/tlox/tlox/ast"
	"github.com/tlox/tlox/environment"
	"github.com/tlox/tlox/value"
)

// UserFunction is a function value created by a `fun` declaration. It
// holds a shared reference to the environment frame that was current at
// its definition site, so it can read and mutate that frame's bindings
// even after the defining block has exited — the mechanism behind
// spec.md's closure invariant.
type UserFunction struct {
	Declaration *ast.FunctionStmt
	Closure     *environment.Environment
}

func (f *UserFunction) Kind() value.Kind { return value.FunctionKind }

// DisplayString matches spec.md §4.4's rule for user functions.
func (f *UserFunction) DisplayString() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}

// Arity is the number of declared parameters.
func (f *UserFunction) Arity() int {
	return len(f.Declaration.Params)
}

// Call creates a fresh frame enclosed by the function's closure, binds
// each parameter to its argument, and executes the body in that frame. A
// body that falls off the end without an explicit `return` yields Nil.
func (f *UserFunction) Call(interp value.Interpreter, args []value.Value) (value.Value, error) {
	callFrame := f.Closure.Enclose()
	for i, param := range f.Declaration.Params {
		callFrame.Define(param.Lexeme, args[i])
	}

	result, didReturn, err := interp.ExecuteBlock(f.Declaration.Body, callFrame)
	if err != nil {
		return nil, err
	}
	if didReturn {
		return result, nil
	}
	return value.NilValue, nil
}
