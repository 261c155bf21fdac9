/*
File    : tlox/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package environment implements the interpreter's lexically nested scope
// chain. It plays the role the teacher's scope package plays for GoMix,
// but — unlike scope.Scope.Copy(), which snapshots bindings for closures —
// every Environment frame is a genuinely shared, mutable reference: a
// function's closure frame and its defining scope's current frame are the
// very same *Environment, the way the original Rust implementation's
// Rc<RefCell<Inner>> environment works. This is what lets two closures
// created from the same factory call mutate one shared counter.
package environment

import (
	"fmt"

	"github.com/tlox/tlox/lexer"
)

// RuntimeError is the structured error the evaluator raises: a message,
// plus the token that was being evaluated when the failure occurred (nil
// for errors that have no natural token, though every error produced by
// this package carries one).
type RuntimeError struct {
	Token   *lexer.Token
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

// Environment is one frame of the scope chain: a mapping from name to
// value, plus a stable pointer to the frame it enclosed. Values are stored
// as `any` rather than a concrete Value type so this package has no
// dependency on the value package — value.Value lives above environment in
// the dependency graph, not below it.
type Environment struct {
	values    map[string]any
	enclosing *Environment
}

// New creates a globals frame with no enclosing parent.
func New() *Environment {
	return &Environment{values: make(map[string]any)}
}

// Enclose creates a fresh, empty child frame whose enclosing frame is e.
func (e *Environment) Enclose() *Environment {
	return &Environment{values: make(map[string]any), enclosing: e}
}

// Define writes name unconditionally into this frame. A second Define of
// the same name in the same frame overwrites the first.
func (e *Environment) Define(name string, val any) {
	e.values[name] = val
}

// Get walks the chain toward the root and returns the first binding whose
// name matches, or an "Undefined variable" RuntimeError carrying name.
func (e *Environment) Get(name lexer.Token) (any, error) {
	if val, ok := e.values[name.Lexeme]; ok {
		return val, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, e.undefined(name)
}

// Assign walks the chain toward the root and mutates the first frame that
// already contains name; it never creates a new binding. Assigning an
// undefined name is the same "Undefined variable" error Get produces.
func (e *Environment) Assign(name lexer.Token, val any) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = val
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, val)
	}
	return e.undefined(name)
}

func (e *Environment) undefined(name lexer.Token) error {
	tok := name
	return &RuntimeError{Token: &tok, Message: fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)}
}
