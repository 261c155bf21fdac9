/*
File    : tlox/environment/environment_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tlox/tlox/lexer"
)

func tok(name string) lexer.Token {
	return lexer.Token{Type: lexer.IDENTIFIER, Lexeme: name, Line: 1}
}

func TestEnvironment_DefineThenGet(t *testing.T) {
	env := New()
	env.Define("x", 10)
	v, err := env.Get(tok("x"))
	assert.NoError(t, err)
	assert.Equal(t, 10, v)
}

func TestEnvironment_GetUndefinedReturnsRuntimeError(t *testing.T) {
	env := New()
	_, err := env.Get(tok("missing"))
	assert.Error(t, err)
	var rerr *RuntimeError
	assert.ErrorAs(t, err, &rerr)
	assert.Equal(t, "Undefined variable 'missing'.", rerr.Message)
}

func TestEnvironment_AssignMutatesEnclosingFrameNotInnerOne(t *testing.T) {
	outer := New()
	outer.Define("x", 1)
	inner := outer.Enclose()

	err := inner.Assign(tok("x"), 2)
	assert.NoError(t, err)

	v, err := outer.Get(tok("x"))
	assert.NoError(t, err)
	assert.Equal(t, 2, v)

	// inner frame never got its own "x" binding
	_, ok := inner.values["x"]
	assert.False(t, ok)
}

func TestEnvironment_AssignUndefinedNameErrorsWithoutCreatingBinding(t *testing.T) {
	env := New()
	err := env.Assign(tok("ghost"), 1)
	assert.Error(t, err)
	_, ok := env.values["ghost"]
	assert.False(t, ok)
}

func TestEnvironment_ShadowingInnerFrameHidesOuterBinding(t *testing.T) {
	outer := New()
	outer.Define("x", 1)
	inner := outer.Enclose()
	inner.Define("x", 2)

	v, err := inner.Get(tok("x"))
	assert.NoError(t, err)
	assert.Equal(t, 2, v)

	v, err = outer.Get(tok("x"))
	assert.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestEnvironment_SharedFrameIsVisibleThroughBothReferences(t *testing.T) {
	// Simulates two closures capturing the same defining frame: mutation
	// through one reference must be visible through the other.
	shared := New()
	shared.Define("count", 0)

	closureA := shared
	closureB := shared

	closureA.Define("count", 1)
	v, err := closureB.Get(tok("count"))
	assert.NoError(t, err)
	assert.Equal(t, 1, v)
}
