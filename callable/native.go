/*
File    : tlox/callable/native.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package callable

import (
	"time"

	"github.com/tlox/tlox/value"
)

// Clock is the language's sole native builtin: zero-arity, returns the
// current Unix time in seconds.
type Clock struct{}

func (Clock) Kind() value.Kind { return value.FunctionKind }
func (Clock) DisplayString() string { return "<native fn clock>" }
func (Clock) Arity() int            { return 0 }

func (Clock) Call(_ value.Interpreter, _ []value.Value) (value.Value, error) {
	return value.Number(float64(time.Now().UnixNano()) / float64(time.Second)), nil
}
