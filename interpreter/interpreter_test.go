/*
File    : tlox/interpreter/interpreter_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tlox/tlox/lexer"
	"github.com/tlox/tlox/parser"
)

// run scans, parses, and interprets src, capturing everything written via
// the print statement. It fails the test immediately on a scan or parse
// error, since those are not what these tests exercise.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	scanner := lexer.NewScanner(src)
	tokens := scanner.ScanTokens()
	require.False(t, scanner.HadError)

	stmts, err := parser.NewParser(tokens).Parse()
	require.NoError(t, err)

	var out bytes.Buffer
	interp := New()
	interp.Stdout = &out
	err = interp.Interpret(stmts)
	return out.String(), err
}

func lines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestInterpreter_ArithmeticAndPrecedence(t *testing.T) {
	out, err := run(t, `print 1 + 2 * 3;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"7"}, lines(out))
}

func TestInterpreter_StringConcatenation(t *testing.T) {
	out, err := run(t, `print "foo" + "bar";`)
	require.NoError(t, err)
	assert.Equal(t, []string{"foobar"}, lines(out))
}

func TestInterpreter_MixedPlusOperandsError(t *testing.T) {
	_, err := run(t, `print "foo" + 1;`)
	require.Error(t, err)
	assert.Equal(t, "Operands must be two numbers or two strings.", err.Error())
}

func TestInterpreter_UnaryNegationRequiresNumber(t *testing.T) {
	_, err := run(t, `print -"x";`)
	require.Error(t, err)
	assert.Equal(t, "Operand must be a number.", err.Error())
}

func TestInterpreter_ComparisonRequiresNumbers(t *testing.T) {
	_, err := run(t, `print "a" < 1;`)
	require.Error(t, err)
	assert.Equal(t, "Operands must be numbers.", err.Error())
}

func TestInterpreter_EqualityAcrossKindsIsFalse(t *testing.T) {
	out, err := run(t, `print 1 == "1";`)
	require.NoError(t, err)
	assert.Equal(t, []string{"false"}, lines(out))
}

func TestInterpreter_TruthinessAndLogicalShortCircuit(t *testing.T) {
	out, err := run(t, `
		var calls = 0;
		fun sideEffect() { calls = calls + 1; return true; }
		if (false and sideEffect()) { print "unreached"; }
		print calls;
		if (true or sideEffect()) { print "reached"; }
		print calls;
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "reached", "0"}, lines(out))
}

func TestInterpreter_VariableDeclarationDefaultsToNil(t *testing.T) {
	out, err := run(t, `var a; print a;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"nil"}, lines(out))
}

func TestInterpreter_UndefinedVariableErrors(t *testing.T) {
	_, err := run(t, `print x;`)
	require.Error(t, err)
	assert.Equal(t, "Undefined variable 'x'.", err.Error())
}

func TestInterpreter_AssignmentMutatesEnclosingScope(t *testing.T) {
	out, err := run(t, `
		var a = 1;
		{
			a = 2;
		}
		print a;
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, lines(out))
}

func TestInterpreter_BlockScopeShadowsWithoutLeaking(t *testing.T) {
	out, err := run(t, `
		var a = "outer";
		{
			var a = "inner";
			print a;
		}
		print a;
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"inner", "outer"}, lines(out))
}

func TestInterpreter_WhileLoop(t *testing.T) {
	out, err := run(t, `
		var i = 0;
		while (i < 3) {
			print i;
			i = i + 1;
		}
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, lines(out))
}

func TestInterpreter_ForLoopDesugaring(t *testing.T) {
	out, err := run(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, lines(out))
}

func TestInterpreter_FunctionCallAndReturn(t *testing.T) {
	out, err := run(t, `
		fun add(a, b) { return a + b; }
		print add(1, 2);
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, lines(out))
}

func TestInterpreter_FunctionFallsOffEndReturnsNil(t *testing.T) {
	out, err := run(t, `
		fun noop() {}
		print noop();
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"nil"}, lines(out))
}

func TestInterpreter_RecursiveFunction(t *testing.T) {
	out, err := run(t, `
		fun fib(n) {
			if (n < 2) return n;
			return fib(n - 1) + fib(n - 2);
		}
		print fib(10);
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"55"}, lines(out))
}

func TestInterpreter_ClosureCapturesSharedState(t *testing.T) {
	out, err := run(t, `
		fun makeCounter() {
			var count = 0;
			fun increment() {
				count = count + 1;
				return count;
			}
			return increment;
		}
		var counter = makeCounter();
		print counter();
		print counter();
		print counter();
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, lines(out))
}

func TestInterpreter_CallArityMismatchErrors(t *testing.T) {
	_, err := run(t, `
		fun add(a, b) { return a + b; }
		add(1);
	`)
	require.Error(t, err)
	assert.Equal(t, "Expected 2 arguments but got 1.", err.Error())
}

func TestInterpreter_CallNonCallableErrors(t *testing.T) {
	_, err := run(t, `
		var notAFunction = 1;
		notAFunction();
	`)
	require.Error(t, err)
	assert.Equal(t, "Can only call functions and classes.", err.Error())
}

func TestInterpreter_FunctionDisplayString(t *testing.T) {
	out, err := run(t, `
		fun greet() {}
		print greet;
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"<fn greet>"}, lines(out))
}

func TestInterpreter_NativeClockIsCallableWithZeroArity(t *testing.T) {
	out, err := run(t, `print clock() >= 0;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"true"}, lines(out))
}
