/*
File    : tlox/interpreter/statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"fmt"

	"github.com/tlox/tlox/ast"
	"github.com/tlox/tlox/callable"
	"github.com/tlox/tlox/value"
)

func (i *Interpreter) VisitExpressionStmt(s *ast.ExpressionStmt) (any, error) {
	if _, err := i.Evaluate(s.Expression); err != nil {
		return nil, err
	}
	return nil, nil
}

// VisitPrintStmt evaluates its expression and writes it using the runtime
// print rule (Value.DisplayString — no forced ".0" on integral numbers),
// followed by a newline.
func (i *Interpreter) VisitPrintStmt(s *ast.PrintStmt) (any, error) {
	v, err := i.Evaluate(s.Expression)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(i.Stdout, v.DisplayString())
	return nil, nil
}

func (i *Interpreter) VisitVarStmt(s *ast.VarStmt) (any, error) {
	initial := value.Value(value.NilValue)
	if s.Initializer != nil {
		v, err := i.Evaluate(s.Initializer)
		if err != nil {
			return nil, err
		}
		initial = v
	}
	i.env.Define(s.Name.Lexeme, initial)
	return nil, nil
}

func (i *Interpreter) VisitBlockStmt(s *ast.BlockStmt) (any, error) {
	result, didReturn, err := i.ExecuteBlock(s.Statements, i.env.Enclose())
	if err != nil {
		return nil, err
	}
	if didReturn {
		return returnSignal{result}, nil
	}
	return nil, nil
}

func (i *Interpreter) VisitIfStmt(s *ast.IfStmt) (any, error) {
	cond, err := i.Evaluate(s.Condition)
	if err != nil {
		return nil, err
	}

	var branch ast.Stmt
	if value.IsTruthy(cond) {
		branch = s.Then
	} else if s.Else != nil {
		branch = s.Else
	} else {
		return nil, nil
	}

	v, didReturn, err := i.Execute(branch)
	if err != nil {
		return nil, err
	}
	if didReturn {
		return returnSignal{v}, nil
	}
	return nil, nil
}

func (i *Interpreter) VisitWhileStmt(s *ast.WhileStmt) (any, error) {
	for {
		cond, err := i.Evaluate(s.Condition)
		if err != nil {
			return nil, err
		}
		if !value.IsTruthy(cond) {
			break
		}

		v, didReturn, err := i.Execute(s.Body)
		if err != nil {
			return nil, err
		}
		if didReturn {
			return returnSignal{v}, nil
		}
	}
	return nil, nil
}

// VisitFunctionStmt constructs a user-function value closing over the
// current frame and binds it to its name in that same frame.
func (i *Interpreter) VisitFunctionStmt(s *ast.FunctionStmt) (any, error) {
	fn := &callable.UserFunction{Declaration: s, Closure: i.env}
	i.env.Define(s.Name.Lexeme, fn)
	return nil, nil
}

func (i *Interpreter) VisitReturnStmt(s *ast.ReturnStmt) (any, error) {
	result := value.Value(value.NilValue)
	if s.Value != nil {
		v, err := i.Evaluate(s.Value)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return returnSignal{result}, nil
}
