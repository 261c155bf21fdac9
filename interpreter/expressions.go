/*
File    : tlox/interpreter/expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"github.com/tlox/tlox/ast"
	"github.com/tlox/tlox/lexer"
	"github.com/tlox/tlox/value"
)

func (i *Interpreter) VisitLiteralExpr(e *ast.LiteralExpr) (any, error) {
	switch e.Value.Kind {
	case lexer.NumberLiteral:
		return value.Number(e.Value.Number), nil
	case lexer.StringLiteral:
		return value.String(e.Value.Str), nil
	case lexer.BooleanLiteral:
		return value.Boolean(e.Value.Boolean), nil
	default:
		return value.NilValue, nil
	}
}

func (i *Interpreter) VisitGroupingExpr(e *ast.GroupingExpr) (any, error) {
	v, err := i.Evaluate(e.Expression)
	return v, err
}

func (i *Interpreter) VisitUnaryExpr(e *ast.UnaryExpr) (any, error) {
	right, err := i.Evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.BANG:
		return value.Boolean(!value.IsTruthy(right)), nil
	case lexer.MINUS:
		n, err := checkNumberOperand(e.Operator, right)
		if err != nil {
			return nil, err
		}
		return value.Number(-n), nil
	}
	return nil, runtimeErr(e.Operator, "Unknown unary operator.")
}

func (i *Interpreter) VisitBinaryExpr(e *ast.BinaryExpr) (any, error) {
	left, err := i.Evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.Evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.SLASH:
		x, y, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return value.Number(x / y), nil
	case lexer.STAR:
		x, y, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return value.Number(x * y), nil
	case lexer.MINUS:
		x, y, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return value.Number(x - y), nil
	case lexer.PLUS:
		if ln, ok := left.(value.Number); ok {
			if rn, ok := right.(value.Number); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(value.String); ok {
			if rs, ok := right.(value.String); ok {
				return ls + rs, nil
			}
		}
		return nil, runtimeErr(e.Operator, "Operands must be two numbers or two strings.")
	case lexer.GREATER:
		x, y, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return value.Boolean(x > y), nil
	case lexer.GREATER_EQUAL:
		x, y, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return value.Boolean(x >= y), nil
	case lexer.LESS:
		x, y, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return value.Boolean(x < y), nil
	case lexer.LESS_EQUAL:
		x, y, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return value.Boolean(x <= y), nil
	case lexer.BANG_EQUAL:
		return value.Boolean(!value.Equal(left, right)), nil
	case lexer.EQUAL_EQUAL:
		return value.Boolean(value.Equal(left, right)), nil
	}

	return nil, runtimeErr(e.Operator, "Unknown binary operator.")
}

func (i *Interpreter) VisitLogicalExpr(e *ast.LogicalExpr) (any, error) {
	left, err := i.Evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	isLeftTruthy := value.IsTruthy(left)

	switch e.Operator.Type {
	case lexer.OR:
		if isLeftTruthy {
			return left, nil
		}
	case lexer.AND:
		if !isLeftTruthy {
			return left, nil
		}
	}
	right, err := i.Evaluate(e.Right)
	return right, err
}

func (i *Interpreter) VisitVariableExpr(e *ast.VariableExpr) (any, error) {
	v, err := i.env.Get(e.Name)
	if err != nil {
		return nil, err
	}
	return v.(value.Value), nil
}

func (i *Interpreter) VisitAssignExpr(e *ast.AssignExpr) (any, error) {
	v, err := i.Evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	if err := i.env.Assign(e.Name, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (i *Interpreter) VisitCallExpr(e *ast.CallExpr) (any, error) {
	callee, err := i.Evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	arguments := make([]value.Value, 0, len(e.Arguments))
	for _, argExpr := range e.Arguments {
		arg, err := i.Evaluate(argExpr)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, arg)
	}

	fn, ok := callee.(value.Callable)
	if !ok {
		return nil, runtimeErr(e.Paren, "Can only call functions and classes.")
	}

	if len(arguments) != fn.Arity() {
		return nil, runtimeErr(e.Paren, "Expected %d arguments but got %d.", fn.Arity(), len(arguments))
	}

	result, err := fn.Call(i, arguments)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func checkNumberOperand(operator lexer.Token, operand value.Value) (float64, error) {
	if n, ok := operand.(value.Number); ok {
		return float64(n), nil
	}
	return 0, runtimeErr(operator, "Operand must be a number.")
}

// checkNumberOperands requires both operands to be Number. spec.md's
// wording here ("Operands must be numbers.") is plural and deliberately
// diverges from the upstream Rust implementation's singular "Operands
// must be a number." — spec.md's explicit text wins.
func checkNumberOperands(operator lexer.Token, left, right value.Value) (float64, float64, error) {
	ln, lok := left.(value.Number)
	rn, rok := right.(value.Number)
	if !lok || !rok {
		return 0, 0, runtimeErr(operator, "Operands must be numbers.")
	}
	return float64(ln), float64(rn), nil
}
