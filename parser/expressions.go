/*
File    : tlox/parser/expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/tlox/tlox/ast"
	"github.com/tlox/tlox/lexer"
)

// expression → assignment
func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

// assignment → logic_or ( '=' assignment )?
//
// The left side is parsed as logic_or first; only if it turns out to be a
// Variable expression does a following '=' turn it into an Assign. Any
// other left side (e.g. `a+b = 1`) is an "Invalid assignment target."
// error pointing at the '=' token.
func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}

		if variable, ok := expr.(*ast.VariableExpr); ok {
			return &ast.AssignExpr{Name: variable.Name, Right: value}, nil
		}
		return nil, p.errorAt(equals, "Invalid assignment target.")
	}

	return expr, nil
}

// logic_or → logic_and ( 'or' logic_and )*
func (p *Parser) or() (ast.Expr, error) {
	expr, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.OR) {
		operator := p.previous()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		expr = &ast.LogicalExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

// logic_and → equality ( 'and' equality )*
func (p *Parser) and() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.AND) {
		operator := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &ast.LogicalExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

// equality → comparison ( ('==' | '!=') comparison )*
func (p *Parser) equality() (ast.Expr, error) {
	return p.leftAssocBinary(p.comparison, lexer.BANG_EQUAL, lexer.EQUAL_EQUAL)
}

// comparison → term ( ('<' | '<=' | '>' | '>=') term )*
func (p *Parser) comparison() (ast.Expr, error) {
	return p.leftAssocBinary(p.term, lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL)
}

// term → factor ( ('+' | '-') factor )*
func (p *Parser) term() (ast.Expr, error) {
	return p.leftAssocBinary(p.factor, lexer.MINUS, lexer.PLUS)
}

// factor → unary ( ('*' | '/') unary )*
func (p *Parser) factor() (ast.Expr, error) {
	return p.leftAssocBinary(p.unary, lexer.SLASH, lexer.STAR)
}

// leftAssocBinary implements one left-associative binary precedence level:
// parse one operand via next, then repeatedly consume a matching operator
// and another operand via next, folding left.
func (p *Parser) leftAssocBinary(next func() (ast.Expr, error), types ...lexer.TokenType) (ast.Expr, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for p.match(types...) {
		operator := p.previous()
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

// unary → ('!' | '-') unary | call
func (p *Parser) unary() (ast.Expr, error) {
	if p.match(lexer.BANG, lexer.MINUS) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Operator: operator, Right: right}, nil
	}
	return p.call()
}

// call → primary ( '(' arguments? ')' )*
//
// Multiple call parentheses in a row chain into nested Call expressions,
// e.g. `f()()`.
func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}

	for {
		if p.match(lexer.LEFT_PAREN) {
			expr, err = p.finishCall(expr)
			if err != nil {
				return nil, err
			}
		} else {
			break
		}
	}
	return expr, nil
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	var arguments []ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(arguments) >= maxArgs {
				return nil, p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			arguments = append(arguments, arg)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}

	paren, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	if err != nil {
		return nil, err
	}
	return &ast.CallExpr{Callee: callee, Paren: paren, Arguments: arguments}, nil
}

// primary → 'true' | 'false' | 'nil'
//         | NUMBER | STRING | IDENTIFIER
//         | '(' expression ')'
func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(lexer.FALSE):
		return &ast.LiteralExpr{Value: lexer.Literal{Kind: lexer.BooleanLiteral, Boolean: false}}, nil
	case p.match(lexer.TRUE):
		return &ast.LiteralExpr{Value: lexer.Literal{Kind: lexer.BooleanLiteral, Boolean: true}}, nil
	case p.match(lexer.NIL):
		return &ast.LiteralExpr{Value: lexer.Literal{Kind: lexer.NilLiteral}}, nil
	case p.match(lexer.NUMBER, lexer.STRING):
		return &ast.LiteralExpr{Value: p.previous().Literal}, nil
	case p.match(lexer.IDENTIFIER):
		return &ast.VariableExpr{Name: p.previous()}, nil
	case p.match(lexer.LEFT_PAREN):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &ast.GroupingExpr{Expression: expr}, nil
	}

	return nil, p.errorAt(p.peek(), "Expect expression.")
}
