/*
File    : tlox/parser/statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/tlox/tlox/ast"
	"github.com/tlox/tlox/lexer"
)

// declaration → funDecl | varDecl | statement
func (p *Parser) declaration() (ast.Stmt, error) {
	if p.match(lexer.FUN) {
		return p.function("function")
	}
	if p.match(lexer.VAR) {
		return p.varDeclaration()
	}
	return p.statement()
}

// funDecl → 'fun' IDENT '(' params? ')' block
func (p *Parser) function(kind string) (ast.Stmt, error) {
	name, err := p.consume(lexer.IDENTIFIER, "Expect "+kind+" name.")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.LEFT_PAREN, "Expect '(' after "+kind+" name."); err != nil {
		return nil, err
	}

	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				return nil, p.errorAt(p.peek(), "Can't have more than 255 parameters.")
			}
			param, err := p.consume(lexer.IDENTIFIER, "Expect parameter name.")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters."); err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.LEFT_BRACE, "Expect '{' before "+kind+" body."); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionStmt{Name: name, Params: params, Body: body}, nil
}

// varDecl → 'var' IDENT ( '=' expression )? ';'
func (p *Parser) varDeclaration() (ast.Stmt, error) {
	name, err := p.consume(lexer.IDENTIFIER, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	var initializer ast.Expr
	if p.match(lexer.EQUAL) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(lexer.SEMICOLON, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &ast.VarStmt{Name: name, Initializer: initializer}, nil
}

// statement → exprStmt | forStmt | ifStmt | printStmt
//           | returnStmt | whileStmt | block
func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.match(lexer.FOR):
		return p.forStatement()
	case p.match(lexer.IF):
		return p.ifStatement()
	case p.match(lexer.PRINT):
		return p.printStatement()
	case p.match(lexer.RETURN):
		return p.returnStatement()
	case p.match(lexer.WHILE):
		return p.whileStatement()
	case p.match(lexer.LEFT_BRACE):
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}
		return &ast.BlockStmt{Statements: stmts}, nil
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() (ast.Stmt, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.SEMICOLON, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &ast.PrintStmt{Expression: value}, nil
}

func (p *Parser) returnStatement() (ast.Stmt, error) {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(lexer.SEMICOLON) {
		var err error
		value, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.SEMICOLON, "Expect ';' after return value."); err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Keyword: keyword, Value: value}, nil
}

func (p *Parser) whileStatement() (ast.Stmt, error) {
	if _, err := p.consume(lexer.LEFT_PAREN, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after condition."); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Condition: condition, Body: body}, nil
}

func (p *Parser) ifStatement() (ast.Stmt, error) {
	if _, err := p.consume(lexer.LEFT_PAREN, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after if condition."); err != nil {
		return nil, err
	}

	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Stmt
	if p.match(lexer.ELSE) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfStmt{Condition: condition, Then: thenBranch, Else: elseBranch}, nil
}

// forStatement desugars `for (init; cond; incr) body` into
// Block(init?, While(cond or literal true, Block(body, ExprStmt(incr))?))
// at parse time, so the evaluator only ever sees While and Block.
func (p *Parser) forStatement() (ast.Stmt, error) {
	if _, err := p.consume(lexer.LEFT_PAREN, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	var initializer ast.Stmt
	var err error
	switch {
	case p.match(lexer.SEMICOLON):
		initializer = nil
	case p.match(lexer.VAR):
		initializer, err = p.varDeclaration()
	default:
		initializer, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	var condition ast.Expr
	if !p.check(lexer.SEMICOLON) {
		condition, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.SEMICOLON, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var increment ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		increment, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if increment != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expression: increment}}}
	}

	if condition == nil {
		condition = &ast.LiteralExpr{Value: lexer.Literal{Kind: lexer.BooleanLiteral, Boolean: true}}
	}
	body = &ast.WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{initializer, body}}
	}

	return body, nil
}

// block → '{' declaration* '}'
func (p *Parser) block() ([]ast.Stmt, error) {
	var statements []ast.Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	if _, err := p.consume(lexer.RIGHT_BRACE, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return statements, nil
}

func (p *Parser) expressionStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.SEMICOLON, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &ast.ExpressionStmt{Expression: expr}, nil
}
