/*
File    : tlox/ast/stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import "github.com/tlox/tlox/lexer"

// Stmt is implemented by every statement node.
type Stmt interface {
	Accept(v StmtVisitor) (any, error)
}

// StmtVisitor is implemented by anything that walks statement nodes (the
// interpreter's executor).
type StmtVisitor interface {
	VisitExpressionStmt(s *ExpressionStmt) (any, error)
	VisitPrintStmt(s *PrintStmt) (any, error)
	VisitVarStmt(s *VarStmt) (any, error)
	VisitBlockStmt(s *BlockStmt) (any, error)
	VisitIfStmt(s *IfStmt) (any, error)
	VisitWhileStmt(s *WhileStmt) (any, error)
	VisitFunctionStmt(s *FunctionStmt) (any, error)
	VisitReturnStmt(s *ReturnStmt) (any, error)
}

// ExpressionStmt evaluates its expression and discards the result.
type ExpressionStmt struct {
	Expression Expr
}

func (s *ExpressionStmt) Accept(v StmtVisitor) (any, error) { return v.VisitExpressionStmt(s) }

// PrintStmt evaluates its expression and writes it to stdout using the
// runtime print-formatting rule, followed by a newline.
type PrintStmt struct {
	Expression Expr
}

func (s *PrintStmt) Accept(v StmtVisitor) (any, error) { return v.VisitPrintStmt(s) }

// VarStmt declares a new binding in the current (innermost) frame.
// Initializer is nil when the declaration has no `= expr` clause, in which
// case the binding is Nil.
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr
}

func (s *VarStmt) Accept(v StmtVisitor) (any, error) { return v.VisitVarStmt(s) }

// BlockStmt introduces a fresh child environment frame for Statements.
type BlockStmt struct {
	Statements []Stmt
}

func (s *BlockStmt) Accept(v StmtVisitor) (any, error) { return v.VisitBlockStmt(s) }

// IfStmt executes Then when Condition is truthy, else Else (which is nil
// when the source had no `else` clause).
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

func (s *IfStmt) Accept(v StmtVisitor) (any, error) { return v.VisitIfStmt(s) }

// WhileStmt loops Body while Condition is truthy. `for` loops are
// desugared into this plus BlockStmt at parse time.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (s *WhileStmt) Accept(v StmtVisitor) (any, error) { return v.VisitWhileStmt(s) }

// FunctionStmt declares a named function, closing over the environment
// frame that is current at the point of declaration.
type FunctionStmt struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

func (s *FunctionStmt) Accept(v StmtVisitor) (any, error) { return v.VisitFunctionStmt(s) }

// ReturnStmt produces the early-return carrier. Value is nil when the
// source `return;` had no expression, in which case the returned value is
// Nil.
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr
}

func (s *ReturnStmt) Accept(v StmtVisitor) (any, error) { return v.VisitReturnStmt(s) }
