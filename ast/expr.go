/*
File    : tlox/ast/expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the tree-walking interpreter's AST: the Expression
// and Statement variants spec.md §3 names, dispatched through the Visitor
// pattern the way the teacher's parser/node.go dispatches its own (much
// larger) node set.
package ast

import "github.com/tlox/tlox/lexer"

// Expr is implemented by every expression node. Accept dispatches to the
// matching method on v, returning whatever the visitor produces (an
// evaluated value, a formatted string, ...).
type Expr interface {
	Accept(v ExprVisitor) (any, error)
}

// ExprVisitor is implemented by anything that walks expression nodes: the
// interpreter (evaluation) and the S-expression printer (display).
type ExprVisitor interface {
	VisitLiteralExpr(e *LiteralExpr) (any, error)
	VisitGroupingExpr(e *GroupingExpr) (any, error)
	VisitUnaryExpr(e *UnaryExpr) (any, error)
	VisitBinaryExpr(e *BinaryExpr) (any, error)
	VisitLogicalExpr(e *LogicalExpr) (any, error)
	VisitVariableExpr(e *VariableExpr) (any, error)
	VisitAssignExpr(e *AssignExpr) (any, error)
	VisitCallExpr(e *CallExpr) (any, error)
}

// LiteralExpr wraps a scanned literal payload (Number, String, Boolean, or
// Nil) as it was produced by the scanner.
type LiteralExpr struct {
	Value lexer.Literal
}

func (e *LiteralExpr) Accept(v ExprVisitor) (any, error) { return v.VisitLiteralExpr(e) }

// GroupingExpr is a parenthesized sub-expression: `( expr )`.
type GroupingExpr struct {
	Expression Expr
}

func (e *GroupingExpr) Accept(v ExprVisitor) (any, error) { return v.VisitGroupingExpr(e) }

// UnaryExpr is a prefix operator applied to a single operand: `!x`, `-x`.
type UnaryExpr struct {
	Operator lexer.Token
	Right    Expr
}

func (e *UnaryExpr) Accept(v ExprVisitor) (any, error) { return v.VisitUnaryExpr(e) }

// BinaryExpr is an infix arithmetic/comparison/equality operator.
type BinaryExpr struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (e *BinaryExpr) Accept(v ExprVisitor) (any, error) { return v.VisitBinaryExpr(e) }

// LogicalExpr is `and`/`or`. Kept distinct from BinaryExpr because its
// operands short-circuit instead of always both evaluating.
type LogicalExpr struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (e *LogicalExpr) Accept(v ExprVisitor) (any, error) { return v.VisitLogicalExpr(e) }

// VariableExpr is a name reference: looked up in the environment chain at
// evaluation time.
type VariableExpr struct {
	Name lexer.Token
}

func (e *VariableExpr) Accept(v ExprVisitor) (any, error) { return v.VisitVariableExpr(e) }

// AssignExpr assigns to an existing binding: `name = right`. Its value is
// the assigned value, so assignment itself is an expression.
type AssignExpr struct {
	Name  lexer.Token
	Right Expr
}

func (e *AssignExpr) Accept(v ExprVisitor) (any, error) { return v.VisitAssignExpr(e) }

// CallExpr invokes callee with the given arguments. Paren is the closing
// `)` token, used to attach a line number to call-time errors.
type CallExpr struct {
	Callee    Expr
	Paren     lexer.Token
	Arguments []Expr
}

func (e *CallExpr) Accept(v ExprVisitor) (any, error) { return v.VisitCallExpr(e) }
