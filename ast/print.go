/*
File    : tlox/ast/print.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"fmt"
	"strings"

	"github.com/tlox/tlox/lexer"
)

// Print renders an expression in S-expression form: `(<op> <child>…)`,
// `(group <e>)`, literal values per literalString, and bare variables as
// `<lexeme>`. This is the `parse` CLI subcommand's output format.
func Print(e Expr) string {
	p := &printer{}
	s, _ := e.Accept(p)
	return s.(string)
}

// printer implements ExprVisitor to produce Print's S-expression text.
type printer struct{}

func (p *printer) parenthesize(name string, exprs ...Expr) (any, error) {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		s, _ := e.Accept(p)
		b.WriteString(s.(string))
	}
	b.WriteByte(')')
	return b.String(), nil
}

func (p *printer) VisitLiteralExpr(e *LiteralExpr) (any, error) {
	return literalString(e.Value), nil
}

func (p *printer) VisitGroupingExpr(e *GroupingExpr) (any, error) {
	return p.parenthesize("group", e.Expression)
}

func (p *printer) VisitUnaryExpr(e *UnaryExpr) (any, error) {
	return p.parenthesize(e.Operator.Lexeme, e.Right)
}

func (p *printer) VisitBinaryExpr(e *BinaryExpr) (any, error) {
	return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right)
}

func (p *printer) VisitLogicalExpr(e *LogicalExpr) (any, error) {
	return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right)
}

func (p *printer) VisitVariableExpr(e *VariableExpr) (any, error) {
	return e.Name.Lexeme, nil
}

func (p *printer) VisitAssignExpr(e *AssignExpr) (any, error) {
	return p.parenthesize("= "+e.Name.Lexeme, e.Right)
}

func (p *printer) VisitCallExpr(e *CallExpr) (any, error) {
	return p.parenthesize("call", append([]Expr{e.Callee}, e.Arguments...)...)
}

// literalString formats a scanned literal payload the way both the
// tokenize and parse CLI paths display literals: raw string contents,
// numbers forced to show ".0" when integral, and true/false/nil spelled
// out for their respective kinds.
func literalString(l lexer.Literal) string {
	switch l.Kind {
	case lexer.NumberLiteral:
		return lexer.FormatNumberLiteral(l.Number)
	case lexer.StringLiteral:
		return l.Str
	case lexer.BooleanLiteral:
		if l.Boolean {
			return "true"
		}
		return "false"
	case lexer.NilLiteral:
		return "nil"
	default:
		return fmt.Sprintf("%v", l)
	}
}
