// ast.go — AST node types and their canonical text rendering.
//
// Every node renders through String(). The rendering is deterministic and
// fully parenthesized for operator expressions, so that precedence and
// associativity decisions made by the parser are visible in the output:
// "a + b * c" renders as "(a + (b * c))". Program and BlockStatement
// concatenate their statements with no separators; this exact form is a
// contract relied upon by the formatter and the tests.
package maymun

import (
	"strconv"
	"strings"
)

// Node is anything that can render itself canonically.
type Node interface {
	String() string
}

// Expression nodes produce a value when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// Statement nodes are executed for effect and/or value.
type Statement interface {
	Node
	statementNode()
}

// Program is an ordered sequence of top-level statements.
type Program struct {
	Statements []Statement
}

// Len reports the number of top-level statements.
func (p *Program) Len() int { return len(p.Statements) }

// Statement returns the i-th top-level statement.
func (p *Program) Statement(i int) Statement { return p.Statements[i] }

func (p *Program) String() string {
	var out strings.Builder
	for _, s := range p.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

// BlockStatement is an ordered statement sequence nested inside a
// conditional branch.
type BlockStatement struct {
	Statements []Statement
}

func (b *BlockStatement) statementNode() {}
func (b *BlockStatement) String() string {
	var out strings.Builder
	for _, s := range b.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

// LetStatement binds an identifier to the value of its initializer.
type LetStatement struct {
	Name  string
	Value Expression
}

func (s *LetStatement) statementNode() {}
func (s *LetStatement) String() string {
	return "let " + s.Name + " = " + s.Value.String() + ";"
}

// ReturnStatement unwinds the enclosing evaluation with its value.
type ReturnStatement struct {
	Value Expression
}

func (s *ReturnStatement) statementNode() {}
func (s *ReturnStatement) String() string {
	return "return " + s.Value.String() + ";"
}

// ExpressionStatement is a bare expression at statement position.
type ExpressionStatement struct {
	Expression Expression
}

func (s *ExpressionStatement) statementNode() {}
func (s *ExpressionStatement) String() string { return s.Expression.String() }

// Literal is an unresolved identifier.
type Literal struct {
	Value string
}

func (e *Literal) expressionNode() {}
func (e *Literal) String() string  { return e.Value }

// IntegerLiteral is a 64-bit signed integer constant.
type IntegerLiteral struct {
	Value int64
}

func (e *IntegerLiteral) expressionNode() {}
func (e *IntegerLiteral) String() string  { return strconv.FormatInt(e.Value, 10) }

// BooleanLiteral is a boolean constant.
type BooleanLiteral struct {
	Value bool
}

func (e *BooleanLiteral) expressionNode() {}
func (e *BooleanLiteral) String() string  { return strconv.FormatBool(e.Value) }

// PrefixExpression applies a unary operator to its operand.
type PrefixExpression struct {
	Operator string
	Right    Expression
}

func (e *PrefixExpression) expressionNode() {}
func (e *PrefixExpression) String() string {
	return "(" + e.Operator + e.Right.String() + ")"
}

// InfixExpression applies a binary operator to its operands.
type InfixExpression struct {
	Left     Expression
	Operator string
	Right    Expression
}

func (e *InfixExpression) expressionNode() {}
func (e *InfixExpression) String() string {
	return "(" + e.Left.String() + " " + e.Operator + " " + e.Right.String() + ")"
}

// IfExpression evaluates Consequence when Condition holds, otherwise
// Alternative (which may be nil).
type IfExpression struct {
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement
}

func (e *IfExpression) expressionNode() {}
func (e *IfExpression) String() string {
	var out strings.Builder
	out.WriteString("if")
	out.WriteString(e.Condition.String())
	out.WriteString(" ")
	out.WriteString(e.Consequence.String())
	if e.Alternative != nil {
		out.WriteString("else ")
		out.WriteString(e.Alternative.String())
	}
	return out.String()
}
