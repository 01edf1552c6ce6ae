// parser.go — Pratt parser for Maymun.
//
// The parser consumes tokens from a Lexer through a two-token lookahead
// buffer (curToken/peekToken) and produces a Program plus an ordered list of
// diagnostic strings. It never aborts the whole pass on a recoverable error:
// a failed statement contributes no node, its diagnostic is recorded, and
// parsing resumes at the next statement boundary. Callers must check
// Errors() before trusting the tree.
package maymun

import "fmt"

// Precedence levels, lowest binding power first. CALL is defined for
// completeness but has no construct in the current feature set.
type Precedence int

const (
	LOWEST Precedence = iota + 1
	EQUALS            // ==
	LESSGREATER       // > or <
	SUM               // +
	PRODUCT           // *
	PREFIX            // -x or !x
	CALL              // add(x, y)
)

func precedenceFor(tt TokenType) Precedence {
	switch tt {
	case EQ, NEQ:
		return EQUALS
	case LT, GT:
		return LESSGREATER
	case PLUS, MINUS:
		return SUM
	case SLASH, ASTERISK:
		return PRODUCT
	}
	return LOWEST
}

// Parser builds an AST from the token stream of a single Lexer.
type Parser struct {
	l         *Lexer
	curToken  Token
	peekToken Token
	errors    []string
}

// NewParser creates a parser over l and primes the lookahead buffer.
func NewParser(l *Lexer) *Parser {
	p := &Parser{l: l}
	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns the accumulated diagnostics in the order they occurred.
func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// ParseProgram parses the whole token stream into a Program, best-effort.
func (p *Parser) ParseProgram() *Program {
	program := &Program{}

	for p.curToken.Type != EOF {
		if stmt := p.parseStatement(); stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}

func (p *Parser) parseStatement() Statement {
	switch p.curToken.Type {
	case LET:
		return p.parseLetStatement()
	case RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() Statement {
	if p.peekToken.Type != IDENT {
		p.peekError(IDENT)
		return nil
	}
	p.nextToken()
	name := p.curToken.Literal

	if !p.expectPeek(ASSIGN) {
		return nil
	}

	p.nextToken()
	value := p.parseExpression(LOWEST)
	if value == nil {
		return nil
	}

	p.skipToSemicolon()
	return &LetStatement{Name: name, Value: value}
}

func (p *Parser) parseReturnStatement() Statement {
	p.nextToken()
	value := p.parseExpression(LOWEST)
	if value == nil {
		return nil
	}

	p.skipToSemicolon()
	return &ReturnStatement{Value: value}
}

func (p *Parser) parseExpressionStatement() Statement {
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}

	// The trailing ';' is optional so a final REPL expression needs none.
	if p.peekToken.Type == SEMICOLON {
		p.nextToken()
	}
	return &ExpressionStatement{Expression: expr}
}

// parseExpression is the precedence-climbing core: a prefix-position
// dispatch builds the left-hand expression, then the infix loop folds
// operators whose binding power exceeds pre.
func (p *Parser) parseExpression(pre Precedence) Expression {
	var left Expression

	switch p.curToken.Type {
	case IDENT:
		left = &Literal{Value: p.curToken.Literal}
	case INT:
		left = &IntegerLiteral{Value: p.curToken.Int}
	case TRUE, FALSE:
		left = &BooleanLiteral{Value: p.curToken.Type == TRUE}
	case LPAREN:
		p.nextToken()
		inner := p.parseExpression(LOWEST)
		if inner == nil {
			return nil
		}
		if !p.expectPeek(RPAREN) {
			return nil
		}
		left = inner
	case BANG, MINUS:
		op := p.curToken.Type.String()
		p.nextToken()
		right := p.parseExpression(PREFIX)
		if right == nil {
			return nil
		}
		left = &PrefixExpression{Operator: op, Right: right}
	case IF:
		left = p.parseIfExpression()
		if left == nil {
			return nil
		}
	default:
		p.errors = append(p.errors, fmt.Sprintf("undefined expression for %s found", p.curToken))
		return nil
	}

	for p.peekToken.Type != SEMICOLON && pre < precedenceFor(p.peekToken.Type) {
		switch p.peekToken.Type {
		case PLUS, MINUS, SLASH, ASTERISK, EQ, NEQ, LT, GT:
			p.nextToken()
			op := p.curToken.Type.String()
			curPre := precedenceFor(p.curToken.Type)
			p.nextToken()

			right := p.parseExpression(curPre)
			if right == nil {
				return nil
			}
			left = &InfixExpression{Left: left, Operator: op, Right: right}
		default:
			return left
		}
	}

	return left
}

func (p *Parser) parseIfExpression() Expression {
	if !p.expectPeek(LPAREN) {
		return nil
	}

	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if cond == nil {
		return nil
	}

	if !p.expectPeek(RPAREN) {
		return nil
	}
	if !p.expectPeek(LBRACE) {
		return nil
	}

	conseq := p.parseBlockStatement()

	expr := &IfExpression{Condition: cond, Consequence: conseq}
	if p.peekToken.Type == ELSE {
		p.nextToken()
		if !p.expectPeek(LBRACE) {
			return nil
		}
		expr.Alternative = p.parseBlockStatement()
	}

	return expr
}

func (p *Parser) parseBlockStatement() *BlockStatement {
	block := &BlockStatement{}
	p.nextToken()

	for p.curToken.Type != RBRACE && p.curToken.Type != EOF {
		if stmt := p.parseStatement(); stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}

	return block
}

func (p *Parser) expectPeek(tt TokenType) bool {
	if p.peekToken.Type == tt {
		p.nextToken()
		return true
	}
	p.peekError(tt)
	return false
}

// skipToSemicolon resynchronizes after a let/return body; remaining tokens up
// to the ';' (or EOF) are not semantically parsed.
func (p *Parser) skipToSemicolon() {
	for p.curToken.Type != SEMICOLON && p.curToken.Type != EOF {
		p.nextToken()
	}
}

// peekError names the required token kind and the token actually observed,
// payload included (an INT reports its value, an IDENT its text).
func (p *Parser) peekError(want TokenType) {
	p.errors = append(p.errors,
		fmt.Sprintf("expected next token to be %s, got %s instead", want, p.peekToken))
}
