// lexer.go
package maymun

import (
	"fmt"
	"strconv"
)

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota
	ILLEGAL

	// Identifiers + literals
	IDENT // add, foobar, x, y, ...
	INT   // 1234

	// Operators
	ASSIGN   // "="
	PLUS     // "+"
	MINUS    // "-"
	BANG     // "!"
	ASTERISK // "*"
	SLASH    // "/"

	// Comparisons
	LT  // "<"
	GT  // ">"
	EQ  // "=="
	NEQ // "!="

	// Delimiters
	COMMA     // ","
	SEMICOLON // ";"

	// Scopes
	LPAREN // "("
	RPAREN // ")"
	LBRACE // "{"
	RBRACE // "}"

	// Keywords
	FUNCTION // "fn"
	LET
	TRUE
	FALSE
	IF
	ELSE
	RETURN
)

var tokenTypeNames = map[TokenType]string{
	EOF:       "EOF",
	ILLEGAL:   "ILLEGAL",
	IDENT:     "IDENT",
	INT:       "INT",
	ASSIGN:    "=",
	PLUS:      "+",
	MINUS:     "-",
	BANG:      "!",
	ASTERISK:  "*",
	SLASH:     "/",
	LT:        "<",
	GT:        ">",
	EQ:        "==",
	NEQ:       "!=",
	COMMA:     ",",
	SEMICOLON: ";",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	FUNCTION:  "fn",
	LET:       "let",
	TRUE:      "true",
	FALSE:     "false",
	IF:        "if",
	ELSE:      "else",
	RETURN:    "return",
}

// String renders the source-text form of the token kind (operators and
// keywords as written, payload-carrying kinds by name).
func (tt TokenType) String() string {
	if s, ok := tokenTypeNames[tt]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a lexical token. IDENT carries its text in Literal, INT its parsed
// value in Int; all other kinds are bare tags. Equality is structural.
type Token struct {
	Type    TokenType
	Literal string // identifier text, or the offending lexeme for ILLEGAL
	Int     int64  // parsed value for INT
}

func (t Token) String() string {
	switch t.Type {
	case IDENT, ILLEGAL:
		return t.Literal
	case INT:
		return strconv.FormatInt(t.Int, 10)
	default:
		return t.Type.String()
	}
}

// keywords map
var keywords = map[string]TokenType{
	"fn":     FUNCTION,
	"let":    LET,
	"true":   TRUE,
	"false":  FALSE,
	"if":     IF,
	"else":   ELSE,
	"return": RETURN,
}

func lookupIdent(ident string) Token {
	if tt, ok := keywords[ident]; ok {
		return Token{Type: tt}
	}
	return Token{Type: IDENT, Literal: ident}
}

// Lexer scans a Maymun source string into tokens, one per NextToken call.
// After the input is exhausted every further call keeps returning EOF.
type Lexer struct {
	input        string
	position     int // index of current char
	readPosition int // index after current char
	ch           byte
}

// NewLexer creates a new lexer over the given source.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	l.ch = l.peekChar()
	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// NextToken advances the scanner and returns exactly one token.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	var tok Token
	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: EQ}
		} else {
			tok = Token{Type: ASSIGN}
		}
	case '+':
		tok = Token{Type: PLUS}
	case '-':
		tok = Token{Type: MINUS}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: NEQ}
		} else {
			tok = Token{Type: BANG}
		}
	case '*':
		tok = Token{Type: ASTERISK}
	case '/':
		tok = Token{Type: SLASH}
	case '<':
		tok = Token{Type: LT}
	case '>':
		tok = Token{Type: GT}
	case ',':
		tok = Token{Type: COMMA}
	case ';':
		tok = Token{Type: SEMICOLON}
	case '(':
		tok = Token{Type: LPAREN}
	case ')':
		tok = Token{Type: RPAREN}
	case '{':
		tok = Token{Type: LBRACE}
	case '}':
		tok = Token{Type: RBRACE}
	case 0:
		return Token{Type: EOF}
	default:
		if isLetter(l.ch) {
			return l.readIdentifier()
		}
		if isDigit(l.ch) {
			return l.readNumber()
		}
		tok = Token{Type: ILLEGAL, Literal: string(l.ch)}
	}

	l.readChar()
	return tok
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() Token {
	pos := l.position
	for isLetter(l.ch) {
		l.readChar()
	}
	return lookupIdent(l.input[pos:l.position])
}

// readNumber scans a maximal digit run. A literal that does not fit in int64
// becomes an ILLEGAL token carrying the lexeme rather than a fatal condition.
func (l *Lexer) readNumber() Token {
	pos := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	lexeme := l.input[pos:l.position]
	n, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return Token{Type: ILLEGAL, Literal: lexeme}
	}
	return Token{Type: INT, Int: n}
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
