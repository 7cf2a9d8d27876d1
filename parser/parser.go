/*
File    : go-lite/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a Pratt (top-down operator-precedence) parser
// over the language's closed grammar. It consumes tokens from a lexer and
// produces an ast.Program, or, on any failure, the full list of errors
// accumulated across the parse. There is no partial-AST output: callers
// check HasErrors() before touching the result.
package parser

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/go-lite/ast"
	"github.com/akashmaji946/go-lite/lexer"
)

// Parser holds everything needed to turn a token stream into an AST: the
// lexer, a two-token lookahead, the Pratt dispatch tables, and an
// accumulating error list.
type Parser struct {
	lex       lexer.Lexer
	curToken  lexer.Token
	peekToken lexer.Token

	unaryFuncs  map[lexer.TokenType]prefixParseFn
	binaryFuncs map[lexer.TokenType]infixParseFn

	errors []string
}

// NewParser creates a Parser over src, registers the grammar's prefix and
// infix handlers, and primes curToken/peekToken by reading two tokens.
func NewParser(src string) *Parser {
	p := &Parser{
		lex:    lexer.NewLexer(src),
		errors: []string{},
	}

	p.unaryFuncs = make(map[lexer.TokenType]prefixParseFn)
	p.binaryFuncs = make(map[lexer.TokenType]infixParseFn)

	p.registerUnaryFuncs(p.parseIdentifier, lexer.IDENTIFIER_ID)
	p.registerUnaryFuncs(p.parseIntegerLiteral, lexer.INT_LIT)
	p.registerUnaryFuncs(p.parseBooleanLiteral, lexer.TRUE_KEY, lexer.FALSE_KEY)
	p.registerUnaryFuncs(p.parsePrefixExpression, lexer.NOT_OP, lexer.MINUS_OP)
	p.registerUnaryFuncs(p.parseGroupedExpression, lexer.LEFT_PAREN)
	p.registerUnaryFuncs(p.parseIfExpression, lexer.IF_KEY)
	p.registerUnaryFuncs(p.parseFunctionLiteral, lexer.FUNC_KEY)

	p.registerBinaryFuncs(p.parseInfixExpression,
		lexer.PLUS_OP, lexer.MINUS_OP, lexer.MUL_OP, lexer.DIV_OP,
		lexer.LT_OP, lexer.GT_OP, lexer.EQ_OP, lexer.NE_OP)
	p.registerBinaryFuncs(p.parseCallExpression, lexer.LEFT_PAREN)

	p.nextToken()
	p.nextToken()

	return p
}

// nextToken shifts peekToken into curToken and pulls a new peekToken from
// the lexer.
func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lex.NextToken()
}

func (p *Parser) curTokenIs(t lexer.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t lexer.TokenType) bool { return p.peekToken.Type == t }

// expectPeek checks peekToken against t; on a match it advances and
// returns true, otherwise it records an error and returns false.
func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

// expectPeekIdentifier is expectPeek specialized for the one place the
// grammar names its expected token kind instead of its spelling: after
// `let`.
func (p *Parser) expectPeekIdentifier() bool {
	if p.peekTokenIs(lexer.IDENTIFIER_ID) {
		p.nextToken()
		return true
	}
	p.errors = append(p.errors, fmt.Sprintf("Expected an identifier but got %s", p.peekToken.Type))
	return false
}

func (p *Parser) peekError(t lexer.TokenType) {
	msg := fmt.Sprintf("expected next token to be %s, but got %s instead", t, p.peekToken.Type)
	p.errors = append(p.errors, msg)
}

func (p *Parser) noPrefixParseFnError(t lexer.TokenType) {
	p.errors = append(p.errors, fmt.Sprintf("No prefix parse function for %s is found", t))
}

// HasErrors reports whether any parse error was accumulated.
func (p *Parser) HasErrors() bool { return len(p.errors) > 0 }

// Errors returns every error accumulated during the parse, in the order
// they were recorded.
func (p *Parser) Errors() []string { return p.errors }

// ParseProgram parses the whole token stream into a Program. Each
// statement either succeeds (appended to the program) or fails (its error
// recorded); parsing always resumes at the next token afterward, so one
// bad statement does not abort the rest of the parse. If any error was
// recorded, ParseProgram returns nil and the errors are read through
// Errors().
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{Statements: []ast.Statement{}}

	for !p.curTokenIs(lexer.EOF_TYPE) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	if p.HasErrors() {
		return nil
	}

	return program
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case lexer.LET_KEY:
		return p.parseLetStatement()
	case lexer.RETURN_KEY:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseLetStatement parses `let <ident> = <expr>;`.
func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Token: p.curToken}

	if !p.expectPeekIdentifier() {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Name: p.curToken.Literal}

	if !p.expectPeek(lexer.ASSIGN_OP) {
		return nil
	}
	p.nextToken()

	stmt.Value = p.parseExpression(LOWEST)

	if p.peekTokenIs(lexer.SEMICOLON_DELIM) {
		p.nextToken()
	}

	return stmt
}

// parseReturnStatement parses `return <expr>;`.
func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curToken}

	p.nextToken()

	stmt.ReturnValue = p.parseExpression(LOWEST)

	if p.peekTokenIs(lexer.SEMICOLON_DELIM) {
		p.nextToken()
	}

	return stmt
}

// parseExpressionStatement parses a bare expression used as a statement.
func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}

	stmt.Expression = p.parseExpression(LOWEST)

	if p.peekTokenIs(lexer.SEMICOLON_DELIM) {
		p.nextToken()
	}

	return stmt
}

// parseExpression is the Pratt-parsing core: dispatch to a prefix parser
// for curToken, then repeatedly extend the result with infix/call parsers
// while the upcoming operator binds tighter than precedence.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix, ok := p.unaryFuncs[p.curToken.Type]
	if !ok {
		p.noPrefixParseFnError(p.curToken.Type)
		return nil
	}
	left := prefix()

	for !p.peekTokenIs(lexer.SEMICOLON_DELIM) && precedence < getPrecedence(p.peekToken.Type) {
		infix, ok := p.binaryFuncs[p.peekToken.Type]
		if !ok {
			return left
		}
		p.nextToken()
		left = infix(left)
	}

	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Name: p.curToken.Literal}
}

// parseIntegerLiteral converts the digit run scanned by the lexer into a
// 32-bit signed value. An out-of-range literal is reported as a parse
// error (see DESIGN.md's Open Questions) rather than silently wrapping.
func (p *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: p.curToken}

	value, err := strconv.ParseInt(p.curToken.Literal, 10, 32)
	if err != nil {
		p.errors = append(p.errors, fmt.Sprintf("could not parse %q as a 32-bit integer", p.curToken.Literal))
		return nil
	}
	lit.Value = int32(value)
	return lit
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(lexer.TRUE_KEY)}
}

// parsePrefixExpression parses `!x` or `-x`: advance past the operator,
// parse the operand at Prefix precedence.
func (p *Parser) parsePrefixExpression() ast.Expression {
	expr := &ast.PrefixExpression{Token: p.curToken, Operator: p.curToken.Literal}
	p.nextToken()
	expr.Right = p.parseExpression(PREFIX)
	return expr
}

// parseInfixExpression parses the right-hand side of a binary operator at
// its own precedence, giving left-associativity.
func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{
		Token:    p.curToken,
		Left:     left,
		Operator: p.curToken.Literal,
	}
	precedence := getPrecedence(p.curToken.Type)
	p.nextToken()
	expr.Right = p.parseExpression(precedence)
	return expr
}

// parseGroupedExpression parses `( <expr> )`, discarding the parentheses
// from the tree: a grouped expression is indistinguishable from its inner
// expression once parsed.
func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RIGHT_PAREN) {
		return nil
	}
	return expr
}

// parseIfExpression parses `if ( <expr> ) { <block> } [else { <block> }]`.
func (p *Parser) parseIfExpression() ast.Expression {
	expr := &ast.IfExpression{Token: p.curToken}

	if !p.expectPeek(lexer.LEFT_PAREN) {
		return nil
	}
	p.nextToken()
	expr.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(lexer.RIGHT_PAREN) {
		return nil
	}
	if !p.expectPeek(lexer.LEFT_BRACE) {
		return nil
	}
	expr.Consequence = p.parseBlockStatement()

	if p.peekTokenIs(lexer.ELSE_KEY) {
		p.nextToken()
		if !p.expectPeek(lexer.LEFT_BRACE) {
			return nil
		}
		expr.Alternative = p.parseBlockStatement()
	}

	return expr
}

// parseBlockStatement parses `{ <stmt>* }`. Precondition: curToken is `{`.
// The closing `}` is curToken on return.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken, Statements: []ast.Statement{}}

	p.nextToken()

	for !p.curTokenIs(lexer.RIGHT_BRACE) && !p.curTokenIs(lexer.EOF_TYPE) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}

	return block
}

// parseFunctionLiteral parses `fn ( p1, p2, ... ) { <block> }`.
func (p *Parser) parseFunctionLiteral() ast.Expression {
	lit := &ast.FunctionLiteral{Token: p.curToken}

	if !p.expectPeek(lexer.LEFT_PAREN) {
		return nil
	}
	lit.Parameters = p.parseFunctionParameters()

	if !p.expectPeek(lexer.LEFT_BRACE) {
		return nil
	}
	lit.Body = p.parseBlockStatement()

	return lit
}

func (p *Parser) parseFunctionParameters() []*ast.Identifier {
	identifiers := []*ast.Identifier{}

	if p.peekTokenIs(lexer.RIGHT_PAREN) {
		p.nextToken()
		return identifiers
	}

	p.nextToken()
	identifiers = append(identifiers, &ast.Identifier{Token: p.curToken, Name: p.curToken.Literal})

	for p.peekTokenIs(lexer.COMMA_DELIM) {
		p.nextToken()
		p.nextToken()
		identifiers = append(identifiers, &ast.Identifier{Token: p.curToken, Name: p.curToken.Literal})
	}

	if !p.expectPeek(lexer.RIGHT_PAREN) {
		return nil
	}

	return identifiers
}

// parseCallExpression parses `<callee>( <args> )` once curToken is `(`.
func (p *Parser) parseCallExpression(fn ast.Expression) ast.Expression {
	expr := &ast.CallExpression{Token: p.curToken, Function: fn}
	expr.Arguments = p.parseExpressionList(lexer.RIGHT_PAREN)
	return expr
}

func (p *Parser) parseExpressionList(end lexer.TokenType) []ast.Expression {
	list := []ast.Expression{}

	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}

	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))

	for p.peekTokenIs(lexer.COMMA_DELIM) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(end) {
		return nil
	}

	return list
}
