/*
File    : go-lite/parser/precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-lite/ast"
	"github.com/akashmaji946/go-lite/lexer"
)

// Operator precedence levels, strictly increasing. Higher binds tighter.
// Seven levels cover every expression-forming construct in the grammar.
const (
	_ int = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // < >
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x, !x
	CALL        // f(x)
)

// precedences maps each binary/call-triggering token to its level. Tokens
// absent from this table (and not `;`) simply stop expression parsing at
// LOWEST.
var precedences = map[lexer.TokenType]int{
	lexer.EQ_OP:      EQUALS,
	lexer.NE_OP:      EQUALS,
	lexer.LT_OP:      LESSGREATER,
	lexer.GT_OP:      LESSGREATER,
	lexer.PLUS_OP:    SUM,
	lexer.MINUS_OP:   SUM,
	lexer.MUL_OP:     PRODUCT,
	lexer.DIV_OP:     PRODUCT,
	lexer.LEFT_PAREN: CALL,
}

// getPrecedence returns tok's binding power, or LOWEST if tok is not a
// registered infix/call operator.
func getPrecedence(tok lexer.TokenType) int {
	if p, ok := precedences[tok]; ok {
		return p
	}
	return LOWEST
}

// prefixParseFn parses an expression that begins with the current token
// (literals, identifiers, unary operators, grouping, if, fn).
type prefixParseFn func() ast.Expression

// infixParseFn parses the continuation of an expression given its
// already-parsed left operand (binary operators, call).
type infixParseFn func(ast.Expression) ast.Expression

// registerUnaryFuncs associates a prefixParseFn with one or more token
// types, mirroring the registration-table style this parser is built on.
func (p *Parser) registerUnaryFuncs(f prefixParseFn, tokenTypes ...lexer.TokenType) {
	for _, t := range tokenTypes {
		p.unaryFuncs[t] = f
	}
}

// registerBinaryFuncs associates an infixParseFn with one or more token
// types.
func (p *Parser) registerBinaryFuncs(f infixParseFn, tokenTypes ...lexer.TokenType) {
	for _, t := range tokenTypes {
		p.binaryFuncs[t] = f
	}
}
