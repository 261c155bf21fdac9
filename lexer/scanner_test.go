/*
File    : tlox/lexer/scanner_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tokenTypes(tokens []Token) []TokenType {
	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestScanner_SingleCharPunctuation(t *testing.T) {
	s := NewScanner("(){},.-+;*")
	tokens := s.ScanTokens()
	assert.False(t, s.HadError)
	assert.Equal(t, []TokenType{
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE, COMMA, DOT,
		MINUS, PLUS, SEMICOLON, STAR, EOF,
	}, tokenTypes(tokens))
}

func TestScanner_TwoCharOperatorsPreferLongestMatch(t *testing.T) {
	s := NewScanner("= == ! != < <= > >=")
	tokens := s.ScanTokens()
	assert.False(t, s.HadError)
	assert.Equal(t, []TokenType{
		EQUAL, EQUAL_EQUAL, BANG, BANG_EQUAL, LESS, LESS_EQUAL, GREATER, GREATER_EQUAL, EOF,
	}, tokenTypes(tokens))
}

func TestScanner_LineCommentConsumesToEndOfLine(t *testing.T) {
	s := NewScanner("1 // a comment\n2")
	tokens := s.ScanTokens()
	assert.False(t, s.HadError)
	assert.Equal(t, []TokenType{NUMBER, NUMBER, EOF}, tokenTypes(tokens))
	assert.Equal(t, 2, tokens[1].Line)
}

func TestScanner_BareSlashEmitsSlashToken(t *testing.T) {
	s := NewScanner("a / b")
	tokens := s.ScanTokens()
	assert.False(t, s.HadError)
	assert.Equal(t, []TokenType{IDENTIFIER, SLASH, IDENTIFIER, EOF}, tokenTypes(tokens))
}

func TestScanner_StringLiteral(t *testing.T) {
	s := NewScanner(`"hello world"`)
	tokens := s.ScanTokens()
	assert.False(t, s.HadError)
	assert.Equal(t, STRING, tokens[0].Type)
	assert.Equal(t, StringLiteral, tokens[0].Literal.Kind)
	assert.Equal(t, "hello world", tokens[0].Literal.Str)
}

func TestScanner_StringSpansNewlinesAndBumpsLine(t *testing.T) {
	s := NewScanner("\"a\nb\" 1")
	tokens := s.ScanTokens()
	assert.False(t, s.HadError)
	assert.Equal(t, "a\nb", tokens[0].Literal.Str)
	assert.Equal(t, 2, tokens[1].Line)
}

func TestScanner_UnterminatedStringReportsLexError(t *testing.T) {
	s := NewScanner(`"no closing quote`)
	tokens := s.ScanTokens()
	assert.True(t, s.HadError)
	require := []string{"[line 1] Error: Unterminated string."}
	assert.Equal(t, require, s.Errors)
	// no String token was emitted for the unterminated literal
	assert.Equal(t, []TokenType{EOF}, tokenTypes(tokens))
}

func TestScanner_NumberLiteral(t *testing.T) {
	s := NewScanner("123 45.67")
	tokens := s.ScanTokens()
	assert.False(t, s.HadError)
	assert.Equal(t, NumberLiteral, tokens[0].Literal.Kind)
	assert.Equal(t, float64(123), tokens[0].Literal.Number)
	assert.Equal(t, 45.67, tokens[1].Literal.Number)
}

func TestScanner_IdentifierVsKeyword(t *testing.T) {
	s := NewScanner("orchid or")
	tokens := s.ScanTokens()
	assert.False(t, s.HadError)
	assert.Equal(t, IDENTIFIER, tokens[0].Type)
	assert.Equal(t, OR, tokens[1].Type)
}

func TestScanner_UnexpectedCharacterReportsErrorAndContinues(t *testing.T) {
	s := NewScanner("1 @ 2")
	tokens := s.ScanTokens()
	assert.True(t, s.HadError)
	assert.Equal(t, []string{"[line 1] Error: Unexpected character: @"}, s.Errors)
	assert.Equal(t, []TokenType{NUMBER, NUMBER, EOF}, tokenTypes(tokens))
}

func TestToken_StringRendersKindLexemeAndLiteral(t *testing.T) {
	numTok := Token{Type: NUMBER, Lexeme: "12", Literal: Literal{Kind: NumberLiteral, Number: 12}, Line: 1}
	assert.Equal(t, "NUMBER 12 12.0", numTok.String())

	strTok := Token{Type: STRING, Lexeme: `"hi"`, Literal: Literal{Kind: StringLiteral, Str: "hi"}, Line: 1}
	assert.Equal(t, `STRING "hi" hi`, strTok.String())

	eofTok := NewToken(EOF, "", 1)
	assert.Equal(t, "EOF  null", eofTok.String())
}
