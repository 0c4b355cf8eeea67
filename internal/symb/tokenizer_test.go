package symb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeSingleToken(t *testing.T) {
	testCases := []struct {
		src  string
		toks []*Token
	}{
		// operators and brackets
		{"+", []*Token{{OPERATOR, "+", nil}}},
		{"-", []*Token{{OPERATOR, "-", nil}}},
		{"*", []*Token{{OPERATOR, "*", nil}}},
		{"/", []*Token{{OPERATOR, "/", nil}}},
		{"^", []*Token{{OPERATOR, "^", nil}}},
		{"(", []*Token{{OPEN_BRACKET, "(", nil}}},
		{"[", []*Token{{OPEN_BRACKET, "[", nil}}},
		{"{", []*Token{{OPEN_BRACKET, "{", nil}}},
		{")", []*Token{{CLOSE_BRACKET, ")", nil}}},
		{"]", []*Token{{CLOSE_BRACKET, "]", nil}}},
		{"}", []*Token{{CLOSE_BRACKET, "}", nil}}},
		// numbers
		{"10", []*Token{{LITERAL, "10", 10.0}}},
		{"007", []*Token{{LITERAL, "007", 7.0}}},
		{"0.5", []*Token{{LITERAL, "0.5", 0.5}}},
		{"3.", []*Token{{LITERAL, "3.", 3.0}}},
		{".25", []*Token{{LITERAL, ".25", 0.25}}},
		// constants
		{"e", []*Token{{LITERAL, "e", Constant("e")}}},
		{"pi", []*Token{{LITERAL, "pi", Constant("pi")}}},
		// functions
		{"sin", []*Token{{FUNCTION, "sin", nil}}},
		{"cos", []*Token{{FUNCTION, "cos", nil}}},
		{"tan", []*Token{{FUNCTION, "tan", nil}}},
		{"cot", []*Token{{FUNCTION, "cot", nil}}},
		{"sec", []*Token{{FUNCTION, "sec", nil}}},
		{"csc", []*Token{{FUNCTION, "csc", nil}}},
		{"log", []*Token{{FUNCTION, "log", nil}}},
		{"exp", []*Token{{FUNCTION, "exp", nil}}},
		// variables
		{"x", []*Token{{VARIABLE, "x", nil}}},
		{"theta", []*Token{{VARIABLE, "theta", nil}}},
		{"x1", []*Token{{VARIABLE, "x1", nil}}},
		{"2x", []*Token{{VARIABLE, "2x", nil}}},
		{"1.2.3", []*Token{{VARIABLE, "1.2.3", nil}}},
		{".", []*Token{{VARIABLE, ".", nil}}},
		{"sinx", []*Token{{VARIABLE, "sinx", nil}}},
		// nothing
		{"", []*Token{}},
		{"  \t", []*Token{}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		toks := Tokenize(tc.src)
		assert.Equal(tc.toks, toks, tc.src)
	}
}

func TestTokenizeExpression(t *testing.T) {
	testCases := []struct {
		src  string
		toks []*Token
	}{
		{"1+2", []*Token{
			{LITERAL, "1", 1.0},
			{OPERATOR, "+", nil},
			{LITERAL, "2", 2.0},
		}},
		{" 2 * pi ", []*Token{
			{LITERAL, "2", 2.0},
			{OPERATOR, "*", nil},
			{LITERAL, "pi", Constant("pi")},
		}},
		{"sin(x)^2", []*Token{
			{FUNCTION, "sin", nil},
			{OPEN_BRACKET, "(", nil},
			{VARIABLE, "x", nil},
			{CLOSE_BRACKET, ")", nil},
			{OPERATOR, "^", nil},
			{LITERAL, "2", 2.0},
		}},
		{"-x", []*Token{
			{OPERATOR, "-", nil},
			{VARIABLE, "x", nil},
		}},
		{"sin x", []*Token{
			{FUNCTION, "sin", nil},
			{VARIABLE, "x", nil},
		}},
		{"[a]/{b}", []*Token{
			{OPEN_BRACKET, "[", nil},
			{VARIABLE, "a", nil},
			{CLOSE_BRACKET, "]", nil},
			{OPERATOR, "/", nil},
			{OPEN_BRACKET, "{", nil},
			{VARIABLE, "b", nil},
			{CLOSE_BRACKET, "}", nil},
		}},
		{"1.5\n+\ty", []*Token{
			{LITERAL, "1.5", 1.5},
			{OPERATOR, "+", nil},
			{VARIABLE, "y", nil},
		}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		toks := Tokenize(tc.src)
		assert.Equal(tc.toks, toks, tc.src)
	}
}

func TestTokenizerIsReusable(t *testing.T) {
	assert := assert.New(t)

	tokenizer := NewTokenizer("x + 1")
	first := tokenizer.Tokenize()
	second := tokenizer.Tokenize()
	assert.Len(first, 3)
	assert.Equal(first, second)
}

func TestTokenString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("OPERATOR +", NewToken(OPERATOR, "+", nil).String())
	assert.Equal("LITERAL 2.5 2.5", NewToken(LITERAL, "2.5", 2.5).String())
	assert.Equal("LITERAL pi pi", NewToken(LITERAL, "pi", Constant("pi")).String())
	assert.Equal("VARIABLE x", NewToken(VARIABLE, "x", nil).String())
}
