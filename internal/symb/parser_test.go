package symb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) Expr {
	t.Helper()
	expr, err := Parse(Tokenize(src))
	require.NoError(t, err, src)
	return expr
}

func TestParseTree(t *testing.T) {
	testCases := []struct {
		src  string
		tree string
	}{
		{"1", "1"},
		{"x", "x"},
		{"pi", "pi"},
		{"1+2*3", "(+ 1 (* 2 3))"},
		{"(1+2)*3", "(* (+ 1 2) 3)"},
		{"1-2-3", "(- (- 1 2) 3)"},
		{"8/4/2", "(/ (/ 8 4) 2)"},
		{"2^3^2", "(^ 2 (^ 3 2))"},
		{"-3+5", "(+ (- 3) 5)"},
		{"+x", "(+ x)"},
		{"--x", "(- (- x))"},
		{"-x^2", "(^ (- x) 2)"},
		{"2*-x", "(* 2 (- x))"},
		{"sin x + 1", "(+ (sin x) 1)"},
		{"sin(x+1)", "(sin (+ x 1))"},
		{"log exp x", "(log (exp x))"},
		{"[1+2]/{x}", "(/ (+ 1 2) x)"},
		{"(1+2]", "(+ 1 2)"},
		{"((x))", "x"},
		{"a*b+c/d^e", "(+ (* a b) (/ c (^ d e)))"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		expr, err := Parse(Tokenize(tc.src))
		if assert.NoError(err, tc.src) {
			assert.Equal(tc.tree, TreeString(expr), tc.src)
		}
	}
}

func TestParseBuildsExpressions(t *testing.T) {
	assert := assert.New(t)

	expr := mustParse(t, "2*x + sin(pi)")
	assert.Equal(
		NewBinaryExpr("+",
			NewBinaryExpr("*", NewLiteralExpr(2, ""), NewVariableExpr("x")),
			NewUnaryExpr("sin", NewLiteralExpr(0, "pi"))),
		expr)
}

func TestParseError(t *testing.T) {
	testCases := []struct {
		src    string
		reason error
		lexeme string
	}{
		{"(1+2", ErrUnmatchedBracket, ""},
		{"1+2)", ErrUnmatchedBracket, ""},
		{"(1+2))", ErrUnmatchedBracket, ""},
		{"1+", ErrMissingOperand, "+"},
		{"sin", ErrMissingOperand, "sin"},
		{"()", ErrDanglingOperand, ""},
		{"", ErrDanglingOperand, ""},
		{"1 2", ErrDanglingOperand, ""},
		{"x sin(y)", ErrDanglingOperand, ""},
		{"*2", ErrBadUnary, "*"},
		{"2*/3", ErrBadUnary, "/"},
		{"(^x)", ErrBadUnary, "^"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		expr, err := Parse(Tokenize(tc.src))
		assert.Nil(expr, tc.src)
		assert.ErrorIs(err, tc.reason, tc.src)

		var parseErr *ParseError
		if assert.ErrorAs(err, &parseErr, tc.src) {
			if tc.lexeme == "" {
				assert.Nil(parseErr.Token, tc.src)
			} else if assert.NotNil(parseErr.Token, tc.src) {
				assert.Equal(tc.lexeme, parseErr.Token.Lexeme, tc.src)
			}
		}
	}
}

func TestParserIsReusable(t *testing.T) {
	assert := assert.New(t)

	parser := NewParser(Tokenize("1+x"))
	first, err := parser.Parse()
	assert.NoError(err)
	second, err := parser.Parse()
	assert.NoError(err)
	assert.True(Equal(first, second))
}
