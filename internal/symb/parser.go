package symb

// The whole sequence of tokens is read as if it was wrapped in a pair of
// brackets, so every pending operator gets reduced by the same code.
var (
	outerOpen  = NewToken(OPEN_BRACKET, "(", nil)
	outerClose = NewToken(CLOSE_BRACKET, ")", nil)
)

// Parser builds an expression tree from a sequence of tokens using the
// shunting-yard algorithm.
//
// Priorities
//
//	"+", "-"  --> 1
//	"*", "/"  --> 2
//	"^"       --> 3, right associative
//
// A "+" or "-" that is found where an operand is expected is unary. Unary
// operators and functions are reduced before any binary operator that comes
// after them.
type Parser struct {
	tokens    []*Token
	trees     []Expr
	operators []*Token
	// true if the next token must start an operand
	unary bool
}

// NewParser creates a new parser for the given tokens
func NewParser(tokens []*Token) *Parser {
	return &Parser{tokens, make([]Expr, 0), make([]*Token, 0), true}
}

// Parse builds an expression tree from tokens.
func Parse(tokens []*Token) (Expr, error) {
	return NewParser(tokens).Parse()
}

// Parse returns the tree that the tokens describe. Nothing is returned if the
// tokens do not form exactly one expression.
func (parser *Parser) Parse() (Expr, error) {
	parser.trees = parser.trees[:0]
	parser.operators = parser.operators[:0]
	parser.unary = true

	stream := make([]*Token, 0, len(parser.tokens)+2)
	stream = append(stream, outerOpen)
	stream = append(stream, parser.tokens...)
	stream = append(stream, outerClose)

	for _, tok := range stream {
		var err error
		switch tok.Typ {
		case OPEN_BRACKET, FUNCTION:
			parser.operators = append(parser.operators, tok)
			parser.unary = true
		case LITERAL, VARIABLE:
			parser.trees = append(parser.trees, leaf(tok))
			parser.unary = false
		case CLOSE_BRACKET:
			err = parser.closeBracket(tok)
		case OPERATOR:
			err = parser.operator(tok)
		}
		if err != nil {
			return nil, err
		}
	}

	if len(parser.operators) != 0 {
		return nil, NewParseError(nil, ErrUnmatchedBracket)
	}
	if len(parser.trees) != 1 {
		return nil, NewParseError(nil, ErrDanglingOperand)
	}
	return parser.trees[0], nil
}

// closeBracket reduces every operator up to the matching open bracket. Which
// bracket characters are used does not matter.
func (parser *Parser) closeBracket(tok *Token) error {
	for {
		op, ok := parser.pop()
		if !ok {
			return NewParseError(at(tok), ErrUnmatchedBracket)
		}
		if op.Typ == OPEN_BRACKET {
			break
		}
		if err := parser.reduce(op); err != nil {
			return err
		}
	}
	parser.unary = false
	return nil
}

func (parser *Parser) operator(tok *Token) error {
	if parser.unary {
		if tok.Lexeme != opAdd && tok.Lexeme != opSub {
			return NewParseError(tok, ErrBadUnary)
		}
		// unary operators are functions of one argument
		parser.operators = append(parser.operators, NewToken(FUNCTION, tok.Lexeme, nil))
		return nil
	}

	for len(parser.operators) != 0 {
		top := parser.operators[len(parser.operators)-1]
		if !parser.yields(top, tok) {
			break
		}
		parser.pop()
		if err := parser.reduce(top); err != nil {
			return err
		}
	}
	parser.operators = append(parser.operators, tok)
	parser.unary = true
	return nil
}

// yields reports whether the stacked operator top must be reduced before the
// incoming operator is pushed.
func (parser *Parser) yields(top *Token, incoming *Token) bool {
	switch top.Typ {
	case FUNCTION:
		return true
	case OPERATOR:
		pt, pi := priorities[top.Lexeme], priorities[incoming.Lexeme]
		return pt > pi || (pt == pi && incoming.Lexeme != opPow)
	}
	return false
}

// reduce replaces the operands of op on top of the output stack with a single
// tree.
func (parser *Parser) reduce(op *Token) error {
	n := len(parser.trees)
	if op.Typ == FUNCTION {
		if n < 1 {
			return NewParseError(op, ErrMissingOperand)
		}
		parser.trees[n-1] = NewUnaryExpr(op.Lexeme, parser.trees[n-1])
		return nil
	}

	if n < 2 {
		return NewParseError(op, ErrMissingOperand)
	}
	lhs, rhs := parser.trees[n-2], parser.trees[n-1]
	parser.trees = parser.trees[:n-1]
	parser.trees[n-2] = NewBinaryExpr(op.Lexeme, lhs, rhs)
	return nil
}

func (parser *Parser) pop() (*Token, bool) {
	n := len(parser.operators)
	if n == 0 {
		return nil, false
	}
	op := parser.operators[n-1]
	parser.operators = parser.operators[:n-1]
	return op, true
}

func leaf(tok *Token) Expr {
	switch literal := tok.Literal.(type) {
	case float64:
		return NewLiteralExpr(literal, "")
	case Constant:
		return NewLiteralExpr(0, string(literal))
	}
	return NewVariableExpr(tok.Lexeme)
}

// at hides the tokens that were not part of the input
func at(tok *Token) *Token {
	if tok == outerOpen || tok == outerClose {
		return nil
	}
	return tok
}
