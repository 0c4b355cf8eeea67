package symb

import "fmt"

// Token is a group of characters with the meaning that was given to it by the
// tokenizer.
type Token struct {
	Typ     TokenType
	Lexeme  string
	Literal interface{}
}

// NewToken creates a new token
func NewToken(typ TokenType, lexeme string, literal interface{}) *Token {
	return &Token{typ, lexeme, literal}
}

func (t *Token) String() string {
	if t.Literal == nil {
		return fmt.Sprintf("%s %s", t.Typ, t.Lexeme)
	}
	return fmt.Sprintf("%s %s %v", t.Typ, t.Lexeme, t.Literal)
}

// Constant tags a literal token that names a constant. The value is resolved
// by the evaluator.
type Constant string

// TokenType is the kind of a token
type TokenType uint

const (
	OPERATOR TokenType = iota
	OPEN_BRACKET
	CLOSE_BRACKET
	FUNCTION
	LITERAL
	VARIABLE
)

func (tt TokenType) String() string {
	switch tt {
	case OPERATOR:
		return "OPERATOR"
	case OPEN_BRACKET:
		return "OPEN_BRACKET"
	case CLOSE_BRACKET:
		return "CLOSE_BRACKET"
	case FUNCTION:
		return "FUNCTION"
	case LITERAL:
		return "LITERAL"
	case VARIABLE:
		return "VARIABLE"
	}
	return ""
}
