package symb

import (
	"errors"
	"fmt"
)

var (
	// ErrUnmatchedBracket is reported for a closing bracket without an opening
	// one, and the other way round.
	ErrUnmatchedBracket = errors.New("missing bracket")
	// ErrMissingOperand is reported when an operator or a function does not
	// have enough operands.
	ErrMissingOperand = errors.New("missing operand")
	// ErrBadUnary is reported for an operator that can not be unary.
	ErrBadUnary = errors.New("operator can not be unary")
	// ErrDanglingOperand is reported when the tokens do not combine into
	// exactly one tree.
	ErrDanglingOperand = errors.New("expected a single expression")

	// ErrInvalidTerms is returned by Taylor for a non-positive term count.
	ErrInvalidTerms = errors.New("number of terms must be positive")
	// ErrLHopitalDepth is returned by Limit when L'Hôpital's rule has been
	// applied too many times without reaching a value.
	ErrLHopitalDepth = errors.New("too many applications of L'Hôpital's rule")
)

// ParseError is returned when a sequence of tokens does not form an
// expression. Token is nil when the error is found after the last token.
type ParseError struct {
	Token  *Token
	Reason error
}

// NewParseError creates a new parse error
func NewParseError(token *Token, reason error) error {
	return &ParseError{token, reason}
}

func (err *ParseError) Error() string {
	if err.Token == nil {
		return fmt.Sprintf("Error at end: %v", err.Reason)
	}
	return fmt.Sprintf("Error at '%s': %v", err.Token.Lexeme, err.Reason)
}

func (err *ParseError) Unwrap() error {
	return err.Reason
}

// EvalError is returned when a tree can not be reduced to a number.
type EvalError struct {
	Expr    Expr
	Message string
}

// NewEvalError creates a new evaluation error
func NewEvalError(expr Expr, message string) error {
	return &EvalError{expr, message}
}

func (err *EvalError) Error() string {
	return fmt.Sprintf("Error at '%s': %s", Infixify(err.Expr), err.Message)
}

// UnsupportedError is returned when an operation is asked for something it
// does not know how to do, such as the derivative of an unknown function.
type UnsupportedError struct {
	Op      string
	Message string
}

// NewUnsupportedError creates a new unsupported operation error
func NewUnsupportedError(op string, message string) error {
	return &UnsupportedError{op, message}
}

func (err *UnsupportedError) Error() string {
	return fmt.Sprintf("Unsupported %s: %s", err.Op, err.Message)
}

// ErrorKind names the class of an error returned by this package.
func ErrorKind(err error) string {
	var (
		parseErr       *ParseError
		evalErr        *EvalError
		unsupportedErr *UnsupportedError
	)
	switch {
	case errors.As(err, &parseErr):
		return "parse"
	case errors.As(err, &evalErr):
		return "eval"
	case errors.As(err, &unsupportedErr):
		return "unsupported"
	case errors.Is(err, ErrLHopitalDepth):
		return "limit"
	case errors.Is(err, ErrInvalidTerms):
		return "input"
	}
	return "internal"
}
