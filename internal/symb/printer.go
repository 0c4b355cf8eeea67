package symb

import "fmt"

// InfixPrinter writes a tree as a fully parenthesized infix expression that
// the parser accepts again. This struct implements ExprVisitor
type InfixPrinter struct{}

// Infixify returns the fully parenthesized infix form of expr.
func Infixify(expr Expr) string {
	return (&InfixPrinter{}).Print(expr)
}

func (printer *InfixPrinter) Print(expr Expr) string {
	if expr == nil {
		return "<nil>"
	}
	s, _ := expr.Accept(printer)
	return s.(string)
}

func (printer *InfixPrinter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	return fmt.Sprintf("(%s %s %s)", printer.Print(expr.Lhs), expr.Op, printer.Print(expr.Rhs)), nil
}

func (printer *InfixPrinter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	return literalString(expr), nil
}

func (printer *InfixPrinter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	return fmt.Sprintf("%s(%s)", expr.Fn, printer.Print(expr.Operand)), nil
}

func (printer *InfixPrinter) VisitVariableExpr(expr *VariableExpr) (interface{}, error) {
	return expr.Name, nil
}

// TreePrinter writes a tree in prefix form, "(+ 1 (sin x))", which shows how
// the parser grouped the operands.
type TreePrinter struct{}

// TreeString returns the prefix form of expr.
func TreeString(expr Expr) string {
	return (&TreePrinter{}).Print(expr)
}

func (printer *TreePrinter) Print(expr Expr) string {
	if expr == nil {
		return "<nil>"
	}
	s, _ := expr.Accept(printer)
	return s.(string)
}

func (printer *TreePrinter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	return fmt.Sprintf("(%s %s %s)", expr.Op, printer.Print(expr.Lhs), printer.Print(expr.Rhs)), nil
}

func (printer *TreePrinter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	return literalString(expr), nil
}

func (printer *TreePrinter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	return fmt.Sprintf("(%s %s)", expr.Fn, printer.Print(expr.Operand)), nil
}

func (printer *TreePrinter) VisitVariableExpr(expr *VariableExpr) (interface{}, error) {
	return expr.Name, nil
}

func literalString(expr *LiteralExpr) string {
	if expr.Const != "" {
		return expr.Const
	}
	return FormatNumber(expr.Val)
}
