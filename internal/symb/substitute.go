package symb

import "sort"

// Substituter replaces a variable with another tree. This struct implements
// ExprVisitor
type Substituter struct {
	name        string
	replacement Expr
}

// NewSubstituter creates a substituter that puts replacement in place of the
// variable with the given name
func NewSubstituter(replacement Expr, name string) *Substituter {
	return &Substituter{name, replacement}
}

// Substitute returns expr with every occurrence of the variable name replaced
// by replacement. The replacement tree is shared, not copied.
func Substitute(expr Expr, replacement Expr, name string) Expr {
	return NewSubstituter(replacement, name).Substitute(expr)
}

func (s *Substituter) Substitute(expr Expr) Expr {
	// none of the visit methods fail
	out, _ := expr.Accept(s)
	return out.(Expr)
}

func (s *Substituter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	return NewBinaryExpr(expr.Op, s.Substitute(expr.Lhs), s.Substitute(expr.Rhs)), nil
}

func (s *Substituter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	return expr, nil
}

func (s *Substituter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	return NewUnaryExpr(expr.Fn, s.Substitute(expr.Operand)), nil
}

func (s *Substituter) VisitVariableExpr(expr *VariableExpr) (interface{}, error) {
	if expr.Name == s.name {
		return s.replacement, nil
	}
	return expr, nil
}

// Variables returns the sorted names of the free variables in expr.
func Variables(expr Expr) []string {
	seen := make(map[string]bool)
	collectVariables(expr, seen)
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func collectVariables(expr Expr, seen map[string]bool) {
	switch expr := expr.(type) {
	case *VariableExpr:
		seen[expr.Name] = true
	case *UnaryExpr:
		collectVariables(expr.Operand, seen)
	case *BinaryExpr:
		collectVariables(expr.Lhs, seen)
		collectVariables(expr.Rhs, seen)
	}
}
