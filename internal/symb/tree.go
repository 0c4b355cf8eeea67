package symb

func num(v float64) Expr {
	return NewLiteralExpr(v, "")
}

func neg(operand Expr) Expr {
	return NewUnaryExpr(fnNeg, operand)
}

func fn(name string, operand Expr) Expr {
	return NewUnaryExpr(name, operand)
}

func bin(op string, lhs, rhs Expr) Expr {
	return NewBinaryExpr(op, lhs, rhs)
}

// Equal reports whether two trees have the same shape, the same operators and
// the same leaves. Literal values are compared exactly.
func Equal(a, b Expr) bool {
	switch a := a.(type) {
	case *LiteralExpr:
		b, ok := b.(*LiteralExpr)
		if !ok || a.Const != b.Const {
			return false
		}
		return a.Const != "" || a.Val == b.Val
	case *VariableExpr:
		b, ok := b.(*VariableExpr)
		return ok && a.Name == b.Name
	case *UnaryExpr:
		b, ok := b.(*UnaryExpr)
		return ok && a.Fn == b.Fn && Equal(a.Operand, b.Operand)
	case *BinaryExpr:
		b, ok := b.(*BinaryExpr)
		return ok && a.Op == b.Op && Equal(a.Lhs, b.Lhs) && Equal(a.Rhs, b.Rhs)
	}
	return false
}

// isNum reports whether e is the plain number v (named constants never match).
func isNum(e Expr, v float64) bool {
	lit, ok := e.(*LiteralExpr)
	return ok && lit.Const == "" && lit.Val == v
}

func isLiteral(e Expr) bool {
	_, ok := e.(*LiteralExpr)
	return ok
}

func asBinary(e Expr, ops ...string) (*BinaryExpr, bool) {
	b, ok := e.(*BinaryExpr)
	if !ok {
		return nil, false
	}
	for _, op := range ops {
		if b.Op == op {
			return b, true
		}
	}
	return nil, false
}

func asUnary(e Expr, name string) (*UnaryExpr, bool) {
	u, ok := e.(*UnaryExpr)
	if !ok || u.Fn != name {
		return nil, false
	}
	return u, true
}
