package symb

import "fmt"

// Diff returns the derivative of expr with respect to the variable name. The
// result is simplified.
//
// Powers are differentiated as a^b = exp(b*log(a)), which is only valid where
// a is positive.
func Diff(expr Expr, name string) (Expr, error) {
	var d Expr
	switch expr := expr.(type) {
	case *LiteralExpr:
		d = num(0)
	case *VariableExpr:
		if expr.Name == name {
			d = num(1)
		} else {
			d = num(0)
		}
	case *UnaryExpr:
		outer, ok := derivatives[expr.Fn]
		if !ok {
			return nil, NewUnsupportedError("derivative", fmt.Sprintf("Unknown function '%s'.", expr.Fn))
		}
		inner, err := Diff(expr.Operand, name)
		if err != nil {
			return nil, err
		}
		// chain rule
		d = bin(opMul, inner, outer(expr.Operand))
	case *BinaryExpr:
		var err error
		if d, err = diffBinary(expr, name); err != nil {
			return nil, err
		}
	default:
		return nil, NewUnsupportedError("derivative", "Malformed expression.")
	}
	return Simplify(d), nil
}

func diffBinary(expr *BinaryExpr, name string) (Expr, error) {
	if expr.Op == opPow {
		return Diff(fn(fnExp, bin(opMul, expr.Rhs, fn(fnLog, expr.Lhs))), name)
	}

	u, v := expr.Lhs, expr.Rhs
	du, err := Diff(u, name)
	if err != nil {
		return nil, err
	}
	dv, err := Diff(v, name)
	if err != nil {
		return nil, err
	}

	switch expr.Op {
	case opAdd, opSub:
		return bin(expr.Op, du, dv), nil
	case opMul:
		return bin(opAdd, bin(opMul, du, v), bin(opMul, u, dv)), nil
	case opDiv:
		return bin(opDiv, bin(opSub, bin(opMul, du, v), bin(opMul, u, dv)), bin(opPow, v, num(2))), nil
	}
	return nil, NewUnsupportedError("derivative", fmt.Sprintf("Unknown operator '%s'.", expr.Op))
}

// DiffN differentiates expr n times with respect to the variable name. For n
// less than one expr is returned as it is.
func DiffN(expr Expr, name string, n int) (Expr, error) {
	var err error
	for i := 0; i < n; i++ {
		if expr, err = Diff(expr, name); err != nil {
			return nil, err
		}
	}
	return expr, nil
}
