package symb

// Simplify rewrites expr bottom-up with a fixed list of algebraic identities.
// Children are simplified first, then the rules for the node are tried in
// order and the result of the first one that applies is simplified again.
//
// The result is not a canonical form: two equal expressions can simplify to
// different trees. Rules only ever move literals to the left of "+" and "*",
// nest sums and products to the left, and turn divisions into products with
// negative powers, which is what keeps the rewriting from going in circles.
func Simplify(expr Expr) Expr {
	switch expr := expr.(type) {
	case *UnaryExpr:
		return simplifyUnary(expr.Fn, Simplify(expr.Operand))
	case *BinaryExpr:
		return simplifyBinary(expr.Op, Simplify(expr.Lhs), Simplify(expr.Rhs))
	}
	return expr
}

func simplifyUnary(name string, arg Expr) Expr {
	if name == fnPos {
		return arg
	}
	if isLiteral(arg) {
		if folded, ok := fold(fn(name, arg)); ok {
			return folded
		}
	}

	switch name {
	case fnNeg:
		// -(-x) = x
		if inner, ok := asUnary(arg, fnNeg); ok {
			return inner.Operand
		}
		// -(a+b) = (-a)+(-b)
		if sum, ok := asBinary(arg, opAdd); ok {
			return Simplify(bin(opAdd, neg(sum.Lhs), neg(sum.Rhs)))
		}
		// -(a-b) = b-a
		if diff, ok := asBinary(arg, opSub); ok {
			return Simplify(bin(opSub, diff.Rhs, diff.Lhs))
		}
		// -(k*x) = (-k)*x
		if prod, ok := asBinary(arg, opMul); ok && isLiteral(prod.Lhs) {
			if k, ok := fold(neg(prod.Lhs)); ok {
				return Simplify(bin(opMul, k, prod.Rhs))
			}
		}
	case fnExp:
		// exp(log(x)) = x
		if inner, ok := asUnary(arg, fnLog); ok {
			return inner.Operand
		}
		// exp(a*log(b)) = b^a
		if prod, ok := asBinary(arg, opMul); ok {
			if inner, ok := asUnary(prod.Rhs, fnLog); ok {
				return Simplify(bin(opPow, inner.Operand, prod.Lhs))
			}
		}
		// exp(-log(b)) = b^-1
		if inner, ok := asUnary(arg, fnNeg); ok {
			if lg, ok := asUnary(inner.Operand, fnLog); ok {
				return Simplify(bin(opPow, lg.Operand, num(-1)))
			}
		}
	case fnLog:
		// log(exp(x)) = x
		if inner, ok := asUnary(arg, fnExp); ok {
			return inner.Operand
		}
	}
	return fn(name, arg)
}

func simplifyBinary(op string, lhs, rhs Expr) Expr {
	if isLiteral(lhs) && isLiteral(rhs) {
		if folded, ok := fold(bin(op, lhs, rhs)); ok {
			return folded
		}
	}

	var rewritten Expr
	switch op {
	case opAdd:
		rewritten = simplifyAdd(lhs, rhs)
	case opSub:
		rewritten = simplifySub(lhs, rhs)
	case opMul:
		rewritten = simplifyMul(lhs, rhs)
	case opDiv:
		rewritten = simplifyDiv(lhs, rhs)
	case opPow:
		rewritten = simplifyPow(lhs, rhs)
	}
	if rewritten != nil {
		return rewritten
	}
	return bin(op, lhs, rhs)
}

// Each of the rule functions below returns nil when no rule applies.

func simplifyAdd(lhs, rhs Expr) Expr {
	switch {
	// literals go to the left
	case isLiteral(rhs) && !isLiteral(lhs):
		return Simplify(bin(opAdd, rhs, lhs))
	case isNum(lhs, 0):
		return rhs
	}
	// a+(b±c) = (a+b)±c
	if inner, ok := asBinary(rhs, opAdd, opSub); ok {
		return Simplify(bin(inner.Op, bin(opAdd, lhs, inner.Lhs), inner.Rhs))
	}
	// a+(-b) = a-b
	if inner, ok := asUnary(rhs, fnNeg); ok {
		return Simplify(bin(opSub, lhs, inner.Operand))
	}
	// (a-b)+b = a
	if diff, ok := asBinary(lhs, opSub); ok && Equal(diff.Rhs, rhs) {
		return diff.Lhs
	}
	return nil
}

func simplifySub(lhs, rhs Expr) Expr {
	switch {
	case isNum(rhs, 0):
		return lhs
	case Equal(lhs, rhs):
		return num(0)
	}
	// a-(-b) = a+b
	if inner, ok := asUnary(rhs, fnNeg); ok {
		return Simplify(bin(opAdd, lhs, inner.Operand))
	}
	// a-(b-c) = (a+c)-b
	if inner, ok := asBinary(rhs, opSub); ok {
		return Simplify(bin(opSub, bin(opAdd, lhs, inner.Rhs), inner.Lhs))
	}
	// k-(j+x) = (k-j)-x
	if inner, ok := asBinary(rhs, opAdd); ok && isLiteral(lhs) && isLiteral(inner.Lhs) {
		return Simplify(bin(opSub, bin(opSub, lhs, inner.Lhs), inner.Rhs))
	}
	// (a+b)-b = a
	if sum, ok := asBinary(lhs, opAdd); ok && Equal(sum.Rhs, rhs) {
		return sum.Lhs
	}
	return nil
}

func simplifyMul(lhs, rhs Expr) Expr {
	switch {
	// literals go to the left
	case isLiteral(rhs) && !isLiteral(lhs):
		return Simplify(bin(opMul, rhs, lhs))
	case isNum(lhs, 0):
		return lhs
	case isNum(lhs, 1):
		return rhs
	case isNum(lhs, -1):
		return Simplify(neg(rhs))
	}
	// (-a)*b = -(a*b), a*(-b) = -(a*b)
	if inner, ok := asUnary(lhs, fnNeg); ok {
		return Simplify(neg(bin(opMul, inner.Operand, rhs)))
	}
	if inner, ok := asUnary(rhs, fnNeg); ok {
		return Simplify(neg(bin(opMul, lhs, inner.Operand)))
	}
	// a*(b*c) = (a*b)*c, a*(b/c) = (a*b)/c
	if inner, ok := asBinary(rhs, opMul, opDiv); ok {
		return Simplify(bin(inner.Op, bin(opMul, lhs, inner.Lhs), inner.Rhs))
	}
	// (a/b)*b = a
	if quot, ok := asBinary(lhs, opDiv); ok && Equal(quot.Rhs, rhs) {
		return quot.Lhs
	}

	lpow, lok := asBinary(lhs, opPow)
	rpow, rok := asBinary(rhs, opPow)
	switch {
	// x^a*x^b = x^(a+b)
	case lok && rok && Equal(lpow.Lhs, rpow.Lhs):
		return Simplify(bin(opPow, lpow.Lhs, bin(opAdd, lpow.Rhs, rpow.Rhs)))
	// x^a*x = x^(a+1)
	case lok && Equal(lpow.Lhs, rhs):
		return Simplify(bin(opPow, rhs, bin(opAdd, lpow.Rhs, num(1))))
	// x*x^b = x^(b+1)
	case rok && Equal(rpow.Lhs, lhs):
		return Simplify(bin(opPow, lhs, bin(opAdd, rpow.Rhs, num(1))))
	// x*x = x^2
	case Equal(lhs, rhs):
		return Simplify(bin(opPow, lhs, num(2)))
	}

	// (a*x^p)*x^q = a*x^(p+q), (x^p*a)*x^q = x^(p+q)*a, a bare x being x^1
	if prod, ok := asBinary(lhs, opMul); ok {
		base, exp := rhs, num(1)
		if rok {
			base, exp = rpow.Lhs, rpow.Rhs
		}
		if inner, ok := asBinary(prod.Rhs, opPow); ok && Equal(inner.Lhs, base) {
			return Simplify(bin(opMul, prod.Lhs, bin(opPow, base, bin(opAdd, inner.Rhs, exp))))
		}
		if inner, ok := asBinary(prod.Lhs, opPow); ok && Equal(inner.Lhs, base) {
			return Simplify(bin(opMul, bin(opPow, base, bin(opAdd, inner.Rhs, exp)), prod.Rhs))
		}
	}
	return nil
}

func simplifyDiv(lhs, rhs Expr) Expr {
	switch {
	case isNum(rhs, 1):
		return lhs
	case isNum(lhs, 0):
		return lhs
	case Equal(lhs, rhs):
		return num(1)
	case isNum(rhs, -1):
		return Simplify(neg(lhs))
	}
	// (-a)/b = -(a/b), a/(-b) = -(a/b)
	if inner, ok := asUnary(lhs, fnNeg); ok {
		return Simplify(neg(bin(opDiv, inner.Operand, rhs)))
	}
	if inner, ok := asUnary(rhs, fnNeg); ok {
		return Simplify(neg(bin(opDiv, lhs, inner.Operand)))
	}
	// a/(b/c) = (a*c)/b
	if inner, ok := asBinary(rhs, opDiv); ok {
		return Simplify(bin(opDiv, bin(opMul, lhs, inner.Rhs), inner.Lhs))
	}
	// k/(j*x) = (k/j)/x
	if inner, ok := asBinary(rhs, opMul); ok && isLiteral(lhs) && isLiteral(inner.Lhs) {
		return Simplify(bin(opDiv, bin(opDiv, lhs, inner.Lhs), inner.Rhs))
	}
	// (a*b)/b = a
	if prod, ok := asBinary(lhs, opMul); ok && Equal(prod.Rhs, rhs) {
		return prod.Lhs
	}

	lpow, lok := asBinary(lhs, opPow)
	rpow, rok := asBinary(rhs, opPow)
	switch {
	// x^a/x^b = x^(a-b)
	case lok && rok && Equal(lpow.Lhs, rpow.Lhs):
		return Simplify(bin(opPow, lpow.Lhs, bin(opSub, lpow.Rhs, rpow.Rhs)))
	// x^a/x = x^(a-1)
	case lok && Equal(lpow.Lhs, rhs):
		return Simplify(bin(opPow, rhs, bin(opSub, lpow.Rhs, num(1))))
	// a/x^b = a*x^(-b)
	case rok:
		return Simplify(bin(opMul, lhs, bin(opPow, rpow.Lhs, neg(rpow.Rhs))))
	}
	// a/b = a*b^-1
	return Simplify(bin(opMul, lhs, bin(opPow, rhs, num(-1))))
}

func simplifyPow(lhs, rhs Expr) Expr {
	switch {
	case isNum(rhs, 0):
		return num(1)
	case isNum(lhs, 0), isNum(lhs, 1), isNum(rhs, 1):
		return lhs
	}
	// (x^a)^b = x^(a*b)
	if inner, ok := asBinary(lhs, opPow); ok {
		return Simplify(bin(opPow, inner.Lhs, bin(opMul, inner.Rhs, rhs)))
	}
	return nil
}

// fold evaluates a node whose operands are all literals.
func fold(expr Expr) (Expr, bool) {
	val, err := Evaluate(expr)
	if err != nil {
		return nil, false
	}
	return num(val), true
}
