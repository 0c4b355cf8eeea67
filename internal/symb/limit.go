package symb

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
)

// DefaultMaxLHopital is how many times Limit applies L'Hôpital's rule before
// giving up.
const DefaultMaxLHopital = 10

// Limiter computes limits of expressions of a single variable.
type Limiter struct {
	maxLHopital int
}

// NewLimiter creates a limiter that applies L'Hôpital's rule at most
// maxLHopital times along any path of the computation.
func NewLimiter(maxLHopital int) *Limiter {
	return &Limiter{maxLHopital}
}

// Limit computes the limit of expr as the variable name approaches point.
func Limit(expr Expr, point float64, name string) (float64, bool, error) {
	return NewLimiter(DefaultMaxLHopital).Limit(expr, point, name)
}

// Limit computes the limit of expr as the variable name approaches point. The
// boolean is false when no finite limit could be established, which is not an
// error. Errors are returned for expressions with other free variables, for
// unknown functions, and when L'Hôpital's rule had to be applied too often.
func (l *Limiter) Limit(expr Expr, point float64, name string) (float64, bool, error) {
	for _, v := range Variables(expr) {
		if v != name {
			return 0, false, NewUnsupportedError("limit", fmt.Sprintf("Unknown variable '%s'.", v))
		}
	}
	return l.limit(expr, point, name, 0)
}

func (l *Limiter) limit(expr Expr, point float64, name string, depth int) (float64, bool, error) {
	if val, ok := probe(expr, point, name); ok {
		return val, true, nil
	}

	switch expr := expr.(type) {
	case *LiteralExpr:
		val, err := Evaluate(expr)
		if err != nil {
			return 0, false, err
		}
		return val, isFinite(val), nil
	case *VariableExpr:
		if expr.Name != name {
			return 0, false, NewUnsupportedError("limit", fmt.Sprintf("Unknown variable '%s'.", expr.Name))
		}
		return point, isFinite(point), nil
	case *UnaryExpr:
		inner, ok, err := l.limit(expr.Operand, point, name, depth)
		if err != nil || !ok {
			return 0, false, err
		}
		val, err := Evaluate(fn(expr.Fn, num(inner)))
		if err != nil {
			return 0, false, err
		}
		return val, isFinite(val), nil
	case *BinaryExpr:
		return l.binary(expr, point, name, depth)
	}
	return 0, false, NewUnsupportedError("limit", "Malformed expression.")
}

// binary brings every binary operator down to a quotient, so that L'Hôpital's
// rule is the only thing that resolves indeterminate forms.
func (l *Limiter) binary(expr *BinaryExpr, point float64, name string, depth int) (float64, bool, error) {
	a, b := expr.Lhs, expr.Rhs
	switch expr.Op {
	case opDiv:
		return l.quotient(a, b, point, name, depth)
	case opAdd, opSub, opMul:
		// the operands may have limits of their own
		if val, ok, err := l.split(expr, point, name, depth); err != nil || ok {
			return val, ok, err
		}
		var rewritten Expr
		if expr.Op == opMul {
			// a*b = a/(1/b)
			rewritten = bin(opDiv, a, bin(opDiv, num(1), b))
		} else {
			// a±b = (a/b±1)/(1/b)
			rewritten = bin(opDiv, bin(expr.Op, bin(opDiv, a, b), num(1)), bin(opDiv, num(1), b))
		}
		log.WithFields(log.Fields{"from": Infixify(expr), "to": Infixify(rewritten)}).Debug("rewriting limit as a quotient")
		return l.limit(rewritten, point, name, depth)
	case opPow:
		// a^b = exp(b*log(a))
		return l.limit(fn(fnExp, bin(opMul, b, fn(fnLog, a))), point, name, depth)
	}
	return 0, false, NewUnsupportedError("limit", fmt.Sprintf("Unknown operator '%s'.", expr.Op))
}

// split combines the limits of both operands when both of them exist.
func (l *Limiter) split(expr *BinaryExpr, point float64, name string, depth int) (float64, bool, error) {
	lhs, ok, err := l.limit(expr.Lhs, point, name, depth)
	if err != nil || !ok {
		return 0, false, err
	}
	rhs, ok, err := l.limit(expr.Rhs, point, name, depth)
	if err != nil || !ok {
		return 0, false, err
	}
	val := binaryFuncs[expr.Op](lhs, rhs)
	return val, isFinite(val), nil
}

// quotient classifies numer/denom by what happens when the point is put into
// each of them.
func (l *Limiter) quotient(numer, denom Expr, point float64, name string, depth int) (float64, bool, error) {
	nv, nok := probe(numer, point, name)
	dv, dok := probe(denom, point, name)
	switch {
	case nok && dok:
		if dv != 0 {
			val := nv / dv
			return val, isFinite(val), nil
		}
		if nv != 0 {
			// a pole
			return 0, false, nil
		}
		return l.lhopital(numer, denom, point, name, depth)
	case dok:
		return 0, false, nil
	case nok:
		return 0, true, nil
	}
	return l.lhopital(numer, denom, point, name, depth)
}

func (l *Limiter) lhopital(numer, denom Expr, point float64, name string, depth int) (float64, bool, error) {
	if depth >= l.maxLHopital {
		return 0, false, ErrLHopitalDepth
	}
	dnum, err := Diff(numer, name)
	if err != nil {
		return 0, false, err
	}
	dden, err := Diff(denom, name)
	if err != nil {
		return 0, false, err
	}
	log.WithFields(log.Fields{
		"numerator":   Infixify(dnum),
		"denominator": Infixify(dden),
		"depth":       depth + 1,
	}).Debug("applying L'Hôpital's rule")
	return l.limit(bin(opDiv, dnum, dden), point, name, depth+1)
}

// probe evaluates expr at point. It fails when the tree can not be evaluated
// or the value is not finite.
func probe(expr Expr, point float64, name string) (float64, bool) {
	val, err := Evaluate(Substitute(expr, num(point), name))
	if err != nil || !isFinite(val) {
		return 0, false
	}
	return val, true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
