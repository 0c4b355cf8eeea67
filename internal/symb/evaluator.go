package symb

import (
	"fmt"
	"math"
	"strconv"
)

// Evaluator reduces a tree without free variables to a number. This struct
// implements ExprVisitor
type Evaluator struct{}

// NewEvaluator creates a new evaluator
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate computes the value of a tree without free variables.
func Evaluate(expr Expr) (float64, error) {
	return NewEvaluator().Evaluate(expr)
}

// Evaluate computes the value of expr. Arithmetic follows IEEE-754, so a
// division by zero gives an infinity rather than an error. Function results
// are rounded to 6 decimal places.
func (ev *Evaluator) Evaluate(expr Expr) (float64, error) {
	if expr == nil {
		return 0, NewEvalError(expr, "Empty expression.")
	}
	val, err := expr.Accept(ev)
	if err != nil {
		return 0, err
	}
	return val.(float64), nil
}

func (ev *Evaluator) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	lhs, err := ev.Evaluate(expr.Lhs)
	if err != nil {
		return nil, err
	}
	rhs, err := ev.Evaluate(expr.Rhs)
	if err != nil {
		return nil, err
	}
	op, ok := binaryFuncs[expr.Op]
	if !ok {
		return nil, NewEvalError(expr, fmt.Sprintf("Unknown operator '%s'.", expr.Op))
	}
	return op(lhs, rhs), nil
}

func (ev *Evaluator) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	if expr.Const == "" {
		return expr.Val, nil
	}
	val, ok := constants[expr.Const]
	if !ok {
		return nil, NewEvalError(expr, fmt.Sprintf("Unknown constant '%s'.", expr.Const))
	}
	return val, nil
}

func (ev *Evaluator) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	operand, err := ev.Evaluate(expr.Operand)
	if err != nil {
		return nil, err
	}
	f, ok := unaryFuncs[expr.Fn]
	if !ok {
		return nil, NewEvalError(expr, fmt.Sprintf("Unknown function '%s'.", expr.Fn))
	}
	return round6(f(operand)), nil
}

func (ev *Evaluator) VisitVariableExpr(expr *VariableExpr) (interface{}, error) {
	return nil, NewEvalError(expr, fmt.Sprintf("Free variable '%s'.", expr.Name))
}

// round6 rounds to 6 decimal places the way a decimal conversion does, ties
// are decided by the exact binary value.
func round6(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 6, 64), 64)
	if err != nil {
		return x
	}
	return r
}
