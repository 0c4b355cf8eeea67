package symb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Taylor returns the first terms coefficients of the Taylor series of expr
// around point. Coefficient n is the n-th derivative at point divided by n!.
// Derivatives are taken symbolically and the point is substituted afterwards.
func Taylor(expr Expr, terms int, point float64, name string) ([]float64, error) {
	if terms < 1 {
		return nil, ErrInvalidTerms
	}

	coeffs := make([]float64, 0, terms)
	deriv := expr
	factorial := 1.0
	for n := 0; n < terms; n++ {
		if n > 0 {
			var err error
			if deriv, err = Diff(deriv, name); err != nil {
				return nil, err
			}
			factorial *= float64(n)
		}
		val, err := Evaluate(Substitute(deriv, num(point), name))
		if err != nil {
			return nil, err
		}
		coeffs = append(coeffs, val/factorial)
	}
	return coeffs, nil
}

// SeriesString writes coefficients as a truncated power series in
// (name-point), ending with the order of the first omitted term.
func SeriesString(coeffs []float64, point float64, name string) string {
	base := fmt.Sprintf("(%s-%s)", name, FormatNumber(point))
	terms := lo.Map(coeffs, func(c float64, n int) string {
		return fmt.Sprintf("%s*%s^%d", FormatNumber(c), base, n)
	})
	terms = append(terms, fmt.Sprintf("O(%s^%d)", base, len(coeffs)))
	return strings.Join(terms, "+")
}

// FormatNumber writes v with as few digits as needed to read it back.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
