package symb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaylor(t *testing.T) {
	testCases := []struct {
		src    string
		terms  int
		point  float64
		coeffs []float64
	}{
		{"exp(x)", 5, 0, []float64{1, 1, 1.0 / 2, 1.0 / 6, 1.0 / 24}},
		{"sin(x)", 4, 0, []float64{0, 1, 0, -1.0 / 6}},
		{"cos(x)", 5, 0, []float64{1, 0, -1.0 / 2, 0, 1.0 / 24}},
		{"x^2", 3, 1, []float64{1, 2, 1}},
		{"x^3 + 2*x", 5, 0, []float64{0, 2, 0, 1, 0}},
		{"5", 3, 2, []float64{5, 0, 0}},
		{"log(x)", 3, 1, []float64{0, 1, -1.0 / 2}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		coeffs, err := Taylor(mustParse(t, tc.src), tc.terms, tc.point, "x")
		if assert.NoError(err, tc.src) && assert.Len(coeffs, tc.terms, tc.src) {
			for n := range coeffs {
				assert.InDelta(tc.coeffs[n], coeffs[n], 1e-6, "%s: coefficient %d", tc.src, n)
			}
		}
	}
}

func TestTaylorError(t *testing.T) {
	assert := assert.New(t)

	_, err := Taylor(mustParse(t, "x"), 0, 0, "x")
	assert.ErrorIs(err, ErrInvalidTerms)

	_, err = Taylor(mustParse(t, "x"), -3, 0, "x")
	assert.ErrorIs(err, ErrInvalidTerms)

	_, err = Taylor(mustParse(t, "x*y"), 2, 0, "x")
	var evalErr *EvalError
	assert.ErrorAs(err, &evalErr)

	_, err = Taylor(NewUnaryExpr("sqrt", NewVariableExpr("x")), 2, 1, "x")
	assert.EqualError(err, "Error at 'sqrt(1)': Unknown function 'sqrt'.")
}

func TestSeriesString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("1*(x-0)^0+0.5*(x-0)^1+O((x-0)^2)", SeriesString([]float64{1, 0.5}, 0, "x"))
	assert.Equal("4*(t-2)^0+O((t-2)^1)", SeriesString([]float64{4}, 2, "t"))
	assert.Equal("O((x-1.5)^0)", SeriesString(nil, 1.5, "x"))

	coeffs, err := Taylor(mustParse(t, "exp(x)"), 3, 0, "x")
	assert.NoError(err)
	assert.Equal("1*(x-0)^0+1*(x-0)^1+0.5*(x-0)^2+O((x-0)^3)", SeriesString(coeffs, 0, "x"))
}
