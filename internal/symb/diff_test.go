package symb

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalAt(t *testing.T, expr Expr, name string, point float64) float64 {
	t.Helper()
	val, err := Evaluate(Substitute(expr, num(point), name))
	require.NoError(t, err, Infixify(expr))
	return val
}

func TestDiff(t *testing.T) {
	testCases := []struct {
		src string
		out string
	}{
		{"5", "0"},
		{"pi", "0"},
		{"x", "1"},
		{"y", "0"},
		{"2*x", "2"},
		{"x+y", "1"},
		{"x^3", "(3 * (x ^ 2))"},
		{"sin(x)", "cos(x)"},
		{"cos(x)", "-(sin(x))"},
		{"exp(x)", "exp(x)"},
		{"log(x)", "(x ^ -1)"},
		{"sin(2*x)", "(2 * cos((2 * x)))"},
		{"-x", "-1"},
		{"x*y", "y"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		d, err := Diff(mustParse(t, tc.src), "x")
		if assert.NoError(err, tc.src) {
			assert.Equal(tc.out, Infixify(d), tc.src)
		}
	}
}

func TestDiffN(t *testing.T) {
	assert := assert.New(t)

	d, err := DiffN(mustParse(t, "x^3"), "x", 2)
	assert.NoError(err)
	assert.Equal("(6 * x)", Infixify(d))

	d, err = DiffN(mustParse(t, "sin(x)"), "x", 4)
	assert.NoError(err)
	assert.Equal("sin(x)", Infixify(d))

	expr := mustParse(t, "x+1")
	d, err = DiffN(expr, "x", 0)
	assert.NoError(err)
	assert.Same(expr, d)
}

func TestDiffUnsupported(t *testing.T) {
	assert := assert.New(t)

	_, err := Diff(NewUnaryExpr("sqrt", NewVariableExpr("x")), "x")
	var unsupported *UnsupportedError
	assert.ErrorAs(err, &unsupported)
	assert.EqualError(err, "Unsupported derivative: Unknown function 'sqrt'.")

	_, err = Diff(NewBinaryExpr("%", NewVariableExpr("x"), num(2)), "x")
	assert.ErrorAs(err, &unsupported)
}

func TestDiffMatchesCentralDifference(t *testing.T) {
	const h = 1e-5
	testCases := []struct {
		src   string
		f     func(float64) float64
		point float64
	}{
		{"sin(x)", math.Sin, 0.7},
		{"x^3", func(x float64) float64 { return x * x * x }, 1.5},
		{"exp(x)", math.Exp, 0.3},
		{"log(x)", math.Log, 2.0},
		{"x*sin(x)", func(x float64) float64 { return x * math.Sin(x) }, 1.2},
		{"1/(1+x^2)", func(x float64) float64 { return 1 / (1 + x*x) }, 0.8},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		d, err := Diff(mustParse(t, tc.src), "x")
		if !assert.NoError(err, tc.src) {
			continue
		}
		want := (tc.f(tc.point+h) - tc.f(tc.point-h)) / (2 * h)
		assert.InDelta(want, evalAt(t, d, "x", tc.point), 1e-4, tc.src)
	}
}

func TestDiffIsLinear(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	polynomial := func() string {
		return fmt.Sprintf("%d*x^%d + %d*sin(x) + %d",
			rng.Intn(9)+1, rng.Intn(4)+1, rng.Intn(9)+1, rng.Intn(9))
	}

	assert := assert.New(t)
	for i := 0; i < 20; i++ {
		fsrc, gsrc := polynomial(), polynomial()
		dsum, err := Diff(mustParse(t, fmt.Sprintf("(%s) + (%s)", fsrc, gsrc)), "x")
		require.NoError(t, err)
		df, err := Diff(mustParse(t, fsrc), "x")
		require.NoError(t, err)
		dg, err := Diff(mustParse(t, gsrc), "x")
		require.NoError(t, err)

		for _, point := range []float64{0.5, 1.3, 2.1} {
			want := evalAt(t, df, "x", point) + evalAt(t, dg, "x", point)
			assert.InDelta(want, evalAt(t, dsum, "x", point), 1e-4, "%s, %s", fsrc, gsrc)
		}
	}
}
