package quant

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeDiv(t *testing.T) {
	got := SafeDiv(Ptr(10), Ptr(4))
	require.NotNil(t, got)
	assert.InDelta(t, 2.5, *got, 1e-12)

	assert.Nil(t, SafeDiv(nil, Ptr(4)))
	assert.Nil(t, SafeDiv(Ptr(10), nil))
	assert.Nil(t, SafeDiv(Ptr(10), Ptr(0)))
}

func TestSafeMulAddSub(t *testing.T) {
	got := SafeMul(Ptr(3), Ptr(-2))
	require.NotNil(t, got)
	assert.Equal(t, -6.0, *got)
	assert.Nil(t, SafeMul(nil, Ptr(2)))

	sum := SafeAdd(Ptr(1), Ptr(2), Ptr(3.5))
	require.NotNil(t, sum)
	assert.Equal(t, 6.5, *sum)
	assert.Nil(t, SafeAdd(Ptr(1), nil, Ptr(3)))
	assert.Nil(t, SafeAdd())

	diff := SafeSub(Ptr(5), Ptr(7))
	require.NotNil(t, diff)
	assert.Equal(t, -2.0, *diff)
	assert.Nil(t, SafeSub(Ptr(5), nil))
}

func TestSafeOpsNeverReturnNonFinite(t *testing.T) {
	huge := math.MaxFloat64
	assert.Nil(t, SafeMul(Ptr(huge), Ptr(huge)))
	assert.Nil(t, SafeAdd(Ptr(huge), Ptr(huge)))
}

func TestMeanVarianceStdDev(t *testing.T) {
	xs := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	m := Mean(xs)
	require.NotNil(t, m)
	assert.InDelta(t, 5.0, *m, 1e-12)

	// Population variance of the classic example is exactly 4.
	v := Variance(xs)
	require.NotNil(t, v)
	assert.InDelta(t, 4.0, *v, 1e-12)

	sd := StdDev(xs)
	require.NotNil(t, sd)
	assert.InDelta(t, 2.0, *sd, 1e-12)

	assert.Nil(t, Mean(nil))
	assert.Nil(t, Variance([]float64{}))
	assert.Nil(t, StdDev(nil))
}

func TestCovariance(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{2, 4, 6, 8}

	cov := Covariance(x, y)
	require.NotNil(t, cov)
	// cov(x, 2x) = 2·var(x); population var of 1..4 is 1.25.
	assert.InDelta(t, 2.5, *cov, 1e-12)

	// cov(x, x) must equal var(x).
	cxx := Covariance(x, x)
	vx := Variance(x)
	require.NotNil(t, cxx)
	require.NotNil(t, vx)
	assert.InDelta(t, *vx, *cxx, 1e-12)

	assert.Nil(t, Covariance(x, []float64{1, 2}))
	assert.Nil(t, Covariance(nil, nil))
}

func TestDownsideDeviation(t *testing.T) {
	returns := []float64{0.02, -0.01, 0.03, -0.02}

	dd := DownsideDeviation(returns, 0)
	require.NotNil(t, dd)
	want := math.Sqrt((0.01*0.01 + 0.02*0.02) / 4)
	assert.InDelta(t, want, *dd, 1e-12)

	// All returns above target: deviation is zero, not absent.
	zero := DownsideDeviation([]float64{0.01, 0.02}, 0)
	require.NotNil(t, zero)
	assert.Equal(t, 0.0, *zero)

	assert.Nil(t, DownsideDeviation(nil, 0))
}

func TestCAGR(t *testing.T) {
	g := CAGR(200, 100, 5)
	require.NotNil(t, g)
	assert.InDelta(t, math.Pow(2, 0.2)-1, *g, 1e-12)

	assert.Nil(t, CAGR(200, 0, 5))
	assert.Nil(t, CAGR(200, -10, 5))
	assert.Nil(t, CAGR(200, 100, 0))
	// Negative terminal value drives the radicand negative; absent, not NaN.
	assert.Nil(t, CAGR(-50, 100, 3))
}

func TestPctChange(t *testing.T) {
	g := PctChange(Ptr(110), Ptr(100))
	require.NotNil(t, g)
	assert.InDelta(t, 0.10, *g, 1e-12)

	// Change relative to a negative base uses its magnitude.
	g = PctChange(Ptr(-50), Ptr(-100))
	require.NotNil(t, g)
	assert.InDelta(t, 0.50, *g, 1e-12)

	assert.Nil(t, PctChange(Ptr(110), Ptr(0)))
	assert.Nil(t, PctChange(nil, Ptr(100)))
}

func TestReturns(t *testing.T) {
	rets := Returns([]float64{100, 110, 99})
	require.Len(t, rets, 2)
	assert.InDelta(t, 0.10, rets[0], 1e-12)
	assert.InDelta(t, -0.10, rets[1], 1e-12)

	// Non-positive previous prices are skipped.
	rets = Returns([]float64{0, 100, 110})
	require.Len(t, rets, 1)
	assert.InDelta(t, 0.10, rets[0], 1e-12)

	assert.Nil(t, Returns([]float64{100}))
	assert.Nil(t, Returns(nil))
}
