package quant

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of xs, nil on an empty series.
func Mean(xs []float64) *float64 {
	if len(xs) == 0 {
		return nil
	}
	return finite(stat.Mean(xs, nil))
}

// Variance returns the population variance of xs, nil on an empty series.
func Variance(xs []float64) *float64 {
	if len(xs) == 0 {
		return nil
	}
	return finite(stat.PopVariance(xs, nil))
}

// StdDev returns the population standard deviation of xs, nil on an empty
// series.
func StdDev(xs []float64) *float64 {
	if len(xs) == 0 {
		return nil
	}
	return finite(stat.PopStdDev(xs, nil))
}

// Covariance returns the population covariance of x and y:
// Σ((x_i−mean(x))(y_i−mean(y)))/n. Nil when the series are empty or of
// unequal length. gonum only ships the sample (n−1) estimator, and beta
// needs cov and var over the same denominator, so this stays hand-written.
func Covariance(x, y []float64) *float64 {
	n := len(x)
	if n == 0 || n != len(y) {
		return nil
	}
	mx := stat.Mean(x, nil)
	my := stat.Mean(y, nil)
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += (x[i] - mx) * (y[i] - my)
	}
	return finite(sum / float64(n))
}

// DownsideDeviation returns the root-mean-square of min(0, r−target) over
// all returns, nil on an empty series.
func DownsideDeviation(returns []float64, target float64) *float64 {
	if len(returns) == 0 {
		return nil
	}
	sumSq := 0.0
	for _, r := range returns {
		if d := r - target; d < 0 {
			sumSq += d * d
		}
	}
	return finite(math.Sqrt(sumSq / float64(len(returns))))
}

// CAGR returns the compound annual growth rate (end/start)^(1/periods)−1.
// Nil when start ≤ 0 or periods ≤ 0, or when the result is not finite.
func CAGR(end, start, periods float64) *float64 {
	if start <= 0 || periods <= 0 {
		return nil
	}
	return finite(math.Pow(end/start, 1/periods) - 1)
}

// PctChange returns the fractional change from previous to current,
// relative to the magnitude of previous. Nil when either operand is
// absent or previous is zero.
func PctChange(current, previous *float64) *float64 {
	if current == nil || previous == nil || *previous == 0 {
		return nil
	}
	return finite((*current - *previous) / math.Abs(*previous))
}

// Returns derives the period-over-period fractional change series from a
// price history. Pairs with a non-positive previous price are skipped, so
// the result may be shorter than len(prices)−1.
func Returns(prices []float64) []float64 {
	if len(prices) < 2 {
		return nil
	}
	returns := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] > 0 {
			returns = append(returns, (prices[i]-prices[i-1])/prices[i-1])
		}
	}
	if len(returns) == 0 {
		return nil
	}
	return returns
}
