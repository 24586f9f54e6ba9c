package technical

import (
	"gonum.org/v1/gonum/stat"

	"github.com/finsight/finsight/internal/quant"
)

// TrendSlope fits an ordinary least-squares line through the last period
// closes and returns the slope normalized by the window's mean price, so
// the value reads as fractional drift per bar and is comparable across
// price levels. Nil when fewer than period points exist or the mean price
// is zero.
func TrendSlope(data []float64, period int) *float64 {
	if period <= 1 {
		period = DefaultTrendPeriod
	}
	n := len(data)
	if n < period {
		return nil
	}

	window := data[n-period:]
	xs := make([]float64, period)
	for i := range xs {
		xs[i] = float64(i)
	}

	_, slope := stat.LinearRegression(xs, window, nil, false)
	mean := stat.Mean(window, nil)
	return quant.SafeDiv(quant.Ptr(slope), quant.Ptr(mean))
}
