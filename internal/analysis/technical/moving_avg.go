package technical

import (
	"github.com/finsight/finsight/internal/quant"
	"github.com/finsight/finsight/pkg/models"
)

// SMA calculates the Simple Moving Average for the given period. The
// returned slice is aligned to the input; entries before index period−1
// are undefined. Nil when fewer than period points exist.
func SMA(data []float64, period int) []float64 {
	n := len(data)
	if period <= 0 || n < period {
		return nil
	}

	result := make([]float64, n)
	sum := 0.0
	for i := 0; i < period; i++ {
		sum += data[i]
	}
	result[period-1] = sum / float64(period)

	for i := period; i < n; i++ {
		sum += data[i] - data[i-period]
		result[i] = sum / float64(period)
	}

	return result
}

// SMALatest returns the most recent SMA value, nil on insufficient data.
func SMALatest(data []float64, period int) *float64 {
	vals := SMA(data, period)
	if len(vals) == 0 {
		return nil
	}
	return quant.Ptr(vals[len(vals)-1])
}

// EMA calculates the Exponential Moving Average: seeded with the SMA of
// the first period values, then EMA_t = price_t·k + EMA_{t−1}·(1−k) with
// k = 2/(period+1). Alignment matches SMA; nil on insufficient data.
func EMA(data []float64, period int) []float64 {
	n := len(data)
	if period <= 0 || n < period {
		return nil
	}

	ema := make([]float64, n)
	k := 2.0 / float64(period+1)

	sum := 0.0
	for i := 0; i < period; i++ {
		sum += data[i]
	}
	ema[period-1] = sum / float64(period)

	for i := period; i < n; i++ {
		ema[i] = data[i]*k + ema[i-1]*(1-k)
	}

	return ema
}

// EMALatest returns the most recent EMA value, nil on insufficient data.
func EMALatest(data []float64, period int) *float64 {
	vals := EMA(data, period)
	if len(vals) == 0 {
		return nil
	}
	return quant.Ptr(vals[len(vals)-1])
}

// WMA calculates the Weighted Moving Average; more recent prices get
// higher weight. Nil on insufficient data.
func WMA(data []float64, period int) []float64 {
	n := len(data)
	if period <= 0 || n < period {
		return nil
	}

	result := make([]float64, n)
	denominator := float64(period * (period + 1) / 2)

	for i := period - 1; i < n; i++ {
		weightedSum := 0.0
		for j := 0; j < period; j++ {
			weightedSum += data[i-period+1+j] * float64(j+1)
		}
		result[i] = weightedSum / denominator
	}

	return result
}

// WMALatest returns the most recent WMA value, nil on insufficient data.
func WMALatest(data []float64, period int) *float64 {
	vals := WMA(data, period)
	if len(vals) == 0 {
		return nil
	}
	return quant.Ptr(vals[len(vals)-1])
}

// VWAP calculates the running Volume Weighted Average Price across the
// whole series. Nil for an empty series.
func VWAP(points []models.PricePoint) []float64 {
	n := len(points)
	if n == 0 {
		return nil
	}

	result := make([]float64, n)
	cumVolume := 0.0
	cumTPV := 0.0

	for i := 0; i < n; i++ {
		tp := (points[i].High + points[i].Low + points[i].Close) / 3
		vol := float64(points[i].Volume)
		cumTPV += tp * vol
		cumVolume += vol
		if cumVolume > 0 {
			result[i] = cumTPV / cumVolume
		}
	}

	return result
}

// VWAPLatest returns the most recent VWAP value, nil when the series is
// empty or carries no volume.
func VWAPLatest(points []models.PricePoint) *float64 {
	vals := VWAP(points)
	if len(vals) == 0 || vals[len(vals)-1] == 0 {
		return nil
	}
	return quant.Ptr(vals[len(vals)-1])
}

// RelativeVolume is current volume over average volume, absent when
// either operand is missing or the average is zero.
func RelativeVolume(current, average *float64) *float64 {
	return quant.SafeDiv(current, average)
}
