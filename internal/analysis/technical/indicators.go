// Package technical computes momentum, trend and volatility indicators
// from an ordered price/volume history. Every indicator that needs a
// minimum window returns nil (absent) when the series is shorter than
// required — never zero and never a panic. Returned series are aligned to
// the input with an undefined prefix before the first valid index.
package technical

import (
	"github.com/finsight/finsight/internal/quant"
	"github.com/finsight/finsight/pkg/models"
)

// Default indicator parameters.
const (
	DefaultRSIPeriod       = 14
	DefaultMACDFast        = 12
	DefaultMACDSlow        = 26
	DefaultMACDSignal      = 9
	DefaultBollingerPeriod = 20
	DefaultBollingerMult   = 2.0
	DefaultATRPeriod       = 14
	DefaultTrendPeriod     = 20
)

// RSI calculates the Relative Strength Index with Wilder's smoothing: the
// first value seeds from the simple mean of the first period gains and
// losses, subsequent values recur avg = (avg·(period−1) + current)/period.
// RSI is exactly 100 while the average loss is zero. Values before index
// period are undefined; nil when fewer than period+1 points exist.
func RSI(data []float64, period int) []float64 {
	if period <= 0 {
		period = DefaultRSIPeriod
	}
	n := len(data)
	if n < period+1 {
		return nil
	}

	rsi := make([]float64, n)
	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		change := data[i] - data[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss += -change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	rsi[period] = rsiValue(avgGain, avgLoss)

	for i := period + 1; i < n; i++ {
		change := data[i] - data[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		rsi[i] = rsiValue(avgGain, avgLoss)
	}

	return rsi
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - (100 / (1 + rs))
}

// RSILatest returns the most recent RSI value, nil on insufficient data.
func RSILatest(data []float64, period int) *float64 {
	vals := RSI(data, period)
	if len(vals) == 0 {
		return nil
	}
	return quant.Ptr(vals[len(vals)-1])
}

// MACDSeries holds the MACD line and, when the series is long enough, the
// signal line and histogram. MACD entries before ValidFrom are undefined;
// Signal/Histogram entries before SignalFrom are undefined. Signal is nil
// when the input supports the MACD line but not yet the signal line.
type MACDSeries struct {
	MACD       []float64
	Signal     []float64
	Histogram  []float64
	ValidFrom  int
	SignalFrom int
}

// MACD calculates the Moving Average Convergence Divergence:
// EMA(fast) − EMA(slow), with the signal line as an EMA(signal) over the
// valid portion of the MACD line. Needs slow points for the MACD line and
// slow+signal−1 points for the signal line; with enough data for the
// former only, a partial result (MACD line, nil signal) is returned. Nil
// when even the MACD line cannot be computed.
func MACD(data []float64, fast, slow, signal int) *MACDSeries {
	if fast <= 0 {
		fast = DefaultMACDFast
	}
	if slow <= 0 {
		slow = DefaultMACDSlow
	}
	if signal <= 0 {
		signal = DefaultMACDSignal
	}

	n := len(data)
	if n < slow {
		return nil
	}

	fastEMA := EMA(data, fast)
	slowEMA := EMA(data, slow)

	macdLine := make([]float64, n)
	for i := slow - 1; i < n; i++ {
		macdLine[i] = fastEMA[i] - slowEMA[i]
	}

	series := &MACDSeries{
		MACD:      macdLine,
		ValidFrom: slow - 1,
	}

	// Signal line runs over the defined MACD values only, so a leading
	// undefined prefix never contaminates the smoothing seed.
	valid := macdLine[slow-1:]
	if len(valid) < signal {
		return series
	}
	sigValid := EMA(valid, signal)

	signalLine := make([]float64, n)
	histogram := make([]float64, n)
	offset := slow - 1
	for i := offset + signal - 1; i < n; i++ {
		signalLine[i] = sigValid[i-offset]
		histogram[i] = macdLine[i] - signalLine[i]
	}

	series.Signal = signalLine
	series.Histogram = histogram
	series.SignalFrom = offset + signal - 1
	return series
}

// MACDLatest returns the most recent MACD values. The Signal and
// Histogram fields stay nil on a partial result; the whole snapshot is
// nil when even the MACD line is unavailable.
func MACDLatest(data []float64, fast, slow, signal int) *models.MACDSnapshot {
	series := MACD(data, fast, slow, signal)
	if series == nil {
		return nil
	}
	last := len(series.MACD) - 1
	snap := &models.MACDSnapshot{MACD: quant.Ptr(series.MACD[last])}
	if series.Signal != nil {
		snap.Signal = quant.Ptr(series.Signal[last])
		snap.Histogram = quant.Ptr(series.Histogram[last])
	}
	return snap
}

// Bollinger calculates Bollinger Bands: middle = SMA(period), upper and
// lower = middle ± mult·popStdDev over the same window. Entries before
// index period−1 are undefined; nil on insufficient data.
func Bollinger(data []float64, period int, mult float64) []models.BollingerBands {
	if period <= 0 {
		period = DefaultBollingerPeriod
	}
	if mult <= 0 {
		mult = DefaultBollingerMult
	}

	n := len(data)
	if n < period {
		return nil
	}

	result := make([]models.BollingerBands, n)
	for i := period - 1; i < n; i++ {
		window := data[i-period+1 : i+1]
		mean, _ := quant.Val(quant.Mean(window))
		sd, _ := quant.Val(quant.StdDev(window))
		result[i] = models.BollingerBands{
			Upper:  mean + mult*sd,
			Middle: mean,
			Lower:  mean - mult*sd,
		}
	}

	return result
}

// BollingerLatest returns the most recent bands, nil on insufficient data.
func BollingerLatest(data []float64, period int, mult float64) *models.BollingerBands {
	vals := Bollinger(data, period, mult)
	if len(vals) == 0 {
		return nil
	}
	latest := vals[len(vals)-1]
	return &latest
}

// ATR calculates the Average True Range with Wilder's smoothing. Entries
// before index period−1 are undefined; nil when fewer than period+1
// points exist.
func ATR(points []models.PricePoint, period int) []float64 {
	if period <= 0 {
		period = DefaultATRPeriod
	}
	n := len(points)
	if n < period+1 {
		return nil
	}

	tr := make([]float64, n)
	tr[0] = points[0].High - points[0].Low
	for i := 1; i < n; i++ {
		hl := points[i].High - points[i].Low
		hc := abs(points[i].High - points[i-1].Close)
		lc := abs(points[i].Low - points[i-1].Close)
		tr[i] = max3(hl, hc, lc)
	}

	atr := make([]float64, n)
	sum := 0.0
	for i := 0; i < period; i++ {
		sum += tr[i]
	}
	atr[period-1] = sum / float64(period)

	for i := period; i < n; i++ {
		atr[i] = (atr[i-1]*float64(period-1) + tr[i]) / float64(period)
	}

	return atr
}

// ATRLatest returns the most recent ATR value, nil on insufficient data.
func ATRLatest(points []models.PricePoint, period int) *float64 {
	vals := ATR(points, period)
	if len(vals) == 0 {
		return nil
	}
	return quant.Ptr(vals[len(vals)-1])
}

// Compute runs the whole indicator family over one snapshot's price
// history, returning nil only when there is no history at all. Individual
// fields stay nil where the series is too short for their window.
func Compute(s *models.Snapshot) *models.TechnicalIndicators {
	if len(s.PriceHistory) == 0 {
		return nil
	}

	closes := s.Closes()
	return &models.TechnicalIndicators{
		SMA20:          SMALatest(closes, 20),
		SMA50:          SMALatest(closes, 50),
		SMA200:         SMALatest(closes, 200),
		EMA12:          EMALatest(closes, 12),
		EMA26:          EMALatest(closes, 26),
		RSI14:          RSILatest(closes, DefaultRSIPeriod),
		MACD:           MACDLatest(closes, DefaultMACDFast, DefaultMACDSlow, DefaultMACDSignal),
		Bollinger:      BollingerLatest(closes, DefaultBollingerPeriod, DefaultBollingerMult),
		ATR14:          ATRLatest(s.PriceHistory, DefaultATRPeriod),
		VWAP:           VWAPLatest(s.PriceHistory),
		RelativeVolume: RelativeVolume(s.CurrentVolume, s.AverageVolume),
		TrendSlope:     TrendSlope(closes, DefaultTrendPeriod),
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
