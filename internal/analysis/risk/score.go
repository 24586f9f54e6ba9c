package risk

import (
	"math"

	"github.com/finsight/finsight/internal/quant"
	"github.com/finsight/finsight/pkg/models"
)

// Reference ranges used to normalize each sub-score onto 0–100. A value
// at or past the high end of its range contributes the full 100 points
// of risk.
const (
	betaRange       = 2.0  // |beta| 0..2
	volatilityRange = 0.60 // annualized volatility 0..60%
	drawdownRange   = 0.60 // |max drawdown| 0..60%
	var95Range      = 0.05 // |VaR95| 0..5% per period
	sharpeLow       = -1.0 // Sharpe −1..3, inverted
	sharpeHigh      = 3.0
)

// compositeScore averages independently-normalized risk sub-scores onto
// 0–100, higher meaning riskier. Absent contributing metrics are simply
// excluded from the average rather than treated as zero; nil when no
// metric contributed at all.
func compositeScore(p *models.RiskProfile) *float64 {
	var sum float64
	var count int

	add := func(score *float64) {
		if score != nil {
			sum += *score
			count++
		}
	}

	add(scaled(absOf(p.Beta), betaRange))
	add(scaled(p.AnnualizedVolatility, volatilityRange))
	add(scaled(absOf(p.MaxDrawdown), drawdownRange))
	add(invertedSharpe(p.SharpeRatio))
	add(scaled(absOf(p.VaR95), var95Range))

	if count == 0 {
		return nil
	}
	return quant.Ptr(sum / float64(count))
}

func scaled(v *float64, ceiling float64) *float64 {
	if v == nil {
		return nil
	}
	return quant.Ptr(quant.Clamp(*v/ceiling, 0, 1) * 100)
}

// invertedSharpe maps the Sharpe ratio onto risk: −1 or worse scores 100,
// 3 or better scores 0.
func invertedSharpe(sharpe *float64) *float64 {
	if sharpe == nil {
		return nil
	}
	frac := (sharpeHigh - *sharpe) / (sharpeHigh - sharpeLow)
	return quant.Ptr(quant.Clamp(frac, 0, 1) * 100)
}

func absOf(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return quant.Ptr(math.Abs(*v))
}
