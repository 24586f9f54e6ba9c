// Package risk derives risk/return statistics from a stock price history
// and a market benchmark history. The engine never fails outright: any
// statistic whose preconditions are unmet (insufficient points, zero
// denominator, missing inputs) is individually absent, and the returned
// profile always reports how many return observations backed it.
package risk

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/finsight/finsight/internal/quant"
	"github.com/finsight/finsight/pkg/models"
)

// minVaRPoints is the smallest return sample a percentile-based VaR
// estimate is accepted from.
const minVaRPoints = 20

// Inputs bundles everything one risk analysis consumes.
type Inputs struct {
	Prices       []float64
	MarketPrices []float64
	RiskFreeRate *float64
	SuppliedBeta *float64
}

// FromSnapshot builds Inputs from a raw snapshot.
func FromSnapshot(s *models.Snapshot) Inputs {
	return Inputs{
		Prices:       s.Closes(),
		MarketPrices: s.MarketCloses(),
		RiskFreeRate: s.RiskFreeRate,
		SuppliedBeta: s.Beta,
	}
}

// Analyze computes the full risk profile. When fewer returns exist than
// the configured minimum, every statistic is absent and beta falls back
// to the supplied value; DataPoints still reports the observed count.
func Analyze(in Inputs, cfg models.Config) *models.RiskProfile {
	returns := quant.Returns(in.Prices)
	marketReturns := quant.Returns(in.MarketPrices)

	minPoints := cfg.MinDataPoints
	if minPoints <= 0 {
		minPoints = models.DefaultConfig().MinDataPoints
	}

	profile := &models.RiskProfile{DataPoints: len(returns)}
	if len(returns) < minPoints {
		profile.Beta = in.SuppliedBeta
		return profile
	}

	stockTail, marketTail := alignTails(returns, marketReturns)

	profile.Beta = beta(stockTail, marketTail, in.SuppliedBeta, cfg.UseSuppliedBeta)

	factor := cfg.ReturnPeriod.AnnualizationFactor()
	meanReturn := quant.Mean(returns)
	sd := quant.StdDev(returns)

	profile.AnnualizedReturn = annualize(meanReturn, factor)
	if sd != nil {
		profile.AnnualizedVolatility = quant.Ptr(*sd * math.Sqrt(factor))
	}

	marketAnnualized := annualize(quant.Mean(marketTail), factor)
	profile.Alpha = jensensAlpha(profile.AnnualizedReturn, marketAnnualized, in.RiskFreeRate, profile.Beta)

	profile.SharpeRatio = sharpe(returns, meanReturn, sd, in.RiskFreeRate, factor)
	profile.SortinoRatio = sortino(returns, meanReturn, in.RiskFreeRate, factor)
	profile.MaxDrawdown = MaxDrawdown(in.Prices)

	profile.VaR95 = ValueAtRisk(returns, cfg.VaRConfidence)
	profile.VaR99 = ValueAtRisk(returns, 0.99)
	profile.CVaR95 = ConditionalVaR(returns, cfg.VaRConfidence)

	profile.Correlation = correlation(stockTail, marketTail)
	if profile.Correlation != nil {
		r := *profile.Correlation
		profile.RSquared = quant.Ptr(r * r)
	}

	profile.RiskScore = compositeScore(profile)
	return profile
}

// beta prefers the supplied value when configured, else cov/var against
// the benchmark, else the supplied value as fallback.
func beta(stockReturns, marketReturns []float64, supplied *float64, preferSupplied bool) *float64 {
	if preferSupplied && supplied != nil {
		return supplied
	}
	computed := quant.SafeDiv(
		quant.Covariance(stockReturns, marketReturns),
		quant.Variance(marketReturns),
	)
	if computed != nil {
		return computed
	}
	return supplied
}

// annualize converts a mean per-period return into an annual rate:
// (1+mean)^factor − 1.
func annualize(meanReturn *float64, factor float64) *float64 {
	if meanReturn == nil {
		return nil
	}
	v := math.Pow(1+*meanReturn, factor) - 1
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// jensensAlpha is actual − (rf + beta·(market − rf)), all annualized.
func jensensAlpha(actual, market, riskFree, beta *float64) *float64 {
	expected := quant.SafeAdd(
		riskFree,
		quant.SafeMul(beta, quant.SafeSub(market, riskFree)),
	)
	return quant.SafeSub(actual, expected)
}

func sharpe(returns []float64, meanReturn, sd, riskFree *float64, factor float64) *float64 {
	if meanReturn == nil || sd == nil || riskFree == nil || *sd == 0 {
		return nil
	}
	periodRf := *riskFree / factor
	ratio := (*meanReturn - periodRf) / *sd
	return quant.Ptr(ratio * math.Sqrt(factor))
}

func sortino(returns []float64, meanReturn, riskFree *float64, factor float64) *float64 {
	if meanReturn == nil || riskFree == nil {
		return nil
	}
	periodRf := *riskFree / factor
	dd := quant.DownsideDeviation(returns, periodRf)
	if dd == nil || *dd == 0 {
		return nil
	}
	ratio := (*meanReturn - periodRf) / *dd
	return quant.Ptr(ratio * math.Sqrt(factor))
}

// MaxDrawdown returns the deepest peak-to-trough loss across the full
// price series as a negative fraction of the peak. Nil when fewer than
// two prices exist.
func MaxDrawdown(prices []float64) *float64 {
	if len(prices) < 2 {
		return nil
	}
	peak := prices[0]
	maxDD := 0.0
	for _, p := range prices[1:] {
		if p > peak {
			peak = p
			continue
		}
		if peak > 0 {
			if dd := (p - peak) / peak; dd < maxDD {
				maxDD = dd
			}
		}
	}
	return quant.Ptr(maxDD)
}

// ValueAtRisk is the historical-simulation VaR at the given confidence:
// returns sorted ascending, indexed at floor(n·(1−confidence)). Nil when
// fewer than 20 observations exist or confidence is out of (0,1).
func ValueAtRisk(returns []float64, confidence float64) *float64 {
	if len(returns) < minVaRPoints || confidence <= 0 || confidence >= 1 {
		return nil
	}
	sorted := sortedCopy(returns)
	idx := int(math.Floor(float64(len(sorted)) * (1 - confidence)))
	return quant.Ptr(sorted[idx])
}

// ConditionalVaR is the mean of the tail at or below the VaR index at the
// given confidence. Nil under the same preconditions as ValueAtRisk.
func ConditionalVaR(returns []float64, confidence float64) *float64 {
	if len(returns) < minVaRPoints || confidence <= 0 || confidence >= 1 {
		return nil
	}
	sorted := sortedCopy(returns)
	idx := int(math.Floor(float64(len(sorted)) * (1 - confidence)))
	return quant.Mean(sorted[:idx+1])
}

func correlation(x, y []float64) *float64 {
	if len(x) < 2 || len(x) != len(y) {
		return nil
	}
	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return nil
	}
	return &r
}

// alignTails trims both return series to their overlapping tail so the
// covariance terms pair the same periods.
func alignTails(a, b []float64) ([]float64, []float64) {
	if len(a) == 0 || len(b) == 0 {
		return a, b
	}
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	return a[len(a)-n:], b[len(b)-n:]
}

func sortedCopy(xs []float64) []float64 {
	cp := make([]float64, len(xs))
	copy(cp, xs)
	sort.Float64s(cp)
	return cp
}
