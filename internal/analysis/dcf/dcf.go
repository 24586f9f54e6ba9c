// Package dcf implements the discounted-cash-flow valuation engine: CAPM
// discount-rate construction, an N-year free-cash-flow projection with a
// linear growth fade into the terminal rate, a Gordon-growth terminal
// value, and the bridge from enterprise value to an intrinsic per-share
// estimate. Every stage is a pure function of the snapshot and
// configuration; a missing input makes the stage's output absent and
// absence flows forward through the rest of the pipeline.
package dcf

import (
	"math"

	"github.com/finsight/finsight/internal/quant"
	"github.com/finsight/finsight/pkg/models"
)

// defaultTaxRate substitutes for an effective tax rate that is missing or
// outside [0,1].
const defaultTaxRate = 0.21

// Valuate runs the full DCF pipeline for one snapshot.
func Valuate(s *models.Snapshot, cfg models.Config) *models.DCFValuation {
	v := &models.DCFValuation{}

	v.Beta = resolveBeta(s)
	v.CostOfEquity = costOfEquity(s.RiskFreeRate, v.Beta, cfg.MarketRiskPremium)
	v.CostOfDebt = quant.SafeDiv(s.InterestExpense, s.TotalDebt)
	v.EffectiveTaxRate = quant.Ptr(effectiveTaxRate(s, cfg))
	v.EquityWeight, v.DebtWeight = capitalWeights(s.MarketCap, s.TotalDebt)
	v.WACC = wacc(v)

	v.FCFGrowthRate = fcfGrowthRate(s, cfg)

	fcf0 := baseFCF(s)
	years := cfg.ProjectionYears
	if years <= 0 {
		years = models.DefaultConfig().ProjectionYears
	}

	if fcf0 != nil && v.FCFGrowthRate != nil && v.WACC != nil {
		v.Projections = Project(*fcf0, *v.FCFGrowthRate, cfg.TerminalGrowthRate, *v.WACC, years)
		v.TerminalValue, v.PVTerminalValue = terminalValue(v.Projections, *v.WACC, cfg.TerminalGrowthRate)
		v.EnterpriseValue = enterpriseValue(v.Projections, v.PVTerminalValue)
	}

	v.NetDebt = quant.SafeSub(s.TotalDebt, s.CashAndEquivalents)
	v.EquityValue = quant.SafeSub(v.EnterpriseValue, v.NetDebt)
	v.IntrinsicValue = quant.SafeDiv(v.EquityValue, s.SharesOutstanding)

	v.TargetPrice = v.IntrinsicValue
	if cfg.UseAnalystTarget && s.AnalystTargetPrice != nil {
		v.TargetPrice = s.AnalystTargetPrice
	}
	v.UpsideDownside = quant.SafeDiv(quant.SafeSub(v.TargetPrice, s.Price), s.Price)
	v.MarginOfSafety = quant.SafeDiv(quant.SafeSub(v.IntrinsicValue, s.Price), v.IntrinsicValue)

	if fcf0 != nil && v.FCFGrowthRate != nil && v.WACC != nil {
		v.Sensitivity = Sensitivity(*fcf0, *v.FCFGrowthRate, *v.WACC, cfg.TerminalGrowthRate, years)
	}

	return v
}

// resolveBeta computes beta from the stock and benchmark return series
// when both histories are supplied, falling back to the snapshot's
// pre-supplied beta.
func resolveBeta(s *models.Snapshot) *float64 {
	stockReturns := quant.Returns(s.Closes())
	marketReturns := quant.Returns(s.MarketCloses())
	if len(stockReturns) > 0 && len(stockReturns) == len(marketReturns) {
		if b := quant.SafeDiv(quant.Covariance(stockReturns, marketReturns), quant.Variance(marketReturns)); b != nil {
			return b
		}
	}
	return s.Beta
}

// costOfEquity applies CAPM: rf + beta·marketRiskPremium.
func costOfEquity(riskFree, beta *float64, premium float64) *float64 {
	return quant.SafeAdd(riskFree, quant.SafeMul(beta, quant.Ptr(premium)))
}

// effectiveTaxRate uses the configured override when present, else
// incomeTax/pretaxIncome; anything absent or outside [0,1] clamps to the
// statutory default.
func effectiveTaxRate(s *models.Snapshot, cfg models.Config) float64 {
	if cfg.TaxRateOverride != nil {
		return *cfg.TaxRateOverride
	}
	rate := quant.SafeDiv(s.IncomeTax, s.PretaxIncome)
	if rate == nil || *rate < 0 || *rate > 1 {
		return defaultTaxRate
	}
	return *rate
}

// capitalWeights splits the capital structure into equity and debt
// shares of total value. Both are absent when total value is zero or an
// input is missing.
func capitalWeights(marketCap, totalDebt *float64) (*float64, *float64) {
	total := quant.SafeAdd(marketCap, totalDebt)
	if total == nil || *total == 0 {
		return nil, nil
	}
	return quant.SafeDiv(marketCap, total), quant.SafeDiv(totalDebt, total)
}

// wacc blends the cost of equity and after-tax cost of debt by capital
// weight. With a zero debt weight the debt term vanishes regardless of
// whether a cost of debt could be computed.
func wacc(v *models.DCFValuation) *float64 {
	equityTerm := quant.SafeMul(v.EquityWeight, v.CostOfEquity)
	if v.DebtWeight != nil && *v.DebtWeight == 0 {
		return equityTerm
	}
	afterTax := quant.SafeSub(quant.Ptr(1), v.EffectiveTaxRate)
	debtTerm := quant.SafeMul(quant.SafeMul(v.DebtWeight, v.CostOfDebt), afterTax)
	return quant.SafeAdd(equityTerm, debtTerm)
}

// fcfGrowthRate picks the projection's starting growth: the configured
// override, else CAGR over the historical FCF series (needs at least
// three points), else simple year-over-year growth (two points).
func fcfGrowthRate(s *models.Snapshot, cfg models.Config) *float64 {
	if cfg.FCFGrowthOverride != nil {
		return cfg.FCFGrowthOverride
	}
	hist := s.FCFHistory
	if len(hist) >= 3 {
		if g := quant.CAGR(hist[len(hist)-1], hist[0], float64(len(hist)-1)); g != nil {
			return g
		}
	}
	if len(hist) >= 2 {
		last := hist[len(hist)-1]
		prev := hist[len(hist)-2]
		return quant.PctChange(&last, &prev)
	}
	return nil
}

// baseFCF is the supplied trailing free cash flow, else operating cash
// flow minus capital expenditures.
func baseFCF(s *models.Snapshot) *float64 {
	if s.FreeCashFlow != nil {
		return s.FreeCashFlow
	}
	return quant.SafeSub(s.OperatingCashFlow, s.CapitalExpenditures)
}

// Project builds the explicit projection years. The growth rate fades
// linearly from startGrowth toward terminalGrowth in steps of
// (start−terminal)/years, so year 1 grows at the full starting rate and
// the fade avoids an abrupt drop to the terminal rate after the horizon:
//
//	growth(y) = start − ((start−terminal)/years)·(y−1)
func Project(fcf0, startGrowth, terminalGrowth, wacc float64, years int) []models.ProjectedFCF {
	if years <= 0 {
		return nil
	}
	step := (startGrowth - terminalGrowth) / float64(years)

	projections := make([]models.ProjectedFCF, years)
	fcf := fcf0
	for y := 1; y <= years; y++ {
		growth := startGrowth - step*float64(y-1)
		fcf *= 1 + growth
		discount := 1 / math.Pow(1+wacc, float64(y))
		projections[y-1] = models.ProjectedFCF{
			Year:           y,
			FCF:            fcf,
			GrowthRate:     growth,
			DiscountFactor: discount,
			PresentValue:   fcf * discount,
		}
	}
	return projections
}

// terminalValue applies Gordon growth to the final projected year:
// FCF_N·(1+g)/(WACC−g), discounted back over the projection horizon.
// Whenever WACC ≤ g the perpetuity is undefined and both values are
// absent; that is a validity boundary, not an error.
func terminalValue(projections []models.ProjectedFCF, wacc, growth float64) (*float64, *float64) {
	if len(projections) == 0 || wacc <= growth {
		return nil, nil
	}
	final := projections[len(projections)-1]
	tv := final.FCF * (1 + growth) / (wacc - growth)
	pv := tv * final.DiscountFactor
	return &tv, &pv
}

// enterpriseValue is the sum of the projected present values plus the
// discounted terminal value.
func enterpriseValue(projections []models.ProjectedFCF, pvTerminal *float64) *float64 {
	if len(projections) == 0 || pvTerminal == nil {
		return nil
	}
	sum := *pvTerminal
	for _, p := range projections {
		sum += p.PresentValue
	}
	return &sum
}
