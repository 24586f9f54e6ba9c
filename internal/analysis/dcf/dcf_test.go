package dcf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight/finsight/internal/quant"
	"github.com/finsight/finsight/pkg/models"
)

// fullSnapshot returns a snapshot with everything the DCF pipeline needs.
func fullSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Ticker:              "ACME",
		MarketCap:           quant.Ptr(800),
		TotalDebt:           quant.Ptr(200),
		CashAndEquivalents:  quant.Ptr(50),
		InterestExpense:     quant.Ptr(10),
		IncomeTax:           quant.Ptr(21),
		PretaxIncome:        quant.Ptr(100),
		RiskFreeRate:        quant.Ptr(0.03),
		Beta:                quant.Ptr(1.2),
		SharesOutstanding:   quant.Ptr(100),
		Price:               quant.Ptr(8),
		OperatingCashFlow:   quant.Ptr(120),
		CapitalExpenditures: quant.Ptr(20),
	}
}

func growthConfig() models.Config {
	cfg := models.DefaultConfig()
	cfg.FCFGrowthOverride = quant.Ptr(0.10)
	return cfg
}

func TestGrowthFadeSequence(t *testing.T) {
	// start=10%, terminal=2.5%, 5 years: the fade steps by 1.5% so year 1
	// grows at the full 10% and year 5 at 4%.
	projections := Project(100, 0.10, 0.025, 0.09, 5)
	require.Len(t, projections, 5)

	wantGrowth := []float64{0.10, 0.085, 0.07, 0.055, 0.04}
	fcf := 100.0
	for i, p := range projections {
		assert.Equal(t, i+1, p.Year)
		assert.InDelta(t, wantGrowth[i], p.GrowthRate, 1e-12)
		fcf *= 1 + wantGrowth[i]
		assert.InDelta(t, fcf, p.FCF, 1e-9)
		assert.InDelta(t, fcf*p.DiscountFactor, p.PresentValue, 1e-9)
	}
}

func TestTerminalValueGordonGrowth(t *testing.T) {
	projections := Project(100, 0.10, 0.025, 0.09, 5)
	tv, pv := terminalValue(projections, 0.09, 0.025)
	require.NotNil(t, tv)
	require.NotNil(t, pv)

	final := projections[4]
	assert.InDelta(t, final.FCF*1.025/(0.09-0.025), *tv, 1e-9)
	assert.InDelta(t, *tv*final.DiscountFactor, *pv, 1e-9)
}

func TestTerminalValueUndefinedWhenWACCNotAboveGrowth(t *testing.T) {
	projections := Project(100, 0.10, 0.025, 0.02, 5)

	tv, pv := terminalValue(projections, 0.02, 0.025)
	assert.Nil(t, tv)
	assert.Nil(t, pv)

	// The boundary itself is invalid too.
	tv, pv = terminalValue(projections, 0.025, 0.025)
	assert.Nil(t, tv)
	assert.Nil(t, pv)
}

func TestWACCComposition(t *testing.T) {
	v := Valuate(fullSnapshot(), growthConfig())

	require.NotNil(t, v.CostOfEquity)
	assert.InDelta(t, 0.03+1.2*0.055, *v.CostOfEquity, 1e-12)

	require.NotNil(t, v.CostOfDebt)
	assert.InDelta(t, 0.05, *v.CostOfDebt, 1e-12)

	require.NotNil(t, v.EffectiveTaxRate)
	assert.InDelta(t, 0.21, *v.EffectiveTaxRate, 1e-12)

	require.NotNil(t, v.EquityWeight)
	require.NotNil(t, v.DebtWeight)
	assert.InDelta(t, 0.8, *v.EquityWeight, 1e-12)
	assert.InDelta(t, 0.2, *v.DebtWeight, 1e-12)

	require.NotNil(t, v.WACC)
	want := 0.8*0.096 + 0.2*0.05*(1-0.21)
	assert.InDelta(t, want, *v.WACC, 1e-12)
}

func TestZeroDebtDropsDebtTerm(t *testing.T) {
	s := fullSnapshot()
	s.TotalDebt = quant.Ptr(0)
	s.InterestExpense = quant.Ptr(5)

	v := Valuate(s, growthConfig())
	require.NotNil(t, v.WACC)
	// Pure-equity structure: WACC collapses to the cost of equity.
	assert.InDelta(t, 0.096, *v.WACC, 1e-12)
	assert.Nil(t, v.CostOfDebt)
}

func TestEffectiveTaxRateClamping(t *testing.T) {
	cfg := growthConfig()

	s := fullSnapshot()
	s.IncomeTax = quant.Ptr(150) // implies a 150% rate
	v := Valuate(s, cfg)
	require.NotNil(t, v.EffectiveTaxRate)
	assert.InDelta(t, defaultTaxRate, *v.EffectiveTaxRate, 1e-12)

	s = fullSnapshot()
	s.IncomeTax = nil
	v = Valuate(s, cfg)
	require.NotNil(t, v.EffectiveTaxRate)
	assert.InDelta(t, defaultTaxRate, *v.EffectiveTaxRate, 1e-12)

	cfg.TaxRateOverride = quant.Ptr(0.30)
	v = Valuate(fullSnapshot(), cfg)
	require.NotNil(t, v.EffectiveTaxRate)
	assert.InDelta(t, 0.30, *v.EffectiveTaxRate, 1e-12)
}

func TestBaseFCFDerivedFromCashFlow(t *testing.T) {
	s := fullSnapshot()
	s.FreeCashFlow = nil
	s.OperatingCashFlow = quant.Ptr(104e9)
	s.CapitalExpenditures = quant.Ptr(11e9)

	fcf := baseFCF(s)
	require.NotNil(t, fcf)
	assert.InDelta(t, 93e9, *fcf, 1)

	// A supplied FCF wins over the derivation.
	s.FreeCashFlow = quant.Ptr(90e9)
	fcf = baseFCF(s)
	require.NotNil(t, fcf)
	assert.InDelta(t, 90e9, *fcf, 1)
}

func TestFCFGrowthRateFallbacks(t *testing.T) {
	cfg := models.DefaultConfig()

	// CAGR path: 4 points, 3 periods.
	s := &models.Snapshot{FCFHistory: []float64{100, 110, 125, 140}}
	g := fcfGrowthRate(s, cfg)
	require.NotNil(t, g)
	want := quant.CAGR(140, 100, 3)
	assert.InDelta(t, *want, *g, 1e-12)

	// Two points: simple year-over-year.
	s = &models.Snapshot{FCFHistory: []float64{100, 112}}
	g = fcfGrowthRate(s, cfg)
	require.NotNil(t, g)
	assert.InDelta(t, 0.12, *g, 1e-12)

	// A negative starting value defeats CAGR; YoY against the last pair
	// still answers.
	s = &models.Snapshot{FCFHistory: []float64{-10, 100, 120}}
	g = fcfGrowthRate(s, cfg)
	require.NotNil(t, g)
	assert.InDelta(t, 0.20, *g, 1e-12)

	assert.Nil(t, fcfGrowthRate(&models.Snapshot{}, cfg))

	cfg.FCFGrowthOverride = quant.Ptr(0.08)
	g = fcfGrowthRate(&models.Snapshot{}, cfg)
	require.NotNil(t, g)
	assert.Equal(t, 0.08, *g)
}

func TestValuationBridge(t *testing.T) {
	v := Valuate(fullSnapshot(), growthConfig())

	require.NotNil(t, v.EnterpriseValue)
	require.NotNil(t, v.NetDebt)
	assert.InDelta(t, 150, *v.NetDebt, 1e-9)

	require.NotNil(t, v.EquityValue)
	assert.InDelta(t, *v.EnterpriseValue-150, *v.EquityValue, 1e-9)

	require.NotNil(t, v.IntrinsicValue)
	assert.InDelta(t, *v.EquityValue/100, *v.IntrinsicValue, 1e-9)

	// No analyst target: the intrinsic value is the target.
	require.NotNil(t, v.TargetPrice)
	assert.Equal(t, *v.IntrinsicValue, *v.TargetPrice)

	require.NotNil(t, v.UpsideDownside)
	assert.InDelta(t, (*v.TargetPrice-8)/8, *v.UpsideDownside, 1e-9)

	require.NotNil(t, v.MarginOfSafety)
	assert.InDelta(t, (*v.IntrinsicValue-8)/(*v.IntrinsicValue), *v.MarginOfSafety, 1e-9)
}

func TestAnalystTargetPreferred(t *testing.T) {
	s := fullSnapshot()
	s.AnalystTargetPrice = quant.Ptr(12)

	v := Valuate(s, growthConfig())
	require.NotNil(t, v.TargetPrice)
	assert.Equal(t, 12.0, *v.TargetPrice)
	require.NotNil(t, v.UpsideDownside)
	assert.InDelta(t, 0.5, *v.UpsideDownside, 1e-12)

	cfg := growthConfig()
	cfg.UseAnalystTarget = false
	v = Valuate(s, cfg)
	require.NotNil(t, v.TargetPrice)
	assert.Equal(t, *v.IntrinsicValue, *v.TargetPrice)
}

func TestBetaFromReturnSeries(t *testing.T) {
	s := fullSnapshot()
	s.Beta = nil
	history := []models.PricePoint{
		{Close: 100}, {Close: 104}, {Close: 101}, {Close: 107},
		{Close: 105}, {Close: 112}, {Close: 110}, {Close: 118},
	}
	s.PriceHistory = history
	s.MarketHistory = history

	v := Valuate(s, growthConfig())
	require.NotNil(t, v.Beta)
	assert.InDelta(t, 1.0, *v.Beta, 1e-9)
}

func TestAbsenceFlowsForward(t *testing.T) {
	// No rate inputs at all: WACC is absent, so projections and the whole
	// valuation stay absent without any error.
	s := &models.Snapshot{
		OperatingCashFlow:   quant.Ptr(120),
		CapitalExpenditures: quant.Ptr(20),
		FCFHistory:          []float64{80, 90, 100, 110},
	}
	v := Valuate(s, models.DefaultConfig())

	assert.Nil(t, v.WACC)
	assert.Nil(t, v.Projections)
	assert.Nil(t, v.TerminalValue)
	assert.Nil(t, v.EnterpriseValue)
	assert.Nil(t, v.IntrinsicValue)
	assert.Nil(t, v.MarginOfSafety)
	assert.Nil(t, v.Sensitivity)
	assert.NotNil(t, v.FCFGrowthRate)
}

func TestSensitivityGrid(t *testing.T) {
	grid := Sensitivity(100, 0.10, 0.06, 0.025, 5)
	require.NotNil(t, grid)
	require.Len(t, grid.WACCs, 5)
	require.Len(t, grid.Growths, 5)
	require.Len(t, grid.Values, 5)

	for i, w := range grid.WACCs {
		for j, g := range grid.Growths {
			cell := grid.Values[i][j]
			require.NotNil(t, cell, "wacc %.3f growth %.3f must be valued", w, g)
			assert.Positive(t, *cell)
		}
	}

	// Lower discount rates value the enterprise higher, holding growth fixed.
	lo := grid.Values[0][0]
	hi := grid.Values[4][0]
	require.NotNil(t, lo)
	require.NotNil(t, hi)
	assert.Greater(t, *lo, *hi)
}

func TestSensitivityInvalidCellsAbsent(t *testing.T) {
	// Degenerate and inverted rate combinations stay absent.
	assert.Nil(t, cellValue(100, 0.10, 0.02, 0.025, 5))
	assert.Nil(t, cellValue(100, 0.10, 0.025, 0.025, 5))
	assert.NotNil(t, cellValue(100, 0.10, 0.03, 0.025, 5))

	// A base case hugging the terminal growth produces a grid whose
	// cheap-discount corner is invalid.
	grid := Sensitivity(100, 0.10, 0.035, 0.030, 5)
	require.NotNil(t, grid)
	assert.Nil(t, grid.Values[0][len(grid.Growths)-1])
	assert.NotNil(t, grid.Values[len(grid.WACCs)-1][0])
}

func TestValuateIsIdempotent(t *testing.T) {
	s := fullSnapshot()
	cfg := growthConfig()
	assert.Equal(t, Valuate(s, cfg), Valuate(s, cfg))
}
