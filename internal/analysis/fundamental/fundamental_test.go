package fundamental

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight/finsight/internal/quant"
	"github.com/finsight/finsight/pkg/models"
)

// fullSnapshot returns a statement set with round numbers so expected
// ratios can be checked by hand.
func fullSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Ticker: "TEST",

		Revenue:         quant.Ptr(1000.0),
		CostOfRevenue:   quant.Ptr(600.0),
		OperatingIncome: quant.Ptr(200.0),
		EBIT:            quant.Ptr(210.0),
		EBITDA:          quant.Ptr(260.0),
		InterestExpense: quant.Ptr(10.0),
		PretaxIncome:    quant.Ptr(200.0),
		IncomeTax:       quant.Ptr(50.0),
		NetIncome:       quant.Ptr(150.0),
		EPS:             quant.Ptr(1.5),

		TotalAssets:        quant.Ptr(2000.0),
		CurrentAssets:      quant.Ptr(500.0),
		CashAndEquivalents: quant.Ptr(150.0),
		Inventory:          quant.Ptr(100.0),
		Receivables:        quant.Ptr(120.0),
		FixedAssets:        quant.Ptr(900.0),
		TotalLiabilities:   quant.Ptr(1200.0),
		CurrentLiabilities: quant.Ptr(250.0),
		Payables:           quant.Ptr(80.0),
		LongTermDebt:       quant.Ptr(600.0),
		TotalDebt:          quant.Ptr(700.0),
		TotalEquity:        quant.Ptr(800.0),
		RetainedEarnings:   quant.Ptr(400.0),

		OperatingCashFlow:   quant.Ptr(180.0),
		CapitalExpenditures: quant.Ptr(60.0),
		DividendsPaid:       quant.Ptr(-30.0),

		PriorRevenue:            quant.Ptr(900.0),
		PriorGrossProfit:        quant.Ptr(350.0),
		PriorNetIncome:          quant.Ptr(120.0),
		PriorEPS:                quant.Ptr(1.2),
		PriorTotalAssets:        quant.Ptr(1800.0),
		PriorCurrentAssets:      quant.Ptr(430.0),
		PriorCurrentLiabilities: quant.Ptr(240.0),
		PriorLongTermDebt:       quant.Ptr(640.0),
		PriorInventory:          quant.Ptr(90.0),
		PriorReceivables:        quant.Ptr(110.0),
		PriorFreeCashFlow:       quant.Ptr(100.0),
		PriorSharesOutstanding:  quant.Ptr(105.0),

		Price:             quant.Ptr(30.0),
		MarketCap:         quant.Ptr(3000.0),
		SharesOutstanding: quant.Ptr(100.0),
		DividendPerShare:  quant.Ptr(0.3),

		InflationRate:    quant.Ptr(0.03),
		GDPGrowth:        quant.Ptr(0.02),
		TreasuryYield10Y: quant.Ptr(0.04),

		ForeignRevenue: quant.Ptr(400.0),
		ExportRevenue:  quant.Ptr(250.0),
		FXGainsLosses:  quant.Ptr(-20.0),

		SectorPE:          quant.Ptr(25.0),
		PeerAverageMargin: quant.Ptr(0.12),
		IndustryGrowth:    quant.Ptr(0.05),
		PeerRevenues:      []float64{1200, 800, 1500, 900},

		RevenueHistory: []float64{700, 800, 850, 900, 950, 1000},
		EPSHistory:     []float64{1.0, 1.1, 1.3, 1.5},
	}
}

func TestFreeCashFlowDerived(t *testing.T) {
	s := &models.Snapshot{
		OperatingCashFlow:   quant.Ptr(104e9),
		CapitalExpenditures: quant.Ptr(11e9),
	}
	fcf := FreeCashFlow(s)
	require.NotNil(t, fcf)
	assert.InDelta(t, 93e9, *fcf, 1)
}

func TestFreeCashFlowSuppliedPreferred(t *testing.T) {
	s := &models.Snapshot{
		FreeCashFlow:        quant.Ptr(90e9),
		OperatingCashFlow:   quant.Ptr(104e9),
		CapitalExpenditures: quant.Ptr(11e9),
	}
	fcf := FreeCashFlow(s)
	require.NotNil(t, fcf)
	assert.Equal(t, 90e9, *fcf)
}

func TestLiquidity(t *testing.T) {
	m := Liquidity(fullSnapshot())

	require.NotNil(t, m.CurrentRatio)
	assert.InDelta(t, 2.0, *m.CurrentRatio, 1e-9)
	require.NotNil(t, m.QuickRatio)
	assert.InDelta(t, 1.6, *m.QuickRatio, 1e-9)
	require.NotNil(t, m.CashRatio)
	assert.InDelta(t, 0.6, *m.CashRatio, 1e-9)
	require.NotNil(t, m.WorkingCapital)
	assert.InDelta(t, 250.0, *m.WorkingCapital, 1e-9)
	require.NotNil(t, m.OperatingCashFlowRatio)
	assert.InDelta(t, 0.72, *m.OperatingCashFlowRatio, 1e-9)
}

func TestLeverage(t *testing.T) {
	m := Leverage(fullSnapshot())

	require.NotNil(t, m.DebtToEquity)
	assert.InDelta(t, 0.875, *m.DebtToEquity, 1e-9)
	require.NotNil(t, m.DebtRatio)
	assert.InDelta(t, 0.6, *m.DebtRatio, 1e-9)
	require.NotNil(t, m.InterestCoverage)
	assert.InDelta(t, 21.0, *m.InterestCoverage, 1e-9)
	require.NotNil(t, m.DebtToEBITDA)
	assert.InDelta(t, 700.0/260, *m.DebtToEBITDA, 1e-9)
	require.NotNil(t, m.LongTermDebtToCap)
	assert.InDelta(t, 600.0/1400, *m.LongTermDebtToCap, 1e-9)
	require.NotNil(t, m.FinancialLeverage)
	assert.InDelta(t, 2.5, *m.FinancialLeverage, 1e-9)
}

func TestEfficiencyAveragedBalances(t *testing.T) {
	m := Efficiency(fullSnapshot())

	// Inventory turnover uses the average of 100 and 90.
	require.NotNil(t, m.InventoryTurnover)
	assert.InDelta(t, 600.0/95, *m.InventoryTurnover, 1e-9)
	require.NotNil(t, m.ReceivablesTurnover)
	assert.InDelta(t, 1000.0/115, *m.ReceivablesTurnover, 1e-9)

	require.NotNil(t, m.DaysSalesOutstanding)
	assert.InDelta(t, 365.0/(1000.0/115), *m.DaysSalesOutstanding, 1e-9)

	require.NotNil(t, m.CashConversionCycle)
	dso := 365.0 / (1000.0 / 115)
	dio := 365.0 / (600.0 / 95)
	dpo := 365.0 / (600.0 / 80)
	assert.InDelta(t, dso+dio-dpo, *m.CashConversionCycle, 1e-9)

	require.NotNil(t, m.WorkingCapitalTurnover)
	assert.InDelta(t, 4.0, *m.WorkingCapitalTurnover, 1e-9)
}

func TestProfitabilityGrossProfitFallback(t *testing.T) {
	s := fullSnapshot()
	require.Nil(t, s.GrossProfit)

	m := Profitability(s)
	require.NotNil(t, m.GrossMargin)
	assert.InDelta(t, 0.4, *m.GrossMargin, 1e-9)
	require.NotNil(t, m.ROA)
	assert.InDelta(t, 0.075, *m.ROA, 1e-9)
	require.NotNil(t, m.ROE)
	assert.InDelta(t, 0.1875, *m.ROE, 1e-9)

	// ROIC = 210·(1−0.25) / (700+800).
	require.NotNil(t, m.ROIC)
	assert.InDelta(t, 210*0.75/1500, *m.ROIC, 1e-9)
	require.NotNil(t, m.ROCE)
	assert.InDelta(t, 210.0/1750, *m.ROCE, 1e-9)
}

func TestGrowth(t *testing.T) {
	m := Growth(fullSnapshot())

	require.NotNil(t, m.RevenueGrowthYoY)
	assert.InDelta(t, 100.0/900, *m.RevenueGrowthYoY, 1e-9)
	require.NotNil(t, m.NetIncomeGrowthYoY)
	assert.InDelta(t, 0.25, *m.NetIncomeGrowthYoY, 1e-9)
	require.NotNil(t, m.FCFGrowthYoY)
	assert.InDelta(t, 0.2, *m.FCFGrowthYoY, 1e-9)

	require.NotNil(t, m.RevenueCAGR5Y)
	assert.InDelta(t, math.Pow(1000.0/700, 1.0/5)-1, *m.RevenueCAGR5Y, 1e-9)
	require.NotNil(t, m.RevenueCAGR3Y)
	assert.InDelta(t, math.Pow(1000.0/850, 1.0/3)-1, *m.RevenueCAGR3Y, 1e-9)
	require.NotNil(t, m.EPSCAGR3Y)
	assert.InDelta(t, math.Pow(1.5, 1.0/3)-1, *m.EPSCAGR3Y, 1e-9)
}

func TestGrowthShortHistory(t *testing.T) {
	s := fullSnapshot()
	s.RevenueHistory = []float64{900, 1000}
	m := Growth(s)
	assert.Nil(t, m.RevenueCAGR3Y)
	assert.Nil(t, m.RevenueCAGR5Y)
}

func TestCashFlow(t *testing.T) {
	m := CashFlow(fullSnapshot())

	require.NotNil(t, m.FreeCashFlow)
	assert.InDelta(t, 120.0, *m.FreeCashFlow, 1e-9)
	require.NotNil(t, m.FCFE)
	assert.Equal(t, *m.FreeCashFlow, *m.FCFE)

	// FCFF adds back after-tax interest: 120 + 10·(1−0.25).
	require.NotNil(t, m.FCFF)
	assert.InDelta(t, 127.5, *m.FCFF, 1e-9)

	require.NotNil(t, m.CapexToOperatingCF)
	assert.InDelta(t, 60.0/180, *m.CapexToOperatingCF, 1e-9)
	require.NotNil(t, m.FCFYield)
	assert.InDelta(t, 0.04, *m.FCFYield, 1e-9)
	require.NotNil(t, m.CashFlowToNetIncome)
	assert.InDelta(t, 1.2, *m.CashFlowToNetIncome, 1e-9)
}

func TestMultiples(t *testing.T) {
	m := Multiples(fullSnapshot())

	require.NotNil(t, m.PriceToEarnings)
	assert.InDelta(t, 20.0, *m.PriceToEarnings, 1e-9)
	require.NotNil(t, m.PriceToBook)
	assert.InDelta(t, 3.75, *m.PriceToBook, 1e-9)
	require.NotNil(t, m.EVToEBITDA)
	assert.InDelta(t, 3550.0/260, *m.EVToEBITDA, 1e-9)

	// EPS grew 25 percent, so PEG = 20 / 25.
	require.NotNil(t, m.PEGRatio)
	assert.InDelta(t, 0.8, *m.PEGRatio, 1e-9)

	require.NotNil(t, m.EarningsYield)
	assert.InDelta(t, 0.05, *m.EarningsYield, 1e-9)
	require.NotNil(t, m.DividendYield)
	assert.InDelta(t, 0.01, *m.DividendYield, 1e-9)

	// Dividends paid are reported as an outflow; the ratio uses magnitude.
	require.NotNil(t, m.PayoutRatio)
	assert.InDelta(t, 0.2, *m.PayoutRatio, 1e-9)

	require.NotNil(t, m.GrahamNumber)
	assert.InDelta(t, math.Sqrt(22.5*1.5*8), *m.GrahamNumber, 1e-9)
}

func TestMultiplesNegativeEarnings(t *testing.T) {
	s := fullSnapshot()
	s.EPS = quant.Ptr(-1.0)
	s.NetIncome = quant.Ptr(-100.0)

	m := Multiples(s)
	assert.Nil(t, m.PriceToEarnings)
	assert.Nil(t, m.PEGRatio)
	assert.Nil(t, m.GrahamNumber)

	// Earnings yield stays defined for losses.
	require.NotNil(t, m.EarningsYield)
	assert.InDelta(t, -1.0/30, *m.EarningsYield, 1e-9)
}

func TestAltmanZ(t *testing.T) {
	m := Health(fullSnapshot())
	require.NotNil(t, m.AltmanZScore)
	assert.InDelta(t, 0.15+0.28+0.3465+1.5+0.5, *m.AltmanZScore, 1e-9)
}

func TestPiotroskiFullData(t *testing.T) {
	m := Health(fullSnapshot())
	require.NotNil(t, m.PiotroskiFScore)
	// Eight of nine signals pass; asset turnover is flat at 0.5.
	assert.Equal(t, 8.0, *m.PiotroskiFScore)
}

func TestPiotroskiSkipsUnevaluable(t *testing.T) {
	s := &models.Snapshot{
		NetIncome:         quant.Ptr(150.0),
		TotalAssets:       quant.Ptr(2000.0),
		OperatingCashFlow: quant.Ptr(180.0),
	}
	m := Health(s)
	require.NotNil(t, m.PiotroskiFScore)
	// Only positive-ROA, positive-OCF and accruals are evaluable.
	assert.Equal(t, 3.0, *m.PiotroskiFScore)

	assert.Nil(t, Health(&models.Snapshot{}).PiotroskiFScore)
}

func TestMissingTotalAssetsPropagates(t *testing.T) {
	s := fullSnapshot()
	s.TotalAssets = nil

	p := Profitability(s)
	assert.Nil(t, p.ROA)
	assert.Nil(t, p.ROCE)

	e := Efficiency(s)
	assert.Nil(t, e.AssetTurnover)

	l := Leverage(s)
	assert.Nil(t, l.DebtRatio)
	assert.Nil(t, l.FinancialLeverage)

	h := Health(s)
	assert.Nil(t, h.AltmanZScore)

	// Ratios that never touch total assets stay computable.
	liq := Liquidity(s)
	require.NotNil(t, liq.CurrentRatio)
	assert.InDelta(t, 2.0, *liq.CurrentRatio, 1e-9)
}

func TestTradeFX(t *testing.T) {
	m := TradeFX(fullSnapshot())

	require.NotNil(t, m.ForeignRevenueShare)
	assert.InDelta(t, 0.4, *m.ForeignRevenueShare, 1e-9)
	require.NotNil(t, m.ExportShare)
	assert.InDelta(t, 0.25, *m.ExportShare, 1e-9)
	require.NotNil(t, m.FXImpactOnRevenue)
	assert.InDelta(t, -0.02, *m.FXImpactOnRevenue, 1e-9)
	require.NotNil(t, m.FXImpactOnNetIncome)
	assert.InDelta(t, -20.0/150, *m.FXImpactOnNetIncome, 1e-9)
}

func TestMacro(t *testing.T) {
	m := Macro(fullSnapshot())

	require.NotNil(t, m.RealRevenueGrowth)
	assert.InDelta(t, 100.0/900-0.03, *m.RealRevenueGrowth, 1e-9)
	require.NotNil(t, m.EarningsYieldSpread)
	assert.InDelta(t, 0.05-0.04, *m.EarningsYieldSpread, 1e-9)
	require.NotNil(t, m.DividendVsTreasury)
	assert.InDelta(t, 0.01-0.04, *m.DividendVsTreasury, 1e-9)
	require.NotNil(t, m.GrowthVsGDP)
	assert.InDelta(t, 100.0/900-0.02, *m.GrowthVsGDP, 1e-9)
}

func TestIndustryMedianFallback(t *testing.T) {
	s := fullSnapshot()
	require.Nil(t, s.PeerMedianRevenue)

	m := Industry(s)
	// Median of {800, 900, 1200, 1500} is 1050.
	require.NotNil(t, m.RevenueVsPeerMedian)
	assert.InDelta(t, 1000.0/1050, *m.RevenueVsPeerMedian, 1e-9)

	require.NotNil(t, m.MarginVsPeerAverage)
	assert.InDelta(t, 0.03, *m.MarginVsPeerAverage, 1e-9)
	require.NotNil(t, m.PEVsSector)
	assert.InDelta(t, 0.8, *m.PEVsSector, 1e-9)
	require.NotNil(t, m.GrowthVsIndustry)
	assert.InDelta(t, 100.0/900-0.05, *m.GrowthVsIndustry, 1e-9)
}

func TestIndustrySuppliedMedianPreferred(t *testing.T) {
	s := fullSnapshot()
	s.PeerMedianRevenue = quant.Ptr(2000.0)

	m := Industry(s)
	require.NotNil(t, m.RevenueVsPeerMedian)
	assert.InDelta(t, 0.5, *m.RevenueVsPeerMedian, 1e-9)
}

func TestEmptySnapshotAllAbsent(t *testing.T) {
	s := &models.Snapshot{}

	assert.Equal(t, models.LiquidityMetrics{}, Liquidity(s))
	assert.Equal(t, models.LeverageMetrics{}, Leverage(s))
	assert.Equal(t, models.EfficiencyMetrics{}, Efficiency(s))
	assert.Equal(t, models.ProfitabilityMetrics{}, Profitability(s))
	assert.Equal(t, models.GrowthMetrics{}, Growth(s))
	assert.Equal(t, models.CashFlowMetrics{}, CashFlow(s))
	assert.Equal(t, models.ValuationMetrics{}, Multiples(s))
	assert.Equal(t, models.HealthMetrics{}, Health(s))
	assert.Equal(t, models.TradeFXMetrics{}, TradeFX(s))
	assert.Equal(t, models.MacroMetrics{}, Macro(s))
	assert.Equal(t, models.IndustryMetrics{}, Industry(s))
}
