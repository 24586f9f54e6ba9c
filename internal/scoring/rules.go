package scoring

import (
	"fmt"

	"github.com/finsight/finsight/pkg/models"
)

// ruleTable registers every interpreted metric. Thresholds follow common
// screening conventions; they are deliberately coarse bands, not tuned
// per sector.
var ruleTable = []rule{
	// Liquidity.
	{category: "liquidity", metric: "current_ratio", label: "Current ratio",
		value:    func(r *models.Report) *float64 { return r.Liquidity.CurrentRatio },
		classify: higherBetter(1.0, 1.5)},
	{category: "liquidity", metric: "quick_ratio", label: "Quick ratio",
		value:    func(r *models.Report) *float64 { return r.Liquidity.QuickRatio },
		classify: higherBetter(0.8, 1.0)},
	{category: "liquidity", metric: "cash_ratio", label: "Cash ratio",
		value:    func(r *models.Report) *float64 { return r.Liquidity.CashRatio },
		classify: higherBetter(0.2, 0.5)},
	{category: "liquidity", metric: "operating_cash_flow_ratio", label: "Operating cash flow ratio",
		value:    func(r *models.Report) *float64 { return r.Liquidity.OperatingCashFlowRatio },
		classify: higherBetter(0.4, 0.8)},

	// Leverage.
	{category: "leverage", metric: "debt_to_equity", label: "Debt to equity",
		value:    func(r *models.Report) *float64 { return r.Leverage.DebtToEquity },
		classify: lowerBetter(1.0, 2.0)},
	{category: "leverage", metric: "debt_ratio", label: "Debt ratio",
		value:    func(r *models.Report) *float64 { return r.Leverage.DebtRatio },
		classify: lowerBetter(0.5, 0.7)},
	{category: "leverage", metric: "interest_coverage", label: "Interest coverage",
		value:    func(r *models.Report) *float64 { return r.Leverage.InterestCoverage },
		classify: higherBetter(1.5, 3.0)},
	{category: "leverage", metric: "debt_to_ebitda", label: "Debt to EBITDA",
		value:    func(r *models.Report) *float64 { return r.Leverage.DebtToEBITDA },
		classify: lowerBetter(3.0, 5.0)},

	// Efficiency.
	{category: "efficiency", metric: "asset_turnover", label: "Asset turnover",
		value:    func(r *models.Report) *float64 { return r.Efficiency.AssetTurnover },
		classify: higherBetter(0.3, 0.7)},
	{category: "efficiency", metric: "inventory_turnover", label: "Inventory turnover",
		value:    func(r *models.Report) *float64 { return r.Efficiency.InventoryTurnover },
		classify: higherBetter(2, 5)},
	{category: "efficiency", metric: "receivables_turnover", label: "Receivables turnover",
		value:    func(r *models.Report) *float64 { return r.Efficiency.ReceivablesTurnover },
		classify: higherBetter(4, 8)},
	{category: "efficiency", metric: "cash_conversion_cycle", label: "Cash conversion cycle",
		value:    func(r *models.Report) *float64 { return r.Efficiency.CashConversionCycle },
		classify: lowerBetter(60, 120)},

	// Profitability.
	{category: "profitability", metric: "gross_margin", label: "Gross margin", percent: true,
		value:    func(r *models.Report) *float64 { return r.Profitability.GrossMargin },
		classify: higherBetter(0.25, 0.40)},
	{category: "profitability", metric: "operating_margin", label: "Operating margin", percent: true,
		value:    func(r *models.Report) *float64 { return r.Profitability.OperatingMargin },
		classify: higherBetter(0.08, 0.15)},
	{category: "profitability", metric: "net_margin", label: "Net margin", percent: true,
		value:    func(r *models.Report) *float64 { return r.Profitability.NetMargin },
		classify: higherBetter(0.05, 0.12)},
	{category: "profitability", metric: "roe", label: "Return on equity", percent: true,
		value:    func(r *models.Report) *float64 { return r.Profitability.ROE },
		classify: higherBetter(0.08, 0.15)},
	{category: "profitability", metric: "roa", label: "Return on assets", percent: true,
		value:    func(r *models.Report) *float64 { return r.Profitability.ROA },
		classify: higherBetter(0.03, 0.08)},
	{category: "profitability", metric: "roic", label: "Return on invested capital", percent: true,
		value:    func(r *models.Report) *float64 { return r.Profitability.ROIC },
		classify: higherBetter(0.06, 0.12)},

	// Growth.
	{category: "growth", metric: "revenue_growth_yoy", label: "Revenue growth", percent: true,
		value:    func(r *models.Report) *float64 { return r.Growth.RevenueGrowthYoY },
		classify: higherBetter(0, 0.10)},
	{category: "growth", metric: "net_income_growth_yoy", label: "Net income growth", percent: true,
		value:    func(r *models.Report) *float64 { return r.Growth.NetIncomeGrowthYoY },
		classify: higherBetter(0, 0.10)},
	{category: "growth", metric: "eps_growth_yoy", label: "EPS growth", percent: true,
		value:    func(r *models.Report) *float64 { return r.Growth.EPSGrowthYoY },
		classify: higherBetter(0, 0.10)},
	{category: "growth", metric: "revenue_cagr_3y", label: "Revenue CAGR (3y)", percent: true,
		value:    func(r *models.Report) *float64 { return r.Growth.RevenueCAGR3Y },
		classify: higherBetter(0, 0.08)},

	// Cash flow.
	{category: "cash_flow", metric: "fcf_yield", label: "Free cash flow yield", percent: true,
		value:    func(r *models.Report) *float64 { return r.CashFlow.FCFYield },
		classify: higherBetter(0.02, 0.05)},
	{category: "cash_flow", metric: "capex_to_operating_cf", label: "Capex to operating cash flow",
		value:    func(r *models.Report) *float64 { return r.CashFlow.CapexToOperatingCF },
		classify: lowerBetter(0.4, 0.7)},
	{category: "cash_flow", metric: "cash_flow_to_net_income", label: "Cash flow to net income",
		value:    func(r *models.Report) *float64 { return r.CashFlow.CashFlowToNetIncome },
		classify: higherBetter(0.8, 1.1)},

	// Valuation multiples.
	{category: "valuation", metric: "price_to_earnings", label: "Price to earnings",
		value:    func(r *models.Report) *float64 { return r.Valuation.PriceToEarnings },
		classify: lowerBetter(18, 30)},
	{category: "valuation", metric: "price_to_book", label: "Price to book",
		value:    func(r *models.Report) *float64 { return r.Valuation.PriceToBook },
		classify: lowerBetter(2, 4)},
	{category: "valuation", metric: "ev_to_ebitda", label: "EV to EBITDA",
		value:    func(r *models.Report) *float64 { return r.Valuation.EVToEBITDA },
		classify: lowerBetter(10, 15)},
	{category: "valuation", metric: "peg_ratio", label: "PEG ratio",
		value:    func(r *models.Report) *float64 { return r.Valuation.PEGRatio },
		classify: lowerBetter(1, 2)},
	{category: "valuation", metric: "earnings_yield", label: "Earnings yield", percent: true,
		value:    func(r *models.Report) *float64 { return r.Valuation.EarningsYield },
		classify: higherBetter(0.03, 0.06)},
	{category: "valuation", metric: "dividend_yield", label: "Dividend yield", percent: true,
		value:    func(r *models.Report) *float64 { return r.Valuation.DividendYield },
		classify: higherBetter(0.01, 0.03)},

	// Health composites.
	{category: "health", metric: "altman_z_score", label: "Altman Z-score",
		value:    func(r *models.Report) *float64 { return r.Health.AltmanZScore },
		classify: higherBetter(1.8, 3.0)},
	{category: "health", metric: "piotroski_f_score", label: "Piotroski F-score",
		value:    func(r *models.Report) *float64 { return r.Health.PiotroskiFScore },
		classify: higherBetter(4, 7)},

	// Trade / FX.
	{category: "trade_fx", metric: "fx_impact_on_net_income", label: "FX impact on net income", percent: true,
		value:    func(r *models.Report) *float64 { return r.TradeFX.FXImpactOnNetIncome },
		classify: magnitudeBelow(0.02, 0.05)},
	{category: "trade_fx", metric: "fx_impact_on_revenue", label: "FX impact on revenue", percent: true,
		value:    func(r *models.Report) *float64 { return r.TradeFX.FXImpactOnRevenue },
		classify: magnitudeBelow(0.01, 0.03)},

	// Macro.
	{category: "macro", metric: "real_revenue_growth", label: "Real revenue growth", percent: true,
		value:    func(r *models.Report) *float64 { return r.Macro.RealRevenueGrowth },
		classify: higherBetter(0, 0.05)},
	{category: "macro", metric: "earnings_yield_spread", label: "Earnings yield spread", percent: true,
		value:    func(r *models.Report) *float64 { return r.Macro.EarningsYieldSpread },
		classify: higherBetter(0, 0.02)},

	// Industry comparisons.
	{category: "industry", metric: "revenue_vs_peer_median", label: "Revenue vs peer median",
		value:    func(r *models.Report) *float64 { return r.Industry.RevenueVsPeerMedian },
		classify: higherBetter(0.8, 1.2)},
	{category: "industry", metric: "margin_vs_peer_average", label: "Margin vs peer average", percent: true,
		value:    func(r *models.Report) *float64 { return r.Industry.MarginVsPeerAverage },
		classify: higherBetter(0, 0.02)},
	{category: "industry", metric: "pe_vs_sector", label: "P/E vs sector",
		value:    func(r *models.Report) *float64 { return r.Industry.PEVsSector },
		classify: lowerBetter(1.0, 1.3)},

	// Risk profile.
	{category: "risk", metric: "beta", label: "Beta",
		value:    riskField(func(p *models.RiskProfile) *float64 { return p.Beta }),
		classify: magnitudeBelow(1.2, 1.6)},
	{category: "risk", metric: "sharpe_ratio", label: "Sharpe ratio",
		value:    riskField(func(p *models.RiskProfile) *float64 { return p.SharpeRatio }),
		classify: higherBetter(0.5, 1.0)},
	{category: "risk", metric: "sortino_ratio", label: "Sortino ratio",
		value:    riskField(func(p *models.RiskProfile) *float64 { return p.SortinoRatio }),
		classify: higherBetter(0.7, 1.5)},
	{category: "risk", metric: "annualized_volatility", label: "Annualized volatility", percent: true,
		value:    riskField(func(p *models.RiskProfile) *float64 { return p.AnnualizedVolatility }),
		classify: lowerBetter(0.25, 0.45)},
	{category: "risk", metric: "max_drawdown", label: "Max drawdown", percent: true,
		value:    riskField(func(p *models.RiskProfile) *float64 { return p.MaxDrawdown }),
		classify: magnitudeBelow(0.20, 0.40)},
	{category: "risk", metric: "var_95", label: "Value at risk (95%)", percent: true,
		value:    riskField(func(p *models.RiskProfile) *float64 { return p.VaR95 }),
		classify: magnitudeBelow(0.02, 0.035)},
	{category: "risk", metric: "risk_score", label: "Composite risk score",
		value:    riskField(func(p *models.RiskProfile) *float64 { return p.RiskScore }),
		classify: lowerBetter(40, 70)},

	// Technical indicators.
	{category: "technical", metric: "rsi_14", label: "RSI (14)",
		value:    techField(func(t *models.TechnicalIndicators) *float64 { return t.RSI14 }),
		classify: rsiBands, message: rsiMessage},
	{category: "technical", metric: "macd_histogram", label: "MACD histogram",
		value:    macdHistogram,
		classify: macdBands, message: macdMessage},
	{category: "technical", metric: "trend_slope", label: "Trend slope",
		value:    techField(func(t *models.TechnicalIndicators) *float64 { return t.TrendSlope }),
		classify: higherBetter(-0.001, 0.001)},
	{category: "technical", metric: "relative_volume", label: "Relative volume",
		value:    techField(func(t *models.TechnicalIndicators) *float64 { return t.RelativeVolume }),
		classify: higherBetter(0.5, 1.5)},

	// Intrinsic valuation.
	{category: "dcf", metric: "upside_downside", label: "Upside to intrinsic value", percent: true,
		value:    dcfField(func(d *models.DCFValuation) *float64 { return d.UpsideDownside }),
		classify: higherBetter(-0.10, 0.15)},
	{category: "dcf", metric: "margin_of_safety", label: "Margin of safety", percent: true,
		value:    dcfField(func(d *models.DCFValuation) *float64 { return d.MarginOfSafety }),
		classify: higherBetter(0, 0.20)},
}

func riskField(f func(*models.RiskProfile) *float64) func(*models.Report) *float64 {
	return func(r *models.Report) *float64 {
		if r.Risk == nil {
			return nil
		}
		return f(r.Risk)
	}
}

func techField(f func(*models.TechnicalIndicators) *float64) func(*models.Report) *float64 {
	return func(r *models.Report) *float64 {
		if r.Technical == nil {
			return nil
		}
		return f(r.Technical)
	}
}

func dcfField(f func(*models.DCFValuation) *float64) func(*models.Report) *float64 {
	return func(r *models.Report) *float64 {
		if r.DCF == nil {
			return nil
		}
		return f(r.DCF)
	}
}

func macdHistogram(r *models.Report) *float64 {
	if r.Technical == nil || r.Technical.MACD == nil {
		return nil
	}
	return r.Technical.MACD.Histogram
}

// RSI below 30 reads as oversold (a buying level), above 70 as overbought.
func rsiBands(v float64) (models.Level, string) {
	const th = "30 - 70"
	switch {
	case v < 30:
		return models.LevelGood, th
	case v > 70:
		return models.LevelBad, th
	default:
		return models.LevelNeutral, th
	}
}

func rsiMessage(v float64, level models.Level) string {
	switch level {
	case models.LevelGood:
		return fmt.Sprintf("RSI oversold at %.1f", v)
	case models.LevelBad:
		return fmt.Sprintf("RSI overbought at %.1f", v)
	default:
		return fmt.Sprintf("RSI neutral at %.1f", v)
	}
}

func macdBands(v float64) (models.Level, string) {
	const th = "> 0"
	switch {
	case v > 0:
		return models.LevelGood, th
	case v < 0:
		return models.LevelBad, th
	default:
		return models.LevelNeutral, th
	}
}

func macdMessage(v float64, level models.Level) string {
	switch level {
	case models.LevelGood:
		return fmt.Sprintf("MACD bullish (histogram %.2f)", v)
	case models.LevelBad:
		return fmt.Sprintf("MACD bearish (histogram %.2f)", v)
	default:
		return "MACD flat"
	}
}
