package models

// LiquidityMetrics measures short-term solvency.
type LiquidityMetrics struct {
	CurrentRatio           *float64 `json:"current_ratio,omitempty"`
	QuickRatio             *float64 `json:"quick_ratio,omitempty"`
	CashRatio              *float64 `json:"cash_ratio,omitempty"`
	WorkingCapital         *float64 `json:"working_capital,omitempty"`
	OperatingCashFlowRatio *float64 `json:"operating_cash_flow_ratio,omitempty"`
}

// LeverageMetrics measures capital-structure risk.
type LeverageMetrics struct {
	DebtToEquity         *float64 `json:"debt_to_equity,omitempty"`
	DebtRatio            *float64 `json:"debt_ratio,omitempty"`
	EquityRatio          *float64 `json:"equity_ratio,omitempty"`
	InterestCoverage     *float64 `json:"interest_coverage,omitempty"`
	DebtToEBITDA         *float64 `json:"debt_to_ebitda,omitempty"`
	LongTermDebtToCap    *float64 `json:"long_term_debt_to_capitalization,omitempty"`
	FinancialLeverage    *float64 `json:"financial_leverage,omitempty"`
}

// EfficiencyMetrics measures asset utilization and the cash cycle.
type EfficiencyMetrics struct {
	AssetTurnover          *float64 `json:"asset_turnover,omitempty"`
	FixedAssetTurnover     *float64 `json:"fixed_asset_turnover,omitempty"`
	InventoryTurnover      *float64 `json:"inventory_turnover,omitempty"`
	ReceivablesTurnover    *float64 `json:"receivables_turnover,omitempty"`
	PayablesTurnover       *float64 `json:"payables_turnover,omitempty"`
	DaysSalesOutstanding   *float64 `json:"days_sales_outstanding,omitempty"`
	DaysInventoryOnHand    *float64 `json:"days_inventory_on_hand,omitempty"`
	DaysPayablesOutstanding *float64 `json:"days_payables_outstanding,omitempty"`
	CashConversionCycle    *float64 `json:"cash_conversion_cycle,omitempty"`
	WorkingCapitalTurnover *float64 `json:"working_capital_turnover,omitempty"`
}

// ProfitabilityMetrics measures margins and returns on capital.
type ProfitabilityMetrics struct {
	GrossMargin     *float64 `json:"gross_margin,omitempty"`
	OperatingMargin *float64 `json:"operating_margin,omitempty"`
	EBITDAMargin    *float64 `json:"ebitda_margin,omitempty"`
	NetMargin       *float64 `json:"net_margin,omitempty"`
	FCFMargin       *float64 `json:"fcf_margin,omitempty"`
	ROA             *float64 `json:"roa,omitempty"`
	ROE             *float64 `json:"roe,omitempty"`
	ROIC            *float64 `json:"roic,omitempty"`
	ROCE            *float64 `json:"roce,omitempty"`
}

// GrowthMetrics measures period-over-period and compound growth.
type GrowthMetrics struct {
	RevenueGrowthYoY   *float64 `json:"revenue_growth_yoy,omitempty"`
	NetIncomeGrowthYoY *float64 `json:"net_income_growth_yoy,omitempty"`
	EPSGrowthYoY       *float64 `json:"eps_growth_yoy,omitempty"`
	FCFGrowthYoY       *float64 `json:"fcf_growth_yoy,omitempty"`
	RevenueCAGR3Y      *float64 `json:"revenue_cagr_3y,omitempty"`
	RevenueCAGR5Y      *float64 `json:"revenue_cagr_5y,omitempty"`
	EPSCAGR3Y          *float64 `json:"eps_cagr_3y,omitempty"`
}

// CashFlowMetrics measures cash generation quality.
type CashFlowMetrics struct {
	FreeCashFlow        *float64 `json:"free_cash_flow,omitempty"`
	FCFF                *float64 `json:"fcff,omitempty"`
	FCFE                *float64 `json:"fcfe,omitempty"`
	CapexToOperatingCF  *float64 `json:"capex_to_operating_cf,omitempty"`
	CapexToRevenue      *float64 `json:"capex_to_revenue,omitempty"`
	FCFYield            *float64 `json:"fcf_yield,omitempty"`
	CashFlowToNetIncome *float64 `json:"cash_flow_to_net_income,omitempty"`
}

// ValuationMetrics holds market-price multiples.
type ValuationMetrics struct {
	PriceToEarnings   *float64 `json:"price_to_earnings,omitempty"`
	PriceToBook       *float64 `json:"price_to_book,omitempty"`
	PriceToSales      *float64 `json:"price_to_sales,omitempty"`
	PriceToFCF        *float64 `json:"price_to_fcf,omitempty"`
	EVToEBITDA        *float64 `json:"ev_to_ebitda,omitempty"`
	EVToSales         *float64 `json:"ev_to_sales,omitempty"`
	EVToFCF           *float64 `json:"ev_to_fcf,omitempty"`
	PEGRatio          *float64 `json:"peg_ratio,omitempty"`
	EarningsYield     *float64 `json:"earnings_yield,omitempty"`
	DividendYield     *float64 `json:"dividend_yield,omitempty"`
	PayoutRatio       *float64 `json:"payout_ratio,omitempty"`
	BookValuePerShare *float64 `json:"book_value_per_share,omitempty"`
	RevenuePerShare   *float64 `json:"revenue_per_share,omitempty"`
	GrahamNumber      *float64 `json:"graham_number,omitempty"`
}

// HealthMetrics holds composite screening scores.
type HealthMetrics struct {
	AltmanZScore    *float64 `json:"altman_z_score,omitempty"`
	PiotroskiFScore *float64 `json:"piotroski_f_score,omitempty"`
}

// TradeFXMetrics measures foreign-trade and currency exposure.
type TradeFXMetrics struct {
	ForeignRevenueShare *float64 `json:"foreign_revenue_share,omitempty"`
	ExportShare         *float64 `json:"export_share,omitempty"`
	FXImpactOnRevenue   *float64 `json:"fx_impact_on_revenue,omitempty"`
	FXImpactOnNetIncome *float64 `json:"fx_impact_on_net_income,omitempty"`
}

// MacroMetrics relates company fundamentals to the macro environment.
type MacroMetrics struct {
	RealRevenueGrowth   *float64 `json:"real_revenue_growth,omitempty"`
	EarningsYieldSpread *float64 `json:"earnings_yield_spread,omitempty"`
	DividendVsTreasury  *float64 `json:"dividend_vs_treasury,omitempty"`
	GrowthVsGDP         *float64 `json:"growth_vs_gdp,omitempty"`
}

// IndustryMetrics compares the company against its peer group.
type IndustryMetrics struct {
	RevenueVsPeerMedian *float64 `json:"revenue_vs_peer_median,omitempty"`
	MarginVsPeerAverage *float64 `json:"margin_vs_peer_average,omitempty"`
	PEVsSector          *float64 `json:"pe_vs_sector,omitempty"`
	GrowthVsIndustry    *float64 `json:"growth_vs_industry,omitempty"`
}
