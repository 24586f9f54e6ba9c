// Package models defines the shared data types for the finsight
// calculation engine: the raw financial snapshot consumed by every
// calculator, the per-category metric results, and the engine
// configuration. All numeric snapshot and result fields are optional
// (*float64); a nil value means "unknown / not computable" and is the
// only failure signal that flows through the engine.
package models

import "time"

// PricePoint is one bar of price/volume history.
type PricePoint struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// Snapshot is the immutable raw-data record a single analysis run consumes.
// It is assembled by an upstream data-retrieval collaborator; the engine
// never mutates it. Any field may be nil and no field is ever assumed zero
// unless a metric's formula explicitly treats absence as zero.
type Snapshot struct {
	Ticker string `json:"ticker"`

	// Income statement (latest annual period).
	Revenue                  *float64 `json:"revenue,omitempty"`
	CostOfRevenue            *float64 `json:"cost_of_revenue,omitempty"`
	GrossProfit              *float64 `json:"gross_profit,omitempty"`
	OperatingExpenses        *float64 `json:"operating_expenses,omitempty"`
	OperatingIncome          *float64 `json:"operating_income,omitempty"`
	EBIT                     *float64 `json:"ebit,omitempty"`
	EBITDA                   *float64 `json:"ebitda,omitempty"`
	DepreciationAmortization *float64 `json:"depreciation_amortization,omitempty"`
	InterestExpense          *float64 `json:"interest_expense,omitempty"`
	PretaxIncome             *float64 `json:"pretax_income,omitempty"`
	IncomeTax                *float64 `json:"income_tax,omitempty"`
	NetIncome                *float64 `json:"net_income,omitempty"`
	EPS                      *float64 `json:"eps,omitempty"`

	// Balance sheet (latest period).
	TotalAssets        *float64 `json:"total_assets,omitempty"`
	CurrentAssets      *float64 `json:"current_assets,omitempty"`
	CashAndEquivalents *float64 `json:"cash_and_equivalents,omitempty"`
	ShortTermInvest    *float64 `json:"short_term_investments,omitempty"`
	Inventory          *float64 `json:"inventory,omitempty"`
	Receivables        *float64 `json:"receivables,omitempty"`
	FixedAssets        *float64 `json:"fixed_assets,omitempty"`
	TotalLiabilities   *float64 `json:"total_liabilities,omitempty"`
	CurrentLiabilities *float64 `json:"current_liabilities,omitempty"`
	Payables           *float64 `json:"payables,omitempty"`
	ShortTermDebt      *float64 `json:"short_term_debt,omitempty"`
	LongTermDebt       *float64 `json:"long_term_debt,omitempty"`
	TotalDebt          *float64 `json:"total_debt,omitempty"`
	TotalEquity        *float64 `json:"total_equity,omitempty"`
	RetainedEarnings   *float64 `json:"retained_earnings,omitempty"`

	// Cash flow statement (latest annual period).
	OperatingCashFlow   *float64 `json:"operating_cash_flow,omitempty"`
	CapitalExpenditures *float64 `json:"capital_expenditures,omitempty"`
	FreeCashFlow        *float64 `json:"free_cash_flow,omitempty"`
	InvestingCashFlow   *float64 `json:"investing_cash_flow,omitempty"`
	FinancingCashFlow   *float64 `json:"financing_cash_flow,omitempty"`
	DividendsPaid       *float64 `json:"dividends_paid,omitempty"`
	ShareRepurchases    *float64 `json:"share_repurchases,omitempty"`
	DebtIssued          *float64 `json:"debt_issued,omitempty"`
	DebtRepaid          *float64 `json:"debt_repaid,omitempty"`

	// Prior-year comparatives, used by growth metrics and the Piotroski
	// F-score signal deltas.
	PriorRevenue            *float64 `json:"prior_revenue,omitempty"`
	PriorGrossProfit        *float64 `json:"prior_gross_profit,omitempty"`
	PriorNetIncome          *float64 `json:"prior_net_income,omitempty"`
	PriorEPS                *float64 `json:"prior_eps,omitempty"`
	PriorTotalAssets        *float64 `json:"prior_total_assets,omitempty"`
	PriorCurrentAssets      *float64 `json:"prior_current_assets,omitempty"`
	PriorCurrentLiabilities *float64 `json:"prior_current_liabilities,omitempty"`
	PriorLongTermDebt       *float64 `json:"prior_long_term_debt,omitempty"`
	PriorInventory          *float64 `json:"prior_inventory,omitempty"`
	PriorReceivables        *float64 `json:"prior_receivables,omitempty"`
	PriorOperatingCashFlow  *float64 `json:"prior_operating_cash_flow,omitempty"`
	PriorFreeCashFlow       *float64 `json:"prior_free_cash_flow,omitempty"`
	PriorSharesOutstanding  *float64 `json:"prior_shares_outstanding,omitempty"`

	// Market data.
	Price             *float64 `json:"price,omitempty"`
	MarketCap         *float64 `json:"market_cap,omitempty"`
	SharesOutstanding *float64 `json:"shares_outstanding,omitempty"`
	AnalystTargetPrice *float64 `json:"analyst_target_price,omitempty"`
	Beta              *float64 `json:"beta,omitempty"`
	DividendPerShare  *float64 `json:"dividend_per_share,omitempty"`
	CurrentVolume     *float64 `json:"current_volume,omitempty"`
	AverageVolume     *float64 `json:"average_volume,omitempty"`

	// Macro environment.
	RiskFreeRate     *float64 `json:"risk_free_rate,omitempty"`
	InflationRate    *float64 `json:"inflation_rate,omitempty"`
	GDPGrowth        *float64 `json:"gdp_growth,omitempty"`
	TreasuryYield10Y *float64 `json:"treasury_yield_10y,omitempty"`

	// Trade / FX exposure.
	ForeignRevenue *float64 `json:"foreign_revenue,omitempty"`
	ExportRevenue  *float64 `json:"export_revenue,omitempty"`
	FXGainsLosses  *float64 `json:"fx_gains_losses,omitempty"`

	// Industry / peer aggregates.
	SectorPE          *float64  `json:"sector_pe,omitempty"`
	PeerMedianRevenue *float64  `json:"peer_median_revenue,omitempty"`
	PeerAverageMargin *float64  `json:"peer_average_margin,omitempty"`
	IndustryGrowth    *float64  `json:"industry_growth,omitempty"`
	PeerRevenues      []float64 `json:"peer_revenues,omitempty"`

	// Ordered historical series, oldest first.
	PriceHistory   []PricePoint `json:"price_history,omitempty"`
	MarketHistory  []PricePoint `json:"market_history,omitempty"`
	FCFHistory     []float64    `json:"fcf_history,omitempty"`
	RevenueHistory []float64    `json:"revenue_history,omitempty"`
	EPSHistory     []float64    `json:"eps_history,omitempty"`
}

// Closes extracts the close-price series from the price history.
func (s *Snapshot) Closes() []float64 {
	return closesOf(s.PriceHistory)
}

// MarketCloses extracts the close-price series from the benchmark history.
func (s *Snapshot) MarketCloses() []float64 {
	return closesOf(s.MarketHistory)
}

func closesOf(points []PricePoint) []float64 {
	if len(points) == 0 {
		return nil
	}
	closes := make([]float64, len(points))
	for i, p := range points {
		closes[i] = p.Close
	}
	return closes
}
