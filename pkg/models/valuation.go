package models

// ProjectedFCF is one explicit projection year of a DCF run, ordered
// chronologically.
type ProjectedFCF struct {
	Year           int     `json:"year"`
	FCF            float64 `json:"fcf"`
	GrowthRate     float64 `json:"growth_rate"`
	DiscountFactor float64 `json:"discount_factor"`
	PresentValue   float64 `json:"present_value"`
}

// SensitivityGrid is a 2-D enterprise-value surface over discount-rate and
// terminal-growth ranges. Values[i][j] corresponds to WACCs[i] and
// Growths[j]; a nil cell means the combination is invalid (WACC ≤ growth)
// or an input was missing.
type SensitivityGrid struct {
	WACCs   []float64    `json:"waccs"`
	Growths []float64    `json:"growths"`
	Values  [][]*float64 `json:"values"`
}

// DCFValuation is the full output of the discounted-cash-flow engine.
// Every field is individually optional: an absent WACC leaves the
// projections and every downstream value absent as well.
type DCFValuation struct {
	Beta             *float64 `json:"beta,omitempty"`
	CostOfEquity     *float64 `json:"cost_of_equity,omitempty"`
	CostOfDebt       *float64 `json:"cost_of_debt,omitempty"`
	EffectiveTaxRate *float64 `json:"effective_tax_rate,omitempty"`
	EquityWeight     *float64 `json:"equity_weight,omitempty"`
	DebtWeight       *float64 `json:"debt_weight,omitempty"`
	WACC             *float64 `json:"wacc,omitempty"`
	FCFGrowthRate    *float64 `json:"fcf_growth_rate,omitempty"`

	Projections     []ProjectedFCF `json:"projections,omitempty"`
	TerminalValue   *float64       `json:"terminal_value,omitempty"`
	PVTerminalValue *float64       `json:"pv_terminal_value,omitempty"`
	EnterpriseValue *float64       `json:"enterprise_value,omitempty"`
	NetDebt         *float64       `json:"net_debt,omitempty"`
	EquityValue     *float64       `json:"equity_value,omitempty"`
	IntrinsicValue  *float64       `json:"intrinsic_value,omitempty"`

	TargetPrice    *float64 `json:"target_price,omitempty"`
	UpsideDownside *float64 `json:"upside_downside,omitempty"`
	MarginOfSafety *float64 `json:"margin_of_safety,omitempty"`

	Sensitivity *SensitivityGrid `json:"sensitivity,omitempty"`
}

// RiskProfile is the output of the risk analytics engine. DataPoints
// reports how many returns backed the statistics so callers can judge
// quality; individual fields are nil when their preconditions were unmet.
type RiskProfile struct {
	Beta                 *float64 `json:"beta,omitempty"`
	AnnualizedReturn     *float64 `json:"annualized_return,omitempty"`
	AnnualizedVolatility *float64 `json:"annualized_volatility,omitempty"`
	Alpha                *float64 `json:"alpha,omitempty"`
	SharpeRatio          *float64 `json:"sharpe_ratio,omitempty"`
	SortinoRatio         *float64 `json:"sortino_ratio,omitempty"`
	MaxDrawdown          *float64 `json:"max_drawdown,omitempty"`
	VaR95                *float64 `json:"var_95,omitempty"`
	VaR99                *float64 `json:"var_99,omitempty"`
	CVaR95               *float64 `json:"cvar_95,omitempty"`
	Correlation          *float64 `json:"correlation,omitempty"`
	RSquared             *float64 `json:"r_squared,omitempty"`
	RiskScore            *float64 `json:"risk_score,omitempty"`
	DataPoints           int      `json:"data_points"`
}

// MACDSnapshot holds the most recent MACD values. Signal and Histogram are
// nil when the series was long enough for the MACD line but not yet for
// the signal line.
type MACDSnapshot struct {
	MACD      *float64 `json:"macd,omitempty"`
	Signal    *float64 `json:"signal,omitempty"`
	Histogram *float64 `json:"histogram,omitempty"`
}

// BollingerBands holds one set of volatility bands.
type BollingerBands struct {
	Upper  float64 `json:"upper"`
	Middle float64 `json:"middle"`
	Lower  float64 `json:"lower"`
}

// TechnicalIndicators is the output of the technical indicator engine.
type TechnicalIndicators struct {
	SMA20          *float64        `json:"sma_20,omitempty"`
	SMA50          *float64        `json:"sma_50,omitempty"`
	SMA200         *float64        `json:"sma_200,omitempty"`
	EMA12          *float64        `json:"ema_12,omitempty"`
	EMA26          *float64        `json:"ema_26,omitempty"`
	RSI14          *float64        `json:"rsi_14,omitempty"`
	MACD           *MACDSnapshot   `json:"macd,omitempty"`
	Bollinger      *BollingerBands `json:"bollinger,omitempty"`
	ATR14          *float64        `json:"atr_14,omitempty"`
	VWAP           *float64        `json:"vwap,omitempty"`
	RelativeVolume *float64        `json:"relative_volume,omitempty"`
	TrendSlope     *float64        `json:"trend_slope,omitempty"`
}
