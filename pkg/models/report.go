package models

// Level is the qualitative band of a single metric.
type Level string

const (
	LevelGood    Level = "good"
	LevelNeutral Level = "neutral"
	LevelBad     Level = "bad"
)

// Score maps a level onto the 0–100 scale used by category scores.
func (l Level) Score() float64 {
	switch l {
	case LevelGood:
		return 100
	case LevelBad:
		return 0
	default:
		return 50
	}
}

// Interpretation is the qualitative reading of one metric. A metric that
// could not be computed interprets as neutral with Threshold "N/A" and is
// excluded from category scoring.
type Interpretation struct {
	Level     Level  `json:"level"`
	Message   string `json:"message"`
	Threshold string `json:"threshold"`
}

// Scorecard aggregates per-category 0–100 scores. A category with no
// interpretable metric has no entry; Total is nil when no category scored.
type Scorecard struct {
	Categories map[string]int `json:"categories"`
	Total      *int           `json:"total,omitempty"`
}

// Report is the unified output of one analysis run: every category's
// metrics, the three core engine results, per-metric interpretations and
// the composite scorecard.
type Report struct {
	Ticker string `json:"ticker"`

	Liquidity     LiquidityMetrics     `json:"liquidity"`
	Leverage      LeverageMetrics      `json:"leverage"`
	Efficiency    EfficiencyMetrics    `json:"efficiency"`
	Profitability ProfitabilityMetrics `json:"profitability"`
	Growth        GrowthMetrics        `json:"growth"`
	CashFlow      CashFlowMetrics      `json:"cash_flow"`
	Valuation     ValuationMetrics     `json:"valuation"`
	Health        HealthMetrics        `json:"health"`
	TradeFX       TradeFXMetrics       `json:"trade_fx"`
	Macro         MacroMetrics         `json:"macro"`
	Industry      IndustryMetrics      `json:"industry"`

	DCF       *DCFValuation        `json:"dcf,omitempty"`
	Risk      *RiskProfile         `json:"risk,omitempty"`
	Technical *TechnicalIndicators `json:"technical,omitempty"`

	Interpretations map[string]Interpretation `json:"interpretations"`
	Scores          Scorecard                 `json:"scores"`
}
