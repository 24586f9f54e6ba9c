package models

// ReturnPeriod is the sampling frequency of a price history.
type ReturnPeriod string

const (
	Daily   ReturnPeriod = "daily"
	Weekly  ReturnPeriod = "weekly"
	Monthly ReturnPeriod = "monthly"
)

// AnnualizationFactor returns the number of periods per year for the
// sampling frequency (252 trading days, 52 weeks, 12 months).
func (p ReturnPeriod) AnnualizationFactor() float64 {
	switch p {
	case Weekly:
		return 52
	case Monthly:
		return 12
	default:
		return 252
	}
}

// Config holds every tunable of a single analysis run. Construct it with
// DefaultConfig and override fields as needed; the engine never reads
// global state.
type Config struct {
	// DCF parameters.
	MarketRiskPremium  float64  `mapstructure:"market_risk_premium"  yaml:"market_risk_premium"`
	TerminalGrowthRate float64  `mapstructure:"terminal_growth_rate" yaml:"terminal_growth_rate"`
	ProjectionYears    int      `mapstructure:"projection_years"     yaml:"projection_years"`
	TaxRateOverride    *float64 `mapstructure:"tax_rate_override"    yaml:"tax_rate_override"`
	FCFGrowthOverride  *float64 `mapstructure:"fcf_growth_override"  yaml:"fcf_growth_override"`
	UseAnalystTarget   bool     `mapstructure:"use_analyst_target"   yaml:"use_analyst_target"`

	// Risk parameters.
	ReturnPeriod    ReturnPeriod `mapstructure:"return_period"     yaml:"return_period"`
	VaRConfidence   float64      `mapstructure:"var_confidence"    yaml:"var_confidence"`
	MinDataPoints   int          `mapstructure:"min_data_points"   yaml:"min_data_points"`
	UseSuppliedBeta bool         `mapstructure:"use_supplied_beta" yaml:"use_supplied_beta"`
}

// DefaultConfig returns the documented engine defaults: 5.5% market risk
// premium, 2.5% terminal growth, 5 projection years, daily returns, 95%
// VaR confidence and a 30-point minimum history.
func DefaultConfig() Config {
	return Config{
		MarketRiskPremium:  0.055,
		TerminalGrowthRate: 0.025,
		ProjectionYears:    5,
		UseAnalystTarget:   true,
		ReturnPeriod:       Daily,
		VaRConfidence:      0.95,
		MinDataPoints:      30,
	}
}
