package fundamental

import (
	"github.com/finsight/finsight/internal/quant"
	"github.com/finsight/finsight/pkg/models"
)

// Growth measures year-over-year change against the prior-year
// comparatives and compound growth over the historical series.
func Growth(s *models.Snapshot) models.GrowthMetrics {
	return models.GrowthMetrics{
		RevenueGrowthYoY:   quant.PctChange(s.Revenue, s.PriorRevenue),
		NetIncomeGrowthYoY: quant.PctChange(s.NetIncome, s.PriorNetIncome),
		EPSGrowthYoY:       quant.PctChange(s.EPS, s.PriorEPS),
		FCFGrowthYoY:       quant.PctChange(FreeCashFlow(s), s.PriorFreeCashFlow),
		RevenueCAGR3Y:      trailingCAGR(s.RevenueHistory, 3),
		RevenueCAGR5Y:      trailingCAGR(s.RevenueHistory, 5),
		EPSCAGR3Y:          trailingCAGR(s.EPSHistory, 3),
	}
}

// trailingCAGR is the compound annual growth rate over the last `years`
// periods of an oldest-first series; absent when the series is too short.
func trailingCAGR(series []float64, years int) *float64 {
	n := len(series)
	if n < years+1 {
		return nil
	}
	return quant.CAGR(series[n-1], series[n-1-years], float64(years))
}
