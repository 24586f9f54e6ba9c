package fundamental

import (
	"sort"

	"github.com/finsight/finsight/internal/quant"
	"github.com/finsight/finsight/pkg/models"
)

// TradeFX measures foreign-trade and currency exposure relative to the
// income statement.
func TradeFX(s *models.Snapshot) models.TradeFXMetrics {
	return models.TradeFXMetrics{
		ForeignRevenueShare: quant.SafeDiv(s.ForeignRevenue, s.Revenue),
		ExportShare:         quant.SafeDiv(s.ExportRevenue, s.Revenue),
		FXImpactOnRevenue:   quant.SafeDiv(s.FXGainsLosses, s.Revenue),
		FXImpactOnNetIncome: quant.SafeDiv(s.FXGainsLosses, s.NetIncome),
	}
}

// Macro relates the company to the macro environment: growth net of
// inflation and yield spreads against the 10-year treasury.
func Macro(s *models.Snapshot) models.MacroMetrics {
	revenueGrowth := quant.PctChange(s.Revenue, s.PriorRevenue)
	earningsYield := quant.SafeDiv(earningsPerShare(s), s.Price)
	dividendYield := quant.SafeDiv(s.DividendPerShare, s.Price)

	return models.MacroMetrics{
		RealRevenueGrowth:   quant.SafeSub(revenueGrowth, s.InflationRate),
		EarningsYieldSpread: quant.SafeSub(earningsYield, s.TreasuryYield10Y),
		DividendVsTreasury:  quant.SafeSub(dividendYield, s.TreasuryYield10Y),
		GrowthVsGDP:         quant.SafeSub(revenueGrowth, s.GDPGrowth),
	}
}

// Industry compares the company to its peer group. The peer revenue
// baseline is the supplied median, else the median of the raw peer
// revenue list.
func Industry(s *models.Snapshot) models.IndustryMetrics {
	peerRevenue := s.PeerMedianRevenue
	if peerRevenue == nil {
		peerRevenue = median(s.PeerRevenues)
	}

	netMargin := quant.SafeDiv(s.NetIncome, s.Revenue)
	pe := positiveDiv(s.Price, earningsPerShare(s))
	revenueGrowth := quant.PctChange(s.Revenue, s.PriorRevenue)

	return models.IndustryMetrics{
		RevenueVsPeerMedian: quant.SafeDiv(s.Revenue, peerRevenue),
		MarginVsPeerAverage: quant.SafeSub(netMargin, s.PeerAverageMargin),
		PEVsSector:          quant.SafeDiv(pe, s.SectorPE),
		GrowthVsIndustry:    quant.SafeSub(revenueGrowth, s.IndustryGrowth),
	}
}

func median(xs []float64) *float64 {
	n := len(xs)
	if n == 0 {
		return nil
	}
	sorted := make([]float64, n)
	copy(sorted, xs)
	sort.Float64s(sorted)
	if n%2 == 0 {
		return quant.Ptr((sorted[n/2-1] + sorted[n/2]) / 2)
	}
	return quant.Ptr(sorted[n/2])
}
