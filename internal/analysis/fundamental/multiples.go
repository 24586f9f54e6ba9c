package fundamental

import (
	"math"

	"github.com/finsight/finsight/internal/quant"
	"github.com/finsight/finsight/pkg/models"
)

// Multiples computes market-price valuation multiples. Earnings-based
// multiples are only defined for positive earnings; a loss-making company
// has no meaningful P/E or PEG and those metrics stay absent.
func Multiples(s *models.Snapshot) models.ValuationMetrics {
	eps := earningsPerShare(s)
	bvps := quant.SafeDiv(s.TotalEquity, s.SharesOutstanding)
	fcf := FreeCashFlow(s)
	ev := enterpriseValue(s)

	m := models.ValuationMetrics{
		PriceToEarnings:   positiveDiv(s.Price, eps),
		PriceToBook:       positiveDiv(s.Price, bvps),
		PriceToSales:      quant.SafeDiv(s.MarketCap, s.Revenue),
		PriceToFCF:        positiveDiv(s.MarketCap, fcf),
		EVToEBITDA:        positiveDiv(ev, s.EBITDA),
		EVToSales:         quant.SafeDiv(ev, s.Revenue),
		EVToFCF:           positiveDiv(ev, fcf),
		EarningsYield:     quant.SafeDiv(eps, s.Price),
		DividendYield:     quant.SafeDiv(s.DividendPerShare, s.Price),
		PayoutRatio:       payoutRatio(s),
		BookValuePerShare: bvps,
		RevenuePerShare:   quant.SafeDiv(s.Revenue, s.SharesOutstanding),
	}

	// PEG divides P/E by EPS growth expressed in percent.
	epsGrowth := quant.PctChange(s.EPS, s.PriorEPS)
	if epsGrowth != nil && *epsGrowth > 0 {
		m.PEGRatio = quant.SafeDiv(m.PriceToEarnings, quant.Ptr(*epsGrowth*100))
	}

	m.GrahamNumber = grahamNumber(eps, bvps)
	return m
}

// earningsPerShare is the reported figure, else net income over shares.
func earningsPerShare(s *models.Snapshot) *float64 {
	if s.EPS != nil {
		return s.EPS
	}
	return quant.SafeDiv(s.NetIncome, s.SharesOutstanding)
}

// enterpriseValue is market cap plus total debt less cash.
func enterpriseValue(s *models.Snapshot) *float64 {
	return quant.SafeSub(quant.SafeAdd(s.MarketCap, s.TotalDebt), s.CashAndEquivalents)
}

// grahamNumber is sqrt(22.5 · EPS · book value per share), defined only
// when both inputs are positive.
func grahamNumber(eps, bvps *float64) *float64 {
	if eps == nil || bvps == nil || *eps <= 0 || *bvps <= 0 {
		return nil
	}
	return quant.Ptr(math.Sqrt(22.5 * *eps * *bvps))
}

// positiveDiv divides only when the denominator is strictly positive.
func positiveDiv(a, b *float64) *float64 {
	if b == nil || *b <= 0 {
		return nil
	}
	return quant.SafeDiv(a, b)
}
